package healthcheck

import (
	"github.com/vertti/clustercheck/pkg/httpcheck"
	"github.com/vertti/clustercheck/pkg/kubecheck"
	"github.com/vertti/clustercheck/pkg/promcheck"
	"github.com/vertti/clustercheck/pkg/resourcecheck"
)

// CheckKubernetesCluster checks API connectivity and node readiness.
func (c *Checker) CheckKubernetesCluster() {
	c.Printer.Section("🔧 Kubernetes Cluster Health")

	kubectl := c.kubectl()
	c.record(kubectl.Command("Cluster connectivity", "Connected", "Cannot connect to cluster", "cluster-info").Run())

	nodes := &kubecheck.NodeReadinessCheck{Kubectl: kubectl}
	c.record(nodes.Run())
}

// CheckFluxSystem checks the GitOps controllers and their resources.
// The resources check only looks at the exit status of `flux get all`;
// it does not inspect per-resource reconciliation state.
func (c *Checker) CheckFluxSystem() {
	c.Printer.Section("⚡ Flux System Health")

	flux := c.flux()
	c.record(flux.Command("Flux system", "All components ready", "Issues detected", "check").Run())
	c.record(flux.Command("Flux resources", "All resources reconciled", "Some resources not reconciled", "get", "all").Run())
}

// CheckInfrastructureComponents checks each configured deployment.
func (c *Checker) CheckInfrastructureComponents() {
	c.Printer.Section("🏗️  Infrastructure Components")

	kubectl := c.kubectl()
	for _, comp := range c.Config.Components {
		dc := &kubecheck.DeploymentCheck{
			Namespace:  comp.Namespace,
			Deployment: comp.Deployment,
			Kubectl:    kubectl,
		}
		c.record(dc.Run())
	}
}

// CheckDatabaseCluster checks instance readiness and phase of the
// database operator's Cluster resource.
func (c *Checker) CheckDatabaseCluster() {
	c.Printer.Section("🗄️  Database Cluster Health")

	db := c.Config.Database
	dc := &kubecheck.DatabaseCheck{
		Namespace:    db.Namespace,
		Cluster:      db.Cluster,
		HealthyPhase: db.HealthyPhase,
		Kubectl:      c.kubectl(),
	}
	for _, r := range dc.Run() {
		c.record(r)
	}
}

// CheckApplication checks the application deployment and its health
// endpoint.
func (c *Checker) CheckApplication() {
	app := c.Config.Application
	c.Printer.Section("🔥 " + app.Name + " Application Health")

	dc := &kubecheck.DeploymentCheck{
		Name:            app.Name + " deployment",
		Namespace:       app.Namespace,
		Deployment:      app.Deployment,
		ParseFailDetail: "Cannot parse deployment status",
		Kubectl:         c.kubectl(),
	}
	c.record(dc.Run())

	health := &httpcheck.Check{
		Name:       "Health endpoint",
		URL:        app.HealthURL,
		PassDetail: "Responding correctly",
		FailDetail: "Not responding",
		Client:     c.Client,
	}
	c.record(health.Run())
}

// CheckMonitoringStack probes Prometheus and Grafana. Scrape targets are
// only inspected when Prometheus itself is healthy.
func (c *Checker) CheckMonitoringStack() {
	c.Printer.Section("📊 Monitoring Stack Health")

	mon := c.Config.Monitoring
	prometheus := (&httpcheck.Check{
		Name:       "Prometheus",
		URL:        mon.PrometheusHealthURL(),
		PassDetail: "Healthy",
		FailDetail: "Not responding",
		Client:     c.Client,
	}).Run()
	c.record(prometheus)

	grafana := &httpcheck.Check{
		Name:       "Grafana",
		URL:        mon.GrafanaHealthURL(),
		PassDetail: "Healthy",
		FailDetail: "Not responding",
		Client:     c.Client,
	}
	c.record(grafana.Run())

	if prometheus.OK() {
		targets := &promcheck.TargetsCheck{URL: mon.PrometheusURL, Client: c.Client}
		c.record(targets.Run())
	}
}

// CheckIngressConnectivity probes each ingress host over plain HTTP.
func (c *Checker) CheckIngressConnectivity() {
	c.Printer.Section("🌐 Ingress Connectivity")

	for _, e := range c.Config.Ingress {
		name := e.Description
		if name == "" {
			name = e.Host
		}
		url := e.URL()
		probe := &httpcheck.Check{
			Name:       name,
			URL:        url,
			PassDetail: url + " accessible",
			FailDetail: url + " not accessible",
			Client:     c.Client,
		}
		c.record(probe.Run())
	}
}

// CheckResourceUsage checks node utilization. Missing metrics only warn.
func (c *Checker) CheckResourceUsage() {
	c.Printer.Section("📈 Resource Usage")

	rc := &resourcecheck.Check{
		UnhealthyPercent: c.Config.Resources.UnhealthyPercent,
		WarningPercent:   c.Config.Resources.WarningPercent,
		Kubectl:          c.kubectl(),
	}
	out := rc.Run()
	for _, n := range out.Nodes {
		c.record(n.Result)
		if n.Warning != "" {
			c.warn(n.Warning)
		}
	}
	if out.Warning != "" {
		c.warn(out.Warning)
	}
}
