package kubecheck

import (
	"fmt"

	"github.com/vertti/clustercheck/pkg/check"
)

var (
	_ check.Checker = (*NodeReadinessCheck)(nil)
	_ check.Checker = (*DeploymentCheck)(nil)
)

// NodeReadinessCheck passes when every node reports Ready.
type NodeReadinessCheck struct {
	Kubectl CLI
}

// Run executes the node readiness check.
func (c *NodeReadinessCheck) Run() check.Result {
	result := check.Result{
		Name: "Node readiness",
	}

	ok, output := c.Kubectl.Run("get", "nodes", "-o", "json")
	if !ok {
		return result.Fail("Cannot get node status", fmt.Errorf("get nodes: %s", output))
	}

	nodes, err := DecodeNodeList([]byte(output))
	if err != nil {
		return result.Fail("Cannot parse node status", err)
	}

	ready, total := nodes.ReadyCount(), len(nodes.Items)
	return result.Set(ready == total, fmt.Sprintf("%d/%d nodes ready", ready, total))
}

// DeploymentCheck passes when a deployment's ready replicas equal its
// desired replicas.
type DeploymentCheck struct {
	Name            string // report name (default: "<namespace>/<deployment>")
	Namespace       string
	Deployment      string
	ParseFailDetail string // default: "Cannot parse status"
	Kubectl         CLI
}

// Run executes the deployment check.
func (c *DeploymentCheck) Run() check.Result {
	result := check.Result{
		Name: c.Name,
	}
	if result.Name == "" {
		result.Name = c.Namespace + "/" + c.Deployment
	}

	ok, output := c.Kubectl.Run("get", "deployment", c.Deployment, "-n", c.Namespace, "-o", "json")
	if !ok {
		return result.Fail("Deployment not found", fmt.Errorf("get deployment %s/%s: %s", c.Namespace, c.Deployment, output))
	}

	dep, err := DecodeDeployment([]byte(output))
	if err != nil {
		detail := c.ParseFailDetail
		if detail == "" {
			detail = "Cannot parse status"
		}
		return result.Fail(detail, err)
	}

	ready, desired := dep.Ready(), dep.Desired()
	return result.Set(ready == desired, fmt.Sprintf("%d/%d replicas ready", ready, desired))
}

// DatabaseCheck inspects the database operator's Cluster resource.
// It yields two results (instances, phase) when the resource decodes,
// otherwise one failed result.
type DatabaseCheck struct {
	Namespace    string
	Cluster      string
	HealthyPhase string
	Kubectl      CLI
}

// Run executes the database cluster check.
func (c *DatabaseCheck) Run() []check.Result {
	instances := check.Result{
		Name: "PostgreSQL cluster",
	}

	ok, output := c.Kubectl.Run("get", "cluster", c.Cluster, "-n", c.Namespace, "-o", "json")
	if !ok {
		return []check.Result{
			instances.Fail("Cluster not found", fmt.Errorf("get cluster %s/%s: %s", c.Namespace, c.Cluster, output)),
		}
	}

	cluster, err := DecodeDatabaseCluster([]byte(output))
	if err != nil {
		return []check.Result{instances.Fail("Cannot parse cluster status", err)}
	}

	st := cluster.Status
	instances.Set(cluster.Healthy(), fmt.Sprintf("%d/%d instances ready", st.ReadyInstances, st.Instances))

	phase := check.Result{
		Name: "Cluster phase",
	}
	phase.Set(st.Phase == c.HealthyPhase, "Phase: "+st.Phase)

	return []check.Result{instances, phase}
}
