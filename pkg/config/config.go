// Package config holds the checker configuration. Every default reproduces
// the homelab the tool was written for, so running without a file checks
// that environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vertti/clustercheck/pkg/logging"
)

// FileName is the configuration file looked up from the working directory.
const FileName = ".clustercheck.yaml"

// Default values.
const (
	DefaultTitle = "Phoenix GitOps Homelab Health Check"

	DefaultKubectl = "kubectl"
	DefaultFlux    = "flux"

	DefaultCommandTimeout = 30 * time.Second
	DefaultHTTPTimeout    = 10 * time.Second

	DefaultDatabaseNamespace    = "database"
	DefaultDatabaseCluster      = "postgres-cluster"
	DefaultDatabaseHealthyPhase = "Cluster in healthy state"

	DefaultApplicationName       = "Phoenix"
	DefaultApplicationNamespace  = "phoenix-app"
	DefaultApplicationDeployment = "phoenix-app"
	DefaultApplicationHealthURL  = "http://phoenix.local/health"

	DefaultPrometheusURL = "http://prometheus.local"
	DefaultGrafanaURL    = "http://grafana.local"

	DefaultUnhealthyPercent = 80
	DefaultWarningPercent   = 90

	DefaultLogLevel = "warn"
)

// Component is an infrastructure deployment that must be fully ready.
type Component struct {
	Namespace  string `yaml:"namespace"`
	Deployment string `yaml:"deployment"`
}

// Endpoint is an ingress host probed over plain HTTP.
type Endpoint struct {
	Host        string `yaml:"host"`
	Description string `yaml:"description"`
}

// URL returns the probe URL for the host.
func (e Endpoint) URL() string {
	return "http://" + e.Host
}

// ClientsConfig names the cluster client binaries and the kubeconfig
// selection forwarded to both.
type ClientsConfig struct {
	Kubectl    string `yaml:"kubectl"`
	Flux       string `yaml:"flux"`
	Kubeconfig string `yaml:"kubeconfig,omitempty"`
	Context    string `yaml:"context,omitempty"`
}

// TimeoutsConfig bounds each external call.
type TimeoutsConfig struct {
	Command time.Duration `yaml:"command"`
	HTTP    time.Duration `yaml:"http"`
}

// DatabaseConfig locates the database operator's Cluster resource.
type DatabaseConfig struct {
	Namespace    string `yaml:"namespace"`
	Cluster      string `yaml:"cluster"`
	HealthyPhase string `yaml:"healthy_phase"`
}

// ApplicationConfig describes the application workload and its health URL.
type ApplicationConfig struct {
	Name       string `yaml:"name"`
	Namespace  string `yaml:"namespace"`
	Deployment string `yaml:"deployment"`
	HealthURL  string `yaml:"health_url"`
}

// MonitoringConfig holds the base URLs of the monitoring stack.
type MonitoringConfig struct {
	PrometheusURL string `yaml:"prometheus_url"`
	GrafanaURL    string `yaml:"grafana_url"`
}

// PrometheusHealthURL returns the Prometheus readiness endpoint.
func (m MonitoringConfig) PrometheusHealthURL() string {
	return strings.TrimRight(m.PrometheusURL, "/") + "/-/healthy"
}

// GrafanaHealthURL returns the Grafana health endpoint.
func (m MonitoringConfig) GrafanaHealthURL() string {
	return strings.TrimRight(m.GrafanaURL, "/") + "/api/health"
}

// ResourcesConfig holds node utilization limits in percent.
type ResourcesConfig struct {
	UnhealthyPercent int `yaml:"unhealthy_percent"`
	WarningPercent   int `yaml:"warning_percent"`
}

// Config is the top-level configuration.
type Config struct {
	Title       string               `yaml:"title"`
	Clients     ClientsConfig        `yaml:"clients"`
	Timeouts    TimeoutsConfig       `yaml:"timeouts"`
	Components  []Component          `yaml:"components"`
	Database    DatabaseConfig       `yaml:"database"`
	Application ApplicationConfig    `yaml:"application"`
	Monitoring  MonitoringConfig     `yaml:"monitoring"`
	Ingress     []Endpoint           `yaml:"ingress"`
	Resources   ResourcesConfig      `yaml:"resources"`
	Log         logging.LoggerConfig `yaml:"log"`
}

// New returns a Config with all defaults populated.
func New() *Config {
	return &Config{
		Title: DefaultTitle,
		Clients: ClientsConfig{
			Kubectl: DefaultKubectl,
			Flux:    DefaultFlux,
		},
		Timeouts: TimeoutsConfig{
			Command: DefaultCommandTimeout,
			HTTP:    DefaultHTTPTimeout,
		},
		Components: []Component{
			{Namespace: "ingress-nginx", Deployment: "ingress-nginx-controller"},
			{Namespace: "cnpg-system", Deployment: "cnpg-controller-manager"},
			{Namespace: "monitoring", Deployment: "prometheus-operator"},
			{Namespace: "monitoring", Deployment: "grafana"},
		},
		Database: DatabaseConfig{
			Namespace:    DefaultDatabaseNamespace,
			Cluster:      DefaultDatabaseCluster,
			HealthyPhase: DefaultDatabaseHealthyPhase,
		},
		Application: ApplicationConfig{
			Name:       DefaultApplicationName,
			Namespace:  DefaultApplicationNamespace,
			Deployment: DefaultApplicationDeployment,
			HealthURL:  DefaultApplicationHealthURL,
		},
		Monitoring: MonitoringConfig{
			PrometheusURL: DefaultPrometheusURL,
			GrafanaURL:    DefaultGrafanaURL,
		},
		Ingress: []Endpoint{
			{Host: "phoenix.local", Description: "Phoenix App"},
			{Host: "grafana.local", Description: "Grafana UI"},
			{Host: "prometheus.local", Description: "Prometheus UI"},
		},
		Resources: ResourcesConfig{
			UnhealthyPercent: DefaultUnhealthyPercent,
			WarningPercent:   DefaultWarningPercent,
		},
		Log: logging.LoggerConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads the configuration file at explicitPath, or the first
// FileName found walking up from startDir when explicitPath is empty.
// Keys absent from the file keep their defaults; lists replace the
// default lists. When no file is found the defaults are returned with an
// empty path. The result is validated.
func Load(explicitPath, startDir string) (*Config, string, error) {
	cfg := New()

	path, err := FindFile(startDir, explicitPath)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return cfg, "", cfg.Validate()
		}
		return nil, "", err
	}

	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading the user's config file
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}

	if err := Decode(data, cfg); err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, path, nil
}

// Decode overlays YAML data onto cfg. Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Encode returns cfg as YAML.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Clients.Kubectl == "" {
		return errors.New("clients.kubectl is required")
	}
	if c.Clients.Flux == "" {
		return errors.New("clients.flux is required")
	}
	if c.Timeouts.Command <= 0 {
		return fmt.Errorf("timeouts.command must be positive, got %s", c.Timeouts.Command)
	}
	if c.Timeouts.HTTP <= 0 {
		return fmt.Errorf("timeouts.http must be positive, got %s", c.Timeouts.HTTP)
	}

	for i, comp := range c.Components {
		if comp.Namespace == "" || comp.Deployment == "" {
			return fmt.Errorf("components[%d]: namespace and deployment are required", i)
		}
	}

	if c.Database.Namespace == "" || c.Database.Cluster == "" {
		return errors.New("database.namespace and database.cluster are required")
	}
	if c.Database.HealthyPhase == "" {
		return errors.New("database.healthy_phase is required")
	}

	if c.Application.Namespace == "" || c.Application.Deployment == "" {
		return errors.New("application.namespace and application.deployment are required")
	}

	urls := []struct {
		key, value string
	}{
		{"application.health_url", c.Application.HealthURL},
		{"monitoring.prometheus_url", c.Monitoring.PrometheusURL},
		{"monitoring.grafana_url", c.Monitoring.GrafanaURL},
	}
	for _, u := range urls {
		if err := validateURL(u.value); err != nil {
			return fmt.Errorf("%s: %w", u.key, err)
		}
	}

	for i, e := range c.Ingress {
		if e.Host == "" {
			return fmt.Errorf("ingress[%d]: host is required", i)
		}
	}

	r := c.Resources
	if r.UnhealthyPercent <= 0 || r.UnhealthyPercent > 100 {
		return fmt.Errorf("resources.unhealthy_percent must be in 1..100, got %d", r.UnhealthyPercent)
	}
	if r.WarningPercent < r.UnhealthyPercent {
		return fmt.Errorf("resources.warning_percent (%d) must not be below unhealthy_percent (%d)", r.WarningPercent, r.UnhealthyPercent)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid URL: %q", raw)
	}
	return nil
}
