package httpcheck

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/vertti/clustercheck/pkg/check"
)

// DefaultTimeout bounds every request unless the client overrides it.
const DefaultTimeout = 10 * time.Second

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RealHTTPClient uses the real net/http package.
// Redirects are followed.
type RealHTTPClient struct {
	Timeout time.Duration
}

// Do executes an HTTP request.
func (c *RealHTTPClient) Do(req *http.Request) (*http.Response, error) {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client := &http.Client{
		Timeout: timeout,
	}

	return client.Do(req)
}

// Get issues a GET request and returns the status code and body.
func Get(client HTTPClient, rawURL string) (int, []byte, error) {
	if client == nil {
		client = &RealHTTPClient{}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return 0, nil, fmt.Errorf("invalid URL: %s", rawURL)
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, body, nil
}

// Probe reports whether rawURL answers a GET with expectedStatus
// (0 means 200). Connection errors, timeouts and any other status
// yield false; Probe never panics.
func Probe(client HTTPClient, rawURL string, expectedStatus int) bool {
	if expectedStatus == 0 {
		expectedStatus = http.StatusOK
	}

	status, _, err := Get(client, rawURL)
	if err != nil {
		slog.Debug("http probe failed", slog.String("url", rawURL), slog.Any("error", err))
		return false
	}
	if status != expectedStatus {
		slog.Debug("http probe unexpected status",
			slog.String("url", rawURL),
			slog.Int("status", status),
			slog.Int("expected", expectedStatus),
		)
		return false
	}
	return true
}

var _ check.Checker = (*Check)(nil)

// Check verifies an HTTP endpoint answers with the expected status.
type Check struct {
	Name           string     // report name, e.g. "Grafana"
	URL            string     // target URL (required)
	ExpectedStatus int        // expected HTTP status (default: 200)
	PassDetail     string     // detail shown on success (default: "status <code>")
	FailDetail     string     // detail shown on failure (default: "<url> not responding")
	Client         HTTPClient // injected for testing
}

// Run executes the HTTP health check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: c.Name,
	}
	if result.Name == "" {
		result.Name = "http: " + c.URL
	}

	expectedStatus := c.ExpectedStatus
	if expectedStatus == 0 {
		expectedStatus = http.StatusOK
	}

	if !Probe(c.Client, c.URL, expectedStatus) {
		detail := c.FailDetail
		if detail == "" {
			detail = c.URL + " not responding"
		}
		return result.Fail(detail, fmt.Errorf("%s did not answer with status %d", c.URL, expectedStatus))
	}

	if c.PassDetail == "" {
		return result.Passf("status %d", expectedStatus)
	}
	return result.Pass(c.PassDetail)
}
