package promcheck

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vertti/clustercheck/pkg/check"
	"github.com/vertti/clustercheck/pkg/httpcheck"
)

// TargetsPath is the Prometheus API endpoint listing scrape targets.
const TargetsPath = "/api/v1/targets"

// ErrMalformedTargets is returned when the targets payload lacks the
// active target list or a target lacks its health field.
var ErrMalformedTargets = errors.New("malformed targets response")

// TargetHealth summarizes the active scrape targets.
type TargetHealth struct {
	Up    int
	Total int
}

// ParseTargets counts active targets whose health is "up".
func ParseTargets(body []byte) (TargetHealth, error) {
	if !gjson.ValidBytes(body) {
		return TargetHealth{}, fmt.Errorf("%w: invalid JSON", ErrMalformedTargets)
	}

	active := gjson.GetBytes(body, "data.activeTargets")
	if !active.IsArray() {
		return TargetHealth{}, fmt.Errorf("%w: data.activeTargets missing", ErrMalformedTargets)
	}

	var th TargetHealth
	for i, target := range active.Array() {
		health := target.Get("health")
		if !health.Exists() {
			return TargetHealth{}, fmt.Errorf("%w: target %d has no health", ErrMalformedTargets, i)
		}
		th.Total++
		if health.String() == "up" {
			th.Up++
		}
	}
	return th, nil
}

var _ check.Checker = (*TargetsCheck)(nil)

// TargetsCheck passes when at least one active scrape target is up.
type TargetsCheck struct {
	URL    string               // Prometheus base URL (required)
	Client httpcheck.HTTPClient // injected for testing
}

// Run executes the targets check.
func (c *TargetsCheck) Run() check.Result {
	result := check.Result{
		Name: "Prometheus targets",
	}

	targetsURL := strings.TrimRight(c.URL, "/") + TargetsPath

	status, body, err := httpcheck.Get(c.Client, targetsURL)
	if err != nil {
		return result.Fail("Cannot connect to Prometheus API", err)
	}
	if status != http.StatusOK {
		return result.Fail("Cannot fetch targets", fmt.Errorf("prometheus returned status %d", status))
	}

	th, err := ParseTargets(body)
	if err != nil {
		return result.Fail("Cannot parse targets", err)
	}

	return result.Set(th.Up > 0, fmt.Sprintf("%d/%d targets up", th.Up, th.Total))
}
