package check

import (
	"errors"
	"testing"
)

func TestResult_Fail(t *testing.T) {
	r := &Result{Name: "test"}
	err := errors.New("test error")

	result := r.Fail("something failed", err)

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, StatusFail)
	}
	if len(result.Details) != 1 || result.Details[0] != "something failed" {
		t.Errorf("Details = %v, want [something failed]", result.Details)
	}
	if result.Err != err {
		t.Errorf("Err = %v, want %v", result.Err, err)
	}
}

func TestResult_Failf(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.Failf("value %d is invalid", 42)

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, StatusFail)
	}
	if len(result.Details) != 1 || result.Details[0] != "value 42 is invalid" {
		t.Errorf("Details = %v, want [value 42 is invalid]", result.Details)
	}
	if result.Err == nil || result.Err.Error() != "value 42 is invalid" {
		t.Errorf("Err = %v, want error with message 'value 42 is invalid'", result.Err)
	}
}

func TestResult_Passf(t *testing.T) {
	r := &Result{Name: "Node readiness"}

	result := r.Passf("%d/%d nodes ready", 3, 3)

	if result.Status != StatusOK {
		t.Errorf("Status = %v, want %v", result.Status, StatusOK)
	}
	if result.Message() != "3/3 nodes ready" {
		t.Errorf("Message() = %q, want %q", result.Message(), "3/3 nodes ready")
	}
	if result.Err != nil {
		t.Errorf("Err = %v, want nil", result.Err)
	}
}

func TestResult_PassEmptyDetail(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.Pass("")

	if len(result.Details) != 0 {
		t.Errorf("Details = %v, want none", result.Details)
	}
}

func TestResult_Set(t *testing.T) {
	tests := []struct {
		name       string
		ok         bool
		wantStatus Status
		wantErr    bool
	}{
		{"ok passes", true, StatusOK, false},
		{"not ok fails", false, StatusFail, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Result{Name: "Grafana"}
			result := r.Set(tt.ok, "detail")
			if result.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", result.Status, tt.wantStatus)
			}
			if (result.Err != nil) != tt.wantErr {
				t.Errorf("Err = %v, wantErr %v", result.Err, tt.wantErr)
			}
			if result.Message() != "detail" {
				t.Errorf("Message() = %q, want %q", result.Message(), "detail")
			}
		})
	}
}

func TestResult_AddDetail(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.AddDetail("first detail").AddDetail("second detail")

	if len(result.Details) != 2 {
		t.Errorf("len(Details) = %d, want 2", len(result.Details))
	}
	if result.Details[0] != "first detail" || result.Details[1] != "second detail" {
		t.Errorf("Details = %v, want [first detail, second detail]", result.Details)
	}
	if result != r {
		t.Error("AddDetail should return the same Result pointer")
	}
}

func TestResult_AddDetailf(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.AddDetailf("url: %s", "http://grafana.local")

	if len(result.Details) != 1 || result.Details[0] != "url: http://grafana.local" {
		t.Errorf("Details = %v, want [url: http://grafana.local]", result.Details)
	}
}
