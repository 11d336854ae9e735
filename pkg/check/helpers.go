package check

import (
	"fmt"
)

// Pass sets the result to OK status with a detail message.
func (r *Result) Pass(detail string) Result {
	r.Status = StatusOK
	if detail != "" {
		r.Details = append(r.Details, detail)
	}
	return *r
}

// Passf sets the result to OK status with a formatted detail message.
func (r *Result) Passf(format string, args ...interface{}) Result {
	return r.Pass(fmt.Sprintf(format, args...))
}

// Fail sets the result to failed status with a detail message.
func (r *Result) Fail(detail string, err error) Result {
	r.Status = StatusFail
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// Failf sets the result to failed status with a formatted detail message.
func (r *Result) Failf(format string, args ...interface{}) Result {
	return r.Fail(fmt.Sprintf(format, args...), fmt.Errorf(format, args...))
}

// Set passes or fails the result depending on ok, using detail either way.
func (r *Result) Set(ok bool, detail string) Result {
	if ok {
		return r.Pass(detail)
	}
	return r.Fail(detail, fmt.Errorf("%s: %s", r.Name, detail))
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
