package check

// Tally accumulates outcomes over one run.
// It is owned by a single goroutine.
type Tally struct {
	Passed   int
	Failed   int
	Warnings []string
}

// Record counts a result as passed or failed.
func (t *Tally) Record(r Result) {
	if r.OK() {
		t.Passed++
	} else {
		t.Failed++
	}
}

// Warn appends a warning. Warnings never change the pass/fail counts.
func (t *Tally) Warn(msg string) {
	t.Warnings = append(t.Warnings, msg)
}

// Healthy reports whether no check failed.
func (t *Tally) Healthy() bool {
	return t.Failed == 0
}
