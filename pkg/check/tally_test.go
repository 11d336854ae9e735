package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyRecord(t *testing.T) {
	var tally Tally

	tally.Record(Result{Status: StatusOK})
	tally.Record(Result{Status: StatusOK})
	tally.Record(Result{Status: StatusFail})

	assert.Equal(t, 2, tally.Passed)
	assert.Equal(t, 1, tally.Failed)
	assert.False(t, tally.Healthy())
}

func TestTallyWarningsDoNotAffectHealth(t *testing.T) {
	var tally Tally

	tally.Record(Result{Status: StatusOK})
	tally.Warn("High resource usage on node-1")
	tally.Warn("Cannot get node resource usage")

	assert.True(t, tally.Healthy())
	assert.Equal(t, 1, tally.Passed)
	assert.Equal(t, 0, tally.Failed)
	assert.Equal(t, []string{"High resource usage on node-1", "Cannot get node resource usage"}, tally.Warnings)
}

func TestTallyEmptyIsHealthy(t *testing.T) {
	var tally Tally
	assert.True(t, tally.Healthy())
}
