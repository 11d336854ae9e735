//go:build unix

package cmdcheck

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealRunner_RunCommandContext(t *testing.T) {
	r := &RealRunner{}

	stdout, stderr, err := r.RunCommandContext(context.Background(), "sh", "-c", "echo out; echo err >&2")

	require.NoError(t, err)
	assert.Equal(t, "out\n", stdout)
	assert.Equal(t, "err\n", stderr)
}

func TestRealRunner_NonZeroExit(t *testing.T) {
	r := &RealRunner{}

	_, _, err := r.RunCommandContext(context.Background(), "sh", "-c", "exit 3")

	assert.Error(t, err)
}

func TestExecRealTimeout(t *testing.T) {
	ok, output := Exec(&RealRunner{}, 50*time.Millisecond, []string{"sleep", "5"})

	assert.False(t, ok)
	assert.Equal(t, TimeoutMessage, output)
}

func TestExecRealTimeoutWithLingeringChild(t *testing.T) {
	start := time.Now()

	ok, output := Exec(&RealRunner{}, 200*time.Millisecond, []string{"sh", "-c", "sleep 3; true"})

	assert.False(t, ok)
	assert.Equal(t, TimeoutMessage, output)
	assert.Less(t, time.Since(start), 200*time.Millisecond+WaitDelay+time.Second)
}
