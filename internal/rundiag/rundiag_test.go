package rundiag

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogsStartLineWithID(t *testing.T) {
	var buf strings.Builder
	r := New(&buf)

	assert.NotEmpty(t, r.ID())
	assert.Contains(t, buf.String(), r.ID())
	assert.Contains(t, buf.String(), "start")
}

func TestExitLogsOkOnNilCause(t *testing.T) {
	var buf strings.Builder
	r := New(&buf)
	buf.Reset()

	r.Exit(nil)
	assert.Contains(t, buf.String(), "exit ok")
}

func TestExitLogsErrorCause(t *testing.T) {
	var buf strings.Builder
	r := New(&buf)
	buf.Reset()

	r.Exit(errors.New("boom"))
	assert.Contains(t, buf.String(), "exit error")
	assert.Contains(t, buf.String(), "boom")
}

func TestRunIDsAreDistinct(t *testing.T) {
	var buf strings.Builder
	a := New(&buf)
	b := New(&buf)
	assert.NotEqual(t, a.ID(), b.ID())
}
