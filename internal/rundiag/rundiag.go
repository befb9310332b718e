// Package rundiag is the process's only diagnostic surface: one stderr
// line on start, one on exit, each tagged with a run id. The engine itself
// has no diagnostics of its own, so this never touches stdout — stdout is
// pure protocol output from the first byte to the last.
package rundiag

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Run tags one process invocation with an opaque run id, the same role
// uuid.New() plays for Order.id in the teacher's kitchen package — except
// here the id identifies a run, not a domain entity, since bakery orders
// are identified by arrival tick, not by UUID.
type Run struct {
	id      string
	started time.Time
	w       io.Writer
}

// New mints a run id and logs the start line to w (ordinarily os.Stderr).
func New(w io.Writer) *Run {
	r := &Run{id: uuid.New().String(), started: time.Now(), w: w}
	fmt.Fprintf(w, "run %s: start\n", r.id)
	return r
}

// Exit logs the exit line, including the outcome (nil means clean
// end-of-input) and the run's wall-clock duration.
func (r *Run) Exit(cause error) {
	elapsed := time.Since(r.started)
	if cause == nil {
		fmt.Fprintf(r.w, "run %s: exit ok after %s\n", r.id, elapsed)
		return
	}
	fmt.Fprintf(r.w, "run %s: exit error after %s: %v\n", r.id, elapsed, cause)
}

// ID returns the run's correlation id.
func (r *Run) ID() string {
	return r.id
}
