package eventlog

import (
	"fmt"
	"io"

	"github.com/samdwyer/dogboard/internal/common/clock"
)

// Recorder stamps events with the clock and writes them as lines.
//
// The first write error is kept and every later Record returns it without
// writing, so a game can run to completion and check Err once at the end.
type Recorder struct {
	w     io.Writer
	clock clock.Clock
	count int
	err   error
}

// NewRecorder creates a recorder writing to w. A nil clock uses the system clock.
func NewRecorder(w io.Writer, c clock.Clock) *Recorder {
	if c == nil {
		c = &clock.DefaultClock{}
	}
	return &Recorder{w: w, clock: c}
}

// Record writes one event. A zero Time is set from the clock.
func (r *Recorder) Record(e Event) error {
	if r.err != nil {
		return r.err
	}
	if e.Time.IsZero() {
		e.Time = r.clock.Now()
	}
	if _, err := io.WriteString(r.w, e.Line()+"\n"); err != nil {
		r.err = fmt.Errorf("write event %d: %w", r.count, err)
		return r.err
	}
	r.count++
	return nil
}

// Count returns the number of events written.
func (r *Recorder) Count() int {
	return r.count
}

// Err returns the first write error, if any.
func (r *Recorder) Err() error {
	return r.err
}
