package export

import (
	"fmt"
	"time"

	"github.com/san-kum/qlture/internal/cycle"
	"github.com/san-kum/qlture/internal/pattern"
)

// Epoch is the virtual start time used for recordings, so a seeded
// recording is reproducible.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Shot is a frame delivered by the cycle and the virtual time it was
// delivered at.
type Shot struct {
	Frame *pattern.Frame
	At    time.Time
}

type film struct {
	shots []Shot
	now   *time.Time
}

func (f *film) Show(fr *pattern.Frame) {
	f.shots = append(f.shots, Shot{Frame: fr, At: *f.now})
}

// Record runs a cycle on a virtual clock, unpaused right after its
// priming frame, and returns the first n frames it draws. Time jumps
// straight from one trigger deadline to the next.
func Record(src cycle.Source, opts cycle.Options, n int) ([]Shot, error) {
	if _, err := pattern.NewFrame(opts.Width, opts.Height); err != nil {
		return nil, err
	}

	now := Epoch
	sink := &film{now: &now}
	opts.Clock = func() time.Time { return now }

	c := cycle.New(src, sink, opts)
	c.Key(cycle.KeyPause)

	// every redraw on a valid size delivers a frame; the bound only
	// guards against a source whose generators keep failing
	for i := 0; len(sink.shots) < n; i++ {
		if i > n*16 {
			return sink.shots, fmt.Errorf("export: only %d of %d frames rendered", len(sink.shots), n)
		}
		now = c.NextDeadline()
		c.Advance(now)
	}
	return sink.shots[:n], nil
}
