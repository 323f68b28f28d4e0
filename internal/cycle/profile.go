package cycle

import (
	"math"
	"time"
)

// Profile pairs a redraw interval with a switch interval.
type Profile struct {
	Name   string
	Redraw time.Duration
	Switch time.Duration
}

// FPSInterval converts frames per second to a whole-millisecond interval,
// rounding to nearest (30 fps -> 33ms).
func FPSInterval(fps int) time.Duration {
	return time.Duration(math.Round(1000/float64(fps))) * time.Millisecond
}

var (
	NormalProfile = Profile{Name: "normal", Redraw: FPSInterval(30), Switch: 2000 * time.Millisecond}
	SnowProfile   = Profile{Name: "snow", Redraw: FPSInterval(12), Switch: 200 * time.Millisecond}
)
