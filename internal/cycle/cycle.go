package cycle

import (
	"io"
	"log"
	"time"

	"github.com/san-kum/qlture/internal/pattern"
)

// Sink displays a frame, replacing whatever it showed before.
type Sink interface {
	Show(f *pattern.Frame)
}

// Source hands out the next generator. *pattern.Sequence satisfies it.
type Source interface {
	Next() pattern.Generator
}

type Options struct {
	Width, Height int
	Normal        Profile
	Snow          Profile
	Logger        *log.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
}

type Cycle struct {
	src    Source
	sink   Sink
	logger *log.Logger
	clock  func() time.Time

	current pattern.Generator
	paused  bool
	width   int
	height  int

	normal  Profile
	snow    Profile
	profile Profile
	onSnow  bool

	redraw trigger
	swap   trigger
}

// New builds a cycle on the normal profile, pulls the first generator,
// draws one frame straight away and leaves the cycle paused.
func New(src Source, sink Sink, opts Options) *Cycle {
	if opts.Normal == (Profile{}) {
		opts.Normal = NormalProfile
	}
	if opts.Snow == (Profile{}) {
		opts.Snow = SnowProfile
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	c := &Cycle{
		src:     src,
		sink:    sink,
		logger:  opts.Logger,
		clock:   opts.Clock,
		width:   opts.Width,
		height:  opts.Height,
		normal:  opts.Normal,
		snow:    opts.Snow,
		profile: opts.Normal,
	}
	c.redraw = trigger{interval: c.profile.Redraw, fire: c.Redraw}
	c.swap = trigger{interval: c.profile.Switch, fire: c.Switch}
	c.current = src.Next()

	now := c.clock()
	c.redraw.start(now)
	c.swap.start(now)

	c.paused = false
	c.Redraw(now)
	c.paused = true
	return c
}

// Advance fires every trigger whose deadline has passed, switch first.
func (c *Cycle) Advance(now time.Time) {
	c.swap.poll(now)
	c.redraw.poll(now)
}

// Redraw renders the current generator at now unless paused.
func (c *Cycle) Redraw(now time.Time) {
	if c.paused {
		return
	}
	f, err := c.current.Render(seconds(now), c.width, c.height)
	if err != nil {
		c.logger.Printf("render %s: %v", c.current, err)
		return
	}
	c.sink.Show(f)
}

// Switch pulls the next generator and flips both trigger intervals to the
// other profile in one step.
func (c *Cycle) Switch(now time.Time) {
	c.current = c.src.Next()
	c.onSnow = !c.onSnow
	next := c.normal
	if c.onSnow {
		next = c.snow
	}
	c.profile = next
	c.redraw.setInterval(next.Redraw, now)
	c.swap.setInterval(next.Switch, now)
	c.logger.Printf("switch to %s on %s profile", c.current, next.Name)
}

// Click pulls the next generator and keeps the current profile.
func (c *Cycle) Click() {
	c.current = c.src.Next()
	c.logger.Printf("click: %s", c.current)
}

func (c *Cycle) Key(k Key) Action {
	switch k {
	case KeyPause:
		c.paused = !c.paused
		c.logger.Printf("paused=%t", c.paused)
	case KeyQuit:
		return Quit
	}
	return Continue
}

// Resize sets the frame size used by later redraws.
func (c *Cycle) Resize(width, height int) {
	c.width, c.height = width, height
}

func (c *Cycle) Paused() bool               { return c.paused }
func (c *Cycle) Profile() Profile           { return c.profile }
func (c *Cycle) Current() pattern.Generator { return c.current }
func (c *Cycle) Size() (width, height int)  { return c.width, c.height }

// Intervals reports the redraw and switch intervals currently scheduled.
func (c *Cycle) Intervals() (redraw, swap time.Duration) {
	return c.redraw.interval, c.swap.interval
}

// NextDeadline is the earliest time at which Advance has work to do.
func (c *Cycle) NextDeadline() time.Time {
	if c.redraw.deadline.Before(c.swap.deadline) {
		return c.redraw.deadline
	}
	return c.swap.deadline
}

func seconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
