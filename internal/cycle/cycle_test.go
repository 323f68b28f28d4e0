package cycle_test

import (
	"bytes"
	"fmt"
	"log"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/qlture/internal/cycle"
	"github.com/san-kum/qlture/internal/pattern"
)

// stubGenerator paints every pixel with its id in the red channel.
type stubGenerator struct {
	id       int
	category pattern.Category
}

func (g stubGenerator) Render(t float64, width, height int) (*pattern.Frame, error) {
	f, err := pattern.NewFrame(width, height)
	if err != nil {
		return nil, err
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			f.Set(x, y, uint8(g.id), 0, 0)
		}
	}
	return f, nil
}

func (g stubGenerator) Category() pattern.Category { return g.category }
func (g stubGenerator) String() string             { return fmt.Sprintf("stub#%d", g.id) }

type countingSource struct{ pulls int }

func (s *countingSource) Next() pattern.Generator {
	s.pulls++
	cat := pattern.Patterned
	if s.pulls%2 == 0 {
		cat = pattern.Noise
	}
	return stubGenerator{id: s.pulls, category: cat}
}

type recordingSink struct{ frames []*pattern.Frame }

func (s *recordingSink) Show(f *pattern.Frame) { s.frames = append(s.frames, f) }

func (s *recordingSink) lastID() int {
	r, _, _ := s.frames[len(s.frames)-1].At(0, 0)
	return int(r)
}

var _ = Describe("Cycle", func() {
	var (
		src   *countingSource
		sink  *recordingSink
		logs  *bytes.Buffer
		start time.Time
		c     *cycle.Cycle
	)

	BeforeEach(func() {
		src = &countingSource{}
		sink = &recordingSink{}
		logs = &bytes.Buffer{}
		start = time.Unix(1_700_000_000, 0)
		c = cycle.New(src, sink, cycle.Options{
			Width:  4,
			Height: 3,
			Logger: log.New(logs, "", 0),
			Clock:  func() time.Time { return start },
		})
	})

	Describe("construction", func() {
		It("draws one frame before any tick and ends up paused", func() {
			Expect(sink.frames).To(HaveLen(1))
			Expect(sink.frames[0].Width).To(Equal(4))
			Expect(sink.frames[0].Height).To(Equal(3))
			Expect(sink.lastID()).To(Equal(1))
			Expect(c.Paused()).To(BeTrue())
		})

		It("starts on the normal profile", func() {
			redraw, swap := c.Intervals()
			Expect(c.Profile().Name).To(Equal("normal"))
			Expect(redraw).To(Equal(33 * time.Millisecond))
			Expect(swap).To(Equal(2 * time.Second))
			Expect(c.NextDeadline()).To(Equal(start.Add(33 * time.Millisecond)))
		})
	})

	Describe("redraw", func() {
		It("skips frames while paused", func() {
			c.Advance(start.Add(40 * time.Millisecond))
			c.Redraw(start.Add(50 * time.Millisecond))
			Expect(sink.frames).To(HaveLen(1))
		})

		It("draws exactly once per tick after unpausing", func() {
			Expect(c.Key(cycle.KeyPause)).To(Equal(cycle.Continue))
			Expect(c.Paused()).To(BeFalse())

			c.Advance(start.Add(33 * time.Millisecond))
			Expect(sink.frames).To(HaveLen(2))

			c.Advance(start.Add(40 * time.Millisecond))
			Expect(sink.frames).To(HaveLen(2))

			c.Advance(start.Add(66 * time.Millisecond))
			Expect(sink.frames).To(HaveLen(3))
		})

		It("drops missed periods instead of bursting", func() {
			c.Key(cycle.KeyPause)
			c.Advance(start.Add(500 * time.Millisecond))
			Expect(sink.frames).To(HaveLen(2))
		})

		It("uses the resized dimensions", func() {
			c.Key(cycle.KeyPause)
			c.Resize(7, 2)
			c.Redraw(start)
			Expect(sink.frames[1].Width).To(Equal(7))
			Expect(sink.frames[1].Height).To(Equal(2))
		})

		It("logs render failures and leaves the sink alone", func() {
			c.Key(cycle.KeyPause)
			c.Resize(0, 0)
			c.Redraw(start)
			Expect(sink.frames).To(HaveLen(1))
			Expect(logs.String()).To(ContainSubstring("invalid frame size"))
		})
	})

	Describe("switch trigger", func() {
		It("pulls the next generator and moves both intervals to snow together", func() {
			c.Advance(start.Add(2 * time.Second))

			redraw, swap := c.Intervals()
			Expect(c.Profile().Name).To(Equal("snow"))
			Expect(redraw).To(Equal(83 * time.Millisecond))
			Expect(swap).To(Equal(200 * time.Millisecond))
			Expect(c.Current().Category()).To(Equal(pattern.Noise))
			Expect(src.pulls).To(Equal(2))
		})

		It("restarts both triggers from the switch time", func() {
			at := start.Add(2 * time.Second)
			c.Advance(at)
			Expect(c.NextDeadline()).To(Equal(at.Add(83 * time.Millisecond)))
		})

		It("flips back to normal on the next fire", func() {
			at := start.Add(2 * time.Second)
			c.Advance(at)
			c.Advance(at.Add(200 * time.Millisecond))

			redraw, swap := c.Intervals()
			Expect(c.Profile().Name).To(Equal("normal"))
			Expect(redraw).To(Equal(33 * time.Millisecond))
			Expect(swap).To(Equal(2 * time.Second))
			Expect(c.Current().Category()).To(Equal(pattern.Patterned))
		})

		It("renders the new generator on the next redraw", func() {
			c.Key(cycle.KeyPause)
			at := start.Add(2 * time.Second)
			c.Advance(at)
			c.Advance(at.Add(83 * time.Millisecond))
			Expect(sink.lastID()).To(Equal(2))
		})
	})

	Describe("input", func() {
		It("advances the generator on click without flipping the profile", func() {
			before := c.Profile()
			redraw, swap := c.Intervals()

			c.Click()

			Expect(src.pulls).To(Equal(2))
			Expect(c.Profile()).To(Equal(before))
			r2, s2 := c.Intervals()
			Expect(r2).To(Equal(redraw))
			Expect(s2).To(Equal(swap))
		})

		It("toggles pause", func() {
			c.Key(cycle.KeyPause)
			c.Key(cycle.KeyPause)
			Expect(c.Paused()).To(BeTrue())
		})

		It("reports quit without side effects", func() {
			Expect(c.Key(cycle.KeyQuit)).To(Equal(cycle.Quit))
			Expect(c.Key(cycle.KeyNone)).To(Equal(cycle.Continue))
			Expect(c.Paused()).To(BeTrue())
		})
	})

	Describe("custom profiles", func() {
		It("flips between configured profiles even when they share a redraw rate", func() {
			normal := cycle.Profile{Name: "normal", Redraw: 50 * time.Millisecond, Switch: time.Second}
			snow := cycle.Profile{Name: "snow", Redraw: 50 * time.Millisecond, Switch: 100 * time.Millisecond}
			c = cycle.New(src, sink, cycle.Options{Width: 1, Height: 1, Normal: normal, Snow: snow, Clock: func() time.Time { return start }})

			c.Switch(start)
			Expect(c.Profile()).To(Equal(snow))
			c.Switch(start)
			Expect(c.Profile()).To(Equal(normal))
		})
	})
})
