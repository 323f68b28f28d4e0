package pattern

import (
	"fmt"
	"math/rand/v2"
)

// Snow is grayscale noise: every pixel gets an independent value in
// [Min, Max) replicated across all three channels. Time is ignored.
type Snow struct {
	Min, Max int
	rng      *rand.Rand
}

func NewSnow(r *rand.Rand, lo, hi int) Snow {
	return Snow{Min: lo, Max: hi, rng: r}
}

func (s Snow) Category() Category { return Noise }

func (s Snow) String() string {
	return fmt.Sprintf("snow(min=%d max=%d)", s.Min, s.Max)
}

func (s Snow) Render(_ float64, width, height int) (*Frame, error) {
	f, err := NewFrame(width, height)
	if err != nil {
		return nil, err
	}
	span := s.Max - s.Min
	for i := 0; i < len(f.Pix); i += 3 {
		v := s.Min
		// an empty interval degrades to a flat Min frame
		if span > 0 {
			v += s.rng.IntN(span)
		}
		b := uint8(v)
		f.Pix[i], f.Pix[i+1], f.Pix[i+2] = b, b, b
	}
	return f, nil
}
