package pattern

import (
	"math/rand/v2"
)

// SequenceParams bounds the randomized parameters drawn per pull.
type SequenceParams struct {
	SumSquaresK Range
	CoordSumK   Range
	Period      Range
	SnowMin     IntRange
	SnowMax     IntRange
}

// IntRange is a closed integer interval.
type IntRange struct {
	Min, Max int
}

// Draw returns an integer uniform in [Min, Max], both ends inclusive.
func (rg IntRange) Draw(r *rand.Rand) int {
	return rg.Min + r.IntN(rg.Max-rg.Min+1)
}

func DefaultSequenceParams() SequenceParams {
	return SequenceParams{
		SumSquaresK: Range{Min: 1e-3, Max: 10},
		CoordSumK:   Range{Min: 1e-3, Max: 1000},
		Period:      Range{Min: 0.2, Max: 2},
		SnowMin:     IntRange{Min: 0, Max: 128},
		SnowMax:     IntRange{Min: 128, Max: 255},
	}
}

func (p SequenceParams) Validate() error {
	for _, rg := range []Range{
		p.SumSquaresK, p.CoordSumK, p.Period,
		{Min: float64(p.SnowMin.Min), Max: float64(p.SnowMin.Max)},
		{Min: float64(p.SnowMax.Min), Max: float64(p.SnowMax.Max)},
	} {
		if err := rg.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Sequence is an endless stream of generators alternating between a
// randomly chosen patterned wave and a snow generator. Every pull draws
// fresh parameters; the only state is the random source and the
// category due next.
//
// A Sequence is not safe for concurrent use.
type Sequence struct {
	rng    *rand.Rand
	params SequenceParams
	next   Category
}

func NewSequence(r *rand.Rand, params SequenceParams) *Sequence {
	return &Sequence{rng: r, params: params, next: Patterned}
}

func (s *Sequence) Next() Generator {
	if s.next == Noise {
		s.next = Patterned
		return s.snow()
	}
	s.next = Noise
	return s.wave()
}

func (s *Sequence) wave() Wave {
	if s.rng.IntN(2) == 0 {
		return RandomWave(s.rng, "sumofsquares", OnGrid(SumOfSquares), s.params.SumSquaresK, s.params.Period)
	}
	return RandomWave(s.rng, "coordsum", OnGrid(RandomCoordSum(s.rng)), s.params.CoordSumK, s.params.Period)
}

func (s *Sequence) snow() Snow {
	lo := s.params.SnowMin.Draw(s.rng)
	hi := s.params.SnowMax.Draw(s.rng)
	return NewSnow(s.rng, lo, hi)
}
