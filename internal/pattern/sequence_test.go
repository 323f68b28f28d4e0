package pattern

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestSequenceAlternates(t *testing.T) {
	seq := NewSequence(rand.New(rand.NewPCG(3, 4)), DefaultSequenceParams())

	for i := 0; i < 10; i++ {
		want := Patterned
		if i%2 == 1 {
			want = Noise
		}
		if got := seq.Next().Category(); got != want {
			t.Fatalf("pull %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestSequenceParameterRanges(t *testing.T) {
	params := DefaultSequenceParams()
	seq := NewSequence(rand.New(rand.NewPCG(5, 6)), params)
	families := map[string]int{}

	for i := 0; i < 400; i++ {
		switch g := seq.Next().(type) {
		case Wave:
			families[g.Name]++
			k := params.CoordSumK
			if g.Name == "sumofsquares" {
				k = params.SumSquaresK
			}
			if g.K < k.Min || g.K > k.Max {
				t.Errorf("%s: k out of range: %g", g.Name, g.K)
			}
			if g.T < params.Period.Min || g.T > params.Period.Max {
				t.Errorf("%s: T out of range: %g", g.Name, g.T)
			}
		case Snow:
			if g.Min < 0 || g.Min > 128 {
				t.Errorf("snow min out of range: %d", g.Min)
			}
			if g.Max < 128 || g.Max > 255 {
				t.Errorf("snow max out of range: %d", g.Max)
			}
		default:
			t.Fatalf("unexpected generator %T", g)
		}
	}

	if families["sumofsquares"] == 0 || families["coordsum"] == 0 {
		t.Errorf("expected both wave families, got %v", families)
	}
}

func TestSequenceFreshParameters(t *testing.T) {
	seq := NewSequence(rand.New(rand.NewPCG(9, 9)), DefaultSequenceParams())
	first := seq.Next().(Wave)
	seq.Next()
	second := seq.Next().(Wave)

	if first.K == second.K && first.T == second.T {
		t.Errorf("expected fresh parameters, got %s twice", first)
	}
}

func TestSequenceSeeded(t *testing.T) {
	a := NewSequence(rand.New(rand.NewPCG(11, 12)), DefaultSequenceParams())
	b := NewSequence(rand.New(rand.NewPCG(11, 12)), DefaultSequenceParams())

	for i := 0; i < 20; i++ {
		ga, gb := a.Next(), b.Next()
		if ga.String() != gb.String() {
			t.Fatalf("pull %d diverged: %s vs %s", i, ga, gb)
		}
	}
}

func TestSequenceParamsValidate(t *testing.T) {
	if err := DefaultSequenceParams().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	p := DefaultSequenceParams()
	p.SnowMax = IntRange{Min: 200, Max: 100}
	if err := p.Validate(); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}
