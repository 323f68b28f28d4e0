package pattern

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestSnowBoundsAndGrayscale(t *testing.T) {
	s := NewSnow(rand.New(rand.NewPCG(42, 0)), 10, 20)
	seen := make(map[uint8]bool)

	for i := 0; i < 1000; i++ {
		f, err := s.Render(float64(i), 1, 1)
		if err != nil {
			t.Fatalf("render failed: %v", err)
		}
		r, g, b := f.At(0, 0)
		if r < 10 || r >= 20 {
			t.Fatalf("sample %d out of [10,20): %d", i, r)
		}
		if r != g || g != b {
			t.Fatalf("sample %d not gray: (%d,%d,%d)", i, r, g, b)
		}
		seen[r] = true
	}

	if len(seen) != 10 {
		t.Errorf("expected all 10 values to appear, saw %d", len(seen))
	}
}

func TestSnowEmptyInterval(t *testing.T) {
	s := NewSnow(rand.New(rand.NewPCG(1, 1)), 128, 128)
	f, err := s.Render(0, 4, 4)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, v := range f.Pix {
		if v != 128 {
			t.Fatalf("expected flat 128, got %d", v)
		}
	}
}

func TestSnowInvalidSize(t *testing.T) {
	s := NewSnow(rand.New(rand.NewPCG(1, 1)), 0, 255)
	if _, err := s.Render(0, 3, -1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}
