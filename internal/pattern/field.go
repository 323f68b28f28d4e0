package pattern

import (
	"fmt"
	"math/rand/v2"
)

// Field is a scalar function of centered 2D coordinates.
type Field interface {
	Eval(x, y float64) float64
}

type FieldFunc func(x, y float64) float64

func (f FieldFunc) Eval(x, y float64) float64 { return f(x, y) }

// SumOfSquares is x² + y², a radial field with its minimum at the frame
// center.
var SumOfSquares Field = FieldFunc(func(x, y float64) float64 {
	return x*x + y*y
})

// CoordSum is the planar field WX·x + WY·y.
type CoordSum struct {
	WX, WY float64
}

func (c CoordSum) Eval(x, y float64) float64 {
	return x*c.WX + y*c.WY
}

// RandomCoordSum draws both weights uniformly from [-1, 1].
func RandomCoordSum(r *rand.Rand) CoordSum {
	w := Range{Min: -1, Max: 1}
	return CoordSum{WX: w.Draw(r), WY: w.Draw(r)}
}

// Range is a closed interval used for randomized parameters.
type Range struct {
	Min, Max float64
}

// Draw returns Min + (Max-Min)·u for u uniform in [0, 1).
func (rg Range) Draw(r *rand.Rand) float64 {
	return rg.Min + (rg.Max-rg.Min)*r.Float64()
}

func (rg Range) Validate() error {
	if rg.Min > rg.Max {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, rg.Min, rg.Max)
	}
	return nil
}

// Coords returns the centered axis coordinates of a width x height grid:
// xs[i] = i - width/2 and ys[j] = j - height/2, using real division.
func Coords(width, height int) (xs, ys []float64) {
	xs = make([]float64, width)
	for i := range xs {
		xs[i] = float64(i) - float64(width)/2
	}
	ys = make([]float64, height)
	for j := range ys {
		ys[j] = float64(j) - float64(height)/2
	}
	return xs, ys
}

// Plane holds one scalar per grid cell. Index i runs along the width
// axis and j along the height axis.
type Plane struct {
	Width, Height int
	Values        []float64
}

func (p Plane) At(i, j int) float64 {
	return p.Values[j*p.Width+i]
}

// Grid evaluates a Field over the centered coordinate mesh of a frame.
type Grid struct {
	Field Field
}

func OnGrid(f Field) Grid {
	return Grid{Field: f}
}

func (g Grid) Eval(width, height int) (Plane, error) {
	if width <= 0 || height <= 0 {
		return Plane{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	xs, ys := Coords(width, height)
	p := Plane{Width: width, Height: height, Values: make([]float64, width*height)}
	for j, y := range ys {
		row := p.Values[j*width : (j+1)*width]
		for i, x := range xs {
			row[i] = g.Field.Eval(x, y)
		}
	}
	return p, nil
}
