package pattern

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Red is the channel weighting used by randomized waves.
var Red = [3]float64{1, 0, 0}

// Wave combines a spatial grid with a temporal sine oscillation:
//
//	intensity = sin(spatial/K + t/T + Phase) · 255
//
// broadcast against RGB and converted with ToByte.
type Wave struct {
	Name    string
	Spatial Grid
	K       float64
	T       float64
	Phase   float64
	RGB     [3]float64
}

func (w Wave) Category() Category { return Patterned }

func (w Wave) String() string {
	return fmt.Sprintf("wave(%s k=%.4g T=%.4g phase=%.4g rgb=%v)", w.Name, w.K, w.T, w.Phase, w.RGB)
}

func (w Wave) Render(t float64, width, height int) (*Frame, error) {
	spatial, err := w.Spatial.Eval(width, height)
	if err != nil {
		return nil, err
	}
	f, err := NewFrame(width, height)
	if err != nil {
		return nil, err
	}
	temporal := t/w.T + w.Phase
	for i, s := range spatial.Values {
		v := math.Sin(s/w.K+temporal) * 255
		p := f.Pix[i*3 : i*3+3]
		p[0] = ToByte(v * w.RGB[0])
		p[1] = ToByte(v * w.RGB[1])
		p[2] = ToByte(v * w.RGB[2])
	}
	return f, nil
}

// ToByte truncates v toward zero and keeps the low eight bits, so 300
// becomes 44 and -1 becomes 255. Nothing is clamped.
func ToByte(v float64) uint8 {
	return uint8(int64(v))
}

// RandomWave draws K from k and T from period, and fixes the color to
// pure red.
func RandomWave(r *rand.Rand, name string, spatial Grid, k, period Range) Wave {
	return Wave{
		Name:    name,
		Spatial: spatial,
		K:       k.Draw(r),
		T:       period.Draw(r),
		RGB:     Red,
	}
}
