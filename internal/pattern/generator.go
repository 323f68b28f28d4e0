package pattern

type Category int

const (
	Patterned Category = iota
	Noise
)

func (c Category) String() string {
	switch c {
	case Patterned:
		return "patterned"
	case Noise:
		return "noise"
	default:
		return "unknown"
	}
}

// Generator produces a frame for simulation time t (seconds) at the given
// dimensions.
type Generator interface {
	Render(t float64, width, height int) (*Frame, error)
	Category() Category
	String() string
}
