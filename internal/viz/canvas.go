package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/qlture/internal/pattern"
)

const halfBlock = "▀"

// Canvas is a cycle.Sink that keeps the latest frame as terminal lines.
type Canvas struct {
	Width, Height int
	lines         []string
}

// CellSize returns the frame size that fills cols x rows terminal cells.
func CellSize(cols, rows int) (width, height int) {
	return max(cols, 1), max(rows, 1) * 2
}

func (c *Canvas) Show(f *pattern.Frame) {
	rows := (f.Height + 1) / 2
	lines := make([]string, rows)
	var b strings.Builder

	for row := 0; row < rows; row++ {
		b.Reset()
		var run int
		var top, bottom string
		for x := 0; x < f.Width; x++ {
			t := hex(f, x, row*2)
			bt := hex(f, x, row*2+1)
			if run > 0 && (t != top || bt != bottom) {
				b.WriteString(cell(top, bottom, run))
				run = 0
			}
			top, bottom = t, bt
			run++
		}
		if run > 0 {
			b.WriteString(cell(top, bottom, run))
		}
		lines[row] = b.String()
	}

	c.Width, c.Height = f.Width, rows
	c.lines = lines
}

func (c *Canvas) String() string {
	return strings.Join(c.lines, "\n")
}

func cell(top, bottom string, n int) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(top)).
		Background(lipgloss.Color(bottom)).
		Render(strings.Repeat(halfBlock, n))
}

// hex returns the pixel color, black below the last row.
func hex(f *pattern.Frame, x, y int) string {
	if y >= f.Height {
		return "#000000"
	}
	r, g, b := f.At(x, y)
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}
