package export

import (
	"image/png"
	"io"
	"os"

	"github.com/san-kum/qlture/internal/pattern"
)

func WritePNG(w io.Writer, f *pattern.Frame) error {
	return png.Encode(w, f.RGBA())
}

func SavePNG(path string, f *pattern.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(out, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
