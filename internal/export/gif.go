package export

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"os"
	"time"
)

// WriteGIF encodes shots as a looping GIF. Each frame stays up until the
// next shot was taken; the last one reuses the previous delay.
func WriteGIF(w io.Writer, shots []Shot) error {
	anim := gif.GIF{LoopCount: 0}
	delay := 1
	for i, s := range shots {
		if i+1 < len(shots) {
			delay = centiseconds(shots[i+1].At.Sub(s.At))
		}
		img := s.Frame.RGBA()
		p := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, img.Bounds(), img, image.Point{})

		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

func SaveGIF(path string, shots []Shot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGIF(f, shots); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func centiseconds(d time.Duration) int {
	return max(1, int(math.Round(float64(d)/float64(10*time.Millisecond))))
}
