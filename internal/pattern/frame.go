package pattern

import (
	"fmt"
	"image"
	"image/color"
)

// Frame is a Width x Height grid of RGB samples stored row by row,
// three bytes per pixel.
type Frame struct {
	Width, Height int
	Pix           []uint8
}

func NewFrame(width, height int) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}, nil
}

func (f *Frame) offset(x, y int) int {
	return (y*f.Width + x) * 3
}

func (f *Frame) Set(x, y int, r, g, b uint8) {
	i := f.offset(x, y)
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = r, g, b
}

func (f *Frame) At(x, y int) (r, g, b uint8) {
	i := f.offset(x, y)
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// RGBA copies the frame into an opaque image.RGBA.
func (f *Frame) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	img.Pix = f.AppendRGBA(img.Pix[:0])
	return img
}

// AppendRGBA appends the frame as packed RGBA bytes to dst.
func (f *Frame) AppendRGBA(dst []byte) []byte {
	for i := 0; i < len(f.Pix); i += 3 {
		dst = append(dst, f.Pix[i], f.Pix[i+1], f.Pix[i+2], 0xff)
	}
	return dst
}

// Colors writes the frame into dst as opaque colors, growing it if needed.
func (f *Frame) Colors(dst []color.RGBA) []color.RGBA {
	n := f.Width * f.Height
	if cap(dst) < n {
		dst = make([]color.RGBA, n)
	}
	dst = dst[:n]
	for i := range dst {
		p := f.Pix[i*3 : i*3+3]
		dst[i] = color.RGBA{R: p[0], G: p[1], B: p[2], A: 0xff}
	}
	return dst
}
