package gui

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/qlture/internal/config"
	"github.com/san-kum/qlture/internal/cycle"
	"github.com/san-kum/qlture/internal/pattern"
)

// rgbaBuffer is a cycle.Sink holding the latest frame as packed RGBA.
type rgbaBuffer struct {
	pix   []byte
	dirty bool
}

func (b *rgbaBuffer) Show(f *pattern.Frame) {
	b.pix = f.AppendRGBA(b.pix[:0])
	b.dirty = true
}

type game struct {
	cycle  *cycle.Cycle
	keys   cycle.Keymap
	buf    *rgbaBuffer
	img    *ebiten.Image
	width  int
	height int
	chars  []rune
}

func newGame(cfg *config.Config, src cycle.Source, logger *log.Logger) *game {
	w, h := cfg.Window.Width, cfg.Window.Height
	buf := &rgbaBuffer{}
	opts := cfg.CycleOptions(w, h)
	opts.Logger = logger

	return &game{
		cycle:  cycle.New(src, buf, opts),
		keys:   cfg.Keys.Keymap(),
		buf:    buf,
		img:    ebiten.NewImage(w, h),
		width:  w,
		height: h,
	}
}

func (g *game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.cycle.Click()
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, ch := range g.chars {
		if g.cycle.Key(g.keys.Lookup(string(ch))) == cycle.Quit {
			return ebiten.Termination
		}
	}
	g.cycle.Advance(time.Now())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.buf.dirty {
		g.img.WritePixels(g.buf.pix)
		g.buf.dirty = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// RunEbiten is the ebiten counterpart of Run.
func RunEbiten(cfg *config.Config, src cycle.Source, logger *log.Logger) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowPosition(cfg.Window.X, cfg.Window.Y)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(newGame(cfg, src, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
