package gui

import (
	"image/color"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/qlture/internal/config"
	"github.com/san-kum/qlture/internal/cycle"
	"github.com/san-kum/qlture/internal/pattern"
)

// targetFPS is the loop rate; it bounds how precisely trigger deadlines
// are met, not how often frames are rendered.
const targetFPS = 60

// texturePixels is a cycle.Sink that stages frames for upload to a
// raylib texture on the next loop iteration.
type texturePixels struct {
	pixels []color.RGBA
	dirty  bool
}

func (t *texturePixels) Show(f *pattern.Frame) {
	t.pixels = f.Colors(t.pixels)
	t.dirty = true
}

type App struct {
	Cycle *cycle.Cycle
	Keys  cycle.Keymap

	sink    *texturePixels
	texture rl.Texture2D
}

// initWindow opens the window at the configured geometry and disables
// raylib's default exit key so quitting goes through the keymap.
func initWindow(w config.WindowConfig) {
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	rl.SetWindowPosition(w.X, w.Y)
	rl.SetTargetFPS(targetFPS)
	rl.SetExitKey(0)
}

// NewApp must be called after the window exists. The cycle primes its
// first frame here, so the texture is filled before the first draw.
func NewApp(cfg *config.Config, src cycle.Source, logger *log.Logger) *App {
	w, h := cfg.Window.Width, cfg.Window.Height
	img := rl.GenImageColor(w, h, rl.Black)
	defer rl.UnloadImage(img)

	sink := &texturePixels{}
	opts := cfg.CycleOptions(w, h)
	opts.Logger = logger

	return &App{
		Cycle:   cycle.New(src, sink, opts),
		Keys:    cfg.Keys.Keymap(),
		sink:    sink,
		texture: rl.LoadTextureFromImage(img),
	}
}

// Run opens the window and blocks until it is closed or the quit key is
// pressed.
func Run(cfg *config.Config, src cycle.Source, logger *log.Logger) error {
	initWindow(cfg.Window)
	defer rl.CloseWindow()

	app := NewApp(cfg, src, logger)
	defer rl.UnloadTexture(app.texture)
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.Update() == cycle.Quit {
			return
		}
		a.Draw()
	}
}

func (a *App) Update() cycle.Action {
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.Cycle.Click()
	}
	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		if a.Cycle.Key(a.Keys.Lookup(string(ch))) == cycle.Quit {
			return cycle.Quit
		}
	}
	a.Cycle.Advance(time.Now())
	return cycle.Continue
}

func (a *App) Draw() {
	if a.sink.dirty {
		rl.UpdateTexture(a.texture, a.sink.pixels)
		a.sink.dirty = false
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTexture(a.texture, 0, 0, rl.White)
	rl.EndDrawing()
}
