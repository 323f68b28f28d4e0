package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/qlture/internal/cycle"
	"github.com/san-kum/qlture/internal/pattern"
)

const (
	DefaultTitle  = "qlture"
	DefaultX      = 150
	DefaultY      = 150
	DefaultWidth  = 500
	DefaultHeight = 500

	DefaultNormalFPS      = 30
	DefaultNormalSwitchMS = 2000
	DefaultSnowFPS        = 12
	DefaultSnowSwitchMS   = 200

	BackendRaylib = "raylib"
	BackendEbiten = "ebiten"
)

var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Profiles ProfilesConfig `yaml:"profiles"`
	Sequence SequenceConfig `yaml:"sequence"`
	Keys     KeysConfig     `yaml:"keys"`
	Seed     uint64         `yaml:"seed"`
	Backend  string         `yaml:"backend"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type ProfilesConfig struct {
	Normal ProfileConfig `yaml:"normal"`
	Snow   ProfileConfig `yaml:"snow"`
}

type ProfileConfig struct {
	RedrawFPS int `yaml:"redraw_fps"`
	SwitchMS  int `yaml:"switch_ms"`
}

type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type IntRangeConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type SequenceConfig struct {
	SumSquaresK RangeConfig    `yaml:"sumsquares_k"`
	CoordSumK   RangeConfig    `yaml:"coordsum_k"`
	Period      RangeConfig    `yaml:"period"`
	SnowMin     IntRangeConfig `yaml:"snow_min"`
	SnowMax     IntRangeConfig `yaml:"snow_max"`
}

type KeysConfig struct {
	Pause string `yaml:"pause"`
	Quit  string `yaml:"quit"`
}

func DefaultConfig() *Config {
	p := pattern.DefaultSequenceParams()
	return &Config{
		Window: WindowConfig{
			Title:  DefaultTitle,
			X:      DefaultX,
			Y:      DefaultY,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Profiles: ProfilesConfig{
			Normal: ProfileConfig{RedrawFPS: DefaultNormalFPS, SwitchMS: DefaultNormalSwitchMS},
			Snow:   ProfileConfig{RedrawFPS: DefaultSnowFPS, SwitchMS: DefaultSnowSwitchMS},
		},
		Sequence: SequenceConfig{
			SumSquaresK: RangeConfig(p.SumSquaresK),
			CoordSumK:   RangeConfig(p.CoordSumK),
			Period:      RangeConfig(p.Period),
			SnowMin:     IntRangeConfig(p.SnowMin),
			SnowMax:     IntRangeConfig(p.SnowMax),
		},
		Keys: KeysConfig{
			Pause: cycle.DefaultKeymap.Pause,
			Quit:  cycle.DefaultKeymap.Quit,
		},
		Backend: BackendRaylib,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Write encodes cfg as YAML to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	for name, p := range map[string]ProfileConfig{"normal": c.Profiles.Normal, "snow": c.Profiles.Snow} {
		if p.RedrawFPS <= 0 || p.SwitchMS <= 0 {
			return fmt.Errorf("%w: %s profile needs positive redraw_fps and switch_ms", ErrInvalid, name)
		}
	}
	if err := c.Sequence.Params().Validate(); err != nil {
		return fmt.Errorf("%w: sequence: %w", ErrInvalid, err)
	}
	if c.Keys.Pause == "" || c.Keys.Quit == "" || c.Keys.Pause == c.Keys.Quit {
		return fmt.Errorf("%w: pause and quit keys must be set and distinct", ErrInvalid)
	}
	switch c.Backend {
	case BackendRaylib, BackendEbiten:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	return nil
}

func (p ProfileConfig) Profile(name string) cycle.Profile {
	return cycle.Profile{
		Name:   name,
		Redraw: cycle.FPSInterval(p.RedrawFPS),
		Switch: time.Duration(p.SwitchMS) * time.Millisecond,
	}
}

func (s SequenceConfig) Params() pattern.SequenceParams {
	return pattern.SequenceParams{
		SumSquaresK: pattern.Range(s.SumSquaresK),
		CoordSumK:   pattern.Range(s.CoordSumK),
		Period:      pattern.Range(s.Period),
		SnowMin:     pattern.IntRange(s.SnowMin),
		SnowMax:     pattern.IntRange(s.SnowMax),
	}
}

func (k KeysConfig) Keymap() cycle.Keymap {
	return cycle.Keymap{Pause: k.Pause, Quit: k.Quit}
}

// CycleOptions assembles cycle options for a frame of the given size.
func (c *Config) CycleOptions(width, height int) cycle.Options {
	return cycle.Options{
		Width:  width,
		Height: height,
		Normal: c.Profiles.Normal.Profile("normal"),
		Snow:   c.Profiles.Snow.Profile("snow"),
	}
}
