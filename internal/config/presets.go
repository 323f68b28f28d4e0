package config

var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"calm": func(c *Config) {
		c.Profiles.Normal = ProfileConfig{RedrawFPS: 24, SwitchMS: 6000}
		c.Profiles.Snow = ProfileConfig{RedrawFPS: 8, SwitchMS: 400}
		c.Sequence.Period = RangeConfig{Min: 1, Max: 4}
		c.Sequence.SnowMax = IntRangeConfig{Min: 128, Max: 160}
	},
	"strobe": func(c *Config) {
		c.Profiles.Normal = ProfileConfig{RedrawFPS: 60, SwitchMS: 750}
		c.Profiles.Snow = ProfileConfig{RedrawFPS: 30, SwitchMS: 100}
		c.Sequence.Period = RangeConfig{Min: 0.05, Max: 0.5}
	},
}

// GetPreset returns the default configuration with the named preset
// applied, or nil when no such preset exists.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
