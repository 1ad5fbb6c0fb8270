package app

import "github.com/spf13/pflag"

// Config represents the viewer's command-line parameters.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Panel  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 720, Height: 360, Scale: 2, TPS: 10, Panel: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "map width in pixels before scaling")
	fs.IntVar(&c.Height, "height", c.Height, "map height in pixels before scaling")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second, 0 for unpaced")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width in pixels, 0 to hide")
}
