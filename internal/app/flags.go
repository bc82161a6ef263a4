package app

import (
	"flag"

	"lifemap/pkg/core"
	"lifemap/pkg/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Cols    int
	Rows    int
	Scale   int
	TPS     int
	Seed    int64
	Density float64
	MaxAge  int
	Palette string
	Trails  bool
	BornAge int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Cols:    200,
		Rows:    150,
		Scale:   4,
		TPS:     30,
		Seed:    42,
		Density: life.DefaultDensity,
		MaxAge:  life.DefaultMaxAge,
		Palette: "classic",
		BornAge: 1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid width in cells")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel size of one cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board")
	fs.Float64Var(&c.Density, "density", c.Density, "initial alive probability (0 seeds a dead board)")
	fs.IntVar(&c.MaxAge, "max-age", c.MaxAge, "age at which the color gradient saturates")
	fs.StringVar(&c.Palette, "palette", c.Palette, "age palette: classic or rainbow")
	fs.BoolVar(&c.Trails, "trails", c.Trails, "start with trails enabled")
	fs.IntVar(&c.BornAge, "born-age", c.BornAge, "age of cells alive at seed time (0 or 1)")
}

// SeedPolicy builds the seed policy the flags describe.
func (c *Config) SeedPolicy() life.SeedPolicy {
	if c.Density <= 0 {
		return life.SeedDead()
	}
	policy := life.SeedRandom(c.Density, core.NewRNG(c.Seed))
	policy.BornAge = c.BornAge
	return policy
}
