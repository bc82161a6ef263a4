//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifemap/internal/app"
	"lifemap/pkg/heatmap"
	"lifemap/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	variant, err := heatmap.ParseVariant(cfg.Palette)
	if err != nil {
		log.Fatal(err)
	}

	grid, err := life.New(cfg.Cols, cfg.Rows, cfg.SeedPolicy())
	if err != nil {
		log.Fatal(err)
	}
	grid.SetMaxAge(cfg.MaxAge)

	game := app.New(grid, cfg, variant)
	size := grid.Dims()

	ebiten.SetWindowTitle("lifemap")
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
