//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifemap/internal/core"
	"lifemap/internal/render"
	"lifemap/internal/ui"
	"lifemap/pkg/heatmap"
	"lifemap/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life.Grid to the ebiten.Game interface: it drives the
// simulation at a fixed tick rate, handles keyboard input, and paints each
// cell through the age heatmap.
type Game struct {
	grid    *life.Grid
	painter *render.GridPainter
	legend  *ui.Legend
	ticker  *core.FixedStep

	palette []color.RGBA
	variant heatmap.Variant

	canvas *ebiten.Image

	scale    int
	trails   bool
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided grid.
func New(grid *life.Grid, cfg *Config, variant heatmap.Variant) *Game {
	size := grid.Dims()
	return &Game{
		grid:    grid,
		painter: render.NewGridPainter(size.W, size.H),
		legend:  ui.NewLegend(grid.MaxAge(), variant),
		ticker:  core.NewFixedStep(cfg.TPS),
		palette: heatmap.Gradient(grid.MaxAge(), variant, grid.MaxAge()),
		variant: variant,
		scale:   cfg.Scale,
		trails:  cfg.Trails,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the grid with the provided seed and clears any trails.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.grid.Reset(seed)
	g.tickOnce = false
	if g.canvas != nil {
		g.canvas.Fill(heatmap.DeadColor)
	}
}

// Update handles per-frame input and advances the simulation on its tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.trails = !g.trails
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.legend.Toggle()
	}

	if (g.ticker.ShouldStep() && !g.paused) || g.tickOnce {
		g.grid.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation. Cells are painted onto a persistent
// canvas so that trails mode can leave dead cells' last colors in place.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.grid.Dims()
	if g.canvas == nil || g.canvas.Bounds().Dx() != size.W || g.canvas.Bounds().Dy() != size.H {
		g.canvas = ebiten.NewImage(size.W, size.H)
		g.canvas.Fill(heatmap.DeadColor)
	}
	g.painter.Blit(g.canvas, g.grid, g.palette, heatmap.DeadColor, 1, g.trails)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.canvas, op)

	g.legend.Draw(screen)
}

// Layout derives the cell dimensions from the window size and resizes the
// grid to match; cells revealed by a larger window start dead.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cols := max(outsideWidth/g.scale, 1)
	rows := max(outsideHeight/g.scale, 1)
	size := g.grid.Dims()
	if cols != size.W || rows != size.H {
		if err := g.grid.Resize(cols, rows, life.SeedDead()); err == nil {
			size = g.grid.Dims()
		}
	}
	return size.W * g.scale, size.H * g.scale
}
