package life

import (
	"errors"
	"fmt"

	"lifemap/pkg/core"
)

// DefaultMaxAge is the age at which a cell's counter stops climbing unless
// the caller picks another cap.
const DefaultMaxAge = 50

var (
	// ErrInvalidSize reports non-positive dimensions passed to New or Resize.
	ErrInvalidSize = errors.New("life: grid dimensions must be positive")
	// ErrOutOfBounds reports a CellAt query outside the current grid.
	ErrOutOfBounds = errors.New("life: coordinate outside grid")
)

// Grid is a toroidal board of Cells advanced one whole generation at a time.
// Cells are stored row-major; all neighbor lookups wrap at the edges. Grid is
// not safe for concurrent use.
type Grid struct {
	w, h  int
	cells []Cell
	next  []bool

	seed       SeedPolicy
	maxAge     int
	generation int
}

// New allocates a cols x rows grid whose cells are materialized by seed.
func New(cols, rows int, seed SeedPolicy) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, cols, rows)
	}
	g := &Grid{
		w:      cols,
		h:      rows,
		cells:  make([]Cell, cols*rows),
		next:   make([]bool, cols*rows),
		seed:   seed,
		maxAge: DefaultMaxAge,
	}
	for i := range g.cells {
		g.cells[i] = seed.cell()
	}
	return g, nil
}

// Dims returns the current grid dimensions.
func (g *Grid) Dims() core.Size { return core.Size{W: g.w, H: g.h} }

// MaxAge returns the cap applied to cell ages.
func (g *Grid) MaxAge() int { return g.maxAge }

// SetMaxAge changes the age cap. Non-positive values are ignored. Existing
// ages above the new cap clamp on their next commit.
func (g *Grid) SetMaxAge(maxAge int) {
	if maxAge > 0 {
		g.maxAge = maxAge
	}
}

// Generation returns how many times Step has run since construction or the
// last Reset.
func (g *Grid) Generation() int { return g.generation }

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Alive {
			n++
		}
	}
	return n
}

func (g *Grid) index(x, y int) int { return y*g.w + x }

// CellAt returns the cell at (x, y), or ErrOutOfBounds for coordinates
// outside the current dimensions.
func (g *Grid) CellAt(x, y int) (Cell, error) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return Cell{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.w, g.h)
	}
	return g.cells[g.index(x, y)], nil
}

// CountNeighbors sums the live cells in the Moore neighborhood of (x, y)
// with toroidal wrapping. On boards narrower than 3 in either axis the wrap
// revisits cells, so a neighbor can be counted more than once; that matches
// the plain modular arithmetic and is deliberate.
func (g *Grid) CountNeighbors(x, y int) int {
	w, h := g.w, g.h
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			if g.cells[ny*w+nx].Alive {
				neighbors++
			}
		}
	}
	return neighbors
}

// Step advances the board one generation. Next states for every cell are
// computed against the current generation before any cell is committed, so
// the result does not depend on traversal order.
func (g *Grid) Step() {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			idx := g.index(x, y)
			g.next[idx] = g.cells[idx].Next(g.CountNeighbors(x, y))
		}
	}
	for i := range g.cells {
		g.cells[i].Commit(g.next[i], g.maxAge)
	}
	g.generation++
}

// Resize changes the board to newCols x newRows. Cells inside the overlap of
// the old and new bounds keep their state bit for bit; cells outside the old
// bounds are materialized by seed; cells outside the new bounds are dropped.
// Equal dimensions are a no-op. The swap is all-or-nothing: on error the
// grid is untouched, and no caller ever observes mixed dimensions.
func (g *Grid) Resize(newCols, newRows int, seed SeedPolicy) error {
	if newCols <= 0 || newRows <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, newCols, newRows)
	}
	if newCols == g.w && newRows == g.h {
		return nil
	}

	cells := make([]Cell, newCols*newRows)
	copyW := min(g.w, newCols)
	copyH := min(g.h, newRows)
	for y := 0; y < copyH; y++ {
		copy(cells[y*newCols:y*newCols+copyW], g.cells[y*g.w:y*g.w+copyW])
	}
	for y := 0; y < newRows; y++ {
		for x := 0; x < newCols; x++ {
			if x >= copyW || y >= copyH {
				cells[y*newCols+x] = seed.cell()
			}
		}
	}

	g.w, g.h = newCols, newRows
	g.cells = cells
	g.next = make([]bool, len(cells))
	return nil
}

// Reset rematerializes every cell from the grid's seed policy, rekeyed with
// seed, and restarts the generation counter.
func (g *Grid) Reset(seed int64) {
	policy := g.seed.Reseed(seed)
	for i := range g.cells {
		g.cells[i] = policy.cell()
	}
	g.generation = 0
}
