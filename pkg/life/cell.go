package life

// Cell is one automaton unit: an alive flag plus the number of consecutive
// generations it has been alive. Age is 0 exactly when the cell is dead and
// at least 1 while it lives.
type Cell struct {
	Alive bool
	Age   int
}

// Next returns the cell's state for the following generation given its live
// neighbor count. It implements the classic birth/survival rule: a live cell
// survives with 2 or 3 neighbors, a dead cell is born with exactly 3. Pure;
// the cell is not mutated.
func (c Cell) Next(neighbors int) bool {
	if c.Alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Commit applies a previously computed next state and updates the age
// counter: survival increments it, birth restarts it at 1, death zeroes it.
// Age never exceeds maxAge.
func (c *Cell) Commit(nextAlive bool, maxAge int) {
	if nextAlive {
		if c.Alive {
			c.Age++
		} else {
			c.Age = 1
		}
	} else {
		c.Age = 0
	}
	c.Alive = nextAlive
	if maxAge > 0 && c.Age > maxAge {
		c.Age = maxAge
	}
}
