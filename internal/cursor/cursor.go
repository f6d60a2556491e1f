// Package cursor tracks the screen position of the editing cursor.
package cursor

// Coordinate is a 1-based screen cell address, the same origin terminals use for cursor
// addressing.
type Coordinate struct {
	X, Y int
}

// Origin is the top-left cell.
var Origin = Coordinate{X: 1, Y: 1}

// Cursor holds the current position plus the bounds it may move within.
//
// The bottom row (max.Y) belongs to the status line, so vertical navigation stops one row above
// it. Every mutator clamps instead of failing: a move past an edge sticks to the edge.
type Cursor struct {
	current  Coordinate
	min, max Coordinate
}

// New returns a cursor at the origin, bounded by max (the terminal size).
func New(max Coordinate) *Cursor {
	return &Cursor{current: Origin, min: Origin, max: max}
}

func (c *Cursor) Current() Coordinate { return c.current }
func (c *Cursor) Min() Coordinate     { return c.min }
func (c *Cursor) Max() Coordinate     { return c.max }

// lastEditableRow is the lowest row the cursor may reach by moving down.
func (c *Cursor) lastEditableRow() int {
	return max(c.min.Y, c.max.Y-1)
}

func (c *Cursor) MoveLeft(n int) *Cursor {
	if n > 0 {
		c.current.X -= min(n, c.current.X-c.min.X)
	}
	return c
}

func (c *Cursor) MoveRight(n int) *Cursor {
	if n > 0 {
		c.current.X += min(n, c.max.X-c.current.X)
	}
	return c
}

func (c *Cursor) MoveUp(n int) *Cursor {
	if n > 0 {
		c.current.Y -= min(n, c.current.Y-c.min.Y)
	}
	return c
}

// MoveDown never enters the status row. On a one-row terminal there is nowhere to go, so the
// cursor stays put.
func (c *Cursor) MoveDown(n int) *Cursor {
	limit := c.lastEditableRow()
	if n > 0 && c.current.Y < limit {
		c.current.Y += min(n, limit-c.current.Y)
	}
	return c
}

func (c *Cursor) ToLineStart() *Cursor {
	c.current.X = c.min.X
	return c
}

func (c *Cursor) ToLineEnd() *Cursor {
	c.current.X = c.max.X
	return c
}

func (c *Cursor) ToPreviousLine() *Cursor {
	return c.ToLineStart().MoveUp(1)
}

func (c *Cursor) ToNextLine() *Cursor {
	return c.ToLineStart().MoveDown(1)
}
