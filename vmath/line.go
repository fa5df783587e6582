package vmath

// LineTraverser walks the cells of a Bresenham line without allocating
// Both endpoints are included
type LineTraverser struct {
	x, y       int
	x1, y1     int
	dx, dy     int
	sx, sy     int
	err        int
	step, last int
	done       bool
}

// NewLineTraverser creates an iterator from (x0, y0) to (x1, y1)
func NewLineTraverser(x0, y0, x1, y1 int) LineTraverser {
	dx := Abs(x1 - x0)
	dy := Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	return LineTraverser{
		x: x0, y: y0,
		x1: x1, y1: y1,
		dx: dx, dy: dy,
		sx: sx, sy: sy,
		err:  dx - dy,
		last: max(dx, dy),
	}
}

// Next returns the next cell and false once the line is exhausted
func (t *LineTraverser) Next() (x, y int, ok bool) {
	if t.done {
		return 0, 0, false
	}
	x, y = t.x, t.y
	if t.step == t.last {
		t.done = true
		return x, y, true
	}
	t.step++

	e2 := 2 * t.err
	if e2 > -t.dy {
		t.err -= t.dy
		t.x += t.sx
	}
	if e2 < t.dx {
		t.err += t.dx
		t.y += t.sy
	}
	return x, y, true
}

// Steps returns the number of cells the line covers
func (t *LineTraverser) Steps() int {
	return t.last + 1
}
