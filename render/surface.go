package render

import "math"

// Surface maps continuous surface units onto terminal cells
type Surface struct {
	CellWidth  float64
	CellHeight float64
}

// ToCell returns the cell containing the surface point
func (s Surface) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x / s.CellWidth)), int(math.Floor(y / s.CellHeight))
}

// CellCenter returns the surface point at the center of a cell
func (s Surface) CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.CellWidth, (float64(row) + 0.5) * s.CellHeight
}

// Extent returns the surface size covered by a cols x rows grid
func (s Surface) Extent(cols, rows int) (float64, float64) {
	return float64(cols) * s.CellWidth, float64(rows) * s.CellHeight
}

// Rows converts a vertical surface distance to whole rows, rounding down
func (s Surface) Rows(units float64) int {
	return int(math.Floor(units / s.CellHeight))
}

// Units converts a row count to vertical surface units
func (s Surface) Units(rows int) float64 {
	return float64(rows) * s.CellHeight
}
