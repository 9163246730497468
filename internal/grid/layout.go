package grid

import "image"

// Layout describes the fixed geometry shared by every sheet in a run: the
// cell size (taken from the first sorted image), the grid shape, and the
// spacing applied both between cells and as an outer border.
type Layout struct {
	CellWidth  int
	CellHeight int
	Rows       int
	Cols       int
	Spacing    int
}

// PerPage returns the cell capacity of one sheet.
func (l Layout) PerPage() int { return l.Rows * l.Cols }

// CanvasWidth returns the sheet width: cols cells plus cols+1 gutters.
func (l Layout) CanvasWidth() int {
	return l.CellWidth*l.Cols + l.Spacing*(l.Cols+1)
}

// CanvasHeight returns the sheet height: rows cells plus rows+1 gutters.
func (l Layout) CanvasHeight() int {
	return l.CellHeight*l.Rows + l.Spacing*(l.Rows+1)
}

// CellOrigin returns the paste position for the i-th image on a sheet.
// Placement is row-major: left to right, top to bottom.
func (l Layout) CellOrigin(i int) image.Point {
	row := i / l.Cols
	col := i % l.Cols
	return image.Point{
		X: col*l.CellWidth + l.Spacing*(col+1),
		Y: row*l.CellHeight + l.Spacing*(row+1),
	}
}

// PageCount returns how many sheets are needed for n images at perPage cells
// each. The last sheet may be partial.
func PageCount(n, perPage int) int {
	return (n + perPage - 1) / perPage
}
