package render

// Camera translates between field coordinates and screen coordinates.
// A field cell spans CellWidth terminal columns.
type Camera struct {
	OffsetRow  int // first field row in view
	OffsetCol  int // first field column in view
	OriginX    int // screen column of the first visible cell
	OriginY    int // screen row of the first visible cell
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
	CellWidth  int
}

// NewCamera creates a camera for a viewport of viewW×viewH terminal cells.
func NewCamera(viewW, viewH, cellWidth int) *Camera {
	if cellWidth < 1 {
		cellWidth = 1
	}
	return &Camera{ViewWidth: viewW, ViewHeight: viewH, CellWidth: cellWidth}
}

// Fit positions the view over a length×width field. A field that fits is
// centered; otherwise the view follows (row, col) and stops at the edges.
func (c *Camera) Fit(length, width, row, col int) {
	c.OffsetRow, c.OriginY = fitAxis(length, c.ViewHeight, row)
	visibleCols := c.ViewWidth / c.CellWidth
	c.OffsetCol, _ = fitAxis(width, visibleCols, col)
	c.OriginX = 0
	if width <= visibleCols {
		c.OriginX = (c.ViewWidth - width*c.CellWidth) / 2
	}
}

// fitAxis returns the first visible index and the leading margin (in cells)
// for one axis of size n shown in a view of size view.
func fitAxis(n, view, focus int) (offset, margin int) {
	if view <= 0 {
		return 0, 0
	}
	if n <= view {
		return 0, (view - n) / 2
	}
	offset = focus - view/2
	if offset < 0 {
		offset = 0
	}
	if offset > n-view {
		offset = n - view
	}
	return offset, 0
}

// WorldToScreen converts field (row, col) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(row, col int) (sx, sy int, visible bool) {
	sx = c.OriginX + (col-c.OffsetCol)*c.CellWidth
	sy = c.OriginY + row - c.OffsetRow
	visible = col >= c.OffsetCol && row >= c.OffsetRow &&
		sx >= 0 && sx+c.CellWidth <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
