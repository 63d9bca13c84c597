package world

// quadrant is a dense, growable block of cells addressed by (|x|, |y|).
// rows[y][x]; every row has the same width.
type quadrant struct {
	rows  [][]Cell
	width int
}

// get returns the cell at (x, y) without growing, and whether it is allocated
func (q *quadrant) get(x, y int) (Cell, bool) {
	if y >= len(q.rows) || x >= q.width {
		return NewCell(), false
	}
	return q.rows[y][x], true
}

// at returns a pointer to the cell at (x, y), growing the quadrant by whole
// chunks along each axis that is out of bounds
func (q *quadrant) at(x, y, chunk int) *Cell {
	if x >= q.width {
		q.growColumns(x, chunk)
	}
	if y >= len(q.rows) {
		q.growRows(y, chunk)
	}
	return &q.rows[y][x]
}

func (q *quadrant) growColumns(x, chunk int) {
	width := q.width
	for width <= x {
		width += chunk
	}
	for i, row := range q.rows {
		q.rows[i] = append(row, emptyRow(width-q.width)...)
	}
	q.width = width
}

func (q *quadrant) growRows(y, chunk int) {
	for len(q.rows) <= y {
		for i := 0; i < chunk; i++ {
			q.rows = append(q.rows, emptyRow(q.width))
		}
	}
}

func emptyRow(n int) []Cell {
	row := make([]Cell, n)
	for i := range row {
		row[i] = NewCell()
	}
	return row
}
