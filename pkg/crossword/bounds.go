package crossword

// ComputeBounds scans the occupied coordinates and returns the minimal
// rectangle containing them, with derived width and height. An empty grid
// yields the zero Bounds.
func ComputeBounds(g Grid) Bounds {
	if len(g) == 0 {
		return Bounds{}
	}

	var b Bounds
	first := true
	for c := range g {
		if first {
			b.MinRow, b.MaxRow = c.Row, c.Row
			b.MinCol, b.MaxCol = c.Col, c.Col
			first = false
			continue
		}
		b.MinRow = min(b.MinRow, c.Row)
		b.MaxRow = max(b.MaxRow, c.Row)
		b.MinCol = min(b.MinCol, c.Col)
		b.MaxCol = max(b.MaxCol, c.Col)
	}
	b.Width = b.MaxCol - b.MinCol + 1
	b.Height = b.MaxRow - b.MinRow + 1
	return b
}

// Project returns a dense row-major view of the bounded region. Occupied
// coordinates map to their cell, everything else to nil. This is the only
// shape external renderers consume; the sparse grid never leaves the
// package boundary for drawing purposes.
func (p *Puzzle) Project() [][]*Cell {
	rows := make([][]*Cell, p.Bounds.Height)
	for r := range rows {
		rows[r] = make([]*Cell, p.Bounds.Width)
		for c := range rows[r] {
			rows[r][c] = p.Grid[Coord{Row: p.Bounds.MinRow + r, Col: p.Bounds.MinCol + c}]
		}
	}
	return rows
}
