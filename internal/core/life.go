package core

// NextState applies Conway's rule to a single cell with n live neighbors.
func NextState(alive bool, n int) bool {
	if alive {
		return n == 2 || n == 3
	}
	return n == 3
}

// LiveNeighbors counts the live cells among the eight toroidal neighbors of
// (row, col). On a 1x1 grid every neighbor is the cell itself.
func (g *Grid) LiveNeighbors(row, col int) int {
	g.Index(row, col)
	rows, cols := g.rows, g.cols
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (row + dr + rows) % rows
			nc := (col + dc + cols) % cols
			if g.cur[nr*cols+nc] {
				n++
			}
		}
	}
	return n
}

// Step advances the grid by one generation. Neighbor counts only ever read
// the current buffer; results land in the scratch buffer which is then
// swapped in.
func (g *Grid) Step() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			idx := r*g.cols + c
			g.nxt[idx] = NextState(g.cur[idx], g.LiveNeighbors(r, c))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}
