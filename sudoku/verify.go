package sudoku

// Verify reports whether the given grid is a complete, rule-abiding
// solution: square, fully filled, and with each value appearing exactly
// once per row, column and box. It checks the domain rules directly,
// without going through the encoding.
func Verify(grid [][]int) bool {
	p, err := New(grid)
	if err != nil {
		return false
	}
	n, box := p.n, p.box
	groups := make([][]int, 0, 3*n)
	for r := 0; r < n; r++ {
		row := make([]int, 0, n)
		for c := 0; c < n; c++ {
			row = append(row, grid[r][c])
		}
		groups = append(groups, row)
	}
	for c := 0; c < n; c++ {
		col := make([]int, 0, n)
		for r := 0; r < n; r++ {
			col = append(col, grid[r][c])
		}
		groups = append(groups, col)
	}
	for br := 0; br < n; br += box {
		for bc := 0; bc < n; bc += box {
			g := make([]int, 0, n)
			for r := br; r < br+box; r++ {
				for c := bc; c < bc+box; c++ {
					g = append(g, grid[r][c])
				}
			}
			groups = append(groups, g)
		}
	}
	for _, g := range groups {
		seen := make([]bool, n+1)
		for _, v := range g {
			if v < 1 || v > n || seen[v] {
				return false
			}
			seen[v] = true
		}
	}
	return true
}
