package engine

// GenerateFullBoard fills the board with a complete valid solution and
// stores it. The three diagonal 3x3 boxes share no row, column, or box,
// so each is seeded with an independent random permutation of 1-9; a
// backtracking solve then completes the remaining cells. The pre-fill
// only narrows the search, correctness does not depend on it.
func (e *SudokuEngine) GenerateFullBoard() {
	e.board = Grid{}

	for box := 0; box < GridSize; box += BoxSize {
		e.fillBox(box, box)
	}

	e.solve()
	e.solution = e.board
}

// fillBox writes a random permutation of 1-9 into the 3x3 box whose
// top-left corner is (rowStart, colStart)
func (e *SudokuEngine) fillBox(rowStart, colStart int) {
	nums := e.rng.Perm(GridSize)
	idx := 0
	for r := 0; r < BoxSize; r++ {
		for c := 0; c < BoxSize; c++ {
			e.board[rowStart+r][colStart+c] = nums[idx] + 1
			idx++
		}
	}
}

// solve completes the board in place using chronological backtracking:
// first empty cell in row-major order, digits tried ascending, the cell
// restored to empty on every failed branch. Returns false only when no
// completion exists.
func (e *SudokuEngine) solve() bool {
	row, col, found := findEmpty(&e.board)
	if !found {
		return true
	}

	for num := 1; num <= 9; num++ {
		if isValidFor(&e.board, row, col, num) {
			e.board[row][col] = num
			if e.solve() {
				return true
			}
			e.board[row][col] = EmptyCell
		}
	}

	return false
}

// findEmpty returns the first empty cell in row-major order
func findEmpty(g *Grid) (int, int, bool) {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if g[r][c] == EmptyCell {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// isValidFor checks num against the current contents of row, column, and
// box. The solver only probes empty cells, so no self-exclusion is needed.
func isValidFor(g *Grid, row, col, num int) bool {
	for i := 0; i < GridSize; i++ {
		if g[row][i] == num || g[i][col] == num {
			return false
		}
	}
	boxRow := BoxSize * (row / BoxSize)
	boxCol := BoxSize * (col / BoxSize)
	for r := boxRow; r < boxRow+BoxSize; r++ {
		for c := boxCol; c < boxCol+BoxSize; c++ {
			if g[r][c] == num {
				return false
			}
		}
	}
	return true
}

// RemoveNumbers blanks cells according to the difficulty's removal range.
// The resulting puzzle is not checked for solution uniqueness.
func (e *SudokuEngine) RemoveNumbers(difficulty Difficulty) {
	min, max := RemovalRange(difficulty)
	count := min
	if max > min {
		count = min + e.rng.Intn(max-min+1)
	}
	e.RemoveCells(count)
}

// RemoveCells blanks count distinct cells chosen uniformly at random.
// Counts above the board size clear the whole board.
func (e *SudokuEngine) RemoveCells(count int) {
	if count > TotalCells {
		count = TotalCells
	}

	cells := e.rng.Perm(TotalCells)
	for i := 0; i < count; i++ {
		row, col := cells[i]/GridSize, cells[i]%GridSize
		e.board[row][col] = EmptyCell
	}
}
