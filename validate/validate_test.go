package validate

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/cityjumper/mysudoku/game/engine"
)

func TestConflicts(t *testing.T) {
	t.Run("empty grid has no conflicts", func(t *testing.T) {
		var g engine.Grid
		if cells := Conflicts(g); len(cells) != 0 {
			t.Errorf("Expected no conflicts, got %v", cells)
		}
	})

	t.Run("row duplicate flags both cells", func(t *testing.T) {
		var g engine.Grid
		g[2][1] = 7
		g[2][6] = 7

		want := []engine.Cell{{Row: 2, Col: 1}, {Row: 2, Col: 6}}
		if got := Conflicts(g); !reflect.DeepEqual(got, want) {
			t.Errorf("Conflicts = %v, want %v", got, want)
		}
	})

	t.Run("column duplicate flags both cells", func(t *testing.T) {
		var g engine.Grid
		g[0][4] = 3
		g[8][4] = 3

		want := []engine.Cell{{Row: 0, Col: 4}, {Row: 8, Col: 4}}
		if got := Conflicts(g); !reflect.DeepEqual(got, want) {
			t.Errorf("Conflicts = %v, want %v", got, want)
		}
	})

	t.Run("box duplicate flags both cells", func(t *testing.T) {
		var g engine.Grid
		g[3][3] = 5
		g[5][5] = 5

		want := []engine.Cell{{Row: 3, Col: 3}, {Row: 5, Col: 5}}
		if got := Conflicts(g); !reflect.DeepEqual(got, want) {
			t.Errorf("Conflicts = %v, want %v", got, want)
		}
	})

	t.Run("cell in multiple conflicts reported once", func(t *testing.T) {
		var g engine.Grid
		// (0,0) conflicts by row with (0,5) and by column with (6,0)
		g[0][0] = 9
		g[0][5] = 9
		g[6][0] = 9

		want := []engine.Cell{
			{Row: 0, Col: 0},
			{Row: 0, Col: 5},
			{Row: 6, Col: 0},
		}
		if got := Conflicts(g); !reflect.DeepEqual(got, want) {
			t.Errorf("Conflicts = %v, want %v", got, want)
		}
	})

	t.Run("distinct digits never conflict", func(t *testing.T) {
		var g engine.Grid
		for c := 0; c < engine.GridSize; c++ {
			g[0][c] = c + 1
		}
		if cells := Conflicts(g); len(cells) != 0 {
			t.Errorf("Expected no conflicts for distinct digits, got %v", cells)
		}
	})
}

func TestIsValidSolution(t *testing.T) {
	t.Run("generated solution is valid", func(t *testing.T) {
		eng := engine.NewEngineWithRand(rand.New(rand.NewSource(11)))
		eng.GenerateFullBoard()

		if !IsValidSolution(eng.Solution()) {
			t.Error("Expected a generated solution to be valid")
		}
	})

	t.Run("incomplete grid is not a solution", func(t *testing.T) {
		eng := engine.NewEngineWithRand(rand.New(rand.NewSource(11)))
		eng.GenerateFullBoard()
		eng.RemoveCells(1)

		if IsValidSolution(eng.Board()) {
			t.Error("Expected a grid with an empty cell to be rejected")
		}
	})

	t.Run("complete grid with a duplicate is not a solution", func(t *testing.T) {
		eng := engine.NewEngineWithRand(rand.New(rand.NewSource(11)))
		eng.GenerateFullBoard()

		g := eng.Board()
		g[0][0] = g[0][1] // force a row duplicate
		if IsValidSolution(g) {
			t.Error("Expected a grid with duplicate digits to be rejected")
		}
	})
}
