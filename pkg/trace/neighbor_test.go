package trace

import "testing"

func TestNeumannNeighborsAbsentVsZero(t *testing.T) {
	grid := [][]byte{
		{0, 1},
		{1, 0},
	}
	n, err := neumannNeighbors(grid, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Top != nil {
		t.Errorf("expected Top absent at the grid edge, got %v", *n.Top)
	}
	if n.Left != nil {
		t.Errorf("expected Left absent at the grid edge, got %v", *n.Left)
	}
	if n.Right == nil || *n.Right != 1 {
		t.Errorf("expected Right=1, got %v", n.Right)
	}
	if n.Bottom == nil || *n.Bottom != 1 {
		t.Errorf("expected Bottom=1, got %v", n.Bottom)
	}
}

func TestNeumannNeighborsZeroIsDistinctFromAbsent(t *testing.T) {
	grid := [][]byte{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	n, err := neumannNeighbors(grid, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Top == nil || *n.Top != 0 {
		t.Errorf("expected Top present with value 0, got %v", n.Top)
	}
	if isZeroOrAbsent(n.Top) != true {
		t.Errorf("a present 0 should still count as zero-or-absent")
	}
}

func TestNeumannNeighborsOutOfBounds(t *testing.T) {
	grid := [][]byte{{1}}
	if _, err := neumannNeighbors(grid, 5, 5); err == nil {
		t.Fatalf("expected an error for an out-of-bounds coordinate")
	}
}

func TestNeumannNeighborsRejectsEmptyGrid(t *testing.T) {
	if _, err := neumannNeighbors(nil, 0, 0); err == nil {
		t.Fatalf("expected an error for a non-2D (empty) grid")
	}
}
