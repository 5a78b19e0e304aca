package day08

import "testing"

const sample = `30373
25512
65332
33549
35390
`

func TestParseForest(t *testing.T) {
	forest, err := ParseForest(sample)
	if err != nil {
		t.Fatalf("ParseForest failed: %v", err)
	}

	if got := forest.Height(2, 1); got != 5 {
		t.Errorf("Height(2,1) = %d, want 5", got)
	}
	if got := forest.Height(4, 4); got != 0 {
		t.Errorf("Height(4,4) = %d, want 0", got)
	}

	if _, err := ParseForest("123\n45\n"); err == nil {
		t.Error("expected error for ragged rows")
	}
	if _, err := ParseForest("12a\n345\n678\n"); err == nil {
		t.Error("expected error for non-digit height")
	}
}

func TestVisibility(t *testing.T) {
	forest, err := ParseForest(sample)
	if err != nil {
		t.Fatalf("ParseForest failed: %v", err)
	}

	if !forest.IsVisible(0, 0) {
		t.Error("edge tree must be visible")
	}
	if forest.IsVisible(3, 1) {
		t.Error("tree at (3,1) must be hidden")
	}
	if got := forest.CountVisible(); got != 21 {
		t.Errorf("CountVisible = %d, want 21", got)
	}
}

func TestScenicScore(t *testing.T) {
	forest, err := ParseForest(sample)
	if err != nil {
		t.Fatalf("ParseForest failed: %v", err)
	}

	if got := forest.ScenicScore(1, 2); got != 4 {
		t.Errorf("ScenicScore(1,2) = %d, want 4", got)
	}
	if got := forest.ScenicScore(3, 2); got != 8 {
		t.Errorf("ScenicScore(3,2) = %d, want 8", got)
	}
	if got := forest.HighestScenicScore(); got != 8 {
		t.Errorf("HighestScenicScore = %d, want 8", got)
	}
}

func TestSolve_Example(t *testing.T) {
	res, err := New().Solve(sample)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if res.PartOne != "21" {
		t.Errorf("part one: expected 21, got %s", res.PartOne)
	}
	if res.PartTwo != "8" {
		t.Errorf("part two: expected 8, got %s", res.PartTwo)
	}
}
