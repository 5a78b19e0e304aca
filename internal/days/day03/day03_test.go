package day03

import "testing"

const sample = `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`

func TestPriority(t *testing.T) {
	cases := []struct {
		item byte
		want int
	}{
		{'a', 1},
		{'z', 26},
		{'A', 27},
		{'Z', 52},
		{'p', 16},
		{'L', 38},
	}
	for _, c := range cases {
		got, err := Priority(c.item)
		if err != nil {
			t.Fatalf("Priority(%q) failed: %v", c.item, err)
		}
		if got != c.want {
			t.Errorf("Priority(%q) = %d, want %d", c.item, got, c.want)
		}
	}

	if _, err := Priority('3'); err == nil {
		t.Error("expected error for non-letter item")
	}
}

func TestSolve_Example(t *testing.T) {
	res, err := New().Solve(sample)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if res.PartOne != "157" {
		t.Errorf("part one: expected 157, got %s", res.PartOne)
	}
	if res.PartTwo != "70" {
		t.Errorf("part two: expected 70, got %s", res.PartTwo)
	}
}

func TestSolve_OddLine(t *testing.T) {
	if _, err := New().Solve("abc\n"); err == nil {
		t.Error("expected error for odd-length rucksack")
	}
}

func TestSolve_ShortGroup(t *testing.T) {
	// Two well-formed lines cannot form a three-elf group.
	if _, err := New().Solve("aa\nbb\n"); err == nil {
		t.Error("expected error for incomplete group")
	}
}
