package main

import (
	"github.com/marcoradocchia/aoc22/internal/days/day01"
	"github.com/marcoradocchia/aoc22/internal/days/day02"
	"github.com/marcoradocchia/aoc22/internal/days/day03"
	"github.com/marcoradocchia/aoc22/internal/days/day04"
	"github.com/marcoradocchia/aoc22/internal/days/day05"
	"github.com/marcoradocchia/aoc22/internal/days/day06"
	"github.com/marcoradocchia/aoc22/internal/days/day08"
	"github.com/marcoradocchia/aoc22/internal/days/day09"
	"github.com/marcoradocchia/aoc22/internal/days/day10"
	"github.com/marcoradocchia/aoc22/internal/days/day14"
	"github.com/marcoradocchia/aoc22/internal/solver"
)

// newRegistry wires every implemented day into a fresh registry. Adding a
// day means adding its constructor here.
func newRegistry() *solver.Registry {
	reg := solver.NewRegistry()
	for _, s := range []solver.Solver{
		day01.New(),
		day02.New(),
		day03.New(),
		day04.New(),
		day05.New(),
		day06.New(),
		day08.New(),
		day09.New(),
		day10.New(),
		day14.New(),
	} {
		reg.Register(s)
	}
	return reg
}
