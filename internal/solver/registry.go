package solver

import (
	"fmt"
	"sort"
)

// Registry holds the solvers known to a single CLI instance, keyed by day.
type Registry struct {
	solvers map[int]Solver
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[int]Solver)}
}

// Register adds a solver to the registry. Registering the same day twice is
// a programmer error (two packages claiming one day), so it panics.
func (r *Registry) Register(s Solver) {
	if _, exists := r.solvers[s.Day()]; exists {
		panic(fmt.Sprintf("solver for day %d already registered", s.Day()))
	}
	r.solvers[s.Day()] = s
}

// Get returns the solver for the given day, or an error if no solver is
// registered for it.
func (r *Registry) Get(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("no solver registered for day %d", day)
	}
	return s, nil
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for day := range r.solvers {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// Len returns the number of registered solvers.
func (r *Registry) Len() int {
	return len(r.solvers)
}
