// Package ilp translates exact set covering instances into 0/1 integer linear programs
// and defines the Engine interface that any MILP solver must implement to optimize them.
//
// Each subset becomes a binary variable whose objective coefficient is its cost,
// and each element becomes an equality constraint stating that exactly one subset
// containing it is selected. Instances where an element belongs to no subset cannot
// be represented that way and are rejected by Build with an *EmptyCoverageError.
package ilp
