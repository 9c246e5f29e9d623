package setcover

import (
	"github.com/crillab/exactcover/ilp"
)

// Status is the domain-level outcome of a resolution.
type Status byte

const (
	// Optimal means a minimum-cost exact cover was found. Engines working with integer costs
	// round them to engine.Options.Precision significant digits, so the cover is only optimal
	// for the rounded costs: its cost may exceed the true minimum by up to half a unit of the
	// last kept digit of the largest cost, per selected subset.
	Optimal = Status(iota)
	// Infeasible means the instance has no exact cover.
	Infeasible
	// Unhandled means the engine stopped without a definitive answer.
	Unhandled
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	default:
		return "unhandled OptimizationStatus"
	}
}

// A Result is the answer to an exact set covering instance.
type Result struct {
	Status Status
	// Cost and Solution are only meaningful when Status is Optimal.
	Cost     float64
	Solution []int // Indices of the chosen subsets, in ascending order
	// EngineStatus is the raw status returned by the engine.
	// It is StatusOther if the engine was not run.
	EngineStatus ilp.Status
}
