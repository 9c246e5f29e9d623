package ilp

// A Handle identifies a variable inside an Engine.
type Handle int

// Status is the outcome of an optimization.
type Status byte

const (
	// StatusOther means the engine stopped for a reason not described by the other statuses.
	StatusOther = Status(iota)
	// StatusOptimal means an optimal solution was found.
	StatusOptimal
	// StatusInfeasible means the problem has no solution.
	StatusInfeasible
	// StatusIntegerInfeasible means the relaxation of the problem has a solution
	// but the problem itself does not.
	StatusIntegerInfeasible
	// StatusTimeLimit means the engine was stopped before it could prove optimality.
	StatusTimeLimit
)

func (s Status) String() string {
	switch s {
	case StatusOther:
		return "OTHER"
	case StatusOptimal:
		return "OPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusIntegerInfeasible:
		return "INT_INFEASIBLE"
	case StatusTimeLimit:
		return "TIME_LIMIT"
	default:
		return "UNKNOWN"
	}
}

// An Engine is a mixed integer linear programming solver able to minimize
// a linear function of binary variables under linear equality constraints.
//
// Variables and constraints are added first, then Optimize is called once.
// ObjectiveValue and VarValue are only meaningful after Optimize returned StatusOptimal.
// Values may be slightly off 0 and 1 because of numerical tolerances.
type Engine interface {
	// AddBinaryVar adds a new variable with domain {0, 1} and the given
	// coefficient in the objective function.
	AddBinaryVar(cost float64) Handle
	// AddEqualityConstr adds the constraint "sum of vars == rhs".
	AddEqualityConstr(vars []Handle, rhs float64) error
	// Optimize minimizes the objective function and blocks until the engine stops.
	Optimize() Status
	// ObjectiveValue is the value of the objective function in the best solution found.
	ObjectiveValue() float64
	// VarValue is the value of the variable h in the best solution found.
	VarValue(h Handle) float64
}
