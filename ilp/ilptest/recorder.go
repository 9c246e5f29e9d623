// Package ilptest provides a scripted ilp.Engine for tests.
package ilptest

import (
	"github.com/pkg/errors"

	"github.com/crillab/exactcover/ilp"
)

var _ ilp.Engine = (*Recorder)(nil)

// A Constr is an equality constraint as received by a Recorder.
type Constr struct {
	Vars []ilp.Handle
	RHS  float64
}

// A Recorder is an ilp.Engine that does not solve anything.
// It records every call and answers Optimize with a scripted status and values.
type Recorder struct {
	// Scripted answers.
	Status    ilp.Status
	Objective float64
	Values    []float64 // Value of each var, by handle. Missing values are 0.
	ConstrErr error     // If non-nil, returned by AddEqualityConstr

	// Recorded calls.
	Costs       []float64
	Constrs     []Constr
	NbOptimize  int
	NbValueRead int
}

// Calls returns the total number of calls the engine received.
func (r *Recorder) Calls() int {
	return len(r.Costs) + len(r.Constrs) + r.NbOptimize + r.NbValueRead
}

func (r *Recorder) AddBinaryVar(cost float64) ilp.Handle {
	r.Costs = append(r.Costs, cost)
	return ilp.Handle(len(r.Costs) - 1)
}

func (r *Recorder) AddEqualityConstr(vars []ilp.Handle, rhs float64) error {
	for _, h := range vars {
		if int(h) < 0 || int(h) >= len(r.Costs) {
			return errors.Errorf("unknown handle %d", h)
		}
	}
	if r.ConstrErr != nil {
		return r.ConstrErr
	}
	cpy := make([]ilp.Handle, len(vars))
	copy(cpy, vars)
	r.Constrs = append(r.Constrs, Constr{Vars: cpy, RHS: rhs})
	return nil
}

func (r *Recorder) Optimize() ilp.Status {
	r.NbOptimize++
	return r.Status
}

func (r *Recorder) ObjectiveValue() float64 {
	r.NbValueRead++
	return r.Objective
}

func (r *Recorder) VarValue(h ilp.Handle) float64 {
	r.NbValueRead++
	if int(h) < len(r.Values) {
		return r.Values[h]
	}
	return 0
}
