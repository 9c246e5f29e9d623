package engine

import (
	"time"

	"github.com/crillab/gophersat/solver"
	"github.com/sirupsen/logrus"

	"github.com/crillab/exactcover/ilp"
)

// PBName is the name of the pseudo-boolean engine.
const PBName = "pb"

func init() {
	Register(PBName, func(opts Options) ilp.Engine { return NewPB(opts) })
}

// A PB is an engine relying on gophersat's pseudo-boolean optimizer.
//
// Each equality becomes a pair of pseudo-boolean constraints, and the objective
// becomes gophersat's cost function. Costs are taken into account with
// opts.Precision significant digits, relative to the largest absolute cost.
type PB struct {
	problem
}

var _ ilp.Engine = (*PB)(nil)

// NewPB returns a new, empty, pseudo-boolean engine.
func NewPB(opts Options) *PB {
	return &PB{problem: newProblem(PBName, opts)}
}

// Optimize minimizes the objective function.
// It returns StatusTimeLimit if opts.Timeout elapsed before the optimum was found.
// Only the first call does any work; later calls return the same status.
func (pb *PB) Optimize() ilp.Status {
	if pb.optimized {
		return pb.status
	}
	vars, ids := pb.start()
	if len(vars) == 0 {
		pb.finish(ilp.StatusOptimal)
		return pb.status
	}
	var constrs []solver.PBConstr
	for _, row := range pb.rows {
		// gophersat vars are numbered from 1.
		lits := make([]int, len(row.vars))
		for i, v := range row.vars {
			lits[i] = ids[v]
		}
		weights := make([]int, len(row.weights))
		copy(weights, row.weights)
		constrs = append(constrs, solver.Eq(lits, weights, row.rhs)...)
	}
	prob := solver.ParsePBConstrs(constrs)
	lits, weights, precision := pb.costFunc(vars)
	if len(lits) != 0 {
		prob.SetCostFunc(lits, weights)
	}
	pb.log.WithFields(logrus.Fields{
		"vars":      len(pb.costs),
		"free":      len(pb.costs) - len(vars),
		"rows":      len(pb.rows),
		"pbConstrs": len(constrs),
		"precision": precision,
	}).Debug("starting pseudo-boolean optimization")
	s := solver.New(prob)
	s.Verbose = pb.opts.Verbose
	start := time.Now()
	model, finished := within(pb.opts.Timeout, func() []bool {
		if s.Minimize() < 0 {
			return nil
		}
		return s.Model()
	})
	for i, b := range model {
		if i < len(vars) {
			pb.values[vars[i]] = b
		}
	}
	pb.report(pb.log.WithField("duration", time.Since(start)), finished, model != nil)
	return pb.status
}

// costFunc returns the literals and integer weights of the function to minimize,
// and the precision actually used to compute the weights.
// A var with a negative cost is rewritten as a positive cost on its negation,
// which only shifts the objective by a constant. Vars with a null weight are left out.
func (pb *PB) costFunc(vars []int) (lits []solver.Lit, weights []int, precision int) {
	all, precision := pb.integerCosts(vars)
	for i, v := range vars {
		if all[i] == 0 {
			continue
		}
		lit := solver.Var(i).Lit()
		if pb.costs[v] < 0 {
			lit = lit.Negation()
		}
		lits = append(lits, lit)
		weights = append(weights, all[i])
	}
	return lits, weights, precision
}
