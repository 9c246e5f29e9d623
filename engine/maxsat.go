package engine

import (
	"strconv"
	"time"

	"github.com/crillab/gophersat/maxsat"
	"github.com/sirupsen/logrus"

	"github.com/crillab/exactcover/ilp"
)

// MaxSATName is the name of the MAXSAT engine.
const MaxSATName = "maxsat"

func init() {
	Register(MaxSATName, func(opts Options) ilp.Engine { return NewMaxSAT(opts) })
}

// A MaxSAT is an engine relying on gophersat's weighted MAXSAT solver.
//
// Equalities become hard pseudo-boolean constraints, and each var with a non-null cost
// becomes a soft unit clause, weighted by its cost, that is violated when the var is
// selected (or, for a negative cost, when it is not).
type MaxSAT struct {
	problem
}

var _ ilp.Engine = (*MaxSAT)(nil)

// NewMaxSAT returns a new, empty, MAXSAT engine.
func NewMaxSAT(opts Options) *MaxSAT {
	return &MaxSAT{problem: newProblem(MaxSATName, opts)}
}

func varName(i int) string { return "x" + strconv.Itoa(i) }

// Optimize minimizes the objective function.
// It returns StatusTimeLimit if opts.Timeout elapsed before the optimum was found.
// Only the first call does any work; later calls return the same status.
func (ms *MaxSAT) Optimize() ilp.Status {
	if ms.optimized {
		return ms.status
	}
	vars, ids := ms.start()
	if len(vars) == 0 {
		ms.finish(ilp.StatusOptimal)
		return ms.status
	}
	var constrs []maxsat.Constr
	for _, row := range ms.rows {
		lits := make([]maxsat.Lit, len(row.vars))
		negs := make([]maxsat.Lit, len(row.vars))
		sum := 0
		for i, v := range row.vars {
			lits[i] = maxsat.Var(varName(ids[v] - 1))
			negs[i] = lits[i].Negation()
			sum += row.weights[i]
		}
		// maxsat.New copies the coefficients.
		constrs = append(constrs,
			maxsat.HardPBConstr(lits, row.weights, row.rhs),
			maxsat.HardPBConstr(negs, row.weights, sum-row.rhs),
		)
	}
	weights, precision := ms.integerCosts(vars)
	nbSoft := 0
	for i, v := range vars {
		if weights[i] == 0 {
			continue
		}
		lit := maxsat.Not(varName(i))
		if ms.costs[v] < 0 {
			lit = maxsat.Var(varName(i))
		}
		constrs = append(constrs, maxsat.WeightedClause([]maxsat.Lit{lit}, weights[i]))
		nbSoft++
	}
	ms.log.WithFields(logrus.Fields{
		"vars":      len(ms.costs),
		"free":      len(ms.costs) - len(vars),
		"hard":      2 * len(ms.rows),
		"soft":      nbSoft,
		"precision": precision,
	}).Debug("starting MAXSAT optimization")
	prob := maxsat.New(constrs...)
	prob.SetVerbose(ms.opts.Verbose)
	start := time.Now()
	model, finished := within(ms.opts.Timeout, func() maxsat.Model {
		model, _ := prob.Solve()
		return model
	})
	if model != nil {
		for i, v := range vars {
			ms.values[v] = model[varName(i)]
		}
	}
	ms.report(ms.log.WithField("duration", time.Since(start)), finished, model != nil)
	return ms.status
}
