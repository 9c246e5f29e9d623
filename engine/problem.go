package engine

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/crillab/exactcover/ilp"
)

// maxTotalWeight is the maximal sum of the integer weights given to gophersat.
// Bigger values make its cutting planes prone to overflows.
const maxTotalWeight = 1 << 40

// A pbRow is a constraint "sum(weights[i] * vars[i]) == rhs".
type pbRow struct {
	vars    []int
	weights []int
	rhs     int
}

// A problem holds the variables and constraints given to an engine working with gophersat,
// and the solution found. Since gophersat only deals with integer weights, costs are scaled
// and rounded before optimization, but the objective value is computed from the original costs.
type problem struct {
	opts      Options
	log       logrus.FieldLogger
	costs     []float64
	rows      []pbRow
	optimized bool
	status    ilp.Status
	values    []bool
	objective float64
}

func newProblem(name string, opts Options) problem {
	return problem{opts: opts, log: opts.logger().WithField("engine", name)}
}

// AddBinaryVar adds a binary variable.
func (p *problem) AddBinaryVar(cost float64) ilp.Handle {
	p.costs = append(p.costs, cost)
	return ilp.Handle(len(p.costs) - 1)
}

// AddEqualityConstr adds the constraint "sum(vars) == rhs".
// A variable appearing several times in vars gets a coefficient equal to its number of occurrences.
// rhs must be a non-negative integer.
func (p *problem) AddEqualityConstr(vars []ilp.Handle, rhs float64) error {
	if p.optimized {
		return errors.New("cannot add a constraint after optimization")
	}
	if len(vars) == 0 {
		return errors.New("empty left-hand side")
	}
	if rhs < 0 || rhs != math.Trunc(rhs) || rhs > math.MaxInt32 {
		return errors.Errorf("right-hand side %v is not a non-negative integer", rhs)
	}
	row := pbRow{rhs: int(rhs)}
	pos := make(map[int]int, len(vars))
	for _, h := range vars {
		v := int(h)
		if v < 0 || v >= len(p.costs) {
			return errors.Errorf("unknown variable %d", v)
		}
		if i, ok := pos[v]; ok {
			row.weights[i]++
			continue
		}
		pos[v] = len(row.vars)
		row.vars = append(row.vars, v)
		row.weights = append(row.weights, 1)
	}
	p.rows = append(p.rows, row)
	return nil
}

// ObjectiveValue returns the cost of the best solution.
func (p *problem) ObjectiveValue() float64 { return p.objective }

// VarValue returns 1 if h is true in the best solution, 0 else.
func (p *problem) VarValue(h ilp.Handle) float64 {
	if p.status == ilp.StatusOptimal && int(h) >= 0 && int(h) < len(p.values) && p.values[h] {
		return 1
	}
	return 0
}

// start marks the problem as optimized and binds the vars that appear in no row.
// It returns the constrained vars, numbered densely from 0, and, for each var, its
// index in that list plus one, or 0 if it is not constrained.
func (p *problem) start() (vars, ids []int) {
	p.optimized = true
	p.values = make([]bool, len(p.costs))
	ids = make([]int, len(p.costs))
	for _, row := range p.rows {
		for _, v := range row.vars {
			if ids[v] == 0 {
				vars = append(vars, v)
				ids[v] = len(vars)
			}
		}
	}
	for v, cost := range p.costs {
		if ids[v] == 0 { // Free var: its best value only depends on its cost
			p.values[v] = cost < 0
		}
	}
	return vars, ids
}

// finish sets the final status and computes the objective value from the values of the vars.
func (p *problem) finish(status ilp.Status) {
	p.status = status
	p.objective = 0
	if status != ilp.StatusOptimal {
		return
	}
	for v, b := range p.values {
		if b {
			p.objective += p.costs[v]
		}
	}
}

// integerCosts returns, for each of the given vars, its absolute cost as an integer weight,
// and the precision actually used. Costs keep opts.Precision significant digits relative
// to the largest absolute cost, unless the weights would sum above maxTotalWeight.
// Weights are divided by their GCD. All weights are 0 if all costs are.
func (p *problem) integerCosts(vars []int) (weights []int, precision int) {
	maxCost := 0.0
	for _, v := range vars {
		maxCost = math.Max(maxCost, math.Abs(p.costs[v]))
	}
	if maxCost == 0 {
		return make([]int, len(vars)), 0
	}
	precision = p.opts.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}
	for {
		weights = scaleCosts(p.costs, vars, maxCost, precision)
		// A float sum cannot overflow, even with many vars and a high precision.
		total := 0.0
		for _, w := range weights {
			total += float64(w)
		}
		if total <= maxTotalWeight || precision == 1 {
			break
		}
		precision--
	}
	divideByGCD(weights)
	return weights, precision
}

// scaleCosts returns, for each var, its absolute cost as an integer,
// where maxCost is worth 10^precision.
func scaleCosts(costs []float64, vars []int, maxCost float64, precision int) []int {
	scale := math.Pow10(precision) / maxCost
	weights := make([]int, len(vars))
	for i, v := range vars {
		weights[i] = int(math.Round(math.Abs(costs[v]) * scale))
	}
	return weights
}

// divideByGCD divides all weights by their greatest common divisor.
func divideByGCD(weights []int) {
	g := 0
	for _, w := range weights {
		g = gcd(g, w)
	}
	if g <= 1 {
		return
	}
	for i := range weights {
		weights[i] /= g
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// within runs f and returns its result, unless timeout is positive and elapses first.
// gophersat's searches cannot be interrupted: on timeout, f keeps running on its own goroutine.
func within[T any](timeout time.Duration, f func() T) (res T, finished bool) {
	if timeout <= 0 {
		return f(), true
	}
	done := make(chan T, 1)
	go func() { done <- f() }()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case res = <-done:
		return res, true
	case <-timer.C:
		return res, false
	}
}

// report logs the outcome of a search and sets the final status accordingly.
// found is false if the problem was proven infeasible.
func (p *problem) report(log logrus.FieldLogger, finished, found bool) {
	switch {
	case !finished:
		log.WithField("timeout", p.opts.Timeout).Warn("optimization stopped by time limit")
		p.finish(ilp.StatusTimeLimit)
	case !found:
		log.Debug("problem is infeasible")
		p.finish(ilp.StatusInfeasible)
	default:
		p.finish(ilp.StatusOptimal)
		log.WithField("objective", p.objective).Debug("optimum found")
	}
}
