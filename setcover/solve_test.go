package setcover_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crillab/exactcover/cover"
	"github.com/crillab/exactcover/engine"
	"github.com/crillab/exactcover/ilp"
	"github.com/crillab/exactcover/ilp/ilptest"
	"github.com/crillab/exactcover/setcover"
)

func mustInstance(t *testing.T, n int, costs []float64, subsets [][]int) *cover.Instance {
	t.Helper()
	ins, err := cover.New(n, costs, subsets)
	require.NoError(t, err)
	return ins
}

func pbSolver() *setcover.Solver {
	return &setcover.Solver{NewEngine: func() ilp.Engine { return engine.NewPB(engine.DefaultOptions()) }}
}

// recordingSolver returns a solver whose engine is rec, and a pointer to the number of engines built.
func recordingSolver(rec *ilptest.Recorder) (*setcover.Solver, *int) {
	built := 0
	return &setcover.Solver{NewEngine: func() ilp.Engine {
		built++
		return rec
	}}, &built
}

func TestSolveScenarios(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		costs    []float64
		subsets  [][]int
		status   setcover.Status
		cost     float64
		solution []int
	}{
		{"singletons", 3, []float64{1, 1, 1}, [][]int{{0}, {1}, {2}}, setcover.Optimal, 3, []int{0, 1, 2}},
		{"one big subset", 3, []float64{1, 5, 1, 1}, [][]int{{0, 1, 2}, {0}, {1}, {2}}, setcover.Optimal, 1, []int{0}},
		{"uncovered element", 2, []float64{1}, [][]int{{0}}, setcover.Infeasible, 0, nil},
		{"duplicate subsets", 2, []float64{1, 1}, [][]int{{0}, {0}}, setcover.Infeasible, 0, nil},
		{"no overlap-free cover", 3, []float64{1, 1, 1}, [][]int{{0, 1}, {1, 2}, {0, 2}}, setcover.Infeasible, 0, nil},
		{"no elements", 0, []float64{3, 2}, [][]int{{}, {}}, setcover.Optimal, 0, []int{}},
		{"empty subset is never worth it", 1, []float64{1, 2}, [][]int{{0}, {}}, setcover.Optimal, 1, []int{0}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ins := mustInstance(t, test.n, test.costs, test.subsets)
			res, err := pbSolver().Solve(ins)
			require.NoError(t, err)
			assert.Equal(t, test.status, res.Status)
			if test.status == setcover.Optimal {
				assert.InDelta(t, test.cost, res.Cost, 1e-9)
				assert.Equal(t, test.solution, res.Solution)
				assert.NoError(t, setcover.Verify(ins, res))
			}
		})
	}
}

func TestSolveEmptyCoverageSkipsEngine(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		costs   []float64
		subsets [][]int
	}{
		{"uncovered element", 2, []float64{1}, [][]int{{0}}},
		{"over-covered and uncovered", 2, []float64{1, 1}, [][]int{{0}, {0}}},
		{"no subsets", 1, []float64{}, [][]int{}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := &ilptest.Recorder{Status: ilp.StatusOptimal}
			s, built := recordingSolver(rec)
			res, err := s.Solve(mustInstance(t, test.n, test.costs, test.subsets))
			require.NoError(t, err)
			assert.Equal(t, setcover.Infeasible, res.Status)
			assert.Equal(t, ilp.StatusOther, res.EngineStatus)
			assert.Zero(t, *built)
			assert.Zero(t, rec.Calls())
		})
	}
}

func TestSolveStatusMapping(t *testing.T) {
	tests := []struct {
		engine ilp.Status
		status setcover.Status
	}{
		{ilp.StatusOptimal, setcover.Optimal},
		{ilp.StatusInfeasible, setcover.Infeasible},
		{ilp.StatusIntegerInfeasible, setcover.Infeasible},
		{ilp.StatusTimeLimit, setcover.Unhandled},
		{ilp.StatusOther, setcover.Unhandled},
	}
	for _, test := range tests {
		t.Run(test.engine.String(), func(t *testing.T) {
			rec := &ilptest.Recorder{Status: test.engine, Objective: 2, Values: []float64{1, 0, 1}}
			s, built := recordingSolver(rec)
			ins := mustInstance(t, 2, []float64{1, 3, 1}, [][]int{{0}, {0, 1}, {1}})
			res, err := s.Solve(ins)
			require.NoError(t, err)
			assert.Equal(t, 1, *built)
			assert.Equal(t, 1, rec.NbOptimize)
			assert.Equal(t, test.status, res.Status)
			assert.Equal(t, test.engine, res.EngineStatus)
			if test.status == setcover.Optimal {
				assert.Equal(t, 2.0, res.Cost)
				assert.Equal(t, []int{0, 2}, res.Solution)
			} else {
				assert.Zero(t, rec.NbValueRead, "values read from a non-optimal engine")
				assert.Zero(t, res.Cost)
				assert.Nil(t, res.Solution)
			}
		})
	}
}

func TestSolveSelectThreshold(t *testing.T) {
	rec := &ilptest.Recorder{Status: ilp.StatusOptimal, Values: []float64{0.995, 0.99, 1e-7, 1.000001}}
	s, _ := recordingSolver(rec)
	ins := mustInstance(t, 1, []float64{1, 1, 1, 1}, [][]int{{0}, {0}, {0}, {0}})
	res, err := s.Solve(ins)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, res.Solution)
}

func TestSolveEngineRejectsModel(t *testing.T) {
	rec := &ilptest.Recorder{ConstrErr: errors.New("too many constraints")}
	s, _ := recordingSolver(rec)
	_, err := s.Solve(mustInstance(t, 1, []float64{1}, [][]int{{0}}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many constraints")
	assert.Zero(t, rec.NbOptimize)
}

func TestSolveWithoutEngine(t *testing.T) {
	var s setcover.Solver
	_, err := s.Solve(mustInstance(t, 1, []float64{1}, [][]int{{0}}))
	assert.Error(t, err)
}
