package setcover

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/crillab/exactcover/cover"
	"github.com/crillab/exactcover/ilp"
)

// SelectThreshold is the value above which a variable is considered true.
// Engines may return values slightly off 0 and 1.
const SelectThreshold = 0.99

// A Solver solves exact set covering instances with an ilp.Engine.
type Solver struct {
	// NewEngine returns a new, empty engine. It is called once per resolution,
	// and not at all when an element is covered by no subset.
	NewEngine func() ilp.Engine
	// Logger is where the resolution is logged. If nil, the standard logrus logger is used.
	Logger logrus.FieldLogger
}

func (s *Solver) logger() logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}

// Solve returns an optimal exact cover of ins, if there is one.
// An error is only returned when the engine could not be given the model;
// an instance without solution is not an error, but an Infeasible result.
func (s *Solver) Solve(ins *cover.Instance) (Result, error) {
	log := s.logger().WithFields(logrus.Fields{"elements": ins.N(), "subsets": ins.M()})
	m, err := ilp.Build(ins)
	if err != nil {
		var emptyErr *ilp.EmptyCoverageError
		if errors.As(err, &emptyErr) {
			log.WithField("uncovered", emptyErr.Elements).Info("some elements are covered by no subset")
			return Result{Status: Infeasible}, nil
		}
		return Result{}, errors.Wrap(err, "could not build model")
	}
	if s.NewEngine == nil {
		return Result{}, errors.New("no engine")
	}
	e := s.NewEngine()
	handles, err := m.Load(e)
	if err != nil {
		return Result{}, errors.Wrap(err, "engine rejected the model")
	}
	log.WithField("constraints", len(m.Constrs)).Debug("model loaded")
	start := time.Now()
	status := e.Optimize()
	log = log.WithFields(logrus.Fields{"engineStatus": status, "duration": time.Since(start)})
	res := interpret(m, e, status, handles)
	switch res.Status {
	case Optimal:
		log.WithFields(logrus.Fields{"cost": res.Cost, "chosen": len(res.Solution)}).Info("optimal solution found")
	case Infeasible:
		log.Info("instance has no exact cover")
	default:
		log.Warn("engine stopped without a definitive answer")
	}
	return res, nil
}

// interpret translates what the engine found into a Result.
// The engine is only queried for values when status is StatusOptimal.
func interpret(m *ilp.Model, e ilp.Engine, status ilp.Status, handles []ilp.Handle) Result {
	switch status {
	case ilp.StatusOptimal:
		res := Result{Status: Optimal, EngineStatus: status, Cost: e.ObjectiveValue(), Solution: []int{}}
		for i, h := range handles {
			if e.VarValue(h) > SelectThreshold {
				res.Solution = append(res.Solution, m.Vars[i].Subset)
			}
		}
		return res
	case ilp.StatusInfeasible, ilp.StatusIntegerInfeasible:
		return Result{Status: Infeasible, EngineStatus: status}
	default:
		return Result{Status: Unhandled, EngineStatus: status}
	}
}
