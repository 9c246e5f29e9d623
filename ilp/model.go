package ilp

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/crillab/exactcover/cover"
)

// A Var is a binary decision variable: whether a subset is part of the solution.
type Var struct {
	Subset int     // Index of the subset in the instance
	Cost   float64 // Coefficient in the objective function
}

// A Constr states that exactly one of its variables must be 1.
type Constr struct {
	Element int   // Index of the element that must be covered
	Vars    []int // Indices, in Model.Vars, of the subsets containing Element, in ascending order
}

// A Model is the 0/1 integer linear program associated with an exact cover instance:
//
//	minimize   sum(Vars[j].Cost * x_j)
//	subject to sum(x_j for j in c.Vars) == 1 for each c in Constrs
//	           x_j in {0, 1}
type Model struct {
	Vars    []Var
	Constrs []Constr
}

// An EmptyCoverageError is returned by Build when some elements are not part of any subset.
// Such an instance has no exact cover.
type EmptyCoverageError struct {
	Elements []int // Uncovered elements, in ascending order
}

func (e *EmptyCoverageError) Error() string {
	elems := make([]string, len(e.Elements))
	for i, elem := range e.Elements {
		elems[i] = fmt.Sprint(elem)
	}
	return fmt.Sprintf("element(s) %s covered by no subset", strings.Join(elems, ", "))
}

// IsEmptyCoverage is true iff err is, or wraps, an *EmptyCoverageError.
func IsEmptyCoverage(err error) bool {
	var emptyErr *EmptyCoverageError
	return errors.As(err, &emptyErr)
}

// Build returns the model associated with ins.
// If an element is covered by no subset, its constraint would have an empty left-hand side:
// no model is returned and the error is an *EmptyCoverageError listing every such element.
func Build(ins *cover.Instance) (*Model, error) {
	m := &Model{
		Vars:    make([]Var, ins.M()),
		Constrs: make([]Constr, ins.N()),
	}
	for i := range m.Constrs {
		m.Constrs[i].Element = i
	}
	for j := range m.Vars {
		m.Vars[j] = Var{Subset: j, Cost: ins.Cost(j)}
		for _, elem := range ins.Subset(j) {
			m.Constrs[elem].Vars = append(m.Constrs[elem].Vars, j)
		}
	}
	var uncovered []int
	for i, c := range m.Constrs {
		if len(c.Vars) == 0 {
			uncovered = append(uncovered, i)
		}
	}
	if len(uncovered) != 0 {
		return nil, &EmptyCoverageError{Elements: uncovered}
	}
	return m, nil
}

// Load adds the variables, then the constraints, of m to e.
// It returns the handle of each variable, in the same order as m.Vars.
func (m *Model) Load(e Engine) ([]Handle, error) {
	handles := make([]Handle, len(m.Vars))
	for j, v := range m.Vars {
		handles[j] = e.AddBinaryVar(v.Cost)
	}
	for _, c := range m.Constrs {
		if len(c.Vars) == 0 {
			return nil, errors.Errorf("constraint on element %d has an empty left-hand side", c.Element)
		}
		vars := make([]Handle, len(c.Vars))
		for k, j := range c.Vars {
			vars[k] = handles[j]
		}
		if err := e.AddEqualityConstr(vars, 1); err != nil {
			return nil, errors.Wrapf(err, "could not add constraint on element %d", c.Element)
		}
	}
	return handles, nil
}

// String returns a human-readable description of the model, in a LP-like format.
func (m *Model) String() string {
	var sb strings.Builder
	sb.WriteString("min:")
	for j, v := range m.Vars {
		fmt.Fprintf(&sb, " %+g x%d", v.Cost, j)
	}
	sb.WriteString(" ;\n")
	for _, c := range m.Constrs {
		for _, j := range c.Vars {
			fmt.Fprintf(&sb, "+1 x%d ", j)
		}
		fmt.Fprintf(&sb, "= 1 ; * element %d\n", c.Element)
	}
	return sb.String()
}
