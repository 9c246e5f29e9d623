package cover

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"
)

// An Instance is a validated exact set covering problem.
// Once built, an Instance is never modified.
type Instance struct {
	n       int
	costs   []float64
	subsets [][]int
}

// New returns a new instance with n elements and the given subsets and costs.
// The slices are copied. Each subset is treated as a set: its indices are sorted
// and duplicates are dropped.
// An *InputError is returned if n is negative, if there is not exactly one cost
// per subset, if a cost is negative or not finite, or if a subset refers to an element
// outside [0, n).
func New(n int, costs []float64, subsets [][]int) (*Instance, error) {
	if n < 0 {
		return nil, &InputError{Field: "N", Err: errors.Errorf("number of elements must be non-negative, got %d", n)}
	}
	if len(costs) != len(subsets) {
		return nil, &InputError{Err: errors.Errorf("there must be exactly one cost per subset, got %d costs and %d subsets", len(costs), len(subsets))}
	}
	ins := &Instance{
		n:       n,
		costs:   make([]float64, len(costs)),
		subsets: make([][]int, len(subsets)),
	}
	for j, cost := range costs {
		if math.IsNaN(cost) || math.IsInf(cost, 0) || cost < 0 {
			return nil, &InputError{Field: "Costs", Err: errors.Errorf("cost %v of subset %d is not a finite non-negative number", cost, j)}
		}
		ins.costs[j] = cost
	}
	for j, subset := range subsets {
		elems := make([]int, len(subset))
		copy(elems, subset)
		sort.Ints(elems)
		k := 0
		for _, e := range elems {
			if e < 0 || e >= n {
				return nil, &InputError{Field: "Subsets", Err: errors.Errorf("subset %d contains element %d which is not in [0, %d)", j, e, n)}
			}
			if k > 0 && elems[k-1] == e {
				continue
			}
			elems[k] = e
			k++
		}
		ins.subsets[j] = elems[:k]
	}
	return ins, nil
}

// N returns the number of elements to cover.
func (ins *Instance) N() int { return ins.n }

// M returns the number of subsets.
func (ins *Instance) M() int { return len(ins.subsets) }

// Cost returns the cost of subset j.
func (ins *Instance) Cost(j int) float64 { return ins.costs[j] }

// Subset returns the elements of subset j, in ascending order.
// The returned slice must not be modified.
func (ins *Instance) Subset(j int) []int { return ins.subsets[j] }

// Costs returns a copy of the costs of all subsets.
func (ins *Instance) Costs() []float64 {
	res := make([]float64, len(ins.costs))
	copy(res, ins.costs)
	return res
}

// Subsets returns a copy of all subsets.
func (ins *Instance) Subsets() [][]int {
	res := make([][]int, len(ins.subsets))
	for j, subset := range ins.subsets {
		res[j] = make([]int, len(subset))
		copy(res[j], subset)
	}
	return res
}

func (ins *Instance) String() string {
	return fmt.Sprintf("N=%d, M=%d", ins.n, len(ins.subsets))
}
