package setcover

import (
	"math"

	"github.com/pkg/errors"

	"github.com/crillab/exactcover/cover"
)

// costTolerance is the relative error accepted between a reported cost and the actual cost of a solution.
const costTolerance = 1e-6

// Verify checks that res is consistent with ins.
// For an Optimal result, the solution must be an exact cover of the elements of ins
// and its cost must be the sum of the costs of the chosen subsets.
// Other results cannot be checked and are considered valid.
func Verify(ins *cover.Instance, res Result) error {
	if res.Status != Optimal {
		return nil
	}
	chosen := make([]bool, ins.M())
	coveredBy := make([]int, ins.N())
	for i := range coveredBy {
		coveredBy[i] = -1
	}
	sum := 0.0
	for _, j := range res.Solution {
		if j < 0 || j >= ins.M() {
			return errors.Errorf("solution contains unknown subset %d", j)
		}
		if chosen[j] {
			return errors.Errorf("subset %d chosen twice", j)
		}
		chosen[j] = true
		sum += ins.Cost(j)
		for _, elem := range ins.Subset(j) {
			if prev := coveredBy[elem]; prev != -1 {
				return errors.Errorf("element %d covered by both subsets %d and %d", elem, prev, j)
			}
			coveredBy[elem] = j
		}
	}
	for elem, j := range coveredBy {
		if j == -1 {
			return errors.Errorf("element %d is not covered", elem)
		}
	}
	if math.Abs(res.Cost-sum) > costTolerance*math.Max(1, math.Abs(sum)) {
		return errors.Errorf("reported cost %v, but chosen subsets cost %v", res.Cost, sum)
	}
	return nil
}
