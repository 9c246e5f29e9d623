package setcover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crillab/exactcover/setcover"
)

func TestVerify(t *testing.T) {
	ins := mustInstance(t, 3, []float64{1, 5, 1, 1}, [][]int{{0, 1, 2}, {0}, {1}, {2}})
	tests := []struct {
		name  string
		res   setcover.Result
		valid bool
	}{
		{"optimal", setcover.Result{Status: setcover.Optimal, Cost: 1, Solution: []int{0}}, true},
		{"other partition", setcover.Result{Status: setcover.Optimal, Cost: 7, Solution: []int{1, 2, 3}}, true},
		{"rounding noise", setcover.Result{Status: setcover.Optimal, Cost: 1.0000000001, Solution: []int{0}}, true},
		{"infeasible", setcover.Result{Status: setcover.Infeasible}, true},
		{"unhandled", setcover.Result{Status: setcover.Unhandled}, true},
		{"wrong cost", setcover.Result{Status: setcover.Optimal, Cost: 2, Solution: []int{0}}, false},
		{"uncovered", setcover.Result{Status: setcover.Optimal, Cost: 2, Solution: []int{1, 2}}, false},
		{"covered twice", setcover.Result{Status: setcover.Optimal, Cost: 6, Solution: []int{0, 1}}, false},
		{"chosen twice", setcover.Result{Status: setcover.Optimal, Cost: 2, Solution: []int{0, 0}}, false},
		{"unknown subset", setcover.Result{Status: setcover.Optimal, Cost: 1, Solution: []int{4}}, false},
		{"negative subset", setcover.Result{Status: setcover.Optimal, Cost: 1, Solution: []int{-1}}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := setcover.Verify(ins, test.res)
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
