package cover

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ins, err := New(3, []float64{1, 5, 1, 1}, [][]int{{2, 0, 1}, {0}, {1}, {2}})
	require.NoError(t, err)
	assert.Equal(t, 3, ins.N())
	assert.Equal(t, 4, ins.M())
	assert.Equal(t, []int{0, 1, 2}, ins.Subset(0))
	assert.Equal(t, 5.0, ins.Cost(1))
}

func TestNewCopiesInput(t *testing.T) {
	costs := []float64{1, 2}
	subsets := [][]int{{0}, {1}}
	ins, err := New(2, costs, subsets)
	require.NoError(t, err)
	costs[0] = 42
	subsets[1][0] = 0
	assert.Equal(t, 1.0, ins.Cost(0))
	assert.Equal(t, []int{1}, ins.Subset(1))

	got := ins.Subsets()
	got[0][0] = 1
	assert.Equal(t, []int{0}, ins.Subset(0))
}

func TestNewDropsDuplicates(t *testing.T) {
	ins, err := New(3, []float64{1}, [][]int{{2, 0, 2, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, ins.Subset(0))
}

func TestNewEmpty(t *testing.T) {
	ins, err := New(0, []float64{}, [][]int{})
	require.NoError(t, err)
	assert.Equal(t, 0, ins.N())
	assert.Equal(t, 0, ins.M())

	ins, err = New(2, []float64{0}, [][]int{{}})
	require.NoError(t, err)
	assert.Empty(t, ins.Subset(0))
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		costs   []float64
		subsets [][]int
		field   string
	}{
		{"negative N", -1, nil, nil, "N"},
		{"length mismatch", 2, []float64{1, 2}, [][]int{{0}}, ""},
		{"element too big", 2, []float64{1}, [][]int{{0, 2}}, "Subsets"},
		{"negative element", 2, []float64{1}, [][]int{{-1}}, "Subsets"},
		{"negative cost", 2, []float64{-1}, [][]int{{0}}, "Costs"},
		{"NaN cost", 2, []float64{math.NaN()}, [][]int{{0}}, "Costs"},
		{"infinite cost", 2, []float64{math.Inf(1)}, [][]int{{0}}, "Costs"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.n, test.costs, test.subsets)
			require.Error(t, err)
			require.True(t, IsInputError(err), "expected an InputError, got %v", err)
			inputErr := err.(*InputError)
			assert.Equal(t, test.field, inputErr.Field)
		})
	}
}
