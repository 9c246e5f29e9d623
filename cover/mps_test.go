package cover

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallMPS = `* set partitioning example
NAME          SMALL
ROWS
 N  COST
 E  R0
 E  R1
 E  R2
COLUMNS
    MARKER                 'MARKER'                 'INTORG'
    X0        COST      1.0        R0        1.0
    X0        R1        1.0        R2        1.0
    X1        COST      5.0        R0        1.0
    X2        R1        1.0        COST      1.0
    X3        COST      1.0        R2        1.0
    MARKER                 'MARKER'                 'INTEND'
RHS
    RHS       R0        1.0        R1        1.0
    RHS       R2        1.0
BOUNDS
 UP BND       X0        1.0
 BV BND       X1
ENDATA
`

func TestReadMPS(t *testing.T) {
	ins, err := ReadMPS(strings.NewReader(smallMPS))
	require.NoError(t, err)
	assert.Equal(t, 3, ins.N())
	assert.Equal(t, []float64{1, 5, 1, 1}, ins.Costs())
	assert.Equal(t, [][]int{{0, 1, 2}, {0}, {1}, {2}}, ins.Subsets())
}

func TestReadMPSInvalid(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
	}{
		{"inequality row", " E  R2", " L  R2"},
		{"coefficient", "X3        COST      1.0        R2        1.0", "X3        COST      1.0        R2        2.0"},
		{"unknown row", "X2        R1        1.0", "X2        R9        1.0"},
		{"missing rhs", "    RHS       R2        1.0\n", ""},
		{"rhs value", "RHS       R2        1.0", "RHS       R2        3.0"},
		{"bound", " UP BND       X0        1.0", " UP BND       X0        2.0"},
		{"section", "BOUNDS", "RANGES"},
		{"no objective", " N  COST\n", ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mps := strings.Replace(smallMPS, test.old, test.new, 1)
			require.NotEqual(t, smallMPS, mps, "test case did not modify the input")
			_, err := ReadMPS(strings.NewReader(mps))
			require.Error(t, err)
			assert.True(t, IsInputError(err))
		})
	}
}
