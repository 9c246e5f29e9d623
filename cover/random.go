package cover

import (
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Random generates an instance with m distinct, non-empty subsets of n elements.
// Costs lie in [costScale, 10*costScale) and tend to be lower for small subsets.
// The same arguments always generate the same instance.
// An error is returned if there are not m distinct non-empty subsets of n elements.
func Random(m, n int, costScale float64, seed int64) (*Instance, error) {
	if m < 0 || n < 0 {
		return nil, errors.Errorf("invalid size %dx%d", m, n)
	}
	if m > 0 && n < 62 && m > 1<<uint(n)-1 {
		return nil, errors.Errorf("cannot build %d distinct non-empty subsets of %d elements", m, n)
	}
	if costScale <= 0 {
		return nil, errors.Errorf("cost scale must be positive, got %v", costScale)
	}
	gen := rand.New(rand.NewSource(seed))
	universe := make([]int, n)
	for i := range universe {
		universe[i] = i
	}
	seen := make(map[string]bool, m)
	costs := make([]float64, 0, m)
	subsets := make([][]int, 0, m)
	for len(subsets) < m {
		gen.Shuffle(n, func(i, j int) { universe[i], universe[j] = universe[j], universe[i] })
		k := gen.Intn(n) + 1
		subset := make([]int, k)
		copy(subset, universe[:k])
		sort.Ints(subset)
		key := subsetKey(subset)
		if seen[key] {
			continue
		}
		seen[key] = true
		subsets = append(subsets, subset)
		x := math.Pow(gen.Float64(), math.Log(float64(k)))
		costs = append(costs, costScale*10*(1-0.9*x))
	}
	return New(n, costs, subsets)
}

func subsetKey(subset []int) string {
	var sb strings.Builder
	for _, e := range subset {
		sb.WriteString(strconv.Itoa(e))
		sb.WriteByte(',')
	}
	return sb.String()
}
