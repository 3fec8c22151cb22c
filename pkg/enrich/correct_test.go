package enrich

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Same values as R: p.adjust(p, method = "BH")
var referencePValues = []float64{0.0, 0.01, 0.029, 0.03, 0.031, 0.05, 0.069, 0.07, 0.071, 0.09, 0.1}

func TestBenjaminiHochbergReference(t *testing.T) {
	want := []float64{
		0,
		0.055,
		0.0682, 0.0682, 0.0682,
		0.071 * 11 / 9, 0.071 * 11 / 9, 0.071 * 11 / 9, 0.071 * 11 / 9,
		0.099,
		0.1,
	}

	got := BenjaminiHochberg(referencePValues)
	require.Len(t, got, len(referencePValues))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "q-value at index %d", i)
	}

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1], got[i], "q-values must not decrease with p")
	}
	assert.LessOrEqual(t, got[0], got[len(got)-1])
}

func TestBenjaminiHochbergKeepsIndexes(t *testing.T) {
	order := []int{7, 2, 10, 0, 5, 9, 1, 4, 8, 3, 6}
	shuffled := make([]float64, len(order))
	for i, j := range order {
		shuffled[i] = referencePValues[j]
	}

	sortedQ := BenjaminiHochberg(referencePValues)
	got := BenjaminiHochberg(shuffled)
	for i, j := range order {
		assert.InDelta(t, sortedQ[j], got[i], 1e-12, "p-value %v", shuffled[i])
	}
}

func TestBenjaminiHochbergTies(t *testing.T) {
	got := BenjaminiHochberg([]float64{0.02, 0.02, 0.02})
	for _, q := range got {
		assert.InDelta(t, 0.02, q, 1e-15)
	}
}

func TestBenjaminiHochbergBounded(t *testing.T) {
	p := []float64{0.9, 0.8, 0.95, 1, 0.6}
	for _, q := range BenjaminiHochberg(p) {
		assert.LessOrEqual(t, q, 1.0)
	}

	q := BenjaminiHochberg([]float64{0.4})
	assert.Equal(t, []float64{0.4}, q)
}

func TestBenjaminiHochbergEmpty(t *testing.T) {
	assert.Empty(t, BenjaminiHochberg(nil))
}

func TestBenjaminiHochbergDoesNotMutateInput(t *testing.T) {
	p := []float64{0.3, 0.1, 0.2}
	BenjaminiHochberg(p)
	assert.False(t, sort.Float64sAreSorted(p))
	assert.Equal(t, []float64{0.3, 0.1, 0.2}, p)
}
