package enrich

import "sort"

type rankedPValue struct {
	pvalue float64
	index  int
}

// BenjaminiHochberg converts p-values into q-values with the step-up FDR
// procedure. The result is index-aligned with pvalues.
//
// Values are not clipped at 1: the scan starts at the largest p-value, whose
// adjustment is p*n/n, and every later value is floored by the one before it.
func BenjaminiHochberg(pvalues []float64) []float64 {
	n := len(pvalues)
	qvalues := make([]float64, n)
	if n == 0 {
		return qvalues
	}

	ranked := make([]rankedPValue, n)
	for i, p := range pvalues {
		ranked[i] = rankedPValue{pvalue: p, index: i}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].pvalue != ranked[j].pvalue {
			return ranked[i].pvalue < ranked[j].pvalue
		}
		return ranked[i].index < ranked[j].index
	})

	// Walk from rank n (largest p) down to rank 1.
	prev := 0.0
	for rank := n; rank >= 1; rank-- {
		r := ranked[rank-1]
		adjusted := r.pvalue * float64(n) / float64(rank)
		if rank < n && prev < adjusted {
			adjusted = prev
		}
		qvalues[r.index] = adjusted
		prev = adjusted
	}
	return qvalues
}
