package enrich

import "sort"

// Enrichment is the outcome of testing one gene set.
type Enrichment struct {
	GeneSetID string
	Table     Table
	TestResult
	QValue float64
}

// FilterAndRank keeps the enrichments strictly below both thresholds and
// orders them by q-value, then p-value, then gene set id.
func FilterAndRank(results []Enrichment, controls Controls) []Enrichment {
	kept := make([]Enrichment, 0, len(results))
	for _, r := range results {
		if r.PValue < controls.MaxPValue && r.QValue < controls.MaxQValue {
			kept = append(kept, r)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.QValue != b.QValue {
			return a.QValue < b.QValue
		}
		if a.PValue != b.PValue {
			return a.PValue < b.PValue
		}
		return a.GeneSetID < b.GeneSetID
	})
	return kept
}
