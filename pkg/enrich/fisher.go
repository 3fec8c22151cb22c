package enrich

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTable means a table had a negative cell or the exact test gave
// no usable p-value. It points at a defect in table construction.
var ErrInvalidTable = errors.New("invalid contingency table")

// Relative tolerance when comparing table probabilities against the observed
// one, as scipy.stats.fisher_exact does.
const fisherRelTol = 1e-7

type TestResult struct {
	PValue    float64
	OddsRatio float64
}

// FisherTest runs a two-sided Fisher's exact test on t.
func FisherTest(t Table) (TestResult, error) {
	if !t.valid() {
		return TestResult{}, fmt.Errorf("%w: %s", ErrInvalidTable, t)
	}

	p := fisherTwoSided(t)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return TestResult{}, fmt.Errorf("%w: no p-value for %s", ErrInvalidTable, t)
	}

	return TestResult{
		PValue:    math.Min(math.Max(p, 0), 1),
		OddsRatio: OddsRatio(t),
	}, nil
}

// fisherTwoSided sums the hypergeometric probabilities of every table with the
// same margins that is no more likely than t. Work is done in log space so
// universes of tens of thousands of genes do not overflow.
func fisherTwoSided(t Table) float64 {
	n := t.Sum()
	setSize := t.A + t.B
	listSize := t.A + t.C

	lo := max(0, setSize+listSize-n)
	hi := min(setSize, listSize)

	denom := lnChoose(n, setSize)
	logProb := func(x int) float64 {
		return lnChoose(listSize, x) + lnChoose(n-listSize, setSize-x) - denom
	}

	observed := logProb(t.A)
	cutoff := observed + math.Log1p(fisherRelTol)

	// Scaled by the observed probability so tiny terms do not all underflow.
	sum := 0.0
	for x := lo; x <= hi; x++ {
		if lp := logProb(x); lp <= cutoff {
			sum += math.Exp(lp - observed)
		}
	}
	return math.Exp(observed + math.Log(sum))
}

func lnChoose(n, k int) float64 {
	return lnFactorial(n) - lnFactorial(k) - lnFactorial(n-k)
}

func lnFactorial(n int) float64 {
	v, _ := math.Lgamma(float64(n) + 1)
	return v
}

// OddsRatio is A*D / (B*C), +Inf when either off-diagonal cell is zero.
func OddsRatio(t Table) float64 {
	if t.B == 0 || t.C == 0 {
		return math.Inf(1)
	}
	return float64(t.A) * float64(t.D) / (float64(t.B) * float64(t.C))
}
