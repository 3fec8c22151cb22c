package enrich

import (
	"fmt"

	"github.com/yumyai/genesetexpander/pkg/model"
)

// Table is a 2x2 contingency table of a gene list against one gene set.
//
//	            in set   not in set
//	in list       A          C
//	not in list   B          D
type Table struct {
	A int // in list, in set
	B int // not in list, in set
	C int // in list, not in set
	D int // not in list, not in set
}

func (t Table) Sum() int {
	return t.A + t.B + t.C + t.D
}

func (t Table) String() string {
	return fmt.Sprintf("[[%d %d] [%d %d]]", t.A, t.B, t.C, t.D)
}

func (t Table) valid() bool {
	return t.A >= 0 && t.B >= 0 && t.C >= 0 && t.D >= 0
}

// BuildTable counts the overlap of set with list and derives the other cells
// from the set size, the list size and the universe size. It reports false
// when nothing overlaps; such sets are never tested.
func BuildTable(list map[string]struct{}, set *model.GeneSet, universeSize int) (Table, bool) {
	overlap := 0
	for _, id := range set.Members {
		if _, ok := list[id]; ok {
			overlap++
		}
	}
	if overlap == 0 {
		return Table{}, false
	}

	t := Table{
		A: overlap,
		B: set.Size() - overlap,
		C: len(list) - overlap,
	}
	t.D = universeSize - t.A - t.B - t.C
	return t, true
}
