package enrich

import (
	"fmt"
	"strconv"

	"github.com/yumyai/genesetexpander/pkg/model"
)

// AttributeKind enumerates the provenance attributes an expanded gene carries.
type AttributeKind int

const (
	AttrGeneSet AttributeKind = iota
	AttrPValue
	AttrQValue
	AttrOddsRatio
)

var attributeKinds = []AttributeKind{AttrGeneSet, AttrPValue, AttrQValue, AttrOddsRatio}

func (k AttributeKind) String() string {
	switch k {
	case AttrGeneSet:
		return "gene set"
	case AttrPValue:
		return "p-value"
	case AttrQValue:
		return "q-value"
	case AttrOddsRatio:
		return "odds ratio"
	default:
		return "unknown"
	}
}

// Provenance records why a gene was appended.
type Provenance struct {
	GeneSetID string
	URL       string
	PValue    float64
	QValue    float64
	OddsRatio float64
}

func newProvenance(e Enrichment, cardURL string) Provenance {
	p := Provenance{
		GeneSetID: e.GeneSetID,
		PValue:    e.PValue,
		QValue:    e.QValue,
		OddsRatio: e.OddsRatio,
	}
	if cardURL != "" {
		p.URL = fmt.Sprintf(cardURL, e.GeneSetID)
	}
	return p
}

func (p Provenance) attribute(kind AttributeKind, source string) model.Attribute {
	attr := model.Attribute{Name: kind.String(), Source: source}
	switch kind {
	case AttrGeneSet:
		attr.Value = p.GeneSetID
		attr.URL = p.URL
	case AttrPValue:
		attr.Value = formatFloat(p.PValue)
	case AttrQValue:
		attr.Value = formatFloat(p.QValue)
	case AttrOddsRatio:
		attr.Value = formatFloat(p.OddsRatio)
	}
	return attr
}

// Attributes lists every provenance attribute, tagged with source.
func (p Provenance) Attributes(source string) []model.Attribute {
	attrs := make([]model.Attribute, 0, len(attributeKinds))
	for _, kind := range attributeKinds {
		attrs = append(attrs, p.attribute(kind, source))
	}
	return attrs
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ExpandGenes appends the members of every ranked set to genes, in rank
// order. A member is skipped when seen holds it either bare or namespaced;
// seen is updated with both forms of every id added.
// The first (best ranked) set a gene is found in gives its provenance.
func ExpandGenes(genes []*model.Gene, seen map[string]struct{}, ranked []Enrichment, sets *model.Collection, cfg Config) []*model.Gene {
	for _, e := range ranked {
		set, ok := sets.Get(e.GeneSetID)
		if !ok {
			continue
		}
		prov := newProvenance(e, cfg.CardURL)

		for _, id := range set.Members {
			entrez := EntrezID(id)
			if _, dup := seen[id]; dup {
				continue
			}
			if _, dup := seen[entrez]; dup {
				continue
			}
			genes = append(genes, &model.Gene{
				GeneID:      entrez,
				Identifiers: &model.GeneIdentifiers{Entrez: entrez},
				Attributes:  prov.Attributes(cfg.Name),
			})
			seen[id] = struct{}{}
			seen[entrez] = struct{}{}
		}
	}
	return genes
}
