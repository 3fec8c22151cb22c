package enrich

import (
	"strings"

	"github.com/yumyai/genesetexpander/pkg/model"
)

const EntrezPrefix = "NCBIGene:"

// CanonicalID is the id a gene is matched under against gene-set members:
// the Entrez cross-reference without its namespace, or the gene id itself.
func CanonicalID(gene *model.Gene) string {
	if gene == nil {
		return ""
	}
	if gene.Identifiers != nil && gene.Identifiers.Entrez != "" {
		return strings.TrimPrefix(gene.Identifiers.Entrez, EntrezPrefix)
	}
	return gene.GeneID
}

// EntrezID namespaces a bare gene-set member id.
func EntrezID(id string) string {
	return EntrezPrefix + id
}

func canonicalSet(genes []*model.Gene) map[string]struct{} {
	set := make(map[string]struct{}, len(genes))
	for _, g := range genes {
		if g == nil {
			continue
		}
		set[CanonicalID(g)] = struct{}{}
	}
	return set
}

// knownIDs holds every id under which an input gene may already be present:
// its canonical id and its gene id as sent.
func knownIDs(genes []*model.Gene) map[string]struct{} {
	ids := canonicalSet(genes)
	for _, g := range genes {
		if g == nil || g.GeneID == "" {
			continue
		}
		ids[g.GeneID] = struct{}{}
	}
	return ids
}
