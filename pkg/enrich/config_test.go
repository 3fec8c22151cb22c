package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yumyai/genesetexpander/pkg/model"
)

func TestParseControlsDefaults(t *testing.T) {
	got := DefaultConfig().ParseControls(nil)
	assert.Equal(t, Controls{MaxPValue: 1e-5, MaxQValue: 0.05}, got)
}

func TestParseControls(t *testing.T) {
	got := DefaultConfig().ParseControls([]model.Control{
		{Name: "max p-value", Value: "0.001"},
		{Name: "max q-value", Value: "not a number"},
		{Name: "max genes", Value: "10"},
	})

	assert.Equal(t, 0.001, got.MaxPValue)
	assert.Equal(t, 0.05, got.MaxQValue)
}

func TestWithInfoRenamesControls(t *testing.T) {
	cfg := WithInfo(model.TransformerInfo{
		Name: "Custom expander",
		Parameters: []model.Parameter{
			{Name: "p-value cutoff", Type: "double", Default: "1e-5"},
			{Name: "FDR cutoff", Type: "double", Default: "0.05"},
		},
	})

	assert.Equal(t, "Custom expander", cfg.Name)
	assert.Equal(t, "Custom expander", cfg.Info.Name)

	got := cfg.ParseControls([]model.Control{
		{Name: "p-value cutoff", Value: "0.5"},
		{Name: "FDR cutoff", Value: "0.25"},
		{Name: "max p-value", Value: "0.9"},
	})
	assert.Equal(t, Controls{MaxPValue: 0.5, MaxQValue: 0.25}, got)
}

func TestDefaultInfo(t *testing.T) {
	info := DefaultConfig().Info

	assert.Equal(t, DefaultName, info.Name)
	assert.Equal(t, "expander", info.Function)
	assert.Equal(t, "enrichment", info.Operation)
	assert.Equal(t, "HyperGeomEnrich", info.UILabel)
	assert.Equal(t, []string{"identifiers.entrez", "gene_symbol"}, info.RequiredAttributes)

	require.Len(t, info.Parameters, 2)
	assert.Equal(t, model.Parameter{Name: "max p-value", Type: "double", Default: "1e-05"}, info.Parameters[0])
	assert.Equal(t, model.Parameter{Name: "max q-value", Type: "double", Default: "0.05"}, info.Parameters[1])
}

func TestCanonicalID(t *testing.T) {
	tests := []struct {
		name string
		gene *model.Gene
		want string
	}{
		{"prefixed entrez", &model.Gene{GeneID: "HGNC:11998", Identifiers: &model.GeneIdentifiers{Entrez: "NCBIGene:7157"}}, "7157"},
		{"bare entrez", &model.Gene{GeneID: "x", Identifiers: &model.GeneIdentifiers{Entrez: "7157"}}, "7157"},
		{"no identifiers", &model.Gene{GeneID: "7157"}, "7157"},
		{"empty entrez", &model.Gene{GeneID: "TP53", Identifiers: &model.GeneIdentifiers{HGNC: "HGNC:11998"}}, "TP53"},
		{"nil gene", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalID(tt.gene))
		})
	}
}
