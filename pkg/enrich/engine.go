package enrich

import (
	"context"
	"fmt"
	"time"

	"github.com/yumyai/genesetexpander/logger"
	"github.com/yumyai/genesetexpander/pkg/metrics"
	"github.com/yumyai/genesetexpander/pkg/model"
	"go.uber.org/zap"
)

// Result is the expanded gene list plus counts describing the run.
type Result struct {
	Genes    []*model.Gene
	Tested   int
	Enriched []Enrichment
	Added    int
}

// Engine is a pure function of a query, a gene-set collection and its config.
// It holds no state between calls.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Expand tests every gene set in sets against the query genes and returns the
// input genes followed by the members of each enriched set.
func (e *Engine) Expand(query model.Query, sets *model.Collection) (*Result, error) {
	controls := e.cfg.ParseControls(query.Controls)
	list := canonicalSet(query.Genes)
	universe := sets.UniverseSize()

	tested := make([]Enrichment, 0, len(sets.Sets))
	for _, set := range sets.Sets {
		table, ok := BuildTable(list, set, universe)
		if !ok {
			continue
		}
		res, err := FisherTest(table)
		if err != nil {
			return nil, fmt.Errorf("gene set %s: %w", set.ID, err)
		}
		tested = append(tested, Enrichment{GeneSetID: set.ID, Table: table, TestResult: res})
	}

	pvalues := make([]float64, len(tested))
	for i, t := range tested {
		pvalues[i] = t.PValue
	}
	for i, q := range BenjaminiHochberg(pvalues) {
		tested[i].QValue = q
	}

	ranked := FilterAndRank(tested, controls)

	genes := make([]*model.Gene, len(query.Genes), len(query.Genes)+64)
	copy(genes, query.Genes)
	genes = ExpandGenes(genes, knownIDs(query.Genes), ranked, sets, e.cfg)

	logger.Debug("Expansion done",
		zap.Int("input_genes", len(query.Genes)),
		zap.Int("universe", universe),
		zap.Int("tested_sets", len(tested)),
		zap.Int("enriched_sets", len(ranked)),
		zap.Float64("max_p_value", controls.MaxPValue),
		zap.Float64("max_q_value", controls.MaxQValue),
	)

	return &Result{
		Genes:    genes,
		Tested:   len(tested),
		Enriched: ranked,
		Added:    len(genes) - len(query.Genes),
	}, nil
}

// GeneSetLoader supplies the gene sets of one request.
type GeneSetLoader interface {
	Load(ctx context.Context) (*model.Collection, error)
}

// Expander reloads the gene sets on every call and runs the engine over them.
type Expander struct {
	engine *Engine
	source GeneSetLoader
}

func NewExpander(engine *Engine, source GeneSetLoader) *Expander {
	return &Expander{engine: engine, source: source}
}

func (x *Expander) Info() model.TransformerInfo {
	return x.engine.cfg.Info
}

func (x *Expander) Expand(ctx context.Context, query model.Query) (res *Result, err error) {
	start := time.Now()
	defer func() {
		tested, enriched := 0, 0
		if res != nil {
			tested, enriched = res.Tested, len(res.Enriched)
		}
		metrics.RecordExpansion(err, tested, enriched, time.Since(start))
	}()

	sets, err := x.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load gene sets: %w", err)
	}

	res, err = x.engine.Expand(query, sets)
	if err != nil {
		return nil, err
	}
	return res, nil
}
