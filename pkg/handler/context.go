package handler

// DI for all handlers.

import (
	"context"

	"github.com/yumyai/genesetexpander/pkg/enrich"
	"github.com/yumyai/genesetexpander/pkg/model"
)

// Expander is what the handlers need from the enrichment service.
type Expander interface {
	Expand(ctx context.Context, query model.Query) (*enrich.Result, error)
	Info() model.TransformerInfo
}

type ExpanderContext struct {
	Expander Expander
}
