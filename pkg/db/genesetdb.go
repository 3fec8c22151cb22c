package db

import (
	"context"

	"github.com/yumyai/genesetexpander/pkg/model"
)

// Source adds its gene sets to a collection.
type Source interface {
	LoadInto(ctx context.Context, c *model.Collection) error
}

// GeneSetDB is every configured gene-set source. Nothing is cached: each Load
// reads all sources again.
type GeneSetDB struct {
	sources []Source
}

func NewGeneSetDB(sources ...Source) *GeneSetDB {
	return &GeneSetDB{
		sources: sources,
	}
}

func (gsdb *GeneSetDB) Load(ctx context.Context) (*model.Collection, error) {
	c := model.NewCollection()
	for _, src := range gsdb.sources {
		if err := src.LoadInto(ctx, c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
