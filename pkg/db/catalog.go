package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yumyai/genesetexpander/pkg/model"
)

// CatalogSchema creates the tables SQLCatalog reads from.
const CatalogSchema = `
	CREATE TABLE IF NOT EXISTS gene_sets (
		gene_set_id TEXT PRIMARY KEY,
		label       TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS gene_set_members (
		gene_set_id TEXT NOT NULL REFERENCES gene_sets(gene_set_id),
		position    INTEGER NOT NULL,
		gene_id     TEXT NOT NULL
	);
`

// SQLCatalog reads gene sets out of a SQL database (sqlite).
type SQLCatalog struct {
	DB *sql.DB
}

func (cat SQLCatalog) LoadInto(ctx context.Context, c *model.Collection) error {

	// Sets without members are dropped, like short lines of a GMT file.
	const qstring = `
		SELECT gs.gene_set_id, gs.label, gm.gene_id
		FROM gene_sets gs
		JOIN gene_set_members gm ON gm.gene_set_id = gs.gene_set_id
		ORDER BY gs.rowid, gm.position;
	`

	stm, err := cat.DB.PrepareContext(ctx, qstring)
	if err != nil {
		return fmt.Errorf("prepare gene set query: %w", err)
	}
	defer stm.Close()

	rows, err := stm.QueryContext(ctx)
	if err != nil {
		return fmt.Errorf("query gene sets: %w", err)
	}
	defer rows.Close()

	var current *model.GeneSet
	for rows.Next() {
		var setID, label, geneID string
		if err := rows.Scan(&setID, &label, &geneID); err != nil {
			return fmt.Errorf("scan gene set row: %w", err)
		}

		if current == nil || current.ID != setID {
			if current != nil {
				c.Add(current)
			}
			current = &model.GeneSet{ID: setID, Label: label, Members: make([]string, 0, 32)}
		}
		current.Members = append(current.Members, geneID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate gene sets: %w", err)
	}

	if current != nil {
		c.Add(current)
	}
	return nil
}

// InsertGeneSet writes one gene set into a catalog created with CatalogSchema.
func InsertGeneSet(ctx context.Context, sqldb *sql.DB, set *model.GeneSet) error {
	tx, err := sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO gene_sets (gene_set_id, label) VALUES (?, ?)`, set.ID, set.Label); err != nil {
		tx.Rollback()
		return fmt.Errorf("insert gene set %s: %w", set.ID, err)
	}
	for i, id := range set.Members {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO gene_set_members (gene_set_id, position, gene_id) VALUES (?, ?, ?)`, set.ID, i, id); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert member of %s: %w", set.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
