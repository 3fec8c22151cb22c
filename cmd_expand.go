package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yumyai/genesetexpander/logger"
	"github.com/yumyai/genesetexpander/pkg/model"
	"go.uber.org/zap"
)

var (
	queryFile string
	outFile   string
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Expand one query without starting the server",
	Long: `Reads a query ({"genes": [...], "controls": [...]}) from --query, or stdin
when it is "-", and writes the expanded gene list as JSON.`,
	RunE: runExpand,
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the transformer info record",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := settings.EngineConfig()
		if err != nil {
			return err
		}
		return writeJSONTo(cmd.OutOrStdout(), cfg.Info)
	},
}

func init() {
	expandCmd.Flags().StringVarP(&queryFile, "query", "q", "-", "query JSON file, - for stdin")
	expandCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
}

func runExpand(cmd *cobra.Command, _ []string) error {
	var in io.Reader = cmd.InOrStdin()
	if queryFile != "-" {
		fh, err := os.Open(queryFile)
		if err != nil {
			return fmt.Errorf("open query: %w", err)
		}
		defer fh.Close()
		in = fh
	}

	var query model.Query
	if err := json.NewDecoder(in).Decode(&query); err != nil {
		return fmt.Errorf("decode query: %w", err)
	}

	expander, closeCatalog, err := newExpander(settings)
	if err != nil {
		return err
	}
	defer closeCatalog()

	res, err := expander.Expand(cmd.Context(), query)
	if err != nil {
		return err
	}
	logger.Info("Expanded gene list",
		zap.Int("input", len(query.Genes)),
		zap.Int("tested_sets", res.Tested),
		zap.Int("enriched_sets", len(res.Enriched)),
		zap.Int("added", res.Added),
	)

	out := cmd.OutOrStdout()
	if outFile != "" {
		fh, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer fh.Close()
		out = fh
	}
	return writeJSONTo(out, res.Genes)
}

func writeJSONTo(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
