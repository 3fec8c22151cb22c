package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/yumyai/genesetexpander/logger"
	"github.com/yumyai/genesetexpander/pkg/config"
	"github.com/yumyai/genesetexpander/pkg/db"
	"github.com/yumyai/genesetexpander/pkg/enrich"
	"github.com/yumyai/genesetexpander/pkg/handler"
	"github.com/yumyai/genesetexpander/pkg/metrics"
	"github.com/yumyai/genesetexpander/pkg/middle"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

const VERSION = "1.2.0"

var rootCmd = &cobra.Command{
	Use:   "genesetexpander",
	Short: "Gene-list expander based on gene set enrichment",
	Long: `Expands a gene list with every member of the MSigDB gene sets that are
enriched for it (two-sided Fisher's exact test, Benjamini-Hochberg q-values).`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: setup,
}

var settings config.Settings

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.Version = VERSION
}

func main() {
	defer logger.Sync() // Make sure that the buffered is flushed.

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads .env, the environment and the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	// Try load env
	foundEnv := config.LoadEnv()

	settings = config.FromEnv()
	if err := logger.InitLogger(logger.ParseLevel(settings.LogLevel)); err != nil {
		return err
	}

	if !foundEnv {
		logger.Debug("No .env found, using local environment")
	}
	return nil
}

// newExpander wires the gene-set sources and the engine. The returned closer
// releases the catalog connection, if any.
func newExpander(s config.Settings) (*enrich.Expander, func(), error) {
	cfg, err := s.EngineConfig()
	if err != nil {
		return nil, nil, err
	}

	sources := make([]db.Source, 0, len(s.GMTFiles)+1)
	for _, f := range s.GMTFiles {
		sources = append(sources, db.GMTFile{Path: f})
	}

	closer := func() {}
	if s.SQLitePath != "" {
		sqldb, err := sql.Open("sqlite", s.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open catalog %s: %w", s.SQLitePath, err)
		}
		sources = append(sources, db.SQLCatalog{DB: sqldb})
		closer = func() { sqldb.Close() }
		logger.Info("Open gene set catalog on", zap.String("DB_LOC", s.SQLitePath))
	}

	engine := enrich.NewEngine(cfg)
	return enrich.NewExpander(engine, db.NewGeneSetDB(sources...)), closer, nil
}

func NewRouter(ectx *handler.ExpanderContext) http.Handler {
	mux := http.NewServeMux()

	// Error route
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	mux.HandleFunc("POST /transform", ectx.TransformHandler)
	mux.HandleFunc("GET /transformer_info", ectx.TransformerInfoHandler)

	mux.HandleFunc("GET /api/v1/health", ectx.HealthCheck)
	mux.Handle("GET /metrics", metrics.Handler())

	log := logger.L()
	return middle.Chain(mux,
		middle.RequestIDMiddleware(log),
		middle.LoggingMiddleware(log),
	)
}
