// Settings of the expander process, read from the environment (.env aware).

package config

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yumyai/genesetexpander/internal/util"
	"github.com/yumyai/genesetexpander/logger"
	"github.com/yumyai/genesetexpander/pkg/enrich"
	"github.com/yumyai/genesetexpander/pkg/model"
	"go.uber.org/zap"
)

const (
	defaultDataDir  = "./data"
	defaultAddr     = "0.0.0.0:8080"
	defaultLogLevel = "info"
)

// Available at http://software.broadinstitute.org/gsea/downloads.jsp
var defaultGMTFiles = []string{
	"dat/c2.all.current.0.entrez.gmt",
	"dat/c5.all.current.0.entrez.gmt",
}

type Settings struct {
	DataDir    string
	GMTFiles   []string
	SQLitePath string
	Addr       string
	LogLevel   string
	InfoFile   string
	CardURL    string
}

// LoadEnv loads .env when present. It reports whether a file was found.
func LoadEnv(files ...string) bool {
	return godotenv.Load(files...) == nil
}

// FromEnv builds settings from EXPANDER_* variables, with defaults.
// Relative gene-set and catalog paths are resolved against the data dir.
func FromEnv() Settings {
	s := Settings{
		DataDir:    getenv("EXPANDER_DATA", defaultDataDir),
		SQLitePath: os.Getenv("EXPANDER_SQLITE"),
		Addr:       getenv("EXPANDER_ADDR", defaultAddr),
		LogLevel:   getenv("EXPANDER_LOG_LEVEL", defaultLogLevel),
		InfoFile:   os.Getenv("EXPANDER_INFO"),
		CardURL:    getenv("EXPANDER_CARD_URL", enrich.DefaultCardURL),
	}

	files := defaultGMTFiles
	if raw := os.Getenv("EXPANDER_GMT_FILES"); raw != "" {
		files = splitList(raw)
	}
	for _, f := range files {
		s.GMTFiles = append(s.GMTFiles, s.resolve(f))
	}
	if s.SQLitePath != "" {
		s.SQLitePath = s.resolve(s.SQLitePath)
	}
	return s
}

func (s Settings) resolve(p string) string {
	if path.IsAbs(p) {
		return p
	}
	return path.Join(s.DataDir, p)
}

// Validate warns about paths that do not exist yet. Gene-set files are read
// per request, so a missing file only fails the requests.
func (s Settings) Validate() {
	if !util.DirExists(s.DataDir) {
		logger.Warn("Data directory does not exist", zap.String("dir", s.DataDir))
	}
	for _, f := range s.GMTFiles {
		if !util.FileExists(f) {
			logger.Warn("Gene set file does not exist", zap.String("file", f))
		}
	}
	if s.SQLitePath != "" && !util.FileExists(s.SQLitePath) {
		logger.Warn("Gene set catalog does not exist", zap.String("file", s.SQLitePath))
	}
}

// EngineConfig returns the engine config, overridden by the info file when
// one is set.
func (s Settings) EngineConfig() (enrich.Config, error) {
	cfg := enrich.DefaultConfig()
	if s.InfoFile != "" {
		info, err := LoadInfo(s.InfoFile)
		if err != nil {
			return enrich.Config{}, err
		}
		cfg = enrich.WithInfo(info)
	}
	cfg.CardURL = s.CardURL
	return cfg, nil
}

// LoadInfo reads a transformer info record from a YAML (or JSON) file.
func LoadInfo(file string) (model.TransformerInfo, error) {
	var info model.TransformerInfo

	raw, err := os.ReadFile(file)
	if err != nil {
		return info, fmt.Errorf("read info file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &info); err != nil {
		return info, fmt.Errorf("parse info file %s: %w", file, err)
	}
	return info, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	logger.Debug("Environment variable not set, using default", zap.String("key", key), zap.String("default", fallback))
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
