package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yumyai/genesetexpander/logger"
	"github.com/yumyai/genesetexpander/pkg/middle"
	"github.com/yumyai/genesetexpander/pkg/model"
	"go.uber.org/zap"
)

const maxQueryBytes = 8 << 20

type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Status: "error", Error: msg})
}

// TransformHandler expands the posted gene list. Any failure fails the whole
// request; no partial list is returned.
func (ectx *ExpanderContext) TransformHandler(w http.ResponseWriter, r *http.Request) {

	var query model.Query
	log := middle.Logger(r.Context(), logger.L())

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxQueryBytes))
	if err := dec.Decode(&query); err != nil {
		log.Warn("Invalid query body", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	for i, g := range query.Genes {
		if g == nil {
			log.Warn("Null gene in query", zap.Int("index", i))
			writeError(w, http.StatusBadRequest, "Genes must not contain null entries")
			return
		}
	}

	res, err := ectx.Expander.Expand(r.Context(), query)
	if err != nil {
		log.Error("Expansion failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info("Expanded gene list",
		zap.Int("input", len(query.Genes)),
		zap.Int("tested_sets", res.Tested),
		zap.Int("enriched_sets", len(res.Enriched)),
		zap.Int("added", res.Added),
	)

	genes := res.Genes
	if genes == nil {
		genes = []*model.Gene{}
	}
	writeJSON(w, http.StatusOK, genes)
}

func (ectx *ExpanderContext) TransformerInfoHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ectx.Expander.Info())
}
