// Handler for miscellaneous endpoints such as health check

package handler

import (
	"net/http"
	"time"
)

type HealthResponse struct {
	Health    string    `json:"health"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

func (ectx *ExpanderContext) HealthCheck(w http.ResponseWriter, r *http.Request) {

	response := HealthResponse{
		Health:    "ok",
		Service:   ectx.Expander.Info().Name,
		Timestamp: time.Now(),
	}

	writeJSON(w, http.StatusOK, response)
}
