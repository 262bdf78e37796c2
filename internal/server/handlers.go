package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/NiteeshPutla/investment-analysis-deep-agent/apimodels"
)

func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req apimodels.ResearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}

	slog.Info("handling research request", "requestId", requestID, "query", req.Query)

	result, err := s.researcher.Research(r.Context(), req)
	if err != nil {
		slog.Error("research request failed", "requestId", requestID, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	result.Metadata.RequestID = requestID

	slog.Info("research request completed", "requestId", requestID, "steps", result.Metadata.Steps)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
