package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sozercan/promptlens/apimodels"
	"github.com/sozercan/promptlens/internal/analyzer"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req apimodels.AnalysisRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, apimodels.ErrorResponse{
			Error:    fmt.Sprintf("Invalid request: %v", err),
			Kind:     "invalid_request",
			Severity: analyzer.SeverityError,
		})
		return
	}

	ctx := r.Context()
	if s.providerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.providerTimeout)
		defer cancel()
	}

	result, err := s.analyzer.Analyze(ctx, req)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}

	slog.Debug("Analysis request completed successfully", "requestId", result.Metadata.RequestID)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	var req apimodels.InspectRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, apimodels.ErrorResponse{
			Error:    fmt.Sprintf("Invalid request: %v", err),
			Kind:     "invalid_request",
			Severity: analyzer.SeverityError,
		})
		return
	}

	result, err := s.analyzer.Inspect(req)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.analyzer.Models())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// writeAnalysisError maps orchestrator errors onto status codes: validation
// failures are the caller's fault, provider failures are upstream ones.
func writeAnalysisError(w http.ResponseWriter, err error) {
	var verr *analyzer.ValidationError
	var perr *analyzer.ProviderError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, apimodels.ErrorResponse{
			Error:    verr.Error(),
			Kind:     string(verr.Kind),
			Severity: verr.Severity,
		})
	case errors.As(err, &perr):
		writeJSON(w, http.StatusBadGateway, apimodels.ErrorResponse{
			Error:    perr.Error(),
			Kind:     "provider",
			Severity: analyzer.SeverityError,
		})
	default:
		slog.Error("Analysis request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, apimodels.ErrorResponse{
			Error:    err.Error(),
			Kind:     "internal",
			Severity: analyzer.SeverityError,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
