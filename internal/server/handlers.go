package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/types"
)

// errorBody is the JSON error envelope returned by all endpoints.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func errorResponse(w http.ResponseWriter, status int, code, message string) {
	jsonResponse(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req types.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, codeInvalidInput, "invalid JSON in request body")
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, codeInvalidInput, err.Error())
		return
	}

	result, err := s.engine.Compare(&req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req types.KeywordAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, codeInvalidInput, "invalid JSON in request body")
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, codeInvalidInput, err.Error())
		return
	}

	insight, err := s.engine.AnalyzeKeywords(&req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, insight)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, codeInvalidInput, "invalid JSON in request body")
		return
	}
	if err := req.Validate(); err != nil {
		errorResponse(w, http.StatusBadRequest, codeInvalidInput, err.Error())
		return
	}

	result, err := s.engine.FullAnalysis(r.Context(), req.ResumeText, req.JobText)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	jsonResponse(w, http.StatusOK, result)
}

// writeError maps pipeline errors to HTTP responses and logs server-side
// failures with the request context.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := httpStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.String("route", r.URL.Path),
			zap.Error(err))
	}
	errorResponse(w, status, code, err.Error())
}
