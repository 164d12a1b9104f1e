package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/normalize"
)

// Error codes returned in the JSON error envelope.
const (
	codeInvalidInput      = "invalid_input"
	codeOracleUnavailable = "oracle_unavailable"
	codeRateLimited       = "rate_limited"
	codeInternal          = "internal_error"
)

// httpStatus maps a pipeline error to an HTTP status code and envelope code.
func httpStatus(err error) (int, string) {
	var invalidErr *normalize.InvalidInputError
	if errors.As(err, &invalidErr) {
		return http.StatusBadRequest, codeInvalidInput
	}

	var oracleErr *llm.OracleError
	if errors.As(err, &oracleErr) {
		return http.StatusBadGateway, codeOracleUnavailable
	}

	return http.StatusInternalServerError, codeInternal
}
