package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Simplici0/sheetquote/internal/pricing"
	"github.com/Simplici0/sheetquote/internal/store"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string        `json:"error"`
	Message string        `json:"message"`
	Details []errorDetail `json:"details,omitempty"`
}

type errorDetail struct {
	Code    string   `json:"code"`
	Line    *int     `json:"line,omitempty"`
	Field   string   `json:"field,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Value   string   `json:"value,omitempty"`
	Message string   `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: http.StatusText(status), Message: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

// writeQuoteError maps engine errors to responses: validation failures are
// the client's, configuration failures are the server's.
func writeQuoteError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs pricing.ValidationErrors
	var ve *pricing.ValidationError
	var cfgErr *pricing.ConfigurationError

	switch {
	case errors.As(err, &verrs):
		writeValidationErrors(w, verrs)
	case errors.As(err, &ve):
		writeValidationErrors(w, pricing.ValidationErrors{ve})
	case errors.As(err, &cfgErr):
		slog.Error("pricing configuration error",
			"request_id", requestID(r),
			"table", cfgErr.Table,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "pricing configuration error")
	default:
		slog.Error("quote failed", "request_id", requestID(r), "error", err)
		writeError(w, http.StatusInternalServerError, "failed to price quote")
	}
}

func writeValidationErrors(w http.ResponseWriter, errs pricing.ValidationErrors) {
	details := make([]errorDetail, 0, len(errs))
	for _, e := range errs {
		d := errorDetail{
			Code:    e.CodeName(),
			Field:   e.Field,
			Min:     e.Min,
			Max:     e.Max,
			Value:   e.Value,
			Message: e.Message,
		}
		if e.Line >= 0 {
			line := e.Line
			d.Line = &line
		}
		details = append(details, d)
	}

	msg := "quote request is invalid"
	if len(errs) == 1 {
		msg = errs[0].Error()
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:   http.StatusText(http.StatusBadRequest),
		Message: msg,
		Details: details,
	})
}

// writeStoreError answers ErrNotFound with 404 and anything else with 500.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, what string) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, what+" not found")
		return
	}
	slog.Error("store operation failed", "request_id", requestID(r), "resource", what, "error", err)
	writeError(w, http.StatusInternalServerError, "failed to access "+what)
}
