package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/sheetquote/internal/pricing"
	"github.com/Simplici0/sheetquote/internal/store"
)

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(); err != nil {
		slog.Error("health check failed", "request_id", requestID(r), "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req pricing.QuoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid quote request body: "+err.Error())
		return
	}

	snap, err := s.store.Snapshot(r.Context())
	if err != nil {
		slog.Error("failed to load reference data", "request_id", requestID(r), "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load reference data")
		return
	}

	resp, err := s.engine.Quote(req, snap)
	if err != nil {
		writeQuoteError(w, r, err)
		return
	}

	rec, err := s.store.AppendQuote(r.Context(), resp)
	if err != nil {
		writeStoreError(w, r, err, "quote history")
		return
	}

	slog.Info("quote priced",
		"request_id", requestID(r),
		"quote_id", rec.ID,
		"customer_id", rec.CustomerID,
		"lines", rec.NumLines,
		"quote_total", rec.QuoteTotal,
	)
	writeJSON(w, http.StatusOK, rec)
}

func (s *server) handleQuotesList(w http.ResponseWriter, r *http.Request) {
	customerID := strings.TrimSpace(r.URL.Query().Get("customer_id"))
	quotes, err := s.store.ListQuotes(r.Context(), customerID)
	if err != nil {
		writeStoreError(w, r, err, "quote history")
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

func parseQuoteID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (s *server) loadQuote(w http.ResponseWriter, r *http.Request) (store.QuoteRecord, bool) {
	id, ok := parseQuoteID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid quote id")
		return store.QuoteRecord{}, false
	}
	rec, err := s.store.GetQuote(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "quote")
		return store.QuoteRecord{}, false
	}
	return rec, true
}

func (s *server) handleQuoteDetail(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadQuote(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *server) handleQuotePDF(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.loadQuote(w, r)
	if !ok {
		return
	}

	doc, err := s.pdf.Generate(rec)
	if err != nil {
		slog.Error("failed to render quote pdf", "request_id", requestID(r), "quote_id", rec.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to render quote document")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=\"quote-%d.pdf\"", rec.ID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		slog.Error("failed to write quote pdf", "request_id", requestID(r), "error", err)
	}
}
