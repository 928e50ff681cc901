package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Simplici0/sheetquote/internal/pricing"
)

// createdAtLayout is fixed width so created_at sorts lexically.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

// QuoteRecord is a stored quote: the priced response plus history fields.
type QuoteRecord struct {
	ID        int64     `json:"id"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"created_at"`
	NumLines  int       `json:"num_lines"`
	pricing.QuoteResponse
}

// QuoteSummary is one row of the quote history listing.
type QuoteSummary struct {
	ID             int64     `json:"id"`
	Reference      string    `json:"reference"`
	CustomerID     string    `json:"customer_id"`
	IncludeFreight bool      `json:"include_freight"`
	QuoteTotal     float64   `json:"quote_total"`
	NumLines       int       `json:"num_lines"`
	CreatedAt      time.Time `json:"created_at"`
}

// AppendQuote stores a priced quote and returns its history record.
func (s *Store) AppendQuote(ctx context.Context, resp pricing.QuoteResponse) (QuoteRecord, error) {
	payload, err := json.Marshal(resp)
	if err != nil {
		return QuoteRecord{}, fmt.Errorf("encode quote payload: %w", err)
	}

	rec := QuoteRecord{
		Reference:     s.newRef(),
		CreatedAt:     s.now().UTC(),
		NumLines:      len(resp.Lines),
		QuoteResponse: resp,
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO quotes (reference, customer_id, include_freight, quote_total, num_lines, created_at, payload_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.Reference, resp.CustomerID, resp.IncludeFreight, resp.QuoteTotal, rec.NumLines, rec.CreatedAt.Format(createdAtLayout), string(payload))
	if err != nil {
		return QuoteRecord{}, fmt.Errorf("insert quote: %w", err)
	}

	rec.ID, err = result.LastInsertId()
	if err != nil {
		return QuoteRecord{}, fmt.Errorf("read quote id: %w", err)
	}
	return rec, nil
}

// ListQuotes returns quote summaries newest first. A non-empty customerID
// restricts the listing to that customer.
func (s *Store) ListQuotes(ctx context.Context, customerID string) ([]QuoteSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			id,
			reference,
			customer_id,
			include_freight,
			quote_total,
			num_lines,
			created_at
		FROM quotes
		WHERE (? = '' OR customer_id = ?)
		ORDER BY created_at DESC, id DESC
	`, customerID, customerID)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	quotes := make([]QuoteSummary, 0)
	for rows.Next() {
		var q QuoteSummary
		var createdAt string
		if err := rows.Scan(&q.ID, &q.Reference, &q.CustomerID, &q.IncludeFreight, &q.QuoteTotal, &q.NumLines, &createdAt); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		if q.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse quote created_at: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}
	return quotes, nil
}

// GetQuote reads a stored quote without recalculating it.
func (s *Store) GetQuote(ctx context.Context, id int64) (QuoteRecord, error) {
	var rec QuoteRecord
	var createdAt, payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, reference, num_lines, created_at, payload_json
		FROM quotes
		WHERE id = ?
	`, id).Scan(&rec.ID, &rec.Reference, &rec.NumLines, &createdAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return QuoteRecord{}, ErrNotFound
	}
	if err != nil {
		return QuoteRecord{}, fmt.Errorf("query quote: %w", err)
	}

	if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return QuoteRecord{}, fmt.Errorf("parse quote created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), &rec.QuoteResponse); err != nil {
		return QuoteRecord{}, fmt.Errorf("decode quote payload: %w", err)
	}
	return rec, nil
}
