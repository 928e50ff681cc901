package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Simplici0/sheetquote/internal/pricing"
)

// CustomerPatch changes the non-nil fields of a customer.
type CustomerPatch struct {
	Name                *string `json:"name"`
	ColumnBreak         *string `json:"column_break"`
	FreightColumnOffset *int    `json:"freight_column_offset"`
}

// ListCustomers returns every customer ordered by id.
func (s *Store) ListCustomers(ctx context.Context) ([]pricing.Customer, error) {
	return listCustomers(ctx, s.db)
}

func listCustomers(ctx context.Context, q queryer) ([]pricing.Customer, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, name, column_break, freight_column_offset
		FROM customers
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	customers := make([]pricing.Customer, 0)
	for rows.Next() {
		var c pricing.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.ColumnBreak, &c.FreightColumnOffset); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return customers, nil
}

// GetCustomer returns one customer or ErrNotFound.
func (s *Store) GetCustomer(ctx context.Context, id string) (pricing.Customer, error) {
	var c pricing.Customer
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, column_break, freight_column_offset
		FROM customers
		WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.ColumnBreak, &c.FreightColumnOffset)
	if errors.Is(err, sql.ErrNoRows) {
		return pricing.Customer{}, ErrNotFound
	}
	if err != nil {
		return pricing.Customer{}, fmt.Errorf("query customer: %w", err)
	}
	return c, nil
}

// UpdateCustomer applies patch and returns the stored customer.
func (s *Store) UpdateCustomer(ctx context.Context, id string, patch CustomerPatch) (pricing.Customer, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE customers
		SET
			name = COALESCE(?, name),
			column_break = COALESCE(?, column_break),
			freight_column_offset = COALESCE(?, freight_column_offset),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, nullable(patch.Name), nullable(patch.ColumnBreak), nullable(patch.FreightColumnOffset), id)
	if err != nil {
		return pricing.Customer{}, fmt.Errorf("update customer: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return pricing.Customer{}, fmt.Errorf("update customer: %w", err)
	}
	if affected == 0 {
		return pricing.Customer{}, ErrNotFound
	}
	return s.GetCustomer(ctx, id)
}

// DeleteCustomer removes a customer. Stored quotes keep their customer id.
func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
