package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type repo struct {
	db *sql.DB
}

// NewRepo serves the knowledge base from Postgres (see migrations/001_knowledge.sql).
func NewRepo(db *sql.DB) Store {
	return &repo{db: db}
}

func (r *repo) FindOrder(ctx context.Context, identifier string) (*Order, error) {
	var (
		o   Order
		trk sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_email, status, total, tracking_number, estimated_delivery
		FROM orders
		WHERE lower(id) = lower($1) OR lower(customer_email) = lower($1)
		ORDER BY sort_order ASC
		LIMIT 1
	`, identifier).Scan(
		&o.ID,
		&o.CustomerEmail,
		&o.Status,
		&o.Total,
		&trk,
		&o.EstimatedDelivery,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if trk.Valid {
		o.TrackingNumber = &trk.String
	}

	items, err := r.orderItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *repo) orderItems(ctx context.Context, orderID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name
		FROM order_items
		WHERE order_id = $1
		ORDER BY sort_order ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("order items: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("order items: %w", err)
		}
		out = append(out, name)
	}

	return out, rows.Err()
}

func (r *repo) FindProduct(ctx context.Context, nameFragment string) (*Product, error) {
	if nameFragment == "" {
		return nil, nil
	}

	var p Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, category, in_stock, description
		FROM products
		WHERE strpos(lower(name), lower($1)) > 0
		ORDER BY sort_order ASC
		LIMIT 1
	`, nameFragment).Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Category,
		&p.InStock,
		&p.Description,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}

	return &p, nil
}

func (r *repo) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, category, in_stock, description
		FROM products
		ORDER BY sort_order ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Category,
			&p.InStock,
			&p.Description,
		); err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *repo) ListFAQs(ctx context.Context) ([]FAQ, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT question, answer
		FROM faqs
		ORDER BY sort_order ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()

	out := []FAQ{}
	for rows.Next() {
		var f FAQ
		if err := rows.Scan(&f.Question, &f.Answer); err != nil {
			return nil, fmt.Errorf("list faqs: %w", err)
		}
		out = append(out, f)
	}

	return out, rows.Err()
}
