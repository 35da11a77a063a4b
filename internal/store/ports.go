package store

import "context"

type Order struct {
	ID                string   `json:"id"`
	CustomerEmail     string   `json:"customerEmail"`
	Status            string   `json:"status"`
	Items             []string `json:"items"`
	Total             float64  `json:"total"`
	TrackingNumber    *string  `json:"trackingNumber"`
	EstimatedDelivery string   `json:"estimatedDelivery"`
}

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
	Description string  `json:"description"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Store — read-only knowledge base. A miss is (nil, nil), never an error.
type Store interface {
	FindOrder(ctx context.Context, identifier string) (*Order, error)
	FindProduct(ctx context.Context, nameFragment string) (*Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	ListFAQs(ctx context.Context) ([]FAQ, error)
}
