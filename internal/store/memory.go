package store

import (
	"context"
	"strings"
)

type memoryStore struct {
	orders   []Order
	products []Product
	faqs     []FAQ
}

// NewMemoryStore keeps its own copies; later changes to the arguments are not seen.
func NewMemoryStore(orders []Order, products []Product, faqs []FAQ) Store {
	s := &memoryStore{
		orders:   make([]Order, len(orders)),
		products: append([]Product(nil), products...),
		faqs:     append([]FAQ(nil), faqs...),
	}
	for i, o := range orders {
		s.orders[i] = cloneOrder(o)
	}
	return s
}

func (s *memoryStore) FindOrder(_ context.Context, identifier string) (*Order, error) {
	for _, o := range s.orders {
		if strings.EqualFold(o.ID, identifier) || strings.EqualFold(o.CustomerEmail, identifier) {
			out := cloneOrder(o)
			return &out, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) FindProduct(_ context.Context, nameFragment string) (*Product, error) {
	needle := strings.ToLower(nameFragment)
	if needle == "" {
		return nil, nil
	}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) ListProducts(_ context.Context) ([]Product, error) {
	return append([]Product(nil), s.products...), nil
}

func (s *memoryStore) ListFAQs(_ context.Context) ([]FAQ, error) {
	return append([]FAQ(nil), s.faqs...), nil
}

func cloneOrder(o Order) Order {
	o.Items = append([]string(nil), o.Items...)
	if o.TrackingNumber != nil {
		trk := *o.TrackingNumber
		o.TrackingNumber = &trk
	}
	return o
}
