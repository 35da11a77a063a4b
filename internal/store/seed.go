package store

// Compiled-in TechStore catalogue. Mirrors migrations/001_knowledge.sql.

func SeedOrders() []Order {
	trk := "TRK789456123"
	return []Order{
		{
			ID:                "ORD-12345",
			CustomerEmail:     "john@example.com",
			Status:            "shipped",
			Items:             []string{"Wireless Headphones", "Phone Case"},
			Total:             129.99,
			TrackingNumber:    &trk,
			EstimatedDelivery: "2025-08-30",
		},
		{
			ID:                "ORD-67890",
			CustomerEmail:     "jane@example.com",
			Status:            "processing",
			Items:             []string{"Laptop Stand", "USB Cable"},
			Total:             85.50,
			EstimatedDelivery: "2025-09-02",
		},
	}
}

func SeedProducts() []Product {
	return []Product{
		{
			ID:          "PROD-001",
			Name:        "Wireless Headphones",
			Price:       99.99,
			Category:    "Electronics",
			InStock:     true,
			Description: "High-quality wireless headphones with noise cancellation",
		},
		{
			ID:          "PROD-002",
			Name:        "Phone Case",
			Price:       29.99,
			Category:    "Accessories",
			InStock:     true,
			Description: "Protective phone case with drop protection",
		},
	}
}

func SeedFAQs() []FAQ {
	return []FAQ{
		{
			Question: "What is your return policy?",
			Answer:   "We offer 30-day returns for all items in original condition.",
		},
		{
			Question: "How long does shipping take?",
			Answer:   "Standard shipping takes 3-5 business days, express shipping 1-2 days.",
		},
	}
}

func NewSeededStore() Store {
	return NewMemoryStore(SeedOrders(), SeedProducts(), SeedFAQs())
}
