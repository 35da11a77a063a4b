package support

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.HandleIndex)

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", h.HandleChat)
		r.Get("/orders/{id}", h.HandleOrder)
		r.Get("/products", h.HandleProducts)
		r.Get("/faqs", h.HandleFAQs)
	})
}
