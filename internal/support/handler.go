package support

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Vovarama1992/techstore-chat-bridge/internal/ai"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// HandleChat — POST /api/chat
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message             string `json:"message"`
		ConversationHistory []turn `json:"conversationHistory"`
		ConversationID      string `json:"conversationId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	history := make([]ai.Message, 0, len(payload.ConversationHistory))
	for _, t := range payload.ConversationHistory {
		history = append(history, ai.Message{Role: t.Role, Text: t.Content})
	}

	resp, err := h.svc.Chat(r.Context(), ChatRequest{
		Message:        payload.Message,
		History:        history,
		ConversationID: payload.ConversationID,
	})
	if err != nil {
		writeError(w, statusFor(err), errorMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"reply":          resp.Reply,
		"conversationId": resp.ConversationID,
	})
}

// HandleOrder — GET /api/orders/{id}, id or customer email
func (h *Handler) HandleOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.FindOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		log.Printf("[http] order lookup: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if order == nil {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) HandleProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		log.Printf("[http] list products: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) HandleFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.svc.ListFAQs(r.Context())
	if err != nil {
		log.Printf("[http] list faqs: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, faqs)
}

// HandleIndex — discovery document
func (h *Handler) HandleIndex(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "E-commerce Chatbot API is running!",
		"endpoints": map[string]string{
			"chat":     "POST /api/chat",
			"orders":   "GET /api/orders/:id",
			"products": "GET /api/products",
			"faqs":     "GET /api/faqs",
		},
	})
}

func statusFor(err error) int {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// errorMessage never leaks raw internal errors to the caller.
func errorMessage(err error) string {
	var (
		inputErr    *InputError
		configErr   *ConfigurationError
		upstreamErr *UpstreamError
	)
	switch {
	case errors.As(err, &inputErr):
		return inputErr.Error()
	case errors.As(err, &configErr):
		return configErr.Error()
	case errors.As(err, &upstreamErr):
		return upstreamErr.Error()
	}
	log.Printf("[http] unexpected error: %v", err)
	return "Sorry, I encountered an error. Please try again later."
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[http] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
