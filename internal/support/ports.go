package support

import (
	"context"

	"github.com/Vovarama1992/techstore-chat-bridge/internal/ai"
	"github.com/Vovarama1992/techstore-chat-bridge/internal/store"
)

const DefaultConversationID = "default"

type ChatRequest struct {
	Message        string
	History        []ai.Message
	ConversationID string
}

type ChatResponse struct {
	Reply          string
	ConversationID string
}

// Service — one chat exchange plus read access to the knowledge base
type Service interface {
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	FindOrder(ctx context.Context, identifier string) (*store.Order, error)
	ListProducts(ctx context.Context) ([]store.Product, error)
	ListFAQs(ctx context.Context) ([]store.FAQ, error)
}
