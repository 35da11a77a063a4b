package support

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Vovarama1992/techstore-chat-bridge/internal/ai"
	"github.com/Vovarama1992/techstore-chat-bridge/internal/store"
)

type service struct {
	store   store.Store
	ai      ai.AI
	extract *extractor
}

// NewService wires the chat exchange. aiClient may be nil when no
// completion credential is configured; Chat then reports a ConfigurationError.
func NewService(st store.Store, aiClient ai.AI) Service {
	return &service{
		store:   st,
		ai:      aiClient,
		extract: &extractor{store: st},
	}
}

func (s *service) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return ChatResponse{}, errMessageRequired
	}

	if s.ai == nil {
		return ChatResponse{}, errNotConfigured
	}

	convID := req.ConversationID
	if convID == "" {
		convID = DefaultConversationID
	}

	log.Printf("[svc] conversationId=%s text=%q history=%d", convID, short(text), len(req.History))

	facts := s.extract.Facts(ctx, text)
	msgs := assemble(req.History, facts, req.Message)

	reply, err := s.ai.GetReply(ctx, msgs)
	if err != nil {
		log.Printf("[svc] completion failed conversationId=%s: %v", convID, err)
		return ChatResponse{}, upstream(err)
	}

	return ChatResponse{
		Reply:          reply,
		ConversationID: convID,
	}, nil
}

func upstream(err error) *UpstreamError {
	kind := UpstreamGeneric
	switch {
	case errors.Is(err, ai.ErrQuotaExceeded):
		kind = UpstreamQuota
	case errors.Is(err, ai.ErrInvalidAPIKey):
		kind = UpstreamInvalidKey
	}
	return &UpstreamError{Kind: kind, Err: err}
}

func (s *service) FindOrder(ctx context.Context, identifier string) (*store.Order, error) {
	return s.store.FindOrder(ctx, identifier)
}

func (s *service) ListProducts(ctx context.Context) ([]store.Product, error) {
	return s.store.ListProducts(ctx)
}

func (s *service) ListFAQs(ctx context.Context) ([]store.FAQ, error) {
	return s.store.ListFAQs(ctx)
}

func short(s string) string {
	r := []rune(s)
	if len(r) > 180 {
		return string(r[:180]) + "..."
	}
	return s
}
