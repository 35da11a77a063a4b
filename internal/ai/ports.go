package ai

import (
	"context"
	"errors"
)

// AI — external completion service; knows nothing about orders or HTTP.
type AI interface {
	GetReply(ctx context.Context, history []Message) (string, error)
}

// Message — one conversation turn
type Message struct {
	Role string // "user" | "assistant" | "system"
	Text string
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var (
	ErrQuotaExceeded = errors.New("ai: quota exceeded")
	ErrInvalidAPIKey = errors.New("ai: invalid api key")
	ErrEmptyReply    = errors.New("ai: empty choices")
)
