package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

type Config struct {
	APIKey      string
	Model       string
	BaseURL     string // optional, for OpenAI-compatible gateways
	MaxTokens   int
	Temperature float32
}

type OpenAIClient struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

func NewOpenAIClient(cfg Config) *OpenAIClient {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(oc),
		model:       model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

func (c *OpenAIClient) GetReply(
	ctx context.Context,
	history []Message,
) (string, error) {

	msgs := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, m := range history {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Text,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		log.Println("[ai] OpenAI error:", err)
		return "", classify(err)
	}

	if len(resp.Choices) == 0 {
		log.Println("[ai] empty choices")
		return "", ErrEmptyReply
	}

	return resp.Choices[0].Message.Content, nil
}

// classify tags provider errors the chat endpoint reports specifically.
func classify(err error) error {
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	code, _ := apiErr.Code.(string)
	switch {
	case code == "insufficient_quota" || apiErr.Type == "insufficient_quota":
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	case code == "invalid_api_key" || apiErr.HTTPStatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %v", ErrInvalidAPIKey, err)
	}
	return err
}
