package support

import (
	"context"
	"errors"

	"github.com/Vovarama1992/techstore-chat-bridge/internal/ai"
	"github.com/Vovarama1992/techstore-chat-bridge/internal/store"
)

type fakeAI struct {
	reply string
	err   error
	calls int
	got   []ai.Message
}

func (f *fakeAI) GetReply(_ context.Context, history []ai.Message) (string, error) {
	f.calls++
	f.got = history
	return f.reply, f.err
}

// brokenStore fails every lookup.
type brokenStore struct{}

var errStoreDown = errors.New("store down")

func (brokenStore) FindOrder(context.Context, string) (*store.Order, error) {
	return nil, errStoreDown
}

func (brokenStore) FindProduct(context.Context, string) (*store.Product, error) {
	return nil, errStoreDown
}

func (brokenStore) ListProducts(context.Context) ([]store.Product, error) {
	return nil, errStoreDown
}

func (brokenStore) ListFAQs(context.Context) ([]store.FAQ, error) {
	return nil, errStoreDown
}

// factTurns returns the system turns after the persona.
func factTurns(msgs []ai.Message) []ai.Message {
	var out []ai.Message
	for i, m := range msgs {
		if i > 0 && m.Role == ai.RoleSystem {
			out = append(out, m)
		}
	}
	return out
}
