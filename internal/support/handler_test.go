package support

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vovarama1992/techstore-chat-bridge/internal/ai"
	"github.com/Vovarama1992/techstore-chat-bridge/internal/store"
)

func newRouter(st store.Store, client ai.AI) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(NewService(st, client)))
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestHandleChat_OK(t *testing.T) {
	f := &fakeAI{reply: "Your order is on its way."}
	h := newRouter(store.NewSeededStore(), f)

	rec, body := do(t, h, http.MethodPost, "/api/chat", `{
		"message": "track order ORD-12345",
		"conversationHistory": [{"role":"assistant","content":"Hi!"}],
		"conversationId": "abc"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Your order is on its way.", body["reply"])
	assert.Equal(t, "abc", body["conversationId"])

	require.Len(t, f.got, 4)
	assert.Equal(t, ai.Message{Role: "assistant", Text: "Hi!"}, f.got[1])
}

func TestHandleChat_DefaultConversationID(t *testing.T) {
	h := newRouter(store.NewSeededStore(), &fakeAI{reply: "hey"})

	rec, body := do(t, h, http.MethodPost, "/api/chat", `{"message":"hello"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "default", body["conversationId"])
}

func TestHandleChat_EmptyMessage(t *testing.T) {
	f := &fakeAI{}
	h := newRouter(store.NewSeededStore(), f)

	for _, payload := range []string{`{}`, `{"message":""}`} {
		rec, body := do(t, h, http.MethodPost, "/api/chat", payload)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Message is required", body["error"])
	}
	assert.Zero(t, f.calls)
}

func TestHandleChat_InvalidJSON(t *testing.T) {
	f := &fakeAI{}
	h := newRouter(store.NewSeededStore(), f)

	rec, body := do(t, h, http.MethodPost, "/api/chat", `{"message":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", body["error"])
	assert.Zero(t, f.calls)
}

func TestHandleChat_MissingCredential(t *testing.T) {
	h := newRouter(store.NewSeededStore(), nil)

	rec, body := do(t, h, http.MethodPost, "/api/chat", `{"message":"hi"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, body["error"], "OPENAI_API_KEY")
}

func TestHandleChat_UpstreamQuota(t *testing.T) {
	h := newRouter(store.NewSeededStore(), &fakeAI{err: ai.ErrQuotaExceeded})

	rec, body := do(t, h, http.MethodPost, "/api/chat", `{"message":"hi"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "OpenAI API quota exceeded. Please check your OpenAI account.", body["error"])
}

func TestHandleOrder(t *testing.T) {
	h := newRouter(store.NewSeededStore(), nil)

	rec, body := do(t, h, http.MethodGet, "/api/orders/ord-12345", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ORD-12345", body["id"])
	assert.Equal(t, "TRK789456123", body["trackingNumber"])

	rec, body = do(t, h, http.MethodGet, "/api/orders/jane@example.com", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ORD-67890", body["id"])
	assert.Contains(t, body, "trackingNumber")
	assert.Nil(t, body["trackingNumber"])
}

func TestHandleOrder_NotFound(t *testing.T) {
	h := newRouter(store.NewSeededStore(), nil)

	rec, body := do(t, h, http.MethodGet, "/api/orders/ORD-99999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"error": "Order not found"}, body)
}

func TestHandleLists(t *testing.T) {
	h := newRouter(store.NewSeededStore(), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var products []store.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Equal(t, store.SeedProducts(), products)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/faqs", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var faqs []store.FAQ
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &faqs))
	assert.Equal(t, store.SeedFAQs(), faqs)
}

func TestHandleLists_StoreFailure(t *testing.T) {
	h := newRouter(brokenStore{}, nil)

	for _, path := range []string{"/api/products", "/api/faqs", "/api/orders/ORD-12345"} {
		rec, body := do(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
		assert.Equal(t, "Internal server error", body["error"], path)
	}
}

func TestHandleIndex(t *testing.T) {
	h := newRouter(store.NewSeededStore(), nil)

	rec, body := do(t, h, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	endpoints, ok := body["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "POST /api/chat", endpoints["chat"])
}
