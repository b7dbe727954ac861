package assistant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/naijatax/internal/models"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) *Gemini {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGemini("test-key", WithBaseURL(server.URL), WithModel("test-model"))
}

func TestGeminiSendMessage(t *testing.T) {
	var got generateRequest
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"CRA is "},{"text":"a relief."}]}}]}`))
	})

	history := []models.ChatMessage{
		{Role: models.RoleUser, Text: "hi"},
		{Role: models.RoleModel, Text: "hello"},
	}
	reply, err := g.SendMessage(context.Background(), history, "what is CRA?")
	require.NoError(t, err)
	assert.Equal(t, "CRA is a relief.", reply)

	require.Len(t, got.Contents, 3)
	assert.Equal(t, "user", got.Contents[0].Role)
	assert.Equal(t, "model", got.Contents[1].Role)
	assert.Equal(t, "what is CRA?", got.Contents[2].Parts[0].Text)
	assert.Equal(t, Persona, got.SystemInstruction.Parts[0].Text)
	assert.Equal(t, 40, got.GenerationConfig.TopK)
}

func TestGeminiEmptyCandidates(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	reply, err := g.SendMessage(context.Background(), nil, "hello")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestGeminiAPIError(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := g.SendMessage(context.Background(), nil, "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGeminiRejectsEmptyMessage(t *testing.T) {
	g := NewGemini("unused")
	_, err := g.SendMessage(context.Background(), nil, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestOffline(t *testing.T) {
	tests := []struct {
		message  string
		contains string
	}{
		{"How is my CRA computed?", "₦830000"},
		{"Does pension reduce my tax?", "Pension"},
		{"what are the tax bands", "₦800,000"},
		{"Explain PAYE", "Pay As You Earn"},
		{"When am I a tax resident?", "183 days"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			reply, err := Offline{}.SendMessage(context.Background(), nil, tt.message)
			require.NoError(t, err)
			assert.Contains(t, reply, tt.contains)
			assert.True(t, strings.HasSuffix(reply, Disclaimer))
		})
	}

	reply, err := Offline{}.SendMessage(context.Background(), nil, "tell me a joke")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}
