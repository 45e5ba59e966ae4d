package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicehub/internal/config"
	"invoicehub/internal/llm"
)

func TestGenerateSQL_SendsPromptAndReturnsContent(t *testing.T) {
	var got struct {
		Model       string  `json:"model"`
		Temperature float64 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer gsk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  SELECT count(*) FROM invoices\n"}}]}`))
	}))
	defer srv.Close()

	g := llm.NewSQLGenerator(&config.LLMConfig{APIKey: "gsk-test", Endpoint: srv.URL})
	sql, err := g.GenerateSQL(context.Background(), "How many invoices?", "Table invoices (id uuid)")

	require.NoError(t, err)
	assert.Equal(t, "SELECT count(*) FROM invoices", sql)
	assert.Equal(t, "llama-3.3-70b-versatile", got.Model)
	assert.Equal(t, 800, got.MaxTokens)
	assert.Zero(t, got.Temperature)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Contains(t, got.Messages[1].Content, "Table invoices (id uuid)")
	assert.Contains(t, got.Messages[1].Content, "How many invoices?")
	assert.Contains(t, got.Messages[1].Content, "UNABLE_TO_ANSWER")
}

func TestGenerateSQL_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer srv.Close()

	g := llm.NewSQLGenerator(&config.LLMConfig{APIKey: "bad", Endpoint: srv.URL})
	_, err := g.GenerateSQL(context.Background(), "q", "schema")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestGenerateSQL_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	g := llm.NewSQLGenerator(&config.LLMConfig{Endpoint: srv.URL, Model: "custom"})
	_, err := g.GenerateSQL(context.Background(), "q", "schema")

	assert.ErrorContains(t, err, "no choices")
}
