// Package llm talks to OpenAI-compatible chat completion APIs.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"invoicehub/internal/config"
	"invoicehub/internal/sqlguard"
)

const (
	apiURL       = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel = "llama-3.3-70b-versatile"
	maxTokens    = 800
)

// SQLGenerator implements port.SQLGenerator on a chat completions endpoint.
type SQLGenerator struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewSQLGenerator creates a generator from cfg, falling back to the Groq
// endpoint and model when they are unset.
func NewSQLGenerator(cfg *config.LLMConfig) *SQLGenerator {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = apiURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &SQLGenerator{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// apiResponse models the Chat Completions response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// BuildSQLPrompt renders the instruction sent with every question.
func BuildSQLPrompt(question, schemaText string) string {
	var b strings.Builder
	b.WriteString("You write PostgreSQL queries for an invoice analytics database.\n\n")
	b.WriteString("Tables and columns (use these names exactly, never invent others):\n")
	b.WriteString(schemaText)
	b.WriteString("\n\nQuestion:\n")
	b.WriteString(question)
	b.WriteString("\n\nAnswer with a single PostgreSQL SELECT statement and nothing else: ")
	b.WriteString("no markdown, no comments, no explanation. ")
	b.WriteString("Double-quote identifiers that are not all lowercase. ")
	b.WriteString("If the tables above cannot answer the question, reply exactly ")
	b.WriteString(sqlguard.UnanswerableToken)
	b.WriteString(".\n")
	return b.String()
}

// GenerateSQL asks the model for a query answering question. The reply is
// returned trimmed but otherwise unvetted.
func (g *SQLGenerator) GenerateSQL(ctx context.Context, question, schemaText string) (string, error) {
	reqBody := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a helpful SQL assistant."},
			{Role: "user", Content: BuildSQLPrompt(question, schemaText)},
		},
		Temperature: 0,
		MaxTokens:   maxTokens,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling chat completions API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completions API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response from API: no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
