package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"invoicehub/internal/domain"
	"invoicehub/internal/handler"
	"invoicehub/mocks"
)

func newChatContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/chat-with-data", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestChatHandler_ChatWithData_OK(t *testing.T) {
	svc := new(mocks.MockChatService)
	h := handler.NewChatHandler(svc)
	svc.On("Ask", mock.Anything, "How many invoices?").Return(&domain.ChatAnswer{
		Query:        "How many invoices?",
		GeneratedSQL: "SELECT count(*) AS n FROM invoices",
		Rows:         1,
		Columns:      []string{"n"},
		Results:      []map[string]any{{"n": 42}},
	}, nil)

	c, w := newChatContext(`{"query":"How many invoices?"}`)
	h.ChatWithData(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"query": "How many invoices?",
		"generated_sql": "SELECT count(*) AS n FROM invoices",
		"rows": 1,
		"columns": ["n"],
		"results": [{"n": 42}]
	}`, w.Body.String())
}

func TestChatHandler_ChatWithData_BadBody(t *testing.T) {
	svc := new(mocks.MockChatService)
	h := handler.NewChatHandler(svc)

	c, w := newChatContext(`{"query":`)
	h.ChatWithData(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, w))
	svc.AssertNotCalled(t, "Ask", mock.Anything, mock.Anything)
}

func TestChatHandler_ChatWithData_Rejected(t *testing.T) {
	svc := new(mocks.MockChatService)
	h := handler.NewChatHandler(svc)
	svc.On("Ask", mock.Anything, "drop it").Return(nil, &domain.ChatRejection{
		Err:          domain.ErrUnsafeSQL,
		GeneratedSQL: "DROP TABLE invoices",
	})

	c, w := newChatContext(`{"query":"drop it"}`)
	h.ChatWithData(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"only SELECT queries are allowed","generated_sql":"DROP TABLE invoices"}`, w.Body.String())
}

func TestChatHandler_ChatWithData_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"empty question", domain.ErrEmptyQuestion, http.StatusBadRequest, "query is required"},
		{"disabled", domain.ErrChatDisabled, http.StatusServiceUnavailable, "Chat with data is not configured"},
		{"llm down", fmt.Errorf("%w: status 500", domain.ErrLLMUnavailable), http.StatusBadGateway, "Language model request failed"},
		{"schema read", errors.New("conn reset"), http.StatusInternalServerError, "Failed to answer question"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockChatService)
			h := handler.NewChatHandler(svc)
			svc.On("Ask", mock.Anything, mock.Anything).Return(nil, tt.err)

			c, w := newChatContext(`{"query":"x"}`)
			h.ChatWithData(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.msg, decodeError(t, w))
		})
	}
}

func TestChatHandler_InspectSchema(t *testing.T) {
	svc := new(mocks.MockChatService)
	h := handler.NewChatHandler(svc)
	svc.On("InspectSchema", mock.Anything).Return(&domain.SchemaInfo{
		Tables:     []string{"invoices"},
		SchemaText: "Table invoices (id uuid)",
	}, nil)

	c, w := newTestContext(http.MethodGet, "/api/inspect-schema")
	h.InspectSchema(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"tables":["invoices"],"schema_text":"Table invoices (id uuid)"}`, w.Body.String())
}

func TestChatHandler_InspectSchema_Error(t *testing.T) {
	svc := new(mocks.MockChatService)
	h := handler.NewChatHandler(svc)
	svc.On("InspectSchema", mock.Anything).Return(nil, errors.New("permission denied"))

	c, w := newTestContext(http.MethodGet, "/api/inspect-schema")
	h.InspectSchema(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to inspect schema", decodeError(t, w))
}
