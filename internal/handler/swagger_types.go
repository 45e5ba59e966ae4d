package handler

// Swagger type definitions for API documentation.

// ErrorResponseBody is the body of every error response.
type ErrorResponseBody struct {
	Error string `json:"error" example:"Failed to fetch invoices"`
}

// HealthResponse is the body of the health check endpoints.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// ChatRequest is the body of POST /api/chat-with-data.
type ChatRequest struct {
	Query string `json:"query" example:"Which vendor did we pay the most last quarter?"`
}

// ChatRejectionBody is returned when a generated query is refused or fails.
type ChatRejectionBody struct {
	Error           string   `json:"error" example:"only SELECT queries are allowed"`
	GeneratedSQL    string   `json:"generated_sql,omitempty" example:"DELETE FROM invoices"`
	AvailableTables []string `json:"available_tables,omitempty"`
}
