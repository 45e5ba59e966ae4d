package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrDuplicate       = errors.New("unique constraint violated")
	ErrInvalidRecord   = errors.New("invalid source record")
	ErrSourceNotFound  = errors.New("seed source not found")
	ErrInvalidFormat   = errors.New("unsupported export format")

	ErrEmptyQuestion  = errors.New("query is required")
	ErrChatDisabled   = errors.New("chat with data is not configured")
	ErrLLMUnavailable = errors.New("language model request failed")
	ErrUnanswerable   = errors.New("could not form a SQL query using the available tables")
	ErrUnsafeSQL      = errors.New("only SELECT queries are allowed")
	ErrUnknownTables  = errors.New("generated SQL does not reference any available tables")
	ErrQueryFailed    = errors.New("execution failed")
)
