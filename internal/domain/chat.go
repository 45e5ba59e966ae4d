package domain

// SchemaColumn is one column of a table in the public schema.
type SchemaColumn struct {
	TableName  string `db:"table_name" json:"tableName"`
	ColumnName string `db:"column_name" json:"columnName"`
	DataType   string `db:"data_type" json:"dataType"`
}

// SchemaInfo is the table listing handed to the SQL generator.
type SchemaInfo struct {
	Tables     []string `json:"tables"`
	SchemaText string   `json:"schema_text"`
}

// QueryResult holds the rows of an ad-hoc read-only query.
type QueryResult struct {
	Columns []string
	Rows    []map[string]any
}

// ChatAnswer is a natural-language question answered by a generated query.
type ChatAnswer struct {
	Query        string           `json:"query"`
	GeneratedSQL string           `json:"generated_sql"`
	Rows         int              `json:"rows"`
	Columns      []string         `json:"columns"`
	Results      []map[string]any `json:"results"`
}

// ChatRejection is returned when a generated query is refused or fails.
// It carries the SQL and the known tables so the caller can rephrase.
type ChatRejection struct {
	Err             error
	GeneratedSQL    string
	AvailableTables []string
}

func (e *ChatRejection) Error() string { return e.Err.Error() }

func (e *ChatRejection) Unwrap() error { return e.Err }
