package models

// DiagnosticReport is the body of GET /test. Status strings are prefixed
// with ✅, ❌ or ⚠️ and their wording is part of the response contract.
type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
