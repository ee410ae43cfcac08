package models

import "encoding/json"

// LeadSubmission represents the contact form posted by site visitors.
// All four keys are required; empty values are accepted.
type LeadSubmission struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Lead is a stored submission. ID and CreatedAt are assigned by the store
// and passed through in whatever form the table defines them.
type Lead struct {
	ID        json.RawMessage `json:"id,omitempty"`
	CreatedAt string          `json:"created_at,omitempty"`
	Name      string          `json:"name"`
	Company   string          `json:"company"`
	Email     string          `json:"email"`
	Message   string          `json:"message"`
}
