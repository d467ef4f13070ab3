package dto

import "time"

// SearchSessionResponse reports the settled state of a typeahead session.
type SearchSessionResponse struct {
	SessionID   string    `json:"sessionId"`
	Pending     bool      `json:"pending"`
	LastQuery   string    `json:"lastQuery,omitempty"`
	Destination string    `json:"destination,omitempty"`
	SettledAt   *time.Time `json:"settledAt,omitempty"`
}
