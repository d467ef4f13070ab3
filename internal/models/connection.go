package models

import "time"

// Connection options offered when contacting a mentor.
const (
	ConnectionOptionMessage  = "message"
	ConnectionOptionSchedule = "schedule"
)

// ConnectionRequestStatus tracks dispatch of a connection request.
type ConnectionRequestStatus string

const (
	ConnectionStatusQueued    ConnectionRequestStatus = "QUEUED"
	ConnectionStatusDelivered ConnectionRequestStatus = "DELIVERED"
	ConnectionStatusFailed    ConnectionRequestStatus = "FAILED"
)

// ConnectionRequest is a learner's request to connect with a mentor.
type ConnectionRequest struct {
	ID         string                  `json:"id"`
	MentorID   int                     `json:"mentor_id"`
	MentorName string                  `json:"mentor_name"`
	Option     string                  `json:"option"`
	Message    string                  `json:"message"`
	Status     ConnectionRequestStatus `json:"status"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}
