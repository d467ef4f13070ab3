package models

import "time"

// NotificationType classifies inbox entries.
type NotificationType string

const (
	NotificationMeeting  NotificationType = "meeting"
	NotificationLearning NotificationType = "learning"
	NotificationMentor   NotificationType = "mentor"
	NotificationSystem   NotificationType = "system"
)

// Notification is an in-app inbox entry.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	ActionURL string           `json:"action_url,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
