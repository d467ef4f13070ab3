package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/mentor-hub-api/internal/models"
	"github.com/noah-isme/mentor-hub-api/internal/navigation"
	appErrors "github.com/noah-isme/mentor-hub-api/pkg/errors"
)

// NotificationService is the in-memory notification inbox.
type NotificationService struct {
	mu      sync.RWMutex
	entries []models.Notification
	logger  *zap.Logger
	now     func() time.Time
}

// NewNotificationService constructs an inbox seeded with the welcome notifications.
func NewNotificationService(logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &NotificationService{logger: logger, now: time.Now}
	s.entries = seedNotifications(s.now().UTC())
	return s
}

func seedNotifications(now time.Time) []models.Notification {
	return []models.Notification{
		{
			ID:        uuid.NewString(),
			Type:      models.NotificationMeeting,
			Title:     "Meeting with Marcus Johnson",
			Message:   "You have a scheduled meeting with Marcus Johnson (Product Manager) tomorrow at 2:00 PM",
			ActionURL: navigation.MentorLink(1),
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Type:      models.NotificationLearning,
			Title:     "Continue Your Learning Path",
			Message:   `You're 25% through the "Frontend Developer Path" learning path. Continue where you left off!`,
			ActionURL: navigation.PathLink(1),
			CreatedAt: now.Add(-4 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Type:      models.NotificationMentor,
			Title:     "New Mentor Available",
			Message:   "Dr. Priya Patel is now available for mentorship in Data Science",
			Read:      true,
			ActionURL: navigation.MentorLink(2),
			CreatedAt: now.Add(-6 * time.Hour),
		},
		{
			ID:        uuid.NewString(),
			Type:      models.NotificationSystem,
			Title:     "Profile Update",
			Message:   "Your profile has been successfully updated",
			Read:      true,
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}
}

// List returns the inbox, newest first, and the unread count.
func (s *NotificationService) List(ctx context.Context) ([]models.Notification, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Notification, len(s.entries))
	copy(out, s.entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, s.unreadLocked()
}

// UnreadCount returns how many notifications are unread.
func (s *NotificationService) UnreadCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadLocked()
}

// Push appends a notification and returns it with id and timestamp assigned.
func (s *NotificationService) Push(ctx context.Context, kind models.NotificationType, title, message, actionURL string) models.Notification {
	n := models.Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Title:     strings.TrimSpace(title),
		Message:   strings.TrimSpace(message),
		ActionURL: actionURL,
		CreatedAt: s.now().UTC(),
	}
	s.mu.Lock()
	s.entries = append(s.entries, n)
	s.mu.Unlock()

	s.logger.Debug("notification pushed", zap.String("id", n.ID), zap.String("type", string(kind)))
	return n
}

// MarkRead flags one notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Read = true
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "notification not found")
}

// MarkAllRead flags every notification as read and returns how many changed.
func (s *NotificationService) MarkAllRead(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := 0
	for i := range s.entries {
		if !s.entries[i].Read {
			s.entries[i].Read = true
			changed++
		}
	}
	return changed
}

// Remove deletes a notification.
func (s *NotificationService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "notification not found")
}

func (s *NotificationService) unreadLocked() int {
	count := 0
	for _, n := range s.entries {
		if !n.Read {
			count++
		}
	}
	return count
}
