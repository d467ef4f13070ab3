package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/mentor-hub-api/internal/models"
)

type pathsStub struct {
	paths []models.LearningPath
	err   error
}

func (p pathsStub) LearningPaths(context.Context) ([]models.LearningPath, error) {
	return p.paths, p.err
}

type prefsStub bool

func (p prefsStub) LearningRemindersEnabled(context.Context) bool { return bool(p) }

type inboxStub struct {
	pushed []models.Notification
}

func (i *inboxStub) Push(_ context.Context, kind models.NotificationType, title, message, actionURL string) models.Notification {
	n := models.Notification{Type: kind, Title: title, Message: message, ActionURL: actionURL}
	i.pushed = append(i.pushed, n)
	return n
}

type sweeperStub struct{}

func (sweeperStub) EvictIdle(context.Context) int { return 0 }

func samplePaths() []models.LearningPath {
	return []models.LearningPath{
		{ID: 1, Title: "Frontend Developer Path", Progress: 25},
		{ID: 2, Title: "Data Science Fundamentals", Progress: 0},
		{ID: 3, Title: "Product Management Essentials", Progress: 60},
		{ID: 4, Title: "UX Design Mastery", Progress: 100},
	}
}

func TestNextReminder(t *testing.T) {
	path, ok := NextReminder(samplePaths())
	require.True(t, ok)
	assert.Equal(t, 3, path.ID)

	_, ok = NextReminder([]models.LearningPath{{ID: 1, Progress: 0}, {ID: 2, Progress: 100}})
	assert.False(t, ok)
}

func TestRunRemindersPostsLearningNotification(t *testing.T) {
	inbox := &inboxStub{}
	s := New(Params{Paths: pathsStub{paths: samplePaths()}, Preferences: prefsStub(true), Inbox: inbox})

	require.True(t, s.RunReminders(context.Background()))
	require.Len(t, inbox.pushed, 1)
	assert.Equal(t, models.NotificationLearning, inbox.pushed[0].Type)
	assert.Equal(t, "/learning-paths?path=3", inbox.pushed[0].ActionURL)
	assert.Contains(t, inbox.pushed[0].Message, "60%")
}

func TestRunRemindersRespectsPreference(t *testing.T) {
	inbox := &inboxStub{}
	s := New(Params{Paths: pathsStub{paths: samplePaths()}, Preferences: prefsStub(false), Inbox: inbox})

	assert.False(t, s.RunReminders(context.Background()))
	assert.Empty(t, inbox.pushed)
}

func TestRunRemindersRepositoryError(t *testing.T) {
	inbox := &inboxStub{}
	s := New(Params{Paths: pathsStub{err: errors.New("boom")}, Inbox: inbox})

	assert.False(t, s.RunReminders(context.Background()))
	assert.Empty(t, inbox.pushed)
}

func TestStartRejectsInvalidSpec(t *testing.T) {
	s := New(Params{RemindersEnabled: true, ReminderSpec: "not a spec", Inbox: &inboxStub{}})
	assert.Error(t, s.Start(context.Background()))
}

func TestStartAndStop(t *testing.T) {
	s := New(Params{
		Paths:            pathsStub{paths: samplePaths()},
		Inbox:            &inboxStub{},
		Sessions:         sweeperStub{},
		RemindersEnabled: true,
	})
	require.NoError(t, s.Start(context.Background()))
	assert.Len(t, s.cron.Entries(), 2)
	s.Stop()
}
