// Package scheduler runs the periodic learning reminder and search session
// housekeeping jobs.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/noah-isme/mentor-hub-api/internal/models"
	"github.com/noah-isme/mentor-hub-api/internal/navigation"
)

// EvictSpec is how often idle search sessions are swept.
const EvictSpec = "@every 1m"

type pathSource interface {
	LearningPaths(ctx context.Context) ([]models.LearningPath, error)
}

type reminderPreferences interface {
	LearningRemindersEnabled(ctx context.Context) bool
}

type inbox interface {
	Push(ctx context.Context, kind models.NotificationType, title, message, actionURL string) models.Notification
}

type sessionSweeper interface {
	EvictIdle(ctx context.Context) int
}

// Params groups the scheduler collaborators.
type Params struct {
	Paths            pathSource
	Preferences      reminderPreferences
	Inbox            inbox
	Sessions         sessionSweeper
	ReminderSpec     string
	RemindersEnabled bool
	Logger           *zap.Logger
}

// Scheduler wraps robfig/cron.
type Scheduler struct {
	cron   *cron.Cron
	params Params
	logger *zap.Logger
}

// New creates a Scheduler. Jobs are registered on Start.
func New(params Params) *Scheduler {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if params.ReminderSpec == "" {
		params.ReminderSpec = "@daily"
	}
	return &Scheduler{
		cron:   cron.New(),
		params: params,
		logger: logger,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.params.RemindersEnabled {
		if _, err := s.cron.AddFunc(s.params.ReminderSpec, func() { s.RunReminders(ctx) }); err != nil {
			return fmt.Errorf("schedule reminders %q: %w", s.params.ReminderSpec, err)
		}
	}
	if s.params.Sessions != nil {
		if _, err := s.cron.AddFunc(EvictSpec, func() { s.params.Sessions.EvictIdle(ctx) }); err != nil {
			return fmt.Errorf("schedule session eviction: %w", err)
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started",
		zap.Bool("reminders", s.params.RemindersEnabled),
		zap.String("reminder_spec", s.params.ReminderSpec),
		zap.Int("jobs", len(s.cron.Entries())))
	return nil
}

// Stop halts the cron loop and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}

// RunReminders posts a learning reminder for the most advanced unfinished
// path. It reports whether a reminder was posted.
func (s *Scheduler) RunReminders(ctx context.Context) bool {
	if s.params.Preferences != nil && !s.params.Preferences.LearningRemindersEnabled(ctx) {
		s.logger.Debug("learning reminders disabled")
		return false
	}

	paths, err := s.params.Paths.LearningPaths(ctx)
	if err != nil {
		s.logger.Error("load learning paths", zap.Error(err))
		return false
	}

	path, ok := NextReminder(paths)
	if !ok {
		s.logger.Debug("no learning path in progress")
		return false
	}

	s.params.Inbox.Push(ctx, models.NotificationLearning,
		"Continue Your Learning Path",
		fmt.Sprintf("You're %d%% through the %q learning path. Continue where you left off!", path.Progress, path.Title),
		navigation.PathLink(path.ID))
	s.logger.Info("learning reminder posted", zap.Int("path_id", path.ID), zap.Int("progress", path.Progress))
	return true
}

// NextReminder picks the started, unfinished path with the highest progress.
// Ties keep the first path in catalog order.
func NextReminder(paths []models.LearningPath) (models.LearningPath, bool) {
	var (
		best  models.LearningPath
		found bool
	)
	for _, p := range paths {
		if p.Progress <= 0 || p.Progress >= 100 {
			continue
		}
		if !found || p.Progress > best.Progress {
			best = p
			found = true
		}
	}
	return best, found
}
