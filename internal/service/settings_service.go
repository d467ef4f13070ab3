package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/mentor-hub-api/internal/models"
	appErrors "github.com/noah-isme/mentor-hub-api/pkg/errors"
)

type notificationPoster interface {
	Push(ctx context.Context, kind models.NotificationType, title, message, actionURL string) models.Notification
}

// SettingsService stores the learner's settings sections in memory.
type SettingsService struct {
	mu        sync.RWMutex
	settings  models.UserSettings
	validator *validator.Validate
	inbox     notificationPoster
	logger    *zap.Logger
}

// DefaultSettings returns the settings a new learner starts with.
func DefaultSettings() models.UserSettings {
	return models.UserSettings{
		Profile: models.ProfileSettings{
			Name:     "John Doe",
			Email:    "john@example.com",
			Bio:      "Passionate learner interested in web development and data science.",
			Location: "San Francisco, CA",
			Website:  "https://johndoe.dev",
			Avatar:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		},
		Notifications: models.NotificationSettings{
			Email:             true,
			Push:              true,
			MentorRequests:    true,
			LearningReminders: true,
			WeeklyDigest:      false,
		},
		Security: models.SecuritySettings{
			TwoFactor:         false,
			EmailVerification: true,
			SessionTimeout:    30,
		},
		Appearance: models.AppearanceSettings{Theme: models.ThemeLight},
	}
}

// NewSettingsService constructs a SettingsService seeded with DefaultSettings.
// inbox may be nil, in which case saves are not acknowledged.
func NewSettingsService(inbox notificationPoster, validate *validator.Validate, logger *zap.Logger) *SettingsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{
		settings:  DefaultSettings(),
		validator: validate,
		inbox:     inbox,
		logger:    logger,
	}
}

// All returns every section.
func (s *SettingsService) All(ctx context.Context) models.UserSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Get returns a single section by name.
func (s *SettingsService) Get(ctx context.Context, section string) (interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch section {
	case models.SettingsSectionProfile:
		return s.settings.Profile, nil
	case models.SettingsSectionNotifications:
		return s.settings.Notifications, nil
	case models.SettingsSectionSecurity:
		return s.settings.Security, nil
	case models.SettingsSectionAppearance:
		return s.settings.Appearance, nil
	default:
		return nil, unknownSection(section)
	}
}

// Save decodes payload into the named section, validates it and stores it.
func (s *SettingsService) Save(ctx context.Context, section string, payload []byte) (interface{}, error) {
	var (
		value interface{}
		err   error
	)
	switch section {
	case models.SettingsSectionProfile:
		value, err = decodeSection[models.ProfileSettings](s.validator, payload)
	case models.SettingsSectionNotifications:
		value, err = decodeSection[models.NotificationSettings](s.validator, payload)
	case models.SettingsSectionSecurity:
		value, err = decodeSection[models.SecuritySettings](s.validator, payload)
	case models.SettingsSectionAppearance:
		value, err = decodeSection[models.AppearanceSettings](s.validator, payload)
	default:
		return nil, unknownSection(section)
	}
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	switch v := value.(type) {
	case models.ProfileSettings:
		s.settings.Profile = v
	case models.NotificationSettings:
		s.settings.Notifications = v
	case models.SecuritySettings:
		s.settings.Security = v
	case models.AppearanceSettings:
		s.settings.Appearance = v
	}
	s.mu.Unlock()

	s.acknowledge(ctx, section)
	return value, nil
}

// ToggleTheme flips between the light and dark themes.
func (s *SettingsService) ToggleTheme(ctx context.Context) models.AppearanceSettings {
	s.mu.Lock()
	if s.settings.Appearance.Theme == models.ThemeDark {
		s.settings.Appearance.Theme = models.ThemeLight
	} else {
		s.settings.Appearance.Theme = models.ThemeDark
	}
	appearance := s.settings.Appearance
	s.mu.Unlock()

	s.logger.Debug("theme toggled", zap.String("theme", appearance.Theme))
	return appearance
}

// LearningRemindersEnabled reports the learning reminders preference.
func (s *SettingsService) LearningRemindersEnabled(ctx context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Notifications.LearningReminders
}

func (s *SettingsService) acknowledge(ctx context.Context, section string) {
	s.logger.Info("settings saved", zap.String("section", section))
	if s.inbox == nil {
		return
	}
	title := strings.ToUpper(section[:1]) + section[1:]
	s.inbox.Push(ctx, models.NotificationSystem, "Settings Updated", fmt.Sprintf("%s settings saved successfully!", title), "")
}

func decodeSection[T any](validate *validator.Validate, payload []byte) (T, error) {
	var value T
	if len(payload) == 0 {
		return value, appErrors.Clone(appErrors.ErrValidation, "request body is required")
	}
	if err := json.Unmarshal(payload, &value); err != nil {
		return value, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid settings payload")
	}
	if err := validate.Struct(value); err != nil {
		return value, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	return value, nil
}

func unknownSection(section string) error {
	return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown settings section %q", section))
}
