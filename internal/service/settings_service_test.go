package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/mentor-hub-api/internal/models"
	appErrors "github.com/noah-isme/mentor-hub-api/pkg/errors"
)

func TestSettingsServiceDefaults(t *testing.T) {
	svc := NewSettingsService(nil, nil, nil)

	all := svc.All(context.Background())
	assert.Equal(t, DefaultSettings(), all)
	assert.Equal(t, models.ThemeLight, all.Appearance.Theme)
	assert.Equal(t, 30, all.Security.SessionTimeout)
	assert.False(t, all.Notifications.WeeklyDigest)
	assert.True(t, svc.LearningRemindersEnabled(context.Background()))

	section, err := svc.Get(context.Background(), models.SettingsSectionProfile)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", section.(models.ProfileSettings).Name)
}

func TestSettingsServiceSavePostsAcknowledgement(t *testing.T) {
	inbox := NewNotificationService(nil)
	svc := NewSettingsService(inbox, nil, nil)
	ctx := context.Background()
	before := inbox.UnreadCount(ctx)

	saved, err := svc.Save(ctx, models.SettingsSectionNotifications, []byte(`{"email":false,"push":true,"mentor_requests":true,"learning_reminders":false,"weekly_digest":true}`))
	require.NoError(t, err)
	assert.Equal(t, models.NotificationSettings{Push: true, MentorRequests: true, WeeklyDigest: true}, saved)
	assert.False(t, svc.LearningRemindersEnabled(ctx))

	assert.Equal(t, before+1, inbox.UnreadCount(ctx))
	list, _ := inbox.List(ctx)
	assert.Equal(t, models.NotificationSystem, list[0].Type)
	assert.Equal(t, "Notifications settings saved successfully!", list[0].Message)
}

func TestSettingsServiceSaveValidation(t *testing.T) {
	svc := NewSettingsService(nil, nil, nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		section string
		payload string
	}{
		{name: "bad email", section: models.SettingsSectionProfile, payload: `{"name":"Jane","email":"nope"}`},
		{name: "missing name", section: models.SettingsSectionProfile, payload: `{"email":"jane@example.com"}`},
		{name: "timeout", section: models.SettingsSectionSecurity, payload: `{"session_timeout":45}`},
		{name: "theme", section: models.SettingsSectionAppearance, payload: `{"theme":"blue"}`},
		{name: "malformed", section: models.SettingsSectionAppearance, payload: `{"theme":`},
		{name: "empty", section: models.SettingsSectionAppearance, payload: ``},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Save(ctx, tc.section, []byte(tc.payload))
			require.Error(t, err)
			assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
		})
	}
	assert.Equal(t, DefaultSettings(), svc.All(ctx), "failed saves leave settings untouched")
}

func TestSettingsServiceUnknownSection(t *testing.T) {
	svc := NewSettingsService(nil, nil, nil)

	_, err := svc.Get(context.Background(), "billing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Status, appErrors.FromError(err).Status)

	_, err = svc.Save(context.Background(), "billing", []byte(`{}`))
	assert.Error(t, err)
}

func TestSettingsServiceToggleTheme(t *testing.T) {
	svc := NewSettingsService(nil, nil, nil)
	ctx := context.Background()

	assert.Equal(t, models.ThemeDark, svc.ToggleTheme(ctx).Theme)
	assert.Equal(t, models.ThemeLight, svc.ToggleTheme(ctx).Theme)
}
