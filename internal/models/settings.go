package models

// Settings sections exposed by the settings store.
const (
	SettingsSectionProfile       = "profile"
	SettingsSectionNotifications = "notifications"
	SettingsSectionSecurity      = "security"
	SettingsSectionAppearance    = "appearance"
)

// Themes supported by the appearance section.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ProfileSettings holds the learner's public profile.
type ProfileSettings struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Bio      string `json:"bio" validate:"max=500"`
	Location string `json:"location" validate:"max=120"`
	Website  string `json:"website" validate:"omitempty,url"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
}

// NotificationSettings toggles notification categories.
type NotificationSettings struct {
	Email             bool `json:"email"`
	Push              bool `json:"push"`
	MentorRequests    bool `json:"mentor_requests"`
	LearningReminders bool `json:"learning_reminders"`
	WeeklyDigest      bool `json:"weekly_digest"`
}

// SecuritySettings holds account protection preferences.
type SecuritySettings struct {
	TwoFactor         bool `json:"two_factor"`
	EmailVerification bool `json:"email_verification"`
	SessionTimeout    int  `json:"session_timeout" validate:"oneof=15 30 60 120"`
}

// AppearanceSettings holds the UI theme.
type AppearanceSettings struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// UserSettings aggregates every settings section.
type UserSettings struct {
	Profile       ProfileSettings      `json:"profile"`
	Notifications NotificationSettings `json:"notifications"`
	Security      SecuritySettings     `json:"security"`
	Appearance    AppearanceSettings   `json:"appearance"`
}
