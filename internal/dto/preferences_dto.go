package dto

type UpdatePreferencesRequest struct {
	EmailNotifications *bool `json:"email_notifications_enabled" validate:"required"`
}

type PreferenceResponse struct {
	Email              string `json:"email"`
	EmailNotifications bool   `json:"email_notifications_enabled"`
}
