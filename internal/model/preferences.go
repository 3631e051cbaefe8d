package model

import "strings"

// UserPreference is one row of the User_Preferences sheet, keyed by email.
// Booleans are stored as "TRUE"/"FALSE" strings (sheet convention).
type UserPreference struct {
	Email              string
	EmailNotifications bool
}

// PreferenceColumns is the canonical column order of the User_Preferences sheet.
var PreferenceColumns = []string{"user_email", "email_notifications_enabled"}

func PreferenceFromRow(row map[string]string) UserPreference {
	return UserPreference{
		Email:              row["user_email"],
		EmailNotifications: strings.EqualFold(row["email_notifications_enabled"], "TRUE"),
	}
}

func (p UserPreference) ToRow() map[string]string {
	enabled := "FALSE"
	if p.EmailNotifications {
		enabled = "TRUE"
	}
	return map[string]string{
		"user_email":                  p.Email,
		"email_notifications_enabled": enabled,
	}
}
