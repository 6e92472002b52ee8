package models

import "time"

// UserSettings holds per-user preferences, one row per user, created lazily
// on first read.
type UserSettings struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	UserID             uint      `json:"user_id" gorm:"uniqueIndex"`
	EmailNotifications bool      `json:"email_notifications" gorm:"default:true"`
	PrivateProfile     bool      `json:"private_profile" gorm:"default:false"`
	ShowEmail          bool      `json:"show_email" gorm:"default:false"`
	Theme              string    `json:"theme" gorm:"size:20;default:'light'"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UpdateSettingsRequest defines the request body for changing preferences
type UpdateSettingsRequest struct {
	EmailNotifications *bool   `json:"email_notifications"`
	PrivateProfile     *bool   `json:"private_profile"`
	ShowEmail          *bool   `json:"show_email"`
	Theme              *string `json:"theme" validate:"omitempty,oneof=light dark"`
}
