package models

import "time"

// SavedPost represents a bookmarked post, toggled like a Like.
type SavedPost struct {
	ID      uint      `json:"id" gorm:"primaryKey"`
	UserID  uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_post_save"`
	PostID  uint      `json:"post_id" gorm:"index;uniqueIndex:idx_user_post_save"`
	SavedAt time.Time `json:"saved_at" gorm:"autoCreateTime"`
}
