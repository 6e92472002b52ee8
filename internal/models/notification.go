package models

import "time"

// Notification types emitted as side effects of other operations
const (
	NotificationFriendRequest  = "friend_request"
	NotificationFriendAccepted = "friend_accepted"
	NotificationPostLike       = "post_like"
	NotificationPostComment    = "post_comment"
	NotificationMessage        = "message"
)

// Notification represents a user notification
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Content   string    `json:"content"`
	Type      string    `json:"type" gorm:"size:30;index"`
	RelatedID *uint     `json:"related_id"`
	IsRead    bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
