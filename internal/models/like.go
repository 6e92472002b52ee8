package models

import "time"

// Like is a polymorphic association: exactly one of PostID or CommentID is
// set. The composite unique indexes back the toggle operations, so a
// concurrent duplicate insert fails instead of leaving two rows.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_post_like;uniqueIndex:idx_user_comment_like"`
	PostID    *uint     `json:"post_id" gorm:"index;uniqueIndex:idx_user_post_like"`
	CommentID *uint     `json:"comment_id" gorm:"index;uniqueIndex:idx_user_comment_like"`
	CreatedAt time.Time `json:"created_at"`
}
