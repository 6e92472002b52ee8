package models

import "time"

// Comment belongs to a post. ParentCommentID points at an already-existing
// comment on the same post for threaded replies, so reply chains cannot form
// a cycle.
type Comment struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	PostID          uint      `json:"post_id" gorm:"index"`
	UserID          uint      `json:"user_id" gorm:"index"`
	Content         string    `json:"content" gorm:"type:text"`
	ParentCommentID *uint     `json:"parent_comment_id" gorm:"index"`
	CreatedAt       time.Time `json:"created_at"`
}

// CommentView is a comment enriched with author info and like count.
// Threading is returned flat; callers rebuild the tree from ParentCommentID.
type CommentView struct {
	Comment
	AuthorUsername string `json:"author_username"`
	AuthorPicture  string `json:"author_picture"`
	LikeCount      int64  `json:"like_count"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Content         string `json:"content" validate:"required,min=1,max=1000"`
	ParentCommentID *uint  `json:"parent_comment_id"`
}
