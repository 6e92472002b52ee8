package models

import "time"

// Post visibility scopes
const (
	VisibilityPublic  = "public"
	VisibilityFriends = "friends"
	VisibilityPrivate = "private"
)

// Post represents a feed post owned by its author.
type Post struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     uint       `json:"user_id" gorm:"index"`
	Content    string     `json:"content" gorm:"type:text"`
	Type       string     `json:"type" gorm:"size:30;default:'text'"`
	Visibility string     `json:"visibility" gorm:"size:20;default:'public'"`
	ImagePath  string     `json:"image_path"`
	IsPinned   bool       `json:"is_pinned" gorm:"default:false"`
	EditedAt   *time.Time `json:"edited_at"`
	CreatedAt  time.Time  `json:"created_at" gorm:"index"`
}

// PostView is a feed row: the post enriched with author info, counters and
// the viewer-relative liked/saved flags.
type PostView struct {
	Post
	AuthorUsername string `json:"author_username"`
	AuthorPicture  string `json:"author_picture"`
	LikeCount      int64  `json:"like_count"`
	CommentCount   int64  `json:"comment_count"`
	LikedByViewer  bool   `json:"liked_by_viewer"`
	SavedByViewer  bool   `json:"saved_by_viewer"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content    string `json:"content" validate:"required,min=1,max=5000"`
	Type       string `json:"type" validate:"omitempty,max=30"`
	Visibility string `json:"visibility" validate:"omitempty,oneof=public friends private"`
	ImagePath  string `json:"image_path" validate:"omitempty,max=255"`
}

// UpdatePostRequest defines the request body for editing an existing post
type UpdatePostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
	Type    string `json:"type" validate:"omitempty,max=30"`
}
