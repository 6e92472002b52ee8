package models

import "time"

// Message is a directional private message between two users.
type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   uint      `json:"sender_id" gorm:"index"`
	ReceiverID uint      `json:"receiver_id" gorm:"index"`
	Content    string    `json:"content" gorm:"type:text"`
	IsRead     bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

// ConversationSummary is one row per counterpart in the inbox view: who the
// conversation is with, the last message, and how many received messages are
// still unread.
type ConversationSummary struct {
	OtherUserID   uint      `json:"other_user_id"`
	OtherUsername string    `json:"other_username"`
	OtherPicture  string    `json:"other_picture"`
	LastContent   string    `json:"last_content"`
	LastMessageAt time.Time `json:"last_message_at"`
	UnreadCount   int64     `json:"unread_count"`
}

// SendMessageRequest defines the request body for sending a message
type SendMessageRequest struct {
	ReceiverID uint   `json:"receiver_id" validate:"required"`
	Content    string `json:"content" validate:"required,min=1,max=2000"`
}
