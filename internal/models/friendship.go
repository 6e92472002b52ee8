package models

import "time"

// Friendship statuses
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipRejected = "rejected"
)

// Friendship is an unordered pair of users. UserID1 is always the requester.
// At most one row exists per pair; symmetric queries must check both
// orderings.
type Friendship struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID1   uint      `json:"user_id_1" gorm:"index;uniqueIndex:idx_friend_pair"`
	UserID2   uint      `json:"user_id_2" gorm:"index;uniqueIndex:idx_friend_pair"`
	Status    string    `json:"status" gorm:"size:20;default:'pending'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FriendRequestView is a pending request seen from the receiving side.
type FriendRequestView struct {
	FriendshipID      uint      `json:"friendship_id"`
	RequesterID       uint      `json:"requester_id"`
	RequesterUsername string    `json:"requester_username"`
	RequesterPicture  string    `json:"requester_picture"`
	RequestedAt       time.Time `json:"requested_at"`
}

// SendFriendRequest defines the request body for sending a friend request
type SendFriendRequest struct {
	UserID uint `json:"user_id" validate:"required"`
}

// RespondFriendRequest defines the request body for answering a request
type RespondFriendRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}
