package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents a registered campus member.
type User struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Username       string     `json:"username" gorm:"size:50;uniqueIndex"`
	Email          string     `json:"email" gorm:"size:120;uniqueIndex"`
	Password       string     `json:"-"` // bcrypt digest, never serialized
	Major          string     `json:"major" gorm:"size:100"`
	Interests      string     `json:"interests" gorm:"size:255"`
	Bio            string     `json:"bio" gorm:"type:text"`
	StudyLevel     string     `json:"study_level" gorm:"size:30"`
	Campus         string     `json:"campus" gorm:"size:100"`
	StudentNumber  string     `json:"student_number" gorm:"size:30"`
	ProfilePicture string     `json:"profile_picture"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
	LastLogin      *time.Time `json:"last_login"`
	CreatedAt      time.Time  `json:"created_at"`
}

// RegisterRequest defines the request body for creating a new account
type RegisterRequest struct {
	Username      string `json:"username" validate:"required,min=3,max=50"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	Major         string `json:"major" validate:"omitempty,max=100"`
	Interests     string `json:"interests" validate:"omitempty,max=255"`
	Bio           string `json:"bio" validate:"omitempty,max=1000"`
	StudyLevel    string `json:"study_level" validate:"omitempty,max=30"`
	Campus        string `json:"campus" validate:"omitempty,max=100"`
	StudentNumber string `json:"student_number" validate:"omitempty,max=30"`
}

// LoginRequest defines the request body for signing in
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for editing the own profile.
// Only the fields whitelisted by the user repository are applied.
type UpdateProfileRequest struct {
	Major          *string `json:"major" validate:"omitempty,max=100"`
	Interests      *string `json:"interests" validate:"omitempty,max=255"`
	Bio            *string `json:"bio" validate:"omitempty,max=1000"`
	StudyLevel     *string `json:"study_level" validate:"omitempty,max=30"`
	Campus         *string `json:"campus" validate:"omitempty,max=100"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,max=255"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
