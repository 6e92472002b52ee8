package repositories

import (
	"errors"
	"strings"
	"time"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	Authenticate(username, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateProfile(userID uint, fields map[string]interface{}) (bool, error)
	SearchUsers(query string, limit int) ([]models.User, error)
	DeactivateUser(userID uint) error
	GetSettings(userID uint) (*models.UserSettings, error)
	UpdateSettings(userID uint, req *models.UpdateSettingsRequest) (*models.UserSettings, error)
}

// profileFields are the only columns UpdateProfile may touch. Unknown keys
// are ignored, not errors.
var profileFields = map[string]bool{
	"major":           true,
	"interests":       true,
	"bio":             true,
	"study_level":     true,
	"campus":          true,
	"profile_picture": true,
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user. A username or email collision surfaces as
// ErrDuplicate rather than a raw driver error.
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Authenticate looks up an active user by username and verifies the password
// digest. It returns ErrNotFound on any mismatch without revealing whether
// the username, the password, or the active flag failed.
func (r *PostgresUserRepository) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ? AND is_active = ?", username, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrNotFound
	}

	now := time.Now().UTC()
	if err := r.db.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	user.LastLogin = &now
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &user, nil
}

// UpdateProfile applies the whitelisted subset of fields to a user's profile.
// It returns false when nothing updatable was supplied or no row changed.
func (r *PostgresUserRepository) UpdateProfile(userID uint, fields map[string]interface{}) (bool, error) {
	updates := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if profileFields[key] {
			updates[key] = value
		}
	}
	if len(updates) == 0 {
		return false, nil
	}

	res := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// likeEscaper neutralizes LIKE metacharacters so a search for "%" or "_"
// matches those literal characters instead of acting as a wildcard.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchUsers performs a case-insensitive substring match over username,
// major and interests, ordered by username ascending.
func (r *PostgresUserRepository) SearchUsers(query string, limit int) ([]models.User, error) {
	var users []models.User
	pattern := "%" + likeEscaper.Replace(query) + "%"
	err := r.db.
		Where("username ILIKE ? OR major ILIKE ? OR interests ILIKE ?", pattern, pattern, pattern).
		Order("username ASC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// DeactivateUser soft-disables an account. Users are never hard-deleted so
// their posts and messages keep a valid owner.
func (r *PostgresUserRepository) DeactivateUser(userID uint) error {
	res := r.db.Model(&models.User{}).Where("id = ?", userID).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetSettings returns the user's settings row, creating the defaults on
// first access.
func (r *PostgresUserRepository) GetSettings(userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := r.db.Where("user_id = ?", userID).First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = models.UserSettings{UserID: userID, EmailNotifications: true, Theme: "light"}
	if err := r.db.Create(&settings).Error; err != nil {
		if isUniqueViolation(err) {
			// Lost a race with a concurrent first access; the row exists now.
			if err := r.db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
				return nil, err
			}
			return &settings, nil
		}
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings applies the non-nil preference changes and returns the
// resulting settings row.
func (r *PostgresUserRepository) UpdateSettings(userID uint, req *models.UpdateSettingsRequest) (*models.UserSettings, error) {
	settings, err := r.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	if req.EmailNotifications != nil {
		settings.EmailNotifications = *req.EmailNotifications
	}
	if req.PrivateProfile != nil {
		settings.PrivateProfile = *req.PrivateProfile
	}
	if req.ShowEmail != nil {
		settings.ShowEmail = *req.ShowEmail
	}
	if req.Theme != nil {
		settings.Theme = *req.Theme
	}

	if err := r.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
