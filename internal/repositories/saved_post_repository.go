package repositories

import (
	"errors"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"gorm.io/gorm"
)

// SavedPostRepository defines the interface for bookmark operations
type SavedPostRepository interface {
	ToggleSave(userID, postID uint) (bool, error)
	IsPostSaved(userID, postID uint) (bool, error)
}

// PostgresSavedPostRepository implements SavedPostRepository
type PostgresSavedPostRepository struct {
	db *gorm.DB
}

func NewPostgresSavedPostRepository(db *gorm.DB) *PostgresSavedPostRepository {
	return &PostgresSavedPostRepository{db: db}
}

// ToggleSave flips the viewer's bookmark on a post, same contract as the like
// toggle: the returned bool is the resulting state.
func (r *PostgresSavedPostRepository) ToggleSave(userID, postID uint) (bool, error) {
	saved := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.SavedPost
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
		if err == nil {
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&models.SavedPost{UserID: userID, PostID: postID}).Error; err != nil {
			if isUniqueViolation(err) {
				saved = true
				return nil
			}
			return err
		}
		saved = true
		return nil
	})
	return saved, err
}

// IsPostSaved checks if a user has bookmarked a specific post
func (r *PostgresSavedPostRepository) IsPostSaved(userID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedPost{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error
	return count > 0, err
}
