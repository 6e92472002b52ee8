package repositories

import (
	"errors"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations. Toggles run
// in a transaction and lean on the (user, target) unique indexes, so a
// concurrent duplicate toggle resolves to "already in that state" instead of
// a second row.
type LikeRepository interface {
	TogglePostLike(postID, userID uint) (bool, error)
	ToggleCommentLike(commentID, userID uint) (bool, error)
	CountPostLikes(postID uint) (int64, error)
	CountCommentLikes(commentID uint) (int64, error)
	HasUserLikedPost(postID, userID uint) (bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// TogglePostLike flips the viewer's like on a post. The returned bool is the
// resulting state: true when the post is now liked.
func (r *PostgresLikeRepository) TogglePostLike(postID, userID uint) (bool, error) {
	liked := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
		if err == nil {
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		like := models.Like{UserID: userID, PostID: &postID}
		if err := tx.Create(&like).Error; err != nil {
			if isUniqueViolation(err) {
				// Concurrent toggle won the insert; the like exists.
				liked = true
				return nil
			}
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

// ToggleCommentLike flips the viewer's like on a comment.
func (r *PostgresLikeRepository) ToggleCommentLike(commentID, userID uint) (bool, error) {
	liked := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).First(&existing).Error
		if err == nil {
			return tx.Delete(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		like := models.Like{UserID: userID, CommentID: &commentID}
		if err := tx.Create(&like).Error; err != nil {
			if isUniqueViolation(err) {
				liked = true
				return nil
			}
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

// CountPostLikes returns the number of likes on a post
func (r *PostgresLikeRepository) CountPostLikes(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// CountCommentLikes returns the number of likes on a comment
func (r *PostgresLikeRepository) CountCommentLikes(commentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("comment_id = ?", commentID).Count(&count).Error
	return count, err
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *PostgresLikeRepository) HasUserLikedPost(postID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error
	return count > 0, err
}
