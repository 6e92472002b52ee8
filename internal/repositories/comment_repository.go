package repositories

import (
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsByPostID(postID uint) ([]models.CommentView, error)
	DeleteComment(commentID, actorID uint) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment inserts a comment. A reply's parent must already exist on the
// same post, which keeps reply chains acyclic.
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, comment.PostID).Error; err != nil {
			return translateNotFound(err)
		}

		if comment.ParentCommentID != nil {
			var parent models.Comment
			err := tx.Where("id = ? AND post_id = ?", *comment.ParentCommentID, comment.PostID).
				First(&parent).Error
			if err != nil {
				return translateNotFound(err)
			}
		}

		return tx.Create(comment).Error
	})
}

// GetCommentByID retrieves a comment by ID
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &comment, nil
}

// GetCommentsByPostID retrieves all comments for a post in timestamp order,
// enriched with author info and like counts. The list is flat; callers
// rebuild threads from parent_comment_id.
func (r *PostgresCommentRepository) GetCommentsByPostID(postID uint) ([]models.CommentView, error) {
	var views []models.CommentView
	err := r.db.
		Table("comments").
		Select(`comments.*,
			users.username AS author_username,
			users.profile_picture AS author_picture,
			(SELECT COUNT(*) FROM likes WHERE likes.comment_id = comments.id) AS like_count`).
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// DeleteComment removes a comment, every reply below it (replies can nest),
// and the likes on all of them. Only the comment's author may delete it.
func (r *PostgresCommentRepository) DeleteComment(commentID, actorID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, commentID).Error; err != nil {
			return translateNotFound(err)
		}
		if comment.UserID != actorID {
			return ErrForbidden
		}

		var threadIDs []uint
		err := tx.Raw(`
			WITH RECURSIVE thread AS (
				SELECT id FROM comments WHERE id = ?
				UNION ALL
				SELECT c.id FROM comments c JOIN thread ON c.parent_comment_id = thread.id
			)
			SELECT id FROM thread`, commentID).Scan(&threadIDs).Error
		if err != nil {
			return err
		}

		if err := tx.Where("comment_id IN ?", threadIDs).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", threadIDs).Delete(&models.Comment{}).Error
	})
}
