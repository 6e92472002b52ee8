package repositories

import (
	"time"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations. Mutating
// operations take the acting user's ID and enforce ownership here, so
// authorization lives in one place instead of being duplicated per route.
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetFeed(viewerID uint, limit, offset int, visibility string) ([]models.PostView, error)
	GetPostByID(postID, viewerID uint) (*models.PostView, error)
	GetPostsByUser(userID, viewerID uint, limit, offset int) ([]models.PostView, error)
	GetSavedPosts(viewerID uint, limit, offset int) ([]models.PostView, error)
	UpdatePost(postID, actorID uint, content, postType string) error
	PinPost(postID, actorID uint, pinned bool) error
	DeletePost(postID, actorID uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// postViewQuery builds the shared enrichment query: author info, like and
// comment counts, and the viewer-relative liked/saved flags as correlated
// subqueries.
func postViewQuery(db *gorm.DB, viewerID uint) *gorm.DB {
	return db.
		Table("posts").
		Select(`posts.*,
			users.username AS author_username,
			users.profile_picture AS author_picture,
			(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS like_count,
			(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count,
			EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) AS liked_by_viewer,
			EXISTS(SELECT 1 FROM saved_posts WHERE saved_posts.post_id = posts.id AND saved_posts.user_id = ?) AS saved_by_viewer`,
			viewerID, viewerID).
		Joins("JOIN users ON users.id = posts.user_id")
}

// visibleTo scopes a post query to what the viewer may see: public posts,
// their own posts, and friends-only posts from accepted friends.
func visibleTo(db *gorm.DB, viewerID uint) *gorm.DB {
	return db.Where(`posts.visibility = ?
		OR posts.user_id = ?
		OR (posts.visibility = ? AND EXISTS(
			SELECT 1 FROM friendships
			WHERE friendships.status = ?
			AND ((friendships.user_id_1 = posts.user_id AND friendships.user_id_2 = ?)
			  OR (friendships.user_id_2 = posts.user_id AND friendships.user_id_1 = ?))))`,
		models.VisibilityPublic, viewerID, models.VisibilityFriends,
		models.FriendshipAccepted, viewerID, viewerID)
}

// CreatePost inserts the post and records its hashtag mentions in one
// transaction, so a failed upsert never leaves a post without its links.
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	if post.Visibility == "" {
		post.Visibility = models.VisibilityPublic
	}
	if post.Type == "" {
		post.Type = "text"
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return upsertHashtags(tx, post.ID, post.Content)
	})
}

// GetFeed returns the enriched feed page for a viewer: pinned posts first,
// then newest first. Pagination is offset-based, so concurrent inserts can
// shift page boundaries.
func (r *PostgresPostRepository) GetFeed(viewerID uint, limit, offset int, visibility string) ([]models.PostView, error) {
	q := visibleTo(postViewQuery(r.db, viewerID), viewerID)
	if visibility != "" {
		q = q.Where("posts.visibility = ?", visibility)
	}

	var views []models.PostView
	err := q.
		Order("posts.is_pinned DESC, posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// GetPostByID returns one enriched post. A post outside the viewer's
// visibility scope reads as ErrNotFound, same as a missing one; the owner
// always sees their own posts.
func (r *PostgresPostRepository) GetPostByID(postID, viewerID uint) (*models.PostView, error) {
	var view models.PostView
	res := visibleTo(postViewQuery(r.db, viewerID), viewerID).Where("posts.id = ?", postID).Scan(&view)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &view, nil
}

// GetPostsByUser returns one author's posts visible to the viewer, pinned
// first then newest first.
func (r *PostgresPostRepository) GetPostsByUser(userID, viewerID uint, limit, offset int) ([]models.PostView, error) {
	var views []models.PostView
	err := visibleTo(postViewQuery(r.db, viewerID), viewerID).
		Where("posts.user_id = ?", userID).
		Order("posts.is_pinned DESC, posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// GetSavedPosts returns the viewer's bookmarks, most recently saved first.
func (r *PostgresPostRepository) GetSavedPosts(viewerID uint, limit, offset int) ([]models.PostView, error) {
	var views []models.PostView
	err := postViewQuery(r.db, viewerID).
		Joins("JOIN saved_posts sp ON sp.post_id = posts.id AND sp.user_id = ?", viewerID).
		Order("sp.saved_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// getOwnedPost loads a post and checks the actor owns it.
func getOwnedPost(tx *gorm.DB, postID, actorID uint) (*models.Post, error) {
	var post models.Post
	if err := tx.First(&post, postID).Error; err != nil {
		return nil, translateNotFound(err)
	}
	if post.UserID != actorID {
		return nil, ErrForbidden
	}
	return &post, nil
}

// UpdatePost edits a post's content and type and stamps edited_at. Only the
// owner may edit.
func (r *PostgresPostRepository) UpdatePost(postID, actorID uint, content, postType string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		post, err := getOwnedPost(tx, postID, actorID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		updates := map[string]interface{}{
			"content":   content,
			"edited_at": now,
		}
		if postType != "" {
			updates["type"] = postType
		}
		return tx.Model(post).Updates(updates).Error
	})
}

// PinPost sets or clears the pinned flag on the owner's post.
func (r *PostgresPostRepository) PinPost(postID, actorID uint, pinned bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		post, err := getOwnedPost(tx, postID, actorID)
		if err != nil {
			return err
		}
		return tx.Model(post).Update("is_pinned", pinned).Error
	})
}

// DeletePost removes a post and everything hanging off it: comments, likes on
// the post and on its comments, bookmarks, and hashtag links. The hashtag
// use_count stays untouched (lifetime semantics). Only the owner may delete.
func (r *PostgresPostRepository) DeletePost(postID, actorID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		post, err := getOwnedPost(tx, postID, actorID)
		if err != nil {
			return err
		}

		commentIDs := tx.Model(&models.Comment{}).Select("id").Where("post_id = ?", postID)
		if err := tx.Where("comment_id IN (?)", commentIDs).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.SavedPost{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostHashtag{}).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
}
