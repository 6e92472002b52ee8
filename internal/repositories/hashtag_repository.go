package repositories

import (
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/hashtag"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HashtagRepository defines the interface for hashtag queries
type HashtagRepository interface {
	GetTrending(limit int) ([]models.Hashtag, error)
	GetTagCounts(limit int) ([]models.HashtagCount, error)
	GetPostsByTag(tag string, viewerID uint, limit, offset int) ([]models.PostView, error)
}

// PostgresHashtagRepository implements HashtagRepository
type PostgresHashtagRepository struct {
	db *gorm.DB
}

// NewPostgresHashtagRepository creates a new PostgresHashtagRepository
func NewPostgresHashtagRepository(db *gorm.DB) *PostgresHashtagRepository {
	return &PostgresHashtagRepository{db: db}
}

// upsertHashtags parses the post content and records every mention inside the
// caller's transaction: use_count goes up once per occurrence, the post is
// linked to each distinct tag, and a duplicate link conflict is ignored
// because one post mentioning a tag twice is expected and harmless.
func upsertHashtags(tx *gorm.DB, postID uint, content string) error {
	for _, raw := range hashtag.Extract(content) {
		tag := hashtag.Normalize(raw)

		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tag"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"use_count": gorm.Expr("hashtags.use_count + 1")}),
		}).Create(&models.Hashtag{Tag: tag, UseCount: 1}).Error
		if err != nil {
			return err
		}

		var row models.Hashtag
		if err := tx.Where("tag = ?", tag).First(&row).Error; err != nil {
			return err
		}

		link := models.PostHashtag{PostID: postID, HashtagID: row.ID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetTrending returns the top tags by lifetime use count.
func (r *PostgresHashtagRepository) GetTrending(limit int) ([]models.Hashtag, error) {
	var tags []models.Hashtag
	err := r.db.Order("use_count DESC, tag ASC").Limit(limit).Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTagCounts returns both count interpretations per tag: the stored
// lifetime counter (never decremented when posts are deleted) and the live
// count of posts still linked through post_hashtags.
func (r *PostgresHashtagRepository) GetTagCounts(limit int) ([]models.HashtagCount, error) {
	var counts []models.HashtagCount
	err := r.db.
		Table("hashtags").
		Select(`hashtags.tag,
			hashtags.use_count AS lifetime_count,
			COUNT(post_hashtags.id) AS live_count`).
		Joins("LEFT JOIN post_hashtags ON post_hashtags.hashtag_id = hashtags.id").
		Group("hashtags.id, hashtags.tag, hashtags.use_count").
		Order("hashtags.use_count DESC, hashtags.tag ASC").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// GetPostsByTag lists posts mentioning a tag, newest first, enriched and
// visibility-scoped the same way as the feed.
func (r *PostgresHashtagRepository) GetPostsByTag(tag string, viewerID uint, limit, offset int) ([]models.PostView, error) {
	var views []models.PostView
	err := visibleTo(postViewQuery(r.db, viewerID), viewerID).
		Joins("JOIN post_hashtags ON post_hashtags.post_id = posts.id").
		Joins("JOIN hashtags ON hashtags.id = post_hashtags.hashtag_id").
		Where("hashtags.tag = ?", hashtag.Normalize(tag)).
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}
