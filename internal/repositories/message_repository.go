package repositories

import (
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"gorm.io/gorm"
)

// MessageRepository defines the interface for private-message operations
type MessageRepository interface {
	SendMessage(message *models.Message) error
	GetConversation(a, b uint, limit int) ([]models.Message, error)
	GetConversations(userID uint) ([]models.ConversationSummary, error)
	MarkConversationRead(userID, otherID uint) error
	CountUnread(userID uint) (int64, error)
}

// PostgresMessageRepository implements MessageRepository for PostgreSQL
type PostgresMessageRepository struct {
	db *gorm.DB
}

// NewPostgresMessageRepository creates a new PostgresMessageRepository
func NewPostgresMessageRepository(db *gorm.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

// SendMessage stores a new directional message
func (r *PostgresMessageRepository) SendMessage(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetConversation merges both directions between two users, newest first.
func (r *PostgresMessageRepository) GetConversation(a, b uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			a, b, b, a).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// GetConversations returns one summary per counterpart the user has messaged
// with: last message, its time, and how many received messages are unread.
// The counterpart is a computed column, so the grouping runs as raw SQL.
func (r *PostgresMessageRepository) GetConversations(userID uint) ([]models.ConversationSummary, error) {
	var summaries []models.ConversationSummary
	err := r.db.Raw(`
		SELECT grouped.other_user_id,
		       users.username AS other_username,
		       users.profile_picture AS other_picture,
		       last.content AS last_content,
		       grouped.last_message_at,
		       grouped.unread_count
		FROM (
			SELECT CASE WHEN sender_id = @uid THEN receiver_id ELSE sender_id END AS other_user_id,
			       MAX(created_at) AS last_message_at,
			       COUNT(*) FILTER (WHERE receiver_id = @uid AND is_read = false) AS unread_count
			FROM messages
			WHERE sender_id = @uid OR receiver_id = @uid
			GROUP BY 1
		) grouped
		JOIN users ON users.id = grouped.other_user_id
		JOIN LATERAL (
			SELECT content FROM messages
			WHERE (sender_id = @uid AND receiver_id = grouped.other_user_id)
			   OR (sender_id = grouped.other_user_id AND receiver_id = @uid)
			ORDER BY created_at DESC
			LIMIT 1
		) last ON true
		ORDER BY grouped.last_message_at DESC`,
		map[string]interface{}{"uid": userID}).
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// MarkConversationRead flips is_read on every message the user received from
// the other participant.
func (r *PostgresMessageRepository) MarkConversationRead(userID, otherID uint) error {
	return r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = false", userID, otherID).
		Update("is_read", true).Error
}

// CountUnread returns the user's total unread message count across all
// conversations.
func (r *PostgresMessageRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = false", userID).
		Count(&count).Error
	return count, err
}
