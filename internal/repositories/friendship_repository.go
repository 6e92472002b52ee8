package repositories

import (
	"errors"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"gorm.io/gorm"
)

// FriendshipRepository defines the interface for friendship data operations.
// A friendship is an unordered pair with user_id_1 always the requester, so
// symmetric lookups must check both orderings.
type FriendshipRepository interface {
	SendFriendRequest(fromID, toID uint) (*models.Friendship, bool, error)
	GetFriendshipByID(id uint) (*models.Friendship, error)
	RespondToRequest(friendshipID, actorID uint, status string) (bool, error)
	GetFriends(userID uint) ([]models.User, error)
	AreFriends(a, b uint) (bool, error)
	RemoveFriend(a, b uint) error
	GetPendingRequests(userID uint) ([]models.FriendRequestView, error)
}

// PostgresFriendshipRepository implements FriendshipRepository for PostgreSQL
type PostgresFriendshipRepository struct {
	db *gorm.DB
}

// NewPostgresFriendshipRepository creates a new PostgresFriendshipRepository
func NewPostgresFriendshipRepository(db *gorm.DB) *PostgresFriendshipRepository {
	return &PostgresFriendshipRepository{db: db}
}

// pairScope matches the friendship row for an unordered pair.
func pairScope(db *gorm.DB, a, b uint) *gorm.DB {
	return db.Where("(user_id_1 = ? AND user_id_2 = ?) OR (user_id_1 = ? AND user_id_2 = ?)",
		a, b, b, a)
}

// SendFriendRequest creates a pending request from one user to another. The
// returned bool is false, with no error, when the request is silently
// rejected: self-requests and pairs that already have a row in any status.
func (r *PostgresFriendshipRepository) SendFriendRequest(fromID, toID uint) (*models.Friendship, bool, error) {
	if fromID == toID {
		return nil, false, nil
	}

	var friendship *models.Friendship
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Friendship
		err := pairScope(tx, fromID, toID).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row := models.Friendship{UserID1: fromID, UserID2: toID, Status: models.FriendshipPending}
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				// Lost a race with the mirror-image request.
				return nil
			}
			return err
		}
		friendship = &row
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return friendship, created, nil
}

// GetFriendshipByID retrieves a friendship row by ID
func (r *PostgresFriendshipRepository) GetFriendshipByID(id uint) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.First(&friendship, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &friendship, nil
}

// RespondToRequest accepts or rejects a pending request. Only the requested
// side may answer, and only with "accepted" or "rejected". The returned bool
// is false when the request was not pending anymore.
func (r *PostgresFriendshipRepository) RespondToRequest(friendshipID, actorID uint, status string) (bool, error) {
	if status != models.FriendshipAccepted && status != models.FriendshipRejected {
		return false, ErrInvalidStatus
	}

	updated := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var friendship models.Friendship
		if err := tx.First(&friendship, friendshipID).Error; err != nil {
			return translateNotFound(err)
		}
		if friendship.UserID2 != actorID {
			return ErrForbidden
		}
		if friendship.Status != models.FriendshipPending {
			return nil
		}

		if err := tx.Model(&friendship).Update("status", status).Error; err != nil {
			return err
		}
		updated = true
		return nil
	})
	return updated, err
}

// GetFriends returns all accepted friends of a user, from both orderings of
// the pair, ordered by username.
func (r *PostgresFriendshipRepository) GetFriends(userID uint) ([]models.User, error) {
	var friends []models.User
	err := r.db.
		Table("users").
		Joins(`JOIN friendships ON friendships.status = ?
			AND ((friendships.user_id_1 = ? AND friendships.user_id_2 = users.id)
			  OR (friendships.user_id_2 = ? AND friendships.user_id_1 = users.id))`,
			models.FriendshipAccepted, userID, userID).
		Order("users.username ASC").
		Find(&friends).Error
	if err != nil {
		return nil, err
	}
	return friends, nil
}

// AreFriends reports whether an accepted friendship exists between two users.
func (r *PostgresFriendshipRepository) AreFriends(a, b uint) (bool, error) {
	var count int64
	err := pairScope(r.db.Model(&models.Friendship{}), a, b).
		Where("status = ?", models.FriendshipAccepted).
		Count(&count).Error
	return count > 0, err
}

// RemoveFriend deletes the friendship row for a pair regardless of who
// requested it. Removing a non-existent friendship is a no-op.
func (r *PostgresFriendshipRepository) RemoveFriend(a, b uint) error {
	return pairScope(r.db, a, b).Delete(&models.Friendship{}).Error
}

// GetPendingRequests returns the requests waiting on a user's answer, with
// requester info, oldest first.
func (r *PostgresFriendshipRepository) GetPendingRequests(userID uint) ([]models.FriendRequestView, error) {
	var requests []models.FriendRequestView
	err := r.db.
		Table("friendships").
		Select(`friendships.id AS friendship_id,
			users.id AS requester_id,
			users.username AS requester_username,
			users.profile_picture AS requester_picture,
			friendships.created_at AS requested_at`).
		Joins("JOIN users ON users.id = friendships.user_id_1").
		Where("friendships.user_id_2 = ? AND friendships.status = ?", userID, models.FriendshipPending).
		Order("friendships.created_at ASC").
		Scan(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
