package handlers

import (
	"fmt"
	"net/http"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FriendshipHandler handles HTTP requests related to friendships
type FriendshipHandler struct {
	friendshipRepository   repositories.FriendshipRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

// NewFriendshipHandler creates a new FriendshipHandler
func NewFriendshipHandler(friendshipRepo repositories.FriendshipRepository, userRepo repositories.UserRepository, notificationRepo repositories.NotificationRepository) *FriendshipHandler {
	return &FriendshipHandler{
		friendshipRepository:   friendshipRepo,
		userRepository:         userRepo,
		notificationRepository: notificationRepo,
	}
}

// RegisterFriendshipRoutes registers friendship-related routes
func (h *FriendshipHandler) RegisterFriendshipRoutes(g *echo.Group) {
	g.POST("/friends/requests", h.SendRequest)
	g.PUT("/friends/requests/:id", h.RespondToRequest)
	g.GET("/friends/requests", h.GetPendingRequests)
	g.GET("/friends", h.GetFriends)
	g.GET("/friends/:id/status", h.GetFriendStatus)
	g.DELETE("/friends/:id", h.RemoveFriend)
}

// SendRequest sends a friend request. A self-request or an existing row for
// the pair in any status is silently rejected with sent=false.
func (h *FriendshipHandler) SendRequest(c echo.Context) error {
	var req models.SendFriendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actorID := currentUserID(c)
	if _, err := h.userRepository.GetUserByID(req.UserID); err != nil {
		return repoError(err, "User not found")
	}

	friendship, sent, err := h.friendshipRepository.SendFriendRequest(actorID, req.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if sent {
		notification := &models.Notification{
			UserID:    req.UserID,
			Content:   fmt.Sprintf("%s sent you a friend request", claimsUsername(c)),
			Type:      models.NotificationFriendRequest,
			RelatedID: &friendship.ID,
		}
		if err := h.notificationRepository.CreateNotification(notification); err != nil {
			c.Logger().Errorf("failed to create friend request notification: %v", err)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"sent": sent})
}

// RespondToRequest accepts or rejects a pending request addressed to the
// authenticated user.
func (h *FriendshipHandler) RespondToRequest(c echo.Context) error {
	friendshipID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req models.RespondFriendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actorID := currentUserID(c)
	updated, err := h.friendshipRepository.RespondToRequest(friendshipID, actorID, req.Status)
	if err != nil {
		return repoError(err, "Friend request not found")
	}

	if updated && req.Status == models.FriendshipAccepted {
		friendship, err := h.friendshipRepository.GetFriendshipByID(friendshipID)
		if err == nil {
			notification := &models.Notification{
				UserID:    friendship.UserID1,
				Content:   fmt.Sprintf("%s accepted your friend request", claimsUsername(c)),
				Type:      models.NotificationFriendAccepted,
				RelatedID: &friendship.ID,
			}
			if err := h.notificationRepository.CreateNotification(notification); err != nil {
				c.Logger().Errorf("failed to create acceptance notification: %v", err)
			}
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"updated": updated})
}

// GetPendingRequests lists the requests waiting on the authenticated user
func (h *FriendshipHandler) GetPendingRequests(c echo.Context) error {
	requests, err := h.friendshipRepository.GetPendingRequests(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, requests)
}

// GetFriends lists the authenticated user's accepted friends
func (h *FriendshipHandler) GetFriends(c echo.Context) error {
	friends, err := h.friendshipRepository.GetFriends(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, friends)
}

// GetFriendStatus reports whether the authenticated user and another user are
// friends.
func (h *FriendshipHandler) GetFriendStatus(c echo.Context) error {
	otherID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	areFriends, err := h.friendshipRepository.AreFriends(currentUserID(c), otherID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"user_id": otherID, "are_friends": areFriends})
}

// RemoveFriend deletes the friendship with another user regardless of who
// requested it.
func (h *FriendshipHandler) RemoveFriend(c echo.Context) error {
	otherID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.friendshipRepository.RemoveFriend(currentUserID(c), otherID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
