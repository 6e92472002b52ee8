package handlers

import (
	"fmt"
	"net/http"

	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/models"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/internal/repositories"
	"github.com/Odin-Troli19/UIS-CONNECT-PROJECT/pkg/config"
	"github.com/labstack/echo/v4"
)

// MessageHandler handles HTTP requests related to private messages
type MessageHandler struct {
	messageRepository      repositories.MessageRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
	cfg                    *config.Config
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository, notificationRepo repositories.NotificationRepository, cfg *config.Config) *MessageHandler {
	return &MessageHandler{
		messageRepository:      messageRepo,
		userRepository:         userRepo,
		notificationRepository: notificationRepo,
		cfg:                    cfg,
	}
}

// RegisterMessageRoutes registers messaging-related routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.POST("/messages", h.SendMessage)
	g.GET("/messages/conversations", h.GetConversations)
	g.GET("/messages/conversations/:user_id", h.GetConversation)
	g.PUT("/messages/conversations/:user_id/read", h.MarkConversationRead)
	g.GET("/messages/unread-count", h.GetUnreadCount)
}

// SendMessage sends a private message and notifies the receiver
func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actorID := currentUserID(c)
	if req.ReceiverID == actorID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot message yourself")
	}
	if _, err := h.userRepository.GetUserByID(req.ReceiverID); err != nil {
		return repoError(err, "Receiver not found")
	}

	message := &models.Message{
		SenderID:   actorID,
		ReceiverID: req.ReceiverID,
		Content:    sanitizeContent(req.Content),
	}
	if err := h.messageRepository.SendMessage(message); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	notification := &models.Notification{
		UserID:    req.ReceiverID,
		Content:   fmt.Sprintf("New message from %s", claimsUsername(c)),
		Type:      models.NotificationMessage,
		RelatedID: &message.ID,
	}
	if err := h.notificationRepository.CreateNotification(notification); err != nil {
		c.Logger().Errorf("failed to create message notification: %v", err)
	}

	return c.JSON(http.StatusCreated, message)
}

// GetConversations lists the authenticated user's conversations, one summary
// per counterpart with last-message time and unread count.
func (h *MessageHandler) GetConversations(c echo.Context) error {
	summaries, err := h.messageRepository.GetConversations(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, summaries)
}

// GetConversation returns both directions of the exchange with another user,
// newest first.
func (h *MessageHandler) GetConversation(c echo.Context) error {
	otherID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	limit, _ := pagination(c, h.cfg.MessagesPerPage)
	messages, err := h.messageRepository.GetConversation(currentUserID(c), otherID, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, messages)
}

// MarkConversationRead marks every message received from the other user as
// read.
func (h *MessageHandler) MarkConversationRead(c echo.Context) error {
	otherID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	if err := h.messageRepository.MarkConversationRead(currentUserID(c), otherID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// GetUnreadCount returns the total number of unread messages
func (h *MessageHandler) GetUnreadCount(c echo.Context) error {
	count, err := h.messageRepository.CountUnread(currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"unread_count": count})
}
