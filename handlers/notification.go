package handlers

import (
	"net/http"

	"smartpark/services/notification"
	"smartpark/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the notifications screen.
type NotificationHandler struct {
	Svc notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

// List returns the caller's notifications, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	notifications, err := h.Svc.ListForUser(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// Dismiss deletes one of the caller's notifications.
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.Svc.Dismiss(c.Param("id"), userID); err != nil {
		utils.JSONError(c, http.StatusNotFound, "notification not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "dismissed"})
}

// MarkAsLeft records that the driver left the slot. In the current design it
// is equivalent to dismissing the notification.
func (h *NotificationHandler) MarkAsLeft(c *gin.Context) {
	h.Dismiss(c)
}
