package handlers

import (
	"diskusi-bisnis/helper"
	"diskusi-bisnis/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService services.NotificationService
	Helper              *helper.HTTPHelper
}

func NewNotificationHandler(notificationService services.NotificationService, h *helper.HTTPHelper) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, Helper: h}
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	a, err := actor(c)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	notifications, err := h.notificationService.List(c.Request.Context(), a.ID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	a, err := actor(c)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	id, err := parseID(c, "id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id, a.ID); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Notification marked as read", nil)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	a, err := actor(c)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	updated, err := h.notificationService.MarkAllRead(c.Request.Context(), a.ID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "All notifications marked as read", gin.H{"updated": updated})
}
