package handlers

import (
	"diskusi-bisnis/helper"
	"diskusi-bisnis/models"
	"diskusi-bisnis/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	a, err := actor(c)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	var req models.CreateCommentRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), a, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Comment added successfully", comment)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
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
	var req models.UpdateContentRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), a, id, req.Content)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment updated successfully", comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
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

	if err := h.commentService.DeleteComment(c.Request.Context(), a, id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment deleted successfully", nil)
}
