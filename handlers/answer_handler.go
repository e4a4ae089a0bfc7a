package handlers

import (
	"diskusi-bisnis/helper"
	"diskusi-bisnis/models"
	"diskusi-bisnis/services"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerService services.AnswerService
	Helper        *helper.HTTPHelper
}

func NewAnswerHandler(answerService services.AnswerService, h *helper.HTTPHelper) *AnswerHandler {
	return &AnswerHandler{answerService: answerService, Helper: h}
}

func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	a, err := actor(c)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	var req models.CreateAnswerRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	answer, err := h.answerService.CreateAnswer(c.Request.Context(), a, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Answer posted successfully", answer)
}

func (h *AnswerHandler) UpdateAnswer(c *gin.Context) {
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

	answer, err := h.answerService.UpdateAnswer(c.Request.Context(), a, id, req.Content)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Answer updated successfully", answer)
}

func (h *AnswerHandler) DeleteAnswer(c *gin.Context) {
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

	if err := h.answerService.DeleteAnswer(c.Request.Context(), a, id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Answer deleted successfully", nil)
}

func (h *AnswerHandler) AcceptAnswer(c *gin.Context) {
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

	answer, err := h.answerService.AcceptAnswer(c.Request.Context(), a, id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Answer accepted", answer)
}
