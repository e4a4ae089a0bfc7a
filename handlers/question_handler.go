package handlers

import (
	"diskusi-bisnis/helper"
	"diskusi-bisnis/models"
	"diskusi-bisnis/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService services.QuestionService
	Helper          *helper.HTTPHelper
}

func NewQuestionHandler(questionService services.QuestionService, h *helper.HTTPHelper) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, Helper: h}
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	a, err := actor(c)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	var req models.CreateQuestionRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	question, err := h.questionService.CreateQuestion(c.Request.Context(), a, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Question created successfully", question)
}

func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	var params models.QuestionListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query parameters")
		return
	}

	page, err := h.questionService.GetQuestions(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", page)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	question, err := h.questionService.GetQuestion(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", question)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
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
	var req models.UpdateQuestionRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	question, err := h.questionService.UpdateQuestion(c.Request.Context(), a, id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Question updated successfully", question)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
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

	if err := h.questionService.DeleteQuestion(c.Request.Context(), a, id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Question deleted successfully", nil)
}

func (h *QuestionHandler) IncrementView(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	if err := h.questionService.IncrementViews(c.Request.Context(), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", nil)
}

func (h *QuestionHandler) CloseQuestion(c *gin.Context) {
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

	if err := h.questionService.CloseQuestion(c.Request.Context(), a, id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Question closed", nil)
}
