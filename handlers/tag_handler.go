package handlers

import (
	"diskusi-bisnis/helper"
	"diskusi-bisnis/models"
	"diskusi-bisnis/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
	Helper     *helper.HTTPHelper
}

func NewTagHandler(tagService services.TagService, h *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, Helper: h}
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	a, err := actor(c)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	var req models.TagRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), a, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Tag created successfully", tag)
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetTags(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", tags)
}

func (h *TagHandler) GetTag(c *gin.Context) {
	tag, err := h.tagService.GetTag(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "", tag)
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	var req models.TagRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	tag, err := h.tagService.UpdateTag(c.Request.Context(), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Tag updated successfully", tag)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	if err := h.tagService.DeleteTag(c.Request.Context(), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Tag deleted successfully", nil)
}
