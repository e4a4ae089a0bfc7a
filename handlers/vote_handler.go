package handlers

import (
	"net/http"

	"diskusi-bisnis/helper"
	"diskusi-bisnis/models"
	"diskusi-bisnis/services"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteService services.VoteService
	Helper      *helper.HTTPHelper
}

func NewVoteHandler(voteService services.VoteService, h *helper.HTTPHelper) *VoteHandler {
	return &VoteHandler{voteService: voteService, Helper: h}
}

var voteMessages = map[models.VoteResult]string{
	models.VoteCreated: "Vote recorded",
	models.VoteUpdated: "Vote updated",
	models.VoteRemoved: "Vote removed",
}

// CastVote answers 201 when a new vote row is created and 200 otherwise.
func (h *VoteHandler) CastVote(c *gin.Context) {
	a, err := actor(c)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	var req models.CastVoteRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}
	kind, err := models.ParseTargetKind(req.VotableType)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	target := models.Target{Kind: kind, ID: req.VotableID}
	outcome, err := h.voteService.CastVote(c.Request.Context(), a, target, models.VoteType(req.VoteType))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	code := http.StatusOK
	if outcome.Result == models.VoteCreated {
		code = http.StatusCreated
	}
	h.Helper.SendResponse(c, code, voteMessages[outcome.Result], outcome)
}

func (h *VoteHandler) RemoveVote(c *gin.Context) {
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

	if err := h.voteService.RemoveVote(c.Request.Context(), a, id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Vote removed", nil)
}
