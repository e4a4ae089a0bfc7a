package handlers

import (
	"strconv"

	"diskusi-bisnis/middleware"
	"diskusi-bisnis/models"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid %s", name)
	}
	return uint(id), nil
}

// actor returns the authenticated caller. Routes using it sit behind
// AuthMiddleware, so a missing actor is reported as unauthorized.
func actor(c *gin.Context) (models.Actor, error) {
	a, ok := middleware.CurrentActor(c)
	if !ok {
		return models.Actor{}, models.NewUnauthorizedError("User not found in context")
	}
	return a, nil
}
