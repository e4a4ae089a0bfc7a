package middleware

import (
	"errors"
	"strings"

	"diskusi-bisnis/helper"
	"diskusi-bisnis/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

var errInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID uint        `json:"user_id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(secret []byte, h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			h.SendUnauthorizedError(c, "Authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			h.SendUnauthorizedError(c, "Bearer token required")
			return
		}

		claims, err := parseToken(tokenString, secret)
		if err != nil {
			h.SendUnauthorizedError(c, "Invalid or expired token")
			return
		}

		setActor(c, claims)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and lets
// anonymous requests through otherwise.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if tokenString := strings.TrimPrefix(authHeader, "Bearer "); tokenString != authHeader {
			if claims, err := parseToken(tokenString, secret); err == nil {
				setActor(c, claims)
			}
		}
		c.Next()
	}
}

func RequireRole(h *helper.HTTPHelper, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			h.SendUnauthorizedError(c, "User role not found")
			return
		}

		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		h.SendForbiddenError(c, "Insufficient permissions")
	}
}

// CurrentActor returns the authenticated caller set by the auth middleware.
func CurrentActor(c *gin.Context) (models.Actor, bool) {
	id, ok := c.Get(ctxUserID)
	if !ok {
		return models.Actor{}, false
	}
	role, _ := c.Get(ctxRole)
	userID, _ := id.(uint)
	r, _ := role.(models.Role)
	return models.Actor{ID: userID, Role: r}, userID != 0
}

func setActor(c *gin.Context, claims *Claims) {
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxRole, claims.Role)
}

func parseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, errInvalidToken
	}
	return claims, nil
}
