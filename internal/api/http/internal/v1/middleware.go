package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/lovematch/backend/pkg/auth"
	"github.com/lovematch/backend/pkg/logger"
)

const (
	sessionCookie = "token"
	sessionCtx    = "sessionClaims"
)

// sessionMiddleware is the sole authorization check for protected routes:
// a valid signed cookie is accepted, anything else is a 401.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, "Not authorized. Please login again")
		return
	}

	claims, err := h.tokenManager.Parse(token)
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) {
			logger.Error("parse session cookie failed", zap.Error(err))
		}
		errorResponse(c, http.StatusUnauthorized, "Not authorized. Please login again")
		return
	}

	c.Set(sessionCtx, claims)
	c.Next()
}

func (h *Handler) sessionClaims(c *gin.Context) (*auth.SessionClaims, error) {
	value, ok := c.Get(sessionCtx)
	if !ok {
		return nil, errors.New("session claims not found")
	}

	claims, ok := value.(*auth.SessionClaims)
	if !ok {
		return nil, errors.New("session claims have wrong type")
	}

	return claims, nil
}
