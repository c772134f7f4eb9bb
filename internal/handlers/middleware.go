package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"ac_learner/internal/models"

	"github.com/gin-gonic/gin"
)

// operatorKey is the gin context key holding the authenticated operator,
// a models.User carrying the config scope of its token.
const operatorKey = "operator"

const accessTokenParam = "access_token"

// operatorMiddleware authenticates the request and stores the operator
// for the scope checks done by config and state handlers. WebSocket
// clients may pass the token as ?access_token= instead of a header.
func (h *Handler) operatorMiddleware(c *gin.Context) {
	token, problem := bearerToken(c)
	if problem != "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": problem})
		return
	}

	op, err := h.services.ParseToken(token)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_token_rejected", "path", c.FullPath(), "err", err)
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(operatorKey, op)
	c.Next()
}

func bearerToken(c *gin.Context) (token, problem string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		if c.FullPath() == wsPath {
			if t := strings.TrimSpace(c.Query(accessTokenParam)); t != "" {
				return t, ""
			}
		}
		return "", "missing Authorization header"
	}
	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || scheme != "Bearer" || token == "" {
		return "", "invalid Authorization header format"
	}
	return token, ""
}

// operatorFrom returns the operator stored by operatorMiddleware. Routes
// mounted without it see an unscoped operator.
func operatorFrom(c *gin.Context) models.User {
	op, _ := c.Get(operatorKey)
	u, _ := op.(models.User)
	return u
}

// allowConfig answers 403 and returns false when the operator's token does
// not cover the named config.
func (h *Handler) allowConfig(c *gin.Context, name string) bool {
	op := operatorFrom(c)
	if op.MaySend(name) {
		return true
	}
	if h.log != nil {
		h.log.Infow("config_out_of_scope", "operator", op.ID, "config", name, "path", c.FullPath())
	}
	c.JSON(http.StatusForbidden, gin.H{
		"error": fmt.Sprintf("config %q is outside the token scope", name),
	})
	return false
}
