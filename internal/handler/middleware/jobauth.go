package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"leafdeals/internal/handler/httperr"
	"leafdeals/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errBadJobCredential = errs.New("invalid job trigger credential")

// JobAuthMiddleware guards the job trigger endpoints with a shared secret.
// Triggers are operational endpoints, not user-facing ones, so a bearer
// secret compared in constant time is the whole scheme.
type JobAuthMiddleware struct {
	secret string
}

func NewJobAuthMiddleware(secret string) *JobAuthMiddleware {
	return &JobAuthMiddleware{secret: secret}
}

func (m *JobAuthMiddleware) RequireTriggerSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || m.secret == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(m.secret)) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized, errBadJobCredential, "Unauthorized", nil)
			return
		}
		c.Next()
	}
}
