package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/coursemanager/internal/app/models/dto"
	"github.com/yigit/coursemanager/internal/app/repositories"
)

const sessionKey = "session"

// Session opens one unit of work per request and releases it after the
// handler chain returns, rolling back anything the handler did not save.
func Session(uow repositories.UnitOfWork, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sess, err := uow.Begin(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to open session")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Storage unavailable")))
			return
		}

		defer func() {
			if rbErr := sess.Rollback(ctx); rbErr != nil {
				logger.Warn().Err(rbErr).Msg("Failed to release session")
			}
		}()

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFrom returns the request's session. It panics when the Session
// middleware is not installed on the route.
func SessionFrom(c *gin.Context) repositories.Session {
	return c.MustGet(sessionKey).(repositories.Session)
}
