package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hoangtran/portfolio-api/pkg/apperror"
	"github.com/hoangtran/portfolio-api/pkg/logger"
)

// ErrorMiddleware maps errors pushed via c.Error onto the stable outcome
// vocabulary: 400 validation, 404 not found, 500 storage. Nothing is
// swallowed; anything unrecognized surfaces as internal.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.NewInternal("unhandled error", err)
		}

		status := apperror.ToHTTPStatus(appErr)
		if status >= 500 {
			log.Error("Request failed", appErr)
		}

		c.AbortWithStatusJSON(status, appErr.ToJSON())
	}
}
