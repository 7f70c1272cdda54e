package middleware

import (
	"errors"
	"net/http"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Warn("Request failed",
					"request_id", GetRequestID(c),
					"status", appErr.Code,
					"error", appErr.Err,
				)
			}
			if appErr.Data != nil {
				response.Failure(c, appErr.Code, appErr.Message, appErr.Data)
				return
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Internal details stay in the logs
		logger.Log.Error("Internal server error", "request_id", GetRequestID(c), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
