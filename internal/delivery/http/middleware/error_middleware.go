package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"emplynix-backend/internal/delivery/http/response"
	"emplynix-backend/internal/domain"
	"emplynix-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			var appErr *apperror.AppError
			switch {
			case errors.As(err, &appErr):
				response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			case errors.Is(err, domain.ErrNotFound):
				response.Error(c, http.StatusNotFound, "Resource not found", nil)
			default:
				// Never expose internal error details to clients. Log the
				// actual error server-side and send a generic message.
				slog.Error("unhandled request error", "error", err, "path", c.Request.URL.Path)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
