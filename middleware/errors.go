package middleware

import (
	"errors"
	"log"
	"net/http"

	"recaptcharelay/model"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/status"
)

// ErrorMiddleware renders the last error a handler attached with c.Error.
// Missing or malformed parameters map to 400, anything else to 500.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		requestID := c.GetString(RequestIDKey)

		var missing *model.MissingParameterError
		if errors.As(last.Err, &missing) || last.IsType(gin.ErrorTypeBind) {
			log.Printf("[%s] rejected request: %v", requestID, last.Err)
			c.JSON(http.StatusBadRequest, gin.H{"error": last.Err.Error()})
			return
		}

		if st, ok := status.FromError(last.Err); ok {
			log.Printf("[%s] assessment failed with code %s: %s", requestID, st.Code(), st.Message())
		} else {
			log.Printf("[%s] assessment failed: %v", requestID, last.Err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": last.Err.Error()})
	}
}
