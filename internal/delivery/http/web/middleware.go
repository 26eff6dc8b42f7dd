package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"
	requestIDCtxKey = "request_id"
)

func (h *handlerImpl) HandleRequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			h.logger.Error().
				Err(err).
				Msg("failed to generate request id")
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		requestID = id.String()
	}

	c.Set(requestIDCtxKey, requestID)
	c.Header(requestIDHeader, requestID)
	c.Next()
}
