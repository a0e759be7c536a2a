package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greencart/storefront/internal/server/http/dto"
	"github.com/greencart/storefront/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// succeed writes a success envelope with an optional message.
func succeed(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.Envelope{Success: true, Message: message})
}

// fail writes a business-failure envelope. The transport status stays
// 200; clients branch on the success flag.
func fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.Envelope{Success: false, Message: message})
}
