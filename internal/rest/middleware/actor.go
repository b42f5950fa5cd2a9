package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Actor reads the authenticated user id set by the upstream gateway.
// Authentication itself happens outside this service; requests arriving here
// are already verified, the header only carries the identity forward.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("X-User-ID")
		uid, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || uid < 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "user not authenticated"})
			return
		}
		c.Set("user_id", uid)
		c.Next()
	}
}
