package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yash113gadia/AttendEase-Web/pkg/response"
)

// MustGetUserID extracts the authenticated user's ID from the context.
// If the auth middleware attached no identity it writes a 401 and
// returns false; callers should return immediately when ok is false.
func MustGetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "authentication required")
		return 0, false
	}
	id, ok := v.(int64)
	if !ok || id == 0 {
		response.Unauthorized(c, 10002, "authentication required")
		return 0, false
	}
	return id, true
}

// parseIDParam parses a positive integer path parameter. On failure it
// writes a 400 and returns false.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "invalid "+name)
		return 0, false
	}
	return id, true
}
