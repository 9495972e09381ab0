package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yash113gadia/AttendEase-Web/internal/model"
	"github.com/yash113gadia/AttendEase-Web/internal/repository"
	"github.com/yash113gadia/AttendEase-Web/pkg/jwt"
	"github.com/yash113gadia/AttendEase-Web/pkg/redis"
	"github.com/yash113gadia/AttendEase-Web/pkg/response"
)

// Context keys set by Authenticate for downstream handlers.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// Authenticate extracts and verifies the bearer token from
// Authorization: Bearer <token>. A missing, malformed, expired, or
// blacklisted token never aborts the request: it simply proceeds
// anonymously, with no identity in the context. Role checks happen in
// RequireRole, not here.
//
// rdb may be nil; the blacklist check is skipped then.
func Authenticate(jwtMgr *jwt.Manager, userRepo repository.UserRepository, rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			// Invalid and expired tokens degrade to anonymous.
			c.Next()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Warn("blacklist lookup failed", zap.Error(err))
			} else if blacklisted {
				c.Next()
				return
			}
		}

		user, err := userRepo.GetByUsername(c.Request.Context(), claims.Username)
		if err != nil {
			if !isNotFound(err) {
				logger.Error("resolve token identity failed", zap.Error(err))
			}
			// A token for a since-deleted user is treated as anonymous.
			c.Next()
			return
		}

		c.Set(CtxUserID, user.ID)
		c.Set(CtxUsername, user.Username)
		c.Set(CtxRole, string(user.Role))

		c.Next()
	}
}

// RequireRole rejects requests whose resolved role is not one of the
// allowed roles. Anonymous requests get 401; authenticated requests
// with the wrong role get 403.
func RequireRole(allowed ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			response.Unauthorized(c, 10002, "authentication required")
			c.Abort()
			return
		}

		userRole := model.Role(role.(string))
		for _, r := range allowed {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "insufficient permissions")
		c.Abort()
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
