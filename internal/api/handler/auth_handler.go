package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yash113gadia/AttendEase-Web/internal/dto"
	"github.com/yash113gadia/AttendEase-Web/internal/service"
	"github.com/yash113gadia/AttendEase-Web/pkg/jwt"
	"github.com/yash113gadia/AttendEase-Web/pkg/response"
)

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	authSvc service.AuthService
	jwtMgr  *jwt.Manager
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService, jwtMgr *jwt.Manager) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, jwtMgr: jwtMgr}
}

// Login authenticates a username/password pair and issues a token.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "invalid username or password")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Register creates a new user account. Restricted to ADMIN by the
// route's role guard.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			response.Conflict(c, 11002, "username already exists")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, user)
}

// Logout blacklists the presented token so it cannot be replayed for
// the rest of its lifetime. Succeeds even without a valid token.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		if claims, err := h.jwtMgr.ParseToken(parts[1]); err == nil {
			if err := h.authSvc.Logout(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
				response.InternalError(c)
				return
			}
		}
	}

	response.OK(c, nil)
}
