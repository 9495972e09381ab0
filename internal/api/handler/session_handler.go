package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yash113gadia/AttendEase-Web/internal/dto"
	"github.com/yash113gadia/AttendEase-Web/internal/service"
	"github.com/yash113gadia/AttendEase-Web/pkg/response"
)

// SessionHandler serves scheduled-session CRUD.
type SessionHandler struct {
	dirSvc service.DirectoryService
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(dirSvc service.DirectoryService) *SessionHandler {
	return &SessionHandler{dirSvc: dirSvc}
}

// Create schedules a new weekly session for a course.
// POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	session, err := h.dirSvc.CreateSession(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, 20004, "course not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, session)
}

// List returns sessions, optionally filtered by course or teacher.
// GET /api/v1/sessions?course_id=N&teacher_id=N
func (h *SessionHandler) List(c *gin.Context) {
	courseID, ok := parseOptionalID(c, "course_id")
	if !ok {
		return
	}
	teacherID, ok := parseOptionalID(c, "teacher_id")
	if !ok {
		return
	}

	sessions, err := h.dirSvc.ListSessions(c.Request.Context(), courseID, teacherID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, sessions)
}

// Get returns one session.
// GET /api/v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	session, err := h.dirSvc.GetSession(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, 20001, "session not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, session)
}

// Delete removes a session.
// DELETE /api/v1/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.dirSvc.DeleteSession(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, 20001, "session not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}

func parseOptionalID(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "invalid "+name)
		return 0, false
	}
	return id, true
}
