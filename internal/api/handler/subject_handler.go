package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yash113gadia/AttendEase-Web/internal/dto"
	"github.com/yash113gadia/AttendEase-Web/internal/service"
	"github.com/yash113gadia/AttendEase-Web/pkg/response"
)

// SubjectHandler serves subject CRUD.
type SubjectHandler struct {
	dirSvc service.DirectoryService
}

// NewSubjectHandler creates a SubjectHandler.
func NewSubjectHandler(dirSvc service.DirectoryService) *SubjectHandler {
	return &SubjectHandler{dirSvc: dirSvc}
}

// Create registers a new subject under an institution.
// POST /api/v1/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	subject, err := h.dirSvc.CreateSubject(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, 20004, "institution not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, subject)
}

// List returns all subjects.
// GET /api/v1/subjects
func (h *SubjectHandler) List(c *gin.Context) {
	subjects, err := h.dirSvc.ListSubjects(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, subjects)
}

// Delete removes a subject.
// DELETE /api/v1/subjects/:id
func (h *SubjectHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.dirSvc.DeleteSubject(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, 20004, "subject not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}
