package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yash113gadia/AttendEase-Web/internal/dto"
	"github.com/yash113gadia/AttendEase-Web/internal/service"
	"github.com/yash113gadia/AttendEase-Web/pkg/response"
)

// StudentHandler serves student CRUD.
type StudentHandler struct {
	dirSvc service.DirectoryService
}

// NewStudentHandler creates a StudentHandler.
func NewStudentHandler(dirSvc service.DirectoryService) *StudentHandler {
	return &StudentHandler{dirSvc: dirSvc}
}

// Create enrols a new student.
// POST /api/v1/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	student, err := h.dirSvc.CreateStudent(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, 20004, "course not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, student)
}

// List returns students, optionally filtered by course, ordered by
// roll number.
// GET /api/v1/students?course_id=N
func (h *StudentHandler) List(c *gin.Context) {
	courseID, ok := parseOptionalID(c, "course_id")
	if !ok {
		return
	}

	students, err := h.dirSvc.ListStudents(c.Request.Context(), courseID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, students)
}

// Get returns one student.
// GET /api/v1/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	student, err := h.dirSvc.GetStudent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, 20004, "student not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, student)
}

// Update replaces a student's mutable fields.
// PUT /api/v1/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	student, err := h.dirSvc.UpdateStudent(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, 20004, "student not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, student)
}

// Delete removes a student.
// DELETE /api/v1/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.dirSvc.DeleteStudent(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, 20004, "student not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}
