package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yash113gadia/AttendEase-Web/internal/dto"
	"github.com/yash113gadia/AttendEase-Web/internal/service"
	"github.com/yash113gadia/AttendEase-Web/pkg/response"
)

// CourseHandler serves course CRUD.
type CourseHandler struct {
	dirSvc service.DirectoryService
}

// NewCourseHandler creates a CourseHandler.
func NewCourseHandler(dirSvc service.DirectoryService) *CourseHandler {
	return &CourseHandler{dirSvc: dirSvc}
}

// Create registers a new course under an institution.
// POST /api/v1/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	course, err := h.dirSvc.CreateCourse(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, 20004, "institution not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, course)
}

// List returns all courses.
// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.dirSvc.ListCourses(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, courses)
}

// Get returns one course.
// GET /api/v1/courses/:id
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	course, err := h.dirSvc.GetCourse(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, 20004, "course not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, course)
}

// Update replaces a course's mutable fields.
// PUT /api/v1/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	course, err := h.dirSvc.UpdateCourse(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, 20004, "course not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, course)
}

// Delete removes a course.
// DELETE /api/v1/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.dirSvc.DeleteCourse(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, 20004, "course not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}
