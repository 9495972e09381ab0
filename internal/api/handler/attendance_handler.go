package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yash113gadia/AttendEase-Web/internal/dto"
	"github.com/yash113gadia/AttendEase-Web/internal/service"
	"github.com/yash113gadia/AttendEase-Web/pkg/response"
)

const dateLayout = "2006-01-02"

// AttendanceHandler serves the attendance ledger endpoints.
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// Mark records a batch of attendance entries for one session and date.
// Re-marking the same (student, session, date) overwrites in place.
// POST /api/v1/attendance/mark
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	markerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	records, err := h.attendanceSvc.Mark(c.Request.Context(), &req, markerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			response.NotFound(c, 20001, "session not found")
		case errors.Is(err, service.ErrStudentNotFound):
			response.ErrorWithDetails(c, http.StatusNotFound, 20002, "student not found", err.Error())
		case errors.Is(err, service.ErrInvalidStatus):
			response.ErrorWithDetails(c, http.StatusBadRequest, 20003, "invalid attendance status", err.Error())
		case errors.Is(err, service.ErrInvalidDate):
			response.BadRequest(c, 10001, "invalid date")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, records)
}

// GetBySession lists the records for one session on one date.
// GET /api/v1/attendance/session/:sessionId?date=2006-01-02
func (h *AttendanceHandler) GetBySession(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "sessionId")
	if !ok {
		return
	}

	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		response.BadRequest(c, 10001, "date must be in 2006-01-02 form")
		return
	}

	records, err := h.attendanceSvc.GetBySessionAndDate(c.Request.Context(), sessionID, date)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, records)
}

// GetByStudent lists one student's records inside a date range.
// GET /api/v1/attendance/student/:studentId?start_date=...&end_date=...
func (h *AttendanceHandler) GetByStudent(c *gin.Context) {
	studentID, ok := parseIDParam(c, "studentId")
	if !ok {
		return
	}

	start, err := time.Parse(dateLayout, c.Query("start_date"))
	if err != nil {
		response.BadRequest(c, 10001, "start_date must be in 2006-01-02 form")
		return
	}
	end, err := time.Parse(dateLayout, c.Query("end_date"))
	if err != nil {
		response.BadRequest(c, 10001, "end_date must be in 2006-01-02 form")
		return
	}
	if end.Before(start) {
		response.BadRequest(c, 10001, "end_date must not precede start_date")
		return
	}

	records, err := h.attendanceSvc.GetByStudentBetween(c.Request.Context(), studentID, start, end)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, records)
}

// CourseStats returns the per-student attendance summary for a course,
// ordered by roll number.
// GET /api/v1/attendance/course/:courseId/stats
func (h *AttendanceHandler) CourseStats(c *gin.Context) {
	courseID, ok := parseIDParam(c, "courseId")
	if !ok {
		return
	}

	stats, err := h.attendanceSvc.GetCourseStats(c.Request.Context(), courseID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}
