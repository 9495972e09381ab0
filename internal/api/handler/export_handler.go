package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/yash113gadia/AttendEase-Web/internal/service"
	"github.com/yash113gadia/AttendEase-Web/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves file downloads derived from attendance data.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// CourseStats downloads the per-student attendance summary as .xlsx.
// GET /api/v1/attendance/course/:courseId/stats/export
func (h *ExportHandler) CourseStats(c *gin.Context) {
	courseID, ok := parseIDParam(c, "courseId")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportCourseStats(c.Request.Context(), courseID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// CourseTimetable downloads the course's weekly sessions as iCalendar.
// GET /api/v1/sessions/course/:courseId/timetable.ics
func (h *ExportHandler) CourseTimetable(c *gin.Context) {
	courseID, ok := parseIDParam(c, "courseId")
	if !ok {
		return
	}

	ics, filename, err := h.exportSvc.ExportCourseTimetable(c.Request.Context(), courseID)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, 20004, "course not found")
	case errors.Is(err, service.ErrExportNoStudents):
		response.NotFound(c, 21001, "course has no students to export")
	case errors.Is(err, service.ErrExportNoSessions):
		response.NotFound(c, 21002, "course has no scheduled sessions")
	default:
		response.InternalError(c)
	}
}
