package handler

import (
	"github.com/yash113gadia/AttendEase-Web/internal/service"
	"github.com/yash113gadia/AttendEase-Web/pkg/jwt"
)

// Handler is the aggregate entry point for all HTTP handlers.
type Handler struct {
	Auth        *AuthHandler
	Attendance  *AttendanceHandler
	Export      *ExportHandler
	Institution *InstitutionHandler
	Course      *CourseHandler
	Subject     *SubjectHandler
	Student     *StudentHandler
	Session     *SessionHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service, jwtMgr *jwt.Manager) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth, jwtMgr),
		Attendance:  NewAttendanceHandler(svc.Attendance),
		Export:      NewExportHandler(svc.Export),
		Institution: NewInstitutionHandler(svc.Directory),
		Course:      NewCourseHandler(svc.Directory),
		Subject:     NewSubjectHandler(svc.Directory),
		Student:     NewStudentHandler(svc.Directory),
		Session:     NewSessionHandler(svc.Directory),
	}
}
