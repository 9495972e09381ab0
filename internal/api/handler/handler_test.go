package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yash113gadia/AttendEase-Web/internal/dto"
	"github.com/yash113gadia/AttendEase-Web/internal/model"
	"github.com/yash113gadia/AttendEase-Web/internal/service"
	"github.com/yash113gadia/AttendEase-Web/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult    *dto.LoginResponse
	loginErr       error
	registerResult *model.User
	registerErr    error
	logoutErr      error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.LoginResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*model.User, error) {
	return m.registerResult, m.registerErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}

// ── Mock AttendanceService ──

type mockAttendanceService struct {
	markResult    []model.Attendance
	markErr       error
	markedBy      int64
	sessionResult []model.Attendance
	sessionErr    error
	studentResult []model.Attendance
	studentErr    error
	statsResult   []dto.StudentAttendanceStats
	statsErr      error
}

func (m *mockAttendanceService) Mark(_ context.Context, _ *dto.MarkAttendanceRequest, markedBy int64) ([]model.Attendance, error) {
	m.markedBy = markedBy
	return m.markResult, m.markErr
}
func (m *mockAttendanceService) GetBySessionAndDate(_ context.Context, _ int64, _ time.Time) ([]model.Attendance, error) {
	return m.sessionResult, m.sessionErr
}
func (m *mockAttendanceService) GetByStudentBetween(_ context.Context, _ int64, _, _ time.Time) ([]model.Attendance, error) {
	return m.studentResult, m.studentErr
}
func (m *mockAttendanceService) GetCourseStats(_ context.Context, _ int64) ([]dto.StudentAttendanceStats, error) {
	return m.statsResult, m.statsErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	ics      string
	filename string
	err      error
}

func (m *mockExportService) ExportCourseStats(_ context.Context, _ int64) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportCourseTimetable(_ context.Context, _ int64) (string, string, error) {
	return m.ics, m.filename, m.err
}

// ── Mock DirectoryService ──

type mockDirectoryService struct {
	inst     *model.Institution
	insts    []model.Institution
	course   *model.Course
	courses  []model.Course
	subject  *model.Subject
	subjects []model.Subject
	student  *model.Student
	students []model.Student
	session  *model.Session
	sessions []model.Session
	err      error
}

func (m *mockDirectoryService) CreateInstitution(_ context.Context, _ *dto.CreateInstitutionRequest) (*model.Institution, error) {
	return m.inst, m.err
}
func (m *mockDirectoryService) ListInstitutions(_ context.Context) ([]model.Institution, error) {
	return m.insts, m.err
}
func (m *mockDirectoryService) GetInstitution(_ context.Context, _ int64) (*model.Institution, error) {
	return m.inst, m.err
}
func (m *mockDirectoryService) DeleteInstitution(_ context.Context, _ int64) error { return m.err }
func (m *mockDirectoryService) CreateCourse(_ context.Context, _ *dto.CreateCourseRequest) (*model.Course, error) {
	return m.course, m.err
}
func (m *mockDirectoryService) ListCourses(_ context.Context) ([]model.Course, error) {
	return m.courses, m.err
}
func (m *mockDirectoryService) GetCourse(_ context.Context, _ int64) (*model.Course, error) {
	return m.course, m.err
}
func (m *mockDirectoryService) UpdateCourse(_ context.Context, _ int64, _ *dto.UpdateCourseRequest) (*model.Course, error) {
	return m.course, m.err
}
func (m *mockDirectoryService) DeleteCourse(_ context.Context, _ int64) error { return m.err }
func (m *mockDirectoryService) CreateSubject(_ context.Context, _ *dto.CreateSubjectRequest) (*model.Subject, error) {
	return m.subject, m.err
}
func (m *mockDirectoryService) ListSubjects(_ context.Context) ([]model.Subject, error) {
	return m.subjects, m.err
}
func (m *mockDirectoryService) DeleteSubject(_ context.Context, _ int64) error { return m.err }
func (m *mockDirectoryService) CreateStudent(_ context.Context, _ *dto.CreateStudentRequest) (*model.Student, error) {
	return m.student, m.err
}
func (m *mockDirectoryService) ListStudents(_ context.Context, _ int64) ([]model.Student, error) {
	return m.students, m.err
}
func (m *mockDirectoryService) GetStudent(_ context.Context, _ int64) (*model.Student, error) {
	return m.student, m.err
}
func (m *mockDirectoryService) UpdateStudent(_ context.Context, _ int64, _ *dto.UpdateStudentRequest) (*model.Student, error) {
	return m.student, m.err
}
func (m *mockDirectoryService) DeleteStudent(_ context.Context, _ int64) error { return m.err }
func (m *mockDirectoryService) CreateSession(_ context.Context, _ *dto.CreateSessionRequest) (*model.Session, error) {
	return m.session, m.err
}
func (m *mockDirectoryService) ListSessions(_ context.Context, _, _ int64) ([]model.Session, error) {
	return m.sessions, m.err
}
func (m *mockDirectoryService) GetSession(_ context.Context, _ int64) (*model.Session, error) {
	return m.session, m.err
}
func (m *mockDirectoryService) DeleteSession(_ context.Context, _ int64) error { return m.err }

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// withIdentity injects the context the auth middleware would set.
func withIdentity(userID int64, role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("username", "tester")
		c.Set("role", string(role))
		c.Next()
	}
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.LoginResponse{
			Token:     "test-token",
			ExpiresIn: 28800,
			Username:  "teacher1",
			Role:      "TEACHER",
		},
	}
	h := NewAuthHandler(mock, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "teacher1",
		Password: "secret123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "teacher1",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{registerErr: service.ErrUserExists}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Username: "teacher1",
		Password: "secret123",
		FullName: "Priya Sharma",
		Role:     "TEACHER",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// AttendanceHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAttendanceHandler_Mark_Success(t *testing.T) {
	mock := &mockAttendanceService{
		markResult: []model.Attendance{
			{ID: 1, StudentID: 1, SessionID: 5, Status: model.StatusPresent},
		},
	}
	h := NewAttendanceHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/attendance/mark", jsonBody(dto.MarkAttendanceRequest{
		SessionID: 5,
		Date:      "2024-03-01",
		Entries:   []dto.AttendanceEntry{{StudentID: 1, Status: "PRESENT"}},
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/attendance/mark", withIdentity(10, model.RoleTeacher), h.Mark)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if mock.markedBy != 10 {
		t.Errorf("expected marker id 10 from context, got %d", mock.markedBy)
	}
}

func TestAttendanceHandler_Mark_NoIdentity(t *testing.T) {
	mock := &mockAttendanceService{}
	h := NewAttendanceHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/attendance/mark", jsonBody(dto.MarkAttendanceRequest{
		SessionID: 5,
		Date:      "2024-03-01",
		Entries:   []dto.AttendanceEntry{{StudentID: 1, Status: "PRESENT"}},
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/attendance/mark", h.Mark)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without identity, got %d", w.Code)
	}
}

func TestAttendanceHandler_Mark_SessionNotFound(t *testing.T) {
	h := NewAttendanceHandler(&mockAttendanceService{markErr: service.ErrSessionNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/attendance/mark", jsonBody(dto.MarkAttendanceRequest{
		SessionID: 99,
		Date:      "2024-03-01",
		Entries:   []dto.AttendanceEntry{{StudentID: 1, Status: "PRESENT"}},
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/attendance/mark", withIdentity(10, model.RoleTeacher), h.Mark)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 20001 {
		t.Errorf("expected error code 20001, got %d", resp.Code)
	}
}

func TestAttendanceHandler_Mark_InvalidDateRejectedByBinding(t *testing.T) {
	mock := &mockAttendanceService{}
	h := NewAttendanceHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/attendance/mark", jsonBody(dto.MarkAttendanceRequest{
		SessionID: 5,
		Date:      "01/03/2024",
		Entries:   []dto.AttendanceEntry{{StudentID: 1, Status: "PRESENT"}},
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/attendance/mark", withIdentity(10, model.RoleTeacher), h.Mark)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed date, got %d", w.Code)
	}
}

func TestAttendanceHandler_GetBySession_MissingDate(t *testing.T) {
	h := NewAttendanceHandler(&mockAttendanceService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/attendance/session/5", nil)

	r := gin.New()
	r.GET("/attendance/session/:sessionId", h.GetBySession)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without date, got %d", w.Code)
	}
}

func TestAttendanceHandler_GetByStudent_InvertedRange(t *testing.T) {
	h := NewAttendanceHandler(&mockAttendanceService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET",
		"/attendance/student/1?start_date=2024-03-10&end_date=2024-03-01", nil)

	r := gin.New()
	r.GET("/attendance/student/:studentId", h.GetByStudent)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for inverted range, got %d", w.Code)
	}
}

func TestAttendanceHandler_CourseStats_Success(t *testing.T) {
	h := NewAttendanceHandler(&mockAttendanceService{
		statsResult: []dto.StudentAttendanceStats{
			{StudentID: 1, RollNumber: "R001", TotalClasses: 9, PresentCount: 7, AttendancePercentage: 77.78},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/attendance/course/1/stats", nil)

	r := gin.New()
	r.GET("/attendance/course/:courseId/stats", h.CourseStats)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "77.78") {
		t.Errorf("expected percentage in body, got %s", w.Body.String())
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_CourseStats_Headers(t *testing.T) {
	h := NewExportHandler(&mockExportService{
		buf:      bytes.NewBufferString("fake-xlsx-bytes"),
		filename: "attendance-bsc-cs.xlsx",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/attendance/course/1/stats/export", nil)

	r := gin.New()
	r.GET("/attendance/course/:courseId/stats/export", h.CourseStats)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "attendance-bsc-cs.xlsx") {
		t.Errorf("expected filename in Content-Disposition, got %q", cd)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "spreadsheetml") {
		t.Errorf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
}

func TestExportHandler_Timetable_ContentType(t *testing.T) {
	h := NewExportHandler(&mockExportService{
		ics:      "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n",
		filename: "timetable-bsc-cs.ics",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/sessions/course/1/timetable.ics", nil)

	r := gin.New()
	r.GET("/sessions/course/:courseId/timetable.ics", h.CourseTimetable)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "text/calendar") {
		t.Errorf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "VCALENDAR") {
		t.Errorf("expected calendar body, got %q", w.Body.String())
	}
}

func TestExportHandler_NoStudents(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportNoStudents})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/attendance/course/1/stats/export", nil)

	r := gin.New()
	r.GET("/attendance/course/:courseId/stats/export", h.CourseStats)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 21001 {
		t.Errorf("expected error code 21001, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// Directory Handler Tests
// ═══════════════════════════════════════════════════════════

func TestStudentHandler_List_BadCourseFilter(t *testing.T) {
	h := NewStudentHandler(&mockDirectoryService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/students?course_id=abc", nil)

	r := gin.New()
	r.GET("/students", h.List)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCourseHandler_Get_NotFound(t *testing.T) {
	h := NewCourseHandler(&mockDirectoryService{err: service.ErrNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/courses/99", nil)

	r := gin.New()
	r.GET("/courses/:id", h.Get)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestSessionHandler_Create_BadDayOfWeek(t *testing.T) {
	h := NewSessionHandler(&mockDirectoryService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/sessions", jsonBody(dto.CreateSessionRequest{
		CourseID:  1,
		TeacherID: 2,
		DayOfWeek: "SOMEDAY",
		StartTime: "09:00",
		EndTime:   "10:00",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/sessions", h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid day, got %d", w.Code)
	}
}

func TestInstitutionHandler_Delete_NoContent(t *testing.T) {
	h := NewInstitutionHandler(&mockDirectoryService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/institutions/1", nil)

	r := gin.New()
	r.DELETE("/institutions/:id", h.Delete)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
}
