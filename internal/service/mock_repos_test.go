package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/yash113gadia/AttendEase-Web/internal/model"
	"github.com/yash113gadia/AttendEase-Web/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Mock Repositories
// ═══════════════════════════════════════════════════════════

// ── users ──

type mockUserRepo struct {
	byID       map[int64]*model.User
	byUsername map[string]*model.User
	nextID     int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:       make(map[int64]*model.User),
		byUsername: make(map[string]*model.User),
		nextID:     1,
	}
}

func (m *mockUserRepo) add(user *model.User) *model.User {
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	m.byID[user.ID] = user
	m.byUsername[user.Username] = user
	return user
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.add(user)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := m.byUsername[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := m.byUsername[username]
	return ok, nil
}

func (m *mockUserRepo) TouchLastLogin(_ context.Context, id int64, at time.Time) error {
	if u, ok := m.byID[id]; ok {
		u.LastLogin = &at
		return nil
	}
	return gorm.ErrRecordNotFound
}

// ── institutions ──

type mockInstitutionRepo struct {
	insts  map[int64]*model.Institution
	nextID int64
}

func newMockInstitutionRepo() *mockInstitutionRepo {
	return &mockInstitutionRepo{insts: make(map[int64]*model.Institution), nextID: 1}
}

func (m *mockInstitutionRepo) Create(_ context.Context, inst *model.Institution) error {
	if inst.ID == 0 {
		inst.ID = m.nextID
		m.nextID++
	}
	m.insts[inst.ID] = inst
	return nil
}

func (m *mockInstitutionRepo) GetByID(_ context.Context, id int64) (*model.Institution, error) {
	if i, ok := m.insts[id]; ok {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInstitutionRepo) List(_ context.Context) ([]model.Institution, error) {
	var out []model.Institution
	for _, i := range m.insts {
		out = append(out, *i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

func (m *mockInstitutionRepo) Delete(_ context.Context, id int64) error {
	delete(m.insts, id)
	return nil
}

// ── courses ──

type mockCourseRepo struct {
	courses map[int64]*model.Course
	nextID  int64
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[int64]*model.Course), nextID: 1}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.ID == 0 {
		course.ID = m.nextID
		m.nextID++
	}
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id int64) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	var out []model.Course
	for _, c := range m.courses {
		out = append(out, *c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CourseName < out[b].CourseName })
	return out, nil
}

func (m *mockCourseRepo) ListByInstitution(_ context.Context, institutionID int64) ([]model.Course, error) {
	var out []model.Course
	for _, c := range m.courses {
		if c.InstitutionID == institutionID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCourseRepo) Update(_ context.Context, course *model.Course) error {
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id int64) error {
	delete(m.courses, id)
	return nil
}

// ── subjects ──

type mockSubjectRepo struct {
	subjects map[int64]*model.Subject
	nextID   int64
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{subjects: make(map[int64]*model.Subject), nextID: 1}
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	if subject.ID == 0 {
		subject.ID = m.nextID
		m.nextID++
	}
	m.subjects[subject.ID] = subject
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id int64) (*model.Subject, error) {
	if s, ok := m.subjects[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) List(_ context.Context) ([]model.Subject, error) {
	var out []model.Subject
	for _, s := range m.subjects {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockSubjectRepo) ListByInstitution(_ context.Context, institutionID int64) ([]model.Subject, error) {
	var out []model.Subject
	for _, s := range m.subjects {
		if s.InstitutionID == institutionID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSubjectRepo) Delete(_ context.Context, id int64) error {
	delete(m.subjects, id)
	return nil
}

// ── students ──

type mockStudentRepo struct {
	students map[int64]*model.Student
	nextID   int64
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[int64]*model.Student), nextID: 1}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.ID == 0 {
		student.ID = m.nextID
		m.nextID++
	}
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int64) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context) ([]model.Student, error) {
	var out []model.Student
	for _, s := range m.students {
		out = append(out, *s)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].RollNumber < out[b].RollNumber })
	return out, nil
}

func (m *mockStudentRepo) ListByCourseOrderByRoll(_ context.Context, courseID int64) ([]model.Student, error) {
	var out []model.Student
	for _, s := range m.students {
		if s.CourseID == courseID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].RollNumber < out[b].RollNumber })
	return out, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id int64) error {
	delete(m.students, id)
	return nil
}

// ── sessions ──

type mockSessionRepo struct {
	sessions map[int64]*model.Session
	nextID   int64
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[int64]*model.Session), nextID: 1}
}

func (m *mockSessionRepo) Create(_ context.Context, session *model.Session) error {
	if session.ID == 0 {
		session.ID = m.nextID
		m.nextID++
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id int64) (*model.Session, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) List(_ context.Context) ([]model.Session, error) {
	var out []model.Session
	for _, s := range m.sessions {
		out = append(out, *s)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (m *mockSessionRepo) ListByCourse(_ context.Context, courseID int64) ([]model.Session, error) {
	var out []model.Session
	for _, s := range m.sessions {
		if s.CourseID == courseID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (m *mockSessionRepo) ListByTeacher(_ context.Context, teacherID int64) ([]model.Session, error) {
	var out []model.Session
	for _, s := range m.sessions {
		if s.TeacherID == teacherID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockSessionRepo) Delete(_ context.Context, id int64) error {
	delete(m.sessions, id)
	return nil
}

// ── attendance ──

// mockAttendanceRepo emulates the ledger's upsert-keyed-by-unique-index
// semantics, including a mutex so concurrency tests reflect the
// single-row guarantee of the real constraint.
type mockAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]*model.Attendance // key: student:session:date
	nextID  int64
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]*model.Attendance), nextID: 1}
}

func attendanceKey(studentID, sessionID int64, date time.Time) string {
	return fmt.Sprintf("%d:%d:%s", studentID, sessionID, date.Format("2006-01-02"))
}

func (m *mockAttendanceRepo) Upsert(_ context.Context, rec *model.Attendance) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := attendanceKey(rec.StudentID, rec.SessionID, rec.Date)
	if existing, ok := m.records[key]; ok {
		existing.Status = rec.Status
		existing.MarkedBy = rec.MarkedBy
		existing.MarkedAt = rec.MarkedAt
		existing.Remarks = rec.Remarks
		*rec = *existing
		return nil
	}

	rec.ID = m.nextID
	m.nextID++
	stored := *rec
	m.records[key] = &stored
	return nil
}

func (m *mockAttendanceRepo) GetByKey(_ context.Context, studentID, sessionID int64, date time.Time) (*model.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.records[attendanceKey(studentID, sessionID, date)]; ok {
		out := *rec
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) ListBySessionAndDate(_ context.Context, sessionID int64, date time.Time) ([]model.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Attendance
	for _, rec := range m.records {
		if rec.SessionID == sessionID && rec.Date.Equal(date) {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (m *mockAttendanceRepo) ListByStudentBetween(_ context.Context, studentID int64, start, end time.Time) ([]model.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Attendance
	for _, rec := range m.records {
		if rec.StudentID == studentID && !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Date.Before(out[b].Date) })
	return out, nil
}

func (m *mockAttendanceRepo) CountByStudent(_ context.Context, studentID int64) (repository.AttendanceCounts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var counts repository.AttendanceCounts
	for _, rec := range m.records {
		if rec.StudentID != studentID {
			continue
		}
		counts.Total++
		if rec.Status == model.StatusPresent {
			counts.Present++
		}
	}
	return counts, nil
}

// newMockRepository bundles fresh mocks into a Repository aggregate.
func newMockRepository() (*repository.Repository, *mockUserRepo, *mockStudentRepo, *mockSessionRepo, *mockAttendanceRepo) {
	userRepo := newMockUserRepo()
	studentRepo := newMockStudentRepo()
	sessionRepo := newMockSessionRepo()
	attendanceRepo := newMockAttendanceRepo()
	repo := &repository.Repository{
		User:        userRepo,
		Institution: newMockInstitutionRepo(),
		Course:      newMockCourseRepo(),
		Subject:     newMockSubjectRepo(),
		Student:     studentRepo,
		Session:     sessionRepo,
		Attendance:  attendanceRepo,
	}
	return repo, userRepo, studentRepo, sessionRepo, attendanceRepo
}
