package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yash113gadia/AttendEase-Web/internal/dto"
	"github.com/yash113gadia/AttendEase-Web/internal/model"
	"github.com/yash113gadia/AttendEase-Web/internal/repository"
)

// ErrNotFound is the generic single-entity miss for directory lookups.
var ErrNotFound = errors.New("not found")

// DirectoryService is the CRUD surface for institutions, courses,
// subjects, students, and sessions. The attendance core treats this
// data as read-only reference; mutation lives here.
type DirectoryService interface {
	CreateInstitution(ctx context.Context, req *dto.CreateInstitutionRequest) (*model.Institution, error)
	ListInstitutions(ctx context.Context) ([]model.Institution, error)
	GetInstitution(ctx context.Context, id int64) (*model.Institution, error)
	DeleteInstitution(ctx context.Context, id int64) error

	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error)
	ListCourses(ctx context.Context) ([]model.Course, error)
	GetCourse(ctx context.Context, id int64) (*model.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*model.Course, error)
	DeleteCourse(ctx context.Context, id int64) error

	CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*model.Subject, error)
	ListSubjects(ctx context.Context) ([]model.Subject, error)
	DeleteSubject(ctx context.Context, id int64) error

	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*model.Student, error)
	ListStudents(ctx context.Context, courseID int64) ([]model.Student, error)
	GetStudent(ctx context.Context, id int64) (*model.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*model.Student, error)
	DeleteStudent(ctx context.Context, id int64) error

	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*model.Session, error)
	ListSessions(ctx context.Context, courseID, teacherID int64) ([]model.Session, error)
	GetSession(ctx context.Context, id int64) (*model.Session, error)
	DeleteSession(ctx context.Context, id int64) error
}

type directoryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDirectoryService creates the DirectoryService implementation.
func NewDirectoryService(repo *repository.Repository, logger *zap.Logger) DirectoryService {
	return &directoryService{repo: repo, logger: logger}
}

// mapNotFound converts gorm's record miss into the service sentinel.
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ── institutions ──

func (s *directoryService) CreateInstitution(ctx context.Context, req *dto.CreateInstitutionRequest) (*model.Institution, error) {
	inst := &model.Institution{Name: req.Name, Address: req.Address}
	if err := s.repo.Institution.Create(ctx, inst); err != nil {
		s.logger.Error("create institution failed", zap.Error(err))
		return nil, err
	}
	return inst, nil
}

func (s *directoryService) ListInstitutions(ctx context.Context) ([]model.Institution, error) {
	return s.repo.Institution.List(ctx)
}

func (s *directoryService) GetInstitution(ctx context.Context, id int64) (*model.Institution, error) {
	inst, err := s.repo.Institution.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return inst, nil
}

func (s *directoryService) DeleteInstitution(ctx context.Context, id int64) error {
	if _, err := s.repo.Institution.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.repo.Institution.Delete(ctx, id)
}

// ── courses ──

func (s *directoryService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error) {
	if _, err := s.repo.Institution.GetByID(ctx, req.InstitutionID); err != nil {
		return nil, mapNotFound(err)
	}
	course := &model.Course{
		CourseName:    req.CourseName,
		InstitutionID: req.InstitutionID,
		Description:   req.Description,
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("create course failed", zap.Error(err))
		return nil, err
	}
	return course, nil
}

func (s *directoryService) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.repo.Course.List(ctx)
}

func (s *directoryService) GetCourse(ctx context.Context, id int64) (*model.Course, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return course, nil
}

func (s *directoryService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*model.Course, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	course.CourseName = req.CourseName
	course.Description = req.Description
	if err := s.repo.Course.Update(ctx, course); err != nil {
		s.logger.Error("update course failed", zap.Error(err))
		return nil, err
	}
	return course, nil
}

func (s *directoryService) DeleteCourse(ctx context.Context, id int64) error {
	if _, err := s.repo.Course.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.repo.Course.Delete(ctx, id)
}

// ── subjects ──

func (s *directoryService) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*model.Subject, error) {
	if _, err := s.repo.Institution.GetByID(ctx, req.InstitutionID); err != nil {
		return nil, mapNotFound(err)
	}
	subject := &model.Subject{
		SubjectName:   req.SubjectName,
		SubjectCode:   req.SubjectCode,
		InstitutionID: req.InstitutionID,
	}
	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		s.logger.Error("create subject failed", zap.Error(err))
		return nil, err
	}
	return subject, nil
}

func (s *directoryService) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	return s.repo.Subject.List(ctx)
}

func (s *directoryService) DeleteSubject(ctx context.Context, id int64) error {
	if _, err := s.repo.Subject.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.repo.Subject.Delete(ctx, id)
}

// ── students ──

func (s *directoryService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*model.Student, error) {
	if _, err := s.repo.Course.GetByID(ctx, req.CourseID); err != nil {
		return nil, mapNotFound(err)
	}
	student := &model.Student{
		RollNumber:    req.RollNumber,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		CourseID:      req.CourseID,
		InstitutionID: req.InstitutionID,
		Email:         req.Email,
	}
	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("create student failed", zap.Error(err))
		return nil, err
	}
	return student, nil
}

func (s *directoryService) ListStudents(ctx context.Context, courseID int64) ([]model.Student, error) {
	if courseID > 0 {
		return s.repo.Student.ListByCourseOrderByRoll(ctx, courseID)
	}
	return s.repo.Student.List(ctx)
}

func (s *directoryService) GetStudent(ctx context.Context, id int64) (*model.Student, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return student, nil
}

func (s *directoryService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	student.RollNumber = req.RollNumber
	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.CourseID = req.CourseID
	student.Email = req.Email
	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("update student failed", zap.Error(err))
		return nil, err
	}
	return student, nil
}

func (s *directoryService) DeleteStudent(ctx context.Context, id int64) error {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.repo.Student.Delete(ctx, id)
}

// ── sessions ──

func (s *directoryService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*model.Session, error) {
	if _, err := s.repo.Course.GetByID(ctx, req.CourseID); err != nil {
		return nil, mapNotFound(err)
	}
	session := &model.Session{
		CourseID:  req.CourseID,
		SubjectID: req.SubjectID,
		TeacherID: req.TeacherID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Room:      req.Room,
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.logger.Error("create session failed", zap.Error(err))
		return nil, err
	}
	return session, nil
}

func (s *directoryService) ListSessions(ctx context.Context, courseID, teacherID int64) ([]model.Session, error) {
	switch {
	case courseID > 0:
		return s.repo.Session.ListByCourse(ctx, courseID)
	case teacherID > 0:
		return s.repo.Session.ListByTeacher(ctx, teacherID)
	default:
		return s.repo.Session.List(ctx)
	}
}

func (s *directoryService) GetSession(ctx context.Context, id int64) (*model.Session, error) {
	session, err := s.repo.Session.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return session, nil
}

func (s *directoryService) DeleteSession(ctx context.Context, id int64) error {
	if _, err := s.repo.Session.GetByID(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.repo.Session.Delete(ctx, id)
}
