package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yash113gadia/AttendEase-Web/internal/dto"
	"github.com/yash113gadia/AttendEase-Web/internal/model"
	"github.com/yash113gadia/AttendEase-Web/internal/repository"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrInvalidStatus   = errors.New("invalid attendance status")
	ErrInvalidDate     = errors.New("invalid date")
)

const dateLayout = "2006-01-02"

// AttendanceService is the attendance ledger and its derived views.
type AttendanceService interface {
	// Mark applies a batch of entries for one (session, date) pair.
	// The whole batch is validated before the first write, so a
	// validation failure leaves the ledger untouched. Each entry is an
	// atomic upsert keyed by (student, session, date); entries are
	// applied in input order and the post-upsert records are returned
	// in that order.
	Mark(ctx context.Context, req *dto.MarkAttendanceRequest, markedBy int64) ([]model.Attendance, error)
	GetBySessionAndDate(ctx context.Context, sessionID int64, date time.Time) ([]model.Attendance, error)
	GetByStudentBetween(ctx context.Context, studentID int64, start, end time.Time) ([]model.Attendance, error)
	// GetCourseStats returns one stat entry per student in the course,
	// ordered by roll number ascending.
	GetCourseStats(ctx context.Context, courseID int64) ([]dto.StudentAttendanceStats, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService creates the AttendanceService implementation.
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

func (s *attendanceService) Mark(ctx context.Context, req *dto.MarkAttendanceRequest, markedBy int64) ([]model.Attendance, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	if _, err := s.repo.Session.GetByID(ctx, req.SessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("lookup session failed", zap.Error(err))
		return nil, err
	}

	// Validate the whole batch before mutating anything (fail-fast).
	students := make([]*model.Student, len(req.Entries))
	for i, entry := range req.Entries {
		if !model.AttendanceStatus(entry.Status).Valid() {
			return nil, fmt.Errorf("%w: %q (entry %d)", ErrInvalidStatus, entry.Status, i)
		}
		student, err := s.repo.Student.GetByID(ctx, entry.StudentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: student %d (entry %d)", ErrStudentNotFound, entry.StudentID, i)
			}
			s.logger.Error("lookup student failed", zap.Error(err))
			return nil, err
		}
		students[i] = student
	}

	// Apply in input order. Each upsert is atomic against the unique
	// key; a failure here leaves earlier entries committed, which the
	// API contract documents as partial progress.
	now := time.Now().UTC()
	records := make([]model.Attendance, 0, len(req.Entries))
	for i, entry := range req.Entries {
		rec := model.Attendance{
			StudentID: entry.StudentID,
			SessionID: req.SessionID,
			Date:      date,
			Status:    model.AttendanceStatus(entry.Status),
			MarkedBy:  markedBy,
			MarkedAt:  now,
			Remarks:   entry.Remarks,
		}
		if err := s.repo.Attendance.Upsert(ctx, &rec); err != nil {
			s.logger.Error("attendance upsert failed",
				zap.Int64("student_id", entry.StudentID),
				zap.Int64("session_id", req.SessionID),
				zap.Error(err),
			)
			return nil, err
		}
		rec.Student = students[i]
		records = append(records, rec)
	}

	return records, nil
}

func (s *attendanceService) GetBySessionAndDate(ctx context.Context, sessionID int64, date time.Time) ([]model.Attendance, error) {
	return s.repo.Attendance.ListBySessionAndDate(ctx, sessionID, date)
}

func (s *attendanceService) GetByStudentBetween(ctx context.Context, studentID int64, start, end time.Time) ([]model.Attendance, error) {
	return s.repo.Attendance.ListByStudentBetween(ctx, studentID, start, end)
}

func (s *attendanceService) GetCourseStats(ctx context.Context, courseID int64) ([]dto.StudentAttendanceStats, error) {
	students, err := s.repo.Student.ListByCourseOrderByRoll(ctx, courseID)
	if err != nil {
		s.logger.Error("list course students failed", zap.Error(err))
		return nil, err
	}

	stats := make([]dto.StudentAttendanceStats, 0, len(students))
	for i := range students {
		student := &students[i]
		counts, err := s.repo.Attendance.CountByStudent(ctx, student.ID)
		if err != nil {
			s.logger.Error("count attendance failed",
				zap.Int64("student_id", student.ID),
				zap.Error(err),
			)
			return nil, err
		}

		stats = append(stats, dto.StudentAttendanceStats{
			StudentID:            student.ID,
			RollNumber:           student.RollNumber,
			FullName:             student.FullName(),
			TotalClasses:         counts.Total,
			PresentCount:         counts.Present,
			AttendancePercentage: percentage(counts.Present, counts.Total),
		})
	}

	return stats, nil
}

// percentage returns present/total*100 rounded to two decimals,
// and 0.0 for a student with no records at all.
func percentage(present, total int64) float64 {
	if total == 0 {
		return 0.0
	}
	pct := float64(present) * 100.0 / float64(total)
	return math.Round(pct*100.0) / 100.0
}
