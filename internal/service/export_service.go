package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yash113gadia/AttendEase-Web/internal/model"
	"github.com/yash113gadia/AttendEase-Web/internal/repository"
)

var (
	ErrExportNoStudents = errors.New("course has no students to export")
	ErrExportNoSessions = errors.New("course has no scheduled sessions")
)

// ExportService renders attendance data into downloadable formats:
// per-course stats as Excel, per-course session timetables as iCalendar.
type ExportService interface {
	// ExportCourseStats returns an .xlsx workbook plus a suggested
	// filename; the handler sets the download headers.
	ExportCourseStats(ctx context.Context, courseID int64) (*bytes.Buffer, string, error)
	// ExportCourseTimetable returns RFC 5545 iCalendar content with one
	// weekly-recurring event per session.
	ExportCourseTimetable(ctx context.Context, courseID int64) (string, string, error)
}

type exportService struct {
	repo       *repository.Repository
	attendance AttendanceService
	logger     *zap.Logger
}

// NewExportService creates the ExportService implementation.
func NewExportService(repo *repository.Repository, attendance AttendanceService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, attendance: attendance, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportCourseStats: attendance summary workbook
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportCourseStats(ctx context.Context, courseID int64) (*bytes.Buffer, string, error) {
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotFound
		}
		s.logger.Error("lookup course failed", zap.Error(err))
		return nil, "", err
	}

	stats, err := s.attendance.GetCourseStats(ctx, courseID)
	if err != nil {
		return nil, "", err
	}
	if len(stats) == 0 {
		return nil, "", ErrExportNoStudents
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Roll Number", "Student", "Total Classes", "Present", "Attendance %"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, st := range stats {
		values := []interface{}{
			st.RollNumber,
			st.FullName,
			st.TotalClasses,
			st.PresentCount,
			st.AttendancePercentage,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "B", 24)
	f.SetColWidth(sheet, "C", "E", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write workbook failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("%s-attendance.xlsx", slugify(course.CourseName))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportCourseTimetable: weekly session calendar
// ═══════════════════════════════════════════════════════════

var weekdayByName = map[string]time.Weekday{
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
	"SUNDAY":    time.Sunday,
}

func (s *exportService) ExportCourseTimetable(ctx context.Context, courseID int64) (string, string, error) {
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrNotFound
		}
		s.logger.Error("lookup course failed", zap.Error(err))
		return "", "", err
	}

	sessions, err := s.repo.Session.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("list sessions failed", zap.Error(err))
		return "", "", err
	}
	if len(sessions) == 0 {
		return "", "", ErrExportNoSessions
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//attendease//timetable//EN")

	now := time.Now().UTC()
	for i := range sessions {
		sess := &sessions[i]
		start, end, ok := nextOccurrence(sess, now)
		if !ok {
			continue // unparseable schedule metadata, skip the event
		}

		ev := cal.AddEvent(fmt.Sprintf("session-%d@attendease", sess.ID))
		ev.SetDtStampTime(now)
		ev.SetStartAt(start)
		ev.SetEndAt(end)
		ev.SetSummary(sessionSummary(course, sess))
		if sess.Room != "" {
			ev.SetLocation(sess.Room)
		}
		ev.SetProperty(ics.ComponentPropertyRrule, "FREQ=WEEKLY")
	}

	filename := fmt.Sprintf("%s-timetable.ics", slugify(course.CourseName))
	return cal.Serialize(), filename, nil
}

// nextOccurrence resolves the first start/end instants of a session on
// or after ref, from its (day_of_week, HH:MM) schedule metadata.
func nextOccurrence(sess *model.Session, ref time.Time) (time.Time, time.Time, bool) {
	weekday, ok := weekdayByName[sess.DayOfWeek]
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	startClock, err := time.Parse("15:04", sess.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	endClock, err := time.Parse("15:04", sess.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	day := ref.Truncate(24 * time.Hour)
	for day.Weekday() != weekday {
		day = day.AddDate(0, 0, 1)
	}

	start := time.Date(day.Year(), day.Month(), day.Day(),
		startClock.Hour(), startClock.Minute(), 0, 0, time.UTC)
	end := time.Date(day.Year(), day.Month(), day.Day(),
		endClock.Hour(), endClock.Minute(), 0, 0, time.UTC)
	return start, end, true
}

func sessionSummary(course *model.Course, sess *model.Session) string {
	if sess.Subject != nil {
		return fmt.Sprintf("%s - %s", course.CourseName, sess.Subject.SubjectName)
	}
	return course.CourseName
}

// slugify lowercases a name into a filesystem-friendly token.
func slugify(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ' || r == '-' || r == '_':
			if len(out) > 0 && out[len(out)-1] != '-' {
				out = append(out, '-')
			}
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return "course"
	}
	return string(out)
}
