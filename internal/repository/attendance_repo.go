package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yash113gadia/AttendEase-Web/internal/model"
)

// AttendanceCounts is the single-snapshot count pair for one student.
type AttendanceCounts struct {
	Total   int64
	Present int64
}

// AttendanceRepository is the attendance ledger access interface.
type AttendanceRepository interface {
	// Upsert writes the record identified by (student_id, session_id,
	// date): insert when absent, overwrite status/marked_by/marked_at/
	// remarks when present. The whole operation is one atomic statement
	// riding on the table's unique index, so concurrent marks of the
	// same key converge to a single row with last-commit-wins.
	Upsert(ctx context.Context, rec *model.Attendance) error
	GetByKey(ctx context.Context, studentID, sessionID int64, date time.Time) (*model.Attendance, error)
	ListBySessionAndDate(ctx context.Context, sessionID int64, date time.Time) ([]model.Attendance, error)
	ListByStudentBetween(ctx context.Context, studentID int64, start, end time.Time) ([]model.Attendance, error)
	// CountByStudent reads total and present in one statement so a
	// concurrent upsert can never produce present > total.
	CountByStudent(ctx context.Context, studentID int64) (AttendanceCounts, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates the gorm implementation.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Upsert(ctx context.Context, rec *model.Attendance) error {
	return r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{
					{Name: "student_id"},
					{Name: "session_id"},
					{Name: "date"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"status", "marked_by", "marked_at", "remarks",
				}),
			},
			clause.Returning{},
		).
		Create(rec).Error
}

func (r *attendanceRepo) GetByKey(ctx context.Context, studentID, sessionID int64, date time.Time) (*model.Attendance, error) {
	var rec model.Attendance
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND session_id = ? AND date = ?", studentID, sessionID, date).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *attendanceRepo) ListBySessionAndDate(ctx context.Context, sessionID int64, date time.Time) ([]model.Attendance, error) {
	var recs []model.Attendance
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("session_id = ? AND date = ?", sessionID, date).
		Order("attendance_id").
		Find(&recs).Error
	return recs, err
}

func (r *attendanceRepo) ListByStudentBetween(ctx context.Context, studentID int64, start, end time.Time) ([]model.Attendance, error) {
	var recs []model.Attendance
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND date BETWEEN ? AND ?", studentID, start, end).
		Order("date").
		Find(&recs).Error
	return recs, err
}

func (r *attendanceRepo) CountByStudent(ctx context.Context, studentID int64) (AttendanceCounts, error) {
	var counts AttendanceCounts
	err := r.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) AS total,
		            COUNT(*) FILTER (WHERE status = ?) AS present
		       FROM attendance
		      WHERE student_id = ?`,
			model.StatusPresent, studentID).
		Scan(&counts).Error
	return counts, err
}
