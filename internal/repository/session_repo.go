package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yash113gadia/AttendEase-Web/internal/model"
)

// SessionRepository is the sessions access interface.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	List(ctx context.Context) ([]model.Session, error)
	ListByCourse(ctx context.Context, courseID int64) ([]model.Session, error)
	ListByTeacher(ctx context.Context, teacherID int64) ([]model.Session, error)
	Delete(ctx context.Context, id int64) error
}

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo creates the gorm implementation.
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepo) GetByID(ctx context.Context, id int64) (*model.Session, error) {
	var session model.Session
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Subject").
		Where("session_id = ?", id).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) List(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Order("session_id").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) ListByCourse(ctx context.Context, courseID int64) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Where("course_id = ?", courseID).
		Order("session_id").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) ListByTeacher(ctx context.Context, teacherID int64) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("session_id").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", id).
		Delete(&model.Session{}).Error
}
