package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yash113gadia/AttendEase-Web/internal/model"
)

// SubjectRepository is the subjects access interface.
type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	GetByID(ctx context.Context, id int64) (*model.Subject, error)
	List(ctx context.Context) ([]model.Subject, error)
	ListByInstitution(ctx context.Context, institutionID int64) ([]model.Subject, error)
	Delete(ctx context.Context, id int64) error
}

type subjectRepo struct {
	db *gorm.DB
}

// NewSubjectRepo creates the gorm implementation.
func NewSubjectRepo(db *gorm.DB) SubjectRepository {
	return &subjectRepo{db: db}
}

func (r *subjectRepo) Create(ctx context.Context, subject *model.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepo) GetByID(ctx context.Context, id int64) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", id).
		First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepo) List(ctx context.Context) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.WithContext(ctx).
		Order("subject_name").
		Find(&subjects).Error
	return subjects, err
}

func (r *subjectRepo) ListByInstitution(ctx context.Context, institutionID int64) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.WithContext(ctx).
		Where("institution_id = ?", institutionID).
		Order("subject_name").
		Find(&subjects).Error
	return subjects, err
}

func (r *subjectRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("subject_id = ?", id).
		Delete(&model.Subject{}).Error
}
