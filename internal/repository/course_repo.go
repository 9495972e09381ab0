package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yash113gadia/AttendEase-Web/internal/model"
)

// CourseRepository is the courses access interface.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id int64) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	ListByInstitution(ctx context.Context, institutionID int64) ([]model.Course, error)
	Update(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id int64) error
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo creates the gorm implementation.
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Preload("Institution").
		Where("course_id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Order("course_name").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepo) ListByInstitution(ctx context.Context, institutionID int64) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Where("institution_id = ?", institutionID).
		Order("course_name").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepo) Update(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("course_id = ?", id).
		Delete(&model.Course{}).Error
}
