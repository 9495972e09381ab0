package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yash113gadia/AttendEase-Web/internal/model"
)

// StudentRepository is the students access interface.
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id int64) (*model.Student, error)
	List(ctx context.Context) ([]model.Student, error)
	// ListByCourseOrderByRoll returns a course's students ordered by
	// roll number ascending; attendance stats depend on this ordering.
	ListByCourseOrderByRoll(ctx context.Context, courseID int64) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id int64) error
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo creates the gorm implementation.
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("student_id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Order("roll_number").
		Find(&students).Error
	return students, err
}

func (r *studentRepo) ListByCourseOrderByRoll(ctx context.Context, courseID int64) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("roll_number").
		Find(&students).Error
	return students, err
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("student_id = ?", id).
		Delete(&model.Student{}).Error
}
