package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yash113gadia/AttendEase-Web/internal/model"
)

// InstitutionRepository is the institutions access interface.
type InstitutionRepository interface {
	Create(ctx context.Context, inst *model.Institution) error
	GetByID(ctx context.Context, id int64) (*model.Institution, error)
	List(ctx context.Context) ([]model.Institution, error)
	Delete(ctx context.Context, id int64) error
}

type institutionRepo struct {
	db *gorm.DB
}

// NewInstitutionRepo creates the gorm implementation.
func NewInstitutionRepo(db *gorm.DB) InstitutionRepository {
	return &institutionRepo{db: db}
}

func (r *institutionRepo) Create(ctx context.Context, inst *model.Institution) error {
	return r.db.WithContext(ctx).Create(inst).Error
}

func (r *institutionRepo) GetByID(ctx context.Context, id int64) (*model.Institution, error) {
	var inst model.Institution
	err := r.db.WithContext(ctx).
		Where("institution_id = ?", id).
		First(&inst).Error
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *institutionRepo) List(ctx context.Context) ([]model.Institution, error) {
	var insts []model.Institution
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&insts).Error
	return insts, err
}

func (r *institutionRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("institution_id = ?", id).
		Delete(&model.Institution{}).Error
}
