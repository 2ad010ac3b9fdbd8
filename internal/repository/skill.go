package repository

import (
	"context"

	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/pkg/xcontext"
)

type SkillRepository interface {
	Create(ctx context.Context, data *entity.Skill) error
	GetByID(ctx context.Context, id string) (*entity.Skill, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Skill, error)
	GetByName(ctx context.Context, name string) (*entity.Skill, error)
	GetAll(ctx context.Context) ([]entity.Skill, error)
}

type skillRepository struct{}

func NewSkillRepository() *skillRepository {
	return &skillRepository{}
}

func (r *skillRepository) Create(ctx context.Context, data *entity.Skill) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *skillRepository) GetByID(ctx context.Context, id string) (*entity.Skill, error) {
	var record entity.Skill
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *skillRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Skill, error) {
	result := []entity.Skill{}
	if err := xcontext.DB(ctx).Where("id IN (?)", ids).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *skillRepository) GetByName(ctx context.Context, name string) (*entity.Skill, error) {
	var record entity.Skill
	if err := xcontext.DB(ctx).Where("name=?", name).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *skillRepository) GetAll(ctx context.Context) ([]entity.Skill, error) {
	result := []entity.Skill{}
	if err := xcontext.DB(ctx).Order("name ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
