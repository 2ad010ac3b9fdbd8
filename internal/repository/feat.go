package repository

import (
	"context"

	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/pkg/xcontext"
)

type FeatRepository interface {
	Create(ctx context.Context, data *entity.Feat) error
	GetByID(ctx context.Context, id string) (*entity.Feat, error)
	GetByName(ctx context.Context, name string) (*entity.Feat, error)
	GetAll(ctx context.Context) ([]entity.Feat, error)
}

type featRepository struct{}

func NewFeatRepository() *featRepository {
	return &featRepository{}
}

func (r *featRepository) Create(ctx context.Context, data *entity.Feat) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *featRepository) GetByID(ctx context.Context, id string) (*entity.Feat, error) {
	var record entity.Feat
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *featRepository) GetByName(ctx context.Context, name string) (*entity.Feat, error) {
	var record entity.Feat
	if err := xcontext.DB(ctx).Where("name=?", name).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *featRepository) GetAll(ctx context.Context) ([]entity.Feat, error) {
	result := []entity.Feat{}
	if err := xcontext.DB(ctx).Order("name ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
