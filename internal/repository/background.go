package repository

import (
	"context"

	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/pkg/xcontext"
)

type BackgroundRepository interface {
	Create(ctx context.Context, data *entity.Background) error
	GetByID(ctx context.Context, id string) (*entity.Background, error)
	GetByName(ctx context.Context, name string) (*entity.Background, error)
	GetAll(ctx context.Context) ([]entity.Background, error)
}

type backgroundRepository struct{}

func NewBackgroundRepository() *backgroundRepository {
	return &backgroundRepository{}
}

func (r *backgroundRepository) Create(ctx context.Context, data *entity.Background) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *backgroundRepository) GetByID(ctx context.Context, id string) (*entity.Background, error) {
	var record entity.Background
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *backgroundRepository) GetByName(ctx context.Context, name string) (*entity.Background, error) {
	var record entity.Background
	if err := xcontext.DB(ctx).Where("name=?", name).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *backgroundRepository) GetAll(ctx context.Context) ([]entity.Background, error) {
	result := []entity.Background{}
	if err := xcontext.DB(ctx).Order("name ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
