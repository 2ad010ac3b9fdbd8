package repository

import (
	"context"

	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/pkg/xcontext"
)

type EquipmentRepository interface {
	Create(ctx context.Context, data *entity.Equipment) error
	GetByID(ctx context.Context, id string) (*entity.Equipment, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Equipment, error)
	GetByName(ctx context.Context, name string) (*entity.Equipment, error)
	GetAll(ctx context.Context) ([]entity.Equipment, error)
}

type equipmentRepository struct{}

func NewEquipmentRepository() *equipmentRepository {
	return &equipmentRepository{}
}

func (r *equipmentRepository) Create(ctx context.Context, data *entity.Equipment) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*entity.Equipment, error) {
	var record entity.Equipment
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *equipmentRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Equipment, error) {
	result := []entity.Equipment{}
	if err := xcontext.DB(ctx).Where("id IN (?)", ids).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *equipmentRepository) GetByName(ctx context.Context, name string) (*entity.Equipment, error) {
	var record entity.Equipment
	if err := xcontext.DB(ctx).Where("name=?", name).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *equipmentRepository) GetAll(ctx context.Context) ([]entity.Equipment, error) {
	result := []entity.Equipment{}
	if err := xcontext.DB(ctx).Order("name ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
