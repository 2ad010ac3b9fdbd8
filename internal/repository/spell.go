package repository

import (
	"context"

	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/pkg/xcontext"
)

type SpellRepository interface {
	Create(ctx context.Context, data *entity.Spell) error
	GetByID(ctx context.Context, id string) (*entity.Spell, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Spell, error)
	GetByName(ctx context.Context, name string) (*entity.Spell, error)
	GetAll(ctx context.Context) ([]entity.Spell, error)
}

type spellRepository struct{}

func NewSpellRepository() *spellRepository {
	return &spellRepository{}
}

func (r *spellRepository) Create(ctx context.Context, data *entity.Spell) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *spellRepository) GetByID(ctx context.Context, id string) (*entity.Spell, error) {
	var record entity.Spell
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *spellRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Spell, error) {
	result := []entity.Spell{}
	if err := xcontext.DB(ctx).Where("id IN (?)", ids).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *spellRepository) GetByName(ctx context.Context, name string) (*entity.Spell, error) {
	var record entity.Spell
	if err := xcontext.DB(ctx).Where("name=?", name).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *spellRepository) GetAll(ctx context.Context) ([]entity.Spell, error) {
	result := []entity.Spell{}
	if err := xcontext.DB(ctx).Order("level ASC, name ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
