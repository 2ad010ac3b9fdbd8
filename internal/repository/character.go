package repository

import (
	"context"

	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/pkg/xcontext"
)

type CharacterRepository interface {
	Create(ctx context.Context, data *entity.Character) error
	GetByID(ctx context.Context, id string) (*entity.Character, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Character, error)
	Save(ctx context.Context, data *entity.Character) error
	UpdatePortraitURL(ctx context.Context, id, url string) error
	DeleteByID(ctx context.Context, id string) error
	ReplaceProficiencies(ctx context.Context, data *entity.Character, skills []entity.Skill) error
	ReplaceInventory(ctx context.Context, data *entity.Character, items []entity.Equipment) error
	ReplaceSpells(ctx context.Context, data *entity.Character, spells []entity.Spell) error
	AppendFeat(ctx context.Context, data *entity.Character, feat *entity.Feat) error
}

type characterRepository struct{}

func NewCharacterRepository() *characterRepository {
	return &characterRepository{}
}

func (r *characterRepository) Create(ctx context.Context, data *entity.Character) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *characterRepository) GetByID(ctx context.Context, id string) (*entity.Character, error) {
	var record entity.Character
	err := xcontext.DB(ctx).
		Preload("Race").
		Preload("Class").
		Preload("Background").
		Preload("Proficiencies").
		Preload("Inventory").
		Preload("Feats").
		Preload("Spells").
		Where("id=?", id).Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *characterRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Character, error) {
	result := []entity.Character{}
	err := xcontext.DB(ctx).
		Preload("Race").
		Preload("Class").
		Where("user_id=?", userID).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *characterRepository) Save(ctx context.Context, data *entity.Character) error {
	return xcontext.DB(ctx).Omit("Race", "Class", "Background", "Proficiencies", "Inventory", "Feats", "Spells").
		Save(data).Error
}

func (r *characterRepository) UpdatePortraitURL(ctx context.Context, id, url string) error {
	return xcontext.DB(ctx).Model(&entity.Character{}).
		Where("id=?", id).
		Update("portrait_url", url).Error
}

func (r *characterRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Character{}).Error
}

func (r *characterRepository) ReplaceProficiencies(
	ctx context.Context, data *entity.Character, skills []entity.Skill,
) error {
	return xcontext.DB(ctx).Model(data).Association("Proficiencies").Replace(skills)
}

func (r *characterRepository) ReplaceInventory(
	ctx context.Context, data *entity.Character, items []entity.Equipment,
) error {
	return xcontext.DB(ctx).Model(data).Association("Inventory").Replace(items)
}

func (r *characterRepository) ReplaceSpells(
	ctx context.Context, data *entity.Character, spells []entity.Spell,
) error {
	return xcontext.DB(ctx).Model(data).Association("Spells").Replace(spells)
}

func (r *characterRepository) AppendFeat(
	ctx context.Context, data *entity.Character, feat *entity.Feat,
) error {
	return xcontext.DB(ctx).Model(data).Association("Feats").Append(feat)
}
