package migration

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// migrate0001 introduces character ownership. Characters created before user
// accounts existed are assigned to a fallback user.
func migrate0001(ctx context.Context) error {
	migrator := xcontext.DB(ctx).Migrator()

	if !migrator.HasColumn(&entity.Character{}, "user_id") {
		if err := migrator.AddColumn(&entity.Character{}, "user_id"); err != nil {
			return err
		}
	}

	var fallback entity.User
	err := xcontext.DB(ctx).Take(&fallback, "name=?", "migrated_user").Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fallback = entity.User{
			Base: entity.Base{ID: uuid.NewString()},
			Name: "migrated_user",
		}
		if err := xcontext.DB(ctx).Create(&fallback).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	return xcontext.DB(ctx).
		Model(&entity.Character{}).
		Where("user_id IS NULL OR user_id = ''").
		Update("user_id", fallback.ID).Error
}
