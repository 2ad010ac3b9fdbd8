package migration

import (
	"context"

	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/pkg/xcontext"
)

// When this migrator is called, no need to call other migrators.
func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Race{},
		&entity.Class{},
		&entity.Background{},
		&entity.Skill{},
		&entity.Feat{},
		&entity.Spell{},
		&entity.Equipment{},
		&entity.Character{},
	)
}
