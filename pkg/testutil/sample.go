package testutil

import (
	"context"
	"reflect"

	"github.com/google/uuid"
	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/internal/repository"
)

// SampleCharacter creates a new character in database with many fields
// randomized. The sample character can be overwritten by non-zero fields of
// init.
func SampleCharacter(ctx context.Context, init *entity.Character) (entity.Character, error) {
	characterRepo := repository.NewCharacterRepository()

	sample := &entity.Character{
		Base:      entity.Base{ID: uuid.NewString()},
		UserID:    "user1",
		Name:      uuid.NewString(),
		Age:       25,
		Alignment: "Neutral Good",
		HP:        10,
		Level:     1,
		Strength:  10, Dexterity: 10, Constitution: 10,
		Intelligence: 10, Wisdom: 10, Charisma: 10,
		RaceID:  "race_human",
		ClassID: "class_wizard",
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := characterRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if !overwriteField.IsZero() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
