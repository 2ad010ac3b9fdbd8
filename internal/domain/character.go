package domain

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tavernsheet/backend/internal/common"
	"github.com/tavernsheet/backend/internal/domain/progression"
	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/internal/model"
	"github.com/tavernsheet/backend/internal/repository"
	"github.com/tavernsheet/backend/pkg/errorx"
	"github.com/tavernsheet/backend/pkg/storage"
	"github.com/tavernsheet/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CharacterDomain interface {
	Create(ctx context.Context, req *model.CreateCharacterRequest) (*model.CreateCharacterResponse, error)
	Get(ctx context.Context, req *model.GetCharacterRequest) (*model.GetCharacterResponse, error)
	GetMy(ctx context.Context, req *model.GetMyCharactersRequest) (*model.GetMyCharactersResponse, error)
	Update(ctx context.Context, req *model.UpdateCharacterRequest) (*model.UpdateCharacterResponse, error)
	Delete(ctx context.Context, req *model.DeleteCharacterRequest) (*model.DeleteCharacterResponse, error)
	Export(ctx context.Context, req *model.ExportCharacterRequest) (*model.ExportCharacterResponse, error)
	ExportPDF(ctx context.Context, req *model.ExportCharacterPDFRequest) (*model.ExportCharacterPDFResponse, error)
	UploadPortrait(ctx context.Context, req *model.UploadPortraitRequest) (*model.UploadPortraitResponse, error)
}

type characterDomain struct {
	characterRepo  repository.CharacterRepository
	raceRepo       repository.RaceRepository
	classRepo      repository.ClassRepository
	backgroundRepo repository.BackgroundRepository
	equipmentRepo  repository.EquipmentRepository
	engine         *progression.Engine
	fileStorage    storage.Storage
}

func NewCharacterDomain(
	characterRepo repository.CharacterRepository,
	raceRepo repository.RaceRepository,
	classRepo repository.ClassRepository,
	backgroundRepo repository.BackgroundRepository,
	equipmentRepo repository.EquipmentRepository,
	engine *progression.Engine,
	fileStorage storage.Storage,
) CharacterDomain {
	return &characterDomain{
		characterRepo:  characterRepo,
		raceRepo:       raceRepo,
		classRepo:      classRepo,
		backgroundRepo: backgroundRepo,
		equipmentRepo:  equipmentRepo,
		engine:         engine,
		fileStorage:    fileStorage,
	}
}

func (d *characterDomain) Create(
	ctx context.Context, req *model.CreateCharacterRequest,
) (*model.CreateCharacterResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty character name")
	}

	if _, err := d.raceRepo.GetByID(ctx, req.RaceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found race")
		}

		xcontext.Logger(ctx).Errorf("Cannot get race: %v", err)
		return nil, errorx.Unknown
	}

	if _, err := d.classRepo.GetByID(ctx, req.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found class")
		}

		xcontext.Logger(ctx).Errorf("Cannot get class: %v", err)
		return nil, errorx.Unknown
	}

	character := &entity.Character{
		Base:      entity.Base{ID: uuid.NewString()},
		UserID:    xcontext.RequestUserID(ctx),
		Name:      req.Name,
		Age:       req.Age,
		Alignment: req.Alignment,
		HP:        req.HP,
		Level:     1,
		RaceID:    req.RaceID,
		ClassID:   req.ClassID,
	}

	if req.BackgroundID != "" {
		if _, err := d.backgroundRepo.GetByID(ctx, req.BackgroundID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found background")
			}

			xcontext.Logger(ctx).Errorf("Cannot get background: %v", err)
			return nil, errorx.Unknown
		}

		character.BackgroundID = sql.NullString{Valid: true, String: req.BackgroundID}
	}

	if req.RollAbilities {
		if err := d.engine.RollAbilityScores(ctx, character); err != nil {
			return nil, err
		}
	} else {
		if req.Abilities == nil {
			return nil, errorx.New(errorx.BadRequest, "Not found ability scores")
		}

		character.Strength = req.Abilities.Strength
		character.Dexterity = req.Abilities.Dexterity
		character.Constitution = req.Abilities.Constitution
		character.Intelligence = req.Abilities.Intelligence
		character.Wisdom = req.Abilities.Wisdom
		character.Charisma = req.Abilities.Charisma
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.characterRepo.Create(ctx, character); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create character: %v", err)
		return nil, errorx.Unknown
	}

	// Initial proficiencies and spells go through the same validation and
	// merge path as a level-up.
	if req.SkillIDs != nil || len(req.SpellIDs) > 0 {
		err := d.engine.ApplyLevelUp(ctx, character, 1, nil, req.SkillIDs, req.SpellIDs)
		if err != nil {
			return nil, err
		}
	}

	if len(req.EquipmentIDs) > 0 {
		if err := d.replaceInventory(ctx, character, req.EquipmentIDs); err != nil {
			return nil, err
		}
	}

	xcontext.WithCommitDBTransaction(ctx)

	created, err := d.characterRepo.GetByID(ctx, character.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get created character: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateCharacterResponse{Character: model.ConvertCharacter(created)}, nil
}

func (d *characterDomain) Get(
	ctx context.Context, req *model.GetCharacterRequest,
) (*model.GetCharacterResponse, error) {
	character, err := d.getOwnedCharacter(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &model.GetCharacterResponse{Character: model.ConvertCharacter(character)}, nil
}

func (d *characterDomain) GetMy(
	ctx context.Context, req *model.GetMyCharactersRequest,
) (*model.GetMyCharactersResponse, error) {
	characters, err := d.characterRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get characters: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.ShortCharacter{}
	for i := range characters {
		result = append(result, model.ConvertShortCharacter(&characters[i]))
	}

	return &model.GetMyCharactersResponse{Characters: result}, nil
}

func (d *characterDomain) Update(
	ctx context.Context, req *model.UpdateCharacterRequest,
) (*model.UpdateCharacterResponse, error) {
	character, err := d.getOwnedCharacter(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		character.Name = req.Name
	}
	if req.Alignment != "" {
		character.Alignment = req.Alignment
	}

	character.Age = req.Age
	character.HP = req.HP
	character.DeathSaveSuccesses = req.DeathSaveSuccesses
	character.DeathSaveFailures = req.DeathSaveFailures
	character.CopperPieces = req.CopperPieces
	character.SilverPieces = req.SilverPieces
	character.GoldPieces = req.GoldPieces
	character.PlatinumPieces = req.PlatinumPieces

	if req.BackgroundID != "" {
		if _, err := d.backgroundRepo.GetByID(ctx, req.BackgroundID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found background")
			}

			xcontext.Logger(ctx).Errorf("Cannot get background: %v", err)
			return nil, errorx.Unknown
		}

		character.BackgroundID = sql.NullString{Valid: true, String: req.BackgroundID}
	}

	newLevel := character.Level
	if req.NewLevel > 0 {
		newLevel = req.NewLevel
	}

	var choice *progression.Choice
	if req.Choice != nil {
		choice, err = progression.ParseChoice(req.Choice.Type, req.Choice.Ability, req.Choice.FeatID)
		if err != nil {
			return nil, err
		}
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	err = d.engine.ApplyLevelUp(ctx, character, newLevel, choice, req.SkillIDs, req.SpellIDs)
	if err != nil {
		return nil, err
	}

	if req.EquipmentIDs != nil {
		if err := d.replaceInventory(ctx, character, req.EquipmentIDs); err != nil {
			return nil, err
		}
	}

	xcontext.WithCommitDBTransaction(ctx)

	updated, err := d.characterRepo.GetByID(ctx, character.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get updated character: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateCharacterResponse{Character: model.ConvertCharacter(updated)}, nil
}

func (d *characterDomain) Delete(
	ctx context.Context, req *model.DeleteCharacterRequest,
) (*model.DeleteCharacterResponse, error) {
	character, err := d.getOwnedCharacter(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.characterRepo.DeleteByID(ctx, character.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete character: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteCharacterResponse{}, nil
}

func (d *characterDomain) Export(
	ctx context.Context, req *model.ExportCharacterRequest,
) (*model.ExportCharacterResponse, error) {
	character, err := d.getOwnedCharacter(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &model.ExportCharacterResponse{Character: model.ConvertCharacter(character)}, nil
}

func (d *characterDomain) ExportPDF(
	ctx context.Context, req *model.ExportCharacterPDFRequest,
) (*model.ExportCharacterPDFResponse, error) {
	character, err := d.getOwnedCharacter(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	data, err := renderCharacterSheetPDF(model.ConvertCharacter(character))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot render character sheet: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ExportCharacterPDFResponse{
		FileName: fmt.Sprintf("%s.pdf", character.Name),
		Data:     data,
	}, nil
}

func (d *characterDomain) UploadPortrait(
	ctx context.Context, req *model.UploadPortraitRequest,
) (*model.UploadPortraitResponse, error) {
	httpReq := xcontext.HTTPRequest(ctx)
	if err := httpReq.ParseMultipartForm(xcontext.Configs(ctx).File.MaxSize); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Request must be multipart form")
	}

	character, err := d.getOwnedCharacter(ctx, httpReq.FormValue("id"))
	if err != nil {
		return nil, err
	}

	uploaded, err := common.ProcessImage(ctx, d.fileStorage, "image")
	if err != nil {
		return nil, err
	}

	portraitURL := uploaded[0].Url
	if err := d.characterRepo.UpdatePortraitURL(ctx, character.ID, portraitURL); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update portrait url: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UploadPortraitResponse{PortraitURL: portraitURL}, nil
}

func (d *characterDomain) getOwnedCharacter(ctx context.Context, id string) (*entity.Character, error) {
	if id == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty character id")
	}

	character, err := d.characterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found character")
		}

		xcontext.Logger(ctx).Errorf("Cannot get character: %v", err)
		return nil, errorx.Unknown
	}

	if character.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	return character, nil
}

func (d *characterDomain) replaceInventory(
	ctx context.Context, character *entity.Character, equipmentIDs []string,
) error {
	items, err := d.equipmentRepo.GetByIDs(ctx, equipmentIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get equipment: %v", err)
		return errorx.Unknown
	}

	if len(items) != len(equipmentIDs) {
		return errorx.New(errorx.NotFound, "Not found some equipment")
	}

	if err := d.characterRepo.ReplaceInventory(ctx, character, items); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot replace inventory: %v", err)
		return errorx.Unknown
	}

	return nil
}
