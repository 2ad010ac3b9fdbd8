package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/tavernsheet/backend/internal/common"
	"github.com/tavernsheet/backend/internal/entity"
	"github.com/tavernsheet/backend/internal/model"
	"github.com/tavernsheet/backend/internal/repository"
	"github.com/tavernsheet/backend/pkg/errorx"
	"github.com/tavernsheet/backend/pkg/xcontext"
)

// ReferenceDomain serves the game reference data: races, classes, backgrounds,
// skills, feats, spells, and equipment. Reads are public, creates are
// admin-only.
type ReferenceDomain interface {
	GetRaces(ctx context.Context, req *model.GetRacesRequest) (*model.GetRacesResponse, error)
	CreateRace(ctx context.Context, req *model.CreateRaceRequest) (*model.CreateRaceResponse, error)
	GetClasses(ctx context.Context, req *model.GetClassesRequest) (*model.GetClassesResponse, error)
	CreateClass(ctx context.Context, req *model.CreateClassRequest) (*model.CreateClassResponse, error)
	GetBackgrounds(ctx context.Context, req *model.GetBackgroundsRequest) (*model.GetBackgroundsResponse, error)
	CreateBackground(ctx context.Context, req *model.CreateBackgroundRequest) (*model.CreateBackgroundResponse, error)
	GetSkills(ctx context.Context, req *model.GetSkillsRequest) (*model.GetSkillsResponse, error)
	CreateSkill(ctx context.Context, req *model.CreateSkillRequest) (*model.CreateSkillResponse, error)
	GetFeats(ctx context.Context, req *model.GetFeatsRequest) (*model.GetFeatsResponse, error)
	CreateFeat(ctx context.Context, req *model.CreateFeatRequest) (*model.CreateFeatResponse, error)
	GetSpells(ctx context.Context, req *model.GetSpellsRequest) (*model.GetSpellsResponse, error)
	CreateSpell(ctx context.Context, req *model.CreateSpellRequest) (*model.CreateSpellResponse, error)
	GetEquipment(ctx context.Context, req *model.GetEquipmentRequest) (*model.GetEquipmentResponse, error)
	CreateEquipment(ctx context.Context, req *model.CreateEquipmentRequest) (*model.CreateEquipmentResponse, error)
}

type referenceDomain struct {
	raceRepo       repository.RaceRepository
	classRepo      repository.ClassRepository
	backgroundRepo repository.BackgroundRepository
	skillRepo      repository.SkillRepository
	featRepo       repository.FeatRepository
	spellRepo      repository.SpellRepository
	equipmentRepo  repository.EquipmentRepository
	roleVerifier   *common.GlobalRoleVerifier
}

func NewReferenceDomain(
	raceRepo repository.RaceRepository,
	classRepo repository.ClassRepository,
	backgroundRepo repository.BackgroundRepository,
	skillRepo repository.SkillRepository,
	featRepo repository.FeatRepository,
	spellRepo repository.SpellRepository,
	equipmentRepo repository.EquipmentRepository,
	userRepo repository.UserRepository,
) ReferenceDomain {
	return &referenceDomain{
		raceRepo:       raceRepo,
		classRepo:      classRepo,
		backgroundRepo: backgroundRepo,
		skillRepo:      skillRepo,
		featRepo:       featRepo,
		spellRepo:      spellRepo,
		equipmentRepo:  equipmentRepo,
		roleVerifier:   common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *referenceDomain) GetRaces(
	ctx context.Context, req *model.GetRacesRequest,
) (*model.GetRacesResponse, error) {
	races, err := d.raceRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get races: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Race{}
	for i := range races {
		result = append(result, model.ConvertRace(&races[i]))
	}

	return &model.GetRacesResponse{Races: result}, nil
}

func (d *referenceDomain) CreateRace(
	ctx context.Context, req *model.CreateRaceRequest,
) (*model.CreateRaceResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	race := &entity.Race{
		Base:              entity.Base{ID: uuid.NewString()},
		Name:              req.Name,
		Description:       req.Description,
		StrengthBonus:     req.StrengthBonus,
		DexterityBonus:    req.DexterityBonus,
		ConstitutionBonus: req.ConstitutionBonus,
		IntelligenceBonus: req.IntelligenceBonus,
		WisdomBonus:       req.WisdomBonus,
		CharismaBonus:     req.CharismaBonus,
	}
	if err := d.raceRepo.Create(ctx, race); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create race: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateRaceResponse{ID: race.ID}, nil
}

func (d *referenceDomain) GetClasses(
	ctx context.Context, req *model.GetClassesRequest,
) (*model.GetClassesResponse, error) {
	classes, err := d.classRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get classes: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Class{}
	for i := range classes {
		result = append(result, model.ConvertClass(&classes[i]))
	}

	return &model.GetClassesResponse{Classes: result}, nil
}

func (d *referenceDomain) CreateClass(
	ctx context.Context, req *model.CreateClassRequest,
) (*model.CreateClassResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	class := &entity.Class{
		Base:        entity.Base{ID: uuid.NewString()},
		Name:        req.Name,
		Description: req.Description,
		HitDie:      req.HitDie,
	}
	if err := d.classRepo.Create(ctx, class); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create class: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateClassResponse{ID: class.ID}, nil
}

func (d *referenceDomain) GetBackgrounds(
	ctx context.Context, req *model.GetBackgroundsRequest,
) (*model.GetBackgroundsResponse, error) {
	backgrounds, err := d.backgroundRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get backgrounds: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Background{}
	for i := range backgrounds {
		result = append(result, model.ConvertBackground(&backgrounds[i]))
	}

	return &model.GetBackgroundsResponse{Backgrounds: result}, nil
}

func (d *referenceDomain) CreateBackground(
	ctx context.Context, req *model.CreateBackgroundRequest,
) (*model.CreateBackgroundResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	background := &entity.Background{
		Base:        entity.Base{ID: uuid.NewString()},
		Name:        req.Name,
		Description: req.Description,
	}
	if err := d.backgroundRepo.Create(ctx, background); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create background: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateBackgroundResponse{ID: background.ID}, nil
}

func (d *referenceDomain) GetSkills(
	ctx context.Context, req *model.GetSkillsRequest,
) (*model.GetSkillsResponse, error) {
	skills, err := d.skillRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get skills: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetSkillsResponse{Skills: model.ConvertSkills(skills)}, nil
}

func (d *referenceDomain) CreateSkill(
	ctx context.Context, req *model.CreateSkillRequest,
) (*model.CreateSkillResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	skill := &entity.Skill{
		Base:                entity.Base{ID: uuid.NewString()},
		Name:                req.Name,
		Description:         req.Description,
		AssociatedAttribute: req.AssociatedAttribute,
	}
	if err := d.skillRepo.Create(ctx, skill); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create skill: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateSkillResponse{ID: skill.ID}, nil
}

func (d *referenceDomain) GetFeats(
	ctx context.Context, req *model.GetFeatsRequest,
) (*model.GetFeatsResponse, error) {
	feats, err := d.featRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get feats: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetFeatsResponse{Feats: model.ConvertFeats(feats)}, nil
}

func (d *referenceDomain) CreateFeat(
	ctx context.Context, req *model.CreateFeatRequest,
) (*model.CreateFeatResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	feat := &entity.Feat{
		Base:        entity.Base{ID: uuid.NewString()},
		Name:        req.Name,
		Description: req.Description,
	}
	if err := d.featRepo.Create(ctx, feat); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create feat: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateFeatResponse{ID: feat.ID}, nil
}

func (d *referenceDomain) GetSpells(
	ctx context.Context, req *model.GetSpellsRequest,
) (*model.GetSpellsResponse, error) {
	spells, err := d.spellRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get spells: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetSpellsResponse{Spells: model.ConvertSpells(spells)}, nil
}

func (d *referenceDomain) CreateSpell(
	ctx context.Context, req *model.CreateSpellRequest,
) (*model.CreateSpellResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	spell := &entity.Spell{
		Base:        entity.Base{ID: uuid.NewString()},
		Name:        req.Name,
		Description: req.Description,
		Level:       req.Level,
		School:      req.School,
	}
	if err := d.spellRepo.Create(ctx, spell); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create spell: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateSpellResponse{ID: spell.ID}, nil
}

func (d *referenceDomain) GetEquipment(
	ctx context.Context, req *model.GetEquipmentRequest,
) (*model.GetEquipmentResponse, error) {
	items, err := d.equipmentRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get equipment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetEquipmentResponse{Equipment: model.ConvertEquipments(items)}, nil
}

func (d *referenceDomain) CreateEquipment(
	ctx context.Context, req *model.CreateEquipmentRequest,
) (*model.CreateEquipmentResponse, error) {
	if err := d.roleVerifier.Verify(ctx, entity.GlobalAdminRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	item := &entity.Equipment{
		Base:        entity.Base{ID: uuid.NewString()},
		Name:        req.Name,
		Description: req.Description,
		ItemType:    req.ItemType,
		DamageDice:  req.DamageDice,
		DamageType:  req.DamageType,
		ArmorClass:  req.ArmorClass,
	}
	if err := d.equipmentRepo.Create(ctx, item); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create equipment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateEquipmentResponse{ID: item.ID}, nil
}
