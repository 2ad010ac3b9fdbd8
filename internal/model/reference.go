package model

type GetRacesRequest struct{}

type GetRacesResponse struct {
	Races []Race `json:"races"`
}

type CreateRaceRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	StrengthBonus     int    `json:"strength_bonus"`
	DexterityBonus    int    `json:"dexterity_bonus"`
	ConstitutionBonus int    `json:"constitution_bonus"`
	IntelligenceBonus int    `json:"intelligence_bonus"`
	WisdomBonus       int    `json:"wisdom_bonus"`
	CharismaBonus     int    `json:"charisma_bonus"`
}

type CreateRaceResponse struct {
	ID string `json:"id"`
}

type GetClassesRequest struct{}

type GetClassesResponse struct {
	Classes []Class `json:"classes"`
}

type CreateClassRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	HitDie      int    `json:"hit_die"`
}

type CreateClassResponse struct {
	ID string `json:"id"`
}

type GetBackgroundsRequest struct{}

type GetBackgroundsResponse struct {
	Backgrounds []Background `json:"backgrounds"`
}

type CreateBackgroundRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateBackgroundResponse struct {
	ID string `json:"id"`
}

type GetSkillsRequest struct{}

type GetSkillsResponse struct {
	Skills []Skill `json:"skills"`
}

type CreateSkillRequest struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	AssociatedAttribute string `json:"associated_attribute"`
}

type CreateSkillResponse struct {
	ID string `json:"id"`
}

type GetFeatsRequest struct{}

type GetFeatsResponse struct {
	Feats []Feat `json:"feats"`
}

type CreateFeatRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateFeatResponse struct {
	ID string `json:"id"`
}

type GetSpellsRequest struct{}

type GetSpellsResponse struct {
	Spells []Spell `json:"spells"`
}

type CreateSpellRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
	School      string `json:"school"`
}

type CreateSpellResponse struct {
	ID string `json:"id"`
}

type GetEquipmentRequest struct{}

type GetEquipmentResponse struct {
	Equipment []Equipment `json:"equipment"`
}

type CreateEquipmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ItemType    string `json:"item_type"`
	DamageDice  string `json:"damage_dice"`
	DamageType  string `json:"damage_type"`
	ArmorClass  int    `json:"armor_class"`
}

type CreateEquipmentResponse struct {
	ID string `json:"id"`
}
