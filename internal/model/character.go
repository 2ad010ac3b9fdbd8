package model

type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// LevelUpChoice is the wire form of an advancement selection. Type is one of
// all_abilities_plus_one, single_ability_plus_two, or grant_feat; Ability and
// FeatID qualify the latter two.
type LevelUpChoice struct {
	Type    string `json:"type"`
	Ability string `json:"ability"`
	FeatID  string `json:"feat_id"`
}

type CreateCharacterRequest struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Alignment    string `json:"alignment"`
	HP           int    `json:"hp"`
	RaceID       string `json:"race_id"`
	ClassID      string `json:"class_id"`
	BackgroundID string `json:"background_id"`

	// RollAbilities asks the server to roll the six scores. When false, the
	// scores in Abilities are taken as-is.
	RollAbilities bool           `json:"roll_abilities"`
	Abilities     *AbilityScores `json:"abilities"`

	SkillIDs     []string `json:"skill_ids"`
	EquipmentIDs []string `json:"equipment_ids"`
	SpellIDs     []string `json:"spell_ids"`
}

type CreateCharacterResponse struct {
	Character Character `json:"character"`
}

type GetCharacterRequest struct {
	ID string `json:"id"`
}

type GetCharacterResponse struct {
	Character Character `json:"character"`
}

type GetMyCharactersRequest struct{}

type GetMyCharactersResponse struct {
	Characters []ShortCharacter `json:"characters"`
}

type UpdateCharacterRequest struct {
	ID string `json:"id"`

	Name               string `json:"name"`
	Age                int    `json:"age"`
	Alignment          string `json:"alignment"`
	HP                 int    `json:"hp"`
	BackgroundID       string `json:"background_id"`
	DeathSaveSuccesses int    `json:"death_save_successes"`
	DeathSaveFailures  int    `json:"death_save_failures"`
	CopperPieces       int    `json:"copper_pieces"`
	SilverPieces       int    `json:"silver_pieces"`
	GoldPieces         int    `json:"gold_pieces"`
	PlatinumPieces     int    `json:"platinum_pieces"`

	NewLevel int            `json:"new_level"`
	Choice   *LevelUpChoice `json:"choice"`

	// SkillIDs replaces the proficiency set when non-nil. SpellIDs is merged
	// additively. EquipmentIDs replaces the inventory when non-nil.
	SkillIDs     []string `json:"skill_ids"`
	SpellIDs     []string `json:"spell_ids"`
	EquipmentIDs []string `json:"equipment_ids"`
}

type UpdateCharacterResponse struct {
	Character Character `json:"character"`
}

type DeleteCharacterRequest struct {
	ID string `json:"id"`
}

type DeleteCharacterResponse struct{}

type ExportCharacterRequest struct {
	ID string `json:"id"`
}

type ExportCharacterResponse struct {
	Character Character `json:"character"`
}

type ExportCharacterPDFRequest struct {
	ID string `json:"id"`
}

type ExportCharacterPDFResponse struct {
	FileName string `json:"-"`
	Data     []byte `json:"-"`
}

func (r ExportCharacterPDFResponse) RawInfo() (string, string, []byte) {
	return "application/pdf", r.FileName, r.Data
}

type UploadPortraitRequest struct {
	// Multipart form: character id in the "id" field, image in "image".
}

type UploadPortraitResponse struct {
	PortraitURL string `json:"portrait_url"`
}
