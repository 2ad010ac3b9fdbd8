package model

import "time"

const DefaultTimeLayout string = time.RFC3339Nano

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type Race struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	StrengthBonus     int    `json:"strength_bonus"`
	DexterityBonus    int    `json:"dexterity_bonus"`
	ConstitutionBonus int    `json:"constitution_bonus"`
	IntelligenceBonus int    `json:"intelligence_bonus"`
	WisdomBonus       int    `json:"wisdom_bonus"`
	CharismaBonus     int    `json:"charisma_bonus"`
}

type Class struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	HitDie      int    `json:"hit_die"`
}

type Background struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Skill struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	AssociatedAttribute string `json:"associated_attribute"`
}

type Feat struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Spell struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
	School      string `json:"school"`
}

type Equipment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ItemType    string `json:"item_type"`
	DamageDice  string `json:"damage_dice"`
	DamageType  string `json:"damage_type"`
	ArmorClass  int    `json:"armor_class"`
}

type Character struct {
	ID                 string      `json:"id"`
	UserID             string      `json:"user_id"`
	Name               string      `json:"name"`
	Age                int         `json:"age"`
	Alignment          string      `json:"alignment"`
	HP                 int         `json:"hp"`
	Level              int         `json:"level"`
	LastUpdatedLevel   *int        `json:"last_updated_level"`
	Strength           int         `json:"strength"`
	Dexterity          int         `json:"dexterity"`
	Constitution       int         `json:"constitution"`
	Intelligence       int         `json:"intelligence"`
	Wisdom             int         `json:"wisdom"`
	Charisma           int         `json:"charisma"`
	DeathSaveSuccesses int         `json:"death_save_successes"`
	DeathSaveFailures  int         `json:"death_save_failures"`
	CopperPieces       int         `json:"copper_pieces"`
	SilverPieces       int         `json:"silver_pieces"`
	GoldPieces         int         `json:"gold_pieces"`
	PlatinumPieces     int         `json:"platinum_pieces"`
	PortraitURL        string      `json:"portrait_url"`
	Race               Race        `json:"race"`
	Class              Class       `json:"class"`
	Background         *Background `json:"background"`
	Proficiencies      []Skill     `json:"proficiencies"`
	Inventory          []Equipment `json:"inventory"`
	Feats              []Feat      `json:"feats"`
	Spells             []Spell     `json:"spells"`
	CreatedAt          string      `json:"created_at"`
}

type ShortCharacter struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	PortraitURL string `json:"portrait_url"`
	Race        string `json:"race"`
	Class       string `json:"class"`
}
