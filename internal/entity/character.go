package entity

import "database/sql"

type Character struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Name      string
	Age       int
	Alignment string
	HP        int

	Level int `gorm:"default:1"`
	// LastUpdatedLevel is the highest level at which an ability or feat
	// advancement was already granted. It guards against applying the same
	// level threshold twice.
	LastUpdatedLevel sql.NullInt64

	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
	Charisma     int

	DeathSaveSuccesses int `gorm:"default:0"`
	DeathSaveFailures  int `gorm:"default:0"`

	CopperPieces   int `gorm:"default:0"`
	SilverPieces   int `gorm:"default:0"`
	GoldPieces     int `gorm:"default:0"`
	PlatinumPieces int `gorm:"default:0"`

	PortraitURL string

	RaceID string
	Race   Race `gorm:"foreignKey:RaceID"`

	ClassID string
	Class   Class `gorm:"foreignKey:ClassID"`

	BackgroundID sql.NullString
	Background   Background `gorm:"foreignKey:BackgroundID"`

	Proficiencies []Skill     `gorm:"many2many:character_proficiencies"`
	Inventory     []Equipment `gorm:"many2many:character_equipment"`
	Feats         []Feat      `gorm:"many2many:character_feats"`
	Spells        []Spell     `gorm:"many2many:character_spells"`
}
