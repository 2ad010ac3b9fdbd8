package entity

type Race struct {
	Base

	Name        string `gorm:"unique"`
	Description string

	StrengthBonus     int `gorm:"default:0"`
	DexterityBonus    int `gorm:"default:0"`
	ConstitutionBonus int `gorm:"default:0"`
	IntelligenceBonus int `gorm:"default:0"`
	WisdomBonus       int `gorm:"default:0"`
	CharismaBonus     int `gorm:"default:0"`
}
