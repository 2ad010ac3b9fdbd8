package entity

type Spell struct {
	Base

	Name        string `gorm:"unique"`
	Description string
	Level       int
	School      string
}
