package entity

type Background struct {
	Base

	Name        string `gorm:"unique"`
	Description string
}
