package entity

type Feat struct {
	Base

	Name        string `gorm:"unique"`
	Description string
}
