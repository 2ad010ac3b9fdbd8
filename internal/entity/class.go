package entity

type Class struct {
	Base

	Name        string `gorm:"unique"`
	Description string
	HitDie      int
}
