package entity

type Equipment struct {
	Base

	Name        string `gorm:"unique"`
	Description string
	ItemType    string
	DamageDice  string
	DamageType  string
	ArmorClass  int
}
