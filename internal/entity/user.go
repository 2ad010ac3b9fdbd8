package entity

type GlobalRole string

const (
	RoleSuperAdmin = GlobalRole("super_admin")
	RoleAdmin      = GlobalRole("admin")
	RoleUser       = GlobalRole("user")
)

var GlobalAdminRoles = []GlobalRole{RoleSuperAdmin, RoleAdmin}

type User struct {
	Base

	Name         string `gorm:"unique"`
	PasswordHash string
	Role         GlobalRole `gorm:"default:user"`
}
