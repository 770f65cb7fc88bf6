package models

type RoleName string

const (
	RoleNormal RoleName = "ROLE_NORMAL"
	RoleWriter RoleName = "ROLE_WRITER"
	RoleAdmin  RoleName = "ROLE_ADMIN"
)

// AllRoles is the lookup table content seeded on migrate.
var AllRoles = []RoleName{RoleNormal, RoleWriter, RoleAdmin}

type Role struct {
	ID   uint     `gorm:"primaryKey"`
	Name RoleName `gorm:"uniqueIndex;size:20;not null"`
}
