package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:20;not null"`
	Email        string `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string `gorm:"size:120;not null"`
	DateOfBirth  *time.Time
	Roles        []Role `gorm:"many2many:user_roles;"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleNames returns the names of the loaded roles; Roles must be preloaded.
func (u *User) RoleNames() []string {
	out := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		out = append(out, string(r.Name))
	}
	return out
}

func (u *User) HasRole(name RoleName) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
