package services

import (
	"fmt"
	"strings"

	"news-app/backend/app/models"
)

// SignupRoles maps the free-form role strings of a signup request onto role
// names. Nothing requested means NORMAL; anything unrecognised also means
// NORMAL. Duplicates collapse.
func SignupRoles(requested []string) []models.RoleName {
	if len(requested) == 0 {
		return []models.RoleName{models.RoleNormal}
	}
	seen := make(map[models.RoleName]bool, len(requested))
	out := make([]models.RoleName, 0, len(requested))
	for _, r := range requested {
		var name models.RoleName
		switch strings.ToLower(strings.TrimSpace(r)) {
		case "admin":
			name = models.RoleAdmin
		case "writer":
			name = models.RoleWriter
		default:
			name = models.RoleNormal
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}

// ParseRole accepts "ROLE_ADMIN" or "admin" in any case.
func ParseRole(s string) (models.RoleName, bool) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(up, "ROLE_") {
		up = "ROLE_" + up
	}
	for _, r := range models.AllRoles {
		if string(r) == up {
			return r, true
		}
	}
	return "", false
}

// AdminRoles is the strict variant used by user management: every entry
// must name a known role and at least one is required.
func AdminRoles(requested []string) ([]models.RoleName, error) {
	if len(requested) == 0 {
		return nil, validationError("roles", "at least one role is required")
	}
	seen := make(map[models.RoleName]bool, len(requested))
	out := make([]models.RoleName, 0, len(requested))
	for _, r := range requested {
		name, ok := ParseRole(r)
		if !ok {
			return nil, validationError("roles", fmt.Sprintf("unknown role %q", r))
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out, nil
}
