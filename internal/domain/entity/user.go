package entity

import "strings"

// Roles conocidos del backend.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User usuario autenticado en el backend ERP.
type User struct {
	Username string
	Role     string
}

// HasRole compara sin distinguir mayúsculas (el backend devuelve ADMIN o admin según versión).
func (u User) HasRole(roles ...string) bool {
	for _, r := range roles {
		if strings.EqualFold(u.Role, r) {
			return true
		}
	}
	return false
}
