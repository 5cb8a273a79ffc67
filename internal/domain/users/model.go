package users

import "time"

// Role define el rol del usuario; gobierna qué mutaciones puede hacer.
// @Enum user, admin, vet
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleVet   Role = "vet"
)

// IsValid acepta solo los roles conocidos.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleVet:
		return true
	}
	return false
}

// User representa una cuenta del refugio.
// PasswordHash nunca se serializa hacia afuera; los handlers arman
// su propia response sin ese campo.
type User struct {
	ID           string
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
