package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleAlmacen  = "almacen"
	RoleVendedor = "vendedor"
)

// User es un usuario del back office.
type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	Status       string
	CreatedAt    time.Time
}
