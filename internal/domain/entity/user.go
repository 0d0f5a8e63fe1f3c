package entity

import "time"

// Roles de usuario del sistema de facturación.
const (
	RolAdministrador = "Administrador"
	RolContador      = "Contador"
	RolGerente       = "Gerente"
)

// ValidRol reporta si rol es uno de los roles conocidos.
func ValidRol(rol string) bool {
	return rol == RolAdministrador || rol == RolContador || rol == RolGerente
}

// User representa un usuario de la aplicación.
type User struct {
	ID            string
	Email         string
	Nombre        string
	Rol           string
	PasswordHash  string
	FechaCreacion time.Time
	UpdatedAt     time.Time
}
