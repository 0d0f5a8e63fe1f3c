package dto

import "time"

// RegisterRequest entrada para POST /api/registro. El registro público solo
// acepta rol Administrador; los demás roles se crean vía /api/usuarios.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nombre   string `json:"nombre" validate:"required,max=200"`
	Rol      string `json:"rol" validate:"required,oneof=Administrador Contador Gerente"`
}

// CreateUserRequest entrada para POST /api/usuarios (solo Administrador).
// Rol vacío equivale a Contador.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nombre   string `json:"nombre" validate:"required,max=200"`
	Rol      string `json:"rol" validate:"omitempty,oneof=Administrador Contador Gerente"`
}

// UpdateUserRequest entrada para PUT /api/usuarios/:id.
// Password vacío no modifica la contraseña.
type UpdateUserRequest struct {
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
	Password string `json:"password,omitempty"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Nombre        string    `json:"nombre"`
	Rol           string    `json:"rol"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// LoginRequest entrada para POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token JWT y el rol del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	Rol   string       `json:"rol"`
	User  UserResponse `json:"user"`
}
