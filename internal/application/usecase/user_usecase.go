package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/facturacion-pro/internal/application/dto"
	"github.com/tu-usuario/facturacion-pro/internal/domain"
	"github.com/tu-usuario/facturacion-pro/internal/domain/entity"
	"github.com/tu-usuario/facturacion-pro/internal/domain/repository"
)

// UserUseCase gestión de usuarios (CRUD reservado a administradores;
// la autorización la aplica el middleware, aquí solo lógica).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario. Rol vacío queda en Contador.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolContador
	}
	if !entity.ValidRol(rol) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:            uuid.New().String(),
		Email:         in.Email,
		Nombre:        in.Nombre,
		Rol:           rol,
		PasswordHash:  string(hash),
		FechaCreacion: now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toResponse(user), nil
}

// List lista todos los usuarios.
func (uc *UserUseCase) List() ([]*dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toResponse(u))
	}
	return out, nil
}

// Update actualiza un usuario; password vacío conserva la contraseña actual.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Nombre != "" {
		user.Nombre = in.Nombre
	}
	if in.Rol != "" {
		if !entity.ValidRol(in.Rol) {
			return nil, domain.ErrInvalidInput
		}
		user.Rol = in.Rol
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toResponse(user), nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

func toResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Nombre:        u.Nombre,
		Rol:           u.Rol,
		FechaCreacion: u.FechaCreacion,
	}
}
