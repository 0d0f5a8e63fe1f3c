package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/facturacion-pro/internal/application/dto"
	"github.com/tu-usuario/facturacion-pro/internal/domain"
	"github.com/tu-usuario/facturacion-pro/internal/domain/entity"
	"github.com/tu-usuario/facturacion-pro/internal/domain/repository"
)

// RegistryUseCase casos de uso del registro de referencia: proveedores y
// clientes a los que apuntan las facturas.
type RegistryUseCase struct {
	supplierRepo repository.SupplierRepository
	clientRepo   repository.ClientRepository
}

// NewRegistryUseCase construye el caso de uso.
func NewRegistryUseCase(
	supplierRepo repository.SupplierRepository,
	clientRepo repository.ClientRepository,
) *RegistryUseCase {
	return &RegistryUseCase{supplierRepo: supplierRepo, clientRepo: clientRepo}
}

// CreateSupplier crea un proveedor.
func (uc *RegistryUseCase) CreateSupplier(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.supplierRepo.Create(s); err != nil {
		return nil, err
	}
	return &dto.SupplierResponse{ID: s.ID, Nombre: s.Nombre, Email: s.Email}, nil
}

// ListSuppliers lista todos los proveedores.
func (uc *RegistryUseCase) ListSuppliers() ([]*dto.SupplierResponse, error) {
	list, err := uc.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, &dto.SupplierResponse{ID: s.ID, Nombre: s.Nombre, Email: s.Email})
	}
	return out, nil
}

// CreateClient crea un cliente.
func (uc *RegistryUseCase) CreateClient(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Client{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(c); err != nil {
		return nil, err
	}
	return &dto.ClientResponse{ID: c.ID, Nombre: c.Nombre, Email: c.Email}, nil
}

// ListClients lista todos los clientes.
func (uc *RegistryUseCase) ListClients() ([]*dto.ClientResponse, error) {
	list, err := uc.clientRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, &dto.ClientResponse{ID: c.ID, Nombre: c.Nombre, Email: c.Email})
	}
	return out, nil
}
