package repository

import "github.com/tu-usuario/facturacion-pro/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
// GetByNombre busca por nombre exacto y devuelve la primera coincidencia
// (el nombre no es único a nivel de tabla); (nil, nil) si no hay ninguna.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByNombre(nombre string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
}
