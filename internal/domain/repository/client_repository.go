package repository

import "github.com/tu-usuario/facturacion-pro/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByNombre(nombre string) (*entity.Client, error)
	List() ([]*entity.Client, error)
}
