package entity

import "time"

// Supplier representa un proveedor al que se le reciben facturas (flujo de pagos).
// El nombre actúa como clave natural durante la importación masiva: la primera
// coincidencia gana.
type Supplier struct {
	ID        string
	Nombre    string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
