package entity

import "time"

// Client representa un cliente al que se le emiten facturas (flujo de cobros).
type Client struct {
	ID        string
	Nombre    string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
