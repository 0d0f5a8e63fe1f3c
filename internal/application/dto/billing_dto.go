package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest body para POST /api/facturas.
// Exactamente uno de cliente_id / proveedor_id debe venir informado.
type CreateInvoiceRequest struct {
	NumeroFactura    string          `json:"numero_factura"`
	ClienteID        string          `json:"cliente_id,omitempty"`
	ProveedorID      string          `json:"proveedor_id,omitempty"`
	FechaEmision     string          `json:"fecha_emision"`     // YYYY-MM-DD
	FechaVencimiento string          `json:"fecha_vencimiento"` // YYYY-MM-DD
	MontoTotal       decimal.Decimal `json:"monto_total"`
	Estado           string          `json:"estado,omitempty"` // default Pending
}

// PatchInvoiceRequest body para PATCH /api/facturas/:id. Campos nil no se tocan.
type PatchInvoiceRequest struct {
	NumeroFactura    *string          `json:"numero_factura,omitempty"`
	FechaEmision     *string          `json:"fecha_emision,omitempty"`
	FechaVencimiento *string          `json:"fecha_vencimiento,omitempty"`
	MontoTotal       *decimal.Decimal `json:"monto_total,omitempty"`
	Estado           *string          `json:"estado,omitempty"`
}

// UpdateEstadoRequest body para PATCH /api/facturas/proveedor/:id.
type UpdateEstadoRequest struct {
	Estado string `json:"estado"`
}

// InvoiceResponse factura en respuestas, con la penalización derivada.
type InvoiceResponse struct {
	ID                   string          `json:"id"`
	NumeroFactura        string          `json:"numero_factura"`
	ClienteID            string          `json:"cliente_id,omitempty"`
	ClienteNombre        string          `json:"cliente_nombre,omitempty"`
	ProveedorID          string          `json:"proveedor_id,omitempty"`
	ProveedorNombre      string          `json:"proveedor_nombre,omitempty"`
	FechaEmision         string          `json:"fecha_emision"`
	FechaVencimiento     string          `json:"fecha_vencimiento"`
	MontoTotal           decimal.Decimal `json:"monto_total"`
	Estado               string          `json:"estado"`
	Penalizacion         decimal.Decimal `json:"penalizacion"`
	TotalConPenalizacion decimal.Decimal `json:"total_con_penalizacion"`
}

// SupplierInvoicesResponse facturas agrupadas por proveedor
// para GET /api/facturas/por-proveedor.
type SupplierInvoicesResponse struct {
	ProveedorID     string             `json:"proveedor_id"`
	ProveedorNombre string             `json:"proveedor_nombre"`
	Facturas        []*InvoiceResponse `json:"facturas"`
}

// ImportSummaryResponse resultado de una importación sin fallas.
type ImportSummaryResponse struct {
	Mensaje string `json:"mensaje"`
	Creadas int    `json:"creadas"`
}

// CreateSupplierRequest body para POST /api/proveedores.
type CreateSupplierRequest struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email,omitempty"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email,omitempty"`
}

// CreateClientRequest body para POST /api/clientes.
type CreateClientRequest struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email,omitempty"`
}
