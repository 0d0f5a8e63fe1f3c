package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/facturacion-pro/internal/domain"
)

// Estados del ciclo de vida de una factura.
const (
	StatusPending = "Pending" // Emitida, pendiente de pago
	StatusPaid    = "Paid"    // Pagada; ya no acumula penalización
	StatusOverdue = "Overdue" // Vencida según la última evaluación
)

// ValidStatus reporta si s es un estado permitido para una factura.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusPaid || s == StatusOverdue
}

// Invoice representa una factura, emitida a un cliente (flujo de cobro)
// o recibida de un proveedor (flujo de pago). Exactamente una de las dos
// referencias está presente.
//
// La penalización por mora nunca se almacena: se deriva con billing.Evaluate.
type Invoice struct {
	ID               string
	NumeroFactura    string
	ClienteID        *string
	ProveedorID      *string
	FechaEmision     time.Time
	FechaVencimiento time.Time
	MontoTotal       decimal.Decimal
	Estado           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate verifica los invariantes estructurales de la factura:
// referencia XOR (cliente o proveedor, nunca ambos ni ninguno),
// fechas coherentes, monto no negativo y estado permitido.
func (i *Invoice) Validate() error {
	if i.NumeroFactura == "" {
		return domain.ErrInvalidInput
	}
	hasCliente := i.ClienteID != nil && *i.ClienteID != ""
	hasProveedor := i.ProveedorID != nil && *i.ProveedorID != ""
	if hasCliente == hasProveedor {
		return domain.ErrInvalidInput
	}
	if i.FechaVencimiento.Before(i.FechaEmision) {
		return domain.ErrInvalidInput
	}
	if i.MontoTotal.IsNegative() {
		return domain.ErrInvalidInput
	}
	if !ValidStatus(i.Estado) {
		return domain.ErrInvalidStatus
	}
	return nil
}

// EsDeProveedor reporta si la factura pertenece al flujo de pagos a proveedor.
func (i *Invoice) EsDeProveedor() bool {
	return i.ProveedorID != nil && *i.ProveedorID != ""
}
