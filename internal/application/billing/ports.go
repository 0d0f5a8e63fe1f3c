package billing

import (
	"context"

	domainbilling "github.com/tu-usuario/facturacion-pro/internal/domain/billing"
	"github.com/tu-usuario/facturacion-pro/internal/domain/entity"
)

// InvoicePDFData datos que recibe el generador de PDF: la factura, el nombre
// de la contraparte y la evaluación de penalización vigente al momento de
// la exportación.
type InvoicePDFData struct {
	Invoice    *entity.Invoice
	RefNombre  string // nombre del cliente o proveedor de la factura
	Evaluation domainbilling.Evaluation
}

// InvoicePDFGenerator puerto para el render del PDF de la factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, data InvoicePDFData) ([]byte, error)
}
