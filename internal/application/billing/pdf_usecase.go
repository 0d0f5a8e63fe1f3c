package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/facturacion-pro/internal/domain"
	domainbilling "github.com/tu-usuario/facturacion-pro/internal/domain/billing"
	"github.com/tu-usuario/facturacion-pro/internal/domain/repository"
)

// PDFUseCase genera el PDF de una factura con su penalización vigente.
//
// ADVERTENCIA de contrato: exportar NO es una consulta pura. La evaluación de
// penalización sincroniza el estado almacenado de la factura con la fecha de
// exportación (write-through-on-read): una factura Pending ya vencida queda
// persistida como Overdue después de descargar su PDF.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	supplierRepo repository.SupplierRepository
	clientRepo   repository.ClientRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	supplierRepo repository.SupplierRepository,
	clientRepo repository.ClientRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		supplierRepo: supplierRepo,
		clientRepo:   clientRepo,
		generator:    generator,
	}
}

// DownloadInvoicePDF evalúa la factura a hoy, persiste el estado derivado si
// cambió y genera el PDF con {factura, penalización, total con penalización}.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	// Evaluación + write-through: el estado derivado siempre se sincroniza,
	// aunque el caller solo quería leer.
	ev := domainbilling.Evaluate(inv, time.Now())
	if ev.Estado != inv.Estado {
		inv.Estado = ev.Estado
		inv.UpdatedAt = time.Now()
		if err := uc.invoiceRepo.UpdateEstado(inv.ID, ev.Estado, inv.UpdatedAt); err != nil {
			return nil, "", fmt.Errorf("pdf: sincronizar estado: %w", err)
		}
	}

	refNombre := uc.resolveRefNombre(inv.ClienteID, inv.ProveedorID)

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, InvoicePDFData{
		Invoice:    inv,
		RefNombre:  refNombre,
		Evaluation: ev,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("factura_%s.pdf", inv.NumeroFactura)
	return pdfBytes, filename, nil
}

// resolveRefNombre busca el nombre de la contraparte; un fallo de lookup no
// impide la exportación, solo deja el nombre vacío.
func (uc *PDFUseCase) resolveRefNombre(clienteID, proveedorID *string) string {
	if clienteID != nil && *clienteID != "" {
		if c, err := uc.clientRepo.GetByID(*clienteID); err == nil && c != nil {
			return c.Nombre
		}
	}
	if proveedorID != nil && *proveedorID != "" {
		if p, err := uc.supplierRepo.GetByID(*proveedorID); err == nil && p != nil {
			return p.Nombre
		}
	}
	return ""
}
