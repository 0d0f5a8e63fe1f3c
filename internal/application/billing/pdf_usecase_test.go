package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/facturacion-pro/internal/application/billing"
	"github.com/tu-usuario/facturacion-pro/internal/domain"
	"github.com/tu-usuario/facturacion-pro/internal/domain/entity"
)

// stubGenerator captura los datos que recibiría maroto y devuelve bytes fijos.
type stubGenerator struct {
	recibido billing.InvoicePDFData
}

func (g *stubGenerator) GenerateInvoicePDF(_ context.Context, data billing.InvoicePDFData) ([]byte, error) {
	g.recibido = data
	return []byte("%PDF-fake"), nil
}

// Exportar una factura Pending ya vencida sincroniza su estado almacenado a
// Overdue (write-through-on-read) y entrega la penalización al generador.
func TestDownloadInvoicePDF_SincronizaEstadoVencido(t *testing.T) {
	invRepo := &fakeInvoiceRepo{}
	provRepo := &fakeSupplierRepo{}
	proveedorExistente(provRepo, "p1", "ACME")
	invRepo.facturas = append(invRepo.facturas,
		facturaProveedor("i1", "F-001", "p1", entity.StatusPending, time.Now().AddDate(0, 0, -5)))

	gen := &stubGenerator{}
	uc := billing.NewPDFUseCase(invRepo, provRepo, &fakeClientRepo{}, gen)

	pdf, filename, err := uc.DownloadInvoicePDF(context.Background(), "i1")

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, "factura_F-001.pdf", filename)

	assert.Equal(t, entity.StatusOverdue, invRepo.facturas[0].Estado,
		"la exportación debe persistir el estado derivado aunque sea una lectura")
	assert.Equal(t, entity.StatusOverdue, gen.recibido.Evaluation.Estado)
	assert.EqualValues(t, 5, gen.recibido.Evaluation.DiasMora)
	// 1000 × 1% × 5 = 50
	assert.True(t, gen.recibido.Evaluation.Penalizacion.Equal(decimal.NewFromInt(50)))
	assert.True(t, gen.recibido.Evaluation.TotalConPenalizacion.Equal(decimal.NewFromInt(1050)))
	assert.Equal(t, "ACME", gen.recibido.RefNombre)
}

// Una factura pagada se exporta sin tocar su estado ni acumular penalización.
func TestDownloadInvoicePDF_PagadaNoSeModifica(t *testing.T) {
	invRepo := &fakeInvoiceRepo{}
	provRepo := &fakeSupplierRepo{}
	proveedorExistente(provRepo, "p1", "ACME")
	invRepo.facturas = append(invRepo.facturas,
		facturaProveedor("i1", "F-001", "p1", entity.StatusPaid, time.Now().AddDate(0, 0, -30)))

	gen := &stubGenerator{}
	uc := billing.NewPDFUseCase(invRepo, provRepo, &fakeClientRepo{}, gen)

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "i1")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, invRepo.facturas[0].Estado)
	assert.True(t, gen.recibido.Evaluation.Penalizacion.IsZero())
}

func TestDownloadInvoicePDF_FacturaInexistente(t *testing.T) {
	uc := billing.NewPDFUseCase(&fakeInvoiceRepo{}, &fakeSupplierRepo{}, &fakeClientRepo{}, &stubGenerator{})

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
