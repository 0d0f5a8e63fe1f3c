package billing_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/facturacion-pro/internal/application/billing"
	"github.com/tu-usuario/facturacion-pro/internal/domain"
	"github.com/tu-usuario/facturacion-pro/internal/domain/entity"
	"github.com/tu-usuario/facturacion-pro/pkg/tabular"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var encabezado = []string{
	"numero_factura", "proveedor", "fecha_emision", "fecha_vencimiento", "monto_total", "estado",
}

func tablaCon(filas ...[]string) *tabular.Table {
	return &tabular.Table{Headers: encabezado, Rows: filas}
}

func proveedorExistente(repo *fakeSupplierRepo, id, nombre string) {
	now := time.Now()
	repo.proveedores = append(repo.proveedores, &entity.Supplier{
		ID: id, Nombre: nombre, CreatedAt: now, UpdatedAt: now,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de encabezado (ambos modos)
// ──────────────────────────────────────────────────────────────────────────────

// Falta una columna requerida: la llamada entera falla y no se procesa ni una fila.
func TestImport_ColumnaFaltante_FallaSinProcesarFilas(t *testing.T) {
	invRepo := &fakeInvoiceRepo{}
	provRepo := &fakeSupplierRepo{}
	proveedorExistente(provRepo, "p1", "ACME")
	uc := billing.NewImportUseCase(invRepo, provRepo)

	// Encabezado sin monto_total
	tabla := &tabular.Table{
		Headers: []string{"numero_factura", "proveedor", "fecha_emision", "fecha_vencimiento", "estado"},
		Rows: [][]string{
			{"F-001", "ACME", "2026-01-10", "2026-02-10", "Pending"},
		},
	}

	for nombre, fn := range map[string]func(*tabular.Table) (int, error){
		"create-or-link": uc.ImportInvoices,
		"strict-link":    uc.ImportSupplierInvoices,
	} {
		t.Run(nombre, func(t *testing.T) {
			n, err := fn(tabla)
			require.ErrorIs(t, err, domain.ErrMalformedInput)
			assert.Contains(t, err.Error(), "monto_total", "el error debe nombrar la columna faltante")
			assert.Zero(t, n)
			assert.Empty(t, invRepo.facturas, "no debe crearse ninguna factura")
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo strict-link
// ──────────────────────────────────────────────────────────────────────────────

// Tres filas, la segunda referencia un proveedor inexistente: exactamente una
// falla en la fila 2 y las facturas de las filas 1 y 3 quedan persistidas.
func TestImportSupplierInvoices_ProveedorDesconocidoNoAbortaElLote(t *testing.T) {
	invRepo := &fakeInvoiceRepo{}
	provRepo := &fakeSupplierRepo{}
	proveedorExistente(provRepo, "p1", "ACME")
	uc := billing.NewImportUseCase(invRepo, provRepo)

	tabla := tablaCon(
		[]string{"F-001", "ACME", "2026-01-10", "2026-02-10", "1500.50", "Pending"},
		[]string{"F-002", "Fantasma SA", "2026-01-11", "2026-02-11", "200", "Pending"},
		[]string{"F-003", "ACME", "2026-01-12", "2026-02-12", "990", "Paid"},
	)

	n, err := uc.ImportSupplierInvoices(tabla)

	var parcial *billing.PartialIngestionError
	require.ErrorAs(t, err, &parcial, "una fila fallida debe producir PartialIngestionError")
	require.Len(t, parcial.Failures, 1)
	assert.Equal(t, 2, parcial.Failures[0].Fila, "la falla debe señalar la fila 2 (1-based)")
	assert.Equal(t, "Proveedor 'Fantasma SA' no encontrado", parcial.Failures[0].Motivo)

	assert.Equal(t, 2, n)
	assert.Equal(t, 2, parcial.Creadas)
	require.Len(t, invRepo.facturas, 2, "las filas 1 y 3 permanecen persistidas (sin rollback)")
	assert.Equal(t, "F-001", invRepo.facturas[0].NumeroFactura)
	assert.Equal(t, "F-003", invRepo.facturas[1].NumeroFactura)
}

// Sin fallas: devuelve el conteo y ningún error.
func TestImportSupplierInvoices_TodasLasFilasValidas(t *testing.T) {
	invRepo := &fakeInvoiceRepo{}
	provRepo := &fakeSupplierRepo{}
	proveedorExistente(provRepo, "p1", "ACME")
	uc := billing.NewImportUseCase(invRepo, provRepo)

	n, err := uc.ImportSupplierInvoices(tablaCon(
		[]string{"F-001", "ACME", "2026-01-10", "2026-02-10", "100", "Pending"},
		[]string{"F-002", "ACME", "2026-01-11", "2026-02-11", "250.75", "Paid"},
	))

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, invRepo.facturas, 2)
	assert.True(t, invRepo.facturas[0].EsDeProveedor())
}

// Un monto ilegible marca la fila como fallida y se continúa con las demás.
func TestImportSupplierInvoices_MontoIlegibleEsFallaDeFila(t *testing.T) {
	invRepo := &fakeInvoiceRepo{}
	provRepo := &fakeSupplierRepo{}
	proveedorExistente(provRepo, "p1", "ACME")
	uc := billing.NewImportUseCase(invRepo, provRepo)

	n, err := uc.ImportSupplierInvoices(tablaCon(
		[]string{"F-001", "ACME", "2026-01-10", "2026-02-10", "no-es-numero", "Pending"},
		[]string{"F-002", "ACME", "2026-01-11", "2026-02-11", "100", "Pending"},
	))

	var parcial *billing.PartialIngestionError
	require.ErrorAs(t, err, &parcial)
	require.Len(t, parcial.Failures, 1)
	assert.Equal(t, 1, parcial.Failures[0].Fila)
	assert.Contains(t, parcial.Failures[0].Motivo, "monto_total")
	assert.Equal(t, 1, n, "la fila 2 se importa a pesar de la falla en la fila 1")
}

// Una violación de constraint del store también es falla de fila, no aborto.
func TestImportSupplierInvoices_ErrorDelStoreEsFallaDeFila(t *testing.T) {
	invRepo := &fakeInvoiceRepo{failCreateNumero: "F-DUP"}
	provRepo := &fakeSupplierRepo{}
	proveedorExistente(provRepo, "p1", "ACME")
	uc := billing.NewImportUseCase(invRepo, provRepo)

	n, err := uc.ImportSupplierInvoices(tablaCon(
		[]string{"F-DUP", "ACME", "2026-01-10", "2026-02-10", "100", "Pending"},
		[]string{"F-OK", "ACME", "2026-01-11", "2026-02-11", "100", "Pending"},
	))

	var parcial *billing.PartialIngestionError
	require.ErrorAs(t, err, &parcial)
	require.Len(t, parcial.Failures, 1)
	assert.Contains(t, parcial.Failures[0].Motivo, "unique constraint")
	assert.Equal(t, 1, n)
}

// estado vacío en la fila queda en Pending.
func TestImportSupplierInvoices_EstadoVacioQuedaPending(t *testing.T) {
	invRepo := &fakeInvoiceRepo{}
	provRepo := &fakeSupplierRepo{}
	proveedorExistente(provRepo, "p1", "ACME")
	uc := billing.NewImportUseCase(invRepo, provRepo)

	_, err := uc.ImportSupplierInvoices(tablaCon(
		[]string{"F-001", "ACME", "2026-01-10", "2026-02-10", "100", ""},
	))

	require.NoError(t, err)
	require.Len(t, invRepo.facturas, 1)
	assert.Equal(t, entity.StatusPending, invRepo.facturas[0].Estado)
}

// El nombre del proveedor se normaliza (NFC): un CSV con acentos descompuestos
// debe enlazar con el proveedor almacenado en forma compuesta.
func TestImportSupplierInvoices_NombreConAcentosDescompuestos(t *testing.T) {
	invRepo := &fakeInvoiceRepo{}
	provRepo := &fakeSupplierRepo{}
	proveedorExistente(provRepo, "p1", "Compañía Andina")
	uc := billing.NewImportUseCase(invRepo, provRepo)

	nombreNFD := norm.NFD.String("Compañía Andina")
	n, err := uc.ImportSupplierInvoices(tablaCon(
		[]string{"F-001", nombreNFD, "2026-01-10", "2026-02-10", "100", "Pending"},
	))

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo create-or-link
// ──────────────────────────────────────────────────────────────────────────────

// Un proveedor desconocido se crea sobre la marcha y filas posteriores con el
// mismo nombre reutilizan el registro.
func TestImportInvoices_CreaProveedorNuevoYLoReutiliza(t *testing.T) {
	invRepo := &fakeInvoiceRepo{}
	provRepo := &fakeSupplierRepo{}
	uc := billing.NewImportUseCase(invRepo, provRepo)

	n, err := uc.ImportInvoices(tablaCon(
		[]string{"F-001", "Distribuidora Sur", "2026-01-10", "2026-02-10", "100", "Pending"},
		[]string{"F-002", "Distribuidora Sur", "2026-01-11", "2026-02-11", "340", "Paid"},
	))

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, provRepo.proveedores, 1, "el proveedor se crea una sola vez")
	assert.Equal(t, "Distribuidora Sur", provRepo.proveedores[0].Nombre)
	require.Len(t, invRepo.facturas, 2)
	assert.Equal(t, provRepo.proveedores[0].ID, *invRepo.facturas[0].ProveedorID)
}

// En create-or-link no hay reporte por fila: el primer error aborta la llamada
// con ErrIngestion y las filas ya insertadas permanecen.
func TestImportInvoices_ErrorDeFilaAbortaLaLlamada(t *testing.T) {
	invRepo := &fakeInvoiceRepo{}
	provRepo := &fakeSupplierRepo{}
	uc := billing.NewImportUseCase(invRepo, provRepo)

	n, err := uc.ImportInvoices(tablaCon(
		[]string{"F-001", "ACME", "2026-01-10", "2026-02-10", "100", "Pending"},
		[]string{"F-002", "ACME", "fecha-rota", "2026-02-11", "100", "Pending"},
		[]string{"F-003", "ACME", "2026-01-12", "2026-02-12", "100", "Pending"},
	))

	require.ErrorIs(t, err, domain.ErrIngestion)
	assert.Contains(t, err.Error(), "fila 2")
	assert.Equal(t, 1, n, "solo la fila previa al error quedó persistida")
	require.Len(t, invRepo.facturas, 1)

	var parcial *billing.PartialIngestionError
	assert.False(t, errors.As(err, &parcial), "create-or-link no produce errores parciales estructurados")
}
