package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/facturacion-pro/internal/domain"
	"github.com/tu-usuario/facturacion-pro/internal/domain/entity"
	"github.com/tu-usuario/facturacion-pro/internal/domain/repository"
	"github.com/tu-usuario/facturacion-pro/pkg/tabular"
)

// Columnas obligatorias del archivo de importación, en el orden documentado.
var requiredColumns = []string{
	"numero_factura",
	"proveedor",
	"fecha_emision",
	"fecha_vencimiento",
	"monto_total",
	"estado",
}

// RowFailure una fila que no pudo convertirse en factura. Fila es 1-based,
// sin contar el encabezado.
type RowFailure struct {
	Fila   int
	Motivo string
}

// PartialIngestionError resultado de una importación estricta con una o más
// filas fallidas. Las filas que sí se importaron permanecen persistidas:
// la importación no es atómica por diseño.
type PartialIngestionError struct {
	Creadas  int
	Failures []RowFailure
}

func (e *PartialIngestionError) Error() string {
	return fmt.Sprintf("importación con %d fila(s) fallida(s) de %d procesadas",
		len(e.Failures), e.Creadas+len(e.Failures))
}

// ImportUseCase pipeline de ingestión masiva de facturas de proveedores.
//
// Dos modos con política distinta de resolución de proveedor:
//   - ImportInvoices: crea el proveedor si no existe (create-or-link) y
//     cualquier error de fila aborta la llamada completa.
//   - ImportSupplierInvoices: solo enlaza proveedores existentes
//     (strict-link) y acumula fallas por fila sin abortar el lote.
type ImportUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	supplierRepo repository.SupplierRepository
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(
	invoiceRepo repository.InvoiceRepository,
	supplierRepo repository.SupplierRepository,
) *ImportUseCase {
	return &ImportUseCase{invoiceRepo: invoiceRepo, supplierRepo: supplierRepo}
}

// ImportInvoices modo create-or-link (POST /api/facturas/importar).
// Devuelve la cantidad de facturas creadas. El primer error de fila aborta
// la llamada con ErrIngestion; las filas ya insertadas no se revierten.
func (uc *ImportUseCase) ImportInvoices(t *tabular.Table) (int, error) {
	cols, err := uc.checkColumns(t)
	if err != nil {
		return 0, err
	}

	creadas := 0
	for i, row := range t.Rows {
		fila := i + 1
		nombre := normalizeNombre(t.Cell(row, cols["proveedor"]))
		if nombre == "" {
			return creadas, fmt.Errorf("%w: fila %d: proveedor vacío", domain.ErrIngestion, fila)
		}
		proveedor, err := uc.getOrCreateSupplier(nombre)
		if err != nil {
			return creadas, fmt.Errorf("%w: fila %d: %v", domain.ErrIngestion, fila, err)
		}
		inv, err := uc.buildInvoice(t, cols, row, proveedor.ID)
		if err != nil {
			return creadas, fmt.Errorf("%w: fila %d: %v", domain.ErrIngestion, fila, err)
		}
		if err := uc.invoiceRepo.Create(inv); err != nil {
			return creadas, fmt.Errorf("%w: fila %d: %v", domain.ErrIngestion, fila, err)
		}
		creadas++
	}
	return creadas, nil
}

// ImportSupplierInvoices modo strict-link (POST /api/facturas/importar-proveedores).
// Un proveedor desconocido o un error de construcción marca la fila como
// fallida y se continúa con la siguiente. Con una o más fallas devuelve
// *PartialIngestionError; las filas exitosas quedan persistidas.
func (uc *ImportUseCase) ImportSupplierInvoices(t *tabular.Table) (int, error) {
	cols, err := uc.checkColumns(t)
	if err != nil {
		return 0, err
	}

	creadas := 0
	var fallas []RowFailure
	for i, row := range t.Rows {
		fila := i + 1
		nombre := normalizeNombre(t.Cell(row, cols["proveedor"]))

		proveedor, err := uc.supplierRepo.GetByNombre(nombre)
		if err != nil {
			fallas = append(fallas, RowFailure{Fila: fila, Motivo: err.Error()})
			continue
		}
		if proveedor == nil {
			fallas = append(fallas, RowFailure{
				Fila:   fila,
				Motivo: fmt.Sprintf("Proveedor '%s' no encontrado", nombre),
			})
			continue
		}

		inv, err := uc.buildInvoice(t, cols, row, proveedor.ID)
		if err != nil {
			fallas = append(fallas, RowFailure{Fila: fila, Motivo: err.Error()})
			continue
		}
		if err := uc.invoiceRepo.Create(inv); err != nil {
			fallas = append(fallas, RowFailure{Fila: fila, Motivo: err.Error()})
			continue
		}
		creadas++
	}

	if len(fallas) > 0 {
		return creadas, &PartialIngestionError{Creadas: creadas, Failures: fallas}
	}
	return creadas, nil
}

// checkColumns valida que el encabezado traiga todas las columnas requeridas.
// Falta alguna → ErrMalformedInput y no se procesa ninguna fila.
func (uc *ImportUseCase) checkColumns(t *tabular.Table) (map[string]int, error) {
	cols := t.ColumnIndex()
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("%w: falta la columna '%s'", domain.ErrMalformedInput, c)
		}
	}
	return cols, nil
}

// buildInvoice construye y valida la factura de una fila ya resuelta a proveedor.
func (uc *ImportUseCase) buildInvoice(t *tabular.Table, cols map[string]int, row []string, proveedorID string) (*entity.Invoice, error) {
	emision, err := time.Parse(fechaLayout, t.Cell(row, cols["fecha_emision"]))
	if err != nil {
		return nil, fmt.Errorf("fecha_emision inválida: %v", err)
	}
	vencimiento, err := time.Parse(fechaLayout, t.Cell(row, cols["fecha_vencimiento"]))
	if err != nil {
		return nil, fmt.Errorf("fecha_vencimiento inválida: %v", err)
	}
	monto, err := decimal.NewFromString(t.Cell(row, cols["monto_total"]))
	if err != nil {
		return nil, fmt.Errorf("monto_total inválido: %v", err)
	}

	estado := t.Cell(row, cols["estado"])
	if estado == "" {
		estado = entity.StatusPending
	}
	if !entity.ValidStatus(estado) {
		return nil, fmt.Errorf("estado '%s' no permitido", estado)
	}

	now := time.Now()
	pid := proveedorID
	inv := &entity.Invoice{
		ID:               uuid.New().String(),
		NumeroFactura:    t.Cell(row, cols["numero_factura"]),
		ProveedorID:      &pid,
		FechaEmision:     emision,
		FechaVencimiento: vencimiento,
		MontoTotal:       monto,
		Estado:           estado,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	return inv, nil
}

// getOrCreateSupplier resuelve el proveedor por nombre, creándolo si no existe.
func (uc *ImportUseCase) getOrCreateSupplier(nombre string) (*entity.Supplier, error) {
	existente, err := uc.supplierRepo.GetByNombre(nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return existente, nil
	}
	now := time.Now()
	nuevo := &entity.Supplier{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.supplierRepo.Create(nuevo); err != nil {
		return nil, err
	}
	return nuevo, nil
}

// normalizeNombre aplica NFC y recorta espacios: los CSV llegan en UTF-8 y el
// mismo nombre con acentos puede venir compuesto o descompuesto según el origen.
func normalizeNombre(nombre string) string {
	return norm.NFC.String(strings.TrimSpace(nombre))
}
