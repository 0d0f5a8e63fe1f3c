package http

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/facturacion-pro/internal/application/billing"
	"github.com/tu-usuario/facturacion-pro/internal/application/dto"
	"github.com/tu-usuario/facturacion-pro/internal/domain"
	"github.com/tu-usuario/facturacion-pro/pkg/tabular"
)

// ImportHandler maneja la ingesta masiva de facturas desde CSV/XLSX.
type ImportHandler struct {
	uc *billing.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *billing.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// ImportInvoices importa facturas creando el proveedor cuando no existe.
// Aborta en la primera fila inválida; las filas anteriores quedan guardadas.
// POST /api/facturas/importar
func (h *ImportHandler) ImportInvoices(c *fiber.Ctx) error {
	t, err := h.readTable(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	creadas, err := h.uc.ImportInvoices(t)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MALFORMED_FILE", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrIngestion) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ImportErrorResponse{
				Code:    "IMPORT_ABORTED",
				Message: err.Error(),
				Creadas: creadas,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ImportSummaryResponse{Mensaje: "importación completada", Creadas: creadas})
}

// ImportSupplierInvoices importa facturas exigiendo proveedores existentes.
// Acumula las fallas por fila; las filas válidas quedan guardadas.
// POST /api/facturas/importar-proveedores
func (h *ImportHandler) ImportSupplierInvoices(c *fiber.Ctx) error {
	t, err := h.readTable(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	creadas, err := h.uc.ImportSupplierInvoices(t)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MALFORMED_FILE", Message: err.Error()})
		}
		var pErr *billing.PartialIngestionError
		if errors.As(err, &pErr) {
			errores := make([]dto.RowFailureDTO, 0, len(pErr.Failures))
			for _, f := range pErr.Failures {
				errores = append(errores, dto.RowFailureDTO{Fila: f.Fila, Motivo: f.Motivo})
			}
			return c.Status(fiber.StatusBadRequest).JSON(dto.ImportErrorResponse{
				Code:     "IMPORT_PARTIAL",
				Message:  "algunas filas no pudieron importarse",
				Errores:  errores,
				Creadas:  pErr.Creadas,
				Fallidas: len(pErr.Failures),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ImportSummaryResponse{Mensaje: "importación completada", Creadas: creadas})
}

// readTable lee el archivo del form multipart (campo "archivo") o, en su
// defecto, del body crudo. El formato se decide por la extensión.
func (h *ImportHandler) readTable(c *fiber.Ctx) (*tabular.Table, error) {
	if fh, err := c.FormFile("archivo"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, errors.New("no se pudo abrir el archivo")
		}
		defer f.Close()
		return tabular.Read(f, fh.Filename)
	}
	body := c.Body()
	if len(body) == 0 {
		return nil, errors.New("archivo requerido (campo 'archivo' o body)")
	}
	return tabular.Read(bytes.NewReader(body), c.Query("nombre", "import.csv"))
}
