package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/facturacion-pro/internal/application/billing"
	"github.com/tu-usuario/facturacion-pro/internal/application/dto"
	"github.com/tu-usuario/facturacion-pro/internal/domain"
)

// RegistryHandler maneja el registro de clientes y proveedores (protegido).
type RegistryHandler struct {
	uc *billing.RegistryUseCase
}

// NewRegistryHandler construye el handler.
func NewRegistryHandler(uc *billing.RegistryUseCase) *RegistryHandler {
	return &RegistryHandler{uc: uc}
}

// CreateSupplier crea un proveedor.
// POST /api/proveedores
func (h *RegistryHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	supplier, err := h.uc.CreateSupplier(in)
	if err != nil {
		return registryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// ListSuppliers lista los proveedores.
// GET /api/proveedores
func (h *RegistryHandler) ListSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.uc.ListSuppliers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(suppliers)
}

// CreateClient crea un cliente.
// POST /api/clientes
func (h *RegistryHandler) CreateClient(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	client, err := h.uc.CreateClient(in)
	if err != nil {
		return registryError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// ListClients lista los clientes.
// GET /api/clientes
func (h *RegistryHandler) ListClients(c *fiber.Ctx) error {
	clients, err := h.uc.ListClients()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(clients)
}

func registryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nombre ya está registrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
