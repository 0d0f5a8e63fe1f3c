package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/facturacion-pro/internal/application/dto"
	"github.com/tu-usuario/facturacion-pro/internal/domain"
	domainbilling "github.com/tu-usuario/facturacion-pro/internal/domain/billing"
	"github.com/tu-usuario/facturacion-pro/internal/domain/entity"
	"github.com/tu-usuario/facturacion-pro/internal/domain/repository"
)

const fechaLayout = "2006-01-02"

// InvoiceUseCase casos de uso CRUD y de transición de estado de facturas.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	supplierRepo repository.SupplierRepository
	clientRepo   repository.ClientRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	supplierRepo repository.SupplierRepository,
	clientRepo repository.ClientRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		supplierRepo: supplierRepo,
		clientRepo:   clientRepo,
	}
}

// Create crea una factura a partir de entrada directa (no importación).
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	emision, err := time.Parse(fechaLayout, in.FechaEmision)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha_emision: %v", domain.ErrInvalidInput, err)
	}
	vencimiento, err := time.Parse(fechaLayout, in.FechaVencimiento)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha_vencimiento: %v", domain.ErrInvalidInput, err)
	}
	estado := in.Estado
	if estado == "" {
		estado = entity.StatusPending
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:               uuid.New().String(),
		NumeroFactura:    in.NumeroFactura,
		FechaEmision:     emision,
		FechaVencimiento: vencimiento,
		MontoTotal:       in.MontoTotal,
		Estado:           estado,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if in.ClienteID != "" {
		id := in.ClienteID
		inv.ClienteID = &id
	}
	if in.ProveedorID != "" {
		id := in.ProveedorID
		inv.ProveedorID = &id
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	if err := uc.invoiceRepo.Create(inv); err != nil {
		return nil, err
	}
	return uc.toResponse(inv), nil
}

// GetByID obtiene una factura. La penalización de la respuesta se deriva a la
// fecha actual; el estado almacenado no se modifica (solo la exportación a PDF
// hace write-through).
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(inv), nil
}

// List lista todas las facturas.
func (uc *InvoiceUseCase) List() ([]*dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, uc.toResponse(inv))
	}
	return out, nil
}

// Patch actualiza parcialmente una factura (PATCH /api/facturas/:id).
// Solo los campos presentes en la petición se modifican.
func (uc *InvoiceUseCase) Patch(id string, in dto.PatchInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	if in.NumeroFactura != nil {
		inv.NumeroFactura = *in.NumeroFactura
	}
	if in.FechaEmision != nil {
		emision, err := time.Parse(fechaLayout, *in.FechaEmision)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha_emision: %v", domain.ErrInvalidInput, err)
		}
		inv.FechaEmision = emision
	}
	if in.FechaVencimiento != nil {
		vencimiento, err := time.Parse(fechaLayout, *in.FechaVencimiento)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha_vencimiento: %v", domain.ErrInvalidInput, err)
		}
		inv.FechaVencimiento = vencimiento
	}
	if in.MontoTotal != nil {
		inv.MontoTotal = *in.MontoTotal
	}
	if in.Estado != nil {
		if !entity.ValidStatus(*in.Estado) {
			return nil, domain.ErrInvalidStatus
		}
		inv.Estado = *in.Estado
	}

	if err := inv.Validate(); err != nil {
		return nil, err
	}
	inv.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	return uc.toResponse(inv), nil
}

// SetEstadoProveedor actualiza el estado de una factura del flujo de
// proveedores (PATCH /api/facturas/proveedor/:id).
//
//   - Estado fuera de {Pending, Paid, Overdue} → ErrInvalidStatus.
//   - Factura inexistente o perteneciente al flujo de clientes → ErrNotFound
//     (la variante de proveedor no distingue ambos casos).
func (uc *InvoiceUseCase) SetEstadoProveedor(id, estado string) (*dto.InvoiceResponse, error) {
	if !entity.ValidStatus(estado) {
		return nil, domain.ErrInvalidStatus
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil || !inv.EsDeProveedor() {
		return nil, domain.ErrNotFound
	}
	inv.Estado = estado
	inv.UpdatedAt = time.Now()
	if err := uc.invoiceRepo.UpdateEstado(inv.ID, estado, inv.UpdatedAt); err != nil {
		return nil, err
	}
	return uc.toResponse(inv), nil
}

// PorProveedor agrupa las facturas del flujo de pagos por proveedor.
func (uc *InvoiceUseCase) PorProveedor() ([]*dto.SupplierInvoicesResponse, error) {
	facturas, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	proveedores, err := uc.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	nombres := make(map[string]string, len(proveedores))
	for _, p := range proveedores {
		nombres[p.ID] = p.Nombre
	}

	grupos := make(map[string]*dto.SupplierInvoicesResponse)
	var orden []string
	for _, inv := range facturas {
		if !inv.EsDeProveedor() {
			continue
		}
		pid := *inv.ProveedorID
		g, ok := grupos[pid]
		if !ok {
			g = &dto.SupplierInvoicesResponse{
				ProveedorID:     pid,
				ProveedorNombre: nombres[pid],
			}
			grupos[pid] = g
			orden = append(orden, pid)
		}
		g.Facturas = append(g.Facturas, uc.toResponse(inv))
	}

	out := make([]*dto.SupplierInvoicesResponse, 0, len(orden))
	for _, pid := range orden {
		out = append(out, grupos[pid])
	}
	return out, nil
}

// toResponse arma la respuesta con la penalización derivada a hoy.
func (uc *InvoiceUseCase) toResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	ev := domainbilling.Evaluate(inv, time.Now())

	resp := &dto.InvoiceResponse{
		ID:                   inv.ID,
		NumeroFactura:        inv.NumeroFactura,
		FechaEmision:         inv.FechaEmision.Format(fechaLayout),
		FechaVencimiento:     inv.FechaVencimiento.Format(fechaLayout),
		MontoTotal:           inv.MontoTotal,
		Estado:               inv.Estado,
		Penalizacion:         ev.Penalizacion,
		TotalConPenalizacion: ev.TotalConPenalizacion,
	}
	if inv.ClienteID != nil {
		resp.ClienteID = *inv.ClienteID
		if c, err := uc.clientRepo.GetByID(*inv.ClienteID); err == nil && c != nil {
			resp.ClienteNombre = c.Nombre
		}
	}
	if inv.ProveedorID != nil {
		resp.ProveedorID = *inv.ProveedorID
		if p, err := uc.supplierRepo.GetByID(*inv.ProveedorID); err == nil && p != nil {
			resp.ProveedorNombre = p.Nombre
		}
	}
	return resp
}
