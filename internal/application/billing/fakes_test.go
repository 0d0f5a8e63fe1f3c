package billing_test

import (
	"fmt"
	"time"

	"github.com/tu-usuario/facturacion-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repositorios (suficientes para los casos de uso;
// la capa postgres se prueba contra una base real fuera de este paquete).
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	facturas []*entity.Invoice
	// failCreateNumero simula una violación de constraint del store para
	// la factura con ese número.
	failCreateNumero string
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	if r.failCreateNumero != "" && inv.NumeroFactura == r.failCreateNumero {
		return fmt.Errorf("duplicate key value violates unique constraint \"invoices_numero_factura_key\"")
	}
	cp := *inv
	r.facturas = append(r.facturas, &cp)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	for _, f := range r.facturas {
		if f.ID == id {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) List() ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(r.facturas))
	for _, f := range r.facturas {
		cp := *f
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	for i, f := range r.facturas {
		if f.ID == inv.ID {
			cp := *inv
			r.facturas[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("factura %s no existe", inv.ID)
}

func (r *fakeInvoiceRepo) UpdateEstado(id, estado string, updatedAt time.Time) error {
	for _, f := range r.facturas {
		if f.ID == id {
			f.Estado = estado
			f.UpdatedAt = updatedAt
			return nil
		}
	}
	return fmt.Errorf("factura %s no existe", id)
}

type fakeSupplierRepo struct {
	proveedores []*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	cp := *s
	r.proveedores = append(r.proveedores, &cp)
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	for _, p := range r.proveedores {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) GetByNombre(nombre string) (*entity.Supplier, error) {
	for _, p := range r.proveedores {
		if p.Nombre == nombre {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.proveedores))
	for _, p := range r.proveedores {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type fakeClientRepo struct {
	clientes []*entity.Client
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	cp := *c
	r.clientes = append(r.clientes, &cp)
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	for _, c := range r.clientes {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) GetByNombre(nombre string) (*entity.Client, error) {
	for _, c := range r.clientes {
		if c.Nombre == nombre {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List() ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.clientes))
	for _, c := range r.clientes {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}
