package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/facturacion-pro/internal/application/analytics"
	"github.com/tu-usuario/facturacion-pro/internal/application/auth"
	"github.com/tu-usuario/facturacion-pro/internal/application/billing"
	"github.com/tu-usuario/facturacion-pro/internal/application/usecase"
	"github.com/tu-usuario/facturacion-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	InvoiceUC   *billing.InvoiceUseCase
	PDFUC       *billing.PDFUseCase
	ImportUC    *billing.ImportUseCase
	RegistryUC  *billing.RegistryUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
	// ImportRequireAuth exige token en POST /api/facturas/importar.
	// Apagado por defecto para compatibilidad con los clientes existentes.
	ImportRequireAuth bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/registro", authHandler.Register)
	api.Post("/login", authHandler.Login)

	importHandler := NewImportHandler(deps.ImportUC)
	if deps.ImportRequireAuth {
		api.Post("/facturas/importar", AuthMiddleware(deps.JWTSecret), importHandler.ImportInvoices)
	} else {
		api.Post("/facturas/importar", importHandler.ImportInvoices)
	}

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuarios (protegido)
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/usuarios/rol", userHandler.GetRol)
	usuarios := protected.Group("/usuarios", RequireRole(entity.RolAdministrador))
	usuarios.Post("/", userHandler.Create)
	usuarios.Get("/", userHandler.List)
	usuarios.Put("/:id", userHandler.Update)
	usuarios.Delete("/:id", userHandler.Delete)

	// Clientes y proveedores (protegido)
	registryHandler := NewRegistryHandler(deps.RegistryUC)
	protected.Post("/clientes", registryHandler.CreateClient)
	protected.Get("/clientes", registryHandler.ListClients)
	protected.Post("/proveedores", registryHandler.CreateSupplier)
	protected.Get("/proveedores", registryHandler.ListSuppliers)

	// Facturas (protegido)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)

	facturas := protected.Group("/facturas")
	facturas.Post("/importar-proveedores", importHandler.ImportSupplierInvoices)
	facturas.Get("/por-proveedor", invoiceHandler.PorProveedor)
	facturas.Get("/notificaciones",
		RequireRole(entity.RolContador, entity.RolAdministrador), dashboardHandler.Vencidas)
	facturas.Get("/vencidas-count",
		RequireRole(entity.RolContador, entity.RolAdministrador), dashboardHandler.Vencidas)
	facturas.Get("/exportar/:id", invoiceHandler.ExportPDF)
	facturas.Patch("/proveedor/:id", invoiceHandler.SetEstadoProveedor)
	facturas.Post("/", invoiceHandler.Create)
	facturas.Get("/", invoiceHandler.List)
	facturas.Get("/:id", invoiceHandler.GetByID)
	facturas.Patch("/:id", invoiceHandler.Patch)

	// Dashboard (protegido por rol)
	protected.Get("/dashboard/estadisticas",
		RequireRole(entity.RolAdministrador, entity.RolGerente), dashboardHandler.Estadisticas)
}
