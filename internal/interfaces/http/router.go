package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	Sessions   sessionReader
	KardexUC   kardexLoader
	KardexPDF  kardexRenderer
	ProductUC  *usecase.ProductUseCase
	ClientUC   *usecase.ClientUseCase
	SupplierUC *usecase.SupplierUseCase
	AddressUC  *usecase.AddressUseCase
	OrderUC    *usecase.OrderUseCase
	DocumentUC *usecase.DocumentUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (login público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (Bearer Token + sesión activa en el backend)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Products + kardex
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	kardexHandler := NewKardexHandler(deps.KardexUC, deps.KardexPDF)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id/kardex", kardexHandler.Get)
	products.Get("/:id/kardex.pdf", kardexHandler.PDF)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Delete("/:id", adminOnly, clientHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Addresses
	protected.Get("/addresses", NewAddressHandler(deps.AddressUC).List)

	// Orders
	orders := protected.Group("/orders")
	for path, kind := range map[string]string{
		"/purchases": entity.OrderKindPurchase,
		"/sales":     entity.OrderKindSale,
		"/returns":   entity.OrderKindReturn,
	} {
		h := NewOrderHandler(deps.OrderUC, kind)
		g := orders.Group(path)
		g.Post("/", h.Register)
		if kind == entity.OrderKindReturn {
			continue // el backend las lista y borra como ventas
		}
		g.Get("/", h.List)
		g.Delete("/:nro", adminOnly, h.Delete)
	}

	// Documents
	protected.Get("/documents/:nro", NewDocumentHandler(deps.DocumentUC).Get)
}
