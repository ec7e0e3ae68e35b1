package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akashadev/akasha-api/internal/application/auth"
	"github.com/akashadev/akasha-api/internal/application/inventory"
	"github.com/akashadev/akasha-api/internal/application/orders"
	"github.com/akashadev/akasha-api/internal/application/usecase"
	"github.com/akashadev/akasha-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RecordOrder      *orders.RecordOrderUseCase
	OrderQuery       *orders.OrderQueryUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	StockUC          *inventory.StockUseCase
	ProductUC        *usecase.ProductUseCase
	CategoryUC       *usecase.CategoryUseCase
	LocationUC       *usecase.LocationUseCase
	SupplierUC       *usecase.SupplierUseCase
	CustomerUC       *usecase.CustomerUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ventas y compras (protegido)
	orderHandler := NewOrderHandler(deps.RecordOrder, deps.OrderQuery)
	sales := protected.Group("/sales")
	sales.Post("/", orderHandler.CreateSale)
	sales.Get("/", orderHandler.ListSales)
	sales.Get("/:id", orderHandler.GetSale)
	purchases := protected.Group("/purchases")
	purchases.Post("/", orderHandler.CreatePurchase)
	purchases.Get("/", orderHandler.ListPurchases)
	purchases.Get("/:id", orderHandler.GetPurchase)

	// Stock (protegido)
	stockHandler := NewStockHandler(deps.StockUC)
	stock := protected.Group("/stock")
	stock.Post("/", RequireRole(entity.RoleAdmin, entity.RoleAlmacen), stockHandler.AddEntry)
	stock.Get("/", stockHandler.List)
	stock.Get("/:productID", stockHandler.ListByProduct)

	// Movimientos de inventario (protegido)
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.StockUC)
	invGroup := protected.Group("/inventory")
	invGroup.Post("/movements", RequireRole(entity.RoleAdmin, entity.RoleAlmacen), movementHandler.Register)
	invGroup.Get("/movements", movementHandler.List)
	invGroup.Get("/movements/:id", movementHandler.GetByID)

	// Productos (protegido)
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Deactivate)

	// Datos de referencia (protegido)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := protected.Group("/categories")
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)

	locationHandler := NewLocationHandler(deps.LocationUC)
	locations := protected.Group("/locations")
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)

	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
}
