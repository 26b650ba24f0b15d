package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// RouterDeps handlers y configuración que el router necesita.
type RouterDeps struct {
	JWTSecret string

	Auth      *AuthHandler
	Products  *ProductHandler
	Warehouse *WarehouseHandler
	Customers *CustomerHandler
	Inventory *InventoryHandler
	Sales     *SaleHandler
}

// SetupRoutes registra todas las rutas de la API.
//
// Reglas de rol: los movimientos de inventario los registran admin y
// bodeguero; aprobar o rechazar ventas es exclusivo de admin; el resto de
// operaciones solo exige sesión válida.
func SetupRoutes(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Públicas.
	authGroup := api.Group("/auth")
	authGroup.Post("/register", deps.Auth.Register)
	authGroup.Post("/login", deps.Auth.Login)

	// Protegidas.
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))

	products := protected.Group("/products")
	products.Post("/", deps.Products.Create)
	products.Get("/", deps.Products.List)
	products.Get("/:id", deps.Products.GetByID)
	products.Put("/:id", deps.Products.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), deps.Products.Delete)

	warehouses := protected.Group("/warehouses")
	warehouses.Post("/", RequireRole(entity.RoleAdmin), deps.Warehouse.Create)
	warehouses.Get("/", deps.Warehouse.List)
	warehouses.Get("/:id", deps.Warehouse.GetByID)
	warehouses.Put("/:id", RequireRole(entity.RoleAdmin), deps.Warehouse.Update)
	warehouses.Get("/:warehouseId/stock", deps.Inventory.ListWarehouseStock)
	warehouses.Get("/:warehouseId/low-stock", deps.Inventory.LowStock)

	customers := protected.Group("/customers")
	customers.Post("/", deps.Customers.Create)
	customers.Get("/", deps.Customers.List)
	customers.Get("/:id", deps.Customers.GetByID)
	customers.Put("/:id", deps.Customers.Update)
	customers.Delete("/:id", RequireRole(entity.RoleAdmin), deps.Customers.Delete)
	customers.Post("/:id/payments", deps.Customers.RegisterPayment)
	customers.Get("/:customerId/sales", deps.Sales.ListByCustomer)

	inv := protected.Group("/inventory")
	inv.Post("/movements", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), deps.Inventory.RegisterMovement)
	inv.Get("/movements/:productId", deps.Inventory.ListMovements)
	inv.Get("/stock/:productId/:warehouseId", deps.Inventory.GetStock)

	salesGroup := protected.Group("/sales")
	salesGroup.Post("/", deps.Sales.Create)
	salesGroup.Get("/", deps.Sales.List)
	salesGroup.Get("/pending", deps.Sales.ListPending)
	salesGroup.Get("/:id", deps.Sales.GetByID)
	salesGroup.Post("/:id/submit", deps.Sales.Submit)
	salesGroup.Post("/:id/approve", RequireRole(entity.RoleAdmin), deps.Sales.Approve)
	salesGroup.Post("/:id/reject", RequireRole(entity.RoleAdmin), deps.Sales.Reject)
	salesGroup.Post("/:id/complete", deps.Sales.Complete)
	salesGroup.Post("/:id/cancel", deps.Sales.Cancel)
	salesGroup.Post("/:id/items", deps.Sales.AddItem)
	salesGroup.Put("/:id/items/:itemId", deps.Sales.UpdateItemQuantity)
	salesGroup.Delete("/:id/items/:itemId", deps.Sales.RemoveItem)
	salesGroup.Put("/:id/discount", deps.Sales.ApplyDiscount)
	salesGroup.Put("/:id/items/:itemId/discount", deps.Sales.ApplyItemDiscount)
}
