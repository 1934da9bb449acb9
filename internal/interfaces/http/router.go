package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger-api/internal/application/inventory"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC        *usecase.ItemUseCase
	LocationUC    *usecase.LocationUseCase
	MovementUC    *inventory.MovementUseCase
	AdjustmentUC  *inventory.AdjustmentUseCase
	LevelUC       *inventory.LevelUseCase
	UnfulfilledUC *inventory.UnfulfilledUseCase
	JWTSecret     string
}

// Roles con permiso de ajuste manual (los movimientos los ejecuta cualquier usuario autenticado).
const (
	RoleAdmin       = "admin"
	RoleAlmacenista = "almacenista"
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token del proveedor de identidad)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Registro de artículos y ubicaciones
	registryHandler := NewRegistryHandler(deps.ItemUC, deps.LocationUC)
	items := protected.Group("/items")
	items.Post("/", registryHandler.CreateItem)
	items.Get("/", registryHandler.ListItems)
	items.Get("/:id", registryHandler.GetItem)
	items.Put("/:id", registryHandler.UpdateItem)

	locations := protected.Group("/locations")
	locations.Get("/", registryHandler.ListLocations)
	locations.Get("/:id", registryHandler.GetLocation)
	protected.Get("/stores/:id/locations", registryHandler.ListStoreLocations)

	// Motor de inventario
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.MovementUC, deps.AdjustmentUC)
	levelHandler := NewLevelHandler(deps.LevelUC, deps.UnfulfilledUC)

	invGroup.Post("/movements", inventoryHandler.ExecuteMovements)
	invGroup.Get("/movements/:hash", levelHandler.MovementEntries)
	// Ajustes manuales: restringidos por rol
	invGroup.Post("/adjustments", RequireRole(RoleAdmin, RoleAlmacenista), inventoryHandler.Adjust)

	invGroup.Get("/items/:id/levels", levelHandler.LevelsForItem)
	invGroup.Get("/items/:id/levels/:locationId", levelHandler.LevelForItemAtLocation)
	invGroup.Get("/items/:id/unfulfilled", levelHandler.UnfulfilledOrders)
	invGroup.Get("/locations/:id/levels", levelHandler.LevelsForLocation)
}
