package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tdiallo/papistock-api/internal/application/analytics"
	"github.com/tdiallo/papistock-api/internal/application/auth"
	"github.com/tdiallo/papistock-api/internal/application/documents"
	appstock "github.com/tdiallo/papistock-api/internal/application/stock"
	"github.com/tdiallo/papistock-api/internal/application/transfer"
	"github.com/tdiallo/papistock-api/internal/application/usecase"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	SupplierUC  *usecase.SupplierUseCase
	LocationUC  *usecase.LocationUseCase
	TypeUC      *usecase.TypeUseCase
	ItemUC      *usecase.ItemUseCase
	MovementUC  *appstock.MovementUseCase
	BatchUC     *appstock.BatchUseCase
	ExportUC    *transfer.ExportUseCase
	ImportUC    *transfer.ImportUseCase
	BackupUC    *transfer.BackupUseCase
	SheetUC     *transfer.SheetUseCase
	DashboardUC *analytics.DashboardUseCase
	PDFUC       *documents.PDFUseCase
	JWTSecret   string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Routes protégées (Bearer Token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protégé, rôle admin)
	users := protected.Group("/users", RequireAdmin())
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Suppliers (protégé)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Locations (protégé)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)

	// Types de matière (protégé)
	types := protected.Group("/types")
	typeHandler := NewTypeHandler(deps.TypeUC)
	types.Post("/", typeHandler.Create)
	types.Get("/", typeHandler.List)
	types.Get("/:id", typeHandler.GetByID)
	types.Put("/:id", typeHandler.Update)
	types.Delete("/:id", typeHandler.Delete)

	// Items (protégé) — la route /sku/ précède /:id pour ne pas la masquer
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/sku/:sku", itemHandler.GetBySKU)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Mouvements isolés (protégé)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	// Lots de mouvements (protégé)
	transactionHandler := NewTransactionHandler(deps.BatchUC)
	protected.Post("/receptions", transactionHandler.CreateReception)
	protected.Post("/consumptions", transactionHandler.CreateConsumption)
	transactions := protected.Group("/transactions")
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Put("/:id/movements", transactionHandler.UpdateLines)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Échanges en masse (protégé)
	transferHandler := NewTransferHandler(deps.ExportUC, deps.ImportUC, deps.BackupUC, deps.SheetUC)
	db := protected.Group("/db")
	db.Post("/backup", transferHandler.Backup)
	db.Post("/export", transferHandler.Export)
	db.Post("/import", transferHandler.Import)
	protected.Post("/spreadsheet", transferHandler.Spreadsheet)

	// Tableau de bord (protégé)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Documents PDF (protégé)
	docs := protected.Group("/documents")
	documentsHandler := NewDocumentsHandler(deps.PDFUC)
	docs.Get("/stock", documentsHandler.StockSheet)
	docs.Get("/movements", documentsHandler.MovementJournal)
}
