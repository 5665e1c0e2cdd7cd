package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/tdiallo/papistock-api/internal/application/analytics"
	"github.com/tdiallo/papistock-api/internal/application/auth"
	"github.com/tdiallo/papistock-api/internal/application/documents"
	appstock "github.com/tdiallo/papistock-api/internal/application/stock"
	"github.com/tdiallo/papistock-api/internal/application/transfer"
	"github.com/tdiallo/papistock-api/internal/application/usecase"
	infrapdf "github.com/tdiallo/papistock-api/internal/infrastructure/pdf"
	"github.com/tdiallo/papistock-api/internal/infrastructure/sqlite"
	httpRouter "github.com/tdiallo/papistock-api/internal/interfaces/http"
	"github.com/tdiallo/papistock-api/pkg/config"
	"github.com/tdiallo/papistock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db", cfg.DB.Path).
		Msg("démarrage de l'application")

	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("ouverture de la base SQLite")
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	supplierRepo := sqlite.NewSupplierRepository(db)
	locationRepo := sqlite.NewLocationRepository(db)
	typeRepo := sqlite.NewTypeRepository(db)
	itemRepo := sqlite.NewItemRepository(db)
	movementRepo := sqlite.NewMovementRepository(db)
	transactionRepo := sqlite.NewTransactionRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, movementRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	typeUC := usecase.NewTypeUseCase(typeRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, txRunner)
	movementUC := appstock.NewMovementUseCase(movementRepo)
	batchUC := appstock.NewBatchUseCase(txRunner, transactionRepo, itemRepo)

	exportUC := transfer.NewExportUseCase(itemRepo, supplierRepo, locationRepo, typeRepo, movementRepo, log)
	importUC := transfer.NewImportUseCase(itemRepo, supplierRepo, locationRepo, typeRepo, movementRepo, log)
	backupUC := transfer.NewBackupUseCase(db.Path(), log)
	sheetUC := transfer.NewSheetUseCase(itemRepo, movementRepo)

	dashboardUC := appanalytics.NewDashboardUseCase(itemRepo, supplierRepo, locationRepo, movementRepo)

	// PDF : fiche de stock et journal des mouvements
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := documents.NewPDFUseCase(itemRepo, movementRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // les exports/documents peuvent être lents
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Papistock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		SupplierUC:  supplierUC,
		LocationUC:  locationUC,
		TypeUC:      typeUC,
		ItemUC:      itemUC,
		MovementUC:  movementUC,
		BatchUC:     batchUC,
		ExportUC:    exportUC,
		ImportUC:    importUC,
		BackupUC:    backupUC,
		SheetUC:     sheetUC,
		DashboardUC: dashboardUC,
		PDFUC:       pdfUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
