package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/warehouse-api/internal/application/auth"
	"github.com/invorya/warehouse-api/internal/application/ledger"
	"github.com/invorya/warehouse-api/internal/application/stats"
	"github.com/invorya/warehouse-api/internal/application/usecase"
	"github.com/invorya/warehouse-api/internal/domain/authz"
	"github.com/invorya/warehouse-api/internal/domain/entity"
	"github.com/invorya/warehouse-api/internal/domain/repository"
	"github.com/invorya/warehouse-api/internal/infrastructure/postgres"
	"github.com/invorya/warehouse-api/internal/infrastructure/storage"
	httpRouter "github.com/invorya/warehouse-api/internal/interfaces/http"
	"github.com/invorya/warehouse-api/pkg/config"
	"github.com/invorya/warehouse-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	employeeRepo := postgres.NewEmployeeRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	measureRepo := postgres.NewMeasureRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	itemRepo := postgres.NewTransactionItemRepository(pool)
	fileRepo := postgres.NewFileAssetRepository(pool)
	imageRepo := postgres.NewProductImageRepository(pool)
	settingRepo := postgres.NewNotificationSettingRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	if err := bootstrapManager(ctx, log, employeeRepo, cfg.Bootstrap); err != nil {
		log.Fatal().Err(err).Msg("bootstrap de la cuenta MANAGER")
	}

	store, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de archivos")
	}

	authUC := auth.NewUseCase(employeeRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, warehouseRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	measureUC := usecase.NewMeasureUseCase(measureRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, measureRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	transactionUC := ledger.NewTransactionUseCase(warehouseRepo, supplierRepo, transactionRepo, itemRepo, txRunner)
	statsUC := stats.NewStatisticsUseCase(statsRepo)
	imageUC := usecase.NewProductImageUseCase(productRepo, fileRepo, imageRepo, store)
	notificationUC := usecase.NewNotificationUseCase(settingRepo, statsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		EmployeeUC:     employeeUC,
		WarehouseUC:    warehouseUC,
		CategoryUC:     categoryUC,
		MeasureUC:      measureUC,
		ProductUC:      productUC,
		SupplierUC:     supplierUC,
		TransactionUC:  transactionUC,
		StatsUC:        statsUC,
		ImageUC:        imageUC,
		NotificationUC: notificationUC,
		EmployeeRepo:   employeeRepo,
		JWTSecret:      cfg.JWT.Secret,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// bootstrapManager crea la cuenta MANAGER inicial si no existe ninguna viva.
// Sin BOOTSTRAP_MANAGER_PASSWORD no se crea nada: el sistema queda sin cuentas
// hasta configurarla.
func bootstrapManager(ctx context.Context, log *logger.Logger, repo repository.EmployeeRepository, cfg config.BootstrapConfig) error {
	exists, err := repo.ExistsByRole(ctx, authz.RoleManager)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if cfg.ManagerPassword == "" {
		log.Warn().Msg("no hay cuenta MANAGER y BOOTSTRAP_MANAGER_PASSWORD está vacío; login imposible")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.ManagerPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	manager := &entity.Employee{
		Base:         entity.NewBase(""),
		Name:         cfg.ManagerName,
		Surname:      cfg.ManagerSurname,
		PhoneNumber:  cfg.ManagerPhone,
		PasswordHash: string(hash),
		Role:         authz.RoleManager,
		Status:       entity.StatusActive,
	}
	if err := repo.Create(ctx, manager); err != nil {
		return err
	}
	log.Info().Int64("employee_number", manager.EmployeeNumber).Msg("cuenta MANAGER inicial creada")
	return nil
}
