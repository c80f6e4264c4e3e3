package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/warehouse-api/internal/application/auth"
	"github.com/invorya/warehouse-api/internal/application/ledger"
	"github.com/invorya/warehouse-api/internal/application/stats"
	"github.com/invorya/warehouse-api/internal/application/usecase"
	"github.com/invorya/warehouse-api/internal/domain/repository"
	"github.com/invorya/warehouse-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	EmployeeUC     *usecase.EmployeeUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	CategoryUC     *usecase.CategoryUseCase
	MeasureUC      *usecase.MeasureUseCase
	ProductUC      *usecase.ProductUseCase
	SupplierUC     *usecase.SupplierUseCase
	TransactionUC  *ledger.TransactionUseCase
	StatsUC        *stats.StatisticsUseCase
	ImageUC        *usecase.ProductImageUseCase
	NotificationUC *usecase.NotificationUseCase
	EmployeeRepo   repository.EmployeeRepository
	JWTSecret      string
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público, fuera del prefijo /api)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	app.Post("/auth/login", authHandler.Login)

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token de una cuenta ACTIVE)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.EmployeeRepo))

	// Empleados (jerarquía MANAGER→ADMIN→EMPLOYEE)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.Log)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Almacenes
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.Log)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Categorías
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Medidas
	measures := protected.Group("/measures")
	measureHandler := NewMeasureHandler(deps.MeasureUC, deps.Log)
	measures.Post("/", measureHandler.Create)
	measures.Get("/", measureHandler.List)
	measures.Get("/:id", measureHandler.GetByID)
	measures.Put("/:id", measureHandler.Update)
	measures.Delete("/:id", measureHandler.Delete)

	// Productos e imágenes
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	imageHandler := NewImageHandler(deps.ImageUC, deps.Log)
	products.Post("/", productHandler.Create)
	products.Post("/batch-delete", productHandler.DeleteBatch)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/images", imageHandler.Upload)
	products.Get("/:id/images", imageHandler.List)
	products.Delete("/:id/images/:imageId", imageHandler.Delete)

	// Descarga de archivos por identificador público
	protected.Get("/files/:hashId", imageHandler.Download)

	// Proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Log)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Libro de movimientos
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC, deps.Log)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)

	// Estadísticas diarias (ADMIN)
	statistics := protected.Group("/statistics")
	statsHandler := NewStatsHandler(deps.StatsUC, deps.Log)
	statistics.Get("/daily-in", statsHandler.DailyIn)
	statistics.Get("/daily-out", statsHandler.DailyTopOut)
	statistics.Get("/expired", statsHandler.Expired)

	// Alertas de vencimiento (ADMIN)
	notifications := protected.Group("/notification-settings")
	notificationHandler := NewNotificationHandler(deps.NotificationUC, deps.Log)
	notifications.Put("/", notificationHandler.Set)
	notifications.Get("/", notificationHandler.Get)
	notifications.Get("/upcoming", notificationHandler.Upcoming)
}
