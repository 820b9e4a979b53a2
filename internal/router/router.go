package router

import (
	"fmt"

	"go-inventory-rfid/internal/config"
	"go-inventory-rfid/internal/docs"
	"go-inventory-rfid/internal/handler"
	"go-inventory-rfid/internal/middleware"
	"go-inventory-rfid/internal/model"
	"go-inventory-rfid/internal/repository"
	"go-inventory-rfid/internal/service"
	"go-inventory-rfid/internal/ws"
	"go-inventory-rfid/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Deps are the long-lived resources the HTTP layer is built on.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Tokens *jwt.Manager
	Hub    *ws.Hub
	// AuthLimiter throttles /api/auth per client IP. Nil disables throttling.
	AuthLimiter *middleware.RateLimiter
}

// New wires repositories, services and handlers and mounts every route.
func New(deps Deps) (*fiber.App, error) {
	cfg := deps.Config

	sqlDB, err := deps.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	var events service.Publisher
	if deps.Hub != nil {
		events = deps.Hub
	}

	// Repositories
	productRepo := repository.NewProductRepo(deps.DB)
	categoryRepo := repository.NewCategoryRepo(deps.DB)
	locationRepo := repository.NewLocationRepo(deps.DB)
	supplierRepo := repository.NewSupplierRepo(deps.DB)
	rfidRepo := repository.NewRfidRepo(deps.DB)
	txRepo := repository.NewTransactionRepo(deps.DB)
	userRepo := repository.NewUserRepo(deps.DB)

	// Services
	productService := service.NewProductService(productRepo, categoryRepo, locationRepo, rfidRepo, deps.DB, events)
	categoryService := service.NewCategoryService(categoryRepo, productRepo)
	locationService := service.NewLocationService(locationRepo, productRepo, txRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	rfidService := service.NewRfidService(rfidRepo, events)
	txService := service.NewTransactionService(productRepo, txRepo, locationRepo, deps.DB, events)
	authService := service.NewAuthService(userRepo, deps.Tokens)

	// Handlers
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	locationHandler := handler.NewLocationHandler(locationService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	rfidHandler := handler.NewRfidHandler(rfidService)
	txHandler := handler.NewTransactionHandler(txService)
	authHandler := handler.NewAuthHandler(authService)
	healthHandler := handler.NewHealthHandler(sqlDB)

	app := fiber.New(fiber.Config{
		AppName:      cfg.Server.AppName,
		ErrorHandler: handler.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.CORSOrigins}))

	registry := docs.NewRegistry()
	requireAuth := middleware.RequireAuth(deps.Tokens, userRepo)
	canWrite := middleware.RequireRole(model.RoleAdmin, model.RoleUser)

	root := newRegistrar(app, "", "System", registry)
	root.get("/health", "Database health check", healthHandler.Check)
	root.get("/api-docs", "OpenAPI document", docs.Handler(docs.Info{
		Title:       cfg.Server.AppName,
		Version:     "1.0.0",
		Description: "Inventory management API with RFID intake",
	}, "", registry))

	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	authRoutes := []fiber.Handler{}
	if deps.AuthLimiter != nil {
		authRoutes = append(authRoutes, deps.AuthLimiter.Middleware())
	}
	auth := newRegistrar(api.Group("/auth", authRoutes...), "/api/auth", "Auth", registry)
	auth.withStatus(fiber.StatusCreated).post("/register", "Register a user",
		middleware.OptionalAuth(deps.Tokens, userRepo), authHandler.Register)
	auth.post("/login", "Log in and receive a bearer token", authHandler.Login)

	rfid := newRegistrar(api.Group("/rfid"), "/api/rfid", "RFID", registry)
	rfid.post("/add", "Record a tag read from a reader", middleware.RequireDeviceKey(cfg.RFID.DeviceKey), rfidHandler.AddScan)
	rfid.secured().get("", "List pending scans", requireAuth, rfidHandler.ListScans)

	// ============ PROTECTED ROUTES ============
	products := newRegistrar(api.Group("/products", requireAuth), "/api/products", "Products", registry).secured()
	products.post("", "Create a product and consume its pending scans", canWrite, productHandler.Create)
	products.get("", "List products", productHandler.List)
	products.get("/:id", "Get a product", productHandler.Get)
	products.put("/:id", "Replace a product", canWrite, productHandler.Update)
	products.delete("/:id", "Delete a product", canWrite, productHandler.Delete)

	categories := newRegistrar(api.Group("/categories", requireAuth), "/api/categories", "Categories", registry).secured()
	categories.withStatus(fiber.StatusCreated).post("", "Create a category", canWrite, categoryHandler.Create)
	categories.get("", "List categories", categoryHandler.List)
	categories.get("/:id", "Get a category", categoryHandler.Get)
	categories.put("/:id", "Replace a category", canWrite, categoryHandler.Update)
	categories.delete("/:id", "Delete a category", canWrite, categoryHandler.Delete)

	locations := newRegistrar(api.Group("/locations", requireAuth), "/api/locations", "Locations", registry).secured()
	locations.withStatus(fiber.StatusCreated).post("", "Create a location", canWrite, locationHandler.Create)
	locations.get("", "List locations", locationHandler.List)
	locations.get("/:id", "Get a location", locationHandler.Get)
	locations.put("/:id", "Replace a location", canWrite, locationHandler.Update)
	locations.delete("/:id", "Delete a location", canWrite, locationHandler.Delete)

	suppliers := newRegistrar(api.Group("/suppliers", requireAuth), "/api/suppliers", "Suppliers", registry).secured()
	suppliers.withStatus(fiber.StatusCreated).post("", "Create a supplier", canWrite, supplierHandler.Create)
	suppliers.get("", "List suppliers", supplierHandler.List)
	suppliers.get("/:id", "Get a supplier", supplierHandler.Get)
	suppliers.put("/:id", "Replace a supplier", canWrite, supplierHandler.Update)
	suppliers.delete("/:id", "Delete a supplier", canWrite, supplierHandler.Delete)

	transactions := newRegistrar(api.Group("/transactions", requireAuth), "/api/transactions", "Transactions", registry).secured()
	transactions.withStatus(fiber.StatusCreated).post("", "Record a stock movement", canWrite, txHandler.Record)
	transactions.get("", "List stock movements", txHandler.List)
	transactions.get("/:id", "Get a stock movement", txHandler.Get)

	// WebSocket Route
	if deps.Hub != nil {
		app.Use("/ws", ws.UpgradeOnly)
		app.Get("/ws", deps.Hub.Handler())
		registry.Add(docs.Route{Method: fiber.MethodGet, Path: "/ws", Summary: "Live inventory event feed", Tag: "System", Status: fiber.StatusSwitchingProtocols})
	}

	return app, nil
}
