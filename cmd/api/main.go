package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vpriyankaa/sales-admin-sub000/internal/config"
	"github.com/vpriyankaa/sales-admin-sub000/internal/handler"
	"github.com/vpriyankaa/sales-admin-sub000/internal/middleware"
	"github.com/vpriyankaa/sales-admin-sub000/internal/model"
	"github.com/vpriyankaa/sales-admin-sub000/internal/repository"
	"github.com/vpriyankaa/sales-admin-sub000/internal/service"
	"github.com/vpriyankaa/sales-admin-sub000/internal/ws"
	"github.com/vpriyankaa/sales-admin-sub000/pkg/database"
	"github.com/vpriyankaa/sales-admin-sub000/pkg/jwt"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Database
	db := database.ConnectDB(cfg.DatabaseURL)
	if cfg.RunMigrations {
		if err := database.RunSQLMigrations("migrations", cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else if err := database.AutoMigrate(db, model.All()...); err != nil {
		log.Fatalf("Failed to migrate models: %v", err)
	}

	// 3. Seed default privileges and admin user
	seedPrivilegesAndAdmin(db, cfg)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	tokens := jwt.NewManager(cfg.JWTSecret)

	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	vendorRepo := repository.NewVendorRepo(db)
	logRepo := repository.NewLogRepo(db)
	unitRepo := repository.NewUnitRepo(db)
	methodRepo := repository.NewPaymentMethodRepo(db)
	dashRepo := repository.NewDashboardRepo(db)
	userRepo := repository.NewUserRepo(db)
	privilegeRepo := repository.NewPrivilegeRepo(db)

	invService := service.NewInventoryService(productRepo, logRepo, db, wsHub)
	orderService := service.NewOrderService(orderRepo, productRepo, customerRepo, vendorRepo, logRepo, invService, db, wsHub, cfg.StorageBaseURL)
	customerService := service.NewCustomerService(customerRepo, logRepo, db)
	vendorService := service.NewVendorService(vendorRepo, productRepo, logRepo, db)
	masterService := service.NewMasterService(unitRepo, methodRepo)
	dashService := service.NewDashboardService(dashRepo, cfg.LowStockThreshold)
	authService := service.NewAuthService(userRepo, tokens)

	invHandler := handler.NewInventoryHandler(invService)
	orderHandler := handler.NewOrderHandler(orderService)
	customerHandler := handler.NewCustomerHandler(customerService)
	vendorHandler := handler.NewVendorHandler(vendorService)
	masterHandler := handler.NewMasterHandler(masterService)
	dashHandler := handler.NewDashboardHandler(dashService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Sales Admin v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(tokens, userRepo))

	// Dashboard
	protected.Get("/dashboard/stats", middleware.RequirePrivilege("dashboard:view"), dashHandler.GetDashboardStats)
	protected.Get("/dashboard/order-trend", middleware.RequirePrivilege("dashboard:view"), dashHandler.GetOrderTrend)

	// Products
	protected.Get("/products", invHandler.GetProducts)
	protected.Get("/products/:id", invHandler.GetProduct)
	protected.Get("/products/:id/logs", invHandler.GetProductLogs)
	protected.Post("/products", middleware.RequirePrivilege("product:create"), invHandler.CreateProduct)
	protected.Put("/products/:id", middleware.RequirePrivilege("product:update"), invHandler.UpdateProduct)
	protected.Delete("/products/:id", middleware.RequirePrivilege("product:delete"), invHandler.DeleteProduct)
	protected.Post("/products/:id/quantity", middleware.RequirePrivilege("product:adjust"), invHandler.ChangeQuantity)

	// Customers
	protected.Get("/customers", customerHandler.GetCustomers)
	protected.Get("/customers/:id", customerHandler.GetCustomer)
	protected.Get("/customers/:id/logs", customerHandler.GetCustomerLogs)
	protected.Post("/customers", middleware.RequirePrivilege("customer:create"), customerHandler.CreateCustomer)
	protected.Put("/customers/:id", middleware.RequirePrivilege("customer:update"), customerHandler.UpdateCustomer)
	protected.Delete("/customers/:id", middleware.RequirePrivilege("customer:delete"), customerHandler.DeleteCustomer)

	// Vendors
	protected.Get("/vendors", vendorHandler.GetVendors)
	protected.Get("/vendors/:id", vendorHandler.GetVendor)
	protected.Get("/vendors/:id/logs", vendorHandler.GetVendorLogs)
	protected.Post("/vendors", middleware.RequirePrivilege("vendor:create"), vendorHandler.CreateVendor)
	protected.Put("/vendors/:id", middleware.RequirePrivilege("vendor:update"), vendorHandler.UpdateVendor)
	protected.Delete("/vendors/:id", middleware.RequirePrivilege("vendor:delete"), vendorHandler.DeleteVendor)

	// Orders
	protected.Get("/orders", orderHandler.GetOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)
	protected.Get("/orders/:id/logs", orderHandler.GetOrderLogs)
	protected.Get("/orders/:id/payment-logs", orderHandler.GetPaymentLogs)
	protected.Post("/orders", middleware.RequirePrivilege("order:create"), orderHandler.CreateOrder)
	protected.Put("/orders/:id", middleware.RequirePrivilege("order:update"), orderHandler.UpdateOrder)
	protected.Post("/orders/:id/status", middleware.RequirePrivilege("order:status"), orderHandler.ChangeStatus)
	protected.Post("/orders/:id/payment-status", middleware.RequirePrivilege("payment:create"), orderHandler.ChangePaymentStatus)
	protected.Post("/orders/:id/payments", middleware.RequirePrivilege("payment:create"), orderHandler.AddPayment)

	// Master data
	protected.Get("/units", masterHandler.GetUnits)
	protected.Post("/units", middleware.RequirePrivilege("master:manage"), masterHandler.CreateUnit)
	protected.Get("/payment-methods", masterHandler.GetPaymentMethods)
	protected.Post("/payment-methods", middleware.RequirePrivilege("master:manage"), masterHandler.CreatePaymentMethod)

	// Privileges (list all available privileges)
	protected.Get("/privileges", func(c *fiber.Ctx) error {
		privileges, err := privilegeRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch privileges"})
		}
		return c.JSON(privileges)
	})

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(wsHub.ServeConn))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedPrivilegesAndAdmin creates default privileges and an admin user holding all of them
func seedPrivilegesAndAdmin(db *gorm.DB, cfg *config.Config) {
	privilegeRepo := repository.NewPrivilegeRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := privilegeRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed privileges: %v", err)
	}
	allPrivileges, err := privilegeRepo.FindAll()
	if err != nil {
		log.Printf("Warning: Failed to load privileges: %v", err)
		return
	}

	admin, err := userRepo.FindByLogin(cfg.AdminEmail)
	if err == nil {
		// keep the admin in step with privileges added since it was created
		if len(admin.Privileges) != len(allPrivileges) {
			if err := userRepo.UpdatePrivileges(admin.ID, allPrivileges); err != nil {
				log.Printf("Warning: Failed to update admin privileges: %v", err)
			}
		}
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Warning: Failed to look up admin user: %v", err)
		return
	}

	admin = &model.User{
		Email:      cfg.AdminEmail,
		FullName:   "Administrator",
		IsActive:   true,
		Privileges: allPrivileges,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}
	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
		return
	}
	log.Printf("Admin user created: %s", cfg.AdminEmail)
}
