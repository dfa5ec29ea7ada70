package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vendorhub/rfp-backend/internal/config"
	"github.com/vendorhub/rfp-backend/internal/handler"
	"github.com/vendorhub/rfp-backend/internal/middleware"
	"github.com/vendorhub/rfp-backend/internal/model"
	"github.com/vendorhub/rfp-backend/internal/repository"
	"github.com/vendorhub/rfp-backend/internal/service"
	"github.com/vendorhub/rfp-backend/pkg/database"
	"github.com/vendorhub/rfp-backend/pkg/mailer"
)

func main() {
	cfg := config.Load()

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	rfpRepo := repository.NewRFPRepository(db)

	var notifier mailer.Notifier
	if smtpMailer := mailer.NewFromEnv(); smtpMailer != nil {
		notifier = smtpMailer
	} else {
		log.Println("MAIL_USER/MAIL_PASS not set, email notifications disabled")
	}

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, notifier)
	vendorService := service.NewVendorService(userRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	rfpService := service.NewRFPService(rfpRepo, userRepo, categoryRepo, notifier)

	authHandler := handler.NewAuthHandler(authService, userService)
	adminHandler := handler.NewAdminHandler(userService)
	vendorHandler := handler.NewVendorHandler(vendorService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	rfpHandler := handler.NewRFPHandler(rfpService)

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authMiddleware := middleware.NewAuthMiddleware()

	api := router.Group("/api")
	{
		api.POST("/login", authHandler.Login)
		api.POST("/registeradmin", adminHandler.RegisterAdmin)
		api.POST("/registervendor", vendorHandler.RegisterVendor)
		api.POST("/password/forgot", authHandler.ForgotPassword)
		api.POST("/password/reset-otp", authHandler.ResetPasswordWithOTP)
		api.POST("/password/change", authHandler.ChangePassword)
	}

	authed := api.Group("")
	authed.Use(authMiddleware.RequireAuth())
	{
		authed.GET("/categories", categoryHandler.List)
		authed.GET("/categories/:id", categoryHandler.GetByID)
		authed.GET("/rfp/all", rfpHandler.GetAll)
		authed.GET("/rfp/getrfp/:vendor_id", rfpHandler.ListByVendor)
		authed.GET("/rfp/quotes/:id", rfpHandler.GetQuotes)
		authed.GET("/rfp/:id", rfpHandler.GetByID)
	}

	admin := api.Group("")
	admin.Use(authMiddleware.RequireAdmin())
	{
		admin.POST("/categories", categoryHandler.Create)
		admin.PUT("/categories/:id", categoryHandler.Rename)
		admin.PATCH("/categories/:id/status", categoryHandler.ToggleStatus)
		admin.DELETE("/categories/:id", categoryHandler.Delete)

		admin.GET("/vendorlist", vendorHandler.GetVendorList)
		admin.GET("/vendorlist/category/:category_id", vendorHandler.GetVendorListByCategory)
		admin.PUT("/vendors/:id/status", adminHandler.ApproveVendor)

		admin.POST("/createrfp", rfpHandler.Create)
		admin.POST("/rfp/:id", rfpHandler.Update)
		admin.PUT("/rfp/:id/close", rfpHandler.Close)
	}

	vendor := api.Group("")
	vendor.Use(authMiddleware.RequireVendor())
	{
		vendor.POST("/rfp/apply/:id", rfpHandler.ApplyQuote)
	}

	log.Printf("starting server on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.VendorProfile{},
		&model.Category{},
		&model.VendorCategory{},
		&model.RFP{},
		&model.RFPCategory{},
		&model.RFPVendor{},
	)
}
