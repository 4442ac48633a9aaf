// @title Kular Fashion Storefront API
// @version 1.0
// @description Backend-for-frontend of the Kular Fashion storefront. Commerce data lives in the external commerce API; this service owns shopper sessions, marketing content and the checkout flow.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/SatpalInfilogix/kular-fashion-web/cart"
	"github.com/SatpalInfilogix/kular-fashion-web/commerce"
	"github.com/SatpalInfilogix/kular-fashion-web/config"
	"github.com/SatpalInfilogix/kular-fashion-web/controllers/account_controller"
	"github.com/SatpalInfilogix/kular-fashion-web/controllers/auth_controller"
	"github.com/SatpalInfilogix/kular-fashion-web/controllers/cart_controller"
	"github.com/SatpalInfilogix/kular-fashion-web/controllers/checkout_controller"
	"github.com/SatpalInfilogix/kular-fashion-web/controllers/filter_controller"
	"github.com/SatpalInfilogix/kular-fashion-web/controllers/newsletter_controller"
	_ "github.com/SatpalInfilogix/kular-fashion-web/docs"
	"github.com/SatpalInfilogix/kular-fashion-web/middleware"
	"github.com/SatpalInfilogix/kular-fashion-web/routes"
	"github.com/SatpalInfilogix/kular-fashion-web/services"
	"github.com/SatpalInfilogix/kular-fashion-web/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Commerce API location
	config.InitCommerce()
	// Content DB (marketing content, newsletter)
	config.InitDB()
	defer config.CloseDB()
	// Redis connection (sessions, rate limiting)
	config.ConnectRedis()

	// Cloudinary delivery for marketing images
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if err := services.InitImageService(cloudName, apiKey, apiSecret, config.CommerceAPIRoot); err != nil {
		log.Fatalf("Failed to initialize image service: %v", err)
	}

	// ✅ Initialize Google OAuth
	config.InitGoogleOAuth()

	// ✅ Shopper session cookie signing
	middleware.InitSessionCookies()

	store := session.NewRedisStore(config.RedisClient)
	client := commerce.NewClient(config.CommerceAPIBase)
	hydrator := &cart.Hydrator{Store: store, Client: client, ImageRoot: config.CommerceAPIRoot}
	mailer := services.NewResendClient()

	cart_controller.Init(store, hydrator)
	checkout_controller.Init(store, client, hydrator)
	filter_controller.Init(store, client)
	auth_controller.Init(store, client)
	account_controller.Init(store, client)
	newsletter_controller.Init(mailer)

	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetStorefrontURL()},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // receipt downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Every request gets a shopper session and an identity classification.
	router.Use(middleware.ShopperSession())
	router.Use(middleware.Identity(store))

	router.LoadHTMLGlob("templates/*.html")

	// Server-rendered pages
	routes.SetupPageRoutes(router)

	// Register API routes
	api := router.Group("/api/v1")
	routes.SetupAuthRoutes(api)
	routes.SetupStorefrontRoutes(api)
	routes.SetupCheckoutRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Storefront is running on http://localhost:8080")
	router.Run(":8080")
}
