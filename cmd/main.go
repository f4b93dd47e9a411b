package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/config"
	"github.com/vinaypatil-tal/scoot-assist-chat/internal/handler"
	"github.com/vinaypatil-tal/scoot-assist-chat/internal/repository"
	"github.com/vinaypatil-tal/scoot-assist-chat/internal/services"
	"github.com/vinaypatil-tal/scoot-assist-chat/internal/utils"
)

func main() {
	baseCtx := context.Background()
	ctx, shutdownManager := utils.NewShutdownManager(baseCtx)
	shutdownManager.StartListening()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// MongoDB
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Mongo connection failed:", err)
	}
	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing MongoDB connection...")
		return mongoClient.Disconnect(ctx)
	})
	db := mongoClient.Database(cfg.MongoDB)

	// Redis
	redisClient, err := utils.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing Redis connection...")
		return redisClient.Close()
	})

	// MinIO
	minioClient, err := utils.NewMinioClient(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket)
	if err != nil {
		log.Fatal("MinIO connection failed:", err)
	}

	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret)

	// Repositories and services
	faqRepo := repository.NewFAQRepository(db)
	chatRepo := repository.NewChatRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	catalogService := services.NewCatalogService(faqRepo, redisClient)
	chatService := services.NewChatService(chatRepo, catalogService)
	mediaService := services.NewMediaService(minioClient, cfg.MinioBucket, cfg.MinioPublicURL)
	authService := services.NewAuthService(profileRepo, jwtUtil, redisClient)
	orderService := services.NewOrderService(orderRepo)
	reviewService := services.NewReviewService(reviewRepo, chatRepo)

	chatHandler := handler.NewChatHandler(chatService, mediaService)
	faqHandler := handler.NewFAQHandler(catalogService)
	authHandler := handler.NewAuthHandler(authService)
	orderHandler := handler.NewOrderHandler(orderService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	// Router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authMiddleware := utils.AuthMiddleware(jwtUtil, redisClient)
	adminOnly := utils.RoleMiddleware("admin")

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/request-code", authHandler.RequestCode)
			auth.POST("/verify", authHandler.VerifyCode)
			auth.POST("/admin/login", authHandler.AdminLogin)
			auth.POST("/logout", authMiddleware, authHandler.Logout)
			auth.GET("/me", authMiddleware, authHandler.Me)
		}

		api.GET("/faq/catalog", faqHandler.GetCatalog)
		api.GET("/orders/track/:orderId", orderHandler.Track)

		chat := api.Group("/chat", authMiddleware)
		{
			chat.POST("/send", chatHandler.SendMessage)
			chat.POST("/quick-reply", chatHandler.QuickReply)
			chat.POST("/attachments", chatHandler.UploadAttachment)
			chat.GET("/history", chatHandler.History)
			chat.POST("/review", reviewHandler.Create)
			chat.GET("/reviews", reviewHandler.ListMine)
		}

		api.GET("/orders", authMiddleware, orderHandler.ListMine)

		admin := api.Group("/admin", authMiddleware, adminOnly)
		{
			admin.GET("/faq/categories", faqHandler.ListCategories)
			admin.POST("/faq/categories", faqHandler.CreateCategory)
			admin.PUT("/faq/categories/:id", faqHandler.UpdateCategory)
			admin.DELETE("/faq/categories/:id", faqHandler.DeleteCategory)

			admin.GET("/faq/items", faqHandler.ListItems)
			admin.POST("/faq/items", faqHandler.CreateItem)
			admin.PUT("/faq/items/:id", faqHandler.UpdateItem)
			admin.DELETE("/faq/items/:id", faqHandler.DeleteItem)

			admin.GET("/orders", orderHandler.ListAll)
			admin.POST("/orders", orderHandler.Create)
			admin.PUT("/orders/:id", orderHandler.Update)
			admin.DELETE("/orders/:id", orderHandler.Delete)

			admin.GET("/reviews", reviewHandler.ListAll)
			admin.PATCH("/reviews/:id", reviewHandler.UpdateStatus)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Support chat service running on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Shutting down HTTP server...")
		return server.Shutdown(ctx)
	})

	select {}
}
