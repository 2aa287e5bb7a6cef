package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/mihretabn/taskhub/internal/handler/http"
	redisclient "github.com/mihretabn/taskhub/internal/infrastructure/cache"
	"github.com/mihretabn/taskhub/internal/infrastructure/config"
	database "github.com/mihretabn/taskhub/internal/infrastructure/database"
	"github.com/mihretabn/taskhub/internal/infrastructure/filestore"
	"github.com/mihretabn/taskhub/internal/infrastructure/jwt"
	"github.com/mihretabn/taskhub/internal/infrastructure/logger"
	otpgenerator "github.com/mihretabn/taskhub/internal/infrastructure/otp_generator"
	passwordservice "github.com/mihretabn/taskhub/internal/infrastructure/password_service"
	"github.com/mihretabn/taskhub/internal/infrastructure/repository/mongodb"
	"github.com/mihretabn/taskhub/internal/infrastructure/store"
	"github.com/mihretabn/taskhub/internal/infrastructure/validator"
	"github.com/mihretabn/taskhub/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	if appConfig.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	if appConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	appLogger, err := logger.NewZapLogger(appConfig.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(appConfig.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	db := mongoClient.Client.Database(appConfig.DBName)
	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Initialize Gin router
	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	vendorRepo := mongodb.NewMongoVendorRepository(db.Collection("vendors"))
	adminRepo := mongodb.NewMongoAdminRepository(db.Collection("admins"))
	categoryRepo := mongodb.NewMongoCategoryRepository(db.Collection("categories"))
	contentRepo := mongodb.NewMongoContentRepository(db)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher(appConfig.BcryptCost)
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret, appConfig.TokenExpiry)
	otpGen := otpgenerator.NewOTPGenerator()
	appValidator := validator.NewValidator()
	fileStore, err := filestore.NewDiskStore(appConfig.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtManager, otpGen, appLogger, appConfig, appValidator)
	vendorUsecase := usecase.NewVendorUsecase(vendorRepo, userRepo, hasher, jwtManager, otpGen, appLogger, appConfig, appValidator)
	adminUsecase := usecase.NewAdminUsecase(adminRepo, userRepo, hasher, jwtManager, appLogger, appValidator)
	categoryUsecase := usecase.NewCategoryUsecase(categoryRepo, appLogger)
	contentUsecase := usecase.NewContentUsecase(contentRepo, appLogger)

	// Optional Dependency Injection: Redis cache
	if appConfig.RedisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), appConfig.RedisURL)
		defer redisclient.Close(rdb)
		if rdb != nil {
			categoryUsecase.SetCategoryCache(store.NewCategoryCacheStore(rdb))
		}
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		userUsecase, vendorUsecase, adminUsecase,
		categoryUsecase, contentUsecase,
		jwtManager, fileStore, appConfig.UploadDir,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	appLogger.Infof("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
