package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"estateconnect/internal/adapter/api"
	"estateconnect/internal/adapter/api/handler"
	apimiddleware "estateconnect/internal/adapter/api/middleware"
	"estateconnect/internal/adapter/api/router"
	"estateconnect/internal/adapter/repository"
	"estateconnect/internal/infrastructure/firebase"
	"estateconnect/internal/infrastructure/ratelimit"
	"estateconnect/internal/infrastructure/storage"
	"estateconnect/internal/usecase"
	"estateconnect/pkg/config"
	"estateconnect/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.FirebaseProject, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	propertyRepo := repository.NewFirestorePropertyRepository(firestoreClient)
	bookingRepo := repository.NewFirestoreBookingRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)
	fileMetadataRepo := repository.NewFirestoreFileMetadataRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo)
	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo, userRepo, notificationRepo, cfg.AutoApproveListings)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, propertyRepo, userRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, propertyRepo)

	if err := authUseCase.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Error("Admin bootstrap failed: %v", err)
	}

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authUseCase),
		User:         handler.NewUserHandler(userUseCase),
		Property:     handler.NewPropertyHandler(propertyUseCase),
		Booking:      handler.NewBookingHandler(bookingUseCase),
		Favorite:     handler.NewFavoriteHandler(favoriteUseCase),
		Notification: handler.NewNotificationHandler(notificationUseCase),
		Admin:        handler.NewAdminHandler(userUseCase),
		File:         handler.NewFileHandler(storageClient, fileMetadataRepo),
		Health:       handler.NewHealthHandler(),
	}

	router.Setup(e, handlers, authMiddleware, roleMiddleware, rateLimitMiddleware)

	logger.Info("Starting server on port %s (auto-approve listings: %v)", cfg.ServerPort, cfg.AutoApproveListings)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
