package main

import (
	"context"
	"net/http"

	_ "time/tzdata" // Load timezone data

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/bhoomikart/backend/internal/app"
	"github.com/bhoomikart/backend/internal/config"
	"github.com/bhoomikart/backend/internal/controllers"
	"github.com/bhoomikart/backend/internal/middleware"
	"github.com/bhoomikart/backend/internal/repositories"
	"github.com/bhoomikart/backend/internal/routes"
	"github.com/bhoomikart/backend/internal/services"
	"github.com/bhoomikart/backend/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize the application:", err)
	}
	defer application.Close()

	// Repositories
	userRepo := repositories.NewUserRepository(application.DB)
	locationRepo := repositories.NewLocationRepository(application.DB)
	propertyRepo := repositories.NewPropertyRepository(application.DB)
	imageRepo := repositories.NewPropertyImageRepository(application.DB)
	shortlistRepo := repositories.NewShortlistRepository(application.DB)
	viewRepo := repositories.NewPropertyViewRepository(application.DB)
	verificationRepo := repositories.NewPhoneVerificationRepository(application.DB)

	// Conditionally seed the location directory if the feature flag is enabled.
	if cfg.LDFlag_SeedDbWithTestData {
		if err := app.SeedSampleLocations(context.Background(), locationRepo); err != nil {
			utils.Logger.Fatal("Failed to seed sample locations:", err)
		}
	}

	// Services
	jwtService := services.NewJWTService(cfg)
	notifier := services.NewNotificationService(cfg)
	authService := services.NewAuthService(userRepo, verificationRepo, jwtService, notifier)
	projector := services.NewPropertyProjector(locationRepo, userRepo, imageRepo, shortlistRepo, viewRepo)
	propertyService := services.NewPropertyService(cfg, propertyRepo, locationRepo, imageRepo, viewRepo, projector)
	shortlistService := services.NewShortlistService(shortlistRepo, propertyRepo, projector)
	locationService := services.NewLocationService(cfg, locationRepo)
	cleanupService := services.NewVerificationCleanupService(verificationRepo)

	// Controllers
	healthController := controllers.NewHealthController()
	authController := controllers.NewAuthController(cfg, authService)
	propertyController := controllers.NewPropertyController(propertyService, shortlistService)
	locationController := controllers.NewLocationController(locationService)

	// Purge expired verification codes on a schedule.
	cleanupCron := cleanupService.Start()
	defer cleanupCron.Stop()

	router := newRouter(cfg, healthController, authController, propertyController, locationController)

	// CORS config
	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}

func newRouter(
	cfg *config.Config,
	healthController *controllers.HealthController,
	authController *controllers.AuthController,
	propertyController *controllers.PropertyController,
	locationController *controllers.LocationController,
) *mux.Router {
	router := mux.NewRouter()

	// Health
	router.HandleFunc(routes.Health, healthController.HealthHandler).Methods(http.MethodGet)

	// Public auth routes
	router.HandleFunc(routes.AuthRegister, authController.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthLogin, authController.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthVerifyOTP, authController.VerifyOTPHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthResendOTP, authController.ResendOTPHandler).Methods(http.MethodPost)

	// Public location directory routes
	router.HandleFunc(routes.LocationStates, locationController.StatesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.LocationDistricts, locationController.DistrictsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.LocationSubDistricts, locationController.SubDistrictsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.LocationVillages, locationController.VillagesHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.LocationPinCodes, locationController.PinCodesHandler).Methods(http.MethodGet)

	// Protected routes (JWT middleware). Registered before the browse routes
	// so /properties/shortlisted wins over /properties/{id}.
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey))

	secured.HandleFunc(routes.AuthUser, authController.GetUserHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.AuthUser, authController.UpdateUserHandler).Methods(http.MethodPatch)

	secured.HandleFunc(routes.Properties, propertyController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PropertiesShortlisted, propertyController.ShortlistedHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyByID, propertyController.UpdateHandler).Methods(http.MethodPatch, http.MethodPut)
	secured.HandleFunc(routes.PropertyByID, propertyController.DeleteHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.PropertyShortlist, propertyController.ShortlistHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PropertyRemoveShortlist, propertyController.RemoveShortlistHandler).Methods(http.MethodDelete)

	// Browse routes: anonymous allowed, but a valid token unlocks
	// my_properties filtering and attributes view hits.
	browse := router.NewRoute().Subrouter()
	browse.Use(middleware.OptionalAuthMiddleware(cfg.RSAPublicKey))
	browse.HandleFunc(routes.Properties, propertyController.ListHandler).Methods(http.MethodGet)
	browse.HandleFunc(routes.PropertyByID, propertyController.GetHandler).Methods(http.MethodGet)

	// Uploaded media (property images, profile pictures)
	router.PathPrefix(routes.MediaPrefix).Handler(
		http.StripPrefix(routes.MediaPrefix, http.FileServer(http.Dir(cfg.MediaRoot))),
	)

	return router
}
