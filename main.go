package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/LilMortal/Feastly-App/internal/handlers"
	"github.com/LilMortal/Feastly-App/internal/middleware"
	"github.com/LilMortal/Feastly-App/internal/models"
	"github.com/LilMortal/Feastly-App/internal/repositories"
	"github.com/LilMortal/Feastly-App/internal/seed"
	"github.com/LilMortal/Feastly-App/internal/services"
	"github.com/LilMortal/Feastly-App/internal/storage"
	"github.com/LilMortal/Feastly-App/internal/stores"
	"github.com/LilMortal/Feastly-App/pkg/rabbitmq"
)

// App bundles the wired application: the Fiber server plus the store and
// service instances the tests need to reach.
type App struct {
	Fiber  *fiber.App
	Events *rabbitmq.Client

	Toasts   *stores.ToastStore
	Theme    *stores.ThemeStore
	Cafes    *stores.CafeStore
	Bookings *stores.BookingStore
	Auth     *stores.AuthStore

	AuthService *services.AuthService
}

// NewApp builds the full application from configuration. Stores are explicit
// instances created here and injected downward; nothing is a package-level
// singleton.
func NewApp() (*App, error) {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("JWT_SECRET", "feastly-dev-secret")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables booking events
	viper.SetDefault("STORAGE_DRIVER", "memory")
	viper.SetDefault("DATABASE_DSN", "feastly.db")
	viper.SetDefault("DATA_DIR", ".feastly")
	viper.SetDefault("SIMULATED_LATENCY_MS", 600)
	viper.SetDefault("SYSTEM_DARK_MODE", false)
	viper.AutomaticEnv()

	latency := time.Duration(viper.GetInt("SIMULATED_LATENCY_MS")) * time.Millisecond

	// --- Persisted key-value state (feastly-user, feastly-theme) ---
	kv, err := storage.NewFileStore(afero.NewOsFs(), viper.GetString("DATA_DIR"))
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}

	// --- Repositories ---
	cafeRepo, bookingRepo, userRepo, err := buildRepositories()
	if err != nil {
		return nil, err
	}
	seedData(cafeRepo, bookingRepo, userRepo)

	// --- Optional RabbitMQ client for booking events ---
	var events *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		events, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
	}

	// --- Services (simulated remote boundary) ---
	catalogService := services.NewCatalogService(cafeRepo, latency)
	var publisher services.EventPublisher
	if events != nil {
		publisher = events
	}
	bookingService := services.NewBookingService(bookingRepo, publisher, nil, latency)
	authService := services.NewAuthService(userRepo, kv, viper.GetString("JWT_SECRET"), latency)

	// --- Stores ---
	toastStore := stores.NewToastStore()
	themeStore := stores.NewThemeStore(kv, func() bool { return viper.GetBool("SYSTEM_DARK_MODE") })
	cafeStore := stores.NewCafeStore(catalogService, toastStore)
	bookingStore := stores.NewBookingStore(bookingService, toastStore)
	authStore := stores.NewAuthStore(authService, toastStore)

	themeStore.InitTheme()
	authStore.CheckAuth() // Restore a prior session once at startup

	// --- Handlers ---
	cafeHandler := handlers.NewCafeHandler(cafeStore)
	bookingHandler := handlers.NewBookingHandler(bookingStore)
	authHandler := handlers.NewAuthHandler(authStore, authService)
	themeHandler := handlers.NewThemeHandler(themeStore)
	toastHandler := handlers.NewToastHandler(toastStore)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")

	// Public routes
	cafeHandler.RegisterRoutes(apiV1)
	authHandler.RegisterRoutes(apiV1)
	themeHandler.RegisterRoutes(apiV1)
	toastHandler.RegisterRoutes(apiV1)

	// Protected routes (require a session token)
	protectedRoutes := apiV1.Group("", middleware.AuthRequired(authService))
	bookingHandler.RegisterRoutes(protectedRoutes)
	authHandler.RegisterProtectedRoutes(protectedRoutes)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return &App{
		Fiber:       app,
		Events:      events,
		Toasts:      toastStore,
		Theme:       themeStore,
		Cafes:       cafeStore,
		Bookings:    bookingStore,
		Auth:        authStore,
		AuthService: authService,
	}, nil
}

// buildRepositories selects the storage driver from configuration: the
// in-memory mocks by default, or a GORM-backed database.
func buildRepositories() (repositories.CafeRepository, repositories.BookingRepository, repositories.UserRepository, error) {
	driver := viper.GetString("STORAGE_DRIVER")
	switch driver {
	case "memory":
		return repositories.NewMockCafeRepository(), repositories.NewMockBookingRepository(), repositories.NewMockUserRepository(), nil
	case "sqlite", "postgres":
		dsn := viper.GetString("DATABASE_DSN")
		var dialector gorm.Dialector
		if driver == "sqlite" {
			dialector = sqlite.Open(dsn)
		} else {
			dialector = postgres.Open(dsn)
		}
		db, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
		}
		if err := db.AutoMigrate(&models.Cafe{}, &models.Booking{}, &models.User{}); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		return repositories.NewGORMCafeRepository(db), repositories.NewGORMBookingRepository(db), repositories.NewGORMUserRepository(db), nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
	}
}

// seedData loads the demo collections into empty repositories.
func seedData(cafeRepo repositories.CafeRepository, bookingRepo repositories.BookingRepository, userRepo repositories.UserRepository) {
	if existing, err := cafeRepo.GetAll(); err != nil || len(existing) > 0 {
		return // Already seeded (persistent driver across restarts)
	}

	for _, cafe := range seed.Cafes() {
		c := cafe
		if err := cafeRepo.Create(&c); err != nil {
			log.Printf("Error seeding cafe %s: %v", cafe.Name, err)
		}
	}
	for _, user := range seed.Users() {
		u := user
		if err := userRepo.Create(&u); err != nil {
			log.Printf("Error seeding user %s: %v", user.Email, err)
		}
	}
	for _, booking := range seed.Bookings() {
		b := booking
		if err := bookingRepo.Create(&b); err != nil {
			log.Printf("Error seeding booking %d: %v", booking.ID, err)
		}
	}
	log.Println("Seeded demo cafes, users, and bookings")
}

func main() {
	app, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}
	if app.Events != nil {
		defer app.Events.Close()

		// In-process consumer logging booking lifecycle events.
		go func() {
			log.Println("Starting RabbitMQ consumer for bookings...")
			handler := func(msg amqp.Delivery) error {
				log.Printf("Received booking event %s (Tag: %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := app.Events.ConsumeBookingEvents(handler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Fiber.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Fiber.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
