package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"podarstock/internal/catalog"
	"podarstock/internal/handlers"
	"podarstock/internal/models"
	"podarstock/internal/repositories"
	"podarstock/internal/services"
	"podarstock/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":5000")
	viper.SetDefault("DATABASE_DSN", "podarstock.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("CATALOG_PATH", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseDSN := viper.GetString("DATABASE_DSN")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")
	catalogPath := viper.GetString("CATALOG_PATH")

	// --- Database ---
	db, err := gorm.Open(openDialector(databaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Default catalog ---
	// The seed table is configuration: built-in by default, replaceable with
	// a JSON file via CATALOG_PATH.
	defaults := catalog.Default()
	if catalogPath != "" {
		defaults, err = catalog.Load(catalogPath)
		if err != nil {
			log.Fatalf("Failed to load catalog from %s: %v", catalogPath, err)
		}
		log.Printf("Loaded %d catalog entries from %s", len(defaults), catalogPath)
	}

	// --- Event publisher (optional) ---
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("RabbitMQ unavailable, stock events disabled: %v", err)
		} else {
			defer mqClient.Close()
			events = mqClient

			// Mirror published events into the log. An external dashboard
			// would consume the same queue.
			go func() {
				log.Println("Starting RabbitMQ consumer for stock events...")
				messageHandler := func(msg amqp.Delivery) error {
					log.Printf("Received stock event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
					return nil
				}
				if consumerErr := mqClient.ConsumeStockEvents(messageHandler); consumerErr != nil {
					log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
				}
			}()
		}
	}

	// --- Wiring ---
	productRepo := repositories.NewGORMProductRepository(db)
	productService := services.NewProductService(productRepo, defaults, events)
	productHandler := handlers.NewProductHandler(productService)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	api := app.Group("/api")
	productHandler.RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openDialector picks the GORM driver from the DSN shape: postgres for
// postgres URLs or keyword DSNs, sqlite (file path) otherwise.
func openDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}
