package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Naren-18/Saree-Commerce/cart"
	"github.com/Naren-18/Saree-Commerce/models"
	"github.com/Naren-18/Saree-Commerce/routes"
	"github.com/Naren-18/Saree-Commerce/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Pick the product store backend: a local JSON file by default, or
	// Postgres when STORE_BACKEND=postgres.
	products := initProductStore()

	// Image storage, served statically below
	uploadsDir := envOr("UPLOAD_DIR", "uploads/products")
	images := store.NewDiskImageStore(uploadsDir, "/uploads/products")

	// Gin setup
	r := gin.Default()

	// Allow large image uploads
	r.MaxMultipartMemory = 32 << 20 // 32MB

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads/products", uploadsDir)

	// Setup routes
	routes.SetupRoutes(r, products, images, cart.NewRegistry())

	// Optional daily uploads backup at 2 AM, keep 4 days
	if backupDir := os.Getenv("BACKUP_DIR"); backupDir != "" {
		go images.StartDailyBackup(backupDir, 4*24*time.Hour, 2, 0)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func initProductStore() store.ProductStore {
	if os.Getenv("STORE_BACKEND") != "postgres" {
		path := envOr("PRODUCTS_FILE", "data/products.json")
		log.Printf("📦 Using file-backed product store at %s", path)
		return store.NewFileStore(path)
	}

	db := initDatabase()
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	log.Println("📦 Using Postgres-backed product store")
	return store.NewGormStore(db)
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
