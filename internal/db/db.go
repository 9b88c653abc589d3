package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"valhalla/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

const defaultDSN = "host=localhost user=postgres password=postgres dbname=valhalla port=5432 sslmode=disable TimeZone=UTC"

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = defaultDSN
	}

	if err := InitWithDSN(dsn); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
}

// InitWithDSN connects, migrates and seeds, then publishes the connection as DB.
func InitWithDSN(dsn string) error {
	conn, err := Open(dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	log.Println("Database connection established")

	if err := Migrate(conn); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Println("Database migration completed")

	if err := seedPrograms(conn); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	DB = conn
	return nil
}

// Open picks the driver from the DSN: "sqlite:<path>" or a *.db path opens
// SQLite, anything else is handed to the postgres driver.
func Open(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if path, ok := sqlitePath(dsn); ok {
		if !strings.Contains(path, "?") {
			path += "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
		}
		return gorm.Open(sqlite.Open(path), cfg)
	}
	return gorm.Open(postgres.Open(dsn), cfg)
}

func sqlitePath(dsn string) (string, bool) {
	if strings.HasPrefix(dsn, "sqlite:") {
		return strings.TrimPrefix(dsn, "sqlite:"), true
	}
	if strings.HasSuffix(dsn, ".db") {
		return dsn, true
	}
	return "", false
}

func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.WallPost{},
		&models.Thread{},
		&models.Reply{},
		&models.Program{},
	)
}

func seedPrograms(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.Program{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Programs already seeded, skipping")
		return nil
	}

	programs := []models.Program{
		{
			Slug:        "ragnarok",
			Title:       "Ragnarok",
			Description: "The ultimate battle for rebirth and strength",
			Image:       "/static/assets/ragnarok.png",
			GlowColor:   "rgba(56, 189, 248, 0.7)",
			BorderGlow:  "rgba(56, 189, 248, 1)",
			Position:    1,
			Available:   true,
		},
		{
			Slug:        "berserkyr5",
			Title:       "Berserkyr 5",
			Description: "Five moves of fury and power. Coming Soon!",
			Image:       "/static/assets/berserkyr.png",
			GlowColor:   "rgba(220, 38, 38, 0.7)",
			BorderGlow:  "rgba(220, 38, 38, 1)",
			Position:    2,
		},
		{
			Slug:        "ascension",
			Title:       "Ascension Protocol",
			Description: "Rise above, transform within. Coming Soon!",
			Image:       "/static/assets/ascension.png",
			GlowColor:   "rgba(34, 197, 94, 0.7)",
			BorderGlow:  "rgba(34, 197, 94, 1)",
			Position:    3,
		},
	}

	for _, program := range programs {
		if err := conn.Create(&program).Error; err != nil {
			log.Printf("Failed to create program %s: %v", program.Slug, err)
		}
	}
	log.Println("Initial programs created successfully")
	return nil
}
