package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The storefront owns a single small database for marketing content (hero
// banners, featured categories, testimonials, brands) and newsletter
// subscribers. All commerce data lives behind the commerce API.
var (
	ContentDB   *pgxpool.Pool
	ContentGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func initPgx() {
	contentURL := os.Getenv("CONTENT_DB_URL")
	if contentURL == "" {
		// fallback to local
		contentURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/kular_storefront?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ CONTENT_DB_URL not set, using local default")
	}

	ctx, cancel := WithTimeout()
	defer cancel()

	var err error
	ContentDB, err = pgxpool.New(ctx, contentURL)
	if err != nil {
		log.Fatalf("❌ Unable to connect to content database: %v", err)
	}

	if err = ContentDB.Ping(ctx); err != nil {
		log.Fatalf("❌ Content database ping failed: %v", err)
	}

	log.Println("✅ Content database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var contentDSN string
	if os.Getenv("CONTENT_DB_URL") != "" {
		contentDSN = os.Getenv("CONTENT_DB_URL")
	} else {
		contentDSN = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=kular_storefront port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ CONTENT_DB_URL not set, using local GORM default")
	}

	var err error
	ContentGorm, err = gorm.Open(postgres.Open(contentDSN), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to content database with GORM: %v", err)
	}
	if sqlDB, err := ContentGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Content database connected (GORM)")
}

func CloseDB() {
	if ContentDB != nil {
		ContentDB.Close()
		log.Println("✅ Content database connection closed (pgx)")
	}
	if ContentGorm != nil {
		sqlDB, _ := ContentGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Content database connection closed (GORM)")
		}
	}
}
