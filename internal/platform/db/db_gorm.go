// Package db opens the relational database used for the symbol catalog and
// user accounts.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "lq45_backend/internal/feature/auth/domain/entity"
	symbolentity "lq45_backend/internal/feature/symbollist/domain/entity"
)

// OpenDB opens the configured database with a retry loop, running
// migrations when RUN_MIGRATIONS=true.
//
// DB_DRIVER selects the backend: "postgres" uses the DB_* connection
// variables, anything else falls back to a local sqlite file (DB_PATH,
// default "lq45.db").
func OpenDB() *gorm.DB {
	dialector := openDialector()

	cfg := &gorm.Config{
		// Translate driver-specific errors (duplicate key etc.) into gorm's
		// portable sentinels; the repositories depend on this.
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dialector, cfg)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&symbolentity.Symbol{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

func openDialector() gorm.Dialector {
	if os.Getenv("DB_DRIVER") == "postgres" {
		host := os.Getenv("DB_HOST")
		port := os.Getenv("DB_PORT")
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASSWORD")
		name := os.Getenv("DB_NAME")
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, pass, name)
		return gpostgres.Open(dsn)
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "lq45.db"
	}
	return gsqlite.Open(path)
}
