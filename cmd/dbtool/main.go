package main

import (
	"database/sql"
	"log"
	"strings"

	"food-finder-service/internal/adapters/repositories"
	"food-finder-service/internal/config"
	"food-finder-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// dbtool prepares the databases outside the server process: the local
// SQLite file always, and the shared Postgres geocode cache when
// DATABASE_URL is configured.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()

	log.Println("Initializing SQLite schema...")
	if err := initSqlite(cfg.DBPath); err != nil {
		log.Fatal(err)
	}
	log.Println("SQLite schema ready.")

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Println("DATABASE_URL not set; skipping Postgres.")
		return
	}

	log.Println("Initializing Postgres schema...")
	pgDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pgDB.Close()

	if err := repositories.InitPostgresSchema(pgDB); err != nil {
		log.Fatalf("postgres schema initialization failed: %v", err)
	}
	log.Println("Postgres schema ready.")
}

func initSqlite(dbPath string) error {
	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	defer sqliteDB.Close()

	return repositories.InitSchema(sqliteDB)
}
