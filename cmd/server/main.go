package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"food-finder-service/internal/adapters/cache"
	"food-finder-service/internal/adapters/googlemaps"
	"food-finder-service/internal/adapters/repositories"
	"food-finder-service/internal/api"
	"food-finder-service/internal/config"
	"food-finder-service/internal/domain"
	"food-finder-service/internal/platform/clock"
	"food-finder-service/internal/platform/db"
	"food-finder-service/internal/ports"
	"food-finder-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Postgres, Google Maps) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sqliteDB, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqliteDB.Close()

	// Initialize schema on startup for local runs.
	if err := repositories.InitSchema(sqliteDB); err != nil {
		log.Fatal(err)
	}

	// Geocoding and walking distances rarely change, so those caches are
	// persistent. Nearby-search and detail responses get a TTL instead.
	geocodeCache, closeGeocode, err := newGeocodeCache(cfg, sqliteDB)
	if err != nil {
		log.Fatal(err)
	}
	defer closeGeocode()

	searchCache := cache.NewMemory[[]domain.PlaceCandidate](cfg.CacheTTL)
	defer searchCache.Close()
	detailCache := cache.NewMemory[domain.PlaceDetail](cfg.CacheTTL)
	defer detailCache.Close()

	client, err := googlemaps.NewClient(cfg.GoogleMapsAPIKey, googlemaps.Caches{
		Geocode:  geocodeCache,
		Search:   cache.NewMemorySearchCache(searchCache),
		Detail:   cache.NewMemoryDetailCache(detailCache),
		Distance: cache.NewSqliteDistanceCache(sqliteDB),
	})
	if err != nil {
		log.Fatal(err)
	}

	zone, err := clock.NewZone(cfg.Timezone)
	if err != nil {
		log.Fatal(err)
	}

	finder := &services.Finder{
		Geocoder:    client,
		Searcher:    client,
		Details:     client,
		Distance:    client,
		Clock:       zone,
		SettleDelay: cfg.SettleDelay,
	}

	history := repositories.NewSqliteHistoryRepository(sqliteDB)
	router := api.NewRouter(finder, client, zone, history)

	// Timeouts are tuned for cold-cache searches (several external API
	// calls per request).
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := sqliteDB.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return sqliteDB, nil
}

// newGeocodeCache picks the geocode cache backend: a shared Postgres
// table when DATABASE_URL is configured, the local SQLite table
// otherwise. The returned func releases the Postgres pool (a no-op for
// SQLite, which main closes itself).
func newGeocodeCache(cfg *config.Config, sqliteDB *sql.DB) (ports.GeocodeCache, func(), error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return cache.NewSqliteGeocodeCache(sqliteDB), func() {}, nil
	}

	pgDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	if err := repositories.InitPostgresSchema(pgDB); err != nil {
		pgDB.Close()
		return nil, nil, err
	}

	log.Println("Using Postgres geocode cache")
	return cache.NewSQLGeocodeCache(pgDB), func() { pgDB.Close() }, nil
}
