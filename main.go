package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"featureboard/cliparse"
	"featureboard/db"
	"featureboard/middleware"
	"featureboard/router"
)

func main() {
	var err error

	// .env is optional; deployments set real environment variables
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Seed demo users if requested
	if cfg.SeedDemo {
		if err := db.SeedDemoUsers(dbConn); err != nil {
			slog.Error("demo seed failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Demo users seeded", "users", "alice, bob, charlie")
	}

	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		logSQLiteFileSize(cfg.DatabaseURL)
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// logSQLiteFileSize logs the size of the SQLite database file. Best effort:
// the DSN may carry a file: prefix and query parameters, or name an
// in-memory database with no file at all.
func logSQLiteFileSize(dsn string) {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	fi, err := os.Stat(path)
	if err != nil {
		return
	}
	slog.Info("Database file ready", "path", path, "size", humanize.Bytes(uint64(fi.Size())))
}
