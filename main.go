package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"agos/cmd"
	"agos/internal/container"
	"agos/internal/database"
	"agos/internal/logger"
	"agos/internal/middleware"
	"agos/internal/recordstore"
	"agos/internal/routes"
)

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	// Load .env file, but don't overwrite system environment variables.
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, falling back to system environment variables")
	}

	// Utility subcommands (e.g. `agos schema`) run instead of the server.
	if len(os.Args) > 1 {
		cmd.Execute(context.Background())
		return
	}

	dbPath := os.Getenv("AGOS_DB_PATH")
	if dbPath == "" {
		dbPath = "agos.db"
	}

	db, err := database.NewSQLiteConnection(dbPath)
	if err != nil {
		log.Fatal("could not open the database", zap.Error(err))
	}
	defer db.Close()

	store := recordstore.New(db)
	// Schema failure is fatal before any route is registered; there is no
	// degraded mode.
	if err := store.EnsureSchema(database.SchemaVersion, database.Declarations()); err != nil {
		log.Fatal("could not ensure the database schema", zap.Error(err))
	}

	log.Info("database ready", zap.String("path", dbPath), zap.Int("schemaVersion", database.SchemaVersion))

	c := container.NewAppContainer(store, log)

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware(log))
	routes.RegisterRoutes(router, c)

	host := os.Getenv("APP_HOST")
	if host == "" {
		host = ":8080"
	}
	if err := router.Run(host); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
