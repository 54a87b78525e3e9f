package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"gotodo/db"
	"gotodo/internal/auth"
	"gotodo/internal/config"
	"gotodo/internal/todo"
	"gotodo/internal/user"
	"gotodo/internal/web"
	"gotodo/middleware"
)

// Global loggers for different output streams
var (
	infoLogger  = log.New(os.Stdout, "", log.LstdFlags)
	errorLogger = log.New(os.Stderr, "", log.LstdFlags)
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		errorLogger.Fatalf("Failed to load configuration: %v", err)
	}

	infoLogger.Println("Using SQLite database")
	sqliteDB, err := db.ConnectToSQLite(cfg.SQLitePath)
	if err != nil {
		errorLogger.Fatalf("Failed to connect to SQLite: %v", err)
	}
	defer sqliteDB.Close()

	if err := db.InitializeSchema(sqliteDB); err != nil {
		errorLogger.Fatalf("Failed to initialize database schema: %v", err)
	}

	repoFactory := db.NewRepositoryFactory(sqliteDB, cfg.DatabaseName)
	userRepo := repoFactory.NewUserRepository()
	todoRepo := repoFactory.NewTodoRepository()

	// Serialize writes through a single worker for SQLite
	dbManager := db.NewDBManager()
	defer dbManager.Stop()

	userService := user.NewService(userRepo, dbManager)
	todoService := todo.NewService(todoRepo, dbManager)

	sessionManager := auth.NewSessionManager(cfg.SessionSecret)
	authMiddleware := middleware.NewMiddleware(sessionManager, userService)

	webHandler := web.NewWebHandler(userService, todoService, sessionManager, cfg)
	router := webHandler.SetupRoutes(authMiddleware)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middleware.LoggingMiddleware(router),
	}

	go func() {
		infoLogger.Printf("Server is starting on port %s...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errorLogger.Fatalf("Server ListenAndServe error: %v", err)
		}
	}()

	waitForShutdown(server)
}

func waitForShutdown(server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	sig := <-stop
	infoLogger.Printf("Received shutdown signal: %v", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	infoLogger.Println("Shutting down the server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		errorLogger.Printf("Server Shutdown error: %v", err)
		os.Exit(1)
	}
	infoLogger.Println("Server stopped")
}
