package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "travelsuggester/internal/config"
	"travelsuggester/internal/db"
	router "travelsuggester/internal/http"
	"travelsuggester/internal/repositories"
	"travelsuggester/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	store, conn := openStore(env)
	if conn != nil {
		defer conn.Close()
	}

	svc := services.New(store, time.Now)
	svc.Auth = services.AuthService{
		Username:     env.AdminUsername,
		PasswordHash: env.AdminPasswordHash,
		Secret:       []byte(env.JWTSecret),
	}

	if env.SeedOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if _, err := svc.Seed.SeedDefaults(ctx); err != nil {
			log.Printf("seed on start failed: %v", err)
		}
		cancel()
	}

	r := router.NewRouter(env, svc)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on http://localhost%s (store=%s)", env.AppAddr, env.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped")
}

func openStore(env intconfig.Env) (repositories.Store, *sql.DB) {
	switch env.StoreDriver {
	case intconfig.StoreMemory:
		return repositories.NewMemoryStore(time.Now), nil
	case intconfig.StoreMySQL:
		conn, err := intconfig.ConnectDB(env)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		if !env.DBSkipSchema {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := db.EnsureSchema(ctx, conn); err != nil {
				log.Fatalf("database: %v", err)
			}
		}
		return repositories.NewMySQLStore(conn, time.Now), conn
	default:
		log.Fatalf("unknown STORE_DRIVER %q (want %s or %s)", env.StoreDriver, intconfig.StoreMemory, intconfig.StoreMySQL)
		return repositories.Store{}, nil
	}
}
