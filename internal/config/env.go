package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreMySQL  = "mysql"
)

type Env struct {
	AppAddr string
	GinMode string

	StoreDriver  string
	DBUser       string
	DBPass       string
	DBHost       string
	DBPort       string
	DBName       string
	DBSkipSchema bool

	CORSAllowedOrigins []string

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string

	SeedOnStart bool
}

// LoadEnv reads configuration from the environment. A .env file in the
// working directory is loaded first when present; real env vars win.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: failed to load .env: %v", err)
	}

	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: getenv("GIN_MODE", ""),

		StoreDriver:  strings.ToLower(getenv("STORE_DRIVER", StoreMemory)),
		DBUser:       getenv("DB_USER", "root"),
		DBPass:       os.Getenv("DB_PASS"),
		DBHost:       getenv("DB_HOST", "127.0.0.1"),
		DBPort:       getenv("DB_PORT", "3306"),
		DBName:       getenv("DB_NAME", "travel_app"),
		DBSkipSchema: getbool("DB_SKIP_SCHEMA", false),

		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),

		JWTSecret:         getenv("JWT_SECRET", "dev-secret-change-me"),
		AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: getenv("ADMIN_PASSWORD_HASH", ""),

		SeedOnStart: getbool("SEED_ON_START", false),
	}
}

// AuthEnabled reports whether admin-only routes are guarded.
func (e Env) AuthEnabled() bool {
	return e.AdminPasswordHash != ""
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getbool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("warning: %s=%q is not a boolean, using %v", key, v, fallback)
		return fallback
	}
	return b
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
