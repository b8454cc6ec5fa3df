package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS places (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) COLLATE utf8mb4_bin NOT NULL,
		category VARCHAR(64) COLLATE utf8mb4_bin NOT NULL DEFAULT '',
		rating DOUBLE NOT NULL DEFAULT 0,
		description TEXT NOT NULL,
		location VARCHAR(255) COLLATE utf8mb4_bin NOT NULL DEFAULT '',
		latitude DOUBLE NULL,
		longitude DOUBLE NULL,
		reviews_count INT NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		INDEX idx_places_name (name),
		INDEX idx_places_category (category)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS trips (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		trip_number VARCHAR(32) COLLATE utf8mb4_bin NOT NULL,
		origin VARCHAR(255) COLLATE utf8mb4_bin NOT NULL,
		destination VARCHAR(255) COLLATE utf8mb4_bin NOT NULL,
		departure_time VARCHAR(64) NOT NULL,
		mode VARCHAR(32) COLLATE utf8mb4_bin NOT NULL,
		travel_plan TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		UNIQUE KEY uq_trips_trip_number (trip_number)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS bus_routes (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		route_name VARCHAR(255) COLLATE utf8mb4_bin NOT NULL,
		departure_time VARCHAR(64) NOT NULL DEFAULT '',
		duration VARCHAR(64) NOT NULL DEFAULT '',
		fare VARCHAR(64) NOT NULL DEFAULT '',
		operator VARCHAR(64) COLLATE utf8mb4_bin NOT NULL DEFAULT 'KSRTC',
		rating DOUBLE NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		INDEX idx_bus_routes_route_name (route_name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		place_id BIGINT NOT NULL,
		user_name VARCHAR(255) NOT NULL,
		rating DOUBLE NOT NULL,
		comment TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		INDEX idx_reviews_place_id (place_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the tables when missing. Existing tables are left as is.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	log.Printf("[DB] action=ensure_schema tables=%d", len(schemaStatements))
	return nil
}
