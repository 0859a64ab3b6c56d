package database

import (
	"database/sql"
	"fmt"
	"time"

	"air_command/config"
	"air_command/internal/logger"

	_ "github.com/go-sql-driver/mysql"
)

// GetMySQLInstance khởi tạo kết nối MySQL từ DSN trong cấu hình.
// MySQL đóng vai trò fallback store cho báo cáo ô nhiễm và nơi ghi log analytics.
func GetMySQLInstance(c *config.Configuration) (*sql.DB, error) {
	if c.MySQL_DSN == "" {
		return nil, fmt.Errorf("MySQL DSN is empty")
	}

	db, err := sql.Open("mysql", c.MySQL_DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	logger.GetAppLogger().Info("Successfully connected to MySQL")
	return db, nil
}

// schemaStatements chứa DDL cho các bảng cần có.
// pollution_reports là fallback store, hai bảng log phục vụ analytics.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS pollution_reports (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		report_id VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		mobile VARCHAR(20) NOT NULL,
		email VARCHAR(255) NOT NULL,
		location VARCHAR(500) NOT NULL,
		latitude DOUBLE NULL,
		longitude DOUBLE NULL,
		severity INT NOT NULL,
		description TEXT NULL,
		image_url VARCHAR(1000) NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'pending',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		UNIQUE KEY report_id_unique (report_id)
	)`,
	`CREATE TABLE IF NOT EXISTS aqi_prediction_logs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		current_aqi DOUBLE NOT NULL,
		aqi_24h DOUBLE NULL,
		aqi_48h DOUBLE NULL,
		aqi_72h DOUBLE NULL,
		trend VARCHAR(50) NULL,
		confidence DOUBLE NULL,
		model_version VARCHAR(100) NULL,
		prediction_type VARCHAR(50) NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS source_attribution_logs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		traffic DOUBLE NOT NULL,
		industry DOUBLE NOT NULL,
		construction DOUBLE NOT NULL,
		stubble_burning DOUBLE NOT NULL,
		other DOUBLE NOT NULL,
		dominant_source VARCHAR(100) NULL,
		confidence DOUBLE NULL,
		model_version VARCHAR(100) NULL,
		prediction_type VARCHAR(50) NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureTables tạo các bảng MySQL nếu chưa tồn tại.
func EnsureTables(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to ensure MySQL table: %w", err)
		}
	}
	logger.GetAppLogger().Info("MySQL tables are ensured")
	return nil
}
