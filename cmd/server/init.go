package main

import (
	"context"

	"air_command/config"
	reportmodels "air_command/internal/api/reports/models"
	"air_command/internal/database"
	"air_command/internal/global"

	"github.com/sirupsen/logrus"
)

// InitGlobal khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()       // Khởi tạo validator
	initConfig()          // Khởi tạo cấu hình server
	initDatabaseMongoDB() // Khởi tạo kết nối MongoDB (primary store)
	initDatabaseMySQL()   // Khởi tạo kết nối MySQL (fallback store + analytics logs)
}

// Hàm khởi tạo validator với các custom validators (no_xss, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to initialize config: %v", err)
	}
	global.ServerConfig = cfg
	logrus.Info("Initialized server config")
}

// Hàm khởi tạo kết nối MongoDB
func initDatabaseMongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo database và các collection nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.ColNames.PollutionReports), reportmodels.PollutionReport{})
}

// Hàm khởi tạo kết nối MySQL và bảo đảm schema
func initDatabaseMySQL() {
	var err error
	global.MySQL_Session, err = database.GetMySQLInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get MySQL instance: %v", err)
	}
	logrus.Info("Connected to MySQL")

	if err := database.EnsureTables(global.MySQL_Session); err != nil {
		logrus.Fatalf("Failed to ensure MySQL tables: %v", err)
	}
	logrus.Info("Ensured MySQL tables")
}
