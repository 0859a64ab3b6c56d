package global

import (
	"database/sql"

	"air_command/config"
	"air_command/internal/registry"

	"github.com/go-playground/validator/v10"
	_ "github.com/go-sql-driver/mysql"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	PollutionReports string // Collection lưu báo cáo ô nhiễm của người dân
}

// Các biến toàn cục
var Validate *validator.Validate                 // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                // Phiên kết nối tới MongoDB
var MySQL_Session *sql.DB                        // Phiên kết nối tới MySQL (fallback store + analytics logs)
var ServerConfig *config.Configuration           // Cấu hình của server
var ColNames = CollectionName{
	PollutionReports: "pollution_reports",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
