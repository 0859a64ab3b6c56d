package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa toàn bộ cấu hình của server, đọc từ biến môi trường.
type Configuration struct {
	Address string `env:"SERVER_ADDRESS" envDefault:":8080"`

	// Database
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`
	MySQL_DSN             string `env:"MYSQL_DSN,required"`

	// Admin
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@delhiair.gov.in"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"DelhiAir@2026"`

	// Upstream services
	WAQI_APIToken  string `env:"WAQI_API_TOKEN"`
	WAQI_FeedURL   string `env:"WAQI_FEED_URL" envDefault:"https://api.waqi.info"`
	ModelServerURL string `env:"MODEL_SERVER_URL" envDefault:"http://localhost:8500"`

	// Generative AI
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	GeminiAPIURL string `env:"GEMINI_API_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/models"`

	// Email (SMTP)
	EmailHost     string `env:"EMAIL_HOST" envDefault:"smtp.gmail.com"`
	EmailPort     int    `env:"EMAIL_PORT" envDefault:"587"`
	EmailUser     string `env:"EMAIL_USER"`
	EmailPassword string `env:"EMAIL_PASSWORD"`
	EmailFrom     string `env:"EMAIL_FROM"`

	// CORS
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000,http://localhost:5173"`
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"true"`

	// Rate limiting
	RateLimit_Max    int  `env:"RATE_LIMIT_MAX" envDefault:"100"`
	RateLimit_Window int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`
	RateLimit_Enable bool `env:"RATE_LIMIT_ENABLE" envDefault:"true"`

	// TLS
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"`
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`
}

// getEnvPath tìm file env theo GO_ENV, đi ngược từ thư mục hiện tại lên root.
func getEnvPath() (string, error) {
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "dev"
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("không lấy được thư mục hiện tại: %w", err)
	}

	for {
		envPath := filepath.Join(dir, "config", "env", environment+".env")
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("không tìm thấy file env cho môi trường %s", environment)
		}
		dir = parent
	}
}

// NewConfig khởi tạo Configuration từ file env (nếu có) và biến môi trường.
// Thiếu file env không phải lỗi, biến môi trường hệ thống vẫn được đọc.
func NewConfig() (*Configuration, error) {
	if envPath, err := getEnvPath(); err == nil {
		_ = godotenv.Load(envPath)
	}

	cfg := &Configuration{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("lỗi đọc cấu hình từ biến môi trường: %w", err)
	}

	if cfg.EmailFrom == "" {
		cfg.EmailFrom = cfg.EmailUser
	}

	return cfg, nil
}
