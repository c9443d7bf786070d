package config

import (
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"net/http"
	"os"
	"strings"
)

const defaultShareCacheTTL = 300

type AppConfig struct {
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	ServerAddr     string         `yaml:"serverAddr"`
	JWT            JWTConfig      `yaml:"jwt"`
	Files          FilesConfig    `yaml:"files"`
	TTL            TTL            `yaml:"TTL"`
}

// ConfigPath : путь к файлу конфигурации, FL_CONFIG или config.yaml
func ConfigPath() string {
	if path := os.Getenv("FL_CONFIG"); path != "" {
		return path
	}
	return "config.yaml"
}

func LoadConfig(path string) (*AppConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadDotEnv : .env нужен только для локальной разработки, уже заданные переменные не перезаписываются
func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("ошибка загрузки .env: %w", err)
	}
	return nil
}

// applyEnvOverrides : переменные окружения имеют приоритет над файлом
func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("FL_FILES_PATH"); v != "" {
		cfg.Files.Root = v
	}
	if v := os.Getenv("FL_DATABASE_DSN"); v != "" {
		cfg.DatabaseConfig.DSN = v
	}
	if v := os.Getenv("FL_REDIS_ADDR"); v != "" {
		cfg.RedisConfig.Addr = v
	}
	if v := os.Getenv("FL_JWT_SECRET"); v != "" {
		cfg.JWT.SecretKey = v
	}
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8080"
	}
	if cfg.TTL.ShareCache <= 0 {
		cfg.TTL.ShareCache = defaultShareCacheTTL
	}
}

func (cfg *AppConfig) validate() error {
	var missing []string
	if cfg.Files.Root == "" {
		missing = append(missing, "files.root (FL_FILES_PATH)")
	}
	if cfg.DatabaseConfig.DSN == "" {
		missing = append(missing, "databaseConfig.dsn")
	}
	if cfg.JWT.SecretKey == "" {
		missing = append(missing, "jwt.secret_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("не заданы обязательные параметры: %s", strings.Join(missing, ", "))
	}
	return nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	server := &http.Server{
		Addr:    serverAddress,
		Handler: router,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
