package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config agrupa todo lo que el servicio lee del entorno.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Odin     UpstreamConfig
	Plans    UpstreamConfig

	// Ruta a un YAML con el catálogo compartido de alimentos (opcional).
	FoodsSeedFile string

	// ALLOW_ALL_CAPABILITIES=true desactiva el gating por plan (modo dev).
	AllowAllCapabilities bool
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	DSN         string
	AutoMigrate bool
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

// UpstreamConfig sirve para Odin y plans-features: ambos son BaseURL + API key.
type UpstreamConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Configured indica si hay datos suficientes para instanciar el cliente.
func (u UpstreamConfig) Configured() bool {
	return strings.TrimSpace(u.BaseURL) != "" && strings.TrimSpace(u.APIKey) != ""
}

// Load lee .env si existe (no es error que falte) y luego el entorno.
func Load() Config {
	_ = godotenv.Load()
	return fromEnv()
}

// LoadFile es como Load pero con un .env explícito; aquí sí falla si no existe.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil {
		return Config{}, err
	}
	return fromEnv(), nil
}

func fromEnv() Config {
	return Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			DSN:         getEnv("DB_DSN", ""),
			AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", true),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			App:    getEnv("APP_NAME", "pet-nutrition"),
		},
		Odin: UpstreamConfig{
			BaseURL: getEnv("ODIN_BASE_URL", ""),
			APIKey:  getEnv("ODIN_API_KEY", ""),
			Timeout: getEnvDuration("ODIN_TIMEOUT", 5*time.Second),
		},
		Plans: UpstreamConfig{
			BaseURL: getEnv("PLANS_BASE_URL", ""),
			APIKey:  getEnv("PLANS_API_KEY", ""),
			Timeout: getEnvDuration("PLANS_TIMEOUT", 5*time.Second),
		},
		FoodsSeedFile:        getEnv("FOODS_SEED_FILE", ""),
		AllowAllCapabilities: getEnvBool("ALLOW_ALL_CAPABILITIES", false),
	}
}

func getEnv(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
		// Se acepta también un entero en segundos ("15").
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
			return time.Duration(n) * time.Second
		}
	}
	return defaultValue
}
