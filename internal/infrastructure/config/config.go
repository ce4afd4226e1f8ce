package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Log         LogConfig
	DynamoDB    DynamoDBConfig
	Auth        AuthConfig
	CORS        CORSConfig
	Supplier    SupplierPortalConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level string
}

type DynamoDBConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	Endpoint         string
	AutoCreateTables bool
	LPUsTable        string
	SuppliersTable   string
	WorksTable       string
}

// AuthConfig selects how internal bearer tokens are verified. FirebaseProjectID wins
// over JWTSecret; Disabled skips verification entirely (local runs only).
type AuthConfig struct {
	FirebaseProjectID string
	JWTSecret         string
	Disabled          bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type SupplierPortalConfig struct {
	BaseURL            string
	RateLimitPerMinute int
	RateLimitBurst     int
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// Load reads the configuration from the environment. The .env file, when present,
// is loaded by the binary before this runs.
func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getEnvAsSeconds("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsSeconds("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:     getEnvAsSeconds("SERVER_IDLE_TIMEOUT", 60),
			ShutdownTimeout: getEnvAsSeconds("SERVER_SHUTDOWN_TIMEOUT", 10),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		DynamoDB: DynamoDBConfig{
			Region:           getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:         os.Getenv("DYNAMODB_ENDPOINT"),
			AutoCreateTables: getEnvAsBool("DYNAMODB_AUTO_CREATE_TABLES", false),
			LPUsTable:        getEnv("LPUS_TABLE", "lpus"),
			SuppliersTable:   getEnv("SUPPLIERS_TABLE", "suppliers"),
			WorksTable:       getEnv("WORKS_TABLE", "works"),
		},
		Auth: AuthConfig{
			FirebaseProjectID: os.Getenv("FIREBASE_PROJECT_ID"),
			JWTSecret:         os.Getenv("AUTH_JWT_SECRET"),
			Disabled:          getEnvAsBool("AUTH_DISABLED", false),
		},
		CORS: CORSConfig{
			AllowedOrigins: mergeOrigins(defaultCORSOrigins, os.Getenv("CORS_ORIGINS")),
		},
		Supplier: SupplierPortalConfig{
			BaseURL:            getEnv("SUPPLIER_PORTAL_BASE_URL", "http://localhost:5173"),
			RateLimitPerMinute: getEnvAsInt("SUPPLIER_RATE_LIMIT_PER_MINUTE", 30),
			RateLimitBurst:     getEnvAsInt("SUPPLIER_RATE_LIMIT_BURST", 10),
		},
	}

	return cfg, cfg.Validate()
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) Validate() error {
	if c.Auth.Disabled && c.IsProduction() {
		return fmt.Errorf("AUTH_DISABLED cannot be used in production")
	}
	if !c.Auth.Disabled && c.Auth.FirebaseProjectID == "" && c.Auth.JWTSecret == "" {
		return fmt.Errorf("either FIREBASE_PROJECT_ID or AUTH_JWT_SECRET must be set (or AUTH_DISABLED=true)")
	}
	if c.Supplier.RateLimitPerMinute <= 0 || c.Supplier.RateLimitBurst <= 0 {
		return fmt.Errorf("supplier rate limit values must be positive")
	}
	return nil
}

// mergeOrigins appends the comma separated extra origins to the defaults, skipping
// blanks and duplicates.
func mergeOrigins(defaults []string, extra string) []string {
	out := make([]string, 0, len(defaults))
	seen := make(map[string]struct{})
	add := func(o string) {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			return
		}
		if _, ok := seen[o]; ok {
			return
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	for _, o := range defaults {
		add(o)
	}
	for _, o := range strings.Split(extra, ",") {
		add(o)
	}
	return out
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsSeconds(key string, defaultValue int) time.Duration {
	return time.Duration(getEnvAsInt(key, defaultValue)) * time.Second
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
