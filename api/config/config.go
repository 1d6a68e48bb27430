package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Config holds the application configuration
type Config struct {
	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseServiceKey string
	// Optional: direct Postgres connection; when set, catalog reads bypass PostgREST
	DatabaseURL     string
	StripeSecretKey string
	// Edge function performing the authoritative pack change
	ChangePackFunction string
	DefaultCurrency    string
	CatalogCacheTTL    string
	// Base URL used to build default successUrl/cancelUrl for checkout returns
	PublicBaseURL string
	// Optional: base URL for running remote HTTP integration tests (e.g., https://api.example.com)
	IntegrationBaseURL string
	// Server ports
	HTTPPort string
	GRPCPort string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	currentDir, _ := os.Getwd()
	for currentDir != "/" {
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			err = godotenv.Load(envPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load .env file: %v", err)
			}
			break
		}
		currentDir = filepath.Dir(currentDir)
	}

	vars := []struct {
		name     string
		envVar   string
		display  string
		required bool
	}{
		{"SupabaseURL", "SUPABASE_URL", "Supabase URL", true},
		{"SupabaseAnonKey", "SUPABASE_ANON_KEY", "Supabase Anon Key", true},
		{"SupabaseServiceKey", "SUPABASE_SERVICE_KEY", "Supabase Service Key", true},
		{"DatabaseURL", "DATABASE_URL", "Database URL", false},
		{"StripeSecretKey", "STRIPE_SECRET_KEY", "Stripe Secret Key", false},
		{"ChangePackFunction", "CHANGE_PACK_FUNCTION", "Change Pack Function", false},
		{"DefaultCurrency", "DEFAULT_CURRENCY", "Default Currency", false},
		{"CatalogCacheTTL", "CATALOG_CACHE_TTL", "Catalog Cache TTL", false},
		{"PublicBaseURL", "PUBLIC_BASE_URL", "Public Base URL", false},
		{"IntegrationBaseURL", "INTEGRATION_BASE_URL", "Integration Base URL", false},
		{"HTTPPort", "PORT", "HTTP Port", false},
		{"GRPCPort", "GRPC_PORT", "gRPC Port", false},
	}

	for _, v := range vars {
		value := os.Getenv(v.envVar)
		if v.required && value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", v.display)
		}
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		configField.SetString(value)
	}

	// Defaults
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.GRPCPort == "" {
		config.GRPCPort = "50051"
	}
	if config.ChangePackFunction == "" {
		config.ChangePackFunction = DefaultChangePackFunction
	}
	if config.DefaultCurrency == "" {
		config.DefaultCurrency = DefaultCurrency
	}
	if config.CatalogCacheTTL == "" {
		config.CatalogCacheTTL = DefaultCatalogCacheTTL.String()
	}
	if _, err := time.ParseDuration(config.CatalogCacheTTL); err != nil {
		return nil, fmt.Errorf("invalid CATALOG_CACHE_TTL %q: %v", config.CatalogCacheTTL, err)
	}

	return config, nil
}

// CacheTTL returns the parsed catalog cache lifetime.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.CatalogCacheTTL)
	if err != nil {
		return DefaultCatalogCacheTTL
	}
	return d
}
