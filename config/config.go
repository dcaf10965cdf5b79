package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Holistic Daily specifics
	App     AppConfig
	Store   StoreConfig
	Catalog CatalogConfig
	Support SupportConfig
	Session SessionConfig

	// Auth
	Auth AuthConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Chat delivery
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// AppConfig holds user-facing application settings.
type AppConfig struct {
	Timezone    string
	ShareOrigin string // e.g. https://holistic.example.com, used in share links
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverSupabase = "supabase"
	StoreDriverSQLite   = "sqlite"
)

// StoreConfig selects the task store backend.
type StoreConfig struct {
	Driver   string
	Postgres PostgresConfig
	Supabase SupabaseConfig
	SQLite   SQLiteConfig
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns a lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

type SupabaseConfig struct {
	URL    string
	APIKey string
}

type SQLiteConfig struct {
	Path string
}

// CatalogConfig points at the daily task content.
type CatalogConfig struct {
	Path              string // YAML file; empty means built-in content
	PlaceholderUserID string
}

const (
	SupportProviderKeyword = "keyword"
	SupportProviderLLM     = "llm"
)

type SupportConfig struct {
	Provider        string
	RateLimitPerMin int
}

type SessionConfig struct {
	TTL  time.Duration
	Size int
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = v.GetStringSlice("cors.allowed_origins")
	}

	// App
	cfg.App.Timezone = v.GetString("app.timezone")
	cfg.App.ShareOrigin = v.GetString("app.share_origin")

	// Store
	cfg.Store.Driver = v.GetString("store.driver")
	cfg.Store.Postgres.Host = v.GetString("store.postgres.host")
	cfg.Store.Postgres.Port = v.GetInt("store.postgres.port")
	cfg.Store.Postgres.User = v.GetString("store.postgres.user")
	cfg.Store.Postgres.Password = v.GetString("store.postgres.password")
	cfg.Store.Postgres.DBName = v.GetString("store.postgres.dbname")
	cfg.Store.Postgres.SSLMode = v.GetString("store.postgres.sslmode")
	cfg.Store.Supabase.URL = v.GetString("store.supabase.url")
	cfg.Store.Supabase.APIKey = expandEnvVar(v, v.GetString("store.supabase.api_key"))
	if supabaseURL := v.GetString("supabase_url"); supabaseURL != "" {
		cfg.Store.Supabase.URL = supabaseURL
	}
	if supabaseKey := v.GetString("supabase_api_key"); supabaseKey != "" {
		cfg.Store.Supabase.APIKey = supabaseKey
	}
	cfg.Store.SQLite.Path = v.GetString("store.sqlite.path")

	// Catalog
	cfg.Catalog.Path = v.GetString("catalog.path")
	cfg.Catalog.PlaceholderUserID = v.GetString("catalog.placeholder_user_id")

	// Support
	cfg.Support.Provider = v.GetString("support.provider")
	cfg.Support.RateLimitPerMin = v.GetInt("support.rate_limit_per_min")

	// Session
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.Size = v.GetInt("session.size")

	// Auth
	cfg.Auth.JWTSecret = expandEnvVar(v, v.GetString("auth.jwt_secret"))
	if secret := v.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	cfg.Auth.Issuer = v.GetString("auth.issuer")

	// Telegram
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		providersRaw := v.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverSupabase, StoreDriverSQLite:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	switch c.Support.Provider {
	case SupportProviderKeyword:
	case SupportProviderLLM:
		// The keyword table is never consulted in llm mode, so a provider is mandatory.
		if err := validateLLMConfig(&c.LLM); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown support provider %q", c.Support.Provider)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", "*")

	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("app.share_origin", "http://localhost:3000")

	v.SetDefault("store.driver", StoreDriverSQLite)
	v.SetDefault("store.postgres.port", 5432)
	v.SetDefault("store.postgres.sslmode", "disable")
	v.SetDefault("store.sqlite.path", "data/holistic_daily.db")

	v.SetDefault("catalog.placeholder_user_id", "user-123")

	v.SetDefault("support.provider", SupportProviderKeyword)
	v.SetDefault("support.rate_limit_per_min", 30)

	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.size", 10000)

	v.SetDefault("auth.issuer", "holistic-daily")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "30s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
