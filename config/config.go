package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	OpenAI    OpenAIConfig
	Catalog   CatalogConfig
	Chat      ChatConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OpenAIConfig holds generation service configuration
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"` // empty = api.openai.com
}

// CatalogConfig holds storefront search API configuration
type CatalogConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	SiteBaseURL string        `mapstructure:"site_base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// ChatConfig holds conversation tuning knobs
type ChatConfig struct {
	MaxRecommendations int           `mapstructure:"max_recommendations"`
	MaxCandidates      int           `mapstructure:"max_candidates"`
	PopularCacheTTL    time.Duration `mapstructure:"popular_cache_ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP   int `mapstructure:"per_ip"`  // requests per minute per client IP
	Catalog int `mapstructure:"catalog"` // storefront API requests per hour
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/giftgenie/")

	// Environment variable settings
	v.SetEnvPrefix("GIFTGENIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// OpenAI defaults. The empty api_key/base_url defaults register the keys
	// so AutomaticEnv can fill them during Unmarshal.
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.base_url", "")

	// Catalog defaults
	v.SetDefault("catalog.base_url", "https://www.ediblearrangements.com/api/search/")
	v.SetDefault("catalog.site_base_url", "https://www.ediblearrangements.com")
	v.SetDefault("catalog.timeout", "10s")

	// Chat defaults
	v.SetDefault("chat.max_recommendations", 4)
	v.SetDefault("chat.max_candidates", 15)
	v.SetDefault("chat.popular_cache_ttl", "1h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)
	v.SetDefault("ratelimit.catalog", 3600)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.OpenAI.APIKey == "" {
		return fmt.Errorf("OpenAI API key is required (set GIFTGENIE_OPENAI_API_KEY)")
	}

	if config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required")
	}

	if config.Chat.MaxRecommendations <= 0 {
		return fmt.Errorf("chat.max_recommendations must be positive, got: %d", config.Chat.MaxRecommendations)
	}

	if config.Chat.MaxCandidates < config.Chat.MaxRecommendations {
		return fmt.Errorf("chat.max_candidates (%d) must be at least chat.max_recommendations (%d)",
			config.Chat.MaxCandidates, config.Chat.MaxRecommendations)
	}

	return nil
}
