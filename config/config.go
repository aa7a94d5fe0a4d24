package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Mongo MongoConfig

	// Catalog specifics
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Catalog   CatalogConfig
}

type EnvironmentConfig struct {
	Name string `validate:"required"`
}

type HTTPServerConfig struct {
	Port            int    `validate:"gt=0,lt=65536"`
	Mode            string `validate:"oneof=debug release test"`
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string `validate:"oneof=debug info warn error dpanic panic fatal"`
	Mode         string `validate:"oneof=development production"`
	Encoding     string `validate:"oneof=console json"`
	ColorEnabled bool
}

type MongoConfig struct {
	URI            string `validate:"required"`
	Database       string `validate:"required"`
	ConnectTimeout time.Duration
}

// AuthConfig holds the pre-shared bearer token for mutating routes.
type AuthConfig struct {
	Token string `validate:"required"`
}

// RateLimitConfig limits mutating requests per client IP. Zero disables it.
type RateLimitConfig struct {
	RequestsPerMin int `validate:"gte=0"`
	Burst          int `validate:"gte=0"`
}

type CatalogConfig struct {
	StrictQuery bool
	Resources   []ResourceConfig `validate:"required,min=1,dive"`
}

// ResourceConfig describes one collection exposed over HTTP.
type ResourceConfig struct {
	Name               string `validate:"required"`
	Collection         string `validate:"required"`
	Path               string `validate:"required,startswith=/"`
	Label              string `validate:"required"`
	RequireAuth        bool
	CategoryProjection bool
	ErrorKey           string `validate:"oneof=message error"`
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
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Flat names used by existing deployments.
	_ = v.BindEnv("http_server.port", "HTTP_SERVER_PORT", "PORT")
	_ = v.BindEnv("mongo.uri", "MONGO_URI")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Mongo.URI = v.GetString("mongo.uri")
	cfg.Mongo.Database = v.GetString("mongo.database")
	cfg.Mongo.ConnectTimeout = v.GetDuration("mongo.connect_timeout")
	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("mongo.uri is not set - export MONGO_URI or add mongo.uri to config.yaml")
	}

	// Catalog
	cfg.Auth.Token = v.GetString("auth.token")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")
	cfg.Catalog.StrictQuery = v.GetBool("catalog.strict_query")

	if v.IsSet("catalog.resources") {
		if list, ok := v.Get("catalog.resources").([]interface{}); ok {
			for _, r := range list {
				m, ok := r.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.Catalog.Resources = append(cfg.Catalog.Resources, resourceFromMap(m))
			}
		}
	}
	if len(cfg.Catalog.Resources) == 0 {
		cfg.Catalog.Resources = defaultResources()
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := validateResources(cfg.Catalog.Resources); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 3000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("mongo.database", "shop")
	v.SetDefault("mongo.connect_timeout", "10s")
	v.SetDefault("auth.token", "practice-task-14")
	v.SetDefault("rate_limit.requests_per_min", 0)
	v.SetDefault("rate_limit.burst", 0)
	v.SetDefault("catalog.strict_query", false)
}

func defaultResources() []ResourceConfig {
	return []ResourceConfig{
		{
			Name:        "items",
			Collection:  "items",
			Path:        "/api/items",
			Label:       "Item",
			RequireAuth: true,
			ErrorKey:    "message",
		},
		{
			Name:               "products",
			Collection:         "products",
			Path:               "/api/products",
			Label:              "Product",
			CategoryProjection: true,
			ErrorKey:           "error",
		},
	}
}

// validateResources rejects duplicate names and paths.
func validateResources(resources []ResourceConfig) error {
	names := make(map[string]bool)
	paths := make(map[string]bool)
	for _, r := range resources {
		if names[r.Name] {
			return fmt.Errorf("resource %s: duplicate name", r.Name)
		}
		if paths[r.Path] {
			return fmt.Errorf("resource %s: duplicate path %s", r.Name, r.Path)
		}
		names[r.Name] = true
		paths[r.Path] = true
	}
	return nil
}

func resourceFromMap(m map[string]interface{}) ResourceConfig {
	r := ResourceConfig{
		Name:               getStringFromMap(m, "name"),
		Collection:         getStringFromMap(m, "collection"),
		Path:               getStringFromMap(m, "path"),
		Label:              getStringFromMap(m, "label"),
		RequireAuth:        getBoolFromMap(m, "require_auth"),
		CategoryProjection: getBoolFromMap(m, "category_projection"),
		ErrorKey:           getStringFromMap(m, "error_key"),
	}
	if r.Collection == "" {
		r.Collection = r.Name
	}
	if r.Path == "" && r.Name != "" {
		r.Path = "/api/" + r.Name
	}
	if r.ErrorKey == "" {
		r.ErrorKey = "message"
	}
	return r
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
