package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
	EnvTest        = "test"
)

var DefaultAllowedOrigins = []string{"http://localhost:3000"}

type Config struct {
	App struct {
		Environment string `mapstructure:"environment"`
		Debug       bool   `mapstructure:"debug"`
		Port        string `mapstructure:"port"`
		Version     string `mapstructure:"version"`
	} `mapstructure:"app"`
	DB struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"db"`
	Redis struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Auth struct {
		SecretKey                string `mapstructure:"secret_key"`
		Algorithm                string `mapstructure:"algorithm"`
		AccessTokenExpireMinutes int    `mapstructure:"access_token_expire_minutes"`
	} `mapstructure:"auth"`
	AI struct {
		OpenAIAPIKey      string `mapstructure:"openai_api_key"`
		HuggingFaceAPIKey string `mapstructure:"huggingface_api_key"`
		QdrantURL         string `mapstructure:"qdrant_url"`
	} `mapstructure:"ai"`
	External struct {
		GitHubAPIToken string `mapstructure:"github_api_token"`
		LinkedInAPIKey string `mapstructure:"linkedin_api_key"`
	} `mapstructure:"external"`
	Monitoring struct {
		SentryDSN         string `mapstructure:"sentry_dsn"`
		SentryEnvironment string `mapstructure:"sentry_environment"`
		OTLPEndpoint      string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"monitoring"`
	Features struct {
		EnableAI        bool `mapstructure:"enable_ai"`
		EnableAnalytics bool `mapstructure:"enable_analytics"`
		EnableBlog      bool `mapstructure:"enable_blog"`
		SeedOnStartup   bool `mapstructure:"seed_on_startup"`
	} `mapstructure:"features"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"-"`
	} `mapstructure:"cors"`
	RateLimit struct {
		PerMinute int `mapstructure:"per_minute"`
		PerHour   int `mapstructure:"per_hour"`
	} `mapstructure:"rate_limit"`
}

func (c Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

func (c Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

func (c Config) IsTest() bool {
	return c.App.Environment == EnvTest
}

// Validate rejects settings the process must not start with.
func (c Config) Validate() error {
	var problems []string
	if c.IsProduction() {
		if c.Auth.SecretKey == "" {
			problems = append(problems, "SECRET_KEY is required in production")
		}
		if c.DB.URL == "" {
			problems = append(problems, "DATABASE_URL is required in production")
		}
	}
	if c.RateLimit.PerMinute <= 0 || c.RateLimit.PerHour <= 0 {
		problems = append(problems, "rate limits must be positive")
	}
	if c.App.Port == "" {
		problems = append(problems, "PORT must not be empty")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

var envBindings = map[string]string{
	"app.environment":                  "ENVIRONMENT",
	"app.debug":                        "DEBUG",
	"app.port":                         "PORT",
	"app.version":                      "APP_VERSION",
	"db.url":                           "DATABASE_URL",
	"redis.url":                        "REDIS_URL",
	"kafka.brokers":                    "KAFKA_BROKERS",
	"auth.secret_key":                  "SECRET_KEY",
	"auth.algorithm":                   "ALGORITHM",
	"auth.access_token_expire_minutes": "ACCESS_TOKEN_EXPIRE_MINUTES",
	"ai.openai_api_key":                "OPENAI_API_KEY",
	"ai.huggingface_api_key":           "HUGGINGFACE_API_KEY",
	"ai.qdrant_url":                    "QDRANT_URL",
	"external.github_api_token":        "GITHUB_API_TOKEN",
	"external.linkedin_api_key":        "LINKEDIN_API_KEY",
	"monitoring.sentry_dsn":            "SENTRY_DSN",
	"monitoring.sentry_environment":    "SENTRY_ENVIRONMENT",
	"monitoring.otlp_endpoint":         "OTEL_EXPORTER_OTLP_ENDPOINT",
	"features.enable_ai":               "ENABLE_AI_FEATURES",
	"features.enable_analytics":        "ENABLE_ANALYTICS",
	"features.enable_blog":             "ENABLE_BLOG",
	"features.seed_on_startup":         "SEED_ON_STARTUP",
	"cors.allowed_origins":             "ALLOWED_ORIGINS",
	"rate_limit.per_minute":            "RATE_LIMIT_PER_MINUTE",
	"rate_limit.per_hour":              "RATE_LIMIT_PER_HOUR",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.environment", EnvDevelopment)
	v.SetDefault("app.debug", true)
	v.SetDefault("app.port", "8000")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("db.url", "")
	v.SetDefault("redis.url", "redis://localhost:6379")
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("auth.secret_key", "")
	v.SetDefault("auth.algorithm", "HS256")
	v.SetDefault("auth.access_token_expire_minutes", 30)
	v.SetDefault("ai.openai_api_key", "")
	v.SetDefault("ai.huggingface_api_key", "")
	v.SetDefault("ai.qdrant_url", "http://localhost:6333")
	v.SetDefault("external.github_api_token", "")
	v.SetDefault("external.linkedin_api_key", "")
	v.SetDefault("monitoring.sentry_dsn", "")
	v.SetDefault("monitoring.sentry_environment", EnvDevelopment)
	v.SetDefault("monitoring.otlp_endpoint", "")
	v.SetDefault("features.enable_ai", true)
	v.SetDefault("features.enable_analytics", false)
	v.SetDefault("features.enable_blog", true)
	v.SetDefault("features.seed_on_startup", true)
	v.SetDefault("cors.allowed_origins", DefaultAllowedOrigins)
	v.SetDefault("rate_limit.per_minute", 60)
	v.SetDefault("rate_limit.per_hour", 1000)
}

// LoadConfig reads .env, an optional config.yaml from the given paths (or the
// working directory), then the process environment. The returned value is
// meant to be built once and passed to every component.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if err = godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config.yaml: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err = v.BindEnv(key, env); err != nil {
			return cfg, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	cfg.CORS.AllowedOrigins = ParseAllowedOrigins(v.Get("cors.allowed_origins"))

	return cfg, nil
}

// ParseAllowedOrigins normalises the CORS allow-list. It accepts a JSON array
// string, a comma-separated string, a single origin or an already decoded
// list. Empty input yields DefaultAllowedOrigins.
func ParseAllowedOrigins(raw any) []string {
	var out []string

	switch v := raw.(type) {
	case nil:
	case string:
		out = parseOriginString(v)
	case []string:
		out = compact(v)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, fmt.Sprint(item))
		}
		out = compact(items)
	default:
		out = parseOriginString(fmt.Sprint(v))
	}

	if len(out) == 0 {
		return append([]string(nil), DefaultAllowedOrigins...)
	}
	return out
}

func parseOriginString(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(s), &decoded); err == nil {
		if list, ok := decoded.([]any); ok {
			items := make([]string, 0, len(list))
			for _, item := range list {
				items = append(items, fmt.Sprint(item))
			}
			return compact(items)
		}
		return []string{s}
	}

	if strings.Contains(s, ",") {
		return compact(strings.Split(s, ","))
	}
	return []string{s}
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
