package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Customer support chatbot specifics
	Telegram  TelegramConfig
	LLM       LLMConfig
	Analytics AnalyticsConfig
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

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

// LLMConfig selects and configures the generative provider. Provider may be
// empty, in which case the service runs with the local pipeline only.
type LLMConfig struct {
	Provider          string
	APIKey            string
	Model             string
	ProjectID         string
	CredentialsFile   string
	RequestsPerMinute int
}

type AnalyticsConfig struct {
	WindowCapacity int
	ExportDir      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM provider
	cfg.LLM.Provider = strings.ToLower(viper.GetString("llm.provider"))
	cfg.LLM.APIKey = expandEnvVar(viper.GetString("llm.api_key"))
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.ProjectID = viper.GetString("llm.project_id")
	cfg.LLM.CredentialsFile = viper.GetString("llm.credentials_file")
	cfg.LLM.RequestsPerMinute = viper.GetInt("llm.requests_per_minute")

	// Flat env aliases so deployments can avoid nested keys
	if apiKey := viper.GetString("openai_api_key"); apiKey != "" && cfg.LLM.Provider == "openai" {
		cfg.LLM.APIKey = apiKey
	}
	if apiKey := viper.GetString("gemini_api_key"); apiKey != "" && cfg.LLM.Provider == "gemini" {
		cfg.LLM.APIKey = apiKey
	}
	if creds := viper.GetString("dialogflow_credentials"); creds != "" {
		cfg.LLM.CredentialsFile = creds
	}

	// Analytics
	cfg.Analytics.WindowCapacity = viper.GetInt("analytics.window_capacity")
	cfg.Analytics.ExportDir = viper.GetString("analytics.export_dir")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("llm.requests_per_minute", 30)
	viper.SetDefault("analytics.window_capacity", 100)
	viper.SetDefault("analytics.export_dir", ".")
}

func validate(cfg *Config) error {
	switch cfg.LLM.Provider {
	case "", "openai", "gemini", "dialogflow":
	default:
		return fmt.Errorf("unknown llm provider %q", cfg.LLM.Provider)
	}

	if cfg.Analytics.WindowCapacity <= 0 {
		return fmt.Errorf("analytics.window_capacity must be positive, got %d", cfg.Analytics.WindowCapacity)
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
