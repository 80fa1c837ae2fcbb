package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultServerPort      = "3001"
	defaultWebPort         = "5173"
	defaultOpenAIAPIURL    = "https://api.openai.com/v1/chat/completions"
	defaultOpenAIModel     = "gpt-4o-mini"
	defaultUpstreamTimeout = 60 * time.Second
	defaultLogLevel        = "info"
)

// DefaultAPIURL is the Recipe Service address baked into the web client.
// Override it at build time with
// -ldflags "-X github.com/pageza/mixoholic/config.DefaultAPIURL=https://...".
var DefaultAPIURL = "http://localhost:3001"

// Config holds all configuration for the recipe service
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Completion API configuration
	OpenAIAPIKey    string
	OpenAIAPIURL    string
	OpenAIModel     string
	UpstreamTimeout time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// WebConfig holds configuration for the web client
type WebConfig struct {
	Port      string
	Host      string
	APIURL    string
	LogLevel  string
	LogFormat string
}

// Addr returns the listen address of the recipe service
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// Addr returns the listen address of the web client
func (c *WebConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Override adjusts a loaded Config before it is validated
type Override func(*Config)

// WebOverride adjusts a loaded WebConfig before it is validated
type WebOverride func(*WebConfig)

// LoadConfig creates a new Config from defaults, the optional config file,
// environment variables, secrets and overrides, in that order of precedence.
func LoadConfig(overrides ...Override) (*Config, error) {
	cfg := &Config{
		ServerPort:      defaultServerPort,
		OpenAIAPIURL:    defaultOpenAIAPIURL,
		OpenAIModel:     defaultOpenAIModel,
		UpstreamTimeout: defaultUpstreamTimeout,
		LogLevel:        defaultLogLevel,
		LogFormat:       defaultLogFormat(),
	}

	if path := os.Getenv("MIXOHOLIC_CONFIG"); path != "" {
		fc, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}
		fc.apply(cfg)
	}

	if err := loadEnvConfig(cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	for _, override := range overrides {
		override(cfg)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadWebConfig creates a new WebConfig for the web client
func LoadWebConfig(overrides ...WebOverride) (*WebConfig, error) {
	cfg := &WebConfig{
		Port:      getEnv("WEB_PORT", defaultWebPort),
		Host:      os.Getenv("WEB_HOST"),
		APIURL:    strings.TrimRight(getEnv("MIXOHOLIC_API_URL", DefaultAPIURL), "/"),
		LogLevel:  getEnv("LOG_LEVEL", defaultLogLevel),
		LogFormat: getEnv("LOG_FORMAT", defaultLogFormat()),
	}

	for _, override := range overrides {
		override(cfg)
	}

	if err := ValidateWebConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvConfig overlays environment variables onto cfg
func loadEnvConfig(cfg *Config) error {
	cfg.ServerPort = getEnv("PORT", cfg.ServerPort)
	cfg.ServerHost = getEnv("SERVER_HOST", cfg.ServerHost)
	cfg.OpenAIAPIURL = getEnv("OPENAI_API_URL", cfg.OpenAIAPIURL)
	cfg.OpenAIModel = getEnv("OPENAI_MODEL", cfg.OpenAIModel)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)

	if raw := os.Getenv("OPENAI_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid OPENAI_TIMEOUT %q: %w", raw, err)
		}
		cfg.UpstreamTimeout = timeout
	}

	key, err := loadAPIKey()
	if err != nil {
		return err
	}
	if key != "" {
		cfg.OpenAIAPIKey = key
	}
	return nil
}

// loadAPIKey reads the completion API key from OPENAI_API_KEY,
// OPENAI_API_KEY_FILE or the openai_api_key Docker secret.
func loadAPIKey() (string, error) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key, nil
	}

	if keyFile := os.Getenv("OPENAI_API_KEY_FILE"); keyFile != "" {
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read API key file: %w", err)
		}
		key := strings.TrimSpace(string(data))
		if key == "" {
			return "", fmt.Errorf("API key file %s is empty", keyFile)
		}
		return key, nil
	}

	return readSecret("openai_api_key"), nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := getEnv("SECRETS_DIR", "/run/secrets")
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func defaultLogFormat() string {
	if IsProduction() {
		return "json"
	}
	return "text"
}
