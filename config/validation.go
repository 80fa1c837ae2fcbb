package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in one validation pass
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ve := range e {
		msgs = append(msgs, ve.Error())
	}
	return "configuration validation failed:\n" + strings.Join(msgs, "\n")
}

var validLogFormats = map[string]bool{"text": true, "json": true}

// ValidateConfig checks that the recipe service configuration is usable
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	if cfg.OpenAIAPIKey == "" {
		errs = append(errs, ValidationError{
			Field:   "OPENAI_API_KEY",
			Message: "OPENAI_API_KEY, OPENAI_API_KEY_FILE or the openai_api_key secret must be set",
		})
	}
	if err := validatePort(cfg.ServerPort); err != nil {
		errs = append(errs, ValidationError{Field: "PORT", Message: err.Error()})
	}
	if err := validateURL(cfg.OpenAIAPIURL); err != nil {
		errs = append(errs, ValidationError{Field: "OPENAI_API_URL", Message: err.Error()})
	}
	if cfg.OpenAIModel == "" {
		errs = append(errs, ValidationError{Field: "OPENAI_MODEL", Message: "must not be empty"})
	}
	if cfg.UpstreamTimeout < 0 {
		errs = append(errs, ValidationError{Field: "OPENAI_TIMEOUT", Message: "must not be negative"})
	}
	if !validLogFormats[cfg.LogFormat] {
		errs = append(errs, ValidationError{Field: "LOG_FORMAT", Message: "must be text or json"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateWebConfig checks that the web client configuration is usable
func ValidateWebConfig(cfg *WebConfig) error {
	var errs ValidationErrors

	if err := validatePort(cfg.Port); err != nil {
		errs = append(errs, ValidationError{Field: "WEB_PORT", Message: err.Error()})
	}
	if err := validateURL(cfg.APIURL); err != nil {
		errs = append(errs, ValidationError{Field: "MIXOHOLIC_API_URL", Message: err.Error()})
	}
	if !validLogFormats[cfg.LogFormat] {
		errs = append(errs, ValidationError{Field: "LOG_FORMAT", Message: "must be text or json"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %q", port)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme in %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
