package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML configuration file.
// The API key is never read from it; use the environment or a secret.
type fileConfig struct {
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	} `yaml:"server"`
	OpenAI struct {
		APIURL  string        `yaml:"api_url"`
		Model   string        `yaml:"model"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"openai"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

func readConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// apply copies every value set in the file onto cfg
func (fc *fileConfig) apply(cfg *Config) {
	if fc.Server.Host != "" {
		cfg.ServerHost = fc.Server.Host
	}
	if fc.Server.Port != "" {
		cfg.ServerPort = fc.Server.Port
	}
	if fc.OpenAI.APIURL != "" {
		cfg.OpenAIAPIURL = fc.OpenAI.APIURL
	}
	if fc.OpenAI.Model != "" {
		cfg.OpenAIModel = fc.OpenAI.Model
	}
	if fc.OpenAI.Timeout != 0 {
		cfg.UpstreamTimeout = fc.OpenAI.Timeout
	}
	if fc.Log.Level != "" {
		cfg.LogLevel = fc.Log.Level
	}
	if fc.Log.Format != "" {
		cfg.LogFormat = fc.Log.Format
	}
}
