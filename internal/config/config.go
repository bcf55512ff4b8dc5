package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port      string `yaml:"port" env:"PORT"`
		Mode      string `yaml:"mode" env:"SERVER_MODE"`
		StaticDir string `yaml:"static_dir" env:"STATIC_DIR"`
	} `yaml:"server"`

	Data struct {
		Dir               string `yaml:"dir" env:"DATA_DIR"`
		StudentsFile      string `yaml:"students_file"`
		FacultyFile       string `yaml:"faculty_file"`
		AnnouncementsFile string `yaml:"announcements_file"`
		MaterialsFile     string `yaml:"materials_file"`
	} `yaml:"data"`

	Admin struct {
		Key string `yaml:"key" env:"ADMIN_PASSWORD"`
	} `yaml:"admin"`

	JWT struct {
		Secret          string `yaml:"secret" env:"JWT_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"JWT_TOKEN_EXPIRATION"`
		Issuer          string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars alone are enough to run.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "3000"
	config.Server.Mode = "development"
	config.Server.StaticDir = "static"

	config.Data.Dir = "data"
	config.Data.StudentsFile = "students.json"
	config.Data.FacultyFile = "faculty.json"
	config.Data.AnnouncementsFile = "announcements.json"
	config.Data.MaterialsFile = "materials.json"

	config.Admin.Key = "aimL@gmU"

	config.JWT.Secret = "your_jwt_secret_key_here"
	config.JWT.TokenExpiration = "8h"
	config.JWT.Issuer = "portal.aimldept"

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if config.Admin.Key == "" {
		return fmt.Errorf("admin key is required")
	}
	if config.Data.Dir == "" {
		return fmt.Errorf("data directory is required")
	}
	if _, err := time.ParseDuration(config.JWT.TokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT token expiration format: %w", err)
	}
	return nil
}

// TokenExpiration returns the parsed session token lifetime.
func (c *Config) TokenExpiration() time.Duration {
	d, err := time.ParseDuration(c.JWT.TokenExpiration)
	if err != nil {
		return 8 * time.Hour
	}
	return d
}
