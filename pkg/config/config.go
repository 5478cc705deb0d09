package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	CatalogSourceCSV      = "csv"
	CatalogSourceYAML     = "yaml"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Brewing  BrewingConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type CatalogConfig struct {
	Source string
	Path   string
}

type BrewingConfig struct {
	DefaultRareMult float64
	NegativeScores  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	rareMult, err := strconv.ParseFloat(getEnv("BREW_DEFAULT_RARE_MULT", "1.0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid BREW_DEFAULT_RARE_MULT: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Potion Maker API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "potion_maker"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Catalog: CatalogConfig{
			Source: strings.ToLower(getEnv("CATALOG_SOURCE", CatalogSourceCSV)),
			Path:   getEnv("CATALOG_PATH", "data/ingredients.csv"),
		},
		Brewing: BrewingConfig{
			DefaultRareMult: rareMult,
			NegativeScores:  strings.ToLower(getEnv("BREW_NEGATIVE_SCORES", "clamp")),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Catalog.Source {
	case CatalogSourceCSV, CatalogSourceYAML:
		if c.Catalog.Path == "" {
			return errors.New("missing catalog path")
		}
	case CatalogSourcePostgres:
		if c.Database.Password == "" {
			return errors.New("missing database password")
		}
	default:
		return fmt.Errorf("unknown catalog source: %s", c.Catalog.Source)
	}

	if c.Brewing.NegativeScores != "clamp" && c.Brewing.NegativeScores != "reject" {
		return fmt.Errorf("unknown negative score policy: %s", c.Brewing.NegativeScores)
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
