package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config *viper.Viper
}

func Load() (*Config, error) {

	env := os.Getenv(keyEnv)
	if len(env) == 0 {
		env = envLocal
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func (c *Config) GetPort() string {
	port := c.config.GetString("PORT")
	if len(port) == 0 {
		port = c.config.GetString("server.port")
	}

	return port
}

// GetDataPath returns the directory holding the JSON catalog files.
func (c *Config) GetDataPath() string {
	dataPath := c.config.GetString("DATA_PATH")
	if len(dataPath) == 0 {
		dataPath = c.config.GetString("catalog.data_path")
	}

	return dataPath
}

// GetCatalogBackend returns the catalog source backend, "file" or "bolt".
func (c *Config) GetCatalogBackend() string {
	backend := c.config.GetString("CATALOG_BACKEND")
	if len(backend) == 0 {
		backend = c.config.GetString("catalog.backend")
	}
	if len(backend) == 0 {
		backend = "file"
	}

	return backend
}

// GetCatalogDBPath returns the path of the bolt catalog database used by the
// "bolt" backend.
func (c *Config) GetCatalogDBPath() string {
	dbPath := c.config.GetString("CATALOG_DB_PATH")
	if len(dbPath) == 0 {
		dbPath = c.config.GetString("catalog.db_path")
	}

	return dbPath
}

// GetLocale returns the BCP 47 tag used for locale-aware name sorting.
func (c *Config) GetLocale() string {
	locale := c.config.GetString("LOCALE")
	if len(locale) == 0 {
		locale = c.config.GetString("search.locale")
	}
	if len(locale) == 0 {
		locale = "vi"
	}

	return locale
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
