package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
}

type StorageConfig struct {
	// Backend is one of "memory", "sqlite", "mongo". Unreachable
	// database backends fall back to memory with a warning.
	Backend         string `yaml:"backend"`
	MongoURI        string `yaml:"mongo_uri"`
	MongoDatabase   string `yaml:"mongo_database"`
	MongoCollection string `yaml:"mongo_collection"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
}

func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:         "sqlite",
			MongoURI:        "mongodb://localhost:27017/",
			MongoDatabase:   "blogdb",
			MongoCollection: "blogs",
			TimeoutSeconds:  10,
		},
	}
}

func Dir() string {
	if dir := os.Getenv("BLOGAPP_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".blogapp")
}

func DBPath() string {
	return filepath.Join(Dir(), "blogapp.db")
}

func configPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(configPath())
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// Environment overrides win over the config file.
	if backend := os.Getenv("BLOGAPP_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if uri := os.Getenv("BLOGAPP_MONGO_URI"); uri != "" {
		cfg.Storage.MongoURI = uri
	}

	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0644)
}
