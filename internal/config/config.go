package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Storage struct {
		// Driver: file (default) | mysql | postgres
		Driver string `yaml:"driver"`
		File   struct {
			Path string `yaml:"path"`
		} `yaml:"file"`
		Database struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			User     string `yaml:"user"`
			Password string `yaml:"password"`
			Name     string `yaml:"name"`
			SSLMode  string `yaml:"sslMode"`
		} `yaml:"database"`
	} `yaml:"storage"`

	Images struct {
		// Driver: disk (default) | minio
		Driver string `yaml:"driver"`
		Dir    string `yaml:"dir"`
		Minio  struct {
			Endpoint   string `yaml:"endpoint"`
			AccessKey  string `yaml:"accessKey"`
			SecretKey  string `yaml:"secretKey"`
			BucketName string `yaml:"bucketName"`
			Region     string `yaml:"region"`
			UseSSL     bool   `yaml:"useSSL"`
		} `yaml:"minio"`
	} `yaml:"images"`

	AI struct {
		Model           string `yaml:"model"`
		ImageModel      string `yaml:"imageModel"`
		TranscribeModel string `yaml:"transcribeModel"`
	} `yaml:"ai"`
}

// Load baca file config.yaml; file hilang berarti pakai default semua
func Load(path string) (*Config, error) {
	// .env kalau ada, untuk API key
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "file"
	}
	if cfg.Storage.File.Path == "" {
		cfg.Storage.File.Path = "data/ideas.json"
	}
	if cfg.Images.Driver == "" {
		cfg.Images.Driver = "disk"
	}
	if cfg.Images.Dir == "" {
		cfg.Images.Dir = "data/images"
	}
	return &cfg, nil
}

// APIKey for the AI provider comes from the environment, never from YAML.
func (c *Config) APIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

// Helper untuk build DSN MySQL
func (c *Config) MySQLDSN() string {
	d := c.Storage.Database
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		d.User, d.Password, d.Host, d.Port, d.Name,
	)
}

// Helper untuk build DSN Postgres
func (c *Config) PostgresDSN() string {
	d := c.Storage.Database
	ssl := d.SSLMode
	if ssl == "" {
		ssl = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, ssl,
	)
}
