package db

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type PostgresConfig struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"name" env:"DB_NAME" env-default:"marketplace"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

// DSN renders the config as a lib/pq connection URL.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadPostgresConfig() (PostgresConfig, error) {
	var cfg PostgresConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return PostgresConfig{}, fmt.Errorf("read postgres env: %w", err)
	}
	return cfg, nil
}
