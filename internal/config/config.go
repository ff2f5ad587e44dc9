package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/Cheertaboi/marketplace-schema/pkg/db"
)

type Config struct {
	DB   DB   `yaml:"db"`
	HTTP HTTP `yaml:"http"`
	Log  Log  `yaml:"log"`
}

type DB struct {
	// Driver is "postgres" or "sqlite3".
	Driver     string            `yaml:"driver" env:"DB_DRIVER" env-default:"postgres"`
	SQLitePath string            `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"marketplace.db"`
	Postgres   db.PostgresConfig `yaml:"postgres"`
}

type HTTP struct {
	Addr         string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Load reads the YAML file at path, if any, and then the environment.
// Environment variables override file values.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config env: %w", err)
	}

	switch cfg.DB.Driver {
	case "postgres", "sqlite3":
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DB.Driver)
	}
	return &cfg, nil
}
