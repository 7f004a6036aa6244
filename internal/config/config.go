package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config agrupa la configuración del servidor. Se lee de YAML y luego se aplican
// overrides por variables de entorno.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
	Calendar CalendarConfig `yaml:"calendar"`
	CORS     CORSConfig     `yaml:"cors"`
}

type ServerConfig struct {
	ListenAddr      string `yaml:"listen_addr"`
	ReadTimeout     string `yaml:"read_timeout"`
	WriteTimeout    string `yaml:"write_timeout"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type StorageConfig struct {
	Driver      string `yaml:"driver"` // memory, sqlite, postgres
	SQLitePath  string `yaml:"sqlite_path"`
	PostgresDSN string `yaml:"postgres_dsn"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
	App    string `yaml:"app"`
}

type CalendarConfig struct {
	// TimeZone define qué es "hoy". Vacío = zona local del proceso.
	TimeZone string `yaml:"time_zone"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:      ":8080",
			ReadTimeout:     "5s",
			WriteTimeout:    "10s",
			ShutdownTimeout: "5s",
		},
		Storage: StorageConfig{
			Driver:     DriverSQLite,
			SQLitePath: "data/petcare.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			App:    "pet-care-tracker",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load lee el YAML en path. Si el archivo no existe se usan los defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		c.Server.ListenAddr = ":" + v
	}
	if v := strings.TrimSpace(os.Getenv("LISTEN_ADDR")); v != "" {
		c.Server.ListenAddr = v
	}

	// DB_DSN sin STORAGE_DRIVER explícito implica postgres (igual que antes con DB_DSN).
	driver := strings.TrimSpace(os.Getenv("STORAGE_DRIVER"))
	if dsn := strings.TrimSpace(os.Getenv("DB_DSN")); dsn != "" {
		c.Storage.PostgresDSN = dsn
		if driver == "" {
			driver = DriverPostgres
		}
	}
	if driver != "" {
		c.Storage.Driver = strings.ToLower(driver)
	}
	if v := strings.TrimSpace(os.Getenv("SQLITE_PATH")); v != "" {
		c.Storage.SQLitePath = v
	}

	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FORMAT")); v != "" {
		c.Logging.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("APP_NAME")); v != "" {
		c.Logging.App = v
	}

	if v := strings.TrimSpace(os.Getenv("TZ_NAME")); v != "" {
		c.Calendar.TimeZone = v
	}

	if v := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); v != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORS.AllowedOrigins = origins
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if strings.TrimSpace(c.Storage.SQLitePath) == "" {
			return errors.New("storage.sqlite_path is required for sqlite driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.PostgresDSN) == "" {
			return errors.New("storage.postgres_dsn (or DB_DSN) is required for postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("calendar.time_zone: %w", err)
	}

	for name, v := range map[string]string{
		"server.read_timeout":     c.Server.ReadTimeout,
		"server.write_timeout":    c.Server.WriteTimeout,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Location resuelve la zona horaria usada para "hoy".
func (c CalendarConfig) Location() (*time.Location, error) {
	if strings.TrimSpace(c.TimeZone) == "" {
		return time.Local, nil
	}
	return time.LoadLocation(strings.TrimSpace(c.TimeZone))
}

func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return durationOr(s.ReadTimeout, 5*time.Second)
}

func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return durationOr(s.WriteTimeout, 10*time.Second)
}

func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return durationOr(s.ShutdownTimeout, 5*time.Second)
}

func durationOr(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
