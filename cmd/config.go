package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"dealership/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort          string        `envconfig:"HTTP_PORT" default:"8080"`
	DBHost            string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort            string        `envconfig:"DB_PORT" default:"5432"`
	DBUser            string        `envconfig:"DB_USER" required:"true"`
	DBPassword        string        `envconfig:"DB_PASSWORD"`
	DBName            string        `envconfig:"DB_NAME" required:"true"`
	DBSslMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
	ReconcileSchedule string        `envconfig:"RECONCILE_SCHEDULE" default:"0 */5 * * * *"`
	TxMaxRetries      uint64        `envconfig:"TX_MAX_RETRIES" default:"3"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set win.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// DSN is the key/value connection string used by gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// DatabaseURL is the postgres:// form required by the migrator.
func (c Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

func (c Config) RetryPolicy() commands.RetryPolicy {
	p := commands.DefaultRetryPolicy()
	p.MaxRetries = c.TxMaxRetries
	return p
}
