package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config configuração completa do serviço, carregada de config.toml.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Notifier   NotifierConfig   `toml:"notifier"`
	Reconciler ReconcilerConfig `toml:"reconciler"`
}

// ServerConfig parâmetros do servidor HTTP (valores em segundos).
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig conexão com o PostgreSQL.
// Usuário e senha podem ser sobrescritos pelas variáveis de ambiente
// DB_USER e DB_PASSWORD (carregadas de .env pelo main).
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN monta a string de conexão do lib/pq.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig destino e nível do log. File vazio escreve em stdout.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig exposição de métricas Prometheus.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// NotifierConfig webhook de notificações (timeout em segundos).
type NotifierConfig struct {
	Enabled    bool   `toml:"enabled"`
	WebhookURL string `toml:"webhook_url"`
	Timeout    int    `toml:"timeout"`
	QueueSize  int    `toml:"queue_size"`
}

// ReconcilerConfig varredura periódica de consistência propostas/reservas.
type ReconcilerConfig struct {
	Enabled         bool `toml:"enabled"`
	IntervalMinutes int  `toml:"interval_minutes"`
}

// Load lê e valida a configuração do arquivo TOML informado.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "api-inmidia"
	}
	if c.Notifier.Timeout == 0 {
		c.Notifier.Timeout = 5
	}
	if c.Notifier.QueueSize == 0 {
		c.Notifier.QueueSize = 256
	}
	if c.Reconciler.IntervalMinutes == 0 {
		c.Reconciler.IntervalMinutes = 30
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DB_USER"); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.Database.Host = v
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return errors.New("config: database host and dbname are required")
	}
	if c.Notifier.Enabled && c.Notifier.WebhookURL == "" {
		return errors.New("config: notifier enabled but webhook_url is empty")
	}
	if c.Reconciler.IntervalMinutes < 1 {
		return errors.New("config: reconciler interval_minutes must be positive")
	}
	return nil
}
