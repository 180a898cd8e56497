// Package config loads the service configuration: defaults, an optional
// YAML file, then BLOCKHINT_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all service configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Addr           string        `yaml:"addr" validate:"required,listenaddr"`
	GinMode        string        `yaml:"gin_mode" validate:"oneof=debug release test"`
	AllowedOrigins []string      `yaml:"allowed_origins" validate:"min=1,dive,required"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes" validate:"gt=0"`
	ReadTimeout    time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout   time.Duration `yaml:"write_timeout" validate:"gt=0"`
	ShutdownGrace  time.Duration `yaml:"shutdown_grace" validate:"gte=0"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// TelemetryConfig configures tracing and metrics.
type TelemetryConfig struct {
	// TraceExporter selects the span exporter. Values: "none", "stdout".
	TraceExporter  string `yaml:"trace_exporter" validate:"oneof=none stdout"`
	MetricsEnabled bool   `yaml:"metrics_enabled"`
	ServiceName    string `yaml:"service_name" validate:"required"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:           ":8000",
			GinMode:        "release",
			AllowedOrigins: []string{"*"},
			MaxBodyBytes:   1 << 20,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			ShutdownGrace:  5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: TelemetryConfig{
			TraceExporter:  "none",
			MetricsEnabled: true,
			ServiceName:    "blockhint",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg from BLOCKHINT_* variables. PORT is honored for
// platforms that only inject a port number.
func applyEnv(cfg *Config) error {
	if p := os.Getenv("PORT"); p != "" {
		cfg.Server.Addr = ":" + p
	}
	if a := os.Getenv("BLOCKHINT_ADDR"); a != "" {
		cfg.Server.Addr = a
	}
	if m := os.Getenv("BLOCKHINT_GIN_MODE"); m != "" {
		cfg.Server.GinMode = m
	}
	if o := os.Getenv("BLOCKHINT_ALLOWED_ORIGINS"); o != "" {
		cfg.Server.AllowedOrigins = splitList(o)
	}
	if l := os.Getenv("BLOCKHINT_LOG_LEVEL"); l != "" {
		cfg.Log.Level = strings.ToLower(l)
	}
	if f := os.Getenv("BLOCKHINT_LOG_FORMAT"); f != "" {
		cfg.Log.Format = strings.ToLower(f)
	}
	if e := os.Getenv("BLOCKHINT_TRACE_EXPORTER"); e != "" {
		cfg.Telemetry.TraceExporter = e
	}
	if v := os.Getenv("BLOCKHINT_METRICS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("BLOCKHINT_METRICS: %w", err)
		}
		cfg.Telemetry.MetricsEnabled = b
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// configValidate is the validator instance for configuration structs.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("listenaddr", validateListenAddr)
}

// validateListenAddr accepts host:port pairs where the host may be empty.
func validateListenAddr(fl validator.FieldLevel) bool {
	_, port, err := net.SplitHostPort(fl.Field().String())
	if err != nil {
		return false
	}
	n, err := strconv.Atoi(port)
	return err == nil && n >= 0 && n <= 65535
}

// Validate checks every section against its constraints.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s fails %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
