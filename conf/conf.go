package conf

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/looplj/objecthub/internal/authz"
	"github.com/looplj/objecthub/internal/fixtures"
	"github.com/looplj/objecthub/internal/log"
	"github.com/looplj/objecthub/internal/metrics"
	"github.com/looplj/objecthub/internal/pkg/xcache"
	"github.com/looplj/objecthub/internal/server"
	"github.com/looplj/objecthub/internal/store"
)

// EnvPrefix prefixes every environment override, e.g. OBJECTHUB_SERVER_PORT.
const EnvPrefix = "OBJECTHUB"

// ConfigFileEnv points to an explicit config file.
const ConfigFileEnv = "OBJECTHUB_CONFIG"

type Config struct {
	fx.Out `yaml:"-" json:"-"`

	APIServer server.Config   `conf:"server" yaml:"server" json:"server"`
	DB        store.Config    `conf:"db" yaml:"db" json:"db"`
	Log       log.Config      `conf:"log" yaml:"log" json:"log"`
	Cache     xcache.Config   `conf:"cache" yaml:"cache" json:"cache"`
	Auth      authz.Config    `conf:"auth" yaml:"auth" json:"auth"`
	Metrics   metrics.Config  `conf:"metrics" yaml:"metrics" json:"metrics"`
	Fixtures  fixtures.Config `conf:"fixtures" yaml:"fixtures" json:"fixtures"`
}

// Load reads config.yml from the working directory, ./conf or /etc/objecthub,
// then applies OBJECTHUB_ environment overrides. A missing file is not an error.
func Load() (Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	if file := os.Getenv(ConfigFileEnv); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
		v.AddConfigPath("./conf")
		v.AddConfigPath("/etc/objecthub")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config

	err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "conf"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.name", "objecthub")
	v.SetDefault("server.base_path", "")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.debug", false)
	v.SetDefault("server.trace.trace_header", "OH-Trace-Id")
	v.SetDefault("server.trace.request_header", "OH-Request-Id")
	v.SetDefault("server.cors.enabled", false)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("server.cors.allowed_methods", []string{"GET", "OPTIONS"})
	v.SetDefault("server.cors.allowed_headers", []string{"Authorization", "Content-Type", "X-Object-Preview"})
	v.SetDefault("server.cors.exposed_headers", []string{"OH-Trace-Id", "OH-Request-Id"})
	v.SetDefault("server.cors.allow_credentials", false)
	v.SetDefault("server.cors.max_age", 12*time.Hour)

	v.SetDefault("db.dialect", "sqlite3")
	v.SetDefault("db.dsn", "file:objecthub.db?cache=shared")
	v.SetDefault("db.debug", false)
	v.SetDefault("db.max_open_conns", 0)
	v.SetDefault("db.max_idle_conns", 0)

	v.SetDefault("log.name", "objecthub")
	v.SetDefault("log.debug", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "json")
	v.SetDefault("log.output", "stdio")
	v.SetDefault("log.file.path", "logs/objecthub.log")
	v.SetDefault("log.file.max_size", 100)
	v.SetDefault("log.file.max_age", 30)
	v.SetDefault("log.file.max_backups", 10)
	v.SetDefault("log.file.compress", true)

	v.SetDefault("cache.mode", xcache.ModeMemory)
	v.SetDefault("cache.memory.expiration", 5*time.Minute)
	v.SetDefault("cache.memory.cleanup_interval", 10*time.Minute)
	v.SetDefault("cache.redis.addr", "")
	v.SetDefault("cache.redis.url", "")
	v.SetDefault("cache.redis.username", "")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.tls", false)
	v.SetDefault("cache.redis.tls_insecure_skip_verify", false)
	v.SetDefault("cache.redis.expiration", 30*time.Minute)

	v.SetDefault("auth.secret_key", "")
	v.SetDefault("auth.issuer", "objecthub")
	v.SetDefault("auth.token_ttl", 7*24*time.Hour)
	v.SetDefault("auth.admin_path_prefix", "/admin/")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.exporter", metrics.ExporterStdout)
	v.SetDefault("metrics.endpoint", "")
	v.SetDefault("metrics.insecure", false)
	v.SetDefault("metrics.interval", time.Minute)

	v.SetDefault("fixtures.file", "")
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.APIServer.Port <= 0 || c.APIServer.Port > 65535 {
		result = multierror.Append(result, errors.New("server.port must be between 1 and 65535"))
	}

	if c.DB.DSN == "" {
		result = multierror.Append(result, errors.New("db.dsn cannot be empty"))
	}

	if c.Log.Name == "" {
		result = multierror.Append(result, errors.New("log.name cannot be empty"))
	}

	if c.APIServer.CORS.Enabled && len(c.APIServer.CORS.AllowedOrigins) == 0 {
		result = multierror.Append(result, errors.New("server.cors.allowed_origins cannot be empty when CORS is enabled"))
	}

	switch c.Cache.Mode {
	case "", xcache.ModeMemory:
	case xcache.ModeRedis, xcache.ModeTwoLevel:
		if c.Cache.Redis.Addr == "" && c.Cache.Redis.URL == "" {
			result = multierror.Append(result, fmt.Errorf("cache.redis.addr or cache.redis.url is required for cache mode %s", c.Cache.Mode))
		}
	default:
		result = multierror.Append(result, fmt.Errorf("cache.mode %q is not supported", c.Cache.Mode))
	}

	if c.Metrics.Enabled && c.Metrics.Exporter != metrics.ExporterStdout && c.Metrics.Endpoint == "" {
		result = multierror.Append(result, errors.New("metrics.endpoint cannot be empty for otlp exporters"))
	}

	if c.Auth.SecretKey != "" && len(c.Auth.SecretKey) < 16 {
		result = multierror.Append(result, errors.New("auth.secret_key must be at least 16 characters"))
	}

	return result.ErrorOrNil()
}
