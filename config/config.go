package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Chain      ChainConfig      `mapstructure:"chain"`
	Wallet     WalletConfig     `mapstructure:"wallet"`
	Preference PreferenceConfig `mapstructure:"preference"`
	Monitor    MonitorConfig    `mapstructure:"monitor"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// DatabaseConfig configures the optional audit journal.
type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type ChainConfig struct {
	NodeURL        string        `mapstructure:"node_url"`
	ModuleAddress  string        `mapstructure:"module_address"`
	ConfirmTimeout time.Duration `mapstructure:"confirm_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type WalletConfig struct {
	BridgeURL      string        `mapstructure:"bridge_url"`
	Name           string        `mapstructure:"name"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	WatchInterval  time.Duration `mapstructure:"watch_interval"`
}

type PreferenceConfig struct {
	Backend string `mapstructure:"backend"` // redis, memory
	Prefix  string `mapstructure:"prefix"`
}

type MonitorConfig struct {
	LivenessInterval time.Duration `mapstructure:"liveness_interval"`
	SessionInterval  time.Duration `mapstructure:"session_interval"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TRD_ (Token Recovery DApp).
// Nested keys use underscore: TRD_CHAIN_NODE_URL, TRD_WALLET_BRIDGE_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "token_recovery")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 5)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("chain.node_url", "https://fullnode.devnet.aptoslabs.com")
	v.SetDefault("chain.module_address", "")
	v.SetDefault("chain.confirm_timeout", "30s")
	v.SetDefault("chain.request_timeout", "10s")
	v.SetDefault("wallet.bridge_url", "http://127.0.0.1:8787")
	v.SetDefault("wallet.name", "Petra")
	v.SetDefault("wallet.request_timeout", "15s")
	v.SetDefault("wallet.watch_interval", "2s")
	v.SetDefault("preference.backend", "redis")
	v.SetDefault("preference.prefix", "aptos_dapp_")
	v.SetDefault("monitor.liveness_interval", "60s")
	v.SetDefault("monitor.session_interval", "30s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TRD_CHAIN_NODE_URL -> chain.node_url
	v.SetEnvPrefix("TRD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the daemon cannot start with.
func (c *Config) Validate() error {
	switch c.Preference.Backend {
	case "redis", "memory":
	default:
		return fmt.Errorf("invalid preference.backend %q: want redis or memory", c.Preference.Backend)
	}
	if c.Preference.Prefix == "" {
		return fmt.Errorf("preference.prefix must not be empty")
	}
	if c.Monitor.LivenessInterval <= 0 || c.Monitor.SessionInterval <= 0 {
		return fmt.Errorf("monitor intervals must be positive")
	}
	if c.Chain.ConfirmTimeout <= 0 {
		return fmt.Errorf("chain.confirm_timeout must be positive")
	}
	return nil
}
