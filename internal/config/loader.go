package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads the configuration from file, environment variables and
// defaults. Environment variables use the H4P prefix with underscores, e.g.
// H4P_JWT_SECRET overrides jwt.secret.
func LoadConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/home4paws/")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("H4P")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.idle_timeout", 60)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "home4paws")
	v.SetDefault("database.database", "home4paws")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.path", "home4paws.db")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.max_idle", 5)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	// Registered with an empty default so the H4P_JWT_SECRET env override is
	// visible to Unmarshal.
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.token_ttl", 86400) // 24h

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.login_attempts", 10)
	v.SetDefault("rate_limit.window_seconds", 60)

	v.SetDefault("uploads.dir", "./uploads")
	v.SetDefault("uploads.base_url", "/uploads")

	v.SetDefault("cache.listing_ttl_seconds", 30)

	v.SetDefault("cors.allowed_origins", []string{
		"http://localhost:5173",
		"http://localhost:5174",
		"http://localhost:3000",
	})

	v.SetDefault("log.level", "info")

	v.SetDefault("seed.enabled", true)
	v.SetDefault("seed.admin_username", "admin")
	v.SetDefault("seed.admin_email", "admin@home4paws.com")
	v.SetDefault("seed.demo_username", "demo")
	v.SetDefault("seed.demo_email", "demo@example.com")

	v.SetDefault("pprof.enabled", false)
}
