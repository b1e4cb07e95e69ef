package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr      string        `mapstructure:"HTTP_ADDR"`
	MySQLDSN      string        `mapstructure:"MYSQL_DSN"`
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	PageSize      int           `mapstructure:"PAGE_SIZE"`
	IndexCacheTTL time.Duration `mapstructure:"INDEX_CACHE_TTL"`
	AccessSecret  string        `mapstructure:"JWT_ACCESS_SECRET"`
	RefreshSecret string        `mapstructure:"JWT_REFRESH_SECRET"`
	SMTPHost      string        `mapstructure:"SMTP_HOST"`
	SMTPPort      int           `mapstructure:"SMTP_PORT"`
	SMTPUsername  string        `mapstructure:"SMTP_USERNAME"`
	SMTPPassword  string        `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom      string        `mapstructure:"SMTP_FROM"`
	KafkaBrokers  string        `mapstructure:"KAFKA_BROKERS"` // comma separated, empty disables
	KafkaTopic    string        `mapstructure:"KAFKA_TOPIC"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("HTTP_ADDR", ":8080")
	viper.SetDefault("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/bloghub?charset=utf8mb4&parseTime=True")
	viper.SetDefault("REDIS_ADDR", "127.0.0.1:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("PAGE_SIZE", 10)
	viper.SetDefault("INDEX_CACHE_TTL", 20*time.Second)
	viper.SetDefault("JWT_ACCESS_SECRET", "dev-access-secret")
	viper.SetDefault("JWT_REFRESH_SECRET", "dev-refresh-secret")
	// Unmarshal only sees keys viper knows about, so the optional
	// integrations still need empty defaults to be settable via env.
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_TOPIC", "social.follow.events")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// BrokerList splits KAFKA_BROKERS; nil when kafka is not configured.
func (c Config) BrokerList() []string {
	if strings.TrimSpace(c.KafkaBrokers) == "" {
		return nil
	}
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
