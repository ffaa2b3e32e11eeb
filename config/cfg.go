package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/jekabolt/grbpwr-analytics/internal/api/http"
	"github.com/jekabolt/grbpwr-analytics/internal/analytics"
	"github.com/jekabolt/grbpwr-analytics/internal/store"
	"github.com/jekabolt/grbpwr-analytics/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB        store.Config     `mapstructure:"mysql"`
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Analytics analytics.Config `mapstructure:"analytics"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g. MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/grbpwr-analytics")
		v.AddConfigPath("/etc/grbpwr-analytics")
		// config file is optional
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	ac := analytics.DefaultConfig()
	v.SetDefault("analytics.top_products", ac.TopProducts)
	v.SetDefault("analytics.recent_orders", ac.RecentOrders)
	v.SetDefault("analytics.max_lookback_days", ac.MaxLookbackDays)
	v.SetDefault("analytics.timezone", ac.Timezone)
	v.SetDefault("analytics.granularity", ac.Granularity)
	v.SetDefault("analytics.cache_ttl", ac.CacheTTL)
	v.SetDefault("analytics.cache_granularity", ac.CacheGranularity)
	v.SetDefault("analytics.compute_timeout", ac.ComputeTimeout)

	hc := httpapi.DefaultConfig()
	v.SetDefault("http.port", hc.Port)
	v.SetDefault("http.address", hc.Address)
	v.SetDefault("http.allowed_origins", hc.AllowedOrigins)
	v.SetDefault("http.default_period", hc.DefaultPeriod)
	v.SetDefault("http.rate_limit", hc.RateLimit)
	v.SetDefault("http.request_timeout", hc.RequestTimeout)

	v.SetDefault("logger.level", 0)
}

// dsnFromEnv builds a DSN from MYSQL_HOST style variables.
func dsnFromEnv() string {
	host := os.Getenv("MYSQL_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("MYSQL_PORT")
	if port == "" {
		port = "3306"
	}
	user, password, database := os.Getenv("MYSQL_USER"), os.Getenv("MYSQL_PASSWORD"), os.Getenv("MYSQL_DATABASE")
	if user == "" || database == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true",
		user, password, host, port, database)
}

// bindEnvVars binds flat environment variable names to config keys
func bindEnvVars(v *viper.Viper) {
	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")
	v.BindEnv("mysql.query_timeout", "MYSQL_QUERY_TIMEOUT")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.default_period", "HTTP_DEFAULT_PERIOD")
	v.BindEnv("http.rate_limit", "HTTP_RATE_LIMIT")
	v.BindEnv("http.request_timeout", "HTTP_REQUEST_TIMEOUT")

	// Analytics
	v.BindEnv("analytics.top_products", "ANALYTICS_TOP_PRODUCTS")
	v.BindEnv("analytics.recent_orders", "ANALYTICS_RECENT_ORDERS")
	v.BindEnv("analytics.max_lookback_days", "ANALYTICS_MAX_LOOKBACK_DAYS")
	v.BindEnv("analytics.timezone", "ANALYTICS_TIMEZONE")
	v.BindEnv("analytics.granularity", "ANALYTICS_GRANULARITY")
	v.BindEnv("analytics.cache_ttl", "ANALYTICS_CACHE_TTL")
	v.BindEnv("analytics.cache_granularity", "ANALYTICS_CACHE_GRANULARITY")
	v.BindEnv("analytics.compute_timeout", "ANALYTICS_COMPUTE_TIMEOUT")
}
