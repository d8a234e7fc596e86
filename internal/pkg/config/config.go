package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

// InitConfig loads application configuration from a yaml file and the
// environment. Environment variables (RIDEPOOL_DATABASE_HOST, ...) take
// precedence over file values.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("ridepool")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("error reading config from %s: %v", configPath, err)
	}

	cfg := &models.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		log.Fatalf("error unmarshalling config: %v", err)
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "ridepool")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 5)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.consumer_enable", true)

	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "ridepool")

	v.SetDefault("search.default_radius_km", 25)
	v.SetDefault("search.max_radius_km", 100)
	v.SetDefault("search.history_size", 5)
	v.SetDefault("search.history_ttl_hours", 72)

	v.SetDefault("booking.cancellation_window_hours", 24)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")
}
