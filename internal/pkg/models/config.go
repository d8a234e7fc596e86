package models

// Config represents application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	NSQ      NSQConfig      `mapstructure:"nsq"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Search   SearchConfig   `mapstructure:"search"`
	Booking  BookingConfig  `mapstructure:"booking"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NSQConfig contains NSQ daemon connection configuration
type NSQConfig struct {
	Address        string   `mapstructure:"address"`
	LookupdAddrs   []string `mapstructure:"lookupd_addrs"`
	ConsumerEnable bool     `mapstructure:"consumer_enable"`
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration int    `mapstructure:"expiration"` // in minutes
	Issuer     string `mapstructure:"issuer"`
}

// SearchConfig contains ride search configuration
type SearchConfig struct {
	DefaultRadiusKm int `mapstructure:"default_radius_km"`
	MaxRadiusKm     int `mapstructure:"max_radius_km"`
	HistorySize     int `mapstructure:"history_size"`
	HistoryTTLHours int `mapstructure:"history_ttl_hours"`
}

// BookingConfig contains booking policy configuration
type BookingConfig struct {
	CancellationWindowHours int `mapstructure:"cancellation_window_hours"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}
