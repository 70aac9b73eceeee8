package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"       validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost           int    `mapstructure:"bcrypt_cost"            validate:"gte=0,lte=31"`
}

// RateLimitConfig contains request throttling settings. The auth limiter
// is stricter than the general API limiter since login and registration
// are the usual brute-force targets.
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestLimit      int  `mapstructure:"request_limit"       validate:"required,gt=0"`
	WindowSeconds     int  `mapstructure:"window_seconds"      validate:"required,gt=0"`
	AuthRequestLimit  int  `mapstructure:"auth_request_limit"  validate:"required,gt=0"`
	AuthWindowSeconds int  `mapstructure:"auth_window_seconds" validate:"required,gt=0"`
}

// CORSConfig contains cross-origin resource sharing settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
