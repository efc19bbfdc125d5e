package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	Logger   LoggerConfig
	Services ServicesConfig
	Fare     FareConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig contains API keys for service-to-service communication
type APIKeyConfig struct {
	OrdersService  string
	BillingService string
	FleetService   string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string // file, stdout or both
}

// ServicesConfig contains URLs for the other back-office services
type ServicesConfig struct {
	OrdersServiceURL  string
	BillingServiceURL string
	FleetServiceURL   string
}

// FareConfig contains deployment-wide fare parameters. Waiting time is free
// below FreeWaitingMinutes and billed at WaitingRatePerMinute XPF above it.
// The admin-managed fee percentages live in FeeConfig (database singleton),
// not here.
type FareConfig struct {
	FreeWaitingMinutes   int
	WaitingRatePerMinute int
}
