package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	Session  SessionConfig
	Campaign CampaignConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// IsProduction reports whether the app runs with the production environment tag.
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
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

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Address        string
	LookupdAddress string
}

// SessionConfig contains session store configuration
type SessionConfig struct {
	CookieName string
	TTLMinutes int
	Secure     bool
}

// CampaignConfig contains campaign business-rule switches and constants
type CampaignConfig struct {
	Name                 string
	EnforceEligibility   bool
	AutoApprove          bool
	InvalidatePriorOTPs  bool
	OTPExpiryMinutes     int
	OTPSendsPerMinute    int
	TestPhoneNumber      string
	TestOTPCode          string
	MinFollowers         int
	MinEngagementRate    float64
	RewardType           string
	RewardValue          string
	CarrierName          string
	DeliveryEstimateDays int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
