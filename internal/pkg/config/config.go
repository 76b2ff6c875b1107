package config

import (
	"log"
	"os"
	"strconv"

	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/joho/godotenv"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "campaign-service")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")
	configs.NSQ.LookupdAddress = GetEnv("NSQ_LOOKUPD_ADDRESS", "")

	// Session config
	configs.Session.CookieName = GetEnv("SESSION_COOKIE_NAME", "campaign_session")
	configs.Session.TTLMinutes = GetEnvAsInt("SESSION_TTL_MINUTES", 7*24*60)
	configs.Session.Secure = GetEnvAsBool("SESSION_SECURE", false)

	// Campaign config
	configs.Campaign.Name = GetEnv("CAMPAIGN_NAME", "glossy_transition")
	configs.Campaign.EnforceEligibility = GetEnvAsBool("CAMPAIGN_ENFORCE_ELIGIBILITY", false)
	configs.Campaign.AutoApprove = GetEnvAsBool("CAMPAIGN_AUTO_APPROVE", true)
	configs.Campaign.InvalidatePriorOTPs = GetEnvAsBool("CAMPAIGN_INVALIDATE_PRIOR_OTPS", false)
	configs.Campaign.OTPExpiryMinutes = GetEnvAsInt("CAMPAIGN_OTP_EXPIRY_MINUTES", 5)
	configs.Campaign.OTPSendsPerMinute = GetEnvAsInt("CAMPAIGN_OTP_SENDS_PER_MINUTE", 3)
	configs.Campaign.TestPhoneNumber = GetEnv("CAMPAIGN_TEST_PHONE_NUMBER", "+913333333331")
	configs.Campaign.TestOTPCode = GetEnv("CAMPAIGN_TEST_OTP_CODE", "123456")
	configs.Campaign.MinFollowers = GetEnvAsInt("CAMPAIGN_MIN_FOLLOWERS", 500)
	configs.Campaign.MinEngagementRate = GetEnvAsFloat("CAMPAIGN_MIN_ENGAGEMENT_RATE", 6.0)
	configs.Campaign.RewardType = GetEnv("CAMPAIGN_REWARD_TYPE", "glycolic_gloss_pack")
	configs.Campaign.RewardValue = GetEnv("CAMPAIGN_REWARD_VALUE", "500.00")
	configs.Campaign.CarrierName = GetEnv("CAMPAIGN_CARRIER_NAME", "Delhivery")
	configs.Campaign.DeliveryEstimateDays = GetEnvAsInt("CAMPAIGN_DELIVERY_ESTIMATE_DAYS", 7)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
