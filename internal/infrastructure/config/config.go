package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/mihretabn/taskhub/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Environment string
	Port        string
	MongoURI    string
	DBName      string
	JWTSecret   string
	RedisURL    string
	UploadDir   string
	TokenExpiry time.Duration
	OTPTTL      time.Duration
	BcryptCost  int
}

// NewConfig creates a new Config instance, loading values from
// environment variables. The bearer token window defaults to 720 days.
func NewConfig() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "6008"),
		MongoURI:    getEnv("MONGODB_URI", ""),
		DBName:      getEnv("MONGODB_DB_NAME", "taskhub"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		TokenExpiry: time.Hour * time.Duration(getEnvAsInt("TOKEN_EXPIRY_HOURS", 720*24)),
		OTPTTL:      time.Minute * time.Duration(getEnvAsInt("OTP_TTL_MINUTES", 10)),
		BcryptCost:  getEnvAsInt("BCRYPT_COST", 10),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetTokenExpiry returns the bearer token validity window.
func (c *Config) GetTokenExpiry() time.Duration {
	return c.TokenExpiry
}

// GetOTPTTL returns how long an issued OTP stays valid.
func (c *Config) GetOTPTTL() time.Duration {
	return c.OTPTTL
}

// GetBcryptCost returns the credential hashing cost factor.
func (c *Config) GetBcryptCost() int {
	return c.BcryptCost
}

// IsProduction reports whether the process runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
