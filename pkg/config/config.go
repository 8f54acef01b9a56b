package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	BankAPI  BankAPIConfig
	Auction  AuctionConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	FeedTTL  time.Duration
}

// BankAPIConfig drives the external live-product feed client.
type BankAPIConfig struct {
	Enabled bool
	BaseURL string
	Timeout time.Duration
}

// AuctionConfig bounds the rate-decay simulation.
type AuctionConfig struct {
	TickInterval    time.Duration
	MinTickInterval time.Duration
	DecayMin        float64
	DecayMax        float64
	LiveDecayMin    float64
	LiveDecayMax    float64
	RateFloor       float64
	ExpiryMin       time.Duration
	ExpiryMax       time.Duration
}

type LoggerConfig struct {
	Level string
}

func Load() (*Config, error) {
	// .env is optional: absent in Docker/K8s where variables come from the
	// environment directly.
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	feedTTL, _ := strconv.Atoi(getEnv("REDIS_FEED_TTL_SECONDS", "300"))
	feedTimeout, _ := strconv.Atoi(getEnv("BANK_API_TIMEOUT_SECONDS", "10"))
	tickInterval, _ := strconv.Atoi(getEnv("AUCTION_TICK_SECONDS", "30"))
	minTick, _ := strconv.Atoi(getEnv("AUCTION_MIN_TICK_SECONDS", "10"))
	expiryMin, _ := strconv.Atoi(getEnv("AUCTION_EXPIRY_MIN_MINUTES", "30"))
	expiryMax, _ := strconv.Atoi(getEnv("AUCTION_EXPIRY_MAX_MINUTES", "90"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "credimatch"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			FeedTTL:  time.Duration(feedTTL) * time.Second,
		},
		BankAPI: BankAPIConfig{
			Enabled: getEnv("BANK_API_ENABLED", "false") == "true",
			BaseURL: getEnv("BANK_API_BASE_URL", "http://localhost:9090"),
			Timeout: time.Duration(feedTimeout) * time.Second,
		},
		Auction: AuctionConfig{
			TickInterval:    time.Duration(tickInterval) * time.Second,
			MinTickInterval: time.Duration(minTick) * time.Second,
			DecayMin:        getEnvFloat("AUCTION_DECAY_MIN", 0.1),
			DecayMax:        getEnvFloat("AUCTION_DECAY_MAX", 0.6),
			LiveDecayMin:    getEnvFloat("AUCTION_LIVE_DECAY_MIN", 0.05),
			LiveDecayMax:    getEnvFloat("AUCTION_LIVE_DECAY_MAX", 0.3),
			RateFloor:       getEnvFloat("AUCTION_RATE_FLOOR", 8.0),
			ExpiryMin:       time.Duration(expiryMin) * time.Minute,
			ExpiryMax:       time.Duration(expiryMax) * time.Minute,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
