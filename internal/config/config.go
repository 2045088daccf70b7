package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Compose  ComposeConfig
	Fetch    FetchConfig
	Supabase SupabaseConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ComposeConfig holds the defaults applied to a combine request.
type ComposeConfig struct {
	DefaultPosition   string
	DefaultPadding    float64
	DefaultLogoSize   float64
	MinPadding        float64
	EnforceMinPadding bool
	MaxBodySize       int64
}

type FetchConfig struct {
	Timeout     time.Duration
	MaxFileSize int64
}

type SupabaseConfig struct {
	URL    string
	KEY    string
	BUCKET string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RabbitMQConfig struct {
	URL     string
	Queue   string
	Workers int
}

type StorageConfig struct {
	CacheDuration time.Duration
	JobTTL        time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3000"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDuration("WRITE_TIMEOUT", 60*time.Second),
		},
		Compose: ComposeConfig{
			DefaultPosition:   getEnv("DEFAULT_POSITION", "bottom-right"),
			DefaultPadding:    getEnvAsFloat("DEFAULT_PADDING", 40),
			DefaultLogoSize:   getEnvAsFloat("DEFAULT_LOGO_SIZE", 10),
			MinPadding:        getEnvAsFloat("MIN_PADDING", 25),
			EnforceMinPadding: getEnvAsBool("ENFORCE_MIN_PADDING", false),
			MaxBodySize:       getEnvAsInt64("MAX_BODY_SIZE", 50*1024*1024), // 50MB
		},
		Fetch: FetchConfig{
			Timeout:     getDuration("FETCH_TIMEOUT", 30*time.Second),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10*1024*1024), // 10MB
		},
		Supabase: SupabaseConfig{
			URL:    getEnv("SUPABASE_URL", ""),
			KEY:    getEnv("SUPABASE_KEY", ""),
			BUCKET: getEnv("SUPABASE_BUCKET", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			URL:     getEnv("RABBITMQ_URL", ""),
			Queue:   getEnv("RABBITMQ_QUEUE", "logo_compositing"),
			Workers: getEnvAsInt("QUEUE_WORKERS", 2),
		},
		Storage: StorageConfig{
			CacheDuration: getDuration("CACHE_DURATION", 24*time.Hour),
			JobTTL:        getDuration("JOB_TTL", 24*time.Hour),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}
