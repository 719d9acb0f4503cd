package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort   string `mapstructure:"APP_PORT"`
	Env       string `mapstructure:"ENV"`
	JWTSecret string `mapstructure:"JWT_SECRET"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisBusDB      int    `mapstructure:"REDIS_BUS_DB"`
	RedisAuthDB     int    `mapstructure:"REDIS_AUTH_DB"`
	RedisDispatchDB int    `mapstructure:"REDIS_DISPATCH_DB"`

	// QuickFind defaults.
	DefaultSearchRadiusKm float64 `mapstructure:"DEFAULT_SEARCH_RADIUS_KM"`

	// Firebase service account key path (FCM pushes).
	FirebaseCredentialsPath string `mapstructure:"FIREBASE_CREDENTIALS_PATH"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "quickfind")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_BUS_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_DISPATCH_DB", 2)
	viper.SetDefault("DEFAULT_SEARCH_RADIUS_KM", 10.0)
	viper.SetDefault("FIREBASE_CREDENTIALS_PATH", "serviceAccountKey.json")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
