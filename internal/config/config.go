package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds every runtime setting the service needs. Values come from
// the environment first, with an optional app.env file for development.
type Config struct {
	ServerPort       string `mapstructure:"SERVER_PORT"`
	ClientOrigin     string `mapstructure:"CLIENT_ORIGIN"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	JWTSecret        string `mapstructure:"JWT_SECRET"`
	ServiceAccessKey string `mapstructure:"SERVICE_ACCESS_KEY"`
	GeminiAPIKey     string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel      string `mapstructure:"GEMINI_MODEL"`
	GroundingEnabled bool   `mapstructure:"GROUNDING_ENABLED"`
	AWSRegion        string `mapstructure:"AWS_REGION"`
	EmailFrom        string `mapstructure:"EMAIL_FROM"`
}

// LoadConfig reads configuration from app.env in the given path (if one
// exists) and from the environment. A missing file is not an error; a
// malformed one is.
func LoadConfig(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CLIENT_ORIGIN", "http://localhost:5173")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("GROUNDING_ENABLED", true)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
