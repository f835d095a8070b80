package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	JWTSecret    string
	GeminiApiKey string
	GeminiModel  string
}

type Server struct {
	Port string
}
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.JWTSecret = viper.GetString("JWT_SECRET")
	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.GeminiModel = viper.GetString("GEMINI_MODEL")

	if config.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set, authenticated endpoints will reject all tokens")
	}
	if config.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set, quiz generation will be unavailable")
	}

	log.Info().Str("port", config.Server.Port).Str("db", config.Database.Name).Msg("Config loaded")
	return &config, nil
}
