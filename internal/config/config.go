package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Auth
		Seed
		CORS
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Auth struct {
		JWTSecret   string
		TokenExpiry time.Duration
		BcryptCost  int
	}
	Seed struct {
		Dir string
	}
	CORS struct {
		AllowedOrigins []string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3001)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("seed_dir", DefaultSeedDir)

	// Auth defaults
	v.SetDefault("jwt_secret", "")
	v.SetDefault("token_expiry", "24h") // matches the token lifetime clients expect
	v.SetDefault("bcrypt_cost", 12)

	// CORS defaults: permissive, same as the public catalog endpoints require
	v.SetDefault("cors_allowed_origins", []string{"*"})

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Auth: Auth{
			JWTSecret:   v.GetString("JWT_SECRET"),
			TokenExpiry: v.GetDuration("TOKEN_EXPIRY"),
			BcryptCost:  v.GetInt("BCRYPT_COST"),
		},
		Seed: Seed{
			Dir: v.GetString("SEED_DIR"),
		},
		CORS: CORS{
			AllowedOrigins: v.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		},
	}
}
