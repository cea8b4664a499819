package core

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingDatabaseURI is returned when the record store connection string
// is absent from the environment. Nothing touches the store before this check.
var ErrMissingDatabaseURI = errors.New("config: DATABASE_URI is not set")

type DatabaseConfig struct {
	URI  string
	Name string
}

type Config struct {
	Debug        bool
	TestMode     bool
	Env          string
	AppName      string
	Build        string
	RollbarToken string
	Database     DatabaseConfig
}

// NewConfig loads configuration from the environment, with an optional
// config/.env.<env> dotenv file layered underneath (ignored if absent).
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Vazifa")
	v.SetDefault("databaseName", "vazifa")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		Env:          env,
		AppName:      v.GetString("appName"),
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbarToken"),
		Database: DatabaseConfig{
			URI:  v.GetString("databaseUri"),
			Name: v.GetString("databaseName"),
		},
	}
}

// Validate checks that required settings are present. It must be called
// before any store connection is attempted.
func (conf *Config) Validate() error {
	if conf.Database.URI == "" {
		return ErrMissingDatabaseURI
	}
	return nil
}
