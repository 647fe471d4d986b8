package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort       string `mapstructure:"APP_PORT"`
	Env           string `mapstructure:"ENV"`
	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Secret used to sign and verify access tokens.
	AccessTokenSecret string `mapstructure:"ACCESS_TOKEN_SECRET"`

	// Stripe secret key.
	PaymentSecretKey string `mapstructure:"PAYMENT_SECRET_KEY"`

	// Outbound mail relay.
	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort string `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`
}

var App Config

func Load() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "5000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "aircnc")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", "587")

	// Secrets have no sensible default; registering the keys lets
	// AutomaticEnv supply them through Unmarshal.
	viper.SetDefault("ACCESS_TOKEN_SECRET", "")
	viper.SetDefault("PAYMENT_SECRET_KEY", "")
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASS", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&App); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func IsProduction() bool {
	return App.Env == "production"
}
