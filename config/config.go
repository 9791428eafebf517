package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	// MongoDB.
	MongoDBURI               string        `mapstructure:"MONGODB_URI"`
	MongoDBDatabase          string        `mapstructure:"MONGODB_DATABASE"`
	DBServerSelectionTimeout time.Duration `mapstructure:"DB_SERVER_SELECTION_TIMEOUT"`

	// Mail transport.
	MailProvider string        `mapstructure:"MAIL_PROVIDER"`
	SMTPHostName string        `mapstructure:"SMTP_HOST_NAME"`
	SMTPPort     int           `mapstructure:"SMTP_PORT"`
	Secure       bool          `mapstructure:"SECURE"`
	SMTPMail     string        `mapstructure:"SMTP_MAIL"`
	SMTPPass     string        `mapstructure:"SMTP_PASS"`
	BusinessMail string        `mapstructure:"BUSINESS_MAIL"`
	AWSRegion    string        `mapstructure:"AWS_REGION"`
	MailTimeout  time.Duration `mapstructure:"MAIL_TIMEOUT"`

	// Branding used by the email templates.
	CompanyName      string `mapstructure:"COMPANY_NAME"`
	SiteURL          string `mapstructure:"SITE_URL"`
	PhoneCountryCode string `mapstructure:"PHONE_COUNTRY_CODE"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("MONGODB_URI", "")
	v.SetDefault("MONGODB_DATABASE", "globalpioneers")
	v.SetDefault("DB_SERVER_SELECTION_TIMEOUT", "5s")
	v.SetDefault("MAIL_PROVIDER", "smtp")
	v.SetDefault("SMTP_HOST_NAME", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 465)
	v.SetDefault("SECURE", true)
	v.SetDefault("SMTP_MAIL", "")
	v.SetDefault("SMTP_PASS", "")
	v.SetDefault("BUSINESS_MAIL", "")
	v.SetDefault("AWS_REGION", "ap-south-1")
	v.SetDefault("MAIL_TIMEOUT", "15s")
	v.SetDefault("COMPANY_NAME", "Global Pioneers Tours & Travels")
	v.SetDefault("SITE_URL", "https://globalpioneertravels.in/")
	v.SetDefault("PHONE_COUNTRY_CODE", "+91")
}

// Load reads configuration from an optional config.yaml (in "." or "./config")
// and the environment, environment winning.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig populates AppConfig from the global viper instance.
func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// MissingRequired returns the names of required settings that are unset.
// The intake endpoint refuses to run while any of them is missing.
func (c Config) MissingRequired() []string {
	var missing []string
	if strings.TrimSpace(c.MongoDBURI) == "" {
		missing = append(missing, "MONGODB_URI")
	}
	if strings.TrimSpace(c.SMTPMail) == "" {
		missing = append(missing, "SMTP_MAIL")
	}
	if strings.TrimSpace(c.SMTPPass) == "" {
		missing = append(missing, "SMTP_PASS")
	}
	return missing
}

// BusinessRecipient is where new-inquiry notifications go.
func (c Config) BusinessRecipient() string {
	if c.BusinessMail != "" {
		return c.BusinessMail
	}
	return c.SMTPMail
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return AppConfig.IsProduction()
}
