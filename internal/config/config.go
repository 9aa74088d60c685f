package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/arkose/analytics-api/internal/models"
)

type DataConfig struct {
	CSVPath      string `mapstructure:"csv_path"`
	WorkflowsDir string `mapstructure:"workflows_dir"`
}

type PricingConfig struct {
	PricePerEntry   float64 `mapstructure:"price_per_entry"`
	PricePerDish    float64 `mapstructure:"price_per_dish"`
	PricePerStarter float64 `mapstructure:"price_per_starter"`
}

type MixConfig struct {
	SubscriberPrice float64 `mapstructure:"subscriber_price"`
	SubscriberShare float64 `mapstructure:"subscriber_share"`
	PackPrice       float64 `mapstructure:"pack_price"`
	PackShare       float64 `mapstructure:"pack_share"`
	UnitPrice       float64 `mapstructure:"unit_price"`
}

type Config struct {
	ServerPort     string        `mapstructure:"server_port"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	Data           DataConfig    `mapstructure:"data"`
	Pricing        PricingConfig `mapstructure:"pricing"`
	Mix            MixConfig     `mapstructure:"mix"`
}

// Load reads the configuration from a YAML file and returns a Config
// instance. Every knob has a default, so a missing config file is not an
// error; a malformed one is.
func Load() *Config {
	v := viper.New()

	// Look for config in the current directory and ./config
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.AddConfigPath("./config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			log.Fatalf("Error reading config file: %v", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		log.Fatalf("Error unmarshalling config: %v", err)
	}

	// Fallback defaults
	if config.ServerPort == "" {
		config.ServerPort = "8080"
	}
	if len(config.AllowedOrigins) == 0 {
		config.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if config.Data.CSVPath == "" {
		config.Data.CSVPath = "data/ARKOSE_donnees_2025.csv"
	}
	if config.Data.WorkflowsDir == "" {
		config.Data.WorkflowsDir = "data/workflows"
	}

	pricingDefaults := models.DefaultPricing()
	if config.Pricing.PricePerEntry == 0 {
		config.Pricing.PricePerEntry = pricingDefaults.PricePerEntry
	}
	if config.Pricing.PricePerDish == 0 {
		config.Pricing.PricePerDish = pricingDefaults.PricePerDish
	}
	if config.Pricing.PricePerStarter == 0 {
		config.Pricing.PricePerStarter = pricingDefaults.PricePerStarter
	}

	mixDefaults := models.DefaultMix()
	if config.Mix.SubscriberPrice == 0 {
		config.Mix.SubscriberPrice = mixDefaults.SubscriberPrice
	}
	if config.Mix.SubscriberShare == 0 {
		config.Mix.SubscriberShare = mixDefaults.SubscriberShare
	}
	if config.Mix.PackPrice == 0 {
		config.Mix.PackPrice = mixDefaults.PackPrice
	}
	if config.Mix.PackShare == 0 {
		config.Mix.PackShare = mixDefaults.PackShare
	}
	if config.Mix.UnitPrice == 0 {
		config.Mix.UnitPrice = mixDefaults.UnitPrice
	}

	return &config
}

// PricingAssumptions converts the configured defaults into the model type.
func (c *Config) PricingAssumptions() models.PricingAssumptions {
	return models.PricingAssumptions{
		PricePerEntry:   c.Pricing.PricePerEntry,
		PricePerDish:    c.Pricing.PricePerDish,
		PricePerStarter: c.Pricing.PricePerStarter,
	}
}

// MixAssumptions converts the configured defaults into the model type.
func (c *Config) MixAssumptions() models.MixAssumptions {
	return models.MixAssumptions{
		SubscriberPrice: c.Mix.SubscriberPrice,
		SubscriberShare: c.Mix.SubscriberShare,
		PackPrice:       c.Mix.PackPrice,
		PackShare:       c.Mix.PackShare,
		UnitPrice:       c.Mix.UnitPrice,
	}
}
