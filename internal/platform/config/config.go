package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// SnapshotPath is where the in-memory stores persist between runs.
	// Empty disables persistence entirely.
	SnapshotPath string

	// GSTRatePercent is the flat rate applied to Sales and Purchase rows
	// in workbook exports, e.g. 18 for 18%.
	GSTRatePercent decimal.Decimal

	// RateLimit uses the limiter formatted syntax, e.g. "100-M".
	RateLimit string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SNAPSHOT_PATH", "bizbooks_snapshot.json")
	viper.SetDefault("GST_RATE_PERCENT", "18")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.SnapshotPath = viper.GetString("SNAPSHOT_PATH")
	if cfg.SnapshotPath == "" {
		log.Println("Warning: SNAPSHOT_PATH is empty. Books will not survive a restart.")
	}

	gstRateStr := viper.GetString("GST_RATE_PERCENT")
	gstRate, err := decimal.NewFromString(gstRateStr)
	if err != nil || gstRate.IsNegative() {
		gstRate = decimal.NewFromInt(18)
		log.Printf("Warning: Invalid value for GST_RATE_PERCENT ('%s'). Defaulting to %s.\n", gstRateStr, gstRate.String())
	}
	cfg.GSTRatePercent = gstRate

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "100-M"
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"http://localhost:3000"}
	}

	return cfg, nil
}
