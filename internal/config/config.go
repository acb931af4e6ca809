package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all host-process settings. Values come from environment
// variables with the DREAM60 prefix, optionally overlaid by a config.yaml in
// the working directory.
type Config struct {
	Port      string
	StoreType string // "memory" or "mongo"

	MongoURI      string
	MongoDatabase string

	TimezoneName          string
	TimezoneOffsetMinutes int

	HourSlots       []int
	EntryFee        int64
	PrizeValue      int64
	MinParticipants int
	RoundCount      int
}

// Load reads configuration, applying defaults for anything unset.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DREAM60")
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("store_type", "memory")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("mongo_database", "dream60")
	// IST by default: the auction day is defined in a fixed civil timezone
	// with no DST.
	v.SetDefault("timezone_name", "IST")
	v.SetDefault("timezone_offset_minutes", 330)
	v.SetDefault("hour_slots", []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21})
	v.SetDefault("entry_fee", 50)
	v.SetDefault("prize_value", 10000)
	v.SetDefault("min_participants", 4)
	v.SetDefault("round_count", 4)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Port:                  v.GetString("port"),
		StoreType:             v.GetString("store_type"),
		MongoURI:              v.GetString("mongo_uri"),
		MongoDatabase:         v.GetString("mongo_database"),
		TimezoneName:          v.GetString("timezone_name"),
		TimezoneOffsetMinutes: v.GetInt("timezone_offset_minutes"),
		HourSlots:             v.GetIntSlice("hour_slots"),
		EntryFee:              v.GetInt64("entry_fee"),
		PrizeValue:            v.GetInt64("prize_value"),
		MinParticipants:       v.GetInt("min_participants"),
		RoundCount:            v.GetInt("round_count"),
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.StoreType != "memory" && c.StoreType != "mongo" {
		return fmt.Errorf("unsupported store type %q", c.StoreType)
	}
	if c.RoundCount < 1 {
		return fmt.Errorf("round count must be at least 1, got %d", c.RoundCount)
	}
	for _, h := range c.HourSlots {
		if h < 0 || h > 23 {
			return fmt.Errorf("hour slot %d out of range", h)
		}
	}
	return nil
}
