package models

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type Config struct {
	Seed             int64   `mapstructure:"seed"`
	CenterLat        float64 `mapstructure:"center_latitude"`
	CenterLon        float64 `mapstructure:"center_longitude"`
	SearchRadius     int     `mapstructure:"search_radius"`
	SpeedThresholdKm float64 `mapstructure:"speed_threshold_kmh"`
	DataDir          string  `mapstructure:"data_dir"`
	KafkaEnabled     bool    `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string  `mapstructure:"kafka_broker_list"`
	OutputPath       string  `mapstructure:"output_path"`
	OutputFolder     string  `mapstructure:"output_folder"`
	PostgresEnabled  bool    `mapstructure:"postgres_enabled"`
	DatabaseURL      string  `mapstructure:"database_url"`

	ExportPath   string             `mapstructure:"export_path"`
	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
}

// Center returns the detection center point.
func (cfg *Config) Center() Location {
	return Location{Lat: cfg.CenterLat, Lon: cfg.CenterLon}
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	// Auckland CBD defaults, matching the shipped route list
	viper.SetDefault("center_latitude", -36.8485)
	viper.SetDefault("center_longitude", 174.7633)
	viper.SetDefault("search_radius", 5000)
	viper.SetDefault("speed_threshold_kmh", 10.0)
	viper.SetDefault("data_dir", "data")
	viper.SetDefault("output_folder", "promo_events")
	viper.SetDefault("export_path", "export")

	if err := viper.ReadInConfig(); err != nil {
		// The tool runs fine on defaults; only a broken file is fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
