package utils

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Booking BookingConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type CatalogConfig struct {
	Path      string
	Delimiter string
}

type BookingConfig struct {
	MinTickets int
	MaxTickets int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-reservation")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CATALOG_PATH", "movies.txt")
	viper.SetDefault("CATALOG_DELIMITER", "|")
	viper.SetDefault("MIN_TICKETS", 1)
	viper.SetDefault("MAX_TICKETS", 10)

	// .env is optional for a console run; env vars and defaults still apply
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Catalog: CatalogConfig{
			Path:      viper.GetString("CATALOG_PATH"),
			Delimiter: viper.GetString("CATALOG_DELIMITER"),
		},
		Booking: BookingConfig{
			MinTickets: viper.GetInt("MIN_TICKETS"),
			MaxTickets: viper.GetInt("MAX_TICKETS"),
		},
	}

	return config, nil
}
