package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/etnz/travelpack/agent"
	"github.com/spf13/viper"
)

const defaultInventoryFile = "inventory.json"

// Config holds the settings that do not come from the command line.
type Config struct {
	InventoryFile string
	LogLevel      string
	Model         string
	APIKey        string
}

// config is the configuration in use, Init replaces it.
var config = Config{
	InventoryFile: defaultInventoryFile,
	LogLevel:      "warn",
	Model:         agent.DefaultModel,
}

// LoadConfig reads the configuration from the environment (PACK_* variables)
// and from an optional travelpack.yaml file in the current directory or in
// the home directory. The environment wins over the file.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetConfigName("travelpack")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("PACK")
	v.AutomaticEnv()
	v.BindEnv("api_key", "GEMINI_API_KEY", "GOOGLE_API_KEY")

	v.SetDefault("inventory_file", defaultInventoryFile)
	v.SetDefault("log_level", "warn")
	v.SetDefault("model", agent.DefaultModel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("cannot read config file: %w", err)
		}
	}

	return Config{
		InventoryFile: v.GetString("inventory_file"),
		LogLevel:      v.GetString("log_level"),
		Model:         v.GetString("model"),
		APIKey:        v.GetString("api_key"),
	}, nil
}

// Init loads the configuration and sets up logging. It must be called after
// the command line has been parsed.
func Init() error {
	c, err := LoadConfig()
	if err != nil {
		return err
	}
	config = c
	level := c.LogLevel
	if *Verbose {
		level = "debug"
	}
	return setupLogger(os.Stderr, level)
}
