package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/guidopacc/insurapro/internal/logger"
	"github.com/guidopacc/insurapro/types"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = ".insurapro"
	envPrefix  = "INSURAPRO"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single validator instance; it caches struct info.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// InitConfig reads in config file and ENV variables if set, then builds
// the application logger.
func InitConfig() {
	// Load .env file first if present. It's fine if it doesn't exist.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g. INSURAPRO_DATA_DIR
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("data.dir", "data")
	viper.SetDefault("data.customerFile", "customers.txt")
	viper.SetDefault("data.interactionFile", "interactions.txt")
	viper.SetDefault("log.env", "development")
	viper.SetDefault("log.level", "warn")

	if cfgFileFlag := viper.GetString("config"); cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
	}

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintln(os.Stderr, "Error unmarshaling config:", err)
		os.Exit(1)
	}
	if err := validate.Struct(&GlobalAppConfig); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
		os.Exit(1)
	}

	level := GlobalAppConfig.Log.Level
	if viper.GetBool("verbose") {
		level = "debug"
	}
	logger.New(logger.Config{Env: GlobalAppConfig.Log.Env, Level: level})
}

// GetConfig returns the loaded application configuration.
func GetConfig() types.AppConfig {
	return GlobalAppConfig
}

// CustomerFilePath returns the full path of the customer data file.
func CustomerFilePath(config types.AppConfig) string {
	return filepath.Join(config.Data.Dir, config.Data.CustomerFile)
}

// InteractionFilePath returns the full path of the interaction data file.
func InteractionFilePath(config types.AppConfig) string {
	return filepath.Join(config.Data.Dir, config.Data.InteractionFile)
}
