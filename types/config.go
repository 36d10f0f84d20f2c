package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool       `mapstructure:"verbose"`
	Config  string     `mapstructure:"config"`
	Data    DataConfig `mapstructure:"data" validate:"required"`
	Log     LogConfig  `mapstructure:"log"`
}

// DataConfig holds the flat-file storage configuration.
type DataConfig struct {
	// Dir is the directory holding both data files. It is created on
	// startup if missing.
	Dir string `mapstructure:"dir" validate:"required"`
	// CustomerFile and InteractionFile are filenames relative to Dir.
	CustomerFile    string `mapstructure:"customerFile" validate:"required"`
	InteractionFile string `mapstructure:"interactionFile" validate:"required"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Env selects the output format: development is human-readable,
	// production is JSON.
	Env   string `mapstructure:"env" validate:"omitempty,oneof=development production"`
	Level string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error"`
}
