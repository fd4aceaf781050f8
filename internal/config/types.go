package config

// Default values.
const (
	DefaultStoreFile = ".tasker.json"
	DefaultLogLevel  = "warn"
)

// Config holds the full configuration for tasker.
type Config struct {
	// StoreFile is the task store path. Relative paths resolve against the
	// working directory; a leading ~ expands to the home directory.
	StoreFile string `toml:"store_file"`

	// Validate controls JSON Schema validation of the store file on load.
	Validate bool `toml:"validate"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogTimestamps bool   `toml:"log_timestamps"`
}
