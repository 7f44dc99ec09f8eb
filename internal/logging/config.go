package logging

// LogConfig holds logging-related configuration
type LogConfig struct {
	File       string // Path to log file
	MaxSize    int    // Max size in MB
	MaxBackups int    // Number of backups to keep
	MaxAge     int    // Max age in days
}

// DefaultLogConfig returns the configuration used when none is provided.
func DefaultLogConfig(file string) *LogConfig {
	if file == "" {
		file = "./logs/api.log"
	}
	return &LogConfig{
		File:       file,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}
}
