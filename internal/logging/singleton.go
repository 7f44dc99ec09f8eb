package logging

import (
	"log"
	"os"
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger initializes the global logger instance.
// It should be called once at process start, before any GetGlobalLogger call.
func InitLogger(config *LogConfig) error {
	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	instance = logger
	return nil
}

// GetGlobalLogger returns the singleton logger instance.
// If InitLogger was never called it falls back to a stderr-only logger,
// which keeps tests and library consumers working without setup.
func GetGlobalLogger() *Logger {
	mu.RLock()
	if instance != nil {
		defer mu.RUnlock()
		return instance
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = &Logger{Logger: log.New(os.Stderr, "", log.LstdFlags)}
	}
	return instance
}
