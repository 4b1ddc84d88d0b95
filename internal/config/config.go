// Package config reads the server settings from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds the settings shared by the MCP server and the CLI.
type Config struct {
	// LogLevel is "debug" to enable verbose logging.
	LogLevel string

	// Threshold is the default alpha threshold for extraction.
	Threshold int

	// MinDimension is the default minimum object width and height.
	MinDimension int

	// OutputDir is where exported objects are written when no bucket is set.
	OutputDir string

	// S3Bucket, when set, sends exports to S3 instead of OutputDir.
	S3Bucket string
	S3Prefix string
	S3Region string
}

// Load reads the configuration from OBJEXTRACT_* environment variables.
// Unset variables take their defaults; malformed numbers are reported to
// logger (when non-nil) and replaced by their defaults.
func Load(logger *log.Logger) *Config {
	return &Config{
		LogLevel:     strings.ToLower(getEnv("OBJEXTRACT_LOG_LEVEL", "info")),
		Threshold:    getEnvInt(logger, "OBJEXTRACT_THRESHOLD", 100),
		MinDimension: getEnvInt(logger, "OBJEXTRACT_MIN_DIMENSION", 10),
		OutputDir:    getEnv("OBJEXTRACT_OUTPUT_DIR", "."),
		S3Bucket:     getEnv("OBJEXTRACT_S3_BUCKET", ""),
		S3Prefix:     getEnv("OBJEXTRACT_S3_PREFIX", ""),
		S3Region:     getEnv("OBJEXTRACT_S3_REGION", "eu-west-2"),
	}
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(logger *log.Logger, key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		if logger != nil {
			logger.Printf("Ignoring %s=%q: not a number, using %d", key, val, defaultVal)
		}
		return defaultVal
	}
	return n
}
