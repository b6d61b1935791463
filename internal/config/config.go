package config

import (
	"os"
	"path/filepath"
	"sync"

	"fjacquet/budged/internal/logging"

	"github.com/joho/godotenv"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file in the current or
// parent directory, once per process. Variables already set are kept.
func LoadEnv() {
	once.Do(func() {
		loadEnvFrom(".", logging.GetLogger())
	})
}

func loadEnvFrom(dir string, logger logging.Logger) string {
	envFile := filepath.Join(dir, ".env")
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join(dir, "..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			logger.Debug("No .env file found, using environment variables")
			return ""
		}
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.WithError(err).Warn("Error loading .env file")
		return ""
	}
	logger.Debug("Loaded environment variables", logging.Field{Key: logging.FieldFile, Value: envFile})
	return envFile
}
