// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/budged/internal/config"
	"fjacquet/budged/internal/container"
	"fjacquet/budged/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
}

var (
	// AppContainer holds the wired dependencies. Commands read it through
	// GetContainer; tests may set it directly.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "budged",
		Short: "Analyze ForteBank card statements by merchant category.",
		Long: `budged parses ForteBank PDF card statements, classifies every transaction
by its merchant category code (MCC) and reports spending per category or per
category group.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initContainer,
	}

	// SharedFlags are the persistent flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default: ./config.yaml, ./.budged/config.yaml or $HOME/.budged/config.yaml)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text, json)")
}

// initContainer loads the configuration, applies flag overrides and wires the
// container. An already populated AppContainer is kept.
func initContainer(cmd *cobra.Command, args []string) error {
	if AppContainer != nil {
		return nil
	}

	config.LoadEnv()

	cfg, err := config.LoadConfig(SharedFlags.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if SharedFlags.LogFormat != "" {
		cfg.Log.Format = SharedFlags.LogFormat
	}

	logger := config.ConfigureLoggingFromConfig(cfg)
	logging.SetLogger(logger)

	c, err := container.NewContainer(cfg, container.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	AppContainer = c
	return nil
}

// GetContainer returns the application container or an error when the root
// command has not initialized it.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application container not initialized")
	}
	return AppContainer, nil
}

// GetLogger returns the container's logger, or the process default when no
// container exists yet.
func GetLogger() logging.Logger {
	if AppContainer != nil {
		return AppContainer.GetLogger()
	}
	return logging.GetLogger()
}
