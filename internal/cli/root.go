// Package cli wraps internal/app.Service in cobra commands, kept
// close to the teacher's internal/cli/root.go wiring (cobra + viper +
// zerolog, PersistentPreRunE config/logging setup, errbuilder-coded
// exit statuses) since this is pure ambient stack (see DESIGN.md).
package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"buildspec/internal/app"
)

var version = "dev"

const envPrefix = "BUILDSPEC"

type RootConfig struct {
	ConfigFile     string
	LogLevel       string
	RecipeFile     string
	CompilerConfig string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "buildspec",
		Short:   "Package build spec parser, normalizer, and concretizer",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().StringVar(&cfg.RecipeFile, "recipes", "recipes.yaml", "Path to the PackageRepo recipe file")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("recipes", cmd.PersistentFlags().Lookup("recipes"))

	cmd.AddCommand(newParseCommand(&cfg))
	cmd.AddCommand(newNormalizeCommand(&cfg))
	cmd.AddCommand(newConcretizeCommand(&cfg))
	cmd.AddCommand(newPrintCommand(&cfg))
	return cmd
}

func newService(cfg *RootConfig) (app.Service, error) {
	recipePath := viper.GetString("recipes")
	if recipePath == "" {
		recipePath = cfg.RecipeFile
	}
	compilers := map[string][]string{
		"gcc":   {"9.4.0", "11.2.0", "12.1.0"},
		"clang": {"14.0.0", "15.0.0"},
	}
	return app.NewFileBackedService(recipePath, compilers)
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("buildspec")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/buildspec")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	switch code {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition:
		return 4
	case errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeNotFound:
		return 5
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
