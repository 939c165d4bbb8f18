package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avivilloz/commonutils/internal/config"
	"github.com/avivilloz/commonutils/internal/constants"
	"github.com/avivilloz/commonutils/internal/fsutil"
	"github.com/avivilloz/commonutils/internal/logger"
)

// state is filled in before any subcommand runs.
type state struct {
	cfg *config.Config
	ops *fsutil.Ops
}

// Execute runs the command tree and exits with status 1 on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	var logFormat string
	st := &state{}

	cmd := &cobra.Command{
		Use:          constants.AppName,
		Short:        "String cleanup and filesystem helpers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFormat != "" {
				cfg.LogFormat = logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			l := logger.New(logger.Config{
				Level:  cfg.LogLevel,
				Format: cfg.LogFormat,
				Output: cmd.ErrOrStderr(),
			})
			logger.SetDefault(l)

			st.cfg = cfg
			st.ops = fsutil.New(l)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides "+constants.EnvLogLevel+")")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json (overrides "+constants.EnvLogFormat+")")

	cmd.AddCommand(textCommands(st)...)
	cmd.AddCommand(fsCommands(st)...)
	return cmd
}

// inputText joins args with single spaces, or reads stdin when no args are
// given. One trailing line break from stdin is dropped.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
