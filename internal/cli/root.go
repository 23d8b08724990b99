// Package cli wires the command line surface: flag parsing, configuration,
// logging, and the scan itself.
package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solomon-platform/gorm-postgres-enforcer/internal/config"
	"github.com/solomon-platform/gorm-postgres-enforcer/internal/pkg/logger"
	"github.com/solomon-platform/gorm-postgres-enforcer/internal/report"
	"github.com/solomon-platform/gorm-postgres-enforcer/internal/scanner"

	apperrors "github.com/solomon-platform/gorm-postgres-enforcer/internal/pkg/errors"
)

const (
	toolName = "gorm-postgres-enforcer"
	version  = "0.1.0"
)

// NewRootCommand builds the command. Flags are bound per invocation so
// tests can execute fresh commands without shared state.
func NewRootCommand() *cobra.Command {
	var (
		outputFormat string
		logLevel     string
		logFormat    string
	)

	cmd := &cobra.Command{
		Use:   toolName + " [root-path]",
		Short: "Static guardrail that blocks raw database/sql usage",
		Long: `gorm-postgres-enforcer scans a Go source tree for raw database/sql
usage that bypasses GORM: importing database/sql, calling the Query/Exec/
Prepare API families, and building SQL strings with fmt.Sprintf.

Violations print to stdout; logs go to stderr. A line carrying the marker
"gorm-postgres-enforcer: allow-raw-sql" is exempt.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags win over config file and environment.
			if cmd.Flags().Changed("output") {
				cfg.Output.Format = outputFormat
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format = logFormat
			}

			switch cfg.Output.Format {
			case report.FormatText, report.FormatJSON, report.FormatSARIF:
			default:
				return apperrors.OutputInvalid(cfg.Output.Format)
			}

			if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			runID := uuid.NewString()
			log := logger.With(zap.String("run_id", runID))
			log.Info("starting scan",
				zap.String("root", root),
				zap.String("output", cfg.Output.Format),
			)

			s, err := scanner.New(root, log)
			if err != nil {
				return err
			}

			violations, err := s.Run(cmd.Context())
			if err != nil {
				return err
			}

			rep := report.Report{
				Tool:       toolName,
				Version:    version,
				RunID:      runID,
				Root:       s.Root(),
				Violations: violations,
			}
			if err := report.Write(cmd.OutOrStdout(), cfg.Output.Format, rep); err != nil {
				return err
			}

			log.Info("scan finished", zap.Int("violations", len(violations)))
			if len(violations) > 0 {
				return apperrors.ViolationsFound(len(violations))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "report format: text, json, or sarif")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, or error")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "log encoding: console or json")

	return cmd
}

// Execute runs the command with process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}
