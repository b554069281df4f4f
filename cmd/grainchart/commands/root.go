package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iafilius/GrainEye/src/applog"
	"github.com/iafilius/GrainEye/src/config"
)

var ErrInvalidArgument = errors.New("invalid argument")

const rootDesc = `grainchart renders grain-size distribution charts and summaries
without the desktop client.

Datasets are JSON-lines files with one {"diameter_mm":0.25,"count":5}
object per line; without --dataset the built-in reference distribution
is used.
`

// RootArgs holds the persistent flags shared by all subcommands.
type RootArgs struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

// Config returns the loaded configuration; valid after PersistentPreRunE.
func (a *RootArgs) Config() *config.Config { return a.cfg }

// NewRootCmd returns the grainchart command tree.
func NewRootCmd() *cobra.Command {
	args := &RootArgs{}

	cmd := &cobra.Command{
		Use:           "grainchart",
		Short:         "Render grain-size charts and summaries",
		Long:          rootDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
	}

	cmd.PersistentFlags().StringVar(&args.configPath, "config", "", "Path to graineye.yaml")
	cmd.PersistentFlags().StringVar(&args.logLevel, "log_level", "", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&args.logFormat, "log_format", "", "Set the log format (text, json)")
	must(cmd.MarkPersistentFlagFilename("config", "yaml", "yml"))

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		applog.SetOutput(cc.ErrOrStderr())

		cfg, err := config.Load(args.configPath)
		if err != nil {
			return err
		}
		if args.logLevel != "" {
			cfg.Logging.Level = args.logLevel
		}
		if args.logFormat != "" {
			cfg.Logging.Format = args.logFormat
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		applog.SetLogLevel(cfg.Logging.Level)
		applog.SetLogFormat(cfg.Logging.Format)
		args.cfg = cfg
		return nil
	}

	cmd.AddCommand(
		NewRenderCmd(args),
		NewSummaryCmd(args),
		NewVersionCmd(),
	)
	return cmd
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
