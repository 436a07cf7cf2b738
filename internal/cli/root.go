// Package cli wires the styledot commands together. Command logic stays
// thin here: loading and matching live in pkg/document and pkg/styles,
// rendering lives in pkg/ui.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/styledot/docs"
	"github.com/arthur-debert/styledot/internal/version"
	"github.com/arthur-debert/styledot/pkg/cobrax/topics"
	"github.com/arthur-debert/styledot/pkg/config"
	"github.com/arthur-debert/styledot/pkg/document"
	"github.com/arthur-debert/styledot/pkg/errors"
	"github.com/arthur-debert/styledot/pkg/logging"
	"github.com/arthur-debert/styledot/pkg/paths"
	"github.com/arthur-debert/styledot/pkg/styles"
	"github.com/arthur-debert/styledot/pkg/ui"
)

// app holds the global flag values and the loaded configuration shared
// by every command.
type app struct {
	verbosity  int
	configFile string
	format     string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "styledot",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{ConfigFile: a.configFile})
			if err != nil {
				// Logging still has to come up so the failure is visible
				logging.SetupLogger(a.verbosity)
				return err
			}
			a.cfg = cfg
			logging.SetupLoggerWithOptions(a.verbosity, logging.Options{
				NoColor:  !cfg.Output.Color,
				FileSink: cfg.Logging.File,
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "", MsgFlagFormat)

	// Disable automatic help command (the topics system installs its own)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(newResolveCmd(a))
	rootCmd.AddCommand(newRulesCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help from the embedded docs tree
	if err := topics.InitializeWithOptions(rootCmd, docs.Help(), topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topics.NewGlamourRenderer(),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// renderer builds the output renderer for a command, honoring the
// --format flag, then the configured default, then terminal detection.
func (a *app) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	name := a.format
	if name == "" {
		name = a.cfg.Output.Format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	if format == ui.FormatAuto && !a.cfg.Output.Color {
		format = ui.FormatText
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// loadSheet locates a stylesheet by name or path and loads it into a
// sheet configured per the styles section of the config. It returns the
// resolved file path alongside the sheet for reporting.
func (a *app) loadSheet(name string) (*styles.Sheet[interface{}], string, error) {
	done := logging.LogOperationStart(logging.GetLogger("cli"), "load-stylesheet")
	defer done()

	path, err := paths.FindStylesheet(name)
	if err != nil {
		return nil, "", err
	}
	sheet, err := document.LoadFile(path, a.cfg.Styles.SheetOptions()...)
	if err != nil {
		return nil, "", fmt.Errorf(MsgErrLoadSheet, err)
	}
	return sheet, path, nil
}
