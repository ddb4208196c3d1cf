// Package cli implements the optionmenu command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inappwebview/optionmenu/internal/itemfile"
	"github.com/inappwebview/optionmenu/internal/samples"
	"github.com/inappwebview/optionmenu/pkg/optionmenu"
)

// settings holds the flags shared by every subcommand.
type settings struct {
	configPath string
	lang       string
	logLevel   string

	config  optionmenu.Config
	options optionmenu.Options
}

// Session gives subcommands the items and options resolved from the
// persistent flags. It is ready once the command's RunE is called.
type Session interface {
	Items(args []string) ([]optionmenu.MenuItem, error)
	Options() optionmenu.Options
}

// NewRootCmd builds the command tree. extra adds subcommands that live
// outside this package, such as the SDL demo.
func NewRootCmd(extra ...func(Session) *cobra.Command) *cobra.Command {
	s := &settings{}

	root := &cobra.Command{
		Use:   "optionmenu",
		Short: "Render and exercise the <select> option menu popup",
		Long: `Render and exercise the <select> option menu popup outside a browser.

Items come from a YAML or TOML file, or from the built-in sample list
translated with --lang. Metrics and colors come from the TOML file named
by --config or OPTIONMENU_CONFIG.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			optionmenu.CloseLogging()
		},
	}

	root.PersistentFlags().StringVarP(&s.configPath, "config", "c", "", "TOML config file (defaults to $OPTIONMENU_CONFIG)")
	root.PersistentFlags().StringVar(&s.lang, "lang", "en", "language of the built-in sample items (BCP 47)")
	root.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newSnapshotCmd(s), newLanguagesCmd())
	for _, newCmd := range extra {
		root.AddCommand(newCmd(s))
	}

	return root
}

// Execute runs the root command.
func Execute(extra ...func(Session) *cobra.Command) error {
	return NewRootCmd(extra...).Execute()
}

func (s *settings) load() error {
	var err error
	if s.configPath != "" {
		s.config, err = optionmenu.LoadConfig(s.configPath)
	} else {
		s.config, err = optionmenu.LoadConfigFromEnv()
	}
	if err != nil {
		return err
	}

	logOpts := s.config.Log
	if s.logLevel != "" {
		logOpts.Level = s.logLevel
	}
	optionmenu.InitLogging(logOpts)

	s.options, err = s.config.Options()
	return err
}

// Options returns the options resolved from the config file.
func (s *settings) Options() optionmenu.Options {
	return s.options
}

// Items loads the file named in args, or the sample list when args is empty.
func (s *settings) Items(args []string) ([]optionmenu.MenuItem, error) {
	if len(args) > 0 {
		return itemfile.Load(args[0])
	}

	items, tag, err := samples.Items(s.lang)
	if err != nil {
		return nil, err
	}
	optionmenu.GetLogger().Debug("Using sample items", "language", tag.String())
	return items, nil
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages of the built-in sample items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := samples.Languages()
			if err != nil {
				return err
			}
			for _, tag := range tags {
				fmt.Fprintln(cmd.OutOrStdout(), tag.String())
			}
			return nil
		},
	}
}
