package organizer

import (
	"fmt"

	"github.com/arthur-debert/organizer/internal/version"
	"github.com/arthur-debert/organizer/pkg/config"
	"github.com/arthur-debert/organizer/pkg/errors"
	"github.com/arthur-debert/organizer/pkg/logging"
	"github.com/arthur-debert/organizer/pkg/organize"
	"github.com/arthur-debert/organizer/pkg/paths"
	"github.com/arthur-debert/organizer/pkg/relocator"
	"github.com/arthur-debert/organizer/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity    int
		output       string
		ignoreHidden bool
		dryRun       bool
		format       string
	)

	rootCmd := &cobra.Command{
		Use:     "organizer [INPUT_DIR]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd, format)
			if err != nil {
				return err
			}
			status, err := newStatusRenderer(cmd, format)
			if err != nil {
				return err
			}

			input := "."
			if len(args) == 1 {
				input = args[0]
			}
			opts := runOptions{
				input:     input,
				output:    output,
				dryRun:    dryRun,
				verbosity: verbosity,
			}
			if cmd.Flags().Changed("ignore-hidden") {
				opts.ignoreHidden = &ignoreHidden
			}
			return reportError(status, runOrganize(opts, renderer, status))
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		ui.FormatNames, cobra.ShellCompDirectiveNoFileComp))

	// Organize flags
	rootCmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	rootCmd.Flags().BoolVar(&ignoreHidden, "ignore-hidden", false, MsgFlagIgnoreHidden)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	_ = rootCmd.MarkFlagDirname("output")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

type runOptions struct {
	input        string
	output       string
	dryRun       bool
	verbosity    int
	ignoreHidden *bool
}

// runOrganize resolves the directories and configuration, then organizes the
// input directory, streaming outcomes to renderer.
func runOrganize(opts runOptions, renderer, status ui.Renderer) error {
	inputDir, err := paths.NormalizePath(opts.input)
	if err != nil {
		return err
	}
	outputDir := inputDir
	if opts.output != "" {
		if outputDir, err = paths.NormalizePath(opts.output); err != nil {
			return err
		}
	}

	overrides := map[string]interface{}{}
	if opts.ignoreHidden != nil {
		overrides["ignore_hidden"] = *opts.ignoreHidden
	}
	cfg, err := loadConfig(status, overrides, true)
	if err != nil {
		return err
	}

	runLogger := logging.WithFields(map[string]interface{}{
		"input":  inputDir,
		"output": outputDir,
		"dryRun": opts.dryRun,
	})
	runLogger.Debug().Msg("Starting organize run")
	notify(status, MsgOrganizing, inputDir, outputDir)

	result, err := organize.Run(organize.Options{
		InputDir:     inputDir,
		OutputDir:    outputDir,
		Rules:        cfg.Ruleset(),
		IgnoreHidden: cfg.IgnoreHidden,
		DryRun:       opts.dryRun,
		SkipNames:    cfg.SkipNames,
		OnOutcome: func(out relocator.Outcome) {
			if out.Kind == relocator.Ignored && opts.verbosity == 0 {
				return
			}
			if err := renderer.RenderOutcome(out); err != nil {
				log.Error().Err(err).Msg("Failed to render outcome")
			}
		},
	})
	if err != nil {
		return err
	}

	return renderer.RenderResult(result)
}

func newRenderer(cmd *cobra.Command, format string) (ui.Renderer, error) {
	f, err := ui.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(f, cmd.OutOrStdout())
}

// loadConfig returns the effective configuration. Unreadable or unparsable
// files fall back to the defaults with a warning; a configuration that parses
// but is invalid is an error. When create is set a missing config file is
// written with the defaults first.
func loadConfig(status ui.Renderer, overrides map[string]interface{}, create bool) (*config.Config, error) {
	p := paths.New()

	if create && config.UserFile(p) == "" {
		created, err := config.EnsureFile(p.ConfigFile())
		if err != nil {
			log.Warn().Err(err).Str("path", p.ConfigFile()).Msg("Could not create default configuration")
		} else if created {
			notify(status, MsgConfigCreated, p.ConfigFile())
		}
	}

	cfg, err := config.Load(p, overrides)
	if err == nil {
		return cfg, nil
	}
	if errors.IsErrorCode(err, errors.ErrConfigValid) {
		return nil, err
	}

	notify(status, MsgConfigFallback, err)
	cfg = config.Default()
	if v, ok := overrides["ignore_hidden"].(bool); ok {
		cfg.IgnoreHidden = v
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
