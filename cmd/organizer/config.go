package organizer

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/arthur-debert/organizer/pkg/config"
	"github.com/arthur-debert/organizer/pkg/errors"
	"github.com/arthur-debert/organizer/pkg/logging"
	"github.com/arthur-debert/organizer/pkg/paths"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := paths.New()

			path := config.UserFile(p)
			if path == "" {
				path = p.ConfigFile()
				if _, err := config.EnsureFile(path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), MsgConfigCreated+"\n", path)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), MsgOpeningEditor+"\n", path)
			if err := openInEditor(cmd, path); err != nil {
				return err
			}

			// Report problems right away rather than on the next run.
			if _, err := config.Load(p, nil); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), MsgConfigStillBad, err)
			}
			return nil
		},
	}

	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			p := paths.New()
			path := config.UserFile(p)
			if path == "" {
				path = p.ConfigFile()
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := paths.New().ConfigFile()
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten+"\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			cfg, err := config.Load(paths.New(), nil)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			if cfg.Source != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n", cfg.Source)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)

	return cmd
}

// editorCommand returns the program and arguments used to open path.
func editorCommand(path string) ([]string, error) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return append(fields, path), nil
		}
	}

	switch runtime.GOOS {
	case "darwin":
		return []string{"open", path}, nil
	case "windows":
		return []string{"cmd", "/c", "start", "", path}, nil
	default:
		if _, err := exec.LookPath("xdg-open"); err == nil {
			return []string{"xdg-open", path}, nil
		}
	}
	return nil, errors.New(errors.ErrEditor, MsgErrNoEditor)
}

func openInEditor(cmd *cobra.Command, path string) error {
	argv, err := editorCommand(path)
	if err != nil {
		return err
	}
	logging.LogCommand(argv[0], argv[1:])

	editor := exec.Command(argv[0], argv[1:]...)
	editor.Stdin = cmd.InOrStdin()
	editor.Stdout = cmd.OutOrStdout()
	editor.Stderr = cmd.ErrOrStderr()
	if err := editor.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrEditor, "editor %s failed", argv[0]).
			WithDetail("path", path)
	}
	return nil
}
