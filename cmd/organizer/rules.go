package organizer

import (
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: MsgRulesShort,
		Long:  MsgRulesLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			renderer, err := newRenderer(cmd, format)
			if err != nil {
				return err
			}
			status, err := newStatusRenderer(cmd, format)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(status, nil, false)
			if err != nil {
				return reportError(status, err)
			}
			return renderer.RenderRules(cfg.Ruleset())
		},
	}
}
