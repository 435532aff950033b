package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"diffimp/internal/render"
)

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a stackup as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readStackup()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Stackup(styles, s, ""))
			return nil
		},
	}
	stackupFlag(cmd, true)
	return cmd
}

func layersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layers",
		Short: "List the signal layers of a stackup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadSession(); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.SignalLayers(styles, appCtx.Stackup.SignalLayers(), appCtx.Stackup.Selected()))
			return nil
		},
	}
	stackupFlag(cmd, true)
	return cmd
}
