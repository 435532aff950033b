package commands

import (
	"github.com/spf13/cobra"

	"diffimp/internal/shell"
)

func shellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive stackup editing and calculation session",
		Long:  "Reads commands from stdin; type help for the list.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadSession(); err != nil {
				return err
			}
			sess := shell.New(
				appCtx.Stackup,
				appCtx.Calculation,
				appCtx.Config.GeometryInput(),
				cmd.OutOrStdout(),
				appCtx.Log.Named("shell"),
			)
			return sess.Run(cmd.Context(), cmd.InOrStdin())
		},
	}
	stackupFlag(cmd, false)
	return cmd
}
