package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"diffimp/internal/render"
	"diffimp/internal/standards"
)

func standardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standards",
		Short: "List standard interface differential impedances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), render.Standards(styles, standards.All()))
			return nil
		},
	}
}
