package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"diffimp/internal/render"
)

func generateCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a template stackup for a copper layer count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := copperCount
			if n == 0 {
				n = appCtx.Config.DefaultCopperCount
			}
			if err := appCtx.Stackup.Regenerate(n); err != nil {
				return err
			}
			if out != "" {
				if err := appCtx.Stackup.Export(out); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d-layer stackup to %s\n", n, out)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Stackup(styles, appCtx.Stackup.Stackup(), appCtx.Stackup.Selected()))
			return nil
		},
	}
	cmd.Flags().IntVarP(&copperCount, "copper", "n", 0, "copper layer count (2, 4, ... 16)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the stackup to this CSV file")
	return cmd
}
