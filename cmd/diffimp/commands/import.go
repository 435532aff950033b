package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// import <source.csv>: copy layer values into an existing stackup file.
func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <source.csv>",
		Short: "Copy layer values from another CSV with the same number of rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadSession(); err != nil {
				return err
			}
			if err := appCtx.Stackup.Import(args[0]); err != nil {
				return err
			}
			if err := appCtx.Stackup.Export(stackupPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s into %s\n", args[0], stackupPath)
			return nil
		},
	}
	stackupFlag(cmd, true)
	return cmd
}
