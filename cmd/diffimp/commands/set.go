package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"diffimp/internal/domain"
	"diffimp/internal/render"
)

// set <#> <field> [value]: edit one layer of a stackup file in place.
func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <layer #> <name|class|thickness|er> [value]",
		Short: "Edit one layer field and write the file back",
		Long: "Layer numbers are 1-based as printed by show. Numbers accept '.' or ','\n" +
			"and an omitted value clears the field.",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return &domain.InputValidationError{Field: "layer #", Reason: fmt.Sprintf("%q is not a number", args[0])}
			}
			value := ""
			if len(args) == 3 {
				value = args[2]
			}

			if err := loadSession(); err != nil {
				return err
			}
			if err := appCtx.Stackup.SetField(n-1, args[1], value); err != nil {
				return err
			}
			if err := appCtx.Stackup.Export(stackupPath); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Stackup(styles, appCtx.Stackup.Stackup(), ""))
			return nil
		},
	}
	stackupFlag(cmd, true)
	return cmd
}
