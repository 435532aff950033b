package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"diffimp/internal/digest"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the stackup digest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readStackup()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", digest.Stackup(s))
			return nil
		},
	}
	stackupFlag(cmd, true)
	return cmd
}
