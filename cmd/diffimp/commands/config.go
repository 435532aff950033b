package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func configCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: "Prints the defaults merged with the config file as YAML. --write saves\n" +
			"them to the config file, creating it when missing.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write {
				if err := appCtx.Config.Save(configPath); err != nil {
					return err
				}
				appCtx.Log.Info("config written", zap.String("path", configPath))
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
				return nil
			}
			data, err := yaml.Marshal(appCtx.Config)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "save the effective configuration to the config file")
	return cmd
}
