package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"diffimp/internal/render"
	"diffimp/internal/standards"
)

func calcCmd() *cobra.Command {
	var (
		layer    string
		standard string
		w        string
		gap      string
		s        string
		target   string
		tol      string
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate and grade differential impedance",
		Long: "Geometry defaults come from the config file. --standard takes target and\n" +
			"tolerance from a standard interface; explicit --target/--tol still win.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadSession(); err != nil {
				return err
			}

			in := appCtx.Config.GeometryInput()
			if standard != "" {
				std, ok := standards.Lookup(standard)
				if !ok {
					return fmt.Errorf("unknown standard %q (see diffimp standards)", standard)
				}
				p := std.Preset()
				in.Target, in.TolerancePct = p.Target, p.TolerancePct
			}
			// An explicit flag wins over config and standard, even when empty.
			flags := cmd.Flags()
			if flags.Changed("w") {
				in.W = w
			}
			if flags.Changed("gap") {
				in.Gap = gap
			}
			if flags.Changed("s") {
				in.S = s
			}
			if flags.Changed("target") {
				in.Target = target
			}
			if flags.Changed("tol") {
				in.TolerancePct = tol
			}

			if layer == "" {
				layer = appCtx.Stackup.Selected()
			}
			res, err := appCtx.Calculation.Calculate(cmd.Context(), appCtx.Stackup.Stackup(), layer, in)
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), render.Error(styles, err))
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Result(styles, res))
			return nil
		},
	}
	stackupFlag(cmd, false)
	cmd.Flags().IntVarP(&copperCount, "copper", "n", 0, "use a template stackup with this many copper layers")
	cmd.Flags().StringVarP(&layer, "layer", "l", "", "signal layer name (default: first signal layer)")
	cmd.Flags().StringVar(&standard, "standard", "", "take target and tolerance from a standard (e.g. usb2)")
	cmd.Flags().StringVar(&w, "w", "", "trace width W, mm")
	cmd.Flags().StringVar(&gap, "gap", "", "gap between traces, mm")
	cmd.Flags().StringVar(&s, "s", "", "space to lateral ground S, mm")
	cmd.Flags().StringVar(&target, "target", "", "target Zdiff, ohms")
	cmd.Flags().StringVar(&tol, "tol", "", "tolerance, ± percent")
	return cmd
}
