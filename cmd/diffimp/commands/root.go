package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"diffimp/internal/app"
	"diffimp/internal/domain"
	"diffimp/internal/render"
)

var (
	configPath string
	verbose    bool
	appCtx     *app.Wire
	styles     = render.DefaultStyles()

	stackupPath string
	copperCount int
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "diffimp",
		Short:        "Differential-pair impedance calculator for PCB stackups",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				p, err := app.DefaultPath()
				if err != nil {
					return err
				}
				configPath = p
			}
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}

			logger, err := app.NewLogger(cfg.Logging.Level, verbose)
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg, logger)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.diffimp/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		generateCmd(),
		showCmd(),
		layersCmd(),
		setCmd(),
		importCmd(),
		calcCmd(),
		fingerprintCmd(),
		standardsCmd(),
		configCmd(),
		shellCmd(),
	)
	return root
}

// stackupFlag registers --stackup on cmd. required makes it mandatory.
func stackupFlag(cmd *cobra.Command, required bool) {
	cmd.Flags().StringVar(&stackupPath, "stackup", "", "stackup CSV file")
	if required {
		_ = cmd.MarkFlagRequired("stackup")
	}
}

// readStackup loads --stackup straight from the store, leaving the session
// untouched.
func readStackup() (domain.Stackup, error) {
	s, err := appCtx.Store.LoadStackup(stackupPath)
	if err != nil {
		return domain.Stackup{}, err
	}
	appCtx.Log.Debug("read stackup", zap.String("path", stackupPath), zap.Int("copper", s.CopperCount))
	return s, nil
}

// loadSession replaces the session stackup with --stackup, or a template of
// --copper layers, when either was given.
func loadSession() error {
	switch {
	case stackupPath != "":
		return appCtx.Stackup.Load(stackupPath)
	case copperCount > 0:
		return appCtx.Stackup.Regenerate(copperCount)
	}
	return nil
}
