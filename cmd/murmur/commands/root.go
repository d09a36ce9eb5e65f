package commands

import (
	"github.com/spf13/cobra"

	"murmur/internal/app"
)

var (
	configPath string

	cfg    app.Config
	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "murmur",
		Short: "Private pub/sub messaging core: event store and gift-wrap envelopes",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = app.Load(configPath)
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (optional)")

	root.AddCommand(keygenCmd(), wrapCmd(), unwrapCmd(), ingestCmd())
	return root.Execute()
}
