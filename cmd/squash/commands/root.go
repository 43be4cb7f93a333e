package commands

import (
	"github.com/spf13/cobra"

	"squash/internal/app"
)

var (
	verbose bool
	appCtx  *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:          "squash",
		Short:        "A collection of compression algorithms behind one CLI",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			appCtx, err = app.New(app.Config{Verbose: verbose})
			return err
		},
	}

	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	root.AddCommand(compressCmd(), decompressCmd(), inspectCmd(), algorithmsCmd(), benchCmd())
	return root.Execute()
}
