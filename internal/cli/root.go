package cli

import (
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion overrides the version printed by --version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// NewRootCmd builds the tripctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "tripctl",
		Version: version,
		Short:   "Price and quote itineraries from a catalog file",
		Long: `tripctl runs the itinerary engine against a JSON catalog without the HTTP service.

It lists browse estimates, renders the guest quotation text and writes the PDF export.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().String("catalog", "catalog.json", "path to the catalog JSON file")

	root.AddCommand(newEstimateCmd(), newQuoteCmd(), newExportCmd())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
