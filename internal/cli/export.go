package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/services"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the itinerary PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openSession(cmd)
			if err != nil {
				return err
			}
			pdf, filename, err := services.DocsService{RequestID: "cli"}.GenerateItineraryPDF(in)
			if err != nil {
				return fmt.Errorf("failed to render pdf: %w", err)
			}

			dir, _ := cmd.Flags().GetString("dir")
			path := filepath.Join(dir, filename)
			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			printSuccess(cmd.OutOrStdout(), "wrote "+path)
			return nil
		},
	}
	addSessionFlags(cmd)
	cmd.Flags().String("dir", ".", "directory for the PDF")
	return cmd
}
