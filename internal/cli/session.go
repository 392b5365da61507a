package cli

import (
	"context"
	"fmt"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/catalog"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/services"

	"github.com/spf13/cobra"
)

func loadStore(cmd *cobra.Command) (*catalog.Store, error) {
	path, _ := cmd.Flags().GetString("catalog")
	cat, err := catalog.FileSource{Path: path}.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return catalog.NewStore(cat), nil
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("package", "p", "", "package id (required)")
	cmd.Flags().Int("pax", 2, "number of passengers")
	cmd.Flags().String("tier", "Budget", "accommodation tier (Budget or Premium)")
	cmd.Flags().String("markup-kind", "percent", "markup kind (percent or fixed)")
	cmd.Flags().Float64("markup", 0, "markup value")
	cmd.Flags().String("start", "", "trip start date (YYYY-MM-DD)")
	cmd.Flags().String("guest", "", "guest name")
	_ = cmd.MarkFlagRequired("package")
}

// openSession builds a one-shot session from the command flags and returns its quote
// input.
func openSession(cmd *cobra.Command) (services.QuoteInput, error) {
	store, err := loadStore(cmd)
	if err != nil {
		return services.QuoteInput{}, err
	}
	pkgID, _ := cmd.Flags().GetString("package")
	pax, _ := cmd.Flags().GetInt("pax")
	tier, _ := cmd.Flags().GetString("tier")
	kind, _ := cmd.Flags().GetString("markup-kind")
	markup, _ := cmd.Flags().GetFloat64("markup")
	start, _ := cmd.Flags().GetString("start")
	guest, _ := cmd.Flags().GetString("guest")

	svc := services.NewSessionService(store)
	view, err := svc.Open("cli", pkgID, tier, pax)
	if err != nil {
		return services.QuoteInput{}, err
	}
	if _, err := svc.SetMarkup("cli", view.ID, kind, markup); err != nil {
		return services.QuoteInput{}, err
	}
	if _, err := svc.SetStartDate("cli", view.ID, start); err != nil {
		return services.QuoteInput{}, err
	}
	if _, err := svc.SetGuest("cli", view.ID, guest); err != nil {
		return services.QuoteInput{}, err
	}
	return svc.QuoteInput(view.ID)
}
