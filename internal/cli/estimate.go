package cli

import (
	"fmt"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/itinerary"
	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/utils"

	"github.com/spf13/cobra"
)

func newEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "List browse estimates for every package",
		Long: `List the approximate gallery price of every package in the catalog.

Estimates ignore edits and use a flat per-seat transport rate, so they are never quoted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			rawTier, _ := cmd.Flags().GetString("tier")
			tier, ok := models.ParseTier(rawTier)
			if !ok {
				return fmt.Errorf("unknown tier %q", rawTier)
			}
			pax, _ := cmd.Flags().GetInt("pax")
			if pax < 0 {
				return fmt.Errorf("pax must not be negative")
			}
			sharingRaw, _ := cmd.Flags().GetString("sharing")
			seatRate, _ := cmd.Flags().GetInt64("seat-rate")
			sharing := itinerary.ParseSharingMode(sharingRaw)

			out := cmd.OutOrStdout()
			cat := store.Current()
			printSection(out, fmt.Sprintf("Estimates (%s, %d pax, %s sharing)", tier, pax, sharing))
			if len(cat.Packages) == 0 {
				printDim(out, "  no packages in catalog")
				return nil
			}
			for _, p := range cat.Packages {
				est := itinerary.EstimateBrowsePrice(p, tier, pax, sharing, cat, seatRate)
				printLabelValue(out, p.Name, fmt.Sprintf("%s total, %s per person (%d days)",
					utils.FormatINR(est.Total), utils.FormatINR(est.PerPerson), p.Days))
			}
			return nil
		},
	}
	cmd.Flags().String("tier", "Budget", "accommodation tier (Budget or Premium)")
	cmd.Flags().Int("pax", 2, "number of passengers")
	cmd.Flags().String("sharing", "Double", "room sharing (Double or Quad)")
	cmd.Flags().Int64("seat-rate", itinerary.DefaultSeatRatePerDay, "per-seat daily transport rate")
	return cmd
}
