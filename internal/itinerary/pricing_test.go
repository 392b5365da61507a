package itinerary

import (
	"testing"

	"github.com/hiraniavnish-droid/TTE-Final-sub000/internal/domain/models"
)

func TestScenarioEndToEndPricing(t *testing.T) {
	cat := kutchCatalog()
	pkg := kutchPackage()
	store := NewOverrideStore(pkg.Days, 4)

	fleet := store.Fleet()
	if len(fleet) != 1 || fleet[0].Vehicle != VehicleSedan || fleet[0].Count != 1 {
		t.Fatalf("expected one sedan for 4 pax, got %+v", fleet)
	}

	b := ComputePackagePrice(pkg, models.TierBudget, store, fleet, cat)
	if b.TransportCost != 10800 {
		t.Fatalf("transport = %d, want 10800", b.TransportCost)
	}
	if b.HotelCost != 18000 {
		t.Fatalf("hotel = %d, want 18000", b.HotelCost)
	}
	if b.NetTotal != 28800 {
		t.Fatalf("net = %d, want 28800", b.NetTotal)
	}

	res := Price(pkg, models.TierBudget, store, cat, MarkupRule{Kind: MarkupPercent, Value: 0}, 0)
	if res.FinalTotal != 28800 || res.PerPerson != 7200 {
		t.Fatalf("final=%d perPerson=%d, want 28800/7200", res.FinalTotal, res.PerPerson)
	}
	if len(res.Nights) != 3 || res.Nights[0].Rooms != 2 || res.Nights[0].Cost != 6800 {
		t.Fatalf("unexpected nights: %+v", res.Nights)
	}
}

func TestZeroMarkupIsNoop(t *testing.T) {
	for _, net := range []int64{0, 1, 28800, 123457, -500} {
		if got := ApplyMarkup(net, MarkupRule{Kind: MarkupPercent}); got != net {
			t.Fatalf("percent 0 on %d = %d", net, got)
		}
		if got := ApplyMarkup(net, MarkupRule{Kind: MarkupFixed}); got != net {
			t.Fatalf("fixed 0 on %d = %d", net, got)
		}
	}
}

func TestApplyMarkup(t *testing.T) {
	cases := []struct {
		net  int64
		rule MarkupRule
		want int64
	}{
		{28800, MarkupRule{Kind: MarkupPercent, Value: 10}, 31680},
		{28800, MarkupRule{Kind: MarkupPercent, Value: 12.5}, 32400},
		{28800, MarkupRule{Kind: MarkupFixed, Value: 2000}, 30800},
		{28800, MarkupRule{Kind: MarkupFixed, Value: -800}, 28000},
		{28800, MarkupRule{Kind: MarkupPercent, Value: -10}, 25920},
		{28800, MarkupRule{Kind: "bogus", Value: 50}, 28800},
	}
	for _, tc := range cases {
		if got := ApplyMarkup(tc.net, tc.rule); got != tc.want {
			t.Fatalf("ApplyMarkup(%d, %+v) = %d, want %d", tc.net, tc.rule, got, tc.want)
		}
	}
}

func TestPerPersonGuardsZeroPax(t *testing.T) {
	if got := PerPerson(28800, 0); got != 0 {
		t.Fatalf("PerPerson with 0 pax = %d", got)
	}
	if got := PerPerson(28800, -3); got != 0 {
		t.Fatalf("PerPerson with negative pax = %d", got)
	}
	if got := PerPerson(10000, 3); got != 3333 {
		t.Fatalf("PerPerson(10000, 3) = %d", got)
	}
}

func TestUnknownVehicleAndMissingHotelsCostNothing(t *testing.T) {
	cat := kutchCatalog()
	pkg := models.Package{ID: "x", Days: 2, Route: []string{"Bhuj", "Nowhere"}}
	store := NewOverrideStore(pkg.Days, 2)
	if err := store.ReplaceFleet([]models.FleetItem{{Vehicle: "Helicopter", Count: 1}}); err != nil {
		t.Fatalf("replace fleet: %v", err)
	}
	res := Price(pkg, models.TierBudget, store, cat, MarkupRule{Kind: MarkupFixed}, 0)
	if res.TransportCost != 0 {
		t.Fatalf("unknown vehicle should cost 0, got %d", res.TransportCost)
	}
	if res.HotelCost != 2800 {
		t.Fatalf("hotel = %d, want 2800 for Bhuj only", res.HotelCost)
	}
	if res.Nights[1].Rooms != 0 || res.Nights[1].Cost != 0 {
		t.Fatalf("transit night should be empty, got %+v", res.Nights[1])
	}
}

func TestPricingUsesOverrideRoomCapacity(t *testing.T) {
	cat := kutchCatalog()
	pkg := kutchPackage()
	store := NewOverrideStore(pkg.Days, 5)

	ilark, _ := cat.Hotel("Bhuj", "Hotel Ilark")
	if err := store.SetHotel(1, ilark, "Quad Room"); err != nil {
		t.Fatalf("set hotel: %v", err)
	}
	b := ComputePackagePrice(pkg, models.TierBudget, store, nil, cat)
	// 5 pax: Dhordo 3 rooms x 3400, Bhuj quad 2 rooms x 5000, Bhuj deluxe 3 rooms x 2800
	if want := int64(3*3400 + 2*5000 + 3*2800); b.HotelCost != want {
		t.Fatalf("hotel = %d, want %d", b.HotelCost, want)
	}
	if b.TransportCost != 0 {
		t.Fatalf("nil fleet should cost nothing, got %d", b.TransportCost)
	}
}

func TestEstimateBrowsePrice(t *testing.T) {
	cat := kutchCatalog()
	pkg := kutchPackage()

	double := EstimateBrowsePrice(pkg, models.TierBudget, 4, SharingDouble, cat, 1000)
	if !double.Approximate {
		t.Fatalf("browse estimate must be flagged approximate")
	}
	if double.HotelCost != 18000 {
		t.Fatalf("double hotel = %d, want 18000", double.HotelCost)
	}
	if double.TransportCost != 4*1000*3 {
		t.Fatalf("transport = %d", double.TransportCost)
	}
	if double.PerPerson != (18000+12000)/4 {
		t.Fatalf("per person = %d", double.PerPerson)
	}

	quad := EstimateBrowsePrice(pkg, models.TierBudget, 4, SharingQuad, cat, 1000)
	// Dhordo family bhunga 6000 + Bhuj quad 5000 x 2
	if quad.HotelCost != 16000 {
		t.Fatalf("quad hotel = %d, want 16000", quad.HotelCost)
	}

	// Premium Dhordo has no quad room, falls back to the first room type
	prem := EstimateBrowsePrice(pkg, models.TierPremium, 4, SharingQuad, cat, 0)
	if want := int64(2*9500 + 2*(2*7200)); prem.HotelCost != want {
		t.Fatalf("premium quad hotel = %d, want %d", prem.HotelCost, want)
	}
	if prem.TransportCost != 4*DefaultSeatRatePerDay*3 {
		t.Fatalf("default seat rate not applied: %d", prem.TransportCost)
	}

	zero := EstimateBrowsePrice(pkg, models.TierBudget, 0, SharingDouble, cat, 1000)
	if zero.PerPerson != 0 || zero.TransportCost != 0 {
		t.Fatalf("zero pax estimate = %+v", zero)
	}
}

func TestParseMarkupKindAndSharing(t *testing.T) {
	if k, ok := ParseMarkupKind("Percent"); !ok || k != MarkupPercent {
		t.Fatalf("percent not parsed")
	}
	if k, ok := ParseMarkupKind("flat"); !ok || k != MarkupFixed {
		t.Fatalf("flat not parsed")
	}
	if _, ok := ParseMarkupKind("ratio"); ok {
		t.Fatalf("ratio should be rejected")
	}
	if ParseSharingMode("quad") != SharingQuad || ParseSharingMode("") != SharingDouble {
		t.Fatalf("sharing mode parse mismatch")
	}
}
