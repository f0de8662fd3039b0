package app_test

import (
	"testing"

	"points_hotel/internal/app"
	"points_hotel/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func fixture() []domain.Hotel {
	return []domain.Hotel{
		{Brand: "Sheraton", Hotel: "Sheraton Grand Bangalore", City: "Bengaluru", State: "Karnataka", AvgPtsNight: 30000, DistanceKmFromAirport: 38.2},
		{Brand: "Westin", Hotel: "The Westin Hyderabad Mindspace", City: "Hyderabad", State: "Telangana", AvgPtsNight: 25000, DistanceKmFromAirport: 31.4},
		{Brand: "Courtyard", Hotel: "Courtyard Hyderabad", City: "Hyderabad", State: "Telangana", AvgPtsNight: 25000, DistanceKmFromAirport: 0}, // distance unknown
		{Brand: "JW Marriott", Hotel: "JW Marriott New Delhi Aerocity", City: "New Delhi", State: "Delhi", AvgPtsNight: 40000, DistanceKmFromAirport: 3.1},
		{Brand: "Fairfield", Hotel: "Fairfield by Marriott Pune", City: "Pune", State: "Maharashtra", AvgPtsNight: 12500, DistanceKmFromAirport: 9.8},
	}
}

func TestApplyFilter_EmptyMatchesEverything(t *testing.T) {
	rs := fixture()
	out := app.ApplyFilter(domain.Filter{}, rs)
	if len(out) != len(rs) {
		t.Fatalf("empty filter: got %d records, want %d", len(out), len(rs))
	}
}

func TestApplyFilter_NeverGrows(t *testing.T) {
	rs := fixture()
	filters := []domain.Filter{
		{},
		{City: ptr("hyderabad")},
		{Brand: ptr("westin"), MaxPtsNight: ptr(26000.0)},
		{State: ptr("telangana"), MaxDistanceKm: ptr(50.0)},
	}
	for _, f := range filters {
		if got := len(app.ApplyFilter(f, rs)); got > len(rs) {
			t.Fatalf("filter %+v grew the set: %d > %d", f, got, len(rs))
		}
	}
}

func TestApplyFilter_TokenAND(t *testing.T) {
	out := app.ApplyFilter(domain.Filter{City: ptr("new delhi")}, fixture())
	if len(out) != 1 || out[0].City != "New Delhi" {
		t.Fatalf("token-AND city match failed: %+v", out)
	}

	// order of tokens must not matter
	out = app.ApplyFilter(domain.Filter{Hotel: ptr("hyderabad westin")}, fixture())
	if len(out) != 1 || out[0].Brand != "Westin" {
		t.Fatalf("token-AND hotel match failed: %+v", out)
	}
}

func TestApplyFilter_BrandUmbrellaNoop(t *testing.T) {
	rs := fixture()
	all := app.ApplyFilter(domain.Filter{}, rs)
	umb := app.ApplyFilter(domain.Filter{Brand: ptr("  Marriott ")}, rs)
	if len(umb) != len(all) {
		t.Fatalf("umbrella brand narrowed results: %d != %d", len(umb), len(all))
	}

	// a real sub-brand still narrows, matching brand or hotel name
	sub := app.ApplyFilter(domain.Filter{Brand: ptr("jw marriott")}, rs)
	if len(sub) != 1 || sub[0].Brand != "JW Marriott" {
		t.Fatalf("sub-brand match failed: %+v", sub)
	}
}

func TestApplyFilter_PtsRangeInclusive(t *testing.T) {
	out := app.ApplyFilter(domain.Filter{MinPtsNight: ptr(25000.0), MaxPtsNight: ptr(30000.0)}, fixture())
	if len(out) != 3 {
		t.Fatalf("inclusive range: got %d records, want 3", len(out))
	}
	for _, r := range out {
		if r.AvgPtsNight < 25000 || r.AvgPtsNight > 30000 {
			t.Fatalf("record out of range: %+v", r)
		}
	}
}

func TestApplyFilter_DistanceCapExcludesUnknown(t *testing.T) {
	out := app.ApplyFilter(domain.Filter{City: ptr("hyderabad"), MaxDistanceKm: ptr(40.0)}, fixture())
	if len(out) != 1 || out[0].Brand != "Westin" {
		t.Fatalf("unknown distance must not satisfy the cap: %+v", out)
	}
}

func TestApplyFilter_PreservesOrder(t *testing.T) {
	out := app.ApplyFilter(domain.Filter{State: ptr("telangana")}, fixture())
	if len(out) != 2 || out[0].Brand != "Westin" || out[1].Brand != "Courtyard" {
		t.Fatalf("expected original order, got %+v", out)
	}
}
