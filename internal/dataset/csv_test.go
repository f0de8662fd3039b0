package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"points_hotel/internal/dataset"
	"points_hotel/internal/domain"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "hotels.csv")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_HeaderVariantsAndCoercion(t *testing.T) {
	p := writeTemp(t, `Brand,Hotel Name,City,State,Avg Pt Value,Avg Pts/Night,Avg Pts (5 Nights),Distance From Airport (km)
Westin,The Westin Hyderabad Mindspace,Hyderabad,Telangana,0.45,"₹ 25,000","1,25,000",31.4 km
Courtyard,Courtyard Hyderabad,Hyderabad,Telangana,0.40,"25,000 pts","1,25,000",
Fairfield,Fairfield by Marriott Pune,Pune,,0.32,12500,62500,9.8
`)
	rs, err := dataset.Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rs) != 3 {
		t.Fatalf("got %d records, want 3", len(rs))
	}

	w := rs[0]
	if w.Brand != "Westin" || w.City != "Hyderabad" || w.State != "Telangana" {
		t.Fatalf("unexpected record: %+v", w)
	}
	if w.AvgPtsNight != 25000 || w.AvgPts5Nights != 125000 || w.DistanceKmFromAirport != 31.4 {
		t.Fatalf("currency coercion failed: %+v", w)
	}

	// blank distance means unknown, not zero measured
	if rs[1].DistanceKmFromAirport != 0 {
		t.Fatalf("blank distance should load as 0: %+v", rs[1])
	}
	// blank state defaults to empty string
	if rs[2].State != "" {
		t.Fatalf("blank state should be empty: %+v", rs[2])
	}
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	p := writeTemp(t, "Brand,State\nWestin,Telangana\n")
	if _, err := dataset.Load(p); err == nil {
		t.Fatal("expected error for missing hotel/city columns")
	}
}

func TestLoad_RejectsUnparsableNumber(t *testing.T) {
	p := writeTemp(t, "Hotel,City,Avg Pts/Night\nWestin Pune,Pune,twenty\n")
	if _, err := dataset.Load(p); err == nil {
		t.Fatal("expected error for unparsable number")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	in := []domain.Hotel{
		{Brand: "Westin", Hotel: "The Westin Pune", City: "Pune", State: "Maharashtra", AvgPtValue: 0.4, AvgPtsNight: 20000, AvgPts5Nights: 100000, DistanceKmFromAirport: 7.5},
	}
	p := filepath.Join(t.TempDir(), "out.csv")
	if err := dataset.Write(p, in); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := dataset.Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Fatalf("round trip mismatch: %+v vs %+v", out, in)
	}
}
