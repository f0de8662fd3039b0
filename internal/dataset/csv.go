// Package dataset loads the hotel record set from tabular sources. Records
// are coerced once at load; the slice handed to the app is never mutated.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"points_hotel/internal/domain"
)

// headerAliases reconciles the header variants seen across dataset exports.
// Keys are normalized (lowercased, non-alphanumerics stripped).
var headerAliases = map[string]string{
	"brand":                 "brand",
	"hotel":                 "hotel",
	"hotelname":             "hotel",
	"property":              "hotel",
	"propertyname":          "hotel",
	"city":                  "city",
	"state":                 "state",
	"avgptvalue":            "avgPtValue",
	"avgpointvalue":         "avgPtValue",
	"avgptsnight":           "avgPtsNight",
	"avgptspernight":        "avgPtsNight",
	"avgpts5nights":         "avgPts5Nights",
	"avgptsper5nights":      "avgPts5Nights",
	"distancekmfromairport": "distanceKmFromAirport",
	"distancefromairportkm": "distanceKmFromAirport",
	"airportdistancekm":     "distanceKmFromAirport",
	"distancekm":            "distanceKmFromAirport",
}

// Load reads the CSV at path into hotel records. Unknown columns are
// ignored; state defaults to ""; numeric cells tolerate currency formatting.
func Load(path string) ([]domain.Hotel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.TrimLeadingSpace = true

	header, err := rd.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := map[string]int{}
	for i, h := range header {
		if canon, ok := headerAliases[normalizeHeader(h)]; ok {
			cols[canon] = i
		}
	}
	for _, required := range []string{"hotel", "city"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("dataset missing required column %q", required)
		}
	}

	var out []domain.Hotel
	rows, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	for i, row := range rows {
		cell := func(k string) string {
			if idx, ok := cols[k]; ok && idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}
		h := domain.Hotel{
			Brand: cell("brand"),
			Hotel: cell("hotel"),
			City:  cell("city"),
			State: cell("state"),
		}
		if h.Hotel == "" {
			continue // blank padding row
		}
		var nerr error
		h.AvgPtValue, nerr = parseNumber(cell("avgPtValue"))
		if nerr == nil {
			h.AvgPtsNight, nerr = parseNumber(cell("avgPtsNight"))
		}
		if nerr == nil {
			h.AvgPts5Nights, nerr = parseNumber(cell("avgPts5Nights"))
		}
		if nerr == nil {
			h.DistanceKmFromAirport, nerr = parseNumber(cell("distanceKmFromAirport"))
		}
		if nerr != nil {
			return nil, fmt.Errorf("row %d (%s): %w", i+2, h.Hotel, nerr)
		}
		out = append(out, h)
	}
	return out, nil
}

// Write saves records back to CSV with canonical headers; used by the
// enrichment tool.
func Write(path string, records []domain.Hotel) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"brand", "hotel", "city", "state", "avgPtValue", "avgPtsNight", "avgPts5Nights", "distanceKmFromAirport"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Brand, r.Hotel, r.City, r.State,
			formatNumber(r.AvgPtValue),
			formatNumber(r.AvgPtsNight),
			formatNumber(r.AvgPts5Nights),
			formatNumber(r.DistanceKmFromAirport),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func normalizeHeader(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseNumber coerces currency-formatted cells ("₹ 12,500", "12,500 pts",
// "38.2 km") to numbers. Empty and placeholder cells are 0 ("unknown").
func parseNumber(s string) (float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "-", "na", "n/a":
		return 0, nil
	}
	for _, junk := range []string{"₹", "rs.", "rs", ",", "pts", "points", "km", " "} {
		s = strings.ReplaceAll(s, junk, "")
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unparsable number %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %v", n)
	}
	return n, nil
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
