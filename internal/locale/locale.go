package locale

import (
	"sort"
	"strings"

	"points_hotel/internal/domain"
)

// cityAliases maps a lowercase alias to its canonical (lowercase) city name.
// Canonical names map to themselves so the table is idempotent.
var cityAliases = map[string]string{
	"bangalore":   "bengaluru",
	"bengaluru":   "bengaluru",
	"bombay":      "mumbai",
	"madras":      "chennai",
	"calcutta":    "kolkata",
	"gurgaon":     "gurugram",
	"gurugram":    "gurugram",
	"pondicherry": "puducherry",
	"trivandrum":  "thiruvananthapuram",
	"cochin":      "kochi",
	"mysore":      "mysuru",
	"poona":       "pune",
	"vizag":       "visakhapatnam",
	"benares":     "varanasi",
	"banaras":     "varanasi",
}

// Knowledge holds the alias and state tables consulted during translation.
// Built once at startup from the loaded dataset; read-only thereafter.
type Knowledge struct {
	aliases    map[string]string
	aliasOrder []string // sorted keys, so inference over query text is deterministic
	states     map[string]struct{}
}

// New builds the locale tables: the fixed alias map extended with an identity
// entry per dataset city, and the set of state names present in the dataset.
func New(records []domain.Hotel) *Knowledge {
	k := &Knowledge{
		aliases: make(map[string]string, len(cityAliases)+len(records)),
		states:  make(map[string]struct{}),
	}
	for a, c := range cityAliases {
		k.aliases[a] = c
	}
	for _, r := range records {
		if c := strings.ToLower(strings.TrimSpace(r.City)); c != "" {
			if _, ok := k.aliases[c]; !ok {
				k.aliases[c] = c
			}
		}
		if s := strings.ToLower(strings.TrimSpace(r.State)); s != "" {
			k.states[s] = struct{}{}
		}
	}
	k.aliasOrder = make([]string, 0, len(k.aliases))
	for a := range k.aliases {
		k.aliasOrder = append(k.aliasOrder, a)
	}
	sort.Strings(k.aliasOrder)
	return k
}

// CanonicalCity resolves an alias to its canonical city name. Names outside
// the alias table are returned unchanged so free-form cities still filter.
func (k *Knowledge) CanonicalCity(name string) string {
	trimmed := strings.TrimSpace(name)
	if c, ok := k.aliases[strings.ToLower(trimmed)]; ok {
		return c
	}
	return trimmed
}

// IsState reports whether name is a state present in the dataset.
func (k *Knowledge) IsState(name string) bool {
	_, ok := k.states[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// InferCity scans the alias table against the lowercase query text and
// returns the canonical city of the first alias found (aliases are scanned
// in sorted order). Recovers location mentions the model omitted.
func (k *Knowledge) InferCity(query string) (string, bool) {
	low := strings.ToLower(query)
	for _, a := range k.aliasOrder {
		if strings.Contains(low, a) {
			return k.aliases[a], true
		}
	}
	return "", false
}
