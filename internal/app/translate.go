package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"points_hotel/internal/domain"
	"points_hotel/internal/locale"
)

// minRealisticPts is the floor below which a numeric points filter is
// virtually always a misparsed night count ("5 nights" -> 5), never a real
// threshold in this domain.
const minRealisticPts = 1000

// Translator turns free-text queries into validated filters by calling the
// external model and correcting its output against the locale tables.
type Translator struct {
	model domain.ModelClient
	loc   *locale.Knowledge
}

func NewTranslator(m domain.ModelClient, loc *locale.Knowledge) *Translator {
	return &Translator{model: m, loc: loc}
}

// Translate produces the corrected, validated filter for query. Corrections
// run before validation so they cannot be bypassed by ordering. When the
// nearest intent is set, any maxDistanceKm the model produced is stripped:
// an explicit cap conflicts with the looser "find me the nearest".
func (t *Translator) Translate(ctx context.Context, query string, intents domain.Intents) (domain.Filter, error) {
	out, err := t.model.Translate(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrNoCredential) {
			return domain.Filter{}, err
		}
		return domain.Filter{}, fmt.Errorf("%w: %v", domain.ErrTranslation, err)
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		return domain.Filter{}, fmt.Errorf("%w: invalid JSON: %v", domain.ErrTranslation, err)
	}

	t.correct(raw, query)
	if intents.Nearest {
		delete(raw, "maxDistanceKm")
	}

	if serr := validateFilterMap(raw); serr != nil {
		return domain.Filter{}, serr
	}
	return buildFilter(raw), nil
}

// correct applies the locale and numeric corrections, in order:
// city alias canonicalization, state-misclassification move, city-inference
// fallback, numeric-sanity drop.
func (t *Translator) correct(raw map[string]any, query string) {
	// a key is present or absent, never null-but-present
	for k, v := range raw {
		if v == nil {
			delete(raw, k)
		}
	}

	if c, ok := raw["city"].(string); ok {
		raw["city"] = t.loc.CanonicalCity(c)
	}

	// The model sometimes puts a state name ("Telangana") into city.
	if c, ok := raw["city"].(string); ok {
		if _, hasState := raw["state"]; !hasState && t.loc.IsState(c) {
			raw["state"] = c
			delete(raw, "city")
			log.Debug().Str("state", c).Msg("moved misclassified state out of city")
		}
	}

	if _, ok := raw["city"]; !ok {
		if c, found := t.loc.InferCity(query); found {
			raw["city"] = c
			log.Debug().Str("city", c).Msg("inferred city from query text")
		}
	}

	for _, k := range []string{"minPtsNight", "maxPtsNight"} {
		if n, ok := raw[k].(float64); ok && n < minRealisticPts {
			delete(raw, k)
			log.Debug().Str("key", k).Float64("value", n).Msg("dropped implausible points threshold")
		}
	}
}
