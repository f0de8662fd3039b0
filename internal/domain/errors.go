package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoCredential: the model API key is not configured. Permanent for the
	// current request; surfaced as service-unavailable.
	ErrNoCredential = errors.New("model credential not configured")

	// ErrTranslation: the model call failed or its output was not valid JSON.
	// Permanent for this request; surfaced as service-unavailable.
	ErrTranslation = errors.New("query translation failed")

	// ErrNoMatch: the geocoder or router found nothing for the place.
	ErrNoMatch = errors.New("no match for place")
)

// SchemaError reports the fields of a corrected filter that violate the
// whitelist. Surfaced as a client error carrying the offending details.
type SchemaError struct {
	Fields []string // "country: unknown key", "maxPtsNight: must be a non-negative number"
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("filter schema violation: %s", strings.Join(e.Fields, "; "))
}
