package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"points_hotel/internal/domain"
)

// SearchService runs the full pipeline: intent detection, translation
// (cache-aside over the model call), filtering, intent post-processing.
// The record set is shared and read-only; per-request state is never shared.
type SearchService struct {
	records []domain.Hotel
	tr      *Translator
	cache   domain.Cache // may be nil
	ttl     time.Duration
}

func NewSearchService(records []domain.Hotel, tr *Translator, cache domain.Cache, ttl time.Duration) *SearchService {
	return &SearchService{records: records, tr: tr, cache: cache, ttl: ttl}
}

// Search resolves query into the final ordered result set. Either the whole
// request succeeds with a (possibly empty) set, or it fails with one error;
// no partial results.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.Hotel, error) {
	intents := DetectIntents(query)

	filter, err := s.translate(ctx, query, intents)
	if err != nil {
		return nil, err
	}

	out := ApplyFilter(filter, s.records)
	return ApplyIntents(out, intents), nil
}

// translate consults the cache before calling the model; repeat queries skip
// the LLM entirely. Cached filters are already corrected and validated.
func (s *SearchService) translate(ctx context.Context, query string, intents domain.Intents) (domain.Filter, error) {
	key := translationKey(query)
	if s.cache != nil {
		var f domain.Filter
		if ok, _ := s.cache.Get(ctx, key, &f); ok {
			return f, nil
		}
	}
	f, err := s.tr.Translate(ctx, query, intents)
	if err != nil {
		return domain.Filter{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, f, s.ttl)
	}
	return f, nil
}

func translationKey(query string) string {
	norm := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	return fmt.Sprintf("translate:%s", norm)
}
