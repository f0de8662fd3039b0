package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "points_hotel/internal/adapters/redis"
	"points_hotel/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var got domain.Filter
	ok, err := c.Get(ctx, "translate:q", &got)
	if err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	want := domain.Filter{City: ptr("hyderabad"), MaxPtsNight: ptr(25000.0)}
	if err := c.Set(ctx, "translate:q", want, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	ok, err = c.Get(ctx, "translate:q", &got)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.City == nil || *got.City != "hyderabad" || got.MaxPtsNight == nil || *got.MaxPtsNight != 25000 {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	if err := c.Del(ctx, "translate:q"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "translate:q", &got); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestCache_PoisonedEntryIsAMiss(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	mr.Set("translate:q", "not-json")

	var got domain.Filter
	ok, err := c.Get(ctx, "translate:q", &got)
	if err != nil || ok {
		t.Fatalf("poisoned entry must read as a miss, got ok=%v err=%v", ok, err)
	}
	if mr.Exists("translate:q") {
		t.Fatal("poisoned entry should have been evicted")
	}
}
