package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"points_hotel/internal/app"
	"points_hotel/internal/domain"
	"points_hotel/internal/locale"
)

// ---- fakes ----

type fakeModel struct {
	out   string
	err   error
	calls int
}

func (m *fakeModel) Translate(ctx context.Context, query string) (string, error) {
	m.calls++
	return m.out, m.err
}

func knowledge() *locale.Knowledge {
	return locale.New(fixture())
}

// ---- tests ----

func TestTranslate_AliasCanonicalization(t *testing.T) {
	tr := app.NewTranslator(&fakeModel{out: `{"city": "bangalore"}`}, knowledge())

	f, err := tr.Translate(context.Background(), "hotels in bangalore", domain.Intents{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if f.City == nil || *f.City != "bengaluru" {
		t.Fatalf("city: %v, want bengaluru", f.City)
	}
}

func TestTranslate_StateMisclassificationMove(t *testing.T) {
	tr := app.NewTranslator(&fakeModel{out: `{"city": "Telangana"}`}, knowledge())

	f, err := tr.Translate(context.Background(), "marriott in Telangana", domain.Intents{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if f.City != nil {
		t.Fatalf("city should be dropped, got %q", *f.City)
	}
	if f.State == nil || *f.State != "Telangana" {
		t.Fatalf("state: %v, want Telangana", f.State)
	}
}

func TestTranslate_StateNotMovedWhenStatePresent(t *testing.T) {
	tr := app.NewTranslator(&fakeModel{out: `{"city": "Telangana", "state": "Telangana"}`}, knowledge())

	f, err := tr.Translate(context.Background(), "q", domain.Intents{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if f.City == nil || *f.City != "Telangana" {
		t.Fatalf("city must survive when state is already set: %v", f.City)
	}
}

func TestTranslate_CityInferenceFallback(t *testing.T) {
	tr := app.NewTranslator(&fakeModel{out: `{}`}, knowledge())

	f, err := tr.Translate(context.Background(), "anything decent in Bangalore please", domain.Intents{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if f.City == nil || *f.City != "bengaluru" {
		t.Fatalf("city: %v, want bengaluru (inferred)", f.City)
	}
}

func TestTranslate_NumericSanityDrop(t *testing.T) {
	tr := app.NewTranslator(&fakeModel{out: `{"maxPtsNight": 5, "city": "pune"}`}, knowledge())

	f, err := tr.Translate(context.Background(), "pune for 5 nights", domain.Intents{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if f.MaxPtsNight != nil {
		t.Fatalf("maxPtsNight should be dropped, got %v", *f.MaxPtsNight)
	}
	// at or above the floor the threshold survives
	tr = app.NewTranslator(&fakeModel{out: `{"maxPtsNight": 1000}`}, knowledge())
	f, _ = tr.Translate(context.Background(), "q", domain.Intents{})
	if f.MaxPtsNight == nil || *f.MaxPtsNight != 1000 {
		t.Fatalf("maxPtsNight=1000 must survive, got %v", f.MaxPtsNight)
	}
}

func TestTranslate_NearestStripsDistanceCap(t *testing.T) {
	tr := app.NewTranslator(&fakeModel{out: `{"city": "hyderabad", "maxDistanceKm": 10}`}, knowledge())

	f, err := tr.Translate(context.Background(), "nearest marriott in hyderabad", domain.Intents{Nearest: true})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if f.MaxDistanceKm != nil {
		t.Fatalf("maxDistanceKm must be stripped under nearest intent, got %v", *f.MaxDistanceKm)
	}
}

func TestTranslate_SchemaRejection(t *testing.T) {
	tr := app.NewTranslator(&fakeModel{out: `{"country": "India", "city": "pune"}`}, knowledge())

	_, err := tr.Translate(context.Background(), "q", domain.Intents{})
	var serr *domain.SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if len(serr.Fields) != 1 || !strings.Contains(serr.Fields[0], "country") {
		t.Fatalf("offending fields: %v", serr.Fields)
	}
}

func TestTranslate_WrongTypeRejected(t *testing.T) {
	tr := app.NewTranslator(&fakeModel{out: `{"minPtsNight": "twenty"}`}, knowledge())

	_, err := tr.Translate(context.Background(), "q", domain.Intents{})
	var serr *domain.SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if !strings.Contains(serr.Fields[0], "minPtsNight") {
		t.Fatalf("offending fields: %v", serr.Fields)
	}
}

func TestTranslate_BadJSON(t *testing.T) {
	tr := app.NewTranslator(&fakeModel{out: "sorry, I can't do that"}, knowledge())

	_, err := tr.Translate(context.Background(), "q", domain.Intents{})
	if !errors.Is(err, domain.ErrTranslation) {
		t.Fatalf("expected ErrTranslation, got %v", err)
	}
}

func TestTranslate_ModelCallFailure(t *testing.T) {
	tr := app.NewTranslator(&fakeModel{err: errors.New("upstream 500")}, knowledge())

	_, err := tr.Translate(context.Background(), "q", domain.Intents{})
	if !errors.Is(err, domain.ErrTranslation) {
		t.Fatalf("expected ErrTranslation, got %v", err)
	}
}

func TestTranslate_MissingCredential(t *testing.T) {
	tr := app.NewTranslator(&fakeModel{err: domain.ErrNoCredential}, knowledge())

	_, err := tr.Translate(context.Background(), "q", domain.Intents{})
	if !errors.Is(err, domain.ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
}
