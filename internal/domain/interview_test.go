package domain

import (
	"testing"
	"time"
)

func TestCreatedAtRoundTrip(t *testing.T) {
	original := time.Date(2025, 6, 2, 14, 30, 12, 123456789, time.UTC)

	stored := FormatCreatedAt(original)
	parsed, err := ParseCreatedAt(stored)
	if err != nil {
		t.Fatalf("parse created_at: %v", err)
	}
	if !parsed.Equal(original) {
		t.Fatalf("expected %v, got %v", original, parsed)
	}
}

func TestCreatedAtRoundTripNonUTC(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	original := time.Date(2025, 1, 10, 9, 0, 0, 500, loc)

	parsed, err := ParseCreatedAt(FormatCreatedAt(original))
	if err != nil {
		t.Fatalf("parse created_at: %v", err)
	}
	if !parsed.Equal(original) {
		t.Fatalf("expected equal instant, got %v vs %v", parsed, original)
	}
	if parsed.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", parsed.Location())
	}
}

func TestCreatedAtStoredFormSortsLikeInstants(t *testing.T) {
	earlier := time.Date(2025, 6, 2, 14, 30, 5, 90000000, time.UTC)
	later := time.Date(2025, 6, 2, 14, 30, 5, 100000000, time.UTC)

	if FormatCreatedAt(earlier) >= FormatCreatedAt(later) {
		t.Fatalf("stored form not sortable: %q >= %q", FormatCreatedAt(earlier), FormatCreatedAt(later))
	}
}

func TestParseCreatedAtRejectsGarbage(t *testing.T) {
	if _, err := ParseCreatedAt("not-a-timestamp"); err == nil {
		t.Fatalf("expected error for malformed timestamp")
	}
}
