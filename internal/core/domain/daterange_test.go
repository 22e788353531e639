package domain

import (
	"testing"
	"time"
)

func TestQueryBoundsEmptyWhenUnset(t *testing.T) {
	var r DateRange
	from, to := r.QueryBounds()
	if from != "" || to != "" {
		t.Fatalf("unset bounds must render as empty strings, got %q / %q", from, to)
	}
}

func TestQueryBoundsFormatsRFC3339UTC(t *testing.T) {
	var r DateRange
	r.SetFrom(time.Date(2024, 3, 15, 10, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)))

	from, to := r.QueryBounds()
	if from != "2024-03-15T05:00:00Z" {
		t.Fatalf("unexpected from bound %q", from)
	}
	if to != "" {
		t.Fatalf("unset to bound must stay empty, got %q", to)
	}
}

func TestValidateRejectsInvertedRange(t *testing.T) {
	var r DateRange
	r.SetFrom(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC))
	r.SetTo(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	err := r.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !IsKind(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestValidateAcceptsOpenBounds(t *testing.T) {
	var r DateRange
	r.SetTo(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err := r.Validate(); err != nil {
		t.Fatalf("open from bound must be valid, got %v", err)
	}
}
