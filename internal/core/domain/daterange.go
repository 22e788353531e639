package domain

import (
	"fmt"
	"time"
)

// DateRange is an optional inclusive interval. The remote API represents
// an unset bound as an empty string, not an absent field.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

func (r *DateRange) SetFrom(t time.Time) {
	r.From = &t
}

func (r *DateRange) SetTo(t time.Time) {
	r.To = &t
}

// QueryBounds renders both bounds for the wire: RFC3339 timestamps, or
// empty strings where unset.
func (r DateRange) QueryBounds() (from, to string) {
	if r.From != nil {
		from = r.From.UTC().Format(time.RFC3339)
	}
	if r.To != nil {
		to = r.To.UTC().Format(time.RFC3339)
	}
	return from, to
}

// Validate rejects an inverted interval. Open bounds are always valid.
func (r DateRange) Validate() error {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return WrapError(ErrValidation, "date range",
			fmt.Errorf("from %s is after to %s", r.From.Format(time.RFC3339), r.To.Format(time.RFC3339)))
	}
	return nil
}
