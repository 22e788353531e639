package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/nitinkv/docvault/internal/core/domain"
)

// buildCategory runs the flag values through the cascading selector so a
// minor outside its major's options fails before any network call.
func buildCategory(major, minor string) (domain.Category, error) {
	selector := domain.NewCategorySelector(nil)
	if major == "" {
		if minor != "" {
			return domain.Category{}, errors.New("--minor requires --major")
		}
		return domain.Category{}, nil
	}
	selector.SetMajor(major)
	if minor != "" && !selector.SetMinor(minor) {
		return domain.Category{}, fmt.Errorf("%q is not a subcategory of %q (valid: %v)",
			minor, major, selector.MinorOptions())
	}
	return selector.Category(), nil
}

func buildTagSet(raw []string) *domain.TagSet {
	set := domain.NewTagSet()
	for _, tag := range raw {
		set.AddFromInput(tag)
	}
	return set
}

func buildDateRange(from, to string) (domain.DateRange, error) {
	var dates domain.DateRange
	if from != "" {
		t, err := parseDate(from)
		if err != nil {
			return domain.DateRange{}, err
		}
		dates.SetFrom(t)
	}
	if to != "" {
		t, err := parseDate(to)
		if err != nil {
			return domain.DateRange{}, err
		}
		dates.SetTo(t)
	}
	return dates, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q, want RFC3339 or YYYY-MM-DD", raw)
}
