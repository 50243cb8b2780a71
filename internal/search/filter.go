// Package search narrows a listing collection to the subset matching an
// active filter set. The same composer backs the landing page and the full
// listing page, so both stay in lockstep.
package search

import (
	"strconv"
	"strings"

	"github.com/NoBrainerCoder/realestate-website-sub000/internal/models"
)

// Filter is the set of optional predicates AND-composed over a collection.
// Zero-valued fields are not applied. The budget bounds are inclusive and
// only apply when MaxBudget is positive (a zero minimum is a legal bound).
type Filter struct {
	SearchTerm   string
	Area         string
	MinBudget    int64
	MaxBudget    int64
	BHK          string
	PropertyType string
	Furnishing   string
}

// IsZero reports whether no predicate is active.
func (f Filter) IsZero() bool {
	return f.SearchTerm == "" && f.Area == "" && f.MaxBudget <= 0 &&
		f.BHK == "" && f.PropertyType == "" && f.Furnishing == ""
}

// Apply returns the listings satisfying every active predicate, preserving
// input order. It is pure and idempotent: filtering a filtered result with
// the same filter is a no-op.
func Apply(listings []*models.Listing, f Filter) []*models.Listing {
	if f.IsZero() {
		return listings
	}

	out := make([]*models.Listing, 0, len(listings))
	for _, l := range listings {
		if matches(l, f) {
			out = append(out, l)
		}
	}
	return out
}

func matches(l *models.Listing, f Filter) bool {
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !strings.Contains(strings.ToLower(l.Title), term) &&
			!strings.Contains(strings.ToLower(l.Location), term) &&
			!strings.Contains(strings.ToLower(l.Description), term) {
			return false
		}
	}
	if f.Area != "" && !strings.Contains(strings.ToLower(l.Location), strings.ToLower(f.Area)) {
		return false
	}
	if f.MaxBudget > 0 && (l.Price < f.MinBudget || l.Price > f.MaxBudget) {
		return false
	}
	if f.BHK != "" && !matchesBHK(l.Bedrooms, f.BHK) {
		return false
	}
	if f.PropertyType != "" && l.PropertyType != f.PropertyType {
		return false
	}
	if f.Furnishing != "" && l.Furnishing != f.Furnishing {
		return false
	}
	return true
}

// matchesBHK compares string-encoded bedroom counts. A trailing "+" on the
// filter value ("4+") turns the exact match into a ≥ comparison.
func matchesBHK(bedrooms, want string) bool {
	have, ok := bedroomCount(bedrooms)
	if !ok {
		return false
	}
	if strings.HasSuffix(want, "+") {
		min, ok := bedroomCount(strings.TrimSuffix(want, "+"))
		return ok && have >= min
	}
	n, ok := bedroomCount(want)
	return ok && have == n
}

func bedroomCount(s string) (int, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "+")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
