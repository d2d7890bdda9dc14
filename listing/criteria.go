// Package listing holds the pure filter and sort engines the dashboard list
// views run on. Functions here never touch the database and never mutate
// their inputs.
package listing

import (
	"strings"
	"time"

	"github.com/dinehub/franchise-admin/utils"
)

// FilterAll is the categorical sentinel meaning "unrestricted".
const FilterAll = "all"

// Criteria combines with logical AND. There is no OR and no negation.
type Criteria struct {
	Search        string
	Status        string
	PaymentStatus string
	SessionType   string
	GuestType     string
	Department    string
	FranchiseID   uint
	DateFrom      *time.Time
	DateTo        *time.Time
}

func matchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func matchesCategory(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}

// matchesDateRange compares a record's date string against inclusive bounds.
// A record whose date does not parse matches neither bound and is excluded
// whenever any bound is set.
func matchesDateRange(dateStr string, from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	d, ok := utils.ParseDate(dateStr)
	if !ok {
		return false
	}
	if from != nil && d.Before(*from) {
		return false
	}
	if to != nil && d.After(*to) {
		return false
	}
	return true
}
