package listing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/utils"
)

// Sorting is stable: equal keys keep their relative input order. Each entity
// has a closed table of typed comparators; unknown columns are rejected
// instead of falling back to reflection.

const (
	Ascending  = "asc"
	Descending = "desc"
)

func directionSign(direction string) (int, error) {
	switch direction {
	case Ascending, "":
		return 1, nil
	case Descending:
		return -1, nil
	default:
		return 0, fmt.Errorf("unknown sort direction: %s", direction)
	}
}

// compareDates orders by epoch millis. A date that does not parse sorts as
// the epoch, i.e. before every real date.
func compareDates(a, b string) int {
	ta, okA := utils.ParseDate(a)
	tb, okB := utils.ParseDate(b)
	var ma, mb int64
	if okA {
		ma = ta.UnixMilli()
	}
	if okB {
		mb = tb.UnixMilli()
	}
	switch {
	case ma < mb:
		return -1
	case ma > mb:
		return 1
	default:
		return 0
	}
}

func compareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

var bookingComparators = map[string]func(a, b models.BookingView) int{
	"bookingDate":   func(a, b models.BookingView) int { return compareDates(a.BookingDate, b.BookingDate) },
	"guestName":     func(a, b models.BookingView) int { return compareStrings(a.GuestName, b.GuestName) },
	"sessionName":   func(a, b models.BookingView) int { return compareStrings(a.SessionName, b.SessionName) },
	"status":        func(a, b models.BookingView) int { return compareStrings(a.Status, b.Status) },
	"paymentStatus": func(a, b models.BookingView) int { return compareStrings(a.PaymentStatus, b.PaymentStatus) },
	"totalAmount":   func(a, b models.BookingView) int { return compareFloats(a.TotalAmount, b.TotalAmount) },
	"guestCount": func(a, b models.BookingView) int {
		return compareInts(a.VegCount+a.NonVegCount, b.VegCount+b.NonVegCount)
	},
}

// SortBookings returns a new ordered slice. An empty column selects the
// default ordering: booking date descending, newest first.
func SortBookings(items []models.BookingView, column, direction string) ([]models.BookingView, error) {
	out := make([]models.BookingView, len(items))
	copy(out, items)

	if column == "" {
		sort.SliceStable(out, func(i, j int) bool {
			return compareDates(out[i].BookingDate, out[j].BookingDate) > 0
		})
		return out, nil
	}

	cmp, ok := bookingComparators[column]
	if !ok {
		return nil, fmt.Errorf("unknown sort column: %s", column)
	}
	sign, err := directionSign(direction)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return cmp(out[i], out[j])*sign < 0
	})
	return out, nil
}

var sessionComparators = map[string]func(a, b models.SessionView) int{
	"date":        func(a, b models.SessionView) int { return compareDates(a.Date, b.Date) },
	"name":        func(a, b models.SessionView) int { return compareStrings(a.Name, b.Name) },
	"type":        func(a, b models.SessionView) int { return compareStrings(a.Type, b.Type) },
	"startTime":   func(a, b models.SessionView) int { return compareStrings(a.StartTime, b.StartTime) },
	"maxCapacity": func(a, b models.SessionView) int { return compareInts(a.MaxCapacity, b.MaxCapacity) },
	"bookedCount": func(a, b models.SessionView) int { return compareInts(a.BookedCount, b.BookedCount) },
}

// SortSessions defaults to session date descending when column is empty.
func SortSessions(items []models.SessionView, column, direction string) ([]models.SessionView, error) {
	out := make([]models.SessionView, len(items))
	copy(out, items)

	if column == "" {
		sort.SliceStable(out, func(i, j int) bool {
			return compareDates(out[i].Date, out[j].Date) > 0
		})
		return out, nil
	}

	cmp, ok := sessionComparators[column]
	if !ok {
		return nil, fmt.Errorf("unknown sort column: %s", column)
	}
	sign, err := directionSign(direction)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return cmp(out[i], out[j])*sign < 0
	})
	return out, nil
}

var guestComparators = map[string]func(a, b models.GuestView) int{
	"name":          func(a, b models.GuestView) int { return compareStrings(a.Name, b.Name) },
	"guestType":     func(a, b models.GuestView) int { return compareStrings(a.GuestType, b.GuestType) },
	"visitCount":    func(a, b models.GuestView) int { return compareInts(a.VisitCount, b.VisitCount) },
	"loyaltyPoints": func(a, b models.GuestView) int { return compareInts(a.LoyaltyPoints, b.LoyaltyPoints) },
	"totalSpend":    func(a, b models.GuestView) int { return compareFloats(a.TotalSpend, b.TotalSpend) },
	"lastVisit":     func(a, b models.GuestView) int { return compareDates(a.LastVisit, b.LastVisit) },
}

// SortGuests defaults to name ascending when column is empty.
func SortGuests(items []models.GuestView, column, direction string) ([]models.GuestView, error) {
	out := make([]models.GuestView, len(items))
	copy(out, items)

	if column == "" {
		sort.SliceStable(out, func(i, j int) bool {
			return compareStrings(out[i].Name, out[j].Name) < 0
		})
		return out, nil
	}

	cmp, ok := guestComparators[column]
	if !ok {
		return nil, fmt.Errorf("unknown sort column: %s", column)
	}
	sign, err := directionSign(direction)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return cmp(out[i], out[j])*sign < 0
	})
	return out, nil
}

var staffComparators = map[string]func(a, b models.StaffView) int{
	"name":        func(a, b models.StaffView) int { return compareStrings(a.Name, b.Name) },
	"designation": func(a, b models.StaffView) int { return compareStrings(a.Designation, b.Designation) },
	"department":  func(a, b models.StaffView) int { return compareStrings(a.Department, b.Department) },
	"status":      func(a, b models.StaffView) int { return compareStrings(a.Status, b.Status) },
}

// SortStaff defaults to name ascending when column is empty.
func SortStaff(items []models.StaffView, column, direction string) ([]models.StaffView, error) {
	out := make([]models.StaffView, len(items))
	copy(out, items)

	if column == "" {
		sort.SliceStable(out, func(i, j int) bool {
			return compareStrings(out[i].Name, out[j].Name) < 0
		})
		return out, nil
	}

	cmp, ok := staffComparators[column]
	if !ok {
		return nil, fmt.Errorf("unknown sort column: %s", column)
	}
	sign, err := directionSign(direction)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return cmp(out[i], out[j])*sign < 0
	})
	return out, nil
}
