package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/utils"
)

func sampleBookings() []models.BookingView {
	return []models.BookingView{
		{ID: "BK-1", GuestName: "Alice Tan", SessionName: "Sunday Brunch", Status: "confirmed", PaymentStatus: "paid", BookingDate: "2026-08-10", FranchiseID: 1, ContactEmail: "alice@example.com"},
		{ID: "BK-2", GuestName: "Bob Lee", SessionName: "Dinner Service", Status: "pending", PaymentStatus: "pending", BookingDate: "2026-08-12", FranchiseID: 1},
		{ID: "BK-3", GuestName: "Carol Ng", SessionName: "Sunday Brunch", Status: "cancelled", PaymentStatus: "refunded", BookingDate: "not-a-date", FranchiseID: 2},
	}
}

func TestFilterBookingsEmptyCriteriaReturnsAll(t *testing.T) {
	in := sampleBookings()
	out := FilterBookings(in, Criteria{})
	assert.Equal(t, in, out)
}

func TestFilterBookingsSearchChecksWhitelistedFields(t *testing.T) {
	out := FilterBookings(sampleBookings(), Criteria{Search: "ALICE"})
	assert.Len(t, out, 1)
	assert.Equal(t, "BK-1", out[0].ID)

	out = FilterBookings(sampleBookings(), Criteria{Search: "brunch"})
	assert.Len(t, out, 2)

	out = FilterBookings(sampleBookings(), Criteria{Search: "bk-2"})
	assert.Len(t, out, 1)

	out = FilterBookings(sampleBookings(), Criteria{Search: "no-such-guest"})
	assert.Empty(t, out)
}

func TestFilterBookingsAllSentinelIsUnrestricted(t *testing.T) {
	out := FilterBookings(sampleBookings(), Criteria{Status: FilterAll, PaymentStatus: FilterAll})
	assert.Len(t, out, 3)
}

func TestFilterBookingsCriteriaCombineWithAnd(t *testing.T) {
	out := FilterBookings(sampleBookings(), Criteria{Status: "confirmed", PaymentStatus: "paid"})
	assert.Len(t, out, 1)
	assert.Equal(t, "BK-1", out[0].ID)

	out = FilterBookings(sampleBookings(), Criteria{Status: "confirmed", PaymentStatus: "pending"})
	assert.Empty(t, out)
}

func TestFilterBookingsFranchiseScope(t *testing.T) {
	out := FilterBookings(sampleBookings(), Criteria{FranchiseID: 2})
	assert.Len(t, out, 1)
	assert.Equal(t, "BK-3", out[0].ID)
}

func TestFilterBookingsDateRangeInclusiveBounds(t *testing.T) {
	from, _ := utils.ParseDate("2026-08-10")
	to, _ := utils.ParseDate("2026-08-12")

	out := FilterBookings(sampleBookings(), Criteria{DateFrom: &from, DateTo: &to})
	assert.Len(t, out, 2)

	// Bound equal to the record date still matches.
	out = FilterBookings(sampleBookings(), Criteria{DateFrom: &to})
	assert.Len(t, out, 1)
	assert.Equal(t, "BK-2", out[0].ID)
}

func TestFilterBookingsMalformedDateExcludedWhenBounded(t *testing.T) {
	from, _ := utils.ParseDate("2000-01-01")
	out := FilterBookings(sampleBookings(), Criteria{DateFrom: &from})
	for _, b := range out {
		assert.NotEqual(t, "BK-3", b.ID)
	}
	assert.Len(t, out, 2)

	// With no bounds the malformed date is irrelevant.
	out = FilterBookings(sampleBookings(), Criteria{})
	assert.Len(t, out, 3)
}

func TestFilterBookingsDoesNotMutateInput(t *testing.T) {
	in := sampleBookings()
	_ = FilterBookings(in, Criteria{Search: "alice", Status: "confirmed"})
	assert.Equal(t, sampleBookings(), in)
}

func TestFilterSessions(t *testing.T) {
	sessions := []models.SessionView{
		{ID: 1, Name: "Sunday Brunch", Type: "brunch", Date: "2026-08-10", FranchiseID: 1},
		{ID: 2, Name: "Dinner Service", Type: "dinner", Date: "2026-08-11", FranchiseID: 1},
		{ID: 3, Name: "High Tea", Type: "high_tea", Date: "2026-08-12", FranchiseID: 2},
	}

	out := FilterSessions(sessions, Criteria{SessionType: "dinner"})
	assert.Len(t, out, 1)
	assert.Equal(t, uint(2), out[0].ID)

	out = FilterSessions(sessions, Criteria{Search: "tea"})
	assert.Len(t, out, 1)
	assert.Equal(t, uint(3), out[0].ID)

	out = FilterSessions(sessions, Criteria{SessionType: FilterAll, FranchiseID: 1})
	assert.Len(t, out, 2)
}

func TestFilterGuests(t *testing.T) {
	guests := []models.GuestView{
		{ID: "GST-1", Name: "Dana", Email: "dana@example.com", GuestType: models.GuestVIP, LastVisit: "2026-08-01"},
		{ID: "GST-2", Name: "Evan", Phone: "555-0101", GuestType: models.GuestNew},
		{ID: "GST-3", Name: "Fay", GuestType: models.GuestRegular, LastVisit: "2026-06-15"},
	}

	out := FilterGuests(guests, Criteria{GuestType: models.GuestVIP})
	assert.Len(t, out, 1)
	assert.Equal(t, "GST-1", out[0].ID)

	out = FilterGuests(guests, Criteria{Search: "555"})
	assert.Len(t, out, 1)
	assert.Equal(t, "GST-2", out[0].ID)

	// GST-2 has no last visit recorded, so any bound excludes it.
	from, _ := utils.ParseDate("2026-01-01")
	out = FilterGuests(guests, Criteria{DateFrom: &from})
	assert.Len(t, out, 2)
}

func TestFilterStaff(t *testing.T) {
	staff := []models.StaffView{
		{ID: 1, Name: "Gina", Department: "kitchen", Status: "active"},
		{ID: 2, Name: "Hank", Department: "service", Status: "on_leave"},
		{ID: 3, Name: "Iris", Department: "kitchen", Status: "training"},
	}

	out := FilterStaff(staff, Criteria{Department: "kitchen"})
	assert.Len(t, out, 2)

	out = FilterStaff(staff, Criteria{Department: "kitchen", Status: "training"})
	assert.Len(t, out, 1)
	assert.Equal(t, uint(3), out[0].ID)

	out = FilterStaff(staff, Criteria{Department: FilterAll, Status: FilterAll})
	assert.Len(t, out, 3)
}
