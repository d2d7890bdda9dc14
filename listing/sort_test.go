package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinehub/franchise-admin/models"
)

func sortableBookings() []models.BookingView {
	return []models.BookingView{
		{ID: "BK-1", GuestName: "alice", BookingDate: "2026-08-10", TotalAmount: 120, VegCount: 2, NonVegCount: 1},
		{ID: "BK-2", GuestName: "Bob", BookingDate: "2026-08-12", TotalAmount: 80, VegCount: 0, NonVegCount: 4},
		{ID: "BK-3", GuestName: "carol", BookingDate: "2026-08-11", TotalAmount: 200, VegCount: 1, NonVegCount: 0},
	}
}

func TestSortBookingsDefaultIsDateDescending(t *testing.T) {
	out, err := SortBookings(sortableBookings(), "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"BK-2", "BK-3", "BK-1"}, ids(out))
}

func TestSortBookingsAscDescMirror(t *testing.T) {
	asc, err := SortBookings(sortableBookings(), "guestName", Ascending)
	require.NoError(t, err)
	desc, err := SortBookings(sortableBookings(), "guestName", Descending)
	require.NoError(t, err)

	// Case-insensitive comparison, so "alice" < "Bob" < "carol".
	assert.Equal(t, []string{"BK-1", "BK-2", "BK-3"}, ids(asc))
	assert.Equal(t, []string{"BK-3", "BK-2", "BK-1"}, ids(desc))
}

func TestSortBookingsEmptyDirectionMeansAscending(t *testing.T) {
	out, err := SortBookings(sortableBookings(), "totalAmount", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"BK-2", "BK-1", "BK-3"}, ids(out))
}

func TestSortBookingsGuestCountSumsVegAndNonVeg(t *testing.T) {
	out, err := SortBookings(sortableBookings(), "guestCount", Descending)
	require.NoError(t, err)
	assert.Equal(t, []string{"BK-2", "BK-1", "BK-3"}, ids(out))
}

func TestSortBookingsUnknownColumnErrors(t *testing.T) {
	_, err := SortBookings(sortableBookings(), "favouriteColour", Ascending)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort column")
}

func TestSortBookingsUnknownDirectionErrors(t *testing.T) {
	_, err := SortBookings(sortableBookings(), "guestName", "sideways")
	assert.Error(t, err)
}

func TestSortBookingsStableOnEqualKeys(t *testing.T) {
	items := []models.BookingView{
		{ID: "BK-1", BookingDate: "2026-08-10"},
		{ID: "BK-2", BookingDate: "2026-08-10"},
		{ID: "BK-3", BookingDate: "2026-08-10"},
	}
	out, err := SortBookings(items, "bookingDate", Ascending)
	require.NoError(t, err)
	assert.Equal(t, []string{"BK-1", "BK-2", "BK-3"}, ids(out))
}

func TestSortBookingsMalformedDateSortsFirst(t *testing.T) {
	items := []models.BookingView{
		{ID: "BK-1", BookingDate: "2026-08-10"},
		{ID: "BK-2", BookingDate: "garbage"},
	}
	out, err := SortBookings(items, "bookingDate", Ascending)
	require.NoError(t, err)
	assert.Equal(t, "BK-2", out[0].ID)
}

func TestSortBookingsDoesNotMutateInput(t *testing.T) {
	in := sortableBookings()
	_, err := SortBookings(in, "guestName", Descending)
	require.NoError(t, err)
	assert.Equal(t, sortableBookings(), in)
}

func TestSortSessionsDefaultAndColumns(t *testing.T) {
	sessions := []models.SessionView{
		{ID: 1, Name: "Brunch", Date: "2026-08-10", MaxCapacity: 40},
		{ID: 2, Name: "Dinner", Date: "2026-08-12", MaxCapacity: 60},
		{ID: 3, Name: "High Tea", Date: "2026-08-11", MaxCapacity: 20},
	}

	out, err := SortSessions(sessions, "", "")
	require.NoError(t, err)
	assert.Equal(t, uint(2), out[0].ID)
	assert.Equal(t, uint(1), out[2].ID)

	out, err = SortSessions(sessions, "maxCapacity", Ascending)
	require.NoError(t, err)
	assert.Equal(t, uint(3), out[0].ID)

	_, err = SortSessions(sessions, "capacity", Ascending)
	assert.Error(t, err)
}

func TestSortGuestsDefaultIsNameAscending(t *testing.T) {
	guests := []models.GuestView{
		{ID: "GST-1", Name: "Zoe", VisitCount: 3},
		{ID: "GST-2", Name: "amy", VisitCount: 12},
		{ID: "GST-3", Name: "Mel", VisitCount: 1},
	}

	out, err := SortGuests(guests, "", "")
	require.NoError(t, err)
	assert.Equal(t, "GST-2", out[0].ID)
	assert.Equal(t, "GST-1", out[2].ID)

	out, err = SortGuests(guests, "visitCount", Descending)
	require.NoError(t, err)
	assert.Equal(t, "GST-2", out[0].ID)
}

func TestSortStaffColumns(t *testing.T) {
	staff := []models.StaffView{
		{ID: 1, Name: "Gina", Department: "service"},
		{ID: 2, Name: "Hank", Department: "kitchen"},
	}

	out, err := SortStaff(staff, "department", Ascending)
	require.NoError(t, err)
	assert.Equal(t, uint(2), out[0].ID)

	out, err = SortStaff(staff, "", "")
	require.NoError(t, err)
	assert.Equal(t, uint(1), out[0].ID)
}

func ids(items []models.BookingView) []string {
	out := make([]string, len(items))
	for i, b := range items {
		out[i] = b.ID
	}
	return out
}
