package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dinehub/franchise-admin/models"
)

var bookingSeq atomic.Uint64

func seedBooking(t *testing.T, db *gorm.DB, sessionID uint, date time.Time, payment string, amount float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Booking{
		Code:          fmt.Sprintf("BK-%d", bookingSeq.Add(1)),
		FranchiseID:   1,
		SessionID:     sessionID,
		GuestName:     "Guest",
		BookingDate:   date,
		Status:        models.BookingConfirmed,
		PaymentStatus: payment,
		TotalAmount:   amount,
	}).Error)
}

func TestGenerateUnknownReportType(t *testing.T) {
	rs := NewReportService(setupTestDB(t))

	_, err := rs.Generate(ReportFilters{ReportType: "margins", DateRange: "today"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report type")
}

func TestGenerateUnknownDateRange(t *testing.T) {
	rs := NewReportService(setupTestDB(t))

	_, err := rs.Generate(ReportFilters{ReportType: ReportSales, DateRange: "fortnight"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown date range")
}

func TestSalesReportOnlyCountsPaidInWindow(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReportService(db)
	session := seedSession(t, db, "Dinner", time.Now())

	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)

	seedBooking(t, db, session.ID, today, models.PaymentPaid, 100)
	seedBooking(t, db, session.ID, today, models.PaymentPaid, 50)
	seedBooking(t, db, session.ID, today, models.PaymentPaid, 25)
	seedBooking(t, db, session.ID, today, models.PaymentPending, 999)
	seedBooking(t, db, session.ID, yesterday, models.PaymentPaid, 999)

	rows, err := rs.Generate(ReportFilters{ReportType: ReportSales, DateRange: "today"})
	require.NoError(t, err)

	// One day row plus the summary row.
	require.Len(t, rows, 2)
	assert.Equal(t, "day", rows[0].Group)
	assert.Equal(t, int64(3), rows[0].Count)
	assert.Equal(t, 175.0, rows[0].Amount)

	summary := rows[len(rows)-1]
	assert.Equal(t, "summary", summary.Group)
	assert.Equal(t, int64(3), summary.Count)
	assert.Equal(t, 175.0, summary.Amount)
}

func TestBookingsReportGroupsByDayAndSession(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReportService(db)
	dinner := seedSession(t, db, "Dinner", time.Now())
	brunch := seedSession(t, db, "Brunch", time.Now())

	today := time.Now()
	seedBooking(t, db, dinner.ID, today, models.PaymentPending, 0)
	seedBooking(t, db, dinner.ID, today, models.PaymentPaid, 40)
	seedBooking(t, db, brunch.ID, today, models.PaymentPaid, 30)

	rows, err := rs.Generate(ReportFilters{ReportType: ReportBookings, DateRange: "today"})
	require.NoError(t, err)

	var dayRows, sessionRows []ReportRow
	for _, r := range rows {
		switch r.Group {
		case "day":
			dayRows = append(dayRows, r)
		case "session":
			sessionRows = append(sessionRows, r)
		}
	}

	require.Len(t, dayRows, 1)
	assert.Equal(t, int64(3), dayRows[0].Count)

	require.Len(t, sessionRows, 2)
	assert.Equal(t, "Dinner", sessionRows[0].Label)
	assert.Equal(t, int64(2), sessionRows[0].Count)
}

func TestOccupancyReportUtilization(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReportService(db)

	s := seedSession(t, db, "Dinner", time.Now())
	require.NoError(t, db.Model(&models.Session{}).Where("id = ?", s.ID).
		Update("booked_count", 30).Error)

	rows, err := rs.Generate(ReportFilters{ReportType: ReportOccupancy, DateRange: "today"})
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Dinner", rows[0].Label)
	assert.Equal(t, int64(30), rows[0].Count)
	assert.InDelta(t, 75.0, rows[0].Amount, 0.01)
}

func TestGuestsReportBucketsByDerivedType(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReportService(db)

	recent := time.Now().AddDate(0, 0, -3)
	stale := time.Now().AddDate(0, 0, -200)
	guests := []models.Guest{
		{Code: "GST-1", FranchiseID: 1, Name: "New", VisitCount: 1, LastVisitAt: &recent},
		{Code: "GST-2", FranchiseID: 1, Name: "Reg", VisitCount: 3, LastVisitAt: &recent},
		{Code: "GST-3", FranchiseID: 1, Name: "Vip", VisitCount: 15, LastVisitAt: &recent},
		{Code: "GST-4", FranchiseID: 1, Name: "Gone", VisitCount: 15, LastVisitAt: &stale},
	}
	for i := range guests {
		require.NoError(t, db.Create(&guests[i]).Error)
	}

	rows, err := rs.Generate(ReportFilters{ReportType: ReportGuests, DateRange: "year"})
	require.NoError(t, err)

	counts := make(map[string]int64)
	for _, r := range rows {
		require.Equal(t, "guestType", r.Group)
		counts[r.Label] = r.Count
	}

	assert.Equal(t, int64(1), counts[models.GuestNew])
	assert.Equal(t, int64(1), counts[models.GuestRegular])
	assert.Equal(t, int64(1), counts[models.GuestVIP])
	assert.Equal(t, int64(1), counts[models.GuestInactive])
	assert.Equal(t, int64(0), counts[models.GuestHighPotential])
}

func TestGenerateAppendsHistoryNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReportService(db)

	_, err := rs.Generate(ReportFilters{ReportType: ReportSales, DateRange: "today"})
	require.NoError(t, err)
	_, err = rs.Generate(ReportFilters{ReportType: ReportGuests, DateRange: "week"})
	require.NoError(t, err)

	entries, err := rs.History(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ReportGuests, entries[0].ReportType)
	assert.Equal(t, models.ReportGenerated, entries[0].Action)
	assert.Equal(t, ReportSales, entries[1].ReportType)
}

func TestHistoryIsCapped(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReportService(db)
	rs.HistoryLimit = 3

	for i := 0; i < 6; i++ {
		_, err := rs.Generate(ReportFilters{ReportType: ReportSales, DateRange: "today"})
		require.NoError(t, err)
	}

	var total int64
	db.Model(&models.ReportHistory{}).Count(&total)
	assert.Equal(t, int64(3), total)

	// Survivors are the newest entries.
	entries, err := rs.History(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Greater(t, entries[0].ID, entries[2].ID)
}

func TestExportsAppendHistoryEntries(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReportService(db)
	session := seedSession(t, db, "Dinner", time.Now())
	seedBooking(t, db, session.ID, time.Now(), models.PaymentPaid, 120)

	f := ReportFilters{ReportType: ReportSales, DateRange: "today"}
	rows, err := rs.Generate(f)
	require.NoError(t, err)

	xlsx, err := rs.ExportXLSX(f, rows)
	require.NoError(t, err)
	assert.NotEmpty(t, xlsx)

	pdf, err := rs.ExportPDF(f, rows)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))

	entries, err := rs.History(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, models.ReportExportedPDF, entries[0].Action)
	assert.Equal(t, models.ReportExportedXLSX, entries[1].Action)
	assert.Equal(t, models.ReportGenerated, entries[2].Action)
}
