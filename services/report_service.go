package services

import (
	"fmt"
	"time"

	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/utils"
	"gorm.io/gorm"
)

// Report types
const (
	ReportSales     = "sales"
	ReportBookings  = "bookings"
	ReportOccupancy = "occupancy"
	ReportGuests    = "guests"
)

// ReportFilters selects a report type and the window it aggregates over.
// DateRange is a named preset resolved at call time, or "custom" with
// explicit bounds. FranchiseID zero means all franchises.
type ReportFilters struct {
	ReportType  string `form:"report_type" json:"reportType"`
	DateRange   string `form:"date_range" json:"dateRange"`
	FranchiseID uint   `form:"franchise_id" json:"franchiseId"`
	StartDate   string `form:"start_date" json:"startDate"`
	EndDate     string `form:"end_date" json:"endDate"`
}

// ReportRow is one aggregate line. Group names the dimension ("day",
// "session", "guestType", "summary"), Label the bucket.
type ReportRow struct {
	Group  string  `json:"group"`
	Label  string  `json:"label"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

type reportFn func(f ReportFilters, from, to time.Time) ([]ReportRow, error)

// ReportService aggregates bookings/sessions/guests into report rows and
// keeps a capped history of generations and exports.
type ReportService struct {
	db           *gorm.DB
	HistoryLimit int
	generators   map[string]reportFn
}

func NewReportService(db *gorm.DB) *ReportService {
	rs := &ReportService{
		db:           db,
		HistoryLimit: 50,
	}
	rs.generators = map[string]reportFn{
		ReportSales:     rs.salesReport,
		ReportBookings:  rs.bookingsReport,
		ReportOccupancy: rs.occupancyReport,
		ReportGuests:    rs.guestsReport,
	}
	return rs
}

// Generate runs the aggregation for the selected report type and appends a
// history entry on success.
func (rs *ReportService) Generate(f ReportFilters) ([]ReportRow, error) {
	gen, ok := rs.generators[f.ReportType]
	if !ok {
		return nil, fmt.Errorf("unknown report type: %s", f.ReportType)
	}

	from, to, err := utils.ResolveDateRange(f.DateRange, f.StartDate, f.EndDate)
	if err != nil {
		return nil, err
	}

	rows, err := gen(f, from, to)
	if err != nil {
		return nil, err
	}

	rs.appendHistory(f, models.ReportGenerated, len(rows), from, to)
	return rows, nil
}

type dayAggregate struct {
	Day string
	Cnt int64
	Amt float64
}

type labelAggregate struct {
	Label string
	Cnt   int64
	Amt   float64
}

func (rs *ReportService) scopedBookings(f ReportFilters, from, to time.Time) *gorm.DB {
	q := rs.db.Model(&models.Booking{}).
		Where("bookings.booking_date BETWEEN ? AND ?", from, to)
	if f.FranchiseID != 0 {
		q = q.Where("bookings.franchise_id = ?", f.FranchiseID)
	}
	return q
}

// salesReport sums paid booking revenue per day plus a summary row.
func (rs *ReportService) salesReport(f ReportFilters, from, to time.Time) ([]ReportRow, error) {
	var days []dayAggregate
	err := rs.scopedBookings(f, from, to).
		Where("bookings.payment_status = ?", models.PaymentPaid).
		Select("DATE(bookings.booking_date) AS day, COUNT(*) AS cnt, COALESCE(SUM(bookings.total_amount), 0) AS amt").
		Group("day").
		Order("day").
		Scan(&days).Error
	if err != nil {
		return nil, err
	}

	rows := make([]ReportRow, 0, len(days)+1)
	var totalCount int64
	var totalAmount float64
	for _, d := range days {
		rows = append(rows, ReportRow{Group: "day", Label: d.Day, Count: d.Cnt, Amount: d.Amt})
		totalCount += d.Cnt
		totalAmount += d.Amt
	}
	rows = append(rows, ReportRow{Group: "summary", Label: "total", Count: totalCount, Amount: totalAmount})
	return rows, nil
}

// bookingsReport counts bookings per day and per session.
func (rs *ReportService) bookingsReport(f ReportFilters, from, to time.Time) ([]ReportRow, error) {
	var days []dayAggregate
	err := rs.scopedBookings(f, from, to).
		Select("DATE(bookings.booking_date) AS day, COUNT(*) AS cnt").
		Group("day").
		Order("day").
		Scan(&days).Error
	if err != nil {
		return nil, err
	}

	var sessions []labelAggregate
	err = rs.scopedBookings(f, from, to).
		Joins("JOIN sessions ON sessions.id = bookings.session_id").
		Select("sessions.name AS label, COUNT(*) AS cnt").
		Group("sessions.name").
		Order("cnt DESC").
		Scan(&sessions).Error
	if err != nil {
		return nil, err
	}

	rows := make([]ReportRow, 0, len(days)+len(sessions))
	for _, d := range days {
		rows = append(rows, ReportRow{Group: "day", Label: d.Day, Count: d.Cnt})
	}
	for _, s := range sessions {
		rows = append(rows, ReportRow{Group: "session", Label: s.Label, Count: s.Cnt})
	}
	return rows, nil
}

// occupancyReport reports booked seats against capacity per session in the
// window. Amount carries the utilization percentage.
func (rs *ReportService) occupancyReport(f ReportFilters, from, to time.Time) ([]ReportRow, error) {
	q := rs.db.Where("date BETWEEN ? AND ?", from, to)
	if f.FranchiseID != 0 {
		q = q.Where("franchise_id = ?", f.FranchiseID)
	}

	var sessions []models.Session
	if err := q.Order("date ASC").Find(&sessions).Error; err != nil {
		return nil, err
	}

	rows := make([]ReportRow, 0, len(sessions))
	for _, s := range sessions {
		utilization := 0.0
		if s.MaxCapacity > 0 {
			utilization = float64(s.BookedCount) / float64(s.MaxCapacity) * 100
		}
		rows = append(rows, ReportRow{
			Group:  "session",
			Label:  s.Name,
			Count:  int64(s.BookedCount),
			Amount: utilization,
		})
	}
	return rows, nil
}

// guestsReport buckets guests active in the window by derived guest type.
func (rs *ReportService) guestsReport(f ReportFilters, from, to time.Time) ([]ReportRow, error) {
	q := rs.db.Model(&models.Guest{})
	if f.FranchiseID != 0 {
		q = q.Where("franchise_id = ?", f.FranchiseID)
	}

	var guests []models.Guest
	if err := q.Find(&guests).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	counts := make(map[string]int64)
	for _, g := range guests {
		if g.CreatedAt.After(to) {
			continue
		}
		counts[models.DeriveGuestType(g.VisitCount, g.LastVisitAt, g.TotalSpend, now)]++
	}

	order := []string{models.GuestNew, models.GuestRegular, models.GuestHighPotential, models.GuestVIP, models.GuestInactive}
	rows := make([]ReportRow, 0, len(order))
	for _, label := range order {
		rows = append(rows, ReportRow{Group: "guestType", Label: label, Count: counts[label]})
	}
	return rows, nil
}

// History returns the newest history entries.
func (rs *ReportService) History(limit int) ([]models.ReportHistory, error) {
	if limit <= 0 || limit > rs.HistoryLimit {
		limit = rs.HistoryLimit
	}
	var entries []models.ReportHistory
	err := rs.db.Order("id DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

// appendHistory records a generation or export and trims the log to the cap.
// History write failures are logged, never surfaced; the report itself
// succeeded.
func (rs *ReportService) appendHistory(f ReportFilters, action string, rowCount int, from, to time.Time) {
	entry := models.ReportHistory{
		ReportType: f.ReportType,
		DateRange:  f.DateRange,
		StartDate:  &from,
		EndDate:    &to,
		Action:     action,
		RowCount:   rowCount,
	}
	if f.FranchiseID != 0 {
		fid := f.FranchiseID
		entry.FranchiseID = &fid
	}
	if err := rs.db.Create(&entry).Error; err != nil {
		utils.ErrorLogger.Printf("report history: append failed: %v", err)
		return
	}

	var staleIDs []uint
	if err := rs.db.Model(&models.ReportHistory{}).
		Order("id DESC").
		Offset(rs.HistoryLimit).
		Limit(1000).
		Pluck("id", &staleIDs).Error; err != nil {
		utils.ErrorLogger.Printf("report history: trim lookup failed: %v", err)
		return
	}
	if len(staleIDs) > 0 {
		if err := rs.db.Delete(&models.ReportHistory{}, staleIDs).Error; err != nil {
			utils.ErrorLogger.Printf("report history: trim failed: %v", err)
		}
	}
}
