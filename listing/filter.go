package listing

import (
	"github.com/dinehub/franchise-admin/models"
)

// Free-text search checks a fixed whitelist of fields per entity. An empty
// search term is a no-op.

func FilterBookings(items []models.BookingView, crit Criteria) []models.BookingView {
	out := make([]models.BookingView, 0, len(items))
	for _, b := range items {
		if crit.Search != "" && !matchesSearch(crit.Search,
			b.ID, b.GuestName, b.SessionName, b.Status, b.ContactEmail, b.ContactPhone) {
			continue
		}
		if !matchesCategory(crit.Status, b.Status) {
			continue
		}
		if !matchesCategory(crit.PaymentStatus, b.PaymentStatus) {
			continue
		}
		if !matchesCategory(crit.GuestType, b.GuestType) {
			continue
		}
		if crit.FranchiseID != 0 && b.FranchiseID != crit.FranchiseID {
			continue
		}
		if !matchesDateRange(b.BookingDate, crit.DateFrom, crit.DateTo) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func FilterSessions(items []models.SessionView, crit Criteria) []models.SessionView {
	out := make([]models.SessionView, 0, len(items))
	for _, s := range items {
		if crit.Search != "" && !matchesSearch(crit.Search, s.Name, s.Type) {
			continue
		}
		if !matchesCategory(crit.SessionType, s.Type) {
			continue
		}
		if crit.FranchiseID != 0 && s.FranchiseID != crit.FranchiseID {
			continue
		}
		if !matchesDateRange(s.Date, crit.DateFrom, crit.DateTo) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func FilterGuests(items []models.GuestView, crit Criteria) []models.GuestView {
	out := make([]models.GuestView, 0, len(items))
	for _, g := range items {
		if crit.Search != "" && !matchesSearch(crit.Search,
			g.ID, g.Name, g.Email, g.Phone, g.GuestType) {
			continue
		}
		if !matchesCategory(crit.GuestType, g.GuestType) {
			continue
		}
		if crit.FranchiseID != 0 && g.FranchiseID != crit.FranchiseID {
			continue
		}
		if !matchesDateRange(g.LastVisit, crit.DateFrom, crit.DateTo) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func FilterStaff(items []models.StaffView, crit Criteria) []models.StaffView {
	out := make([]models.StaffView, 0, len(items))
	for _, s := range items {
		if crit.Search != "" && !matchesSearch(crit.Search,
			s.Name, s.Designation, s.Department, s.Status) {
			continue
		}
		if !matchesCategory(crit.Status, s.Status) {
			continue
		}
		if !matchesCategory(crit.Department, s.Department) {
			continue
		}
		if crit.FranchiseID != 0 && s.FranchiseID != crit.FranchiseID {
			continue
		}
		out = append(out, s)
	}
	return out
}
