package models

import "time"

// View structs are what the dashboard consumes: camelCase fields, dates as
// plain strings, JSON-text columns unpacked into slices. Mapping in both
// directions is pure; missing optional fields get defaults, malformed values
// pass through as zero values rather than erroring.

const viewDateLayout = "2006-01-02"

type SessionView struct {
	ID                 uint     `json:"id"`
	FranchiseID        uint     `json:"franchiseId"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	Date               string   `json:"date"`
	StartTime          string   `json:"startTime"`
	EndTime            string   `json:"endTime"`
	DurationMinutes    int      `json:"durationMinutes"`
	MaxCapacity        int      `json:"maxCapacity"`
	BookedCount        int      `json:"bookedCount"`
	IsActive           bool     `json:"isActive"`
	DeactivationReason string   `json:"deactivationReason,omitempty"`
	SpecialName        string   `json:"specialName,omitempty"`
	SpecialPricing     float64  `json:"specialPricing,omitempty"`
	SpecialAddOns      []string `json:"specialAddOns"`
	SpecialConditions  string   `json:"specialConditions,omitempty"`
	RecurrenceType     string   `json:"recurrenceType"`
}

func SessionToView(s Session) SessionView {
	v := SessionView{
		ID:              s.ID,
		FranchiseID:     s.FranchiseID,
		Name:            s.Name,
		Type:            s.Type,
		Date:            s.Date.Format(viewDateLayout),
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes,
		MaxCapacity:     s.MaxCapacity,
		BookedCount:     s.BookedCount,
		IsActive:        s.IsActive,
		SpecialAddOns:   s.GetSpecialAddOns(),
		RecurrenceType:  s.RecurrenceType,
	}
	if s.Date.IsZero() {
		v.Date = ""
	}
	if s.DeactivationReason != nil {
		v.DeactivationReason = *s.DeactivationReason
	}
	if s.SpecialName != nil {
		v.SpecialName = *s.SpecialName
	}
	if s.SpecialPricing != nil {
		v.SpecialPricing = *s.SpecialPricing
	}
	if s.SpecialConditions != nil {
		v.SpecialConditions = *s.SpecialConditions
	}
	if v.RecurrenceType == "" {
		v.RecurrenceType = RecurrenceNone
	}
	return v
}

func ViewToSession(v SessionView) Session {
	s := Session{
		ID:              v.ID,
		FranchiseID:     v.FranchiseID,
		Name:            v.Name,
		Type:            v.Type,
		StartTime:       v.StartTime,
		EndTime:         v.EndTime,
		DurationMinutes: v.DurationMinutes,
		MaxCapacity:     v.MaxCapacity,
		BookedCount:     v.BookedCount,
		IsActive:        v.IsActive,
		RecurrenceType:  v.RecurrenceType,
	}
	if t, err := time.Parse(viewDateLayout, v.Date); err == nil {
		s.Date = t
	}
	if v.DeactivationReason != "" {
		s.DeactivationReason = &v.DeactivationReason
	}
	if v.SpecialName != "" {
		s.SpecialName = &v.SpecialName
	}
	if v.SpecialPricing != 0 {
		s.SpecialPricing = &v.SpecialPricing
	}
	if v.SpecialConditions != "" {
		s.SpecialConditions = &v.SpecialConditions
	}
	if len(v.SpecialAddOns) > 0 {
		_ = s.SetSpecialAddOns(v.SpecialAddOns)
	}
	if s.RecurrenceType == "" {
		s.RecurrenceType = RecurrenceNone
	}
	return s
}

type BookingView struct {
	ID             string  `json:"id"`
	FranchiseID    uint    `json:"franchiseId"`
	SessionID      uint    `json:"sessionId"`
	SessionName    string  `json:"sessionName"`
	GuestName      string  `json:"guestName"`
	GuestType      string  `json:"guestType"`
	BookingDate    string  `json:"bookingDate"`
	Status         string  `json:"status"`
	PaymentStatus  string  `json:"paymentStatus"`
	TotalAmount    float64 `json:"totalAmount"`
	VegCount       int     `json:"vegCount"`
	NonVegCount    int     `json:"nonVegCount"`
	ReminderStatus string  `json:"reminderStatus"`
	ReminderCount  int     `json:"reminderCount"`
	ContactEmail   string  `json:"contactEmail"`
	ContactPhone   string  `json:"contactPhone"`
}

func BookingToView(b Booking) BookingView {
	v := BookingView{
		ID:             b.Code,
		FranchiseID:    b.FranchiseID,
		SessionID:      b.SessionID,
		SessionName:    b.Session.Name,
		GuestName:      b.GuestName,
		GuestType:      b.GuestType,
		BookingDate:    b.BookingDate.Format(viewDateLayout),
		Status:         b.Status,
		PaymentStatus:  b.PaymentStatus,
		TotalAmount:    b.TotalAmount,
		VegCount:       b.VegCount,
		NonVegCount:    b.NonVegCount,
		ReminderStatus: b.ReminderStatus,
		ReminderCount:  b.ReminderCount,
		ContactEmail:   b.ContactEmail,
		ContactPhone:   b.ContactPhone,
	}
	if b.BookingDate.IsZero() {
		v.BookingDate = ""
	}
	if v.Status == "" {
		v.Status = BookingPending
	}
	if v.PaymentStatus == "" {
		v.PaymentStatus = PaymentPending
	}
	if v.ReminderStatus == "" {
		v.ReminderStatus = ReminderNone
	}
	return v
}

func ViewToBooking(v BookingView) Booking {
	b := Booking{
		Code:           v.ID,
		FranchiseID:    v.FranchiseID,
		SessionID:      v.SessionID,
		GuestName:      v.GuestName,
		GuestType:      v.GuestType,
		Status:         v.Status,
		PaymentStatus:  v.PaymentStatus,
		TotalAmount:    v.TotalAmount,
		VegCount:       v.VegCount,
		NonVegCount:    v.NonVegCount,
		ReminderStatus: v.ReminderStatus,
		ReminderCount:  v.ReminderCount,
		ContactEmail:   v.ContactEmail,
		ContactPhone:   v.ContactPhone,
	}
	if t, err := time.Parse(viewDateLayout, v.BookingDate); err == nil {
		b.BookingDate = t
	}
	if b.Status == "" {
		b.Status = BookingPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentPending
	}
	if b.ReminderStatus == "" {
		b.ReminderStatus = ReminderNone
	}
	return b
}

type GuestView struct {
	ID               string   `json:"id"`
	FranchiseID      uint     `json:"franchiseId"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	GuestType        string   `json:"guestType"`
	VisitCount       int      `json:"visitCount"`
	LastVisit        string   `json:"lastVisit,omitempty"`
	TotalSpend       float64  `json:"totalSpend"`
	Preferences      []string `json:"preferences"`
	LoyaltyPoints    int      `json:"loyaltyPoints"`
	UpcomingBookings int      `json:"upcomingBookings"`
}

func GuestToView(g Guest) GuestView {
	v := GuestView{
		ID:               g.Code,
		FranchiseID:      g.FranchiseID,
		Name:             g.Name,
		Email:            g.Email,
		Phone:            g.Phone,
		GuestType:        DeriveGuestType(g.VisitCount, g.LastVisitAt, g.TotalSpend, time.Now()),
		VisitCount:       g.VisitCount,
		TotalSpend:       g.TotalSpend,
		Preferences:      g.GetPreferences(),
		LoyaltyPoints:    g.LoyaltyPoints,
		UpcomingBookings: g.UpcomingBookings,
	}
	if g.LastVisitAt != nil {
		v.LastVisit = g.LastVisitAt.Format(viewDateLayout)
	}
	return v
}

// Guest types, derived from visit history rather than stored.
const (
	GuestNew           = "New"
	GuestRegular       = "Regular"
	GuestVIP           = "VIP"
	GuestInactive      = "Inactive"
	GuestHighPotential = "High Potential"
)

const (
	inactiveAfterDays      = 180
	highPotentialAvgSpend  = 150.0
	highPotentialMinVisits = 5
	vipMinVisits           = 10
	regularMinVisits       = 2
)

// DeriveGuestType classifies a guest from visit history. Inactivity wins over
// everything, then VIP, then High Potential, then Regular.
func DeriveGuestType(visitCount int, lastVisitAt *time.Time, totalSpend float64, now time.Time) string {
	if lastVisitAt != nil && now.Sub(*lastVisitAt) > inactiveAfterDays*24*time.Hour {
		return GuestInactive
	}
	if visitCount >= vipMinVisits {
		return GuestVIP
	}
	if visitCount >= highPotentialMinVisits && totalSpend/float64(visitCount) >= highPotentialAvgSpend {
		return GuestHighPotential
	}
	if visitCount >= regularMinVisits {
		return GuestRegular
	}
	return GuestNew
}

type StaffView struct {
	ID             uint   `json:"id"`
	FranchiseID    uint   `json:"franchiseId"`
	Name           string `json:"name"`
	Designation    string `json:"designation"`
	Department     string `json:"department"`
	AccessLevel    string `json:"accessLevel"`
	Status         string `json:"status"`
	TelegramAccess bool   `json:"telegramAccess"`
}

func StaffToView(s Staff) StaffView {
	v := StaffView{
		ID:             s.ID,
		FranchiseID:    s.FranchiseID,
		Name:           s.Name,
		Designation:    s.Designation,
		Department:     s.Department,
		AccessLevel:    s.AccessLevel,
		Status:         s.Status,
		TelegramAccess: s.TelegramAccess,
	}
	if v.AccessLevel == "" {
		v.AccessLevel = "basic"
	}
	if v.Status == "" {
		v.Status = StaffActive
	}
	return v
}

type OfferView struct {
	ID             uint     `json:"id"`
	FranchiseID    uint     `json:"franchiseId"`
	Code           string   `json:"code"`
	Type           string   `json:"type"`
	DiscountValue  float64  `json:"discountValue"`
	ValidFrom      string   `json:"validFrom"`
	ValidUntil     string   `json:"validUntil"`
	MaxRedemptions int      `json:"maxRedemptions"`
	RedeemedCount  int      `json:"redeemedCount"`
	SentCount      int      `json:"sentCount"`
	ViewedCount    int      `json:"viewedCount"`
	GuestSegments  []string `json:"guestSegments"`
	TargetBranches []string `json:"targetBranches"`
	Channels       []string `json:"channels"`
	IsActive       bool     `json:"isActive"`
}

func OfferToView(o Offer) OfferView {
	return OfferView{
		ID:             o.ID,
		FranchiseID:    o.FranchiseID,
		Code:           o.Code,
		Type:           o.Type,
		DiscountValue:  o.DiscountValue,
		ValidFrom:      o.ValidFrom.Format(viewDateLayout),
		ValidUntil:     o.ValidUntil.Format(viewDateLayout),
		MaxRedemptions: o.MaxRedemptions,
		RedeemedCount:  o.RedeemedCount,
		SentCount:      o.SentCount,
		ViewedCount:    o.ViewedCount,
		GuestSegments:  o.GetGuestSegments(),
		TargetBranches: o.GetTargetBranches(),
		Channels:       o.GetChannels(),
		IsActive:       o.IsActive,
	}
}

type MenuItemView struct {
	ID           uint     `json:"id"`
	FranchiseID  uint     `json:"franchiseId"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Category     string   `json:"category"`
	IsVegetarian bool     `json:"isVegetarian"`
	IsGlutenFree bool     `json:"isGlutenFree"`
	IsDairyFree  bool     `json:"isDairyFree"`
	Allergens    []string `json:"allergens"`
	IsAvailable  bool     `json:"isAvailable"`
	SessionIDs   []uint   `json:"sessionIds"`
}

func MenuItemToView(m MenuItem, sessionIDs []uint) MenuItemView {
	if sessionIDs == nil {
		sessionIDs = []uint{}
	}
	return MenuItemView{
		ID:           m.ID,
		FranchiseID:  m.FranchiseID,
		Name:         m.Name,
		Price:        m.Price,
		Category:     m.Category,
		IsVegetarian: m.IsVegetarian,
		IsGlutenFree: m.IsGlutenFree,
		IsDairyFree:  m.IsDairyFree,
		Allergens:    m.GetAllergens(),
		IsAvailable:  m.IsAvailable,
		SessionIDs:   sessionIDs,
	}
}
