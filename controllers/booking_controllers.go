package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dinehub/franchise-admin/listing"
	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/utils"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

func generateBookingCode() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

var validBookingStatus = map[string]bool{
	models.BookingConfirmed: true,
	models.BookingPending:   true,
	models.BookingCancelled: true,
}

var validPaymentStatus = map[string]bool{
	models.PaymentPaid:     true,
	models.PaymentPending:  true,
	models.PaymentPartial:  true,
	models.PaymentRefunded: true,
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := bc.DB.Preload("Session").Find(&bookings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, models.BookingToView(b))
	}
	views = listing.FilterBookings(views, criteriaFromQuery(c))

	column, direction := sortParams(c)
	views, err := listing.SortBookings(views, column, direction)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondData(c, http.StatusOK, views)
}

type bookingRequest struct {
	FranchiseID   uint    `json:"franchiseId"`
	SessionID     uint    `json:"sessionId"`
	GuestName     string  `json:"guestName"`
	GuestType     string  `json:"guestType"`
	BookingDate   string  `json:"bookingDate"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	TotalAmount   float64 `json:"totalAmount"`
	VegCount      int     `json:"vegCount"`
	NonVegCount   int     `json:"nonVegCount"`
	ContactEmail  string  `json:"contactEmail"`
	ContactPhone  string  `json:"contactPhone"`
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.GuestName == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("guestName is required"))
		return
	}
	if req.SessionID == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("sessionId is required"))
		return
	}
	date, ok := utils.ParseDate(req.BookingDate)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("bookingDate must be YYYY-MM-DD"))
		return
	}
	if req.Status != "" && !validBookingStatus[req.Status] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown booking status"))
		return
	}
	if req.PaymentStatus != "" && !validPaymentStatus[req.PaymentStatus] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown payment status"))
		return
	}

	var session models.Session
	if err := bc.DB.First(&session, req.SessionID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("session not found"))
		return
	}

	booking := models.Booking{
		Code:           generateBookingCode(),
		FranchiseID:    req.FranchiseID,
		SessionID:      session.ID,
		GuestName:      req.GuestName,
		GuestType:      req.GuestType,
		BookingDate:    date,
		Status:         req.Status,
		PaymentStatus:  req.PaymentStatus,
		TotalAmount:    req.TotalAmount,
		VegCount:       req.VegCount,
		NonVegCount:    req.NonVegCount,
		ReminderStatus: models.ReminderNone,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
	}
	if booking.FranchiseID == 0 {
		booking.FranchiseID = session.FranchiseID
	}
	if booking.Status == "" {
		booking.Status = models.BookingPending
	}
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = models.PaymentPending
	}

	tx := bc.DB.Begin()
	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Model(&models.Session{}).Where("id = ?", session.ID).
		UpdateColumn("booked_count", gorm.Expr("booked_count + 1")).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if session.MaxCapacity > 0 && session.BookedCount+1 > session.MaxCapacity {
		utils.ErrorLogger.Printf("Session %d overbooked: %d booked, capacity %d",
			session.ID, session.BookedCount+1, session.MaxCapacity)
	}

	booking.Session = session
	utils.InfoLogger.Printf("Created booking %s for session %d", booking.Code, session.ID)
	utils.RespondData(c, http.StatusCreated, models.BookingToView(booking))
}

func (bc *BookingController) findByCode(c *gin.Context) (*models.Booking, bool) {
	var booking models.Booking
	err := bc.DB.Preload("Session").Where("code = ?", c.Param("booking_code")).First(&booking).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("booking not found"))
		return nil, false
	}
	return &booking, true
}

// UpdateStatus moves a booking between statuses. Any transition is allowed;
// the session's booked count follows cancellations in both directions.
func (bc *BookingController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !validBookingStatus[req.Status] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown booking status"))
		return
	}

	booking, ok := bc.findByCode(c)
	if !ok {
		return
	}

	prev := booking.Status
	booking.Status = req.Status
	if err := bc.DB.Save(booking).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if prev != models.BookingCancelled && req.Status == models.BookingCancelled {
		bc.adjustBookedCount(booking.SessionID, -1)
	} else if prev == models.BookingCancelled && req.Status != models.BookingCancelled {
		bc.adjustBookedCount(booking.SessionID, +1)
	}

	utils.RespondData(c, http.StatusOK, models.BookingToView(*booking))
}

func (bc *BookingController) UpdatePayment(c *gin.Context) {
	var req struct {
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !validPaymentStatus[req.PaymentStatus] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown payment status"))
		return
	}

	booking, ok := bc.findByCode(c)
	if !ok {
		return
	}

	booking.PaymentStatus = req.PaymentStatus
	if err := bc.DB.Save(booking).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusOK, models.BookingToView(*booking))
}

func (bc *BookingController) SendReminder(c *gin.Context) {
	booking, ok := bc.findByCode(c)
	if !ok {
		return
	}

	booking.ReminderStatus = models.ReminderSent
	booking.ReminderCount++
	if err := bc.DB.Save(booking).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reminder %d sent for booking %s", booking.ReminderCount, booking.Code)
	utils.RespondData(c, http.StatusOK, models.BookingToView(*booking))
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	booking, ok := bc.findByCode(c)
	if !ok {
		return
	}

	tx := bc.DB.Begin()
	if err := tx.Delete(&models.Booking{}, booking.ID).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if booking.Status != models.BookingCancelled {
		if err := tx.Model(&models.Session{}).
			Where("id = ? AND booked_count > 0", booking.SessionID).
			UpdateColumn("booked_count", gorm.Expr("booked_count - 1")).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Deleted booking %s", booking.Code)
	utils.RespondData(c, http.StatusOK, gin.H{"id": booking.Code})
}

func (bc *BookingController) adjustBookedCount(sessionID uint, delta int) {
	q := bc.DB.Model(&models.Session{}).Where("id = ?", sessionID)
	if delta < 0 {
		q = q.Where("booked_count > 0")
	}
	if err := q.UpdateColumn("booked_count", gorm.Expr("booked_count + ?", delta)).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to adjust booked count for session %d: %v", sessionID, err)
	}
}
