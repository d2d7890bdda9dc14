package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/realtime"
	"github.com/dinehub/franchise-admin/utils"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetStats answers the headline numbers on the dashboard landing page and
// pushes the same payload to connected websocket clients.
func (dc *DashboardController) GetStats(c *gin.Context) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var totalBookings, todayBookings, totalGuests, activeSessions, activeOffers int64
	dc.DB.Model(&models.Booking{}).Count(&totalBookings)
	dc.DB.Model(&models.Booking{}).Where("booking_date >= ?", dayStart).Count(&todayBookings)
	dc.DB.Model(&models.Guest{}).Count(&totalGuests)
	dc.DB.Model(&models.Session{}).Where("is_active = ?", true).Count(&activeSessions)
	dc.DB.Model(&models.Offer{}).Where("is_active = ?", true).Count(&activeOffers)

	var totalRevenue float64
	dc.DB.Model(&models.Booking{}).
		Where("payment_status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&totalRevenue)

	bookingsByStatus := gin.H{}
	for _, status := range []string{models.BookingConfirmed, models.BookingPending, models.BookingCancelled} {
		var n int64
		dc.DB.Model(&models.Booking{}).Where("status = ?", status).Count(&n)
		bookingsByStatus[status] = n
	}

	stats := gin.H{
		"totalBookings":    totalBookings,
		"todayBookings":    todayBookings,
		"totalGuests":      totalGuests,
		"activeSessions":   activeSessions,
		"activeOffers":     activeOffers,
		"totalRevenue":     totalRevenue,
		"bookingsByStatus": bookingsByStatus,
		"connectedClients": realtime.ClientCount(),
	}

	realtime.BroadcastDashboardUpdate(stats)
	utils.RespondData(c, http.StatusOK, stats)
}
