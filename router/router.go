package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinehub/franchise-admin/controllers"
	"github.com/dinehub/franchise-admin/middlewares"
	"github.com/dinehub/franchise-admin/store"
	"github.com/dinehub/franchise-admin/utils"
)

func SetupRouter(db *gorm.DB, drafts *store.BookingStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())

	limiter := middlewares.NewRateLimiter(100, 60)
	r.Use(limiter.RateLimit())

	// Wrong method on a known path is 405, not 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		utils.RespondError(c, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	})
	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, errors.New("route not found"))
	})

	userController := controllers.NewUserController(db)
	sessionController := controllers.NewSessionController(db)
	bookingController := controllers.NewBookingController(db)
	draftController := controllers.NewBookingDraftController(drafts)
	guestController := controllers.NewGuestController(db)
	staffController := controllers.NewStaffController(db)
	offerController := controllers.NewOfferController(db)
	menuController := controllers.NewMenuController(db)
	reportController := controllers.NewReportController(db)
	dashboardController := controllers.NewDashboardController(db)
	systemController := controllers.NewSystemController(db)

	r.GET("/ping", func(c *gin.Context) {
		utils.RespondData(c, http.StatusOK, gin.H{"message": "pong"})
	})

	strict := middlewares.NewStrictRateLimiter()
	r.POST("/register", strict, userController.Register)
	r.POST("/login", strict, userController.Login)

	manage := middlewares.RequireRole("admin", "manager")

	api := r.Group("/", middlewares.AuthMiddleware())
	{
		api.GET("/profile", userController.Profile)

		api.GET("/sessions", sessionController.GetSessions)
		api.POST("/sessions", manage, sessionController.CreateSession)
		api.PUT("/sessions/:session_id", manage, sessionController.UpdateSession)
		api.PATCH("/sessions/:session_id", manage, sessionController.DeactivateSession)
		api.GET("/sessions/:session_id/menu-items", menuController.GetSessionMenu)

		api.GET("/bookings", bookingController.GetBookings)
		api.POST("/bookings", bookingController.CreateBooking)
		api.PATCH("/bookings/:booking_code/status", bookingController.UpdateStatus)
		api.PATCH("/bookings/:booking_code/payment", bookingController.UpdatePayment)
		api.POST("/bookings/:booking_code/reminder", bookingController.SendReminder)
		api.DELETE("/bookings/:booking_code", manage, bookingController.DeleteBooking)

		api.GET("/drafts", draftController.GetDrafts)
		api.POST("/drafts", draftController.CreateDraft)
		api.PATCH("/drafts/:draft_id", draftController.UpdateDraft)
		api.DELETE("/drafts/:draft_id", draftController.DeleteDraft)

		api.GET("/guests", guestController.GetGuests)
		api.POST("/guests", guestController.CreateGuest)
		api.GET("/guests/:guest_code", guestController.GetGuest)
		api.PATCH("/guests/:guest_code", guestController.UpdateGuest)
		api.DELETE("/guests/:guest_code", manage, guestController.DeleteGuest)
		api.GET("/guests/:guest_code/loyalty", guestController.GetLoyalty)
		api.POST("/guests/:guest_code/loyalty", guestController.AddLoyalty)
		api.POST("/guests/:guest_code/visit", guestController.RecordVisit)

		api.GET("/staff", staffController.GetStaff)
		api.POST("/staff", manage, staffController.CreateStaff)
		api.PATCH("/staff/:staff_id", manage, staffController.UpdateStaff)
		api.DELETE("/staff/:staff_id", middlewares.RequireRole("admin"), staffController.DeleteStaff)

		api.GET("/offers", offerController.GetOffers)
		api.POST("/offers", manage, offerController.CreateOffer)
		api.POST("/offers/analytics", offerController.Analytics)
		api.PATCH("/offers/:offer_id", manage, offerController.UpdateOffer)
		api.DELETE("/offers/:offer_id", middlewares.RequireRole("admin"), offerController.DeleteOffer)
		api.POST("/offers/:offer_id/events", offerController.RecordEvent)

		api.GET("/menu-items", menuController.GetMenuItems)
		api.POST("/menu-items", manage, menuController.CreateMenuItem)
		api.PATCH("/menu-items/:item_id", manage, menuController.UpdateMenuItem)
		api.DELETE("/menu-items/:item_id", middlewares.RequireRole("admin"), menuController.DeleteMenuItem)
		api.PUT("/menu-items/:item_id/sessions", manage, menuController.SetSessions)

		api.GET("/dashboard/stats", dashboardController.GetStats)

		api.GET("/system/collections/:collection_name/exists", systemController.CollectionExists)
	}

	admin := r.Group("/admin", middlewares.AuthMiddleware(), manage)
	{
		admin.GET("/reports", reportController.Generate)
		admin.GET("/reports/export", reportController.Export)
		admin.GET("/reports/export-pdf", reportController.ExportPDF)
		admin.GET("/reports/history", reportController.History)
	}

	ws := r.Group("/ws", middlewares.WebSocketAuthMiddleware())
	{
		ws.GET("/dashboard", controllers.DashboardWS)
	}

	return r
}
