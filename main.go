package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/dinehub/franchise-admin/config"
	"github.com/dinehub/franchise-admin/database"
	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/realtime"
	"github.com/dinehub/franchise-admin/router"
	"github.com/dinehub/franchise-admin/services"
	"github.com/dinehub/franchise-admin/store"
	"github.com/dinehub/franchise-admin/utils"
)

func main() {
	_ = godotenv.Load()
	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Franchise{},
		&models.User{},
		&models.Session{},
		&models.Booking{},
		&models.Guest{},
		&models.LoyaltyEntry{},
		&models.Staff{},
		&models.Offer{},
		&models.MenuItem{},
		&models.MenuSessionMap{},
		&models.ChangeLog{},
		&models.ReportHistory{},
	); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate schema: %v", err)
	}

	if err := database.ExecuteTriggers(db); err != nil {
		utils.ErrorLogger.Printf("Failed to install change triggers: %v", err)
	}

	syncClient := services.NewSyncClient(db)
	monitor := services.NewChangeMonitor(db, syncClient)
	monitor.Start()
	defer monitor.Stop()

	draftPath := os.Getenv("DRAFT_STORE_PATH")
	if draftPath == "" {
		draftPath = "booking_drafts.json"
	}
	drafts := store.NewBookingStore(draftPath)
	unsubscribe := drafts.Subscribe(func(bookings []models.BookingView) {
		realtime.BroadcastDraftUpdate(bookings)
	})
	defer unsubscribe()

	r := router.SetupRouter(db, drafts)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Franchise admin API listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatalf("Server stopped: %v", err)
	}
}
