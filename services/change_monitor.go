package services

import (
	"time"

	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/utils"
	"gorm.io/gorm"
)

// ChangeMonitor drains the change_logs table that database triggers append
// to, and pokes the sync client for every collection that changed. Refetching
// the whole collection is deliberate; it keeps the client free of merge
// logic.
type ChangeMonitor struct {
	DB       *gorm.DB
	Sync     *SyncClient
	StopChan chan struct{}
	Interval time.Duration
}

func NewChangeMonitor(db *gorm.DB, sync *SyncClient) *ChangeMonitor {
	return &ChangeMonitor{
		DB:       db,
		Sync:     sync,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Second,
	}
}

func (cm *ChangeMonitor) Start() {
	go func() {
		ticker := time.NewTicker(cm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cm.checkChanges()
			case <-cm.StopChan:
				return
			}
		}
	}()
}

func (cm *ChangeMonitor) Stop() {
	close(cm.StopChan)
}

// tableToCollection maps change-log table names to sync collections. Join
// table changes count as menu item changes.
func tableToCollection(table string) string {
	switch table {
	case "sessions":
		return CollectionSessions
	case "bookings":
		return CollectionBookings
	case "guests":
		return CollectionGuests
	case "staff":
		return CollectionStaff
	case "offers":
		return CollectionOffers
	case "menu_items", "menu_session_maps":
		return CollectionMenuItems
	default:
		return ""
	}
}

func (cm *ChangeMonitor) checkChanges() {
	var changes []models.ChangeLog

	tx := cm.DB.Begin()

	if err := tx.Where("processed = ?", false).
		Order("changed_at ASC").
		Limit(100).
		Find(&changes).Error; err != nil {
		tx.Rollback()
		utils.ErrorLogger.Printf("change monitor: fetching changes failed: %v", err)
		return
	}

	if len(changes) == 0 {
		tx.Rollback()
		return
	}

	touched := make(map[string]bool)
	for _, change := range changes {
		if collection := tableToCollection(change.TableName); collection != "" {
			touched[collection] = true
		}

		if err := tx.Model(&models.ChangeLog{}).
			Where("id = ?", change.ID).
			Update("processed", true).Error; err != nil {
			tx.Rollback()
			utils.ErrorLogger.Printf("change monitor: marking change processed failed: %v", err)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.ErrorLogger.Printf("change monitor: commit failed: %v", err)
		tx.Rollback()
		return
	}

	utils.InfoLogger.Printf("change monitor: processed %d changes across %d collections",
		len(changes), len(touched))

	for collection := range touched {
		cm.Sync.Notify(collection)
	}
}
