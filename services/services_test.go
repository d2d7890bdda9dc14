package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
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
	))

	require.NoError(t, db.Create(&models.Franchise{ID: 1, Name: "Harbourfront"}).Error)
	return db
}
