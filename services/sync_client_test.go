package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dinehub/franchise-admin/models"
)

func seedSession(t *testing.T, db *gorm.DB, name string, date time.Time) models.Session {
	t.Helper()
	s := models.Session{
		FranchiseID: 1,
		Name:        name,
		Type:        models.SessionDinner,
		Date:        date,
		StartTime:   "18:00",
		MaxCapacity: 40,
		IsActive:    true,
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func TestSubscribeUnknownCollection(t *testing.T) {
	sc := NewSyncClient(setupTestDB(t))

	_, err := sc.Subscribe("payments", func(interface{}) {})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown collection")
}

func TestNotifyRefetchesWholeCollection(t *testing.T) {
	db := setupTestDB(t)
	sc := NewSyncClient(db)

	seedSession(t, db, "Dinner", time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))
	seedSession(t, db, "Brunch", time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC))

	var got []models.SessionView
	calls := 0
	unsubscribe, err := sc.Subscribe(CollectionSessions, func(records interface{}) {
		calls++
		got = records.([]models.SessionView)
	})
	require.NoError(t, err)
	defer unsubscribe()

	sc.Notify(CollectionSessions)

	// One notification, one refetch, one delivery of the full collection.
	require.Equal(t, 1, calls)
	require.Len(t, got, 2)
	assert.Equal(t, "Brunch", got[0].Name)
	assert.Equal(t, "Dinner", got[1].Name)
}

func TestNotifyReachesEverySubscriber(t *testing.T) {
	db := setupTestDB(t)
	sc := NewSyncClient(db)
	seedSession(t, db, "Dinner", time.Now())

	first, second := 0, 0
	u1, err := sc.Subscribe(CollectionSessions, func(interface{}) { first++ })
	require.NoError(t, err)
	defer u1()
	u2, err := sc.Subscribe(CollectionSessions, func(interface{}) { second++ })
	require.NoError(t, err)
	defer u2()

	sc.Notify(CollectionSessions)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestNotifyOtherCollectionDoesNotDeliver(t *testing.T) {
	db := setupTestDB(t)
	sc := NewSyncClient(db)

	calls := 0
	unsubscribe, err := sc.Subscribe(CollectionGuests, func(interface{}) { calls++ })
	require.NoError(t, err)
	defer unsubscribe()

	sc.Notify(CollectionSessions)
	assert.Equal(t, 0, calls)
}

func TestUnsubscribeStopsDeliveryAndIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	sc := NewSyncClient(db)

	calls := 0
	unsubscribe, err := sc.Subscribe(CollectionStaff, func(interface{}) { calls++ })
	require.NoError(t, err)

	sc.Notify(CollectionStaff)
	unsubscribe()
	unsubscribe()
	sc.Notify(CollectionStaff)

	assert.Equal(t, 1, calls)
}

func TestMenuItemsRefetchCarriesSessionLinks(t *testing.T) {
	db := setupTestDB(t)
	sc := NewSyncClient(db)

	session := seedSession(t, db, "Dinner", time.Now())
	item := models.MenuItem{FranchiseID: 1, Name: "Laksa", Price: 12.5, IsAvailable: true}
	require.NoError(t, db.Create(&item).Error)
	require.NoError(t, db.Create(&models.MenuSessionMap{MenuItemID: item.ID, SessionID: session.ID}).Error)

	var got []models.MenuItemView
	unsubscribe, err := sc.Subscribe(CollectionMenuItems, func(records interface{}) {
		got = records.([]models.MenuItemView)
	})
	require.NoError(t, err)
	defer unsubscribe()

	sc.Notify(CollectionMenuItems)
	require.Len(t, got, 1)
	assert.Equal(t, []uint{session.ID}, got[0].SessionIDs)
}
