package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dinehub/franchise-admin/models"
)

func logChange(t *testing.T, db *gorm.DB, table string, recordID int64) {
	t.Helper()
	require.NoError(t, db.Create(&models.ChangeLog{
		TableName:  table,
		RecordID:   recordID,
		ActionType: "INSERT",
		ChangedAt:  time.Now(),
	}).Error)
}

func TestCheckChangesMarksProcessedAndNotifies(t *testing.T) {
	db := setupTestDB(t)
	sc := NewSyncClient(db)
	cm := NewChangeMonitor(db, sc)

	sessionCalls, guestCalls := 0, 0
	u1, err := sc.Subscribe(CollectionSessions, func(interface{}) { sessionCalls++ })
	require.NoError(t, err)
	defer u1()
	u2, err := sc.Subscribe(CollectionGuests, func(interface{}) { guestCalls++ })
	require.NoError(t, err)
	defer u2()

	logChange(t, db, "sessions", 1)
	logChange(t, db, "sessions", 2)
	logChange(t, db, "guests", 3)

	cm.checkChanges()

	// Two session changes coalesce into one refetch.
	assert.Equal(t, 1, sessionCalls)
	assert.Equal(t, 1, guestCalls)

	var unprocessed int64
	db.Model(&models.ChangeLog{}).Where("processed = ?", false).Count(&unprocessed)
	assert.Zero(t, unprocessed)
}

func TestCheckChangesWithEmptyBacklogIsQuiet(t *testing.T) {
	db := setupTestDB(t)
	sc := NewSyncClient(db)
	cm := NewChangeMonitor(db, sc)

	calls := 0
	unsubscribe, err := sc.Subscribe(CollectionSessions, func(interface{}) { calls++ })
	require.NoError(t, err)
	defer unsubscribe()

	cm.checkChanges()
	assert.Zero(t, calls)
}

func TestJoinTableChangesFoldIntoMenuItems(t *testing.T) {
	db := setupTestDB(t)
	sc := NewSyncClient(db)
	cm := NewChangeMonitor(db, sc)

	calls := 0
	unsubscribe, err := sc.Subscribe(CollectionMenuItems, func(interface{}) { calls++ })
	require.NoError(t, err)
	defer unsubscribe()

	logChange(t, db, "menu_session_maps", 1)
	cm.checkChanges()

	assert.Equal(t, 1, calls)
}

func TestProcessedChangesAreNotReplayed(t *testing.T) {
	db := setupTestDB(t)
	sc := NewSyncClient(db)
	cm := NewChangeMonitor(db, sc)

	calls := 0
	unsubscribe, err := sc.Subscribe(CollectionStaff, func(interface{}) { calls++ })
	require.NoError(t, err)
	defer unsubscribe()

	logChange(t, db, "staff", 1)
	cm.checkChanges()
	cm.checkChanges()

	assert.Equal(t, 1, calls)
}
