package services

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/realtime"
	"github.com/dinehub/franchise-admin/utils"
	"gorm.io/gorm"
)

// Collections the sync client can watch. menu_session_maps changes are folded
// into the menu_items collection since the join table has no list view of its
// own.
const (
	CollectionSessions  = "sessions"
	CollectionBookings  = "bookings"
	CollectionGuests    = "guests"
	CollectionStaff     = "staff"
	CollectionOffers    = "offers"
	CollectionMenuItems = "menu_items"
)

var knownCollections = map[string]bool{
	CollectionSessions:  true,
	CollectionBookings:  true,
	CollectionGuests:    true,
	CollectionStaff:     true,
	CollectionOffers:    true,
	CollectionMenuItems: true,
}

type syncSubscription struct {
	callback   func(records interface{})
	generation atomic.Uint64
}

// SyncClient implements refetch-all synchronization: any change notification
// for a collection triggers one full refetch, and the fresh collection is
// republished to every subscriber. No incremental patching, no local merges.
//
// Each subscription carries a generation counter so a refetch that was
// overtaken by a newer notification is discarded instead of overwriting
// fresher data.
type SyncClient struct {
	db     *gorm.DB
	mu     sync.Mutex
	subs   map[string]map[uint64]*syncSubscription
	nextID uint64
}

func NewSyncClient(db *gorm.DB) *SyncClient {
	return &SyncClient{
		db:   db,
		subs: make(map[string]map[uint64]*syncSubscription),
	}
}

// Subscribe registers onUpdate for a collection. The returned unsubscribe
// function releases the subscription exactly once; calling it again is a
// no-op.
func (sc *SyncClient) Subscribe(collection string, onUpdate func(records interface{})) (func(), error) {
	if !knownCollections[collection] {
		return nil, fmt.Errorf("unknown collection: %s", collection)
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.subs[collection] == nil {
		sc.subs[collection] = make(map[uint64]*syncSubscription)
	}
	id := sc.nextID
	sc.nextID++
	sc.subs[collection][id] = &syncSubscription{callback: onUpdate}

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			sc.mu.Lock()
			defer sc.mu.Unlock()
			delete(sc.subs[collection], id)
		})
	}
	return unsubscribe, nil
}

// Notify is called by the change monitor when any insert, update or delete
// hit the collection. A failed refetch is logged and surfaced to dashboard
// clients, but the subscriptions stay open awaiting the next change.
func (sc *SyncClient) Notify(collection string) {
	sc.mu.Lock()
	subs := make([]*syncSubscription, 0, len(sc.subs[collection]))
	for _, sub := range sc.subs[collection] {
		subs = append(subs, sub)
	}
	sc.mu.Unlock()

	generations := make([]uint64, len(subs))
	for i, sub := range subs {
		generations[i] = sub.generation.Add(1)
	}

	records, count, err := sc.fetch(collection)
	if err != nil {
		utils.ErrorLogger.Printf("sync: refetch of %s failed: %v", collection, err)
		realtime.BroadcastSyncError(collection, err.Error())
		return
	}

	realtime.BroadcastCollectionRefresh(collection, count)

	for i, sub := range subs {
		// A newer notification bumped the generation while we were
		// fetching; that refetch will deliver instead.
		if sub.generation.Load() != generations[i] {
			continue
		}
		sub.callback(records)
	}
}

// fetch reloads the entire collection as view models, newest first.
func (sc *SyncClient) fetch(collection string) (interface{}, int, error) {
	switch collection {
	case CollectionSessions:
		var sessions []models.Session
		if err := sc.db.Order("date DESC").Find(&sessions).Error; err != nil {
			return nil, 0, err
		}
		views := make([]models.SessionView, 0, len(sessions))
		for _, s := range sessions {
			views = append(views, models.SessionToView(s))
		}
		return views, len(views), nil

	case CollectionBookings:
		var bookings []models.Booking
		if err := sc.db.Preload("Session").Order("booking_date DESC").Find(&bookings).Error; err != nil {
			return nil, 0, err
		}
		views := make([]models.BookingView, 0, len(bookings))
		for _, b := range bookings {
			views = append(views, models.BookingToView(b))
		}
		return views, len(views), nil

	case CollectionGuests:
		var guests []models.Guest
		if err := sc.db.Order("created_at DESC").Find(&guests).Error; err != nil {
			return nil, 0, err
		}
		views := make([]models.GuestView, 0, len(guests))
		for _, g := range guests {
			views = append(views, models.GuestToView(g))
		}
		return views, len(views), nil

	case CollectionStaff:
		var staff []models.Staff
		if err := sc.db.Order("created_at DESC").Find(&staff).Error; err != nil {
			return nil, 0, err
		}
		views := make([]models.StaffView, 0, len(staff))
		for _, s := range staff {
			views = append(views, models.StaffToView(s))
		}
		return views, len(views), nil

	case CollectionOffers:
		var offers []models.Offer
		if err := sc.db.Order("created_at DESC").Find(&offers).Error; err != nil {
			return nil, 0, err
		}
		views := make([]models.OfferView, 0, len(offers))
		for _, o := range offers {
			views = append(views, models.OfferToView(o))
		}
		return views, len(views), nil

	case CollectionMenuItems:
		var items []models.MenuItem
		if err := sc.db.Order("created_at DESC").Find(&items).Error; err != nil {
			return nil, 0, err
		}
		var mappings []models.MenuSessionMap
		if err := sc.db.Find(&mappings).Error; err != nil {
			return nil, 0, err
		}
		sessionsByItem := make(map[uint][]uint)
		for _, m := range mappings {
			sessionsByItem[m.MenuItemID] = append(sessionsByItem[m.MenuItemID], m.SessionID)
		}
		views := make([]models.MenuItemView, 0, len(items))
		for _, item := range items {
			views = append(views, models.MenuItemToView(item, sessionsByItem[item.ID]))
		}
		return views, len(views), nil

	default:
		return nil, 0, fmt.Errorf("unknown collection: %s", collection)
	}
}
