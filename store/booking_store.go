// Package store provides the draft booking store backing the multi-step
// booking form. It is an explicit instance handed to whoever needs it, not a
// global: in-memory slice, snapshotted to a JSON file on every mutation,
// observers notified synchronously. Last write wins on the persisted file;
// this is a single-process convenience store, not a system of record.
package store

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/utils"
)

type Observer func(bookings []models.BookingView)

type BookingStore struct {
	mu        sync.Mutex
	path      string
	bookings  []models.BookingView
	observers map[uint64]Observer
	nextObsID uint64
}

// NewBookingStore loads any previously persisted snapshot from path. A
// missing or unreadable file starts the store empty.
func NewBookingStore(path string) *BookingStore {
	s := &BookingStore{
		path:      path,
		bookings:  []models.BookingView{},
		observers: make(map[uint64]Observer),
	}
	if data, err := os.ReadFile(path); err == nil {
		var loaded []models.BookingView
		if err := json.Unmarshal(data, &loaded); err == nil {
			s.bookings = loaded
		} else if utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("booking store: discarding corrupt snapshot %s: %v", path, err)
		}
	}
	return s
}

// Bookings returns a copy of the current bookings.
func (s *BookingStore) Bookings() []models.BookingView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Add appends a booking. Returns false for an empty or duplicate id.
func (s *BookingStore) Add(b models.BookingView) bool {
	s.mu.Lock()
	if b.ID == "" {
		s.mu.Unlock()
		return false
	}
	for _, existing := range s.bookings {
		if existing.ID == b.ID {
			s.mu.Unlock()
			return false
		}
	}
	s.bookings = append(s.bookings, b)
	s.persist()
	snap, obs := s.snapshot(), s.observerList()
	s.mu.Unlock()

	notify(obs, snap)
	return true
}

// BookingPatch carries the fields Update may merge into an existing booking.
// Nil fields are left untouched.
type BookingPatch struct {
	GuestName     *string `json:"guestName"`
	BookingDate   *string `json:"bookingDate"`
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
	VegCount      *int    `json:"vegCount"`
	NonVegCount   *int    `json:"nonVegCount"`
	ContactEmail  *string `json:"contactEmail"`
	ContactPhone  *string `json:"contactPhone"`
}

// Update merges the patch into the booking with the given id. Returns false
// when the id is absent.
func (s *BookingStore) Update(id string, patch BookingPatch) bool {
	s.mu.Lock()
	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		b := &s.bookings[i]
		if patch.GuestName != nil {
			b.GuestName = *patch.GuestName
		}
		if patch.BookingDate != nil {
			b.BookingDate = *patch.BookingDate
		}
		if patch.Status != nil {
			b.Status = *patch.Status
		}
		if patch.PaymentStatus != nil {
			b.PaymentStatus = *patch.PaymentStatus
		}
		if patch.VegCount != nil {
			b.VegCount = *patch.VegCount
		}
		if patch.NonVegCount != nil {
			b.NonVegCount = *patch.NonVegCount
		}
		if patch.ContactEmail != nil {
			b.ContactEmail = *patch.ContactEmail
		}
		if patch.ContactPhone != nil {
			b.ContactPhone = *patch.ContactPhone
		}
		s.persist()
		snap, obs := s.snapshot(), s.observerList()
		s.mu.Unlock()

		notify(obs, snap)
		return true
	}
	s.mu.Unlock()
	return false
}

// Delete removes the booking with the given id. Returns false when absent;
// the store is left unchanged in that case.
func (s *BookingStore) Delete(id string) bool {
	s.mu.Lock()
	kept := make([]models.BookingView, 0, len(s.bookings))
	found := false
	for _, b := range s.bookings {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		s.mu.Unlock()
		return false
	}
	s.bookings = kept
	s.persist()
	snap, obs := s.snapshot(), s.observerList()
	s.mu.Unlock()

	notify(obs, snap)
	return true
}

// Subscribe registers an observer called synchronously after each mutation.
// The returned function unsubscribes and is safe to call more than once.
func (s *BookingStore) Subscribe(obs Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = obs

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.observers, id)
		})
	}
}

func (s *BookingStore) snapshot() []models.BookingView {
	out := make([]models.BookingView, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *BookingStore) observerList() []Observer {
	out := make([]Observer, 0, len(s.observers))
	for _, obs := range s.observers {
		out = append(out, obs)
	}
	return out
}

// notify runs outside the store lock so an observer may call back into the
// store.
func notify(observers []Observer, snap []models.BookingView) {
	for _, obs := range observers {
		obs(snap)
	}
}

// persist is best-effort; a write failure is logged and the in-memory state
// stays authoritative for this process.
func (s *BookingStore) persist() {
	data, err := json.Marshal(s.bookings)
	if err != nil {
		if utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("booking store: marshal failed: %v", err)
		}
		return
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		if utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("booking store: persist to %s failed: %v", s.path, err)
		}
	}
}
