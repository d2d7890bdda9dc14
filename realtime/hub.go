// Package realtime holds the websocket hub pushing change events to
// connected dashboard clients.
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/dinehub/franchise-admin/utils"
	"github.com/gorilla/websocket"
)

// Event types
const (
	EventCollectionRefresh = "collection_refresh"
	EventSessionUpdate     = "session_update"
	EventBookingUpdate     = "booking_update"
	EventGuestUpdate       = "guest_update"
	EventStaffUpdate       = "staff_update"
	EventOfferUpdate       = "offer_update"
	EventMenuUpdate        = "menu_update"
	EventDraftUpdate       = "draft_update"
	EventDashboardUpdate   = "dashboard_update"
	EventSyncError         = "sync_error"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub tracks every connected dashboard client and its role.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a connection with its role.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient releases a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// ClientCount reports how many dashboard clients are connected.
func ClientCount() int {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	return len(hub.clients)
}

// BroadcastCollectionRefresh tells clients a collection changed and how many
// records the refetch returned.
func BroadcastCollectionRefresh(collection string, count int) {
	broadcast(Message{
		Event: EventCollectionRefresh,
		Data: map[string]interface{}{
			"collection": collection,
			"count":      count,
		},
	})
}

// BroadcastSyncError surfaces a failed refetch to clients. The subscription
// stays open; clients decide whether to nag the user.
func BroadcastSyncError(collection string, errMsg string) {
	broadcast(Message{
		Event: EventSyncError,
		Data: map[string]interface{}{
			"collection": collection,
			"error":      errMsg,
		},
	})
}

// BroadcastDraftUpdate pushes the current draft booking list.
func BroadcastDraftUpdate(data interface{}) {
	broadcast(Message{
		Event: EventDraftUpdate,
		Data:  data,
	})
}

// BroadcastDashboardUpdate pushes refreshed dashboard stats.
func BroadcastDashboardUpdate(data interface{}) {
	broadcast(Message{
		Event: EventDashboardUpdate,
		Data:  data,
	})
}

// BroadcastMessage broadcasts an arbitrary event.
func BroadcastMessage(msg Message) {
	broadcast(msg)
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("realtime: marshal failed: %v", err)
		return
	}

	for conn, role := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("realtime: send to %s client failed: %v", role, err)
			continue
		}
	}
}
