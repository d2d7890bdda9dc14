package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinehub/franchise-admin/models"
)

func TestCollectionExists(t *testing.T) {
	_, r := setupTestServer(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodGet, "/system/collections/bookings/exists", token, nil)
	mustStatus(t, w, http.StatusOK)

	var result struct {
		Collection string `json:"collection"`
		Exists     bool   `json:"exists"`
	}
	decodeData(t, w, &result)
	assert.Equal(t, "bookings", result.Collection)
	assert.True(t, result.Exists)

	w = doJSON(t, r, http.MethodGet, "/system/collections/unicorns/exists", token, nil)
	mustStatus(t, w, http.StatusOK)
	decodeData(t, w, &result)
	assert.False(t, result.Exists)
}

func TestDraftLifecycle(t *testing.T) {
	_, r := setupTestServer(t)
	token := adminToken(t)

	draft := models.BookingView{ID: "BK-1", GuestName: "Alice", Status: "pending"}
	w := doJSON(t, r, http.MethodPost, "/drafts", token, draft)
	mustStatus(t, w, http.StatusCreated)

	// Duplicate ids are rejected.
	w = doJSON(t, r, http.MethodPost, "/drafts", token, draft)
	mustStatus(t, w, http.StatusConflict)

	w = doJSON(t, r, http.MethodPatch, "/drafts/BK-1", token,
		map[string]interface{}{"guestName": "Alice Tan", "vegCount": 3})
	mustStatus(t, w, http.StatusOK)

	var updated models.BookingView
	decodeData(t, w, &updated)
	assert.Equal(t, "Alice Tan", updated.GuestName)
	assert.Equal(t, 3, updated.VegCount)
	assert.Equal(t, "pending", updated.Status)

	w = doJSON(t, r, http.MethodGet, "/drafts", token, nil)
	mustStatus(t, w, http.StatusOK)
	var drafts []models.BookingView
	decodeData(t, w, &drafts)
	require.Len(t, drafts, 1)

	w = doJSON(t, r, http.MethodDelete, "/drafts/BK-1", token, nil)
	mustStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodDelete, "/drafts/BK-1", token, nil)
	mustStatus(t, w, http.StatusNotFound)
}

func TestDraftValidation(t *testing.T) {
	_, r := setupTestServer(t)
	token := adminToken(t)

	w := doJSON(t, r, http.MethodPost, "/drafts", token, map[string]string{"guestName": "NoID"})
	mustStatus(t, w, http.StatusBadRequest)

	w = doJSON(t, r, http.MethodPatch, "/drafts/BK-404", token, map[string]string{"guestName": "Ghost"})
	mustStatus(t, w, http.StatusNotFound)
}

func TestUnknownRouteAndEnvelope(t *testing.T) {
	_, r := setupTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/no-such-route", "", nil)
	mustStatus(t, w, http.StatusNotFound)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}
