package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/store"
	"github.com/dinehub/franchise-admin/utils"
)

// BookingDraftController fronts the in-memory draft store backing the
// multi-step booking form. Drafts never touch the database; promotion to a
// real booking goes through the bookings endpoint.
type BookingDraftController struct {
	Store *store.BookingStore
}

func NewBookingDraftController(st *store.BookingStore) *BookingDraftController {
	return &BookingDraftController{Store: st}
}

func (dc *BookingDraftController) GetDrafts(c *gin.Context) {
	utils.RespondData(c, http.StatusOK, dc.Store.Bookings())
}

func (dc *BookingDraftController) CreateDraft(c *gin.Context) {
	var draft models.BookingView
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if draft.ID == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id is required"))
		return
	}

	if !dc.Store.Add(draft) {
		utils.RespondError(c, http.StatusConflict, errors.New("draft already exists"))
		return
	}

	utils.RespondData(c, http.StatusCreated, draft)
}

func (dc *BookingDraftController) UpdateDraft(c *gin.Context) {
	var patch store.BookingPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id := c.Param("draft_id")
	if !dc.Store.Update(id, patch) {
		utils.RespondError(c, http.StatusNotFound, errors.New("draft not found"))
		return
	}

	for _, draft := range dc.Store.Bookings() {
		if draft.ID == id {
			utils.RespondData(c, http.StatusOK, draft)
			return
		}
	}
	utils.RespondData(c, http.StatusOK, gin.H{"id": id})
}

func (dc *BookingDraftController) DeleteDraft(c *gin.Context) {
	id := c.Param("draft_id")
	if !dc.Store.Delete(id) {
		utils.RespondError(c, http.StatusNotFound, errors.New("draft not found"))
		return
	}
	utils.RespondData(c, http.StatusOK, gin.H{"id": id})
}
