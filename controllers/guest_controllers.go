package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dinehub/franchise-admin/listing"
	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/utils"
)

type GuestController struct {
	DB *gorm.DB
}

func NewGuestController(db *gorm.DB) *GuestController {
	return &GuestController{DB: db}
}

func generateGuestCode() string {
	return "GST-" + strings.ToUpper(uuid.NewString()[:8])
}

func (gc *GuestController) GetGuests(c *gin.Context) {
	var guests []models.Guest
	if err := gc.DB.Find(&guests).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]models.GuestView, 0, len(guests))
	for _, g := range guests {
		views = append(views, models.GuestToView(g))
	}
	views = listing.FilterGuests(views, criteriaFromQuery(c))

	column, direction := sortParams(c)
	views, err := listing.SortGuests(views, column, direction)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondData(c, http.StatusOK, views)
}

func (gc *GuestController) CreateGuest(c *gin.Context) {
	var req struct {
		FranchiseID uint     `json:"franchiseId"`
		Name        string   `json:"name"`
		Email       string   `json:"email"`
		Phone       string   `json:"phone"`
		Preferences []string `json:"preferences"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name is required"))
		return
	}
	if req.FranchiseID == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("franchiseId is required"))
		return
	}

	guest := models.Guest{
		Code:        generateGuestCode(),
		FranchiseID: req.FranchiseID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
	}
	if len(req.Preferences) > 0 {
		if err := guest.SetPreferences(req.Preferences); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}

	if err := gc.DB.Create(&guest).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Created guest %s (%s)", guest.Code, guest.Name)
	utils.RespondData(c, http.StatusCreated, models.GuestToView(guest))
}

func (gc *GuestController) findByCode(c *gin.Context) (*models.Guest, bool) {
	var guest models.Guest
	err := gc.DB.Where("code = ?", c.Param("guest_code")).First(&guest).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("guest not found"))
		return nil, false
	}
	return &guest, true
}

func (gc *GuestController) GetGuest(c *gin.Context) {
	guest, ok := gc.findByCode(c)
	if !ok {
		return
	}
	utils.RespondData(c, http.StatusOK, models.GuestToView(*guest))
}

func (gc *GuestController) UpdateGuest(c *gin.Context) {
	guest, ok := gc.findByCode(c)
	if !ok {
		return
	}

	var req struct {
		Name        *string   `json:"name"`
		Email       *string   `json:"email"`
		Phone       *string   `json:"phone"`
		Preferences *[]string `json:"preferences"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			utils.RespondError(c, http.StatusBadRequest, errors.New("name cannot be empty"))
			return
		}
		guest.Name = *req.Name
	}
	if req.Email != nil {
		guest.Email = *req.Email
	}
	if req.Phone != nil {
		guest.Phone = *req.Phone
	}
	if req.Preferences != nil {
		if err := guest.SetPreferences(*req.Preferences); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}

	if err := gc.DB.Save(guest).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusOK, models.GuestToView(*guest))
}

func (gc *GuestController) DeleteGuest(c *gin.Context) {
	guest, ok := gc.findByCode(c)
	if !ok {
		return
	}

	if err := gc.DB.Delete(&models.Guest{}, guest.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"id": guest.Code})
}

// AddLoyalty appends a ledger entry and moves the guest's balance. Negative
// points are redemptions.
func (gc *GuestController) AddLoyalty(c *gin.Context) {
	guest, ok := gc.findByCode(c)
	if !ok {
		return
	}

	var req struct {
		Points int    `json:"points"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Points == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("points must be non-zero"))
		return
	}

	entry := models.LoyaltyEntry{
		GuestID: guest.ID,
		Points:  req.Points,
		Reason:  req.Reason,
	}

	tx := gc.DB.Begin()
	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Model(&models.Guest{}).Where("id = ?", guest.ID).
		UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", req.Points)).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{
		"id":            guest.Code,
		"loyaltyPoints": guest.LoyaltyPoints + req.Points,
	})
}

func (gc *GuestController) GetLoyalty(c *gin.Context) {
	guest, ok := gc.findByCode(c)
	if !ok {
		return
	}

	var entries []models.LoyaltyEntry
	if err := gc.DB.Where("guest_id = ?", guest.ID).
		Order("created_at DESC").Find(&entries).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	ledger := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		ledger = append(ledger, gin.H{
			"id":        e.ID,
			"points":    e.Points,
			"reason":    e.Reason,
			"createdAt": e.CreatedAt.Format(time.RFC3339),
		})
	}

	utils.RespondData(c, http.StatusOK, gin.H{
		"id":            guest.Code,
		"loyaltyPoints": guest.LoyaltyPoints,
		"ledger":        ledger,
	})
}

// RecordVisit bumps the visit counters a guest's derived type is computed
// from.
func (gc *GuestController) RecordVisit(c *gin.Context) {
	guest, ok := gc.findByCode(c)
	if !ok {
		return
	}

	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Amount < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("amount cannot be negative"))
		return
	}

	now := time.Now()
	guest.VisitCount++
	guest.TotalSpend += req.Amount
	guest.LastVisitAt = &now

	if err := gc.DB.Save(guest).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusOK, models.GuestToView(*guest))
}
