package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/services"
	"github.com/dinehub/franchise-admin/utils"
)

type OfferController struct {
	DB  *gorm.DB
	Svc *services.OfferService
}

func NewOfferController(db *gorm.DB) *OfferController {
	return &OfferController{DB: db, Svc: services.NewOfferService(db)}
}

var validOfferType = map[string]bool{
	models.OfferPercentage: true,
	models.OfferFixed:      true,
	models.OfferBogo:       true,
}

func (oc *OfferController) GetOffers(c *gin.Context) {
	q := oc.DB.Order("valid_until DESC")
	if c.Query("active") == "true" {
		q = q.Where("is_active = ?", true)
	}

	var offers []models.Offer
	if err := q.Find(&offers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]models.OfferView, 0, len(offers))
	for _, o := range offers {
		views = append(views, models.OfferToView(o))
	}

	utils.RespondData(c, http.StatusOK, views)
}

type offerRequest struct {
	FranchiseID    uint     `json:"franchiseId"`
	Code           string   `json:"code"`
	Type           string   `json:"type"`
	DiscountValue  float64  `json:"discountValue"`
	ValidFrom      string   `json:"validFrom"`
	ValidUntil     string   `json:"validUntil"`
	MaxRedemptions int      `json:"maxRedemptions"`
	GuestSegments  []string `json:"guestSegments"`
	TargetBranches []string `json:"targetBranches"`
	Channels       []string `json:"channels"`
}

func (oc *OfferController) CreateOffer(c *gin.Context) {
	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Code == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("code is required"))
		return
	}
	if !validOfferType[req.Type] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown offer type"))
		return
	}
	if req.DiscountValue <= 0 && req.Type != models.OfferBogo {
		utils.RespondError(c, http.StatusBadRequest, errors.New("discountValue must be positive"))
		return
	}
	if req.FranchiseID == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("franchiseId is required"))
		return
	}
	from, ok := utils.ParseDate(req.ValidFrom)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("validFrom must be YYYY-MM-DD"))
		return
	}
	until, ok := utils.ParseDate(req.ValidUntil)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("validUntil must be YYYY-MM-DD"))
		return
	}
	if until.Before(from) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("validUntil is before validFrom"))
		return
	}

	offer := models.Offer{
		FranchiseID:    req.FranchiseID,
		Code:           req.Code,
		Type:           req.Type,
		DiscountValue:  req.DiscountValue,
		ValidFrom:      from,
		ValidUntil:     until,
		MaxRedemptions: req.MaxRedemptions,
		IsActive:       true,
	}
	_ = offer.SetGuestSegments(req.GuestSegments)
	_ = offer.SetTargetBranches(req.TargetBranches)
	_ = offer.SetChannels(req.Channels)

	if err := oc.DB.Create(&offer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Created offer %s (%s)", offer.Code, offer.Type)
	utils.RespondData(c, http.StatusCreated, models.OfferToView(offer))
}

func (oc *OfferController) UpdateOffer(c *gin.Context) {
	id, ok := paramUint(c, "offer_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid offer id"))
		return
	}

	var offer models.Offer
	if err := oc.DB.First(&offer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("offer not found"))
		return
	}

	var req struct {
		DiscountValue  *float64  `json:"discountValue"`
		ValidFrom      *string   `json:"validFrom"`
		ValidUntil     *string   `json:"validUntil"`
		MaxRedemptions *int      `json:"maxRedemptions"`
		GuestSegments  *[]string `json:"guestSegments"`
		TargetBranches *[]string `json:"targetBranches"`
		Channels       *[]string `json:"channels"`
		IsActive       *bool     `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.DiscountValue != nil {
		offer.DiscountValue = *req.DiscountValue
	}
	if req.ValidFrom != nil {
		from, ok := utils.ParseDate(*req.ValidFrom)
		if !ok {
			utils.RespondError(c, http.StatusBadRequest, errors.New("validFrom must be YYYY-MM-DD"))
			return
		}
		offer.ValidFrom = from
	}
	if req.ValidUntil != nil {
		until, ok := utils.ParseDate(*req.ValidUntil)
		if !ok {
			utils.RespondError(c, http.StatusBadRequest, errors.New("validUntil must be YYYY-MM-DD"))
			return
		}
		offer.ValidUntil = until
	}
	if req.MaxRedemptions != nil {
		offer.MaxRedemptions = *req.MaxRedemptions
	}
	if req.GuestSegments != nil {
		_ = offer.SetGuestSegments(*req.GuestSegments)
	}
	if req.TargetBranches != nil {
		_ = offer.SetTargetBranches(*req.TargetBranches)
	}
	if req.Channels != nil {
		_ = offer.SetChannels(*req.Channels)
	}
	if req.IsActive != nil {
		offer.IsActive = *req.IsActive
	}

	if err := oc.DB.Save(&offer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusOK, models.OfferToView(offer))
}

func (oc *OfferController) DeleteOffer(c *gin.Context) {
	id, ok := paramUint(c, "offer_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid offer id"))
		return
	}

	var offer models.Offer
	if err := oc.DB.First(&offer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("offer not found"))
		return
	}

	if err := oc.DB.Delete(&models.Offer{}, offer.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"id": offer.ID})
}

// RecordEvent increments one of the funnel counters analytics is computed
// from.
func (oc *OfferController) RecordEvent(c *gin.Context) {
	id, ok := paramUint(c, "offer_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid offer id"))
		return
	}

	var req struct {
		Event string `json:"event"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	column := map[string]string{
		"sent":     "sent_count",
		"viewed":   "viewed_count",
		"redeemed": "redeemed_count",
	}[req.Event]
	if column == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("event must be sent, viewed or redeemed"))
		return
	}

	var offer models.Offer
	if err := oc.DB.First(&offer, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("offer not found"))
		return
	}

	if err := oc.DB.Model(&models.Offer{}).Where("id = ?", offer.ID).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := oc.DB.First(&offer, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondData(c, http.StatusOK, models.OfferToView(offer))
}

// Analytics answers the redemption funnel for an explicit set of offers.
func (oc *OfferController) Analytics(c *gin.Context) {
	var req struct {
		OfferIDs []uint `json:"offerIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(req.OfferIDs) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("offerIds is required"))
		return
	}

	stats, summary, err := oc.Svc.Analytics(req.OfferIDs)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{
		"offers":  stats,
		"summary": summary,
	})
}
