package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

func (mc *MenuController) sessionIDsByItem() (map[uint][]uint, error) {
	var maps []models.MenuSessionMap
	if err := mc.DB.Find(&maps).Error; err != nil {
		return nil, err
	}
	byItem := make(map[uint][]uint)
	for _, m := range maps {
		byItem[m.MenuItemID] = append(byItem[m.MenuItemID], m.SessionID)
	}
	return byItem, nil
}

func (mc *MenuController) GetMenuItems(c *gin.Context) {
	q := mc.DB.Order("name ASC")
	if category := c.Query("category"); category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}

	var items []models.MenuItem
	if err := q.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	byItem, err := mc.sessionIDsByItem()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]models.MenuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, models.MenuItemToView(item, byItem[item.ID]))
	}

	utils.RespondData(c, http.StatusOK, views)
}

// GetSessionMenu lists the items served in one session.
func (mc *MenuController) GetSessionMenu(c *gin.Context) {
	sessionID, ok := paramUint(c, "session_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid session id"))
		return
	}

	var session models.Session
	if err := mc.DB.First(&session, sessionID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("session not found"))
		return
	}

	var items []models.MenuItem
	err := mc.DB.
		Joins("JOIN menu_session_maps ON menu_session_maps.menu_item_id = menu_items.id").
		Where("menu_session_maps.session_id = ?", sessionID).
		Order("menu_items.name ASC").
		Find(&items).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	byItem, err := mc.sessionIDsByItem()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]models.MenuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, models.MenuItemToView(item, byItem[item.ID]))
	}

	utils.RespondData(c, http.StatusOK, views)
}

type menuItemRequest struct {
	FranchiseID  uint     `json:"franchiseId"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Category     string   `json:"category"`
	IsVegetarian bool     `json:"isVegetarian"`
	IsGlutenFree bool     `json:"isGlutenFree"`
	IsDairyFree  bool     `json:"isDairyFree"`
	Allergens    []string `json:"allergens"`
	SessionIDs   []uint   `json:"sessionIds"`
}

func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name is required"))
		return
	}
	if req.Price <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("price must be positive"))
		return
	}
	if req.FranchiseID == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("franchiseId is required"))
		return
	}

	item := models.MenuItem{
		FranchiseID:  req.FranchiseID,
		Name:         req.Name,
		Price:        req.Price,
		Category:     req.Category,
		IsVegetarian: req.IsVegetarian,
		IsGlutenFree: req.IsGlutenFree,
		IsDairyFree:  req.IsDairyFree,
		IsAvailable:  true,
	}
	if len(req.Allergens) > 0 {
		_ = item.SetAllergens(req.Allergens)
	}

	tx := mc.DB.Begin()
	if err := tx.Create(&item).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	for _, sessionID := range req.SessionIDs {
		link := models.MenuSessionMap{MenuItemID: item.ID, SessionID: sessionID}
		if err := tx.Create(&link).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusBadRequest, errors.New("unknown session in sessionIds"))
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Created menu item %d (%s)", item.ID, item.Name)
	utils.RespondData(c, http.StatusCreated, models.MenuItemToView(item, req.SessionIDs))
}

func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, ok := paramUint(c, "item_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	var req struct {
		Name         *string   `json:"name"`
		Price        *float64  `json:"price"`
		Category     *string   `json:"category"`
		IsVegetarian *bool     `json:"isVegetarian"`
		IsGlutenFree *bool     `json:"isGlutenFree"`
		IsDairyFree  *bool     `json:"isDairyFree"`
		Allergens    *[]string `json:"allergens"`
		IsAvailable  *bool     `json:"isAvailable"`
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
		item.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("price must be positive"))
			return
		}
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.IsVegetarian != nil {
		item.IsVegetarian = *req.IsVegetarian
	}
	if req.IsGlutenFree != nil {
		item.IsGlutenFree = *req.IsGlutenFree
	}
	if req.IsDairyFree != nil {
		item.IsDairyFree = *req.IsDairyFree
	}
	if req.Allergens != nil {
		_ = item.SetAllergens(*req.Allergens)
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	byItem, err := mc.sessionIDsByItem()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondData(c, http.StatusOK, models.MenuItemToView(item, byItem[item.ID]))
}

func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, ok := paramUint(c, "item_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	tx := mc.DB.Begin()
	if err := tx.Where("menu_item_id = ?", item.ID).Delete(&models.MenuSessionMap{}).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Delete(&models.MenuItem{}, item.ID).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"id": item.ID})
}

// SetSessions replaces an item's session links wholesale.
func (mc *MenuController) SetSessions(c *gin.Context) {
	id, ok := paramUint(c, "item_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	var req struct {
		SessionIDs []uint `json:"sessionIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var count int64
	if len(req.SessionIDs) > 0 {
		mc.DB.Model(&models.Session{}).Where("id IN ?", req.SessionIDs).Count(&count)
		if count != int64(len(req.SessionIDs)) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("unknown session in sessionIds"))
			return
		}
	}

	tx := mc.DB.Begin()
	if err := tx.Where("menu_item_id = ?", item.ID).Delete(&models.MenuSessionMap{}).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	for _, sessionID := range req.SessionIDs {
		link := models.MenuSessionMap{MenuItemID: item.ID, SessionID: sessionID}
		if err := tx.Create(&link).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusOK, models.MenuItemToView(item, req.SessionIDs))
}
