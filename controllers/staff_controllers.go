package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinehub/franchise-admin/listing"
	"github.com/dinehub/franchise-admin/models"
	"github.com/dinehub/franchise-admin/utils"
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

var validStaffStatus = map[string]bool{
	models.StaffActive:   true,
	models.StaffInactive: true,
	models.StaffOnLeave:  true,
	models.StaffTraining: true,
}

func (sc *StaffController) GetStaff(c *gin.Context) {
	var staff []models.Staff
	if err := sc.DB.Find(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]models.StaffView, 0, len(staff))
	for _, s := range staff {
		views = append(views, models.StaffToView(s))
	}
	views = listing.FilterStaff(views, criteriaFromQuery(c))

	column, direction := sortParams(c)
	views, err := listing.SortStaff(views, column, direction)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondData(c, http.StatusOK, views)
}

func (sc *StaffController) CreateStaff(c *gin.Context) {
	var req struct {
		FranchiseID    uint   `json:"franchiseId"`
		Name           string `json:"name"`
		Designation    string `json:"designation"`
		Department     string `json:"department"`
		AccessLevel    string `json:"accessLevel"`
		Status         string `json:"status"`
		TelegramAccess bool   `json:"telegramAccess"`
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
	if req.Status != "" && !validStaffStatus[req.Status] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown staff status"))
		return
	}

	member := models.Staff{
		FranchiseID:    req.FranchiseID,
		Name:           req.Name,
		Designation:    req.Designation,
		Department:     req.Department,
		AccessLevel:    req.AccessLevel,
		Status:         req.Status,
		TelegramAccess: req.TelegramAccess,
	}
	if member.AccessLevel == "" {
		member.AccessLevel = "basic"
	}
	if member.Status == "" {
		member.Status = models.StaffActive
	}

	if err := sc.DB.Create(&member).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusCreated, models.StaffToView(member))
}

func (sc *StaffController) UpdateStaff(c *gin.Context) {
	id, ok := paramUint(c, "staff_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid staff id"))
		return
	}

	var member models.Staff
	if err := sc.DB.First(&member, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("staff member not found"))
		return
	}

	var req struct {
		Name           *string `json:"name"`
		Designation    *string `json:"designation"`
		Department     *string `json:"department"`
		AccessLevel    *string `json:"accessLevel"`
		Status         *string `json:"status"`
		TelegramAccess *bool   `json:"telegramAccess"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Status != nil && !validStaffStatus[*req.Status] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown staff status"))
		return
	}
	if req.Name != nil {
		if *req.Name == "" {
			utils.RespondError(c, http.StatusBadRequest, errors.New("name cannot be empty"))
			return
		}
		member.Name = *req.Name
	}
	if req.Designation != nil {
		member.Designation = *req.Designation
	}
	if req.Department != nil {
		member.Department = *req.Department
	}
	if req.AccessLevel != nil {
		member.AccessLevel = *req.AccessLevel
	}
	if req.Status != nil {
		member.Status = *req.Status
	}
	if req.TelegramAccess != nil {
		member.TelegramAccess = *req.TelegramAccess
	}

	if err := sc.DB.Save(&member).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusOK, models.StaffToView(member))
}

func (sc *StaffController) DeleteStaff(c *gin.Context) {
	id, ok := paramUint(c, "staff_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid staff id"))
		return
	}

	var member models.Staff
	if err := sc.DB.First(&member, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("staff member not found"))
		return
	}

	if err := sc.DB.Delete(&models.Staff{}, member.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondData(c, http.StatusOK, gin.H{"id": member.ID})
}
