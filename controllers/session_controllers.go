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

type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

type sessionRequest struct {
	FranchiseID       uint     `json:"franchiseId"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	Date              string   `json:"date"`
	StartTime         string   `json:"startTime"`
	EndTime           string   `json:"endTime"`
	DurationMinutes   int      `json:"durationMinutes"`
	MaxCapacity       int      `json:"maxCapacity"`
	SpecialName       string   `json:"specialName"`
	SpecialPricing    float64  `json:"specialPricing"`
	SpecialAddOns     []string `json:"specialAddOns"`
	SpecialConditions string   `json:"specialConditions"`
	RecurrenceType    string   `json:"recurrenceType"`
}

func (req sessionRequest) validate() error {
	if req.Name == "" {
		return errors.New("name is required")
	}
	if req.Type == "" {
		return errors.New("type is required")
	}
	if req.Date == "" {
		return errors.New("date is required")
	}
	if req.StartTime == "" {
		return errors.New("startTime is required")
	}
	if req.FranchiseID == 0 {
		return errors.New("franchiseId is required")
	}
	return nil
}

func (req sessionRequest) apply(s *models.Session) error {
	date, ok := utils.ParseDate(req.Date)
	if !ok {
		return errors.New("date must be YYYY-MM-DD")
	}

	s.FranchiseID = req.FranchiseID
	s.Name = req.Name
	s.Type = req.Type
	s.Date = date
	s.StartTime = req.StartTime
	s.EndTime = req.EndTime
	s.DurationMinutes = req.DurationMinutes
	s.MaxCapacity = req.MaxCapacity
	s.RecurrenceType = req.RecurrenceType
	if s.RecurrenceType == "" {
		s.RecurrenceType = models.RecurrenceNone
	}

	s.SpecialName, s.SpecialPricing = nil, nil
	s.SpecialAddOns, s.SpecialConditions = nil, nil
	if req.SpecialName != "" {
		s.SpecialName = &req.SpecialName
	}
	if req.SpecialPricing != 0 {
		s.SpecialPricing = &req.SpecialPricing
	}
	if req.SpecialConditions != "" {
		s.SpecialConditions = &req.SpecialConditions
	}
	if len(req.SpecialAddOns) > 0 {
		if err := s.SetSpecialAddOns(req.SpecialAddOns); err != nil {
			return err
		}
	}
	return nil
}

func (sc *SessionController) GetSessions(c *gin.Context) {
	var sessions []models.Session
	if err := sc.DB.Find(&sessions).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	views := make([]models.SessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, models.SessionToView(s))
	}
	views = listing.FilterSessions(views, criteriaFromQuery(c))

	column, direction := sortParams(c)
	views, err := listing.SortSessions(views, column, direction)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.RespondData(c, http.StatusOK, views)
}

func (sc *SessionController) CreateSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	session := models.Session{IsActive: true}
	if err := req.apply(&session); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := sc.DB.Create(&session).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Created session %d (%s on %s)", session.ID, session.Name, req.Date)
	utils.RespondData(c, http.StatusCreated, models.SessionToView(session))
}

func (sc *SessionController) UpdateSession(c *gin.Context) {
	id, ok := paramUint(c, "session_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid session id"))
		return
	}

	var session models.Session
	if err := sc.DB.First(&session, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("session not found"))
		return
	}

	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := req.apply(&session); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := sc.DB.Save(&session).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Capacity is not a hard limit; overbooking is surfaced, not rejected.
	if session.MaxCapacity > 0 && session.BookedCount > session.MaxCapacity {
		utils.ErrorLogger.Printf("Session %d overbooked: %d booked, capacity %d",
			session.ID, session.BookedCount, session.MaxCapacity)
	}

	utils.RespondData(c, http.StatusOK, models.SessionToView(session))
}

// DeactivateSession is a soft delete: the session stays queryable with its
// deactivation reason attached.
func (sc *SessionController) DeactivateSession(c *gin.Context) {
	id, ok := paramUint(c, "session_id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid session id"))
		return
	}

	var session models.Session
	if err := sc.DB.First(&session, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("session not found"))
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Reason == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("reason is required"))
		return
	}

	session.IsActive = false
	session.DeactivationReason = &req.Reason
	if err := sc.DB.Save(&session).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Deactivated session %d: %s", session.ID, req.Reason)
	utils.RespondData(c, http.StatusOK, models.SessionToView(session))
}
