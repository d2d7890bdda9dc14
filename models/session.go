package models

import (
	"encoding/json"
	"time"
)

// Session types
const (
	SessionBreakfast    = "breakfast"
	SessionBrunch       = "brunch"
	SessionLunch        = "lunch"
	SessionHighTea      = "high_tea"
	SessionDinner       = "dinner"
	SessionSpecialEvent = "special_event"
)

// Recurrence types
const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

type Session struct {
	ID                 uint      `gorm:"primaryKey"`
	FranchiseID        uint      `gorm:"not null;index"`
	Franchise          Franchise `gorm:"foreignKey:FranchiseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Type               string    `gorm:"type:varchar(30);not null"`
	Date               time.Time `gorm:"not null;index"`
	StartTime          string    `gorm:"type:varchar(5);not null"`
	EndTime            string    `gorm:"type:varchar(5)"`
	DurationMinutes    int
	MaxCapacity        int
	BookedCount        int
	IsActive           bool    `gorm:"default:true"`
	DeactivationReason *string `gorm:"type:varchar(255)"`
	SpecialName        *string `gorm:"type:varchar(255)"`
	SpecialPricing     *float64
	SpecialAddOns      *string `gorm:"type:text"`
	SpecialConditions  *string `gorm:"type:text"`
	RecurrenceType     string  `gorm:"type:varchar(20);default:'none'"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

func (s *Session) SetSpecialAddOns(addOns []string) error {
	data, err := json.Marshal(addOns)
	if err != nil {
		return err
	}
	str := string(data)
	s.SpecialAddOns = &str
	return nil
}

func (s *Session) GetSpecialAddOns() []string {
	if s.SpecialAddOns == nil || *s.SpecialAddOns == "" {
		return []string{}
	}
	var addOns []string
	if err := json.Unmarshal([]byte(*s.SpecialAddOns), &addOns); err != nil {
		return []string{}
	}
	return addOns
}
