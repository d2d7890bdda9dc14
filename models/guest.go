package models

import (
	"encoding/json"
	"time"
)

type Guest struct {
	ID               uint      `gorm:"primaryKey"`
	Code             string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	FranchiseID      uint      `gorm:"not null;index"`
	Franchise        Franchise `gorm:"foreignKey:FranchiseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Email            string    `gorm:"type:varchar(255)"`
	Phone            string    `gorm:"type:varchar(30)"`
	VisitCount       int
	LastVisitAt      *time.Time
	TotalSpend       float64 `gorm:"type:decimal(12,2);default:0.00"`
	Preferences      *string `gorm:"type:text"`
	LoyaltyPoints    int
	UpcomingBookings int
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (g *Guest) SetPreferences(prefs []string) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	str := string(data)
	g.Preferences = &str
	return nil
}

func (g *Guest) GetPreferences() []string {
	if g.Preferences == nil || *g.Preferences == "" {
		return []string{}
	}
	var prefs []string
	if err := json.Unmarshal([]byte(*g.Preferences), &prefs); err != nil {
		return []string{}
	}
	return prefs
}

// LoyaltyEntry is one row of a guest's points ledger. Points can be negative
// for redemptions.
type LoyaltyEntry struct {
	ID        uint      `gorm:"primaryKey"`
	GuestID   uint      `gorm:"not null;index"`
	Guest     Guest     `gorm:"foreignKey:GuestID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Points    int       `gorm:"not null"`
	Reason    string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
}
