package models

import (
	"encoding/json"
	"time"
)

// Offer types
const (
	OfferPercentage = "percentage"
	OfferFixed      = "fixed"
	OfferBogo       = "bogo"
)

type Offer struct {
	ID             uint      `gorm:"primaryKey"`
	FranchiseID    uint      `gorm:"not null;index"`
	Franchise      Franchise `gorm:"foreignKey:FranchiseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Code           string    `gorm:"type:varchar(30);uniqueIndex;not null"`
	Type           string    `gorm:"type:varchar(20);not null"`
	DiscountValue  float64   `gorm:"type:decimal(10,2);not null"`
	ValidFrom      time.Time `gorm:"not null"`
	ValidUntil     time.Time `gorm:"not null"`
	MaxRedemptions int
	RedeemedCount  int
	SentCount      int
	ViewedCount    int
	GuestSegments  *string   `gorm:"type:text"`
	TargetBranches *string   `gorm:"type:text"`
	Channels       *string   `gorm:"type:text"`
	IsActive       bool      `gorm:"default:true"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (o *Offer) SetGuestSegments(segments []string) error  { return setJSONList(&o.GuestSegments, segments) }
func (o *Offer) GetGuestSegments() []string                { return getJSONList(o.GuestSegments) }
func (o *Offer) SetTargetBranches(branches []string) error { return setJSONList(&o.TargetBranches, branches) }
func (o *Offer) GetTargetBranches() []string               { return getJSONList(o.TargetBranches) }
func (o *Offer) SetChannels(channels []string) error       { return setJSONList(&o.Channels, channels) }
func (o *Offer) GetChannels() []string                     { return getJSONList(o.Channels) }

func setJSONList(dst **string, values []string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	str := string(data)
	*dst = &str
	return nil
}

func getJSONList(src *string) []string {
	if src == nil || *src == "" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(*src), &values); err != nil {
		return []string{}
	}
	return values
}
