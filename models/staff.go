package models

import "time"

// Staff statuses
const (
	StaffActive   = "active"
	StaffInactive = "inactive"
	StaffOnLeave  = "on_leave"
	StaffTraining = "training"
)

type Staff struct {
	ID             uint      `gorm:"primaryKey"`
	FranchiseID    uint      `gorm:"not null;index"`
	Franchise      Franchise `gorm:"foreignKey:FranchiseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Designation    string    `gorm:"type:varchar(100)"`
	Department     string    `gorm:"type:varchar(100)"`
	AccessLevel    string    `gorm:"type:varchar(30);default:'basic'"`
	Status         string    `gorm:"type:varchar(20);not null;default:'active'"`
	TelegramAccess bool      `gorm:"default:false"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}
