package models

import "time"

// Booking statuses. Any status is reachable from any other; the dashboard
// does not enforce a state machine.
const (
	BookingConfirmed = "confirmed"
	BookingPending   = "pending"
	BookingCancelled = "cancelled"
)

// Payment statuses
const (
	PaymentPaid     = "paid"
	PaymentPending  = "pending"
	PaymentPartial  = "partial"
	PaymentRefunded = "refunded"
)

// Reminder statuses
const (
	ReminderNone = "none"
	ReminderSent = "sent"
)

type Booking struct {
	ID             uint      `gorm:"primaryKey"`
	Code           string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	FranchiseID    uint      `gorm:"not null;index"`
	Franchise      Franchise `gorm:"foreignKey:FranchiseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	SessionID      uint      `gorm:"not null;index"`
	Session        Session   `gorm:"foreignKey:SessionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	GuestName      string    `gorm:"type:varchar(255);not null"`
	GuestType      string    `gorm:"type:varchar(30)"`
	BookingDate    time.Time `gorm:"not null;index"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentStatus  string    `gorm:"type:varchar(20);not null;default:'pending'"`
	TotalAmount    float64   `gorm:"type:decimal(10,2);not null;default:0.00"`
	VegCount       int
	NonVegCount    int
	ReminderStatus string `gorm:"type:varchar(20);default:'none'"`
	ReminderCount  int
	ContactEmail   string    `gorm:"type:varchar(255)"`
	ContactPhone   string    `gorm:"type:varchar(30)"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}
