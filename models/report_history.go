package models

import "time"

// Report history actions
const (
	ReportGenerated    = "generated"
	ReportExportedXLSX = "exported_xlsx"
	ReportExportedPDF  = "exported_pdf"
)

type ReportHistory struct {
	ID          uint   `gorm:"primaryKey"`
	ReportType  string `gorm:"type:varchar(30);not null"`
	DateRange   string `gorm:"type:varchar(20);not null"`
	StartDate   *time.Time
	EndDate     *time.Time
	FranchiseID *uint
	Action      string    `gorm:"type:varchar(20);not null"`
	RowCount    int
	CreatedAt   time.Time `gorm:"not null"`
}
