package models

import "time"

type MenuItem struct {
	ID           uint      `gorm:"primaryKey"`
	FranchiseID  uint      `gorm:"not null;index"`
	Franchise    Franchise `gorm:"foreignKey:FranchiseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Price        float64   `gorm:"type:decimal(10,2);not null"`
	Category     string    `gorm:"type:varchar(100)"`
	IsVegetarian bool      `gorm:"default:false"`
	IsGlutenFree bool      `gorm:"default:false"`
	IsDairyFree  bool      `gorm:"default:false"`
	Allergens    *string   `gorm:"type:text"`
	IsAvailable  bool      `gorm:"default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (m *MenuItem) SetAllergens(allergens []string) error { return setJSONList(&m.Allergens, allergens) }
func (m *MenuItem) GetAllergens() []string                { return getJSONList(m.Allergens) }

// MenuSessionMap joins menu items to the sessions they are served in.
// This is the only many-to-many relation in the schema.
type MenuSessionMap struct {
	ID         uint     `gorm:"primaryKey"`
	MenuItemID uint     `gorm:"not null;uniqueIndex:idx_menu_session"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	SessionID  uint     `gorm:"not null;uniqueIndex:idx_menu_session"`
	Session    Session  `gorm:"foreignKey:SessionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt  time.Time `gorm:"not null"`
}
