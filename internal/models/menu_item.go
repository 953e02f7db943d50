package models

// MenuItem is a catalog entry. Price is in minor currency units.
type MenuItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Category    string `gorm:"not null" json:"category"`
	Name        string `gorm:"not null" json:"name"`
	Price       int    `gorm:"not null" json:"price"`
	Description string `json:"description,omitempty"`
}
