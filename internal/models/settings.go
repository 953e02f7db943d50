package models

// SettingsID is the primary key of the single settings row. Fixing it lets
// get-or-init insert with ON CONFLICT DO NOTHING instead of read-then-insert.
const SettingsID uint = 1

const DefaultAdminEmail = "admin@brunecafe.com"

type Settings struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	IsOpen     bool   `gorm:"not null;default:true" json:"is_open"`
	AdminEmail string `gorm:"not null" json:"admin_email"`
}
