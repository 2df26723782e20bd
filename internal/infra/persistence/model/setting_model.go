package model

import (
	"time"
)

// SettingModel is the GORM-specific struct for the 'settings' table.
// Each row is one key of the seller session.
type SettingModel struct {
	Key       string `gorm:"type:varchar(64);primaryKey"`
	Value     string `gorm:"type:text;not null;default:''"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "settings"
}
