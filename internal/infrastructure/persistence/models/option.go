package models

import "time"

// OptionModel is one row of the key/value settings store
type OptionModel struct {
	Key       string    `gorm:"column:option_key;type:varchar(191);primaryKey"`
	Value     string    `gorm:"column:option_value;type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for OptionModel
func (OptionModel) TableName() string {
	return "packetery_options"
}
