package model

import "time"

// IndicatorModel mirrors the 'indicators' table.
type IndicatorModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Value     float64 `gorm:"type:double precision;not null"`
	Unit      string  `gorm:"type:varchar(50)"`
	Year      int     `gorm:"index"`
	Source    string  `gorm:"type:varchar(255)"`
	Category  string  `gorm:"type:varchar(100);index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IndicatorModel) TableName() string {
	return "indicators"
}
