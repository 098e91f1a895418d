package model

import "time"

// LocationModel mirrors the 'locations' table.
type LocationModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Address     string  `gorm:"type:varchar(512)"`
	Latitude    float64 `gorm:"type:double precision"`
	Longitude   float64 `gorm:"type:double precision"`
	Category    string  `gorm:"type:varchar(100);index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
