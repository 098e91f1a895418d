package model

import "time"

// TwinCityModel mirrors the 'twin_cities' table.
type TwinCityModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Country     string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	ImagePath   string `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TwinCityModel) TableName() string {
	return "twin_cities"
}
