package model

import "time"

// DocumentModel mirrors the 'documents' table of the digital collection.
type DocumentModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Title           string `gorm:"type:varchar(255);not null"`
	Author          string `gorm:"type:varchar(255);not null"`
	PublicationYear int    `gorm:"not null"`
	Category        string `gorm:"type:varchar(100);not null;index"`
	Kind            string `gorm:"type:varchar(20);not null"`
	FilePath        string `gorm:"type:varchar(512)"`
	ExternalURL     string `gorm:"type:varchar(1024)"`
	TwinCityID      int64  `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "documents"
}
