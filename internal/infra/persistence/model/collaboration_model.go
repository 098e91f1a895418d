package model

import "time"

// CollaborationModel mirrors the 'collaborations' table.
type CollaborationModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255);not null"`
	Subject   string `gorm:"type:varchar(255);not null"`
	Message   string `gorm:"type:text;not null"`
	Status    string `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time

	Attachments []CollaborationAttachmentModel `gorm:"foreignKey:CollaborationID"`
}

// TableName explicitly sets the table name for GORM.
func (CollaborationModel) TableName() string {
	return "collaborations"
}

// CollaborationAttachmentModel mirrors the 'collaboration_attachments' table.
type CollaborationAttachmentModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	CollaborationID int64  `gorm:"not null;index"`
	FilePath        string `gorm:"type:varchar(512);not null"`
	OriginalName    string `gorm:"type:varchar(255);not null"`
	SizeBytes       int64  `gorm:"not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CollaborationAttachmentModel) TableName() string {
	return "collaboration_attachments"
}
