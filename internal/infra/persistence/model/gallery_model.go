package model

import "time"

// GalleryModel mirrors the 'galleries' table.
type GalleryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Images []GalleryImageModel `gorm:"foreignKey:GalleryID"`
}

// TableName explicitly sets the table name for GORM.
func (GalleryModel) TableName() string {
	return "galleries"
}

// GalleryImageModel mirrors the 'gallery_images' table.
type GalleryImageModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	GalleryID int64  `gorm:"not null;index"`
	ImagePath string `gorm:"type:varchar(512);not null"`
	Caption   string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GalleryImageModel) TableName() string {
	return "gallery_images"
}
