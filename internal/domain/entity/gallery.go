package entity

import "time"

// Gallery groups a set of published images under a common title.
type Gallery struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Images      []GalleryImage `json:"images,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// GalleryImage is a single stored image belonging to a gallery.
type GalleryImage struct {
	ID        int64     `json:"id"`
	GalleryID int64     `json:"gallery_id"`
	ImagePath string    `json:"image_path"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}
