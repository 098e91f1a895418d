package entity

import "time"

// Indicator is a published city statistic (population, area, and the like).
type Indicator struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Year      int       `json:"year"`
	Source    string    `json:"source"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
