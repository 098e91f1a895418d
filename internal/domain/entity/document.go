package entity

import "time"

// DocumentKind discriminates how a digital-collection entry is stored.
type DocumentKind string

const (
	// DocumentKindPhysical marks an entry backed by an uploaded file.
	DocumentKindPhysical DocumentKind = "physical"

	// DocumentKindExternal marks an entry that only references an external
	// URL. The kind is always assigned server-side and never trusted from
	// client input.
	DocumentKindExternal DocumentKind = "external"
)

// Document is a digital-collection entry with its bibliographic fields.
type Document struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	Author          string       `json:"author"`
	PublicationYear int          `json:"publication_year"`
	Category        string       `json:"category"`
	Kind            DocumentKind `json:"kind"`

	// FilePath is set for physical documents, ExternalURL for external ones.
	FilePath    string `json:"file_path,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`

	TwinCityID int64     `json:"twin_city_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
