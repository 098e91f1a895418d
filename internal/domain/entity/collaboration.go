package entity

import "time"

// CollaborationStatus tracks the review state of a submission.
type CollaborationStatus string

const (
	CollaborationStatusPending  CollaborationStatus = "pending"
	CollaborationStatusReviewed CollaborationStatus = "reviewed"
	CollaborationStatusArchived CollaborationStatus = "archived"
)

// Collaboration is a visitor-submitted proposal with optional attachments.
type Collaboration struct {
	ID          int64                     `json:"id"`
	Name        string                    `json:"name"`
	Email       string                    `json:"email"`
	Subject     string                    `json:"subject"`
	Message     string                    `json:"message"`
	Status      CollaborationStatus       `json:"status"`
	Attachments []CollaborationAttachment `json:"attachments,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
}

// CollaborationAttachment is one stored file accompanying a submission.
type CollaborationAttachment struct {
	ID              int64     `json:"id"`
	CollaborationID int64     `json:"collaboration_id"`
	FilePath        string    `json:"file_path"`
	OriginalName    string    `json:"original_name"`
	SizeBytes       int64     `json:"size_bytes"`
	CreatedAt       time.Time `json:"created_at"`
}
