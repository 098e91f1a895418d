package repository

import (
	"context"
	"errors"

	"cityportal/internal/domain/entity"
)

// ErrCollaborationNotFound is returned when a submission does not exist.
var ErrCollaborationNotFound = errors.New("collaboration not found")

// CollaborationRepository defines persistence operations for visitor submissions.
type CollaborationRepository interface {
	// List returns submissions, optionally filtered by status. An empty
	// status means no filter.
	List(ctx context.Context, status entity.CollaborationStatus) ([]*entity.Collaboration, error)

	// FindByID retrieves a submission with its attachments preloaded.
	FindByID(ctx context.Context, id int64) (*entity.Collaboration, error)

	// Create persists a submission together with its attachments.
	Create(ctx context.Context, collaboration *entity.Collaboration) error

	// UpdateStatus moves a submission through the review workflow.
	UpdateStatus(ctx context.Context, id int64, status entity.CollaborationStatus) error
}
