package usecase

import (
	"context"
	"mime/multipart"

	"cityportal/internal/domain/entity"
)

// SubmitCollaborationInput is a visitor's proposal. Attachments are passed
// separately as multipart files.
type SubmitCollaborationInput struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,email"`
	Subject string `form:"subject" validate:"required"`
	Message string `form:"message" validate:"required"`
}

// CollaborationUsecase defines business operations for visitor submissions.
type CollaborationUsecase interface {
	// Submit validates and stores the attachments, then records the
	// submission in pending state.
	Submit(ctx context.Context, input *SubmitCollaborationInput, files []*multipart.FileHeader) (*entity.Collaboration, error)

	// List returns submissions for review, optionally filtered by status.
	List(ctx context.Context, status string) ([]*entity.Collaboration, error)

	Get(ctx context.Context, id int64) (*entity.Collaboration, error)

	// UpdateStatus moves a submission through the review workflow.
	UpdateStatus(ctx context.Context, id int64, status string) (*entity.Collaboration, error)
}
