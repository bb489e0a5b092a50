package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Section groups lessons and a quiz inside a course.
type Section struct {
	ID             uuid.UUID
	CourseID       uuid.UUID
	Title          string
	Description    string
	Order          int
	IsPublished    bool
	IdempotencyKey string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SectionDraft contains user-modifiable section attributes.
type SectionDraft struct {
	Title       string
	Description string
	Order       int
	IsPublished bool
}

// CreateSectionParams describes the inputs required to create a section.
type CreateSectionParams struct {
	Actor          Actor
	CourseID       uuid.UUID
	IdempotencyKey string
	Draft          SectionDraft
}

// UpdateSectionParams describes the inputs required to update a section.
type UpdateSectionParams struct {
	Actor Actor
	ID    uuid.UUID
	Draft SectionDraft
}

// SectionRepository defines persistence operations for sections.
type SectionRepository interface {
	Create(ctx context.Context, section Section) (*Section, error)
	Get(ctx context.Context, id uuid.UUID) (*Section, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*Section, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]Section, error)
	Update(ctx context.Context, section Section) (*Section, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
