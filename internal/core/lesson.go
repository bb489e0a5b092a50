package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LessonContentType enumerates the supported lesson content classes.
type LessonContentType int

const (
	LessonContentTypeUnspecified LessonContentType = iota
	LessonContentTypeVideo
	LessonContentTypeArticle
	LessonContentTypeFile
)

// Lesson is a single learning unit within a section.
type Lesson struct {
	ID              uuid.UUID
	SectionID       uuid.UUID
	CourseID        uuid.UUID
	Title           string
	Description     string
	ContentType     LessonContentType
	ContentURL      string
	DurationSeconds int
	Order           int
	IsPreviewable   bool
	IdempotencyKey  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LessonDraft contains user-modifiable lesson attributes.
type LessonDraft struct {
	Title           string
	Description     string
	ContentType     LessonContentType
	ContentURL      string
	DurationSeconds int
	Order           int
	IsPreviewable   bool
}

// CreateLessonParams describes the inputs required to create a lesson.
type CreateLessonParams struct {
	Actor          Actor
	SectionID      uuid.UUID
	IdempotencyKey string
	Draft          LessonDraft
}

// UpdateLessonParams describes the inputs required to update a lesson.
type UpdateLessonParams struct {
	Actor Actor
	ID    uuid.UUID
	Draft LessonDraft
}

// LessonRepository defines persistence operations for lessons.
type LessonRepository interface {
	Create(ctx context.Context, lesson Lesson) (*Lesson, error)
	Get(ctx context.Context, id uuid.UUID) (*Lesson, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*Lesson, error)
	ListBySection(ctx context.Context, sectionID uuid.UUID) ([]Lesson, error)
	Update(ctx context.Context, lesson Lesson) (*Lesson, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
