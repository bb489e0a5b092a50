package core

import (
	"context"

	"github.com/google/uuid"
)

// CurriculumService exposes section, lesson, and quiz use cases to adapters.
// All mutations are scoped to a course and guarded by course ownership.
type CurriculumService interface {
	CreateSection(ctx context.Context, params CreateSectionParams) (*Section, error)
	UpdateSection(ctx context.Context, params UpdateSectionParams) (*Section, error)
	DeleteSection(ctx context.Context, actor Actor, id uuid.UUID) error
	ListCourseSections(ctx context.Context, courseID uuid.UUID) ([]Section, error)

	CreateLesson(ctx context.Context, params CreateLessonParams) (*Lesson, error)
	UpdateLesson(ctx context.Context, params UpdateLessonParams) (*Lesson, error)
	DeleteLesson(ctx context.Context, actor Actor, id uuid.UUID) error
	ListSectionLessons(ctx context.Context, sectionID uuid.UUID) ([]Lesson, error)

	CreateQuiz(ctx context.Context, params CreateQuizParams) (*Quiz, error)
	UpdateQuiz(ctx context.Context, params UpdateQuizParams) (*Quiz, error)
	DeleteQuiz(ctx context.Context, actor Actor, id uuid.UUID) error
	GetSectionQuiz(ctx context.Context, sectionID uuid.UUID) (*Quiz, error)
}
