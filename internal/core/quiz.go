package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// QuestionType enumerates supported quiz question kinds.
type QuestionType int

const (
	QuestionTypeUnspecified QuestionType = iota
	QuestionTypeSingleChoice
	QuestionTypeMultipleChoice
	QuestionTypeTrueFalse
	QuestionTypeShortAnswer
)

// Question is a single graded item inside a quiz.
type Question struct {
	ID               uuid.UUID    `json:"id"`
	Type             QuestionType `json:"type"`
	Prompt           string       `json:"prompt"`
	Options          []string     `json:"options,omitempty"`
	CorrectAnswer    string       `json:"correct_answer"`
	Point            int          `json:"point"`
	Required         bool         `json:"required"`
	TimeLimitSeconds int          `json:"time_limit_seconds,omitempty"`
}

// Quiz is an assessment unit attached to a section. A section holds at most
// one quiz.
type Quiz struct {
	ID             uuid.UUID
	SectionID      uuid.UUID
	CourseID       uuid.UUID
	Questions      []Question
	PassingScore   float64
	MaxAttempts    int
	IsRequired     bool
	IdempotencyKey string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TotalPoints sums the points of all questions.
func (q *Quiz) TotalPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Point
	}
	return total
}

// Grade scores a set of answers against the quiz as a percentage of the
// total points and reports whether the passing score was reached.
func (q *Quiz) Grade(answers []QuizAnswer) (score float64, passed bool) {
	total := q.TotalPoints()
	if total == 0 {
		return 0, !q.IsRequired
	}

	byQuestion := make(map[uuid.UUID]string, len(answers))
	for _, answer := range answers {
		byQuestion[answer.QuestionID] = answer.Value
	}

	earned := 0
	for _, question := range q.Questions {
		if value, ok := byQuestion[question.ID]; ok && value == question.CorrectAnswer {
			earned += question.Point
		}
	}

	score = float64(earned) / float64(total) * 100
	return score, score >= q.PassingScore
}

// Validate checks the structural rules of a quiz draft.
func (q *Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("%w: quiz requires at least one question", ErrValidation)
	}
	if q.PassingScore < 0 || q.PassingScore > 100 {
		return fmt.Errorf("%w: passing score must be within [0,100]", ErrValidation)
	}
	for _, question := range q.Questions {
		if question.Prompt == "" {
			return fmt.Errorf("%w: question prompt is required", ErrValidation)
		}
		if question.Point <= 0 {
			return fmt.Errorf("%w: question point must be positive", ErrValidation)
		}
	}
	return nil
}

// QuizAnswer is a caller-supplied answer to one question.
type QuizAnswer struct {
	QuestionID uuid.UUID
	Value      string
}

// QuizDraft contains user-modifiable quiz attributes.
type QuizDraft struct {
	Questions    []Question
	PassingScore float64
	MaxAttempts  int
	IsRequired   bool
}

// CreateQuizParams describes the inputs required to create a quiz.
type CreateQuizParams struct {
	Actor          Actor
	SectionID      uuid.UUID
	IdempotencyKey string
	Draft          QuizDraft
}

// UpdateQuizParams describes the inputs required to update a quiz.
type UpdateQuizParams struct {
	Actor Actor
	ID    uuid.UUID
	Draft QuizDraft
}

// QuizRepository defines persistence operations for quizzes.
type QuizRepository interface {
	Create(ctx context.Context, quiz Quiz) (*Quiz, error)
	Get(ctx context.Context, id uuid.UUID) (*Quiz, error)
	GetBySection(ctx context.Context, sectionID uuid.UUID) (*Quiz, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*Quiz, error)
	Update(ctx context.Context, quiz Quiz) (*Quiz, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
