package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	entgenerated "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated"
	entquiz "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/quiz"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

// QuizRepository persists quizzes using Ent.
type QuizRepository struct {
	client *entgenerated.Client
}

// NewQuizRepository constructs an Ent-backed quiz repository.
func NewQuizRepository(client *entgenerated.Client) *QuizRepository {
	return &QuizRepository{client: client}
}

var _ core.QuizRepository = (*QuizRepository)(nil)

// Create inserts a new quiz record. The unique section column enforces the
// one-quiz-per-section rule at the storage layer as well.
func (r *QuizRepository) Create(ctx context.Context, quiz core.Quiz) (*core.Quiz, error) {
	row, err := r.client.Quiz.Create().
		SetID(quiz.ID).
		SetSectionID(quiz.SectionID).
		SetCourseID(quiz.CourseID).
		SetQuestions(quiz.Questions).
		SetPassingScore(quiz.PassingScore).
		SetMaxAttempts(quiz.MaxAttempts).
		SetIsRequired(quiz.IsRequired).
		SetIdempotencyKey(quiz.IdempotencyKey).
		SetCreatedAt(quiz.CreatedAt).
		SetUpdatedAt(quiz.UpdatedAt).
		Save(ctx)
	if err != nil {
		if entgenerated.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: section %s already has a quiz", core.ErrAlreadyExists, quiz.SectionID)
		}
		return nil, err
	}
	return toDomainQuiz(row), nil
}

// Get fetches a quiz by id.
func (r *QuizRepository) Get(ctx context.Context, id uuid.UUID) (*core.Quiz, error) {
	row, err := r.client.Quiz.Get(ctx, id)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainQuiz(row), nil
}

// GetBySection fetches the quiz attached to a section.
func (r *QuizRepository) GetBySection(ctx context.Context, sectionID uuid.UUID) (*core.Quiz, error) {
	row, err := r.client.Quiz.Query().
		Where(entquiz.SectionIDEQ(sectionID)).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainQuiz(row), nil
}

// GetByIdempotencyKey fetches the quiz created under the supplied key.
func (r *QuizRepository) GetByIdempotencyKey(ctx context.Context, key string) (*core.Quiz, error) {
	row, err := r.client.Quiz.Query().
		Where(entquiz.IdempotencyKeyEQ(key)).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainQuiz(row), nil
}

// Update overwrites the quiz attributes.
func (r *QuizRepository) Update(ctx context.Context, quiz core.Quiz) (*core.Quiz, error) {
	row, err := r.client.Quiz.UpdateOneID(quiz.ID).
		SetQuestions(quiz.Questions).
		SetPassingScore(quiz.PassingScore).
		SetMaxAttempts(quiz.MaxAttempts).
		SetIsRequired(quiz.IsRequired).
		SetUpdatedAt(quiz.UpdatedAt).
		Save(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainQuiz(row), nil
}

// Delete removes a quiz by id.
func (r *QuizRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Quiz.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return core.ErrNotFound
		}
		return err
	}
	return nil
}

func toDomainQuiz(row *entgenerated.Quiz) *core.Quiz {
	if row == nil {
		return nil
	}
	return &core.Quiz{
		ID:             row.ID,
		SectionID:      row.SectionID,
		CourseID:       row.CourseID,
		Questions:      row.Questions,
		PassingScore:   row.PassingScore,
		MaxAttempts:    row.MaxAttempts,
		IsRequired:     row.IsRequired,
		IdempotencyKey: row.IdempotencyKey,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
