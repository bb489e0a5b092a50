package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"

	entgenerated "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated"
	entlesson "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/lesson"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

// LessonRepository persists lessons using Ent.
type LessonRepository struct {
	client *entgenerated.Client
}

// NewLessonRepository constructs an Ent-backed lesson repository.
func NewLessonRepository(client *entgenerated.Client) *LessonRepository {
	return &LessonRepository{client: client}
}

var _ core.LessonRepository = (*LessonRepository)(nil)

// Create inserts a new lesson record.
func (r *LessonRepository) Create(ctx context.Context, lesson core.Lesson) (*core.Lesson, error) {
	row, err := r.client.Lesson.Create().
		SetID(lesson.ID).
		SetSectionID(lesson.SectionID).
		SetCourseID(lesson.CourseID).
		SetTitle(lesson.Title).
		SetDescription(lesson.Description).
		SetContentType(int(lesson.ContentType)).
		SetContentURL(lesson.ContentURL).
		SetDurationSeconds(lesson.DurationSeconds).
		SetOrder(lesson.Order).
		SetIsPreviewable(lesson.IsPreviewable).
		SetIdempotencyKey(lesson.IdempotencyKey).
		SetCreatedAt(lesson.CreatedAt).
		SetUpdatedAt(lesson.UpdatedAt).
		Save(ctx)
	if err != nil {
		if entgenerated.IsConstraintError(err) {
			return nil, core.ErrAlreadyExists
		}
		return nil, err
	}
	return toDomainLesson(row), nil
}

// Get fetches a lesson by id.
func (r *LessonRepository) Get(ctx context.Context, id uuid.UUID) (*core.Lesson, error) {
	row, err := r.client.Lesson.Get(ctx, id)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainLesson(row), nil
}

// GetByIdempotencyKey fetches the lesson created under the supplied key.
func (r *LessonRepository) GetByIdempotencyKey(ctx context.Context, key string) (*core.Lesson, error) {
	row, err := r.client.Lesson.Query().
		Where(entlesson.IdempotencyKeyEQ(key)).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainLesson(row), nil
}

// ListBySection returns the section lessons in curriculum order.
func (r *LessonRepository) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]core.Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Where(entlesson.SectionIDEQ(sectionID)).
		Order(entlesson.ByOrder()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row *entgenerated.Lesson, _ int) core.Lesson {
		return *toDomainLesson(row)
	}), nil
}

// Update overwrites the lesson attributes.
func (r *LessonRepository) Update(ctx context.Context, lesson core.Lesson) (*core.Lesson, error) {
	row, err := r.client.Lesson.UpdateOneID(lesson.ID).
		SetTitle(lesson.Title).
		SetDescription(lesson.Description).
		SetContentType(int(lesson.ContentType)).
		SetContentURL(lesson.ContentURL).
		SetDurationSeconds(lesson.DurationSeconds).
		SetOrder(lesson.Order).
		SetIsPreviewable(lesson.IsPreviewable).
		SetUpdatedAt(lesson.UpdatedAt).
		Save(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainLesson(row), nil
}

// Delete removes a lesson by id.
func (r *LessonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Lesson.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return core.ErrNotFound
		}
		return err
	}
	return nil
}

func toDomainLesson(row *entgenerated.Lesson) *core.Lesson {
	if row == nil {
		return nil
	}
	return &core.Lesson{
		ID:              row.ID,
		SectionID:       row.SectionID,
		CourseID:        row.CourseID,
		Title:           row.Title,
		Description:     row.Description,
		ContentType:     core.LessonContentType(row.ContentType),
		ContentURL:      row.ContentURL,
		DurationSeconds: row.DurationSeconds,
		Order:           row.Order,
		IsPreviewable:   row.IsPreviewable,
		IdempotencyKey:  row.IdempotencyKey,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
