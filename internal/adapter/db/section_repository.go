package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"

	entgenerated "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated"
	entsection "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/section"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

// SectionRepository persists sections using Ent.
type SectionRepository struct {
	client *entgenerated.Client
}

// NewSectionRepository constructs an Ent-backed section repository.
func NewSectionRepository(client *entgenerated.Client) *SectionRepository {
	return &SectionRepository{client: client}
}

var _ core.SectionRepository = (*SectionRepository)(nil)

// Create inserts a new section record.
func (r *SectionRepository) Create(ctx context.Context, section core.Section) (*core.Section, error) {
	row, err := r.client.Section.Create().
		SetID(section.ID).
		SetCourseID(section.CourseID).
		SetTitle(section.Title).
		SetDescription(section.Description).
		SetOrder(section.Order).
		SetIsPublished(section.IsPublished).
		SetIdempotencyKey(section.IdempotencyKey).
		SetCreatedAt(section.CreatedAt).
		SetUpdatedAt(section.UpdatedAt).
		Save(ctx)
	if err != nil {
		if entgenerated.IsConstraintError(err) {
			return nil, core.ErrAlreadyExists
		}
		return nil, err
	}
	return toDomainSection(row), nil
}

// Get fetches a section by id.
func (r *SectionRepository) Get(ctx context.Context, id uuid.UUID) (*core.Section, error) {
	row, err := r.client.Section.Get(ctx, id)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainSection(row), nil
}

// GetByIdempotencyKey fetches the section created under the supplied key.
func (r *SectionRepository) GetByIdempotencyKey(ctx context.Context, key string) (*core.Section, error) {
	row, err := r.client.Section.Query().
		Where(entsection.IdempotencyKeyEQ(key)).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainSection(row), nil
}

// ListByCourse returns the course sections in curriculum order.
func (r *SectionRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]core.Section, error) {
	rows, err := r.client.Section.Query().
		Where(entsection.CourseIDEQ(courseID)).
		Order(entsection.ByOrder()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row *entgenerated.Section, _ int) core.Section {
		return *toDomainSection(row)
	}), nil
}

// Update overwrites the section attributes.
func (r *SectionRepository) Update(ctx context.Context, section core.Section) (*core.Section, error) {
	row, err := r.client.Section.UpdateOneID(section.ID).
		SetTitle(section.Title).
		SetDescription(section.Description).
		SetOrder(section.Order).
		SetIsPublished(section.IsPublished).
		SetUpdatedAt(section.UpdatedAt).
		Save(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainSection(row), nil
}

// Delete removes a section by id.
func (r *SectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Section.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return core.ErrNotFound
		}
		return err
	}
	return nil
}

func toDomainSection(row *entgenerated.Section) *core.Section {
	if row == nil {
		return nil
	}
	return &core.Section{
		ID:             row.ID,
		CourseID:       row.CourseID,
		Title:          row.Title,
		Description:    row.Description,
		Order:          row.Order,
		IsPublished:    row.IsPublished,
		IdempotencyKey: row.IdempotencyKey,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
