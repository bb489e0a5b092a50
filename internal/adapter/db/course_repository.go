package db

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/samber/lo"

	entgenerated "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated"
	entcourse "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/course"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

// CourseRepository persists courses using Ent.
type CourseRepository struct {
	client *entgenerated.Client
}

// NewCourseRepository constructs an Ent-backed course repository.
func NewCourseRepository(client *entgenerated.Client) *CourseRepository {
	return &CourseRepository{client: client}
}

var _ core.CourseRepository = (*CourseRepository)(nil)

// Create inserts a new course record.
func (r *CourseRepository) Create(ctx context.Context, course core.Course) (*core.Course, error) {
	builder := r.client.Course.Create().
		SetID(course.ID).
		SetInstructorID(course.InstructorID).
		SetTitle(course.Title).
		SetSlug(course.Slug).
		SetSubtitle(course.Subtitle).
		SetDescription(course.Description).
		SetCategory(course.Category).
		SetLevel(int(course.Level)).
		SetLanguage(course.Language).
		SetThumbnailURL(course.ThumbnailURL).
		SetPrice(course.Price).
		SetStatus(int(course.Status)).
		SetRating(course.Rating).
		SetNumberOfRating(course.NumberOfRating).
		SetSectionCount(course.SectionCount).
		SetLessonCount(course.LessonCount).
		SetQuizCount(course.QuizCount).
		SetEnrollmentCount(course.EnrollmentCount).
		SetIdempotencyKey(course.IdempotencyKey).
		SetVersion(course.Version).
		SetCreatedAt(course.CreatedAt).
		SetUpdatedAt(course.UpdatedAt)

	builder.SetNillableDiscountPrice(course.DiscountPrice)

	if course.PublishedAt != nil {
		builder.SetPublishedAt(*course.PublishedAt)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if entgenerated.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: course slug or idempotency key taken", core.ErrAlreadyExists)
		}
		return nil, err
	}
	return toDomainCourse(row), nil
}

// Get fetches a live course by id.
func (r *CourseRepository) Get(ctx context.Context, id uuid.UUID) (*core.Course, error) {
	row, err := r.client.Course.Query().
		Where(entcourse.IDEQ(id), entcourse.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainCourse(row), nil
}

// GetBySlug fetches a live course by slug.
func (r *CourseRepository) GetBySlug(ctx context.Context, slug string) (*core.Course, error) {
	row, err := r.client.Course.Query().
		Where(entcourse.SlugEQ(slug), entcourse.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainCourse(row), nil
}

// GetByIdempotencyKey fetches the course created under the supplied key.
func (r *CourseRepository) GetByIdempotencyKey(ctx context.Context, key string) (*core.Course, error) {
	row, err := r.client.Course.Query().
		Where(entcourse.IdempotencyKeyEQ(key)).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainCourse(row), nil
}

// List retrieves courses matching the supplied filter.
func (r *CourseRepository) List(ctx context.Context, filter core.CourseListFilter) ([]core.Course, string, error) {
	offset, err := parseOffsetToken(filter.PageToken)
	if err != nil {
		return nil, "", err
	}

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	q := r.client.Course.Query().
		Where(entcourse.DeletedAtIsNil())

	if len(filter.Statuses) > 0 {
		statuses := lo.Map(filter.Statuses, func(s core.CourseStatus, _ int) int {
			return int(s)
		})
		q = q.Where(entcourse.StatusIn(statuses...))
	}

	if filter.Category != "" {
		q = q.Where(entcourse.CategoryEQ(filter.Category))
	}

	if filter.Level != core.CourseLevelUnspecified {
		q = q.Where(entcourse.LevelEQ(int(filter.Level)))
	}

	if filter.InstructorID != uuid.Nil {
		q = q.Where(entcourse.InstructorIDEQ(filter.InstructorID))
	}

	if strings.TrimSpace(filter.Query) != "" {
		query := strings.TrimSpace(filter.Query)
		q = q.Where(entcourse.Or(
			entcourse.TitleContainsFold(query),
			entcourse.SlugContainsFold(query),
			entcourse.DescriptionContainsFold(query),
		))
	}

	rows, err := q.
		Order(entcourse.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(pageSize + 1).
		All(ctx)
	if err != nil {
		return nil, "", err
	}

	nextToken := ""
	if len(rows) > pageSize {
		rows = rows[:pageSize]
		nextToken = strconv.Itoa(offset + pageSize)
	}

	courses := lo.Map(rows, func(row *entgenerated.Course, _ int) core.Course {
		return *toDomainCourse(row)
	})

	return courses, nextToken, nil
}

// Update overwrites the course conditionally on the version it was loaded
// with. A version mismatch surfaces as ErrConflict.
func (r *CourseRepository) Update(ctx context.Context, course core.Course) (*core.Course, error) {
	builder := r.client.Course.UpdateOneID(course.ID).
		Where(entcourse.VersionEQ(course.Version)).
		SetTitle(course.Title).
		SetSlug(course.Slug).
		SetSubtitle(course.Subtitle).
		SetDescription(course.Description).
		SetCategory(course.Category).
		SetLevel(int(course.Level)).
		SetLanguage(course.Language).
		SetThumbnailURL(course.ThumbnailURL).
		SetPrice(course.Price).
		SetStatus(int(course.Status)).
		SetRating(course.Rating).
		SetNumberOfRating(course.NumberOfRating).
		SetSectionCount(course.SectionCount).
		SetLessonCount(course.LessonCount).
		SetQuizCount(course.QuizCount).
		SetEnrollmentCount(course.EnrollmentCount).
		SetVersion(course.Version + 1).
		SetUpdatedAt(course.UpdatedAt)

	if course.DiscountPrice != nil {
		builder.SetDiscountPrice(*course.DiscountPrice)
	} else {
		builder.ClearDiscountPrice()
	}

	if course.PublishedAt != nil {
		builder.SetPublishedAt(*course.PublishedAt)
	} else {
		builder.ClearPublishedAt()
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, fmt.Errorf("%w: course %s version %d", core.ErrConflict, course.ID, course.Version)
		}
		return nil, err
	}
	return toDomainCourse(row), nil
}

// SoftDelete marks a course deleted without removing the row.
func (r *CourseRepository) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	n, err := r.client.Course.Update().
		Where(entcourse.IDEQ(id), entcourse.DeletedAtIsNil()).
		SetDeletedAt(at).
		SetUpdatedAt(at).
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

func toDomainCourse(row *entgenerated.Course) *core.Course {
	if row == nil {
		return nil
	}

	course := &core.Course{
		ID:              row.ID,
		InstructorID:    row.InstructorID,
		Title:           row.Title,
		Slug:            row.Slug,
		Subtitle:        row.Subtitle,
		Description:     row.Description,
		Category:        row.Category,
		Level:           core.CourseLevel(row.Level),
		Language:        row.Language,
		ThumbnailURL:    row.ThumbnailURL,
		Price:           row.Price,
		Status:          core.CourseStatus(row.Status),
		Rating:          row.Rating,
		NumberOfRating:  row.NumberOfRating,
		SectionCount:    row.SectionCount,
		LessonCount:     row.LessonCount,
		QuizCount:       row.QuizCount,
		EnrollmentCount: row.EnrollmentCount,
		IdempotencyKey:  row.IdempotencyKey,
		Version:         row.Version,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}

	if row.DiscountPrice != nil {
		price := *row.DiscountPrice
		course.DiscountPrice = &price
	}

	if row.PublishedAt != nil {
		t := *row.PublishedAt
		course.PublishedAt = &t
	}

	if row.DeletedAt != nil {
		t := *row.DeletedAt
		course.DeletedAt = &t
	}

	return course
}

func parseOffsetToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidPageToken, token)
	}
	return offset, nil
}
