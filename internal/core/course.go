package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CourseStatus denotes the lifecycle stage for a course.
type CourseStatus int

const (
	CourseStatusUnspecified CourseStatus = iota
	CourseStatusDraft
	CourseStatusPublished
	CourseStatusUnpublished
)

// CourseLevel enumerates the difficulty levels a course can advertise.
type CourseLevel int

const (
	CourseLevelUnspecified CourseLevel = iota
	CourseLevelBeginner
	CourseLevelIntermediate
	CourseLevelAdvanced
)

// Course is the root aggregate of the curriculum domain. It owns the running
// review-rating average and the published/unpublished lifecycle.
type Course struct {
	ID              uuid.UUID
	InstructorID    uuid.UUID
	Title           string
	Slug            string
	Subtitle        string
	Description     string
	Category        string
	Level           CourseLevel
	Language        string
	ThumbnailURL    string
	Price           int64
	DiscountPrice   *int64
	Status          CourseStatus
	Rating          float64
	NumberOfRating  int
	SectionCount    int
	LessonCount     int
	QuizCount       int
	EnrollmentCount int
	IdempotencyKey  string
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	PublishedAt     *time.Time
	DeletedAt       *time.Time
}

// TotalLearningUnits is the progress denominator for enrollments: every
// lesson and every quiz counts as one unit.
func (c *Course) TotalLearningUnits() int {
	return c.LessonCount + c.QuizCount
}

// Rate folds a new review rating into the running average without touching
// the underlying review set.
func (c *Course) Rate(rating int) {
	n := float64(c.NumberOfRating)
	c.Rating = (c.Rating*n + float64(rating)) / (n + 1)
	c.NumberOfRating++
}

// RemoveRating is the exact inverse of Rate. Removing the last rating resets
// the average to zero.
func (c *Course) RemoveRating(rating int) {
	if c.NumberOfRating <= 1 {
		c.Rating = 0
		c.NumberOfRating = 0
		return
	}
	n := float64(c.NumberOfRating)
	c.Rating = (c.Rating*n - float64(rating)) / (n - 1)
	c.NumberOfRating--
}

// ChangeRating swaps one rating for another as a single adjustment; the
// rating count is unchanged.
func (c *Course) ChangeRating(oldRating, newRating int) {
	if c.NumberOfRating == 0 {
		return
	}
	n := float64(c.NumberOfRating)
	c.Rating = (c.Rating*n - float64(oldRating) + float64(newRating)) / n
}

// Publish transitions the course to the published state.
func (c *Course) Publish(now time.Time) error {
	if c.Status == CourseStatusPublished {
		return fmt.Errorf("%w: course is already published", ErrValidation)
	}
	c.Status = CourseStatusPublished
	c.PublishedAt = &now
	c.UpdatedAt = now
	return nil
}

// Unpublish hides a published course from the catalog.
func (c *Course) Unpublish(now time.Time) error {
	if c.Status != CourseStatusPublished {
		return fmt.Errorf("%w: course is not published", ErrValidation)
	}
	c.Status = CourseStatusUnpublished
	c.UpdatedAt = now
	return nil
}

// CourseDraft contains user-modifiable course attributes.
type CourseDraft struct {
	Title         string
	Subtitle      string
	Description   string
	Category      string
	Level         CourseLevel
	Language      string
	ThumbnailURL  string
	Price         int64
	DiscountPrice *int64
}

// CreateCourseParams describes the inputs required to create a course.
type CreateCourseParams struct {
	Actor          Actor
	IdempotencyKey string
	Draft          CourseDraft
}

// UpdateCourseParams describes the inputs required to update a course.
type UpdateCourseParams struct {
	Actor Actor
	ID    uuid.UUID
	Draft CourseDraft
}

// CourseListFilter describes pagination and filtering options when listing
// courses.
type CourseListFilter struct {
	PageSize     int
	PageToken    string
	Statuses     []CourseStatus
	Category     string
	Level        CourseLevel
	InstructorID uuid.UUID
	Query        string
}

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, course Course) (*Course, error)
	Get(ctx context.Context, id uuid.UUID) (*Course, error)
	GetBySlug(ctx context.Context, slug string) (*Course, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*Course, error)
	List(ctx context.Context, filter CourseListFilter) ([]Course, string, error)
	// Update persists the course conditionally on the version it was loaded
	// with and returns ErrConflict when a concurrent writer got there first.
	Update(ctx context.Context, course Course) (*Course, error)
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
}

// CourseCache is the read-through cache collaborator for course lookups.
// Implementations must treat every method as best-effort.
type CourseCache interface {
	Get(ctx context.Context, id uuid.UUID) (*Course, error)
	Set(ctx context.Context, course *Course) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// CourseService exposes the course use cases to adapters.
type CourseService interface {
	CreateCourse(ctx context.Context, params CreateCourseParams) (*Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*Course, error)
	ListCourses(ctx context.Context, filter CourseListFilter) ([]Course, string, error)
	UpdateCourse(ctx context.Context, params UpdateCourseParams) (*Course, error)
	PublishCourse(ctx context.Context, actor Actor, id uuid.UUID) (*Course, error)
	UnpublishCourse(ctx context.Context, actor Actor, id uuid.UUID) (*Course, error)
	DeleteCourse(ctx context.Context, actor Actor, id uuid.UUID) error
}
