package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// MinRating and MaxRating bound the allowed review ratings.
	MinRating = 1
	MaxRating = 5
)

// ReviewUser is a denormalized snapshot of the reviewing user, captured at
// review time so listings never join against the user service.
type ReviewUser struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Email     string    `json:"email,omitempty"`
}

// Review is a single user rating of a course. A user reviews a course at
// most once and always through a valid enrollment of their own.
type Review struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	User         ReviewUser
	CourseID     uuid.UUID
	EnrollmentID uuid.UUID
	Rating       int
	Comment      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidateRating checks the rating bounds.
func (r *Review) ValidateRating() error {
	if r.Rating < MinRating || r.Rating > MaxRating {
		return fmt.Errorf("%w: rating must be within [%d,%d]", ErrValidation, MinRating, MaxRating)
	}
	return nil
}

// CreateReviewParams describes the inputs required to create a review.
type CreateReviewParams struct {
	Actor    Actor
	User     ReviewUser
	CourseID uuid.UUID
	Rating   int
	Comment  string
}

// UpdateReviewParams describes the inputs required to update a review.
type UpdateReviewParams struct {
	Actor   Actor
	ID      uuid.UUID
	Rating  int
	Comment string
}

// ReviewListFilter describes pagination options when listing course reviews.
type ReviewListFilter struct {
	CourseID  uuid.UUID
	PageSize  int
	PageToken string
}

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review Review) (*Review, error)
	Get(ctx context.Context, id uuid.UUID) (*Review, error)
	GetByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*Review, error)
	ListByCourse(ctx context.Context, filter ReviewListFilter) ([]Review, string, error)
	Update(ctx context.Context, review Review) (*Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewService exposes the review use cases to adapters.
type ReviewService interface {
	CreateReview(ctx context.Context, params CreateReviewParams) (*Review, error)
	UpdateReview(ctx context.Context, params UpdateReviewParams) (*Review, error)
	DeleteReview(ctx context.Context, actor Actor, id uuid.UUID) error
	ListCourseReviews(ctx context.Context, filter ReviewListFilter) ([]Review, string, error)
}
