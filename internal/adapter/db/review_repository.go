package db

import (
	"context"
	"fmt"
	"strconv"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/samber/lo"

	entgenerated "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated"
	entreview "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/review"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

// ReviewRepository persists reviews using Ent.
type ReviewRepository struct {
	client *entgenerated.Client
}

// NewReviewRepository constructs an Ent-backed review repository.
func NewReviewRepository(client *entgenerated.Client) *ReviewRepository {
	return &ReviewRepository{client: client}
}

var _ core.ReviewRepository = (*ReviewRepository)(nil)

// Create inserts a new review record. The unique (user, course) index backs
// the one-review-per-user rule against concurrent writers.
func (r *ReviewRepository) Create(ctx context.Context, review core.Review) (*core.Review, error) {
	row, err := r.client.Review.Create().
		SetID(review.ID).
		SetUserID(review.UserID).
		SetUser(review.User).
		SetCourseID(review.CourseID).
		SetEnrollmentID(review.EnrollmentID).
		SetRating(review.Rating).
		SetComment(review.Comment).
		SetCreatedAt(review.CreatedAt).
		SetUpdatedAt(review.UpdatedAt).
		Save(ctx)
	if err != nil {
		if entgenerated.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: user %s already reviewed course %s", core.ErrAlreadyReviewed, review.UserID, review.CourseID)
		}
		return nil, err
	}
	return toDomainReview(row), nil
}

// Get fetches a review by id.
func (r *ReviewRepository) Get(ctx context.Context, id uuid.UUID) (*core.Review, error) {
	row, err := r.client.Review.Get(ctx, id)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainReview(row), nil
}

// GetByUserAndCourse fetches the user's review of a course.
func (r *ReviewRepository) GetByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*core.Review, error) {
	row, err := r.client.Review.Query().
		Where(entreview.UserIDEQ(userID), entreview.CourseIDEQ(courseID)).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainReview(row), nil
}

// ListByCourse retrieves course reviews, newest first.
func (r *ReviewRepository) ListByCourse(ctx context.Context, filter core.ReviewListFilter) ([]core.Review, string, error) {
	offset, err := parseOffsetToken(filter.PageToken)
	if err != nil {
		return nil, "", err
	}

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	rows, err := r.client.Review.Query().
		Where(entreview.CourseIDEQ(filter.CourseID)).
		Order(entreview.ByCreatedAt(sql.OrderDesc())).
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

	reviews := lo.Map(rows, func(row *entgenerated.Review, _ int) core.Review {
		return *toDomainReview(row)
	})

	return reviews, nextToken, nil
}

// Update overwrites the review rating and comment.
func (r *ReviewRepository) Update(ctx context.Context, review core.Review) (*core.Review, error) {
	row, err := r.client.Review.UpdateOneID(review.ID).
		SetRating(review.Rating).
		SetComment(review.Comment).
		SetUpdatedAt(review.UpdatedAt).
		Save(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainReview(row), nil
}

// Delete removes a review by id.
func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Review.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return core.ErrNotFound
		}
		return err
	}
	return nil
}

func toDomainReview(row *entgenerated.Review) *core.Review {
	if row == nil {
		return nil
	}
	return &core.Review{
		ID:           row.ID,
		UserID:       row.UserID,
		User:         row.User,
		CourseID:     row.CourseID,
		EnrollmentID: row.EnrollmentID,
		Rating:       row.Rating,
		Comment:      row.Comment,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
