package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

// ReviewService coordinates the review lifecycle and keeps the course's
// running rating average consistent with it.
type ReviewService struct {
	reviews     core.ReviewRepository
	courses     core.CourseRepository
	enrollments core.EnrollmentRepository
	cache       core.CourseCache
	locker      core.Locker
	producer    core.EventProducer
	logger      *zap.Logger
	now         func() time.Time
}

// NewReviewService constructs a ReviewService from its collaborators.
func NewReviewService(
	reviews core.ReviewRepository,
	courses core.CourseRepository,
	enrollments core.EnrollmentRepository,
	cache core.CourseCache,
	locker core.Locker,
	producer core.EventProducer,
	logger *zap.Logger,
) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{
		reviews:     reviews,
		courses:     courses,
		enrollments: enrollments,
		cache:       cache,
		locker:      locker,
		producer:    producer,
		logger:      logger,
		now:         time.Now,
	}
}

// WithClock allows tests to override the clock used by the service.
func (s *ReviewService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.ReviewService = (*ReviewService)(nil)

// CreateReview records a review for a course the user is enrolled in and
// folds its rating into the course average.
func (s *ReviewService) CreateReview(ctx context.Context, params core.CreateReviewParams) (*core.Review, error) {
	if params.CourseID == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}

	if _, err := s.courses.Get(ctx, params.CourseID); err != nil {
		return nil, err
	}

	enrollment, err := s.enrollments.GetByStudentAndCourse(ctx, params.Actor.UserID, params.CourseID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("%w: no enrollment for user %s on course %s", core.ErrNotFound, params.Actor.UserID, params.CourseID)
		}
		return nil, err
	}

	if _, err := s.reviews.GetByUserAndCourse(ctx, params.Actor.UserID, params.CourseID); err == nil {
		return nil, fmt.Errorf("%w: user %s already reviewed course %s", core.ErrAlreadyReviewed, params.Actor.UserID, params.CourseID)
	} else if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	now := s.now().UTC()
	review := core.Review{
		ID:           uuid.New(),
		UserID:       params.Actor.UserID,
		User:         params.User,
		CourseID:     params.CourseID,
		EnrollmentID: enrollment.ID,
		Rating:       params.Rating,
		Comment:      params.Comment,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := review.ValidateRating(); err != nil {
		return nil, err
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	if err := s.adjustCourseRating(ctx, params.CourseID, func(c *core.Course) { c.Rate(params.Rating) }); err != nil {
		return nil, err
	}

	emitEvent(ctx, s.producer, s.logger, core.TopicReviewEvents, params.CourseID.String(),
		core.NewEvent(core.EventReviewCreated, now, map[string]any{
			"reviewId": created.ID.String(),
			"courseId": params.CourseID.String(),
			"userId":   params.Actor.UserID.String(),
			"rating":   params.Rating,
		}))
	return created, nil
}

// UpdateReview changes an existing review's rating and comment, adjusting
// the course average as a single swap.
func (s *ReviewService) UpdateReview(ctx context.Context, params core.UpdateReviewParams) (*core.Review, error) {
	review, err := s.reviews.Get(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	if !params.Actor.IsAdmin && review.UserID != params.Actor.UserID {
		return nil, fmt.Errorf("%w: review %s does not belong to actor", core.ErrUnauthorized, params.ID)
	}
	if err := s.validateEnrollment(ctx, review); err != nil {
		return nil, err
	}

	oldRating := review.Rating
	review.Rating = params.Rating
	review.Comment = params.Comment
	review.UpdatedAt = s.now().UTC()
	if err := review.ValidateRating(); err != nil {
		return nil, err
	}

	updated, err := s.reviews.Update(ctx, *review)
	if err != nil {
		return nil, err
	}

	if oldRating != params.Rating {
		if err := s.adjustCourseRating(ctx, review.CourseID, func(c *core.Course) { c.ChangeRating(oldRating, params.Rating) }); err != nil {
			return nil, err
		}
	}

	emitEvent(ctx, s.producer, s.logger, core.TopicReviewEvents, review.CourseID.String(),
		core.NewEvent(core.EventReviewUpdated, review.UpdatedAt, map[string]any{
			"reviewId":  updated.ID.String(),
			"courseId":  review.CourseID.String(),
			"oldRating": oldRating,
			"rating":    params.Rating,
		}))
	return updated, nil
}

// DeleteReview removes a review and subtracts its rating from the course
// average.
func (s *ReviewService) DeleteReview(ctx context.Context, actor core.Actor, id uuid.UUID) error {
	review, err := s.reviews.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin && review.UserID != actor.UserID {
		return fmt.Errorf("%w: review %s does not belong to actor", core.ErrUnauthorized, id)
	}
	if err := s.validateEnrollment(ctx, review); err != nil {
		return err
	}

	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.adjustCourseRating(ctx, review.CourseID, func(c *core.Course) { c.RemoveRating(review.Rating) }); err != nil {
		return err
	}

	emitEvent(ctx, s.producer, s.logger, core.TopicReviewEvents, review.CourseID.String(),
		core.NewEvent(core.EventReviewDeleted, s.now().UTC(), map[string]any{
			"reviewId": id.String(),
			"courseId": review.CourseID.String(),
			"rating":   review.Rating,
		}))
	return nil
}

// ListCourseReviews returns a page of reviews for a course.
func (s *ReviewService) ListCourseReviews(ctx context.Context, filter core.ReviewListFilter) ([]core.Review, string, error) {
	if filter.CourseID == uuid.Nil {
		return nil, "", fmt.Errorf("%w: course id required", core.ErrValidation)
	}
	if filter.PageSize <= 0 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	return s.reviews.ListByCourse(ctx, filter)
}

// validateEnrollment re-checks the review's enrollment reference against the
// current enrollment state, guarding against stale or forged references.
func (s *ReviewService) validateEnrollment(ctx context.Context, review *core.Review) error {
	enrollment, err := s.enrollments.Get(ctx, review.EnrollmentID)
	if err != nil {
		return err
	}
	if enrollment.StudentID != review.UserID || enrollment.CourseID != review.CourseID {
		return fmt.Errorf("%w: enrollment %s does not match review", core.ErrValidation, review.EnrollmentID)
	}
	return nil
}

// adjustCourseRating runs a rating mutation under the per-course lock plus
// the repository's version check, then drops the cached course.
func (s *ReviewService) adjustCourseRating(ctx context.Context, courseID uuid.UUID, apply func(*core.Course)) error {
	unlock := lockBestEffort(ctx, s.locker, s.logger, "course:"+courseID.String())
	defer unlock(ctx)

	err := retryOnConflict(ctx, func(ctx context.Context) error {
		course, err := s.courses.Get(ctx, courseID)
		if err != nil {
			return err
		}
		apply(course)
		course.UpdatedAt = s.now().UTC()
		_, err = s.courses.Update(ctx, *course)
		return err
	})
	if err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, courseID); err != nil {
			s.logger.Warn("course cache invalidation failed", zap.String("course_id", courseID.String()), zap.Error(err))
		}
	}
	return nil
}
