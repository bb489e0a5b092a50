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

// CourseService coordinates course lifecycle use cases.
type CourseService struct {
	repo     core.CourseRepository
	cache    core.CourseCache
	producer core.EventProducer
	logger   *zap.Logger
	now      func() time.Time
}

// NewCourseService constructs a CourseService backed by the provided
// collaborators.
func NewCourseService(repo core.CourseRepository, cache core.CourseCache, producer core.EventProducer, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{
		repo:     repo,
		cache:    cache,
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock allows tests to override the clock used by the service.
func (s *CourseService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.CourseService = (*CourseService)(nil)

// CreateCourse creates a course, replaying idempotently on a known key and
// rejecting duplicate slugs.
func (s *CourseService) CreateCourse(ctx context.Context, params core.CreateCourseParams) (*core.Course, error) {
	if params.Actor.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: instructor id required", core.ErrValidation)
	}
	if params.IdempotencyKey == "" {
		return nil, fmt.Errorf("%w: idempotency key required", core.ErrValidation)
	}
	if params.Draft.Title == "" {
		return nil, fmt.Errorf("%w: title is required", core.ErrValidation)
	}

	existing, err := s.repo.GetByIdempotencyKey(ctx, params.IdempotencyKey)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	slug := slugify(params.Draft.Title)
	if slug == "" {
		return nil, fmt.Errorf("%w: title must contain slug characters", core.ErrValidation)
	}
	if _, err := s.repo.GetBySlug(ctx, slug); err == nil {
		return nil, fmt.Errorf("%w: slug %q is taken", core.ErrAlreadyExists, slug)
	} else if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	now := s.now().UTC()
	course := core.Course{
		ID:             uuid.New(),
		InstructorID:   params.Actor.UserID,
		Title:          params.Draft.Title,
		Slug:           slug,
		Subtitle:       params.Draft.Subtitle,
		Description:    params.Draft.Description,
		Category:       params.Draft.Category,
		Level:          params.Draft.Level,
		Language:       params.Draft.Language,
		ThumbnailURL:   params.Draft.ThumbnailURL,
		Price:          params.Draft.Price,
		DiscountPrice:  params.Draft.DiscountPrice,
		Status:         core.CourseStatusDraft,
		IdempotencyKey: params.IdempotencyKey,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, course)
	if err != nil {
		return nil, err
	}

	emitEvent(ctx, s.producer, s.logger, core.TopicCourseEvents, created.ID.String(),
		core.NewEvent(core.EventCourseCreated, now, map[string]any{
			"courseId":     created.ID.String(),
			"instructorId": created.InstructorID.String(),
			"title":        created.Title,
			"slug":         created.Slug,
		}))
	return created, nil
}

// GetCourse returns a single course, reading through the cache.
func (s *CourseService) GetCourse(ctx context.Context, id uuid.UUID) (*core.Course, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	course, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, course); err != nil {
			s.logger.Warn("course cache set failed", zap.String("course_id", id.String()), zap.Error(err))
		}
	}
	return course, nil
}

// ListCourses returns a filtered, paginated collection of courses.
func (s *CourseService) ListCourses(ctx context.Context, filter core.CourseListFilter) ([]core.Course, string, error) {
	if filter.PageSize <= 0 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	return s.repo.List(ctx, filter)
}

// UpdateCourse applies draft changes to a course owned by the actor.
func (s *CourseService) UpdateCourse(ctx context.Context, params core.UpdateCourseParams) (*core.Course, error) {
	if params.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}
	if params.Draft.Title == "" {
		return nil, fmt.Errorf("%w: title is required", core.ErrValidation)
	}

	var updated *core.Course
	err := retryOnConflict(ctx, func(ctx context.Context) error {
		course, err := s.repo.Get(ctx, params.ID)
		if err != nil {
			return err
		}
		if !params.Actor.CanManage(course.InstructorID) {
			return fmt.Errorf("%w: course %s is not managed by actor", core.ErrUnauthorized, params.ID)
		}

		course.Title = params.Draft.Title
		course.Subtitle = params.Draft.Subtitle
		course.Description = params.Draft.Description
		course.Category = params.Draft.Category
		course.Level = params.Draft.Level
		course.Language = params.Draft.Language
		course.ThumbnailURL = params.Draft.ThumbnailURL
		course.Price = params.Draft.Price
		course.DiscountPrice = params.Draft.DiscountPrice
		course.UpdatedAt = s.now().UTC()

		updated, err = s.repo.Update(ctx, *course)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, params.ID)
	emitEvent(ctx, s.producer, s.logger, core.TopicCourseEvents, updated.ID.String(),
		core.NewEvent(core.EventCourseUpdated, s.now().UTC(), map[string]any{
			"courseId": updated.ID.String(),
		}))
	return updated, nil
}

// PublishCourse makes a course visible in the catalog.
func (s *CourseService) PublishCourse(ctx context.Context, actor core.Actor, id uuid.UUID) (*core.Course, error) {
	return s.transition(ctx, actor, id, core.EventCoursePublished, (*core.Course).Publish)
}

// UnpublishCourse hides a published course.
func (s *CourseService) UnpublishCourse(ctx context.Context, actor core.Actor, id uuid.UUID) (*core.Course, error) {
	return s.transition(ctx, actor, id, core.EventCourseUnpublished, (*core.Course).Unpublish)
}

func (s *CourseService) transition(ctx context.Context, actor core.Actor, id uuid.UUID, eventType string, apply func(*core.Course, time.Time) error) (*core.Course, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}

	var updated *core.Course
	err := retryOnConflict(ctx, func(ctx context.Context) error {
		course, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if !actor.CanManage(course.InstructorID) {
			return fmt.Errorf("%w: course %s is not managed by actor", core.ErrUnauthorized, id)
		}
		if err := apply(course, s.now().UTC()); err != nil {
			return err
		}
		updated, err = s.repo.Update(ctx, *course)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	emitEvent(ctx, s.producer, s.logger, core.TopicCourseEvents, updated.ID.String(),
		core.NewEvent(eventType, s.now().UTC(), map[string]any{
			"courseId": updated.ID.String(),
			"status":   int(updated.Status),
		}))
	return updated, nil
}

// DeleteCourse soft-deletes a course. Dependent reviews and certificates
// keep their references; there is no cascade.
func (s *CourseService) DeleteCourse(ctx context.Context, actor core.Actor, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: course id required", core.ErrValidation)
	}

	course, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanManage(course.InstructorID) {
		return fmt.Errorf("%w: course %s is not managed by actor", core.ErrUnauthorized, id)
	}

	now := s.now().UTC()
	if err := s.repo.SoftDelete(ctx, id, now); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	emitEvent(ctx, s.producer, s.logger, core.TopicCourseEvents, id.String(),
		core.NewEvent(core.EventCourseDeleted, now, map[string]any{
			"courseId": id.String(),
		}))
	return nil
}

func (s *CourseService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("course cache invalidation failed", zap.String("course_id", id.String()), zap.Error(err))
	}
}
