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

// CurriculumService coordinates section, lesson, and quiz use cases. Every
// mutation is authorized against the owning course, and the course's unit
// counters are kept in step with curriculum changes.
type CurriculumService struct {
	courses  core.CourseRepository
	sections core.SectionRepository
	lessons  core.LessonRepository
	quizzes  core.QuizRepository
	cache    core.CourseCache
	producer core.EventProducer
	logger   *zap.Logger
	now      func() time.Time
}

// NewCurriculumService constructs a CurriculumService from its collaborators.
func NewCurriculumService(
	courses core.CourseRepository,
	sections core.SectionRepository,
	lessons core.LessonRepository,
	quizzes core.QuizRepository,
	cache core.CourseCache,
	producer core.EventProducer,
	logger *zap.Logger,
) *CurriculumService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CurriculumService{
		courses:  courses,
		sections: sections,
		lessons:  lessons,
		quizzes:  quizzes,
		cache:    cache,
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock allows tests to override the clock used by the service.
func (s *CurriculumService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.CurriculumService = (*CurriculumService)(nil)

// CreateSection adds a section to a course the actor manages.
func (s *CurriculumService) CreateSection(ctx context.Context, params core.CreateSectionParams) (*core.Section, error) {
	if params.IdempotencyKey == "" {
		return nil, fmt.Errorf("%w: idempotency key required", core.ErrValidation)
	}
	if params.Draft.Title == "" {
		return nil, fmt.Errorf("%w: title is required", core.ErrValidation)
	}

	existing, err := s.sections.GetByIdempotencyKey(ctx, params.IdempotencyKey)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	if _, err := s.managedCourse(ctx, params.Actor, params.CourseID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	section := core.Section{
		ID:             uuid.New(),
		CourseID:       params.CourseID,
		Title:          params.Draft.Title,
		Description:    params.Draft.Description,
		Order:          params.Draft.Order,
		IsPublished:    params.Draft.IsPublished,
		IdempotencyKey: params.IdempotencyKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.sections.Create(ctx, section)
	if err != nil {
		return nil, err
	}

	s.adjustCounters(ctx, params.CourseID, func(c *core.Course) { c.SectionCount++ })
	emitEvent(ctx, s.producer, s.logger, core.TopicCourseEvents, params.CourseID.String(),
		core.NewEvent(core.EventSectionCreated, now, map[string]any{
			"sectionId": created.ID.String(),
			"courseId":  params.CourseID.String(),
		}))
	return created, nil
}

// UpdateSection applies draft changes to a section.
func (s *CurriculumService) UpdateSection(ctx context.Context, params core.UpdateSectionParams) (*core.Section, error) {
	section, err := s.sections.Get(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	if _, err := s.managedCourse(ctx, params.Actor, section.CourseID); err != nil {
		return nil, err
	}

	section.Title = params.Draft.Title
	section.Description = params.Draft.Description
	section.Order = params.Draft.Order
	section.IsPublished = params.Draft.IsPublished
	section.UpdatedAt = s.now().UTC()

	updated, err := s.sections.Update(ctx, *section)
	if err != nil {
		return nil, err
	}

	emitEvent(ctx, s.producer, s.logger, core.TopicCourseEvents, section.CourseID.String(),
		core.NewEvent(core.EventSectionUpdated, section.UpdatedAt, map[string]any{
			"sectionId": updated.ID.String(),
			"courseId":  section.CourseID.String(),
		}))
	return updated, nil
}

// DeleteSection removes a section from a course the actor manages.
func (s *CurriculumService) DeleteSection(ctx context.Context, actor core.Actor, id uuid.UUID) error {
	section, err := s.sections.Get(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.managedCourse(ctx, actor, section.CourseID); err != nil {
		return err
	}

	if err := s.sections.Delete(ctx, id); err != nil {
		return err
	}

	s.adjustCounters(ctx, section.CourseID, func(c *core.Course) {
		if c.SectionCount > 0 {
			c.SectionCount--
		}
	})
	emitEvent(ctx, s.producer, s.logger, core.TopicCourseEvents, section.CourseID.String(),
		core.NewEvent(core.EventSectionDeleted, s.now().UTC(), map[string]any{
			"sectionId": id.String(),
			"courseId":  section.CourseID.String(),
		}))
	return nil
}

// ListCourseSections returns the sections of a course ordered by position.
func (s *CurriculumService) ListCourseSections(ctx context.Context, courseID uuid.UUID) ([]core.Section, error) {
	if courseID == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}
	return s.sections.ListByCourse(ctx, courseID)
}

// CreateLesson adds a lesson to a section of a course the actor manages.
func (s *CurriculumService) CreateLesson(ctx context.Context, params core.CreateLessonParams) (*core.Lesson, error) {
	if params.IdempotencyKey == "" {
		return nil, fmt.Errorf("%w: idempotency key required", core.ErrValidation)
	}
	if params.Draft.Title == "" {
		return nil, fmt.Errorf("%w: title is required", core.ErrValidation)
	}

	existing, err := s.lessons.GetByIdempotencyKey(ctx, params.IdempotencyKey)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	section, err := s.sections.Get(ctx, params.SectionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.managedCourse(ctx, params.Actor, section.CourseID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	lesson := core.Lesson{
		ID:              uuid.New(),
		SectionID:       section.ID,
		CourseID:        section.CourseID,
		Title:           params.Draft.Title,
		Description:     params.Draft.Description,
		ContentType:     params.Draft.ContentType,
		ContentURL:      params.Draft.ContentURL,
		DurationSeconds: params.Draft.DurationSeconds,
		Order:           params.Draft.Order,
		IsPreviewable:   params.Draft.IsPreviewable,
		IdempotencyKey:  params.IdempotencyKey,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.lessons.Create(ctx, lesson)
	if err != nil {
		return nil, err
	}

	s.adjustCounters(ctx, section.CourseID, func(c *core.Course) { c.LessonCount++ })
	emitEvent(ctx, s.producer, s.logger, core.TopicCourseEvents, section.CourseID.String(),
		core.NewEvent(core.EventLessonCreated, now, map[string]any{
			"lessonId":  created.ID.String(),
			"sectionId": section.ID.String(),
			"courseId":  section.CourseID.String(),
		}))
	return created, nil
}

// UpdateLesson applies draft changes to a lesson.
func (s *CurriculumService) UpdateLesson(ctx context.Context, params core.UpdateLessonParams) (*core.Lesson, error) {
	lesson, err := s.lessons.Get(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	if _, err := s.managedCourse(ctx, params.Actor, lesson.CourseID); err != nil {
		return nil, err
	}

	lesson.Title = params.Draft.Title
	lesson.Description = params.Draft.Description
	lesson.ContentType = params.Draft.ContentType
	lesson.ContentURL = params.Draft.ContentURL
	lesson.DurationSeconds = params.Draft.DurationSeconds
	lesson.Order = params.Draft.Order
	lesson.IsPreviewable = params.Draft.IsPreviewable
	lesson.UpdatedAt = s.now().UTC()

	updated, err := s.lessons.Update(ctx, *lesson)
	if err != nil {
		return nil, err
	}

	emitEvent(ctx, s.producer, s.logger, core.TopicCourseEvents, lesson.CourseID.String(),
		core.NewEvent(core.EventLessonUpdated, lesson.UpdatedAt, map[string]any{
			"lessonId": updated.ID.String(),
			"courseId": lesson.CourseID.String(),
		}))
	return updated, nil
}

// DeleteLesson removes a lesson from a course the actor manages.
func (s *CurriculumService) DeleteLesson(ctx context.Context, actor core.Actor, id uuid.UUID) error {
	lesson, err := s.lessons.Get(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.managedCourse(ctx, actor, lesson.CourseID); err != nil {
		return err
	}

	if err := s.lessons.Delete(ctx, id); err != nil {
		return err
	}

	s.adjustCounters(ctx, lesson.CourseID, func(c *core.Course) {
		if c.LessonCount > 0 {
			c.LessonCount--
		}
	})
	emitEvent(ctx, s.producer, s.logger, core.TopicCourseEvents, lesson.CourseID.String(),
		core.NewEvent(core.EventLessonDeleted, s.now().UTC(), map[string]any{
			"lessonId": id.String(),
			"courseId": lesson.CourseID.String(),
		}))
	return nil
}

// ListSectionLessons returns the lessons of a section ordered by position.
func (s *CurriculumService) ListSectionLessons(ctx context.Context, sectionID uuid.UUID) ([]core.Lesson, error) {
	if sectionID == uuid.Nil {
		return nil, fmt.Errorf("%w: section id required", core.ErrValidation)
	}
	return s.lessons.ListBySection(ctx, sectionID)
}

// CreateQuiz attaches a quiz to a section. Besides the idempotency key, quiz
// creation dedups on the section: a section holds at most one quiz, so a
// second create returns the existing quiz even under a fresh key.
func (s *CurriculumService) CreateQuiz(ctx context.Context, params core.CreateQuizParams) (*core.Quiz, error) {
	if params.IdempotencyKey == "" {
		return nil, fmt.Errorf("%w: idempotency key required", core.ErrValidation)
	}

	existing, err := s.quizzes.GetByIdempotencyKey(ctx, params.IdempotencyKey)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	section, err := s.sections.Get(ctx, params.SectionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.managedCourse(ctx, params.Actor, section.CourseID); err != nil {
		return nil, err
	}

	if existing, err := s.quizzes.GetBySection(ctx, section.ID); err == nil {
		return existing, nil
	} else if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	now := s.now().UTC()
	quiz := core.Quiz{
		ID:             uuid.New(),
		SectionID:      section.ID,
		CourseID:       section.CourseID,
		Questions:      params.Draft.Questions,
		PassingScore:   params.Draft.PassingScore,
		MaxAttempts:    params.Draft.MaxAttempts,
		IsRequired:     params.Draft.IsRequired,
		IdempotencyKey: params.IdempotencyKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	created, err := s.quizzes.Create(ctx, quiz)
	if err != nil {
		return nil, err
	}

	s.adjustCounters(ctx, section.CourseID, func(c *core.Course) { c.QuizCount++ })
	emitEvent(ctx, s.producer, s.logger, core.TopicCourseEvents, section.CourseID.String(),
		core.NewEvent(core.EventQuizCreated, now, map[string]any{
			"quizId":    created.ID.String(),
			"sectionId": section.ID.String(),
			"courseId":  section.CourseID.String(),
		}))
	return created, nil
}

// UpdateQuiz applies draft changes to a quiz.
func (s *CurriculumService) UpdateQuiz(ctx context.Context, params core.UpdateQuizParams) (*core.Quiz, error) {
	quiz, err := s.quizzes.Get(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	if _, err := s.managedCourse(ctx, params.Actor, quiz.CourseID); err != nil {
		return nil, err
	}

	quiz.Questions = params.Draft.Questions
	quiz.PassingScore = params.Draft.PassingScore
	quiz.MaxAttempts = params.Draft.MaxAttempts
	quiz.IsRequired = params.Draft.IsRequired
	quiz.UpdatedAt = s.now().UTC()
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.quizzes.Update(ctx, *quiz)
	if err != nil {
		return nil, err
	}

	emitEvent(ctx, s.producer, s.logger, core.TopicCourseEvents, quiz.CourseID.String(),
		core.NewEvent(core.EventQuizUpdated, quiz.UpdatedAt, map[string]any{
			"quizId":   updated.ID.String(),
			"courseId": quiz.CourseID.String(),
		}))
	return updated, nil
}

// DeleteQuiz removes a quiz from a course the actor manages.
func (s *CurriculumService) DeleteQuiz(ctx context.Context, actor core.Actor, id uuid.UUID) error {
	quiz, err := s.quizzes.Get(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.managedCourse(ctx, actor, quiz.CourseID); err != nil {
		return err
	}

	if err := s.quizzes.Delete(ctx, id); err != nil {
		return err
	}

	s.adjustCounters(ctx, quiz.CourseID, func(c *core.Course) {
		if c.QuizCount > 0 {
			c.QuizCount--
		}
	})
	emitEvent(ctx, s.producer, s.logger, core.TopicCourseEvents, quiz.CourseID.String(),
		core.NewEvent(core.EventQuizDeleted, s.now().UTC(), map[string]any{
			"quizId":   id.String(),
			"courseId": quiz.CourseID.String(),
		}))
	return nil
}

// GetSectionQuiz returns the quiz attached to a section.
func (s *CurriculumService) GetSectionQuiz(ctx context.Context, sectionID uuid.UUID) (*core.Quiz, error) {
	if sectionID == uuid.Nil {
		return nil, fmt.Errorf("%w: section id required", core.ErrValidation)
	}
	return s.quizzes.GetBySection(ctx, sectionID)
}

// managedCourse loads the course and checks ownership. Existence is checked
// first so missing courses surface as not-found, not permission errors.
func (s *CurriculumService) managedCourse(ctx context.Context, actor core.Actor, courseID uuid.UUID) (*core.Course, error) {
	if courseID == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}
	course, err := s.courses.Get(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(course.InstructorID) {
		return nil, fmt.Errorf("%w: course %s is not managed by actor", core.ErrUnauthorized, courseID)
	}
	return course, nil
}

// adjustCounters updates the course's denormalized unit counters. Counter
// drift is tolerated when the course write keeps conflicting; the curriculum
// write itself already committed.
func (s *CurriculumService) adjustCounters(ctx context.Context, courseID uuid.UUID, apply func(*core.Course)) {
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
		s.logger.Warn("course counter update failed", zap.String("course_id", courseID.String()), zap.Error(err))
		return
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, courseID); err != nil {
			s.logger.Warn("course cache invalidation failed", zap.String("course_id", courseID.String()), zap.Error(err))
		}
	}
}
