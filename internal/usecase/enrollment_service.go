package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

// EnrollmentService coordinates enrollment, progress, quiz submission, and
// certificate use cases.
type EnrollmentService struct {
	enrollments  core.EnrollmentRepository
	courses      core.CourseRepository
	lessons      core.LessonRepository
	quizzes      core.QuizRepository
	certificates core.CertificateRepository
	cache        core.CourseCache
	locker       core.Locker
	producer     core.EventProducer
	logger       *zap.Logger
	now          func() time.Time
}

// NewEnrollmentService constructs an EnrollmentService from its
// collaborators.
func NewEnrollmentService(
	enrollments core.EnrollmentRepository,
	courses core.CourseRepository,
	lessons core.LessonRepository,
	quizzes core.QuizRepository,
	certificates core.CertificateRepository,
	cache core.CourseCache,
	locker core.Locker,
	producer core.EventProducer,
	logger *zap.Logger,
) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{
		enrollments:  enrollments,
		courses:      courses,
		lessons:      lessons,
		quizzes:      quizzes,
		certificates: certificates,
		cache:        cache,
		locker:       locker,
		producer:     producer,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock allows tests to override the clock used by the service.
func (s *EnrollmentService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.EnrollmentService = (*EnrollmentService)(nil)

// Enroll registers the actor on a published course. Replays on the
// idempotency key or an existing enrollment return the current state.
func (s *EnrollmentService) Enroll(ctx context.Context, params core.EnrollParams) (*core.Enrollment, error) {
	if params.Actor.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: student id required", core.ErrValidation)
	}
	if params.CourseID == uuid.Nil {
		return nil, fmt.Errorf("%w: course id required", core.ErrValidation)
	}
	if params.IdempotencyKey == "" {
		return nil, fmt.Errorf("%w: idempotency key required", core.ErrValidation)
	}

	existing, err := s.enrollments.GetByIdempotencyKey(ctx, params.IdempotencyKey)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	course, err := s.courses.Get(ctx, params.CourseID)
	if err != nil {
		return nil, err
	}
	if course.Status != core.CourseStatusPublished {
		return nil, fmt.Errorf("%w: course %s is not published", core.ErrValidation, params.CourseID)
	}

	if existing, err := s.enrollments.GetByStudentAndCourse(ctx, params.Actor.UserID, params.CourseID); err == nil {
		return existing, nil
	} else if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	now := s.now().UTC()
	enrollment := core.Enrollment{
		ID:             uuid.New(),
		StudentID:      params.Actor.UserID,
		CourseID:       params.CourseID,
		Status:         core.EnrollmentStatusActive,
		IdempotencyKey: params.IdempotencyKey,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.enrollments.Create(ctx, enrollment)
	if err != nil {
		return nil, err
	}

	s.bumpEnrollmentCount(ctx, params.CourseID)
	emitEvent(ctx, s.producer, s.logger, core.TopicEnrollmentEvents, created.ID.String(),
		core.NewEvent(core.EventEnrollmentCreated, now, map[string]any{
			"enrollmentId": created.ID.String(),
			"courseId":     params.CourseID.String(),
			"studentId":    params.Actor.UserID.String(),
		}))
	return created, nil
}

// GetEnrollment returns an enrollment visible to the actor.
func (s *EnrollmentService) GetEnrollment(ctx context.Context, actor core.Actor, id uuid.UUID) (*core.Enrollment, error) {
	enrollment, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

// ListStudentEnrollments lists the actor's enrollments.
func (s *EnrollmentService) ListStudentEnrollments(ctx context.Context, actor core.Actor) ([]core.Enrollment, error) {
	if actor.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: student id required", core.ErrValidation)
	}
	return s.enrollments.ListByStudent(ctx, actor.UserID)
}

// CompleteLesson marks a lesson unit complete on the actor's enrollment.
func (s *EnrollmentService) CompleteLesson(ctx context.Context, params core.CompleteLessonParams) (*core.Enrollment, error) {
	enrollment, err := s.owned(ctx, params.Actor, params.EnrollmentID)
	if err != nil {
		return nil, err
	}

	lesson, err := s.lessons.Get(ctx, params.LessonID)
	if err != nil {
		return nil, err
	}
	if lesson.CourseID != enrollment.CourseID {
		return nil, fmt.Errorf("%w: lesson %s does not belong to the enrolled course", core.ErrValidation, params.LessonID)
	}

	course, err := s.courses.Get(ctx, enrollment.CourseID)
	if err != nil {
		return nil, err
	}

	unlock := lockBestEffort(ctx, s.locker, s.logger, "enrollment:"+params.EnrollmentID.String())
	defer unlock(ctx)

	var updated *core.Enrollment
	wasCompleted := enrollment.Status == core.EnrollmentStatusCompleted
	err = retryOnConflict(ctx, func(ctx context.Context) error {
		current, err := s.enrollments.Get(ctx, params.EnrollmentID)
		if err != nil {
			return err
		}
		wasCompleted = current.Status == core.EnrollmentStatusCompleted
		if !current.CompleteLesson(params.LessonID, course.TotalLearningUnits(), s.now().UTC()) {
			updated = current
			return nil
		}
		updated, err = s.enrollments.Update(ctx, *current)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.emitCompletionIfReached(ctx, wasCompleted, updated)
	return updated, nil
}

// SubmitQuiz grades the answers, records the attempt on the enrollment, and
// returns the grading outcome.
func (s *EnrollmentService) SubmitQuiz(ctx context.Context, params core.SubmitQuizParams) (*core.QuizResult, error) {
	enrollment, err := s.owned(ctx, params.Actor, params.EnrollmentID)
	if err != nil {
		return nil, err
	}

	quiz, err := s.quizzes.Get(ctx, params.QuizID)
	if err != nil {
		return nil, err
	}
	if quiz.CourseID != enrollment.CourseID {
		return nil, fmt.Errorf("%w: quiz %s does not belong to the enrolled course", core.ErrValidation, params.QuizID)
	}
	if quiz.MaxAttempts > 0 && enrollment.AttemptsFor(quiz.ID) >= quiz.MaxAttempts {
		return nil, fmt.Errorf("%w: quiz attempt limit %d reached", core.ErrValidation, quiz.MaxAttempts)
	}

	course, err := s.courses.Get(ctx, enrollment.CourseID)
	if err != nil {
		return nil, err
	}

	score, passed := quiz.Grade(params.Answers)

	unlock := lockBestEffort(ctx, s.locker, s.logger, "enrollment:"+params.EnrollmentID.String())
	defer unlock(ctx)

	var updated *core.Enrollment
	wasCompleted := enrollment.Status == core.EnrollmentStatusCompleted
	err = retryOnConflict(ctx, func(ctx context.Context) error {
		current, err := s.enrollments.Get(ctx, params.EnrollmentID)
		if err != nil {
			return err
		}
		wasCompleted = current.Status == core.EnrollmentStatusCompleted
		current.CompleteQuiz(quiz.ID, score, passed, quiz.IsRequired, course.TotalLearningUnits(), s.now().UTC())
		updated, err = s.enrollments.Update(ctx, *current)
		return err
	})
	if err != nil {
		return nil, err
	}

	emitEvent(ctx, s.producer, s.logger, core.TopicEnrollmentEvents, updated.ID.String(),
		core.NewEvent(core.EventQuizSubmitted, s.now().UTC(), map[string]any{
			"enrollmentId": updated.ID.String(),
			"quizId":       quiz.ID.String(),
			"score":        score,
			"passed":       passed,
		}))
	s.emitCompletionIfReached(ctx, wasCompleted, updated)

	return &core.QuizResult{
		Score:      score,
		Passed:     passed,
		Attempts:   updated.AttemptsFor(quiz.ID),
		Enrollment: *updated,
	}, nil
}

// IssueCertificate issues the completion certificate for a finished
// enrollment. Replays return the previously issued certificate.
func (s *EnrollmentService) IssueCertificate(ctx context.Context, actor core.Actor, enrollmentID uuid.UUID) (*core.Certificate, error) {
	enrollment, err := s.owned(ctx, actor, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment.Status != core.EnrollmentStatusCompleted || enrollment.CompletedAt == nil {
		return nil, fmt.Errorf("%w: enrollment %s is not completed", core.ErrValidation, enrollmentID)
	}

	if existing, err := s.certificates.GetByEnrollment(ctx, enrollmentID); err == nil {
		return existing, nil
	} else if !errors.Is(err, core.ErrNotFound) {
		return nil, err
	}

	now := s.now().UTC()
	certificate := core.Certificate{
		ID:                uuid.New(),
		EnrollmentID:      enrollment.ID,
		UserID:            enrollment.StudentID,
		CourseID:          enrollment.CourseID,
		CertificateNumber: newCertificateNumber(),
		IssueDate:         now,
		CompletedAt:       *enrollment.CompletedAt,
	}

	created, err := s.certificates.Create(ctx, certificate)
	if err != nil {
		return nil, err
	}

	emitEvent(ctx, s.producer, s.logger, core.TopicEnrollmentEvents, enrollment.ID.String(),
		core.NewEvent(core.EventCertificateIssued, now, map[string]any{
			"certificateId":     created.ID.String(),
			"certificateNumber": created.CertificateNumber,
			"enrollmentId":      enrollment.ID.String(),
			"courseId":          enrollment.CourseID.String(),
			"userId":            enrollment.StudentID.String(),
		}))
	return created, nil
}

// GetCertificate returns a certificate by id.
func (s *EnrollmentService) GetCertificate(ctx context.Context, id uuid.UUID) (*core.Certificate, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: certificate id required", core.ErrValidation)
	}
	return s.certificates.Get(ctx, id)
}

// owned loads an enrollment and checks the actor may act on it. Existence
// is checked before ownership.
func (s *EnrollmentService) owned(ctx context.Context, actor core.Actor, id uuid.UUID) (*core.Enrollment, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: enrollment id required", core.ErrValidation)
	}
	enrollment, err := s.enrollments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin && enrollment.StudentID != actor.UserID {
		return nil, fmt.Errorf("%w: enrollment %s does not belong to actor", core.ErrUnauthorized, id)
	}
	return enrollment, nil
}

func (s *EnrollmentService) emitCompletionIfReached(ctx context.Context, wasCompleted bool, enrollment *core.Enrollment) {
	if wasCompleted || enrollment == nil || enrollment.Status != core.EnrollmentStatusCompleted {
		return
	}
	emitEvent(ctx, s.producer, s.logger, core.TopicEnrollmentEvents, enrollment.ID.String(),
		core.NewEvent(core.EventEnrollmentCompleted, s.now().UTC(), map[string]any{
			"enrollmentId": enrollment.ID.String(),
			"courseId":     enrollment.CourseID.String(),
			"studentId":    enrollment.StudentID.String(),
		}))
}

func (s *EnrollmentService) bumpEnrollmentCount(ctx context.Context, courseID uuid.UUID) {
	err := retryOnConflict(ctx, func(ctx context.Context) error {
		course, err := s.courses.Get(ctx, courseID)
		if err != nil {
			return err
		}
		course.EnrollmentCount++
		course.UpdatedAt = s.now().UTC()
		_, err = s.courses.Update(ctx, *course)
		return err
	})
	if err != nil {
		s.logger.Warn("enrollment counter update failed", zap.String("course_id", courseID.String()), zap.Error(err))
		return
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, courseID); err != nil {
			s.logger.Warn("course cache invalidation failed", zap.String("course_id", courseID.String()), zap.Error(err))
		}
	}
}

func newCertificateNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "EDU-" + strings.ToUpper(raw[:12])
}
