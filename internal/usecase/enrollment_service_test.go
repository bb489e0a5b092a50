package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

// enrollmentFixture wires an enrollment service against one in-memory course,
// enrollment, and quiz.
type enrollmentFixture struct {
	service     *EnrollmentService
	course      *core.Course
	enrollment  *core.Enrollment
	quiz        *core.Quiz
	lesson      *core.Lesson
	certificate *core.Certificate
	producer    *stubProducer
	createCalls int
}

func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()

	student := uuid.New()
	course := &core.Course{
		ID:           uuid.New(),
		InstructorID: uuid.New(),
		Status:       core.CourseStatusPublished,
		LessonCount:  1,
		QuizCount:    1,
		Version:      1,
	}
	quizID := uuid.New()
	f := &enrollmentFixture{
		course: course,
		enrollment: &core.Enrollment{
			ID:        uuid.New(),
			StudentID: student,
			CourseID:  course.ID,
			Status:    core.EnrollmentStatusActive,
			Version:   1,
		},
		quiz: &core.Quiz{
			ID:           quizID,
			SectionID:    uuid.New(),
			CourseID:     course.ID,
			PassingScore: 60,
			MaxAttempts:  3,
			IsRequired:   true,
			Questions: []core.Question{
				{ID: uuid.New(), Prompt: "q1", CorrectAnswer: "a", Point: 1},
			},
		},
		lesson:   &core.Lesson{ID: uuid.New(), CourseID: course.ID},
		producer: &stubProducer{},
	}

	courses := &stubCourseRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Course, error) {
			if id != course.ID {
				return nil, core.ErrNotFound
			}
			copy := *course
			return &copy, nil
		},
		updateFn: func(ctx context.Context, updated core.Course) (*core.Course, error) {
			*course = updated
			copy := updated
			return &copy, nil
		},
	}
	enrollments := &stubEnrollmentRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Enrollment, error) {
			if id != f.enrollment.ID {
				return nil, core.ErrNotFound
			}
			copy := *f.enrollment
			return &copy, nil
		},
		createFn: func(ctx context.Context, enrollment core.Enrollment) (*core.Enrollment, error) {
			f.createCalls++
			copy := enrollment
			return &copy, nil
		},
		updateFn: func(ctx context.Context, enrollment core.Enrollment) (*core.Enrollment, error) {
			if enrollment.Version != f.enrollment.Version {
				return nil, core.ErrConflict
			}
			enrollment.Version++
			*f.enrollment = enrollment
			copy := enrollment
			return &copy, nil
		},
	}
	lessons := &stubLessonRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Lesson, error) {
			if id != f.lesson.ID {
				return nil, core.ErrNotFound
			}
			copy := *f.lesson
			return &copy, nil
		},
	}
	quizzes := &stubQuizRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Quiz, error) {
			if id != f.quiz.ID {
				return nil, core.ErrNotFound
			}
			copy := *f.quiz
			return &copy, nil
		},
	}
	certificates := &stubCertificateRepo{
		createFn: func(ctx context.Context, certificate core.Certificate) (*core.Certificate, error) {
			copy := certificate
			f.certificate = &copy
			return &copy, nil
		},
		getByEnrollmentFn: func(ctx context.Context, enrollmentID uuid.UUID) (*core.Certificate, error) {
			if f.certificate != nil && f.certificate.EnrollmentID == enrollmentID {
				copy := *f.certificate
				return &copy, nil
			}
			return nil, core.ErrNotFound
		},
	}

	f.service = NewEnrollmentService(enrollments, courses, lessons, quizzes, certificates, &stubCache{}, &stubLocker{}, f.producer, nil)
	f.service.WithClock(func() time.Time { return time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC) })
	return f
}

func (f *enrollmentFixture) actor() core.Actor {
	return core.Actor{UserID: f.enrollment.StudentID}
}

func TestEnrollmentService_EnrollIsIdempotent(t *testing.T) {
	f := newEnrollmentFixture(t)
	student := uuid.New()

	enrollments := &stubEnrollmentRepo{
		getByKeyFn: func(ctx context.Context, key string) (*core.Enrollment, error) {
			if key == "enr-1" {
				return f.enrollment, nil
			}
			return nil, core.ErrNotFound
		},
		createFn: func(ctx context.Context, enrollment core.Enrollment) (*core.Enrollment, error) {
			f.createCalls++
			copy := enrollment
			return &copy, nil
		},
	}
	courses := &stubCourseRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Course, error) {
			copy := *f.course
			return &copy, nil
		},
	}
	service := NewEnrollmentService(enrollments, courses, &stubLessonRepo{}, &stubQuizRepo{}, &stubCertificateRepo{}, &stubCache{}, &stubLocker{}, &stubProducer{}, nil)

	got, err := service.Enroll(context.Background(), core.EnrollParams{
		Actor:          core.Actor{UserID: student},
		CourseID:       f.course.ID,
		IdempotencyKey: "enr-1",
	})
	if err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}
	if got.ID != f.enrollment.ID {
		t.Fatalf("expected replayed enrollment %v, got %v", f.enrollment.ID, got.ID)
	}
	if f.createCalls != 0 {
		t.Fatalf("expected no create call on replay, got %d", f.createCalls)
	}
}

func TestEnrollmentService_EnrollRequiresPublishedCourse(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.course.Status = core.CourseStatusDraft

	_, err := f.service.Enroll(context.Background(), core.EnrollParams{
		Actor:          core.Actor{UserID: uuid.New()},
		CourseID:       f.course.ID,
		IdempotencyKey: "enr-2",
	})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation for unpublished course, got %v", err)
	}
}

func TestEnrollmentService_SubmitQuizFailThenPass(t *testing.T) {
	f := newEnrollmentFixture(t)
	correct := f.quiz.Questions[0]

	// Wrong answer on a required quiz: attempt recorded, no progress.
	result, err := f.service.SubmitQuiz(context.Background(), core.SubmitQuizParams{
		Actor:        f.actor(),
		EnrollmentID: f.enrollment.ID,
		QuizID:       f.quiz.ID,
		Answers:      []core.QuizAnswer{{QuestionID: correct.ID, Value: "wrong"}},
	})
	if err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	if result.Passed || result.Score != 0 {
		t.Fatalf("expected failing result, got score=%v passed=%v", result.Score, result.Passed)
	}
	if f.enrollment.CompletedUnits() != 0 {
		t.Fatalf("expected no completed units, got %d", f.enrollment.CompletedUnits())
	}
	if result.Attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", result.Attempts)
	}

	// Correct answer passes and counts toward progress exactly once.
	result, err = f.service.SubmitQuiz(context.Background(), core.SubmitQuizParams{
		Actor:        f.actor(),
		EnrollmentID: f.enrollment.ID,
		QuizID:       f.quiz.ID,
		Answers:      []core.QuizAnswer{{QuestionID: correct.ID, Value: correct.CorrectAnswer}},
	})
	if err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	if !result.Passed || result.Score != 100 {
		t.Fatalf("expected passing result, got score=%v passed=%v", result.Score, result.Passed)
	}
	if f.enrollment.CompletedUnits() != 1 {
		t.Fatalf("expected 1 completed unit, got %d", f.enrollment.CompletedUnits())
	}
	if f.enrollment.ProgressPercent != 50 {
		t.Fatalf("expected 50%% progress, got %v", f.enrollment.ProgressPercent)
	}
}

func TestEnrollmentService_SubmitQuizEnforcesAttemptLimit(t *testing.T) {
	f := newEnrollmentFixture(t)
	f.quiz.MaxAttempts = 1
	correct := f.quiz.Questions[0]

	if _, err := f.service.SubmitQuiz(context.Background(), core.SubmitQuizParams{
		Actor:        f.actor(),
		EnrollmentID: f.enrollment.ID,
		QuizID:       f.quiz.ID,
		Answers:      []core.QuizAnswer{{QuestionID: correct.ID, Value: "wrong"}},
	}); err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}

	_, err := f.service.SubmitQuiz(context.Background(), core.SubmitQuizParams{
		Actor:        f.actor(),
		EnrollmentID: f.enrollment.ID,
		QuizID:       f.quiz.ID,
		Answers:      []core.QuizAnswer{{QuestionID: correct.ID, Value: correct.CorrectAnswer}},
	})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation at attempt limit, got %v", err)
	}
}

func TestEnrollmentService_SubmitQuizUnauthorized(t *testing.T) {
	f := newEnrollmentFixture(t)

	_, err := f.service.SubmitQuiz(context.Background(), core.SubmitQuizParams{
		Actor:        core.Actor{UserID: uuid.New()},
		EnrollmentID: f.enrollment.ID,
		QuizID:       f.quiz.ID,
	})
	if !errors.Is(err, core.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestEnrollmentService_CompletionEmitsEventOnce(t *testing.T) {
	f := newEnrollmentFixture(t)
	correct := f.quiz.Questions[0]

	if _, err := f.service.CompleteLesson(context.Background(), core.CompleteLessonParams{
		Actor:        f.actor(),
		EnrollmentID: f.enrollment.ID,
		LessonID:     f.lesson.ID,
	}); err != nil {
		t.Fatalf("CompleteLesson() error = %v", err)
	}

	if _, err := f.service.SubmitQuiz(context.Background(), core.SubmitQuizParams{
		Actor:        f.actor(),
		EnrollmentID: f.enrollment.ID,
		QuizID:       f.quiz.ID,
		Answers:      []core.QuizAnswer{{QuestionID: correct.ID, Value: correct.CorrectAnswer}},
	}); err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}

	if f.enrollment.Status != core.EnrollmentStatusCompleted {
		t.Fatalf("expected completed enrollment, got %v", f.enrollment.Status)
	}

	completions := 0
	for _, eventType := range f.producer.eventTypes() {
		if eventType == core.EventEnrollmentCompleted {
			completions++
		}
	}
	if completions != 1 {
		t.Fatalf("expected exactly one enrollment.completed event, got %d", completions)
	}

	// Replaying the lesson completion must not re-emit completion.
	if _, err := f.service.CompleteLesson(context.Background(), core.CompleteLessonParams{
		Actor:        f.actor(),
		EnrollmentID: f.enrollment.ID,
		LessonID:     f.lesson.ID,
	}); err != nil {
		t.Fatalf("CompleteLesson() replay error = %v", err)
	}
	completions = 0
	for _, eventType := range f.producer.eventTypes() {
		if eventType == core.EventEnrollmentCompleted {
			completions++
		}
	}
	if completions != 1 {
		t.Fatalf("expected completion event not re-emitted, got %d", completions)
	}
}

func TestEnrollmentService_IssueCertificate(t *testing.T) {
	f := newEnrollmentFixture(t)
	completedAt := time.Date(2024, 8, 1, 9, 0, 0, 0, time.UTC)
	f.enrollment.Status = core.EnrollmentStatusCompleted
	f.enrollment.CompletedAt = &completedAt

	first, err := f.service.IssueCertificate(context.Background(), f.actor(), f.enrollment.ID)
	if err != nil {
		t.Fatalf("IssueCertificate() error = %v", err)
	}
	if first.CertificateNumber == "" {
		t.Fatal("expected certificate number")
	}
	if !first.CompletedAt.Equal(completedAt) {
		t.Fatalf("expected CompletedAt %v, got %v", completedAt, first.CompletedAt)
	}

	// Reissue returns the same certificate.
	second, err := f.service.IssueCertificate(context.Background(), f.actor(), f.enrollment.ID)
	if err != nil {
		t.Fatalf("IssueCertificate() replay error = %v", err)
	}
	if second.ID != first.ID || second.CertificateNumber != first.CertificateNumber {
		t.Fatalf("expected replayed certificate, got %v vs %v", second.ID, first.ID)
	}
}

func TestEnrollmentService_IssueCertificateRequiresCompletion(t *testing.T) {
	f := newEnrollmentFixture(t)

	_, err := f.service.IssueCertificate(context.Background(), f.actor(), f.enrollment.ID)
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation for active enrollment, got %v", err)
	}
}
