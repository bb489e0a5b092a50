package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

func managedCourseRepo(course *core.Course) *stubCourseRepo {
	return &stubCourseRepo{
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
}

func TestCurriculumService_CreateSection(t *testing.T) {
	fixedNow := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	instructor := uuid.New()
	course := &core.Course{ID: uuid.New(), InstructorID: instructor}
	var captured core.Section

	sections := &stubSectionRepo{
		createFn: func(ctx context.Context, section core.Section) (*core.Section, error) {
			captured = section
			copy := section
			return &copy, nil
		},
	}
	producer := &stubProducer{}
	service := NewCurriculumService(managedCourseRepo(course), sections, &stubLessonRepo{}, &stubQuizRepo{}, &stubCache{}, producer, nil)
	service.WithClock(func() time.Time { return fixedNow })

	got, err := service.CreateSection(context.Background(), core.CreateSectionParams{
		Actor:          core.Actor{UserID: instructor},
		CourseID:       course.ID,
		IdempotencyKey: "sec-1",
		Draft:          core.SectionDraft{Title: "Basics", Order: 1},
	})
	if err != nil {
		t.Fatalf("CreateSection() error = %v", err)
	}
	if got == nil {
		t.Fatal("CreateSection() returned nil section")
	}
	if captured.ID == uuid.Nil {
		t.Fatal("expected generated section ID")
	}
	if captured.CourseID != course.ID {
		t.Fatalf("expected CourseID %v, got %v", course.ID, captured.CourseID)
	}
	if captured.CreatedAt != fixedNow {
		t.Fatalf("expected CreatedAt %v, got %v", fixedNow, captured.CreatedAt)
	}
	if course.SectionCount != 1 {
		t.Fatalf("expected SectionCount 1, got %d", course.SectionCount)
	}
	if types := producer.eventTypes(); len(types) != 1 || types[0] != core.EventSectionCreated {
		t.Fatalf("expected section.created event, got %v", types)
	}
}

func TestCurriculumService_CreateSectionUnauthorized(t *testing.T) {
	course := &core.Course{ID: uuid.New(), InstructorID: uuid.New()}
	createCalls := 0
	sections := &stubSectionRepo{
		createFn: func(ctx context.Context, section core.Section) (*core.Section, error) {
			createCalls++
			copy := section
			return &copy, nil
		},
	}
	service := NewCurriculumService(managedCourseRepo(course), sections, &stubLessonRepo{}, &stubQuizRepo{}, &stubCache{}, &stubProducer{}, nil)

	_, err := service.CreateSection(context.Background(), core.CreateSectionParams{
		Actor:          core.Actor{UserID: uuid.New()},
		CourseID:       course.ID,
		IdempotencyKey: "sec-2",
		Draft:          core.SectionDraft{Title: "Basics"},
	})
	if !errors.Is(err, core.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if createCalls != 0 {
		t.Fatalf("expected no create call, got %d", createCalls)
	}
}

func TestCurriculumService_CreateSectionMissingCourseIsNotFound(t *testing.T) {
	// A missing course must surface as not-found even for an actor who could
	// never have managed it.
	course := &core.Course{ID: uuid.New(), InstructorID: uuid.New()}
	service := NewCurriculumService(managedCourseRepo(course), &stubSectionRepo{}, &stubLessonRepo{}, &stubQuizRepo{}, &stubCache{}, &stubProducer{}, nil)

	_, err := service.CreateSection(context.Background(), core.CreateSectionParams{
		Actor:          core.Actor{UserID: uuid.New()},
		CourseID:       uuid.New(),
		IdempotencyKey: "sec-3",
		Draft:          core.SectionDraft{Title: "Basics"},
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCurriculumService_CreateSectionReplaysIdempotencyKey(t *testing.T) {
	course := &core.Course{ID: uuid.New(), InstructorID: uuid.New()}
	existing := &core.Section{ID: uuid.New(), CourseID: course.ID, IdempotencyKey: "sec-4"}
	createCalls := 0

	sections := &stubSectionRepo{
		getByKeyFn: func(ctx context.Context, key string) (*core.Section, error) {
			if key == "sec-4" {
				return existing, nil
			}
			return nil, core.ErrNotFound
		},
		createFn: func(ctx context.Context, section core.Section) (*core.Section, error) {
			createCalls++
			copy := section
			return &copy, nil
		},
	}
	service := NewCurriculumService(managedCourseRepo(course), sections, &stubLessonRepo{}, &stubQuizRepo{}, &stubCache{}, &stubProducer{}, nil)

	got, err := service.CreateSection(context.Background(), core.CreateSectionParams{
		Actor:          core.Actor{UserID: course.InstructorID},
		CourseID:       course.ID,
		IdempotencyKey: "sec-4",
		Draft:          core.SectionDraft{Title: "Basics"},
	})
	if err != nil {
		t.Fatalf("CreateSection() error = %v", err)
	}
	if got.ID != existing.ID {
		t.Fatalf("expected replayed section %v, got %v", existing.ID, got.ID)
	}
	if createCalls != 0 {
		t.Fatalf("expected no create call on replay, got %d", createCalls)
	}
}

func TestCurriculumService_CreateQuizDedupsPerSection(t *testing.T) {
	instructor := uuid.New()
	course := &core.Course{ID: uuid.New(), InstructorID: instructor}
	section := &core.Section{ID: uuid.New(), CourseID: course.ID}
	existing := &core.Quiz{ID: uuid.New(), SectionID: section.ID, CourseID: course.ID}
	createCalls := 0

	sections := &stubSectionRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Section, error) {
			if id == section.ID {
				copy := *section
				return &copy, nil
			}
			return nil, core.ErrNotFound
		},
	}
	quizzes := &stubQuizRepo{
		getBySectionFn: func(ctx context.Context, sectionID uuid.UUID) (*core.Quiz, error) {
			if sectionID == section.ID {
				return existing, nil
			}
			return nil, core.ErrNotFound
		},
		createFn: func(ctx context.Context, quiz core.Quiz) (*core.Quiz, error) {
			createCalls++
			copy := quiz
			return &copy, nil
		},
	}
	service := NewCurriculumService(managedCourseRepo(course), sections, &stubLessonRepo{}, quizzes, &stubCache{}, &stubProducer{}, nil)

	// A fresh idempotency key does not bypass the one-quiz-per-section rule.
	got, err := service.CreateQuiz(context.Background(), core.CreateQuizParams{
		Actor:          core.Actor{UserID: instructor},
		SectionID:      section.ID,
		IdempotencyKey: "quiz-fresh",
		Draft: core.QuizDraft{
			Questions: []core.Question{{ID: uuid.New(), Prompt: "q", CorrectAnswer: "a", Point: 1}},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuiz() error = %v", err)
	}
	if got.ID != existing.ID {
		t.Fatalf("expected existing quiz %v, got %v", existing.ID, got.ID)
	}
	if createCalls != 0 {
		t.Fatalf("expected no quiz persisted, got %d create calls", createCalls)
	}
	if course.QuizCount != 0 {
		t.Fatalf("expected QuizCount unchanged, got %d", course.QuizCount)
	}
}

func TestCurriculumService_CreateLessonBumpsCourseCounter(t *testing.T) {
	instructor := uuid.New()
	course := &core.Course{ID: uuid.New(), InstructorID: instructor}
	section := &core.Section{ID: uuid.New(), CourseID: course.ID}

	sections := &stubSectionRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Section, error) {
			copy := *section
			return &copy, nil
		},
	}
	cache := &stubCache{}
	service := NewCurriculumService(managedCourseRepo(course), sections, &stubLessonRepo{}, &stubQuizRepo{}, cache, &stubProducer{}, nil)

	_, err := service.CreateLesson(context.Background(), core.CreateLessonParams{
		Actor:          core.Actor{UserID: instructor},
		SectionID:      section.ID,
		IdempotencyKey: "les-1",
		Draft:          core.LessonDraft{Title: "Intro", ContentType: core.LessonContentTypeVideo},
	})
	if err != nil {
		t.Fatalf("CreateLesson() error = %v", err)
	}
	if course.LessonCount != 1 {
		t.Fatalf("expected LessonCount 1, got %d", course.LessonCount)
	}
	if len(cache.invalidated) != 1 {
		t.Fatalf("expected course cache invalidated, got %v", cache.invalidated)
	}
}

func TestCurriculumService_CreateQuizValidatesQuestions(t *testing.T) {
	instructor := uuid.New()
	course := &core.Course{ID: uuid.New(), InstructorID: instructor}
	section := &core.Section{ID: uuid.New(), CourseID: course.ID}

	sections := &stubSectionRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Section, error) {
			copy := *section
			return &copy, nil
		},
	}
	service := NewCurriculumService(managedCourseRepo(course), sections, &stubLessonRepo{}, &stubQuizRepo{}, &stubCache{}, &stubProducer{}, nil)

	_, err := service.CreateQuiz(context.Background(), core.CreateQuizParams{
		Actor:          core.Actor{UserID: instructor},
		SectionID:      section.ID,
		IdempotencyKey: "quiz-empty",
		Draft:          core.QuizDraft{},
	})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty quiz, got %v", err)
	}
}

func TestCurriculumService_DeleteLessonDecrementsCounter(t *testing.T) {
	instructor := uuid.New()
	course := &core.Course{ID: uuid.New(), InstructorID: instructor, LessonCount: 2}
	lesson := &core.Lesson{ID: uuid.New(), CourseID: course.ID}

	lessons := &stubLessonRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Lesson, error) {
			copy := *lesson
			return &copy, nil
		},
	}
	service := NewCurriculumService(managedCourseRepo(course), &stubSectionRepo{}, lessons, &stubQuizRepo{}, &stubCache{}, &stubProducer{}, nil)

	if err := service.DeleteLesson(context.Background(), core.Actor{UserID: instructor}, lesson.ID); err != nil {
		t.Fatalf("DeleteLesson() error = %v", err)
	}
	if course.LessonCount != 1 {
		t.Fatalf("expected LessonCount 1, got %d", course.LessonCount)
	}
}
