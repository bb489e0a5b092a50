package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

func TestCourseService_CreateCourse(t *testing.T) {
	fixedNow := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	var captured core.Course
	createCalls := 0

	repo := &stubCourseRepo{
		createFn: func(ctx context.Context, course core.Course) (*core.Course, error) {
			createCalls++
			captured = course
			copy := course
			return &copy, nil
		},
	}
	producer := &stubProducer{}
	service := NewCourseService(repo, &stubCache{}, producer, nil)
	service.WithClock(func() time.Time { return fixedNow })

	instructor := uuid.New()
	got, err := service.CreateCourse(context.Background(), core.CreateCourseParams{
		Actor:          core.Actor{UserID: instructor},
		IdempotencyKey: "key-1",
		Draft:          core.CourseDraft{Title: "Go for Backend Engineers", Price: 4999},
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}
	if got == nil {
		t.Fatal("CreateCourse() returned nil course")
	}
	if createCalls != 1 {
		t.Fatalf("expected 1 create call, got %d", createCalls)
	}
	if captured.ID == uuid.Nil {
		t.Fatal("expected generated course ID")
	}
	if captured.Slug != "go-for-backend-engineers" {
		t.Fatalf("unexpected slug %q", captured.Slug)
	}
	if captured.Status != core.CourseStatusDraft {
		t.Fatalf("expected status default to draft, got %v", captured.Status)
	}
	if captured.InstructorID != instructor {
		t.Fatalf("expected instructor %v, got %v", instructor, captured.InstructorID)
	}
	if captured.CreatedAt != fixedNow {
		t.Fatalf("expected CreatedAt %v, got %v", fixedNow, captured.CreatedAt)
	}
	if types := producer.eventTypes(); len(types) != 1 || types[0] != core.EventCourseCreated {
		t.Fatalf("expected course.created event, got %v", types)
	}
}

func TestCourseService_CreateCourseReplaysIdempotencyKey(t *testing.T) {
	existing := &core.Course{ID: uuid.New(), IdempotencyKey: "key-1"}
	createCalls := 0

	repo := &stubCourseRepo{
		getByKeyFn: func(ctx context.Context, key string) (*core.Course, error) {
			if key == "key-1" {
				return existing, nil
			}
			return nil, core.ErrNotFound
		},
		createFn: func(ctx context.Context, course core.Course) (*core.Course, error) {
			createCalls++
			copy := course
			return &copy, nil
		},
	}
	producer := &stubProducer{}
	service := NewCourseService(repo, &stubCache{}, producer, nil)

	got, err := service.CreateCourse(context.Background(), core.CreateCourseParams{
		Actor:          core.Actor{UserID: uuid.New()},
		IdempotencyKey: "key-1",
		Draft:          core.CourseDraft{Title: "Anything"},
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}
	if got.ID != existing.ID {
		t.Fatalf("expected replayed course %v, got %v", existing.ID, got.ID)
	}
	if createCalls != 0 {
		t.Fatalf("expected no create call on replay, got %d", createCalls)
	}
	if len(producer.eventTypes()) != 0 {
		t.Fatal("expected no event on replay")
	}
}

func TestCourseService_CreateCourseDuplicateSlug(t *testing.T) {
	repo := &stubCourseRepo{
		getBySlugFn: func(ctx context.Context, slug string) (*core.Course, error) {
			return &core.Course{ID: uuid.New(), Slug: slug}, nil
		},
	}
	service := NewCourseService(repo, &stubCache{}, &stubProducer{}, nil)

	_, err := service.CreateCourse(context.Background(), core.CreateCourseParams{
		Actor:          core.Actor{UserID: uuid.New()},
		IdempotencyKey: "key-2",
		Draft:          core.CourseDraft{Title: "Taken Title"},
	})
	if !errors.Is(err, core.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCourseService_GetCourseReadsThroughCache(t *testing.T) {
	id := uuid.New()
	repoCalls := 0
	repo := &stubCourseRepo{
		getFn: func(ctx context.Context, courseID uuid.UUID) (*core.Course, error) {
			repoCalls++
			return &core.Course{ID: courseID, Title: "From repo"}, nil
		},
	}
	cached := &core.Course{ID: id, Title: "From cache"}
	cache := &stubCache{
		getFn: func(ctx context.Context, courseID uuid.UUID) (*core.Course, error) {
			return cached, nil
		},
	}
	service := NewCourseService(repo, cache, &stubProducer{}, nil)

	got, err := service.GetCourse(context.Background(), id)
	if err != nil {
		t.Fatalf("GetCourse() error = %v", err)
	}
	if got.Title != "From cache" {
		t.Fatalf("expected cached course, got %q", got.Title)
	}
	if repoCalls != 0 {
		t.Fatalf("expected repository untouched on cache hit, got %d calls", repoCalls)
	}
}

func TestCourseService_PublishCourseAuthorization(t *testing.T) {
	instructor := uuid.New()
	courseID := uuid.New()
	updateCalls := 0

	repo := &stubCourseRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Course, error) {
			return &core.Course{ID: id, InstructorID: instructor, Status: core.CourseStatusDraft}, nil
		},
		updateFn: func(ctx context.Context, course core.Course) (*core.Course, error) {
			updateCalls++
			copy := course
			return &copy, nil
		},
	}
	service := NewCourseService(repo, &stubCache{}, &stubProducer{}, nil)

	_, err := service.PublishCourse(context.Background(), core.Actor{UserID: uuid.New()}, courseID)
	if !errors.Is(err, core.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if updateCalls != 0 {
		t.Fatalf("expected no update after authorization failure, got %d", updateCalls)
	}

	got, err := service.PublishCourse(context.Background(), core.Actor{UserID: instructor}, courseID)
	if err != nil {
		t.Fatalf("PublishCourse() error = %v", err)
	}
	if got.Status != core.CourseStatusPublished {
		t.Fatalf("expected published status, got %v", got.Status)
	}

	// Admins may publish courses they do not own.
	if _, err := service.PublishCourse(context.Background(), core.Actor{UserID: uuid.New(), IsAdmin: true}, courseID); err != nil {
		t.Fatalf("admin PublishCourse() error = %v", err)
	}
}

func TestCourseService_UpdateCourseRetriesOnConflict(t *testing.T) {
	instructor := uuid.New()
	courseID := uuid.New()
	updateCalls := 0

	repo := &stubCourseRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Course, error) {
			return &core.Course{ID: id, InstructorID: instructor, Title: "Old", Version: updateCalls + 1}, nil
		},
		updateFn: func(ctx context.Context, course core.Course) (*core.Course, error) {
			updateCalls++
			if updateCalls == 1 {
				return nil, core.ErrConflict
			}
			copy := course
			return &copy, nil
		},
	}
	cache := &stubCache{}
	service := NewCourseService(repo, cache, &stubProducer{}, nil)

	got, err := service.UpdateCourse(context.Background(), core.UpdateCourseParams{
		Actor: core.Actor{UserID: instructor},
		ID:    courseID,
		Draft: core.CourseDraft{Title: "New"},
	})
	if err != nil {
		t.Fatalf("UpdateCourse() error = %v", err)
	}
	if updateCalls != 2 {
		t.Fatalf("expected conflict retry, got %d update calls", updateCalls)
	}
	if got.Title != "New" {
		t.Fatalf("expected updated title, got %q", got.Title)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != courseID {
		t.Fatalf("expected cache invalidation for %v, got %v", courseID, cache.invalidated)
	}
}

func TestCourseService_DeleteCourseNotFoundBeforeUnauthorized(t *testing.T) {
	service := NewCourseService(&stubCourseRepo{}, &stubCache{}, &stubProducer{}, nil)

	err := service.DeleteCourse(context.Background(), core.Actor{UserID: uuid.New()}, uuid.New())
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCourseService_EventFailureIsSwallowed(t *testing.T) {
	repo := &stubCourseRepo{}
	producer := &stubProducer{
		produceFn: func(ctx context.Context, topic, key string, event core.Event) error {
			return errors.New("broker unavailable")
		},
	}
	service := NewCourseService(repo, &stubCache{}, producer, nil)

	_, err := service.CreateCourse(context.Background(), core.CreateCourseParams{
		Actor:          core.Actor{UserID: uuid.New()},
		IdempotencyKey: "key-3",
		Draft:          core.CourseDraft{Title: "Resilient"},
	})
	if err != nil {
		t.Fatalf("expected producer failure to be swallowed, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Go for Backend Engineers":  "go-for-backend-engineers",
		"  Spaces   everywhere  ":   "spaces-everywhere",
		"C++ & Rust: A Comparison!": "c-rust-a-comparison",
		"123 Numbers":               "123-numbers",
	}
	for input, want := range cases {
		if got := slugify(input); got != want {
			t.Fatalf("slugify(%q) = %q, want %q", input, got, want)
		}
	}
}
