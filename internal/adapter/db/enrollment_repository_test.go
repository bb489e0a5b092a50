package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

func TestEnrollmentRepository_ProgressRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupClient(t, ctx, "enrollment_repo_progress")
	defer client.Close()
	courses := NewCourseRepository(client)
	repo := NewEnrollmentRepository(client)

	course := createCourseForTest(t, courses, ctx, core.Course{
		Slug:           "enroll-target",
		Title:          "Enroll Target",
		IdempotencyKey: "enr-course-1",
	})

	now := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	lessonID := uuid.New()
	enrollment := core.Enrollment{
		ID:        uuid.New(),
		StudentID: uuid.New(),
		CourseID:  course.ID,
		Status:    core.EnrollmentStatusActive,
		Progress: []core.ProgressEntry{
			{UnitID: lessonID, UnitType: core.ProgressUnitTypeLesson, Completed: true, CompletedAt: &now},
		},
		ProgressPercent: 50,
		IdempotencyKey:  "enr-1",
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := repo.Create(ctx, enrollment); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.Get(ctx, enrollment.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.Progress) != 1 {
		t.Fatalf("expected 1 progress entry, got %d", len(got.Progress))
	}
	if got.Progress[0].UnitID != lessonID || !got.Progress[0].Completed {
		t.Fatalf("unexpected progress entry %#v", got.Progress[0])
	}
	if got.ProgressPercent != 50 {
		t.Fatalf("expected 50%% progress, got %v", got.ProgressPercent)
	}

	byPair, err := repo.GetByStudentAndCourse(ctx, enrollment.StudentID, course.ID)
	if err != nil {
		t.Fatalf("GetByStudentAndCourse() error = %v", err)
	}
	if byPair.ID != enrollment.ID {
		t.Fatalf("unexpected enrollment %v", byPair.ID)
	}
}

func TestEnrollmentRepository_UpdateVersionConflict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupClient(t, ctx, "enrollment_repo_occ")
	defer client.Close()
	courses := NewCourseRepository(client)
	repo := NewEnrollmentRepository(client)

	course := createCourseForTest(t, courses, ctx, core.Course{
		Slug:           "occ-enroll",
		Title:          "OCC Enroll",
		IdempotencyKey: "enr-course-2",
	})

	now := time.Now().UTC()
	enrollment := core.Enrollment{
		ID:             uuid.New(),
		StudentID:      uuid.New(),
		CourseID:       course.ID,
		Status:         core.EnrollmentStatusActive,
		IdempotencyKey: "enr-2",
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := repo.Create(ctx, enrollment); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	enrollment.ProgressPercent = 100
	enrollment.Status = core.EnrollmentStatusCompleted
	enrollment.CompletedAt = &now
	updated, err := repo.Update(ctx, enrollment)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Version != 2 {
		t.Fatalf("expected version 2, got %d", updated.Version)
	}
	if updated.CompletedAt == nil {
		t.Fatal("expected completed at set")
	}

	if _, err := repo.Update(ctx, enrollment); !errors.Is(err, core.ErrConflict) {
		t.Fatalf("expected ErrConflict on stale version, got %v", err)
	}
}

func TestEnrollmentRepository_DuplicateStudentCourse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupClient(t, ctx, "enrollment_repo_dup")
	defer client.Close()
	courses := NewCourseRepository(client)
	repo := NewEnrollmentRepository(client)

	course := createCourseForTest(t, courses, ctx, core.Course{
		Slug:           "dup-enroll",
		Title:          "Dup Enroll",
		IdempotencyKey: "enr-course-3",
	})

	student := uuid.New()
	now := time.Now().UTC()
	first := core.Enrollment{
		ID:             uuid.New(),
		StudentID:      student,
		CourseID:       course.ID,
		Status:         core.EnrollmentStatusActive,
		IdempotencyKey: "enr-3a",
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	second := first
	second.ID = uuid.New()
	second.IdempotencyKey = "enr-3b"
	if _, err := repo.Create(ctx, second); !errors.Is(err, core.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestReviewRepository_DuplicateUserCourse(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupClient(t, ctx, "review_repo_dup")
	defer client.Close()
	courses := NewCourseRepository(client)
	repo := NewReviewRepository(client)

	course := createCourseForTest(t, courses, ctx, core.Course{
		Slug:           "reviewed",
		Title:          "Reviewed",
		IdempotencyKey: "rev-course-1",
	})

	user := uuid.New()
	now := time.Now().UTC()
	first := core.Review{
		ID:           uuid.New(),
		UserID:       user,
		User:         core.ReviewUser{ID: user, Name: "Asha"},
		CourseID:     course.ID,
		EnrollmentID: uuid.New(),
		Rating:       5,
		Comment:      "great",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByUserAndCourse(ctx, user, course.ID)
	if err != nil {
		t.Fatalf("GetByUserAndCourse() error = %v", err)
	}
	if got.User.Name != "Asha" {
		t.Fatalf("unexpected user snapshot %#v", got.User)
	}

	second := first
	second.ID = uuid.New()
	if _, err := repo.Create(ctx, second); !errors.Is(err, core.ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
}
