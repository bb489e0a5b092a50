package db

import (
	"context"
	stdsql "database/sql"
	"errors"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	entgenerated "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/enttest"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

func TestCourseRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupClient(t, ctx, "course_repo_create")
	defer client.Close()
	repo := NewCourseRepository(client)

	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	course := core.Course{
		ID:             uuid.New(),
		InstructorID:   uuid.New(),
		Title:          "Go for Backend Engineers",
		Slug:           "go-for-backend-engineers",
		Category:       "programming",
		Level:          core.CourseLevelIntermediate,
		Language:       "en",
		Price:          4900,
		Status:         core.CourseStatusDraft,
		IdempotencyKey: "create-1",
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := repo.Create(ctx, course)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Slug != course.Slug {
		t.Fatalf("unexpected slug %q", created.Slug)
	}

	got, err := repo.Get(ctx, course.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "Go for Backend Engineers" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if got.Version != 1 {
		t.Fatalf("expected version 1, got %d", got.Version)
	}

	bySlug, err := repo.GetBySlug(ctx, course.Slug)
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if bySlug.ID != course.ID {
		t.Fatalf("unexpected course %v", bySlug.ID)
	}

	byKey, err := repo.GetByIdempotencyKey(ctx, "create-1")
	if err != nil {
		t.Fatalf("GetByIdempotencyKey() error = %v", err)
	}
	if byKey.ID != course.ID {
		t.Fatalf("unexpected course %v", byKey.ID)
	}
}

func TestCourseRepository_DuplicateSlug(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupClient(t, ctx, "course_repo_dup")
	defer client.Close()
	repo := NewCourseRepository(client)

	createCourseForTest(t, repo, ctx, core.Course{
		Slug:           "taken",
		Title:          "First",
		IdempotencyKey: "dup-1",
	})

	_, err := repo.Create(ctx, core.Course{
		ID:             uuid.New(),
		InstructorID:   uuid.New(),
		Slug:           "taken",
		Title:          "Second",
		IdempotencyKey: "dup-2",
		Version:        1,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	})
	if !errors.Is(err, core.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCourseRepository_ListFilters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupClient(t, ctx, "course_repo_list")
	defer client.Close()
	repo := NewCourseRepository(client)

	instructor := uuid.New()
	createCourseForTest(t, repo, ctx, core.Course{
		Slug:           "published-go",
		Title:          "Published Go",
		Category:       "programming",
		InstructorID:   instructor,
		Status:         core.CourseStatusPublished,
		IdempotencyKey: "list-1",
	})
	createCourseForTest(t, repo, ctx, core.Course{
		Slug:           "draft-sql",
		Title:          "Draft SQL",
		Category:       "databases",
		Status:         core.CourseStatusDraft,
		IdempotencyKey: "list-2",
	})

	res, token, err := repo.List(ctx, core.CourseListFilter{
		Statuses: []core.CourseStatus{core.CourseStatusPublished},
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty next token, got %q", token)
	}
	if len(res) != 1 || res[0].Slug != "published-go" {
		t.Fatalf("expected published-go, got %#v", res)
	}

	res, _, err = repo.List(ctx, core.CourseListFilter{Category: "databases"})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(res) != 1 || res[0].Slug != "draft-sql" {
		t.Fatalf("expected draft-sql, got %#v", res)
	}

	res, _, err = repo.List(ctx, core.CourseListFilter{InstructorID: instructor})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(res) != 1 || res[0].Slug != "published-go" {
		t.Fatalf("expected published-go for instructor, got %#v", res)
	}

	if _, _, err = repo.List(ctx, core.CourseListFilter{PageToken: "bogus"}); !errors.Is(err, core.ErrInvalidPageToken) {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}
}

func TestCourseRepository_UpdateVersionConflict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupClient(t, ctx, "course_repo_occ")
	defer client.Close()
	repo := NewCourseRepository(client)

	course := createCourseForTest(t, repo, ctx, core.Course{
		Slug:           "occ-course",
		Title:          "Before",
		IdempotencyKey: "occ-1",
	})

	course.Title = "After"
	course.UpdatedAt = time.Now().UTC()
	updated, err := repo.Update(ctx, *course)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "After" {
		t.Fatalf("unexpected title %q", updated.Title)
	}
	if updated.Version != course.Version+1 {
		t.Fatalf("expected version bump to %d, got %d", course.Version+1, updated.Version)
	}

	// Writing with the stale version must fail.
	_, err = repo.Update(ctx, *course)
	if !errors.Is(err, core.ErrConflict) {
		t.Fatalf("expected ErrConflict on stale version, got %v", err)
	}
}

func TestCourseRepository_SoftDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := setupClient(t, ctx, "course_repo_delete")
	defer client.Close()
	repo := NewCourseRepository(client)

	course := createCourseForTest(t, repo, ctx, core.Course{
		Slug:           "doomed",
		Title:          "Doomed",
		IdempotencyKey: "del-1",
	})

	if err := repo.SoftDelete(ctx, course.ID, time.Now().UTC()); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}

	if _, err := repo.Get(ctx, course.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after soft delete, got %v", err)
	}

	// Deleting again reports not found.
	if err := repo.SoftDelete(ctx, course.ID, time.Now().UTC()); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}

	// The row survives for idempotency replay lookups.
	if _, err := repo.GetByIdempotencyKey(ctx, "del-1"); err != nil {
		t.Fatalf("GetByIdempotencyKey() after delete error = %v", err)
	}
}

func setupClient(t *testing.T, ctx context.Context, name string) *entgenerated.Client {
	t.Helper()
	drv, err := stdsql.Open("sqlite", "file:"+name+"?mode=memory&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("failed opening sqlite driver: %v", err)
	}
	driver := entsql.OpenDB(dialect.SQLite, drv)
	client := enttest.NewClient(t, enttest.WithOptions(entgenerated.Driver(driver)))
	if err := client.Schema.Create(ctx); err != nil {
		t.Fatalf("failed creating schema: %v", err)
	}
	return client
}

func createCourseForTest(t *testing.T, repo *CourseRepository, ctx context.Context, course core.Course) *core.Course {
	t.Helper()
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	if course.InstructorID == uuid.Nil {
		course.InstructorID = uuid.New()
	}
	if course.Version == 0 {
		course.Version = 1
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	if course.UpdatedAt.IsZero() {
		course.UpdatedAt = course.CreatedAt
	}
	created, err := repo.Create(ctx, course)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return created
}
