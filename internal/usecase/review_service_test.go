package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

// reviewFixture wires a review service against a single in-memory course and
// enrollment so rating flows can be exercised end to end.
type reviewFixture struct {
	service    *ReviewService
	course     *core.Course
	enrollment *core.Enrollment
	reviews    map[uuid.UUID]*core.Review
	producer   *stubProducer
	locker     *stubLocker
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()

	course := &core.Course{
		ID:           uuid.New(),
		InstructorID: uuid.New(),
		Status:       core.CourseStatusPublished,
		Version:      1,
	}
	enrollment := &core.Enrollment{
		ID:       uuid.New(),
		CourseID: course.ID,
		Status:   core.EnrollmentStatusActive,
	}

	f := &reviewFixture{
		course:     course,
		enrollment: enrollment,
		reviews:    make(map[uuid.UUID]*core.Review),
		producer:   &stubProducer{},
		locker:     &stubLocker{},
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
			if updated.Version != course.Version {
				return nil, core.ErrConflict
			}
			updated.Version++
			*course = updated
			copy := updated
			return &copy, nil
		},
	}
	enrollments := &stubEnrollmentRepo{
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Enrollment, error) {
			if id != enrollment.ID {
				return nil, core.ErrNotFound
			}
			copy := *enrollment
			return &copy, nil
		},
		getByStudentAndCourseFn: func(ctx context.Context, studentID, courseID uuid.UUID) (*core.Enrollment, error) {
			if studentID == enrollment.StudentID && courseID == enrollment.CourseID {
				copy := *enrollment
				return &copy, nil
			}
			return nil, core.ErrNotFound
		},
	}
	reviews := &stubReviewRepo{
		createFn: func(ctx context.Context, review core.Review) (*core.Review, error) {
			copy := review
			f.reviews[review.ID] = &copy
			return &copy, nil
		},
		getFn: func(ctx context.Context, id uuid.UUID) (*core.Review, error) {
			if review, ok := f.reviews[id]; ok {
				copy := *review
				return &copy, nil
			}
			return nil, core.ErrNotFound
		},
		getByUserAndCourseFn: func(ctx context.Context, userID, courseID uuid.UUID) (*core.Review, error) {
			for _, review := range f.reviews {
				if review.UserID == userID && review.CourseID == courseID {
					copy := *review
					return &copy, nil
				}
			}
			return nil, core.ErrNotFound
		},
		updateFn: func(ctx context.Context, review core.Review) (*core.Review, error) {
			copy := review
			f.reviews[review.ID] = &copy
			return &copy, nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			delete(f.reviews, id)
			return nil
		},
	}

	f.service = NewReviewService(reviews, courses, enrollments, &stubCache{}, f.locker, f.producer, nil)
	f.service.WithClock(func() time.Time { return time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC) })
	return f
}

func (f *reviewFixture) createReview(t *testing.T, userID uuid.UUID, rating int) *core.Review {
	t.Helper()
	f.enrollment.StudentID = userID
	review, err := f.service.CreateReview(context.Background(), core.CreateReviewParams{
		Actor:    core.Actor{UserID: userID},
		User:     core.ReviewUser{ID: userID, Name: "Student"},
		CourseID: f.course.ID,
		Rating:   rating,
	})
	if err != nil {
		t.Fatalf("CreateReview() error = %v", err)
	}
	return review
}

func TestReviewService_RatingLifecycleScenario(t *testing.T) {
	f := newReviewFixture(t)

	userA := uuid.New()
	reviewA := f.createReview(t, userA, 4)

	userB := uuid.New()
	reviewB := f.createReview(t, userB, 5)

	if f.course.NumberOfRating != 2 || math.Abs(f.course.Rating-4.5) > 1e-9 {
		t.Fatalf("after two reviews expected (4.5,2), got (%v,%d)", f.course.Rating, f.course.NumberOfRating)
	}

	// Deleting review A must re-validate its enrollment, so keep the shared
	// enrollment pointing at the deleting user.
	f.enrollment.StudentID = userA
	if err := f.service.DeleteReview(context.Background(), core.Actor{UserID: userA}, reviewA.ID); err != nil {
		t.Fatalf("DeleteReview() error = %v", err)
	}
	if f.course.NumberOfRating != 1 || math.Abs(f.course.Rating-5) > 1e-9 {
		t.Fatalf("after delete expected (5,1), got (%v,%d)", f.course.Rating, f.course.NumberOfRating)
	}

	f.enrollment.StudentID = userB
	if _, err := f.service.UpdateReview(context.Background(), core.UpdateReviewParams{
		Actor:  core.Actor{UserID: userB},
		ID:     reviewB.ID,
		Rating: 3,
	}); err != nil {
		t.Fatalf("UpdateReview() error = %v", err)
	}
	if f.course.NumberOfRating != 1 || math.Abs(f.course.Rating-3) > 1e-9 {
		t.Fatalf("after update expected (3,1), got (%v,%d)", f.course.Rating, f.course.NumberOfRating)
	}
}

func TestReviewService_CreateReviewRequiresEnrollment(t *testing.T) {
	f := newReviewFixture(t)
	f.enrollment.StudentID = uuid.New()

	_, err := f.service.CreateReview(context.Background(), core.CreateReviewParams{
		Actor:    core.Actor{UserID: uuid.New()},
		CourseID: f.course.ID,
		Rating:   5,
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing enrollment, got %v", err)
	}
}

func TestReviewService_DuplicateReviewRejected(t *testing.T) {
	f := newReviewFixture(t)
	user := uuid.New()
	f.createReview(t, user, 4)

	_, err := f.service.CreateReview(context.Background(), core.CreateReviewParams{
		Actor:    core.Actor{UserID: user},
		CourseID: f.course.ID,
		Rating:   5,
	})
	if !errors.Is(err, core.ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
	if f.course.NumberOfRating != 1 {
		t.Fatalf("expected rating count unchanged, got %d", f.course.NumberOfRating)
	}
}

func TestReviewService_RatingBoundsValidated(t *testing.T) {
	f := newReviewFixture(t)
	user := uuid.New()
	f.enrollment.StudentID = user

	_, err := f.service.CreateReview(context.Background(), core.CreateReviewParams{
		Actor:    core.Actor{UserID: user},
		CourseID: f.course.ID,
		Rating:   6,
	})
	if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestReviewService_UpdateByOtherUserUnauthorized(t *testing.T) {
	f := newReviewFixture(t)
	owner := uuid.New()
	review := f.createReview(t, owner, 4)

	_, err := f.service.UpdateReview(context.Background(), core.UpdateReviewParams{
		Actor:  core.Actor{UserID: uuid.New()},
		ID:     review.ID,
		Rating: 1,
	})
	if !errors.Is(err, core.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if f.reviews[review.ID].Rating != 4 {
		t.Fatalf("expected review untouched, got rating %d", f.reviews[review.ID].Rating)
	}
}

func TestReviewService_RatingMutationUsesCourseLock(t *testing.T) {
	f := newReviewFixture(t)
	f.createReview(t, uuid.New(), 5)

	want := "course:" + f.course.ID.String()
	if len(f.locker.keys) != 1 || f.locker.keys[0] != want {
		t.Fatalf("expected lock on %q, got %v", want, f.locker.keys)
	}
}
