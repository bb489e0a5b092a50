package core

import (
	"math"
	"testing"
	"time"
)

const ratingTolerance = 1e-9

func TestCourse_RateComputesArithmeticMean(t *testing.T) {
	ratings := []int{5, 3, 4, 1, 2, 5, 4}

	course := Course{}
	sum := 0
	for _, r := range ratings {
		course.Rate(r)
		sum += r
	}

	if course.NumberOfRating != len(ratings) {
		t.Fatalf("expected NumberOfRating %d, got %d", len(ratings), course.NumberOfRating)
	}
	want := float64(sum) / float64(len(ratings))
	if math.Abs(course.Rating-want) > ratingTolerance {
		t.Fatalf("expected rating %v, got %v", want, course.Rating)
	}
}

func TestCourse_RemoveRatingInvertsRate(t *testing.T) {
	course := Course{}
	course.Rate(4)
	course.Rate(2)

	before := course
	course.Rate(5)
	course.RemoveRating(5)

	if course.NumberOfRating != before.NumberOfRating {
		t.Fatalf("expected NumberOfRating %d, got %d", before.NumberOfRating, course.NumberOfRating)
	}
	if math.Abs(course.Rating-before.Rating) > ratingTolerance {
		t.Fatalf("expected rating %v, got %v", before.Rating, course.Rating)
	}
}

func TestCourse_RemoveLastRatingResets(t *testing.T) {
	course := Course{}
	course.Rate(3)
	course.RemoveRating(3)

	if course.Rating != 0 || course.NumberOfRating != 0 {
		t.Fatalf("expected reset to (0,0), got (%v,%d)", course.Rating, course.NumberOfRating)
	}

	// Removing from an empty course stays at (0,0).
	course.RemoveRating(5)
	if course.Rating != 0 || course.NumberOfRating != 0 {
		t.Fatalf("expected (0,0), got (%v,%d)", course.Rating, course.NumberOfRating)
	}
}

func TestCourse_ChangeRatingMatchesRemoveThenRate(t *testing.T) {
	direct := Course{}
	stepped := Course{}
	for _, r := range []int{4, 5, 2} {
		direct.Rate(r)
		stepped.Rate(r)
	}

	direct.ChangeRating(5, 1)
	stepped.RemoveRating(5)
	stepped.Rate(1)

	if direct.NumberOfRating != 3 {
		t.Fatalf("expected count unchanged, got %d", direct.NumberOfRating)
	}
	if math.Abs(direct.Rating-stepped.Rating) > ratingTolerance {
		t.Fatalf("expected rating %v, got %v", stepped.Rating, direct.Rating)
	}
}

func TestCourse_ReviewLifecycleScenario(t *testing.T) {
	course := Course{}

	course.Rate(4)
	course.Rate(5)
	if math.Abs(course.Rating-4.5) > ratingTolerance || course.NumberOfRating != 2 {
		t.Fatalf("after two ratings expected (4.5,2), got (%v,%d)", course.Rating, course.NumberOfRating)
	}

	course.RemoveRating(4)
	if math.Abs(course.Rating-5) > ratingTolerance || course.NumberOfRating != 1 {
		t.Fatalf("after removal expected (5,1), got (%v,%d)", course.Rating, course.NumberOfRating)
	}

	course.ChangeRating(5, 3)
	if math.Abs(course.Rating-3) > ratingTolerance || course.NumberOfRating != 1 {
		t.Fatalf("after change expected (3,1), got (%v,%d)", course.Rating, course.NumberOfRating)
	}
}

func TestCourse_PublishTransitions(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	course := Course{Status: CourseStatusDraft}

	if err := course.Publish(now); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if course.Status != CourseStatusPublished {
		t.Fatalf("expected published status, got %v", course.Status)
	}
	if course.PublishedAt == nil || !course.PublishedAt.Equal(now) {
		t.Fatalf("expected PublishedAt %v", now)
	}

	if err := course.Publish(now); err == nil {
		t.Fatal("expected error publishing an already published course")
	}

	if err := course.Unpublish(now.Add(time.Hour)); err != nil {
		t.Fatalf("Unpublish() error = %v", err)
	}
	if course.Status != CourseStatusUnpublished {
		t.Fatalf("expected unpublished status, got %v", course.Status)
	}

	if err := course.Unpublish(now); err == nil {
		t.Fatal("expected error unpublishing a non-published course")
	}
}
