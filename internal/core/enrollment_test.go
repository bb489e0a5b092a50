package core

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestEnrollment_CompleteLessonIsIdempotent(t *testing.T) {
	now := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	lessonID := uuid.New()
	enrollment := Enrollment{Status: EnrollmentStatusActive}

	if !enrollment.CompleteLesson(lessonID, 4, now) {
		t.Fatal("expected first completion to report a change")
	}
	if enrollment.CompletedUnits() != 1 {
		t.Fatalf("expected 1 completed unit, got %d", enrollment.CompletedUnits())
	}
	if enrollment.ProgressPercent != 25 {
		t.Fatalf("expected 25%% progress, got %v", enrollment.ProgressPercent)
	}

	if enrollment.CompleteLesson(lessonID, 4, now.Add(time.Hour)) {
		t.Fatal("expected replayed completion to be a no-op")
	}
	if enrollment.CompletedUnits() != 1 {
		t.Fatalf("expected no double counting, got %d units", enrollment.CompletedUnits())
	}
}

func TestEnrollment_RequiredQuizCountsOnlyWhenPassed(t *testing.T) {
	now := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	quizID := uuid.New()
	enrollment := Enrollment{Status: EnrollmentStatusActive}

	if enrollment.CompleteQuiz(quizID, 40, false, true, 2, now) {
		t.Fatal("expected failed required quiz not to complete the unit")
	}
	if enrollment.CompletedUnits() != 0 {
		t.Fatalf("expected 0 completed units, got %d", enrollment.CompletedUnits())
	}
	if enrollment.AttemptsFor(quizID) != 1 {
		t.Fatalf("expected attempt recorded, got %d", enrollment.AttemptsFor(quizID))
	}

	if !enrollment.CompleteQuiz(quizID, 80, true, true, 2, now.Add(time.Hour)) {
		t.Fatal("expected passing attempt to complete the unit")
	}
	if enrollment.CompletedUnits() != 1 {
		t.Fatalf("expected 1 completed unit, got %d", enrollment.CompletedUnits())
	}
	if enrollment.ProgressPercent != 50 {
		t.Fatalf("expected 50%% progress, got %v", enrollment.ProgressPercent)
	}
}

func TestEnrollment_NonRequiredQuizCountsOnAnyAttempt(t *testing.T) {
	now := time.Date(2024, 4, 3, 9, 0, 0, 0, time.UTC)
	enrollment := Enrollment{Status: EnrollmentStatusActive}

	if !enrollment.CompleteQuiz(uuid.New(), 10, false, false, 1, now) {
		t.Fatal("expected non-required quiz to complete regardless of score")
	}
	if enrollment.Status != EnrollmentStatusCompleted {
		t.Fatalf("expected enrollment completed at 100%%, got status %v", enrollment.Status)
	}
	if enrollment.CompletedAt == nil {
		t.Fatal("expected CompletedAt to be set")
	}
}

func TestEnrollment_CompletionIsMonotonic(t *testing.T) {
	now := time.Date(2024, 4, 4, 9, 0, 0, 0, time.UTC)
	quizID := uuid.New()
	enrollment := Enrollment{Status: EnrollmentStatusActive}

	if !enrollment.CompleteQuiz(quizID, 90, true, true, 2, now) {
		t.Fatal("expected passing attempt to complete the unit")
	}

	// A later, worse attempt updates score and passed but never reverts
	// completion or progress.
	if enrollment.CompleteQuiz(quizID, 30, false, true, 2, now.Add(time.Hour)) {
		t.Fatal("expected re-attempt not to report new completion")
	}

	entry := enrollment.Progress[0]
	if !entry.Completed {
		t.Fatal("expected completion to stay true after a worse attempt")
	}
	if entry.Score != 30 || entry.Passed {
		t.Fatalf("expected latest attempt recorded, got score=%v passed=%v", entry.Score, entry.Passed)
	}
	if entry.Attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", entry.Attempts)
	}
	if enrollment.ProgressPercent != 50 {
		t.Fatalf("expected progress to stay at 50%%, got %v", enrollment.ProgressPercent)
	}
}

func TestQuiz_Grade(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()
	quiz := Quiz{
		PassingScore: 60,
		Questions: []Question{
			{ID: q1, Type: QuestionTypeSingleChoice, Prompt: "a", CorrectAnswer: "x", Point: 3},
			{ID: q2, Type: QuestionTypeTrueFalse, Prompt: "b", CorrectAnswer: "true", Point: 1},
		},
	}

	score, passed := quiz.Grade([]QuizAnswer{
		{QuestionID: q1, Value: "x"},
		{QuestionID: q2, Value: "false"},
	})
	if score != 75 || !passed {
		t.Fatalf("expected (75,true), got (%v,%v)", score, passed)
	}

	score, passed = quiz.Grade([]QuizAnswer{{QuestionID: q2, Value: "true"}})
	if score != 25 || passed {
		t.Fatalf("expected (25,false), got (%v,%v)", score, passed)
	}

	// Unanswered quiz scores zero.
	score, passed = quiz.Grade(nil)
	if score != 0 || passed {
		t.Fatalf("expected (0,false), got (%v,%v)", score, passed)
	}
}
