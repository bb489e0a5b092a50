package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EnrollmentStatus denotes the lifecycle stage for an enrollment.
type EnrollmentStatus int

const (
	EnrollmentStatusUnspecified EnrollmentStatus = iota
	EnrollmentStatusActive
	EnrollmentStatusCompleted
	EnrollmentStatusCancelled
)

// ProgressUnitType distinguishes completed lesson units from quiz units.
type ProgressUnitType int

const (
	ProgressUnitTypeUnspecified ProgressUnitType = iota
	ProgressUnitTypeLesson
	ProgressUnitTypeQuiz
)

// ProgressEntry records the learner's state for one learning unit.
type ProgressEntry struct {
	UnitID      uuid.UUID        `json:"unit_id"`
	UnitType    ProgressUnitType `json:"unit_type"`
	Completed   bool             `json:"completed"`
	Score       float64          `json:"score,omitempty"`
	Passed      bool             `json:"passed,omitempty"`
	Attempts    int              `json:"attempts,omitempty"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}

// Enrollment tracks one student's progress through a course. Progress is
// monotonic: a unit marked complete never reverts, even if a later quiz
// attempt scores lower.
type Enrollment struct {
	ID              uuid.UUID
	StudentID       uuid.UUID
	CourseID        uuid.UUID
	Status          EnrollmentStatus
	Progress        []ProgressEntry
	ProgressPercent float64
	CompletedAt     *time.Time
	IdempotencyKey  string
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CompleteLesson marks a lesson unit complete and recomputes progress.
// Replays are no-ops; the returned flag reports whether anything changed.
func (e *Enrollment) CompleteLesson(lessonID uuid.UUID, totalUnits int, now time.Time) bool {
	entry := e.findEntry(lessonID)
	if entry == nil {
		e.Progress = append(e.Progress, ProgressEntry{
			UnitID:   lessonID,
			UnitType: ProgressUnitTypeLesson,
		})
		entry = &e.Progress[len(e.Progress)-1]
	}
	if entry.Completed {
		return false
	}

	entry.Completed = true
	entry.CompletedAt = &now
	e.recomputeProgress(totalUnits, now)
	return true
}

// CompleteQuiz records a quiz attempt. A required quiz counts toward
// progress only once passed; a non-required quiz counts on any attempt.
// Score and Passed always reflect the latest attempt, but completion never
// reverts. The returned flag reports whether the unit newly completed.
func (e *Enrollment) CompleteQuiz(quizID uuid.UUID, score float64, passed, required bool, totalUnits int, now time.Time) bool {
	entry := e.findEntry(quizID)
	if entry == nil {
		e.Progress = append(e.Progress, ProgressEntry{
			UnitID:   quizID,
			UnitType: ProgressUnitTypeQuiz,
		})
		entry = &e.Progress[len(e.Progress)-1]
	}

	entry.Attempts++
	entry.Score = score
	entry.Passed = passed
	e.UpdatedAt = now

	if entry.Completed {
		return false
	}
	if required && !passed {
		return false
	}

	entry.Completed = true
	entry.CompletedAt = &now
	e.recomputeProgress(totalUnits, now)
	return true
}

// AttemptsFor returns the number of recorded attempts for a unit.
func (e *Enrollment) AttemptsFor(unitID uuid.UUID) int {
	if entry := e.findEntry(unitID); entry != nil {
		return entry.Attempts
	}
	return 0
}

// CompletedUnits counts the units marked complete.
func (e *Enrollment) CompletedUnits() int {
	count := 0
	for _, entry := range e.Progress {
		if entry.Completed {
			count++
		}
	}
	return count
}

func (e *Enrollment) findEntry(unitID uuid.UUID) *ProgressEntry {
	for i := range e.Progress {
		if e.Progress[i].UnitID == unitID {
			return &e.Progress[i]
		}
	}
	return nil
}

func (e *Enrollment) recomputeProgress(totalUnits int, now time.Time) {
	e.UpdatedAt = now
	if totalUnits <= 0 {
		return
	}

	percent := float64(e.CompletedUnits()) / float64(totalUnits) * 100
	if percent > 100 {
		percent = 100
	}
	// Monotonic: never report lower progress than already reached.
	if percent > e.ProgressPercent {
		e.ProgressPercent = percent
	}
	if e.ProgressPercent >= 100 && e.Status != EnrollmentStatusCompleted {
		e.Status = EnrollmentStatusCompleted
		e.CompletedAt = &now
	}
}

// EnrollParams describes the inputs required to enroll a student.
type EnrollParams struct {
	Actor          Actor
	CourseID       uuid.UUID
	IdempotencyKey string
}

// CompleteLessonParams describes the inputs for marking a lesson complete.
type CompleteLessonParams struct {
	Actor        Actor
	EnrollmentID uuid.UUID
	LessonID     uuid.UUID
}

// SubmitQuizParams describes the inputs for submitting quiz answers.
type SubmitQuizParams struct {
	Actor        Actor
	EnrollmentID uuid.UUID
	QuizID       uuid.UUID
	Answers      []QuizAnswer
}

// QuizResult reports the grading outcome of a quiz submission.
type QuizResult struct {
	Score      float64
	Passed     bool
	Attempts   int
	Enrollment Enrollment
}

// EnrollmentRepository defines persistence operations for enrollments.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment Enrollment) (*Enrollment, error)
	Get(ctx context.Context, id uuid.UUID) (*Enrollment, error)
	GetByStudentAndCourse(ctx context.Context, studentID, courseID uuid.UUID) (*Enrollment, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*Enrollment, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]Enrollment, error)
	// Update persists the enrollment conditionally on the version it was
	// loaded with and returns ErrConflict on a concurrent write.
	Update(ctx context.Context, enrollment Enrollment) (*Enrollment, error)
}

// EnrollmentService exposes the enrollment use cases to adapters.
type EnrollmentService interface {
	Enroll(ctx context.Context, params EnrollParams) (*Enrollment, error)
	GetEnrollment(ctx context.Context, actor Actor, id uuid.UUID) (*Enrollment, error)
	ListStudentEnrollments(ctx context.Context, actor Actor) ([]Enrollment, error)
	CompleteLesson(ctx context.Context, params CompleteLessonParams) (*Enrollment, error)
	SubmitQuiz(ctx context.Context, params SubmitQuizParams) (*QuizResult, error)
	IssueCertificate(ctx context.Context, actor Actor, enrollmentID uuid.UUID) (*Certificate, error)
	GetCertificate(ctx context.Context, id uuid.UUID) (*Certificate, error)
}
