package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kafka topics the service publishes to.
const (
	TopicCourseEvents     = "course.events"
	TopicReviewEvents     = "review.events"
	TopicEnrollmentEvents = "enrollment.events"
)

// Event types emitted after successful state transitions.
const (
	EventCourseCreated     = "course.created"
	EventCourseUpdated     = "course.updated"
	EventCoursePublished   = "course.published"
	EventCourseUnpublished = "course.unpublished"
	EventCourseDeleted     = "course.deleted"

	EventSectionCreated = "section.created"
	EventSectionUpdated = "section.updated"
	EventSectionDeleted = "section.deleted"
	EventLessonCreated  = "lesson.created"
	EventLessonUpdated  = "lesson.updated"
	EventLessonDeleted  = "lesson.deleted"
	EventQuizCreated    = "quiz.created"
	EventQuizUpdated    = "quiz.updated"
	EventQuizDeleted    = "quiz.deleted"

	EventReviewCreated = "review.created"
	EventReviewUpdated = "review.updated"
	EventReviewDeleted = "review.deleted"

	EventEnrollmentCreated   = "enrollment.created"
	EventEnrollmentCompleted = "enrollment.completed"
	EventQuizSubmitted       = "quiz.submitted"
	EventCertificateIssued   = "certificate.issued"
)

// EventSource identifies this service as the origin of emitted events.
const EventSource = "course-service"

// Event is the logical envelope published for every domain state transition.
type Event struct {
	EventType string         `json:"eventType"`
	EventID   uuid.UUID      `json:"eventId"`
	Timestamp time.Time      `json:"timestamp"`
	Source    string         `json:"source"`
	Payload   map[string]any `json:"payload"`
}

// NewEvent builds an envelope with a fresh event id.
func NewEvent(eventType string, at time.Time, payload map[string]any) Event {
	return Event{
		EventType: eventType,
		EventID:   uuid.New(),
		Timestamp: at,
		Source:    EventSource,
		Payload:   payload,
	}
}

// EventProducer publishes domain events. Delivery is at-least-once and
// failures are never surfaced to the triggering command.
type EventProducer interface {
	Produce(ctx context.Context, topic string, key string, event Event) error
}
