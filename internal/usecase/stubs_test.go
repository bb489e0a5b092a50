package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

type stubCourseRepo struct {
	createFn     func(ctx context.Context, course core.Course) (*core.Course, error)
	getFn        func(ctx context.Context, id uuid.UUID) (*core.Course, error)
	getBySlugFn  func(ctx context.Context, slug string) (*core.Course, error)
	getByKeyFn   func(ctx context.Context, key string) (*core.Course, error)
	listFn       func(ctx context.Context, filter core.CourseListFilter) ([]core.Course, string, error)
	updateFn     func(ctx context.Context, course core.Course) (*core.Course, error)
	softDeleteFn func(ctx context.Context, id uuid.UUID, at time.Time) error
}

func (s *stubCourseRepo) Create(ctx context.Context, course core.Course) (*core.Course, error) {
	if s.createFn != nil {
		return s.createFn(ctx, course)
	}
	copy := course
	return &copy, nil
}

func (s *stubCourseRepo) Get(ctx context.Context, id uuid.UUID) (*core.Course, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, core.ErrNotFound
}

func (s *stubCourseRepo) GetBySlug(ctx context.Context, slug string) (*core.Course, error) {
	if s.getBySlugFn != nil {
		return s.getBySlugFn(ctx, slug)
	}
	return nil, core.ErrNotFound
}

func (s *stubCourseRepo) GetByIdempotencyKey(ctx context.Context, key string) (*core.Course, error) {
	if s.getByKeyFn != nil {
		return s.getByKeyFn(ctx, key)
	}
	return nil, core.ErrNotFound
}

func (s *stubCourseRepo) List(ctx context.Context, filter core.CourseListFilter) ([]core.Course, string, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	return nil, "", nil
}

func (s *stubCourseRepo) Update(ctx context.Context, course core.Course) (*core.Course, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, course)
	}
	copy := course
	return &copy, nil
}

func (s *stubCourseRepo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	if s.softDeleteFn != nil {
		return s.softDeleteFn(ctx, id, at)
	}
	return nil
}

type stubSectionRepo struct {
	createFn       func(ctx context.Context, section core.Section) (*core.Section, error)
	getFn          func(ctx context.Context, id uuid.UUID) (*core.Section, error)
	getByKeyFn     func(ctx context.Context, key string) (*core.Section, error)
	listByCourseFn func(ctx context.Context, courseID uuid.UUID) ([]core.Section, error)
	updateFn       func(ctx context.Context, section core.Section) (*core.Section, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (s *stubSectionRepo) Create(ctx context.Context, section core.Section) (*core.Section, error) {
	if s.createFn != nil {
		return s.createFn(ctx, section)
	}
	copy := section
	return &copy, nil
}

func (s *stubSectionRepo) Get(ctx context.Context, id uuid.UUID) (*core.Section, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, core.ErrNotFound
}

func (s *stubSectionRepo) GetByIdempotencyKey(ctx context.Context, key string) (*core.Section, error) {
	if s.getByKeyFn != nil {
		return s.getByKeyFn(ctx, key)
	}
	return nil, core.ErrNotFound
}

func (s *stubSectionRepo) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]core.Section, error) {
	if s.listByCourseFn != nil {
		return s.listByCourseFn(ctx, courseID)
	}
	return nil, nil
}

func (s *stubSectionRepo) Update(ctx context.Context, section core.Section) (*core.Section, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, section)
	}
	copy := section
	return &copy, nil
}

func (s *stubSectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubLessonRepo struct {
	createFn        func(ctx context.Context, lesson core.Lesson) (*core.Lesson, error)
	getFn           func(ctx context.Context, id uuid.UUID) (*core.Lesson, error)
	getByKeyFn      func(ctx context.Context, key string) (*core.Lesson, error)
	listBySectionFn func(ctx context.Context, sectionID uuid.UUID) ([]core.Lesson, error)
	updateFn        func(ctx context.Context, lesson core.Lesson) (*core.Lesson, error)
	deleteFn        func(ctx context.Context, id uuid.UUID) error
}

func (s *stubLessonRepo) Create(ctx context.Context, lesson core.Lesson) (*core.Lesson, error) {
	if s.createFn != nil {
		return s.createFn(ctx, lesson)
	}
	copy := lesson
	return &copy, nil
}

func (s *stubLessonRepo) Get(ctx context.Context, id uuid.UUID) (*core.Lesson, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, core.ErrNotFound
}

func (s *stubLessonRepo) GetByIdempotencyKey(ctx context.Context, key string) (*core.Lesson, error) {
	if s.getByKeyFn != nil {
		return s.getByKeyFn(ctx, key)
	}
	return nil, core.ErrNotFound
}

func (s *stubLessonRepo) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]core.Lesson, error) {
	if s.listBySectionFn != nil {
		return s.listBySectionFn(ctx, sectionID)
	}
	return nil, nil
}

func (s *stubLessonRepo) Update(ctx context.Context, lesson core.Lesson) (*core.Lesson, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, lesson)
	}
	copy := lesson
	return &copy, nil
}

func (s *stubLessonRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubQuizRepo struct {
	createFn       func(ctx context.Context, quiz core.Quiz) (*core.Quiz, error)
	getFn          func(ctx context.Context, id uuid.UUID) (*core.Quiz, error)
	getBySectionFn func(ctx context.Context, sectionID uuid.UUID) (*core.Quiz, error)
	getByKeyFn     func(ctx context.Context, key string) (*core.Quiz, error)
	updateFn       func(ctx context.Context, quiz core.Quiz) (*core.Quiz, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (s *stubQuizRepo) Create(ctx context.Context, quiz core.Quiz) (*core.Quiz, error) {
	if s.createFn != nil {
		return s.createFn(ctx, quiz)
	}
	copy := quiz
	return &copy, nil
}

func (s *stubQuizRepo) Get(ctx context.Context, id uuid.UUID) (*core.Quiz, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, core.ErrNotFound
}

func (s *stubQuizRepo) GetBySection(ctx context.Context, sectionID uuid.UUID) (*core.Quiz, error) {
	if s.getBySectionFn != nil {
		return s.getBySectionFn(ctx, sectionID)
	}
	return nil, core.ErrNotFound
}

func (s *stubQuizRepo) GetByIdempotencyKey(ctx context.Context, key string) (*core.Quiz, error) {
	if s.getByKeyFn != nil {
		return s.getByKeyFn(ctx, key)
	}
	return nil, core.ErrNotFound
}

func (s *stubQuizRepo) Update(ctx context.Context, quiz core.Quiz) (*core.Quiz, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, quiz)
	}
	copy := quiz
	return &copy, nil
}

func (s *stubQuizRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubReviewRepo struct {
	createFn             func(ctx context.Context, review core.Review) (*core.Review, error)
	getFn                func(ctx context.Context, id uuid.UUID) (*core.Review, error)
	getByUserAndCourseFn func(ctx context.Context, userID, courseID uuid.UUID) (*core.Review, error)
	listByCourseFn       func(ctx context.Context, filter core.ReviewListFilter) ([]core.Review, string, error)
	updateFn             func(ctx context.Context, review core.Review) (*core.Review, error)
	deleteFn             func(ctx context.Context, id uuid.UUID) error
}

func (s *stubReviewRepo) Create(ctx context.Context, review core.Review) (*core.Review, error) {
	if s.createFn != nil {
		return s.createFn(ctx, review)
	}
	copy := review
	return &copy, nil
}

func (s *stubReviewRepo) Get(ctx context.Context, id uuid.UUID) (*core.Review, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, core.ErrNotFound
}

func (s *stubReviewRepo) GetByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*core.Review, error) {
	if s.getByUserAndCourseFn != nil {
		return s.getByUserAndCourseFn(ctx, userID, courseID)
	}
	return nil, core.ErrNotFound
}

func (s *stubReviewRepo) ListByCourse(ctx context.Context, filter core.ReviewListFilter) ([]core.Review, string, error) {
	if s.listByCourseFn != nil {
		return s.listByCourseFn(ctx, filter)
	}
	return nil, "", nil
}

func (s *stubReviewRepo) Update(ctx context.Context, review core.Review) (*core.Review, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, review)
	}
	copy := review
	return &copy, nil
}

func (s *stubReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubEnrollmentRepo struct {
	createFn                func(ctx context.Context, enrollment core.Enrollment) (*core.Enrollment, error)
	getFn                   func(ctx context.Context, id uuid.UUID) (*core.Enrollment, error)
	getByStudentAndCourseFn func(ctx context.Context, studentID, courseID uuid.UUID) (*core.Enrollment, error)
	getByKeyFn              func(ctx context.Context, key string) (*core.Enrollment, error)
	listByStudentFn         func(ctx context.Context, studentID uuid.UUID) ([]core.Enrollment, error)
	updateFn                func(ctx context.Context, enrollment core.Enrollment) (*core.Enrollment, error)
}

func (s *stubEnrollmentRepo) Create(ctx context.Context, enrollment core.Enrollment) (*core.Enrollment, error) {
	if s.createFn != nil {
		return s.createFn(ctx, enrollment)
	}
	copy := enrollment
	return &copy, nil
}

func (s *stubEnrollmentRepo) Get(ctx context.Context, id uuid.UUID) (*core.Enrollment, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, core.ErrNotFound
}

func (s *stubEnrollmentRepo) GetByStudentAndCourse(ctx context.Context, studentID, courseID uuid.UUID) (*core.Enrollment, error) {
	if s.getByStudentAndCourseFn != nil {
		return s.getByStudentAndCourseFn(ctx, studentID, courseID)
	}
	return nil, core.ErrNotFound
}

func (s *stubEnrollmentRepo) GetByIdempotencyKey(ctx context.Context, key string) (*core.Enrollment, error) {
	if s.getByKeyFn != nil {
		return s.getByKeyFn(ctx, key)
	}
	return nil, core.ErrNotFound
}

func (s *stubEnrollmentRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]core.Enrollment, error) {
	if s.listByStudentFn != nil {
		return s.listByStudentFn(ctx, studentID)
	}
	return nil, nil
}

func (s *stubEnrollmentRepo) Update(ctx context.Context, enrollment core.Enrollment) (*core.Enrollment, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, enrollment)
	}
	copy := enrollment
	return &copy, nil
}

type stubCertificateRepo struct {
	createFn          func(ctx context.Context, certificate core.Certificate) (*core.Certificate, error)
	getFn             func(ctx context.Context, id uuid.UUID) (*core.Certificate, error)
	getByEnrollmentFn func(ctx context.Context, enrollmentID uuid.UUID) (*core.Certificate, error)
	getByNumberFn     func(ctx context.Context, number string) (*core.Certificate, error)
}

func (s *stubCertificateRepo) Create(ctx context.Context, certificate core.Certificate) (*core.Certificate, error) {
	if s.createFn != nil {
		return s.createFn(ctx, certificate)
	}
	copy := certificate
	return &copy, nil
}

func (s *stubCertificateRepo) Get(ctx context.Context, id uuid.UUID) (*core.Certificate, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, core.ErrNotFound
}

func (s *stubCertificateRepo) GetByEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*core.Certificate, error) {
	if s.getByEnrollmentFn != nil {
		return s.getByEnrollmentFn(ctx, enrollmentID)
	}
	return nil, core.ErrNotFound
}

func (s *stubCertificateRepo) GetByNumber(ctx context.Context, number string) (*core.Certificate, error) {
	if s.getByNumberFn != nil {
		return s.getByNumberFn(ctx, number)
	}
	return nil, core.ErrNotFound
}

type producedEvent struct {
	Topic string
	Key   string
	Event core.Event
}

type stubProducer struct {
	mu        sync.Mutex
	produceFn func(ctx context.Context, topic, key string, event core.Event) error
	events    []producedEvent
}

func (s *stubProducer) Produce(ctx context.Context, topic, key string, event core.Event) error {
	s.mu.Lock()
	s.events = append(s.events, producedEvent{Topic: topic, Key: key, Event: event})
	s.mu.Unlock()
	if s.produceFn != nil {
		return s.produceFn(ctx, topic, key, event)
	}
	return nil
}

func (s *stubProducer) eventTypes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	types := make([]string, 0, len(s.events))
	for _, e := range s.events {
		types = append(types, e.Event.EventType)
	}
	return types
}

type stubCache struct {
	getFn        func(ctx context.Context, id uuid.UUID) (*core.Course, error)
	setFn        func(ctx context.Context, course *core.Course) error
	invalidateFn func(ctx context.Context, id uuid.UUID) error
	invalidated  []uuid.UUID
}

func (s *stubCache) Get(ctx context.Context, id uuid.UUID) (*core.Course, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, core.ErrNotFound
}

func (s *stubCache) Set(ctx context.Context, course *core.Course) error {
	if s.setFn != nil {
		return s.setFn(ctx, course)
	}
	return nil
}

func (s *stubCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	s.invalidated = append(s.invalidated, id)
	if s.invalidateFn != nil {
		return s.invalidateFn(ctx, id)
	}
	return nil
}

type stubLocker struct {
	lockFn func(ctx context.Context, key string) (core.UnlockFunc, error)
	keys   []string
}

func (s *stubLocker) Lock(ctx context.Context, key string) (core.UnlockFunc, error) {
	s.keys = append(s.keys, key)
	if s.lockFn != nil {
		return s.lockFn(ctx, key)
	}
	return func(context.Context) {}, nil
}
