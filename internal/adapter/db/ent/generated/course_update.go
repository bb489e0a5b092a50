// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/course"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/enrollment"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/predicate"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/review"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/section"
)

// CourseUpdate is the builder for updating Course entities.
type CourseUpdate struct {
	config
	hooks    []Hook
	mutation *CourseMutation
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdate) Where(ps ...predicate.Course) *CourseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInstructorID sets the "instructor_id" field.
func (_u *CourseUpdate) SetInstructorID(v uuid.UUID) *CourseUpdate {
	_u.mutation.SetInstructorID(v)
	return _u
}

// SetNillableInstructorID sets the "instructor_id" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableInstructorID(v *uuid.UUID) *CourseUpdate {
	if v != nil {
		_u.SetInstructorID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseUpdate) SetTitle(v string) *CourseUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableTitle(v *string) *CourseUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *CourseUpdate) SetSlug(v string) *CourseUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableSlug(v *string) *CourseUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetSubtitle sets the "subtitle" field.
func (_u *CourseUpdate) SetSubtitle(v string) *CourseUpdate {
	_u.mutation.SetSubtitle(v)
	return _u
}

// SetNillableSubtitle sets the "subtitle" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableSubtitle(v *string) *CourseUpdate {
	if v != nil {
		_u.SetSubtitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CourseUpdate) SetDescription(v string) *CourseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableDescription(v *string) *CourseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CourseUpdate) SetCategory(v string) *CourseUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableCategory(v *string) *CourseUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *CourseUpdate) SetLevel(v int) *CourseUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableLevel(v *int) *CourseUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *CourseUpdate) AddLevel(v int) *CourseUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetLanguage sets the "language" field.
func (_u *CourseUpdate) SetLanguage(v string) *CourseUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableLanguage(v *string) *CourseUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (_u *CourseUpdate) SetThumbnailURL(v string) *CourseUpdate {
	_u.mutation.SetThumbnailURL(v)
	return _u
}

// SetNillableThumbnailURL sets the "thumbnail_url" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableThumbnailURL(v *string) *CourseUpdate {
	if v != nil {
		_u.SetThumbnailURL(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *CourseUpdate) SetPrice(v int64) *CourseUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *CourseUpdate) SetNillablePrice(v *int64) *CourseUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *CourseUpdate) AddPrice(v int64) *CourseUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetDiscountPrice sets the "discount_price" field.
func (_u *CourseUpdate) SetDiscountPrice(v int64) *CourseUpdate {
	_u.mutation.ResetDiscountPrice()
	_u.mutation.SetDiscountPrice(v)
	return _u
}

// SetNillableDiscountPrice sets the "discount_price" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableDiscountPrice(v *int64) *CourseUpdate {
	if v != nil {
		_u.SetDiscountPrice(*v)
	}
	return _u
}

// AddDiscountPrice adds value to the "discount_price" field.
func (_u *CourseUpdate) AddDiscountPrice(v int64) *CourseUpdate {
	_u.mutation.AddDiscountPrice(v)
	return _u
}

// ClearDiscountPrice clears the value of the "discount_price" field.
func (_u *CourseUpdate) ClearDiscountPrice() *CourseUpdate {
	_u.mutation.ClearDiscountPrice()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CourseUpdate) SetStatus(v int) *CourseUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableStatus(v *int) *CourseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *CourseUpdate) AddStatus(v int) *CourseUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *CourseUpdate) SetRating(v float64) *CourseUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableRating(v *float64) *CourseUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *CourseUpdate) AddRating(v float64) *CourseUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetNumberOfRating sets the "number_of_rating" field.
func (_u *CourseUpdate) SetNumberOfRating(v int) *CourseUpdate {
	_u.mutation.ResetNumberOfRating()
	_u.mutation.SetNumberOfRating(v)
	return _u
}

// SetNillableNumberOfRating sets the "number_of_rating" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableNumberOfRating(v *int) *CourseUpdate {
	if v != nil {
		_u.SetNumberOfRating(*v)
	}
	return _u
}

// AddNumberOfRating adds value to the "number_of_rating" field.
func (_u *CourseUpdate) AddNumberOfRating(v int) *CourseUpdate {
	_u.mutation.AddNumberOfRating(v)
	return _u
}

// SetSectionCount sets the "section_count" field.
func (_u *CourseUpdate) SetSectionCount(v int) *CourseUpdate {
	_u.mutation.ResetSectionCount()
	_u.mutation.SetSectionCount(v)
	return _u
}

// SetNillableSectionCount sets the "section_count" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableSectionCount(v *int) *CourseUpdate {
	if v != nil {
		_u.SetSectionCount(*v)
	}
	return _u
}

// AddSectionCount adds value to the "section_count" field.
func (_u *CourseUpdate) AddSectionCount(v int) *CourseUpdate {
	_u.mutation.AddSectionCount(v)
	return _u
}

// SetLessonCount sets the "lesson_count" field.
func (_u *CourseUpdate) SetLessonCount(v int) *CourseUpdate {
	_u.mutation.ResetLessonCount()
	_u.mutation.SetLessonCount(v)
	return _u
}

// SetNillableLessonCount sets the "lesson_count" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableLessonCount(v *int) *CourseUpdate {
	if v != nil {
		_u.SetLessonCount(*v)
	}
	return _u
}

// AddLessonCount adds value to the "lesson_count" field.
func (_u *CourseUpdate) AddLessonCount(v int) *CourseUpdate {
	_u.mutation.AddLessonCount(v)
	return _u
}

// SetQuizCount sets the "quiz_count" field.
func (_u *CourseUpdate) SetQuizCount(v int) *CourseUpdate {
	_u.mutation.ResetQuizCount()
	_u.mutation.SetQuizCount(v)
	return _u
}

// SetNillableQuizCount sets the "quiz_count" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableQuizCount(v *int) *CourseUpdate {
	if v != nil {
		_u.SetQuizCount(*v)
	}
	return _u
}

// AddQuizCount adds value to the "quiz_count" field.
func (_u *CourseUpdate) AddQuizCount(v int) *CourseUpdate {
	_u.mutation.AddQuizCount(v)
	return _u
}

// SetEnrollmentCount sets the "enrollment_count" field.
func (_u *CourseUpdate) SetEnrollmentCount(v int) *CourseUpdate {
	_u.mutation.ResetEnrollmentCount()
	_u.mutation.SetEnrollmentCount(v)
	return _u
}

// SetNillableEnrollmentCount sets the "enrollment_count" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableEnrollmentCount(v *int) *CourseUpdate {
	if v != nil {
		_u.SetEnrollmentCount(*v)
	}
	return _u
}

// AddEnrollmentCount adds value to the "enrollment_count" field.
func (_u *CourseUpdate) AddEnrollmentCount(v int) *CourseUpdate {
	_u.mutation.AddEnrollmentCount(v)
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *CourseUpdate) SetIdempotencyKey(v string) *CourseUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableIdempotencyKey(v *string) *CourseUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *CourseUpdate) SetVersion(v int) *CourseUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableVersion(v *int) *CourseUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CourseUpdate) AddVersion(v int) *CourseUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourseUpdate) SetUpdatedAt(v time.Time) *CourseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *CourseUpdate) SetPublishedAt(v time.Time) *CourseUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *CourseUpdate) SetNillablePublishedAt(v *time.Time) *CourseUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *CourseUpdate) ClearPublishedAt() *CourseUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CourseUpdate) SetDeletedAt(v time.Time) *CourseUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CourseUpdate) SetNillableDeletedAt(v *time.Time) *CourseUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CourseUpdate) ClearDeletedAt() *CourseUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddSectionIDs adds the "sections" edge to the Section entity by IDs.
func (_u *CourseUpdate) AddSectionIDs(ids ...uuid.UUID) *CourseUpdate {
	_u.mutation.AddSectionIDs(ids...)
	return _u
}

// AddSections adds the "sections" edges to the Section entity.
func (_u *CourseUpdate) AddSections(v ...*Section) *CourseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSectionIDs(ids...)
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (_u *CourseUpdate) AddReviewIDs(ids ...uuid.UUID) *CourseUpdate {
	_u.mutation.AddReviewIDs(ids...)
	return _u
}

// AddReviews adds the "reviews" edges to the Review entity.
func (_u *CourseUpdate) AddReviews(v ...*Review) *CourseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewIDs(ids...)
}

// AddEnrollmentIDs adds the "enrollments" edge to the Enrollment entity by IDs.
func (_u *CourseUpdate) AddEnrollmentIDs(ids ...uuid.UUID) *CourseUpdate {
	_u.mutation.AddEnrollmentIDs(ids...)
	return _u
}

// AddEnrollments adds the "enrollments" edges to the Enrollment entity.
func (_u *CourseUpdate) AddEnrollments(v ...*Enrollment) *CourseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEnrollmentIDs(ids...)
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdate) Mutation() *CourseMutation {
	return _u.mutation
}

// ClearSections clears all "sections" edges to the Section entity.
func (_u *CourseUpdate) ClearSections() *CourseUpdate {
	_u.mutation.ClearSections()
	return _u
}

// RemoveSectionIDs removes the "sections" edge to Section entities by IDs.
func (_u *CourseUpdate) RemoveSectionIDs(ids ...uuid.UUID) *CourseUpdate {
	_u.mutation.RemoveSectionIDs(ids...)
	return _u
}

// RemoveSections removes "sections" edges to Section entities.
func (_u *CourseUpdate) RemoveSections(v ...*Section) *CourseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSectionIDs(ids...)
}

// ClearReviews clears all "reviews" edges to the Review entity.
func (_u *CourseUpdate) ClearReviews() *CourseUpdate {
	_u.mutation.ClearReviews()
	return _u
}

// RemoveReviewIDs removes the "reviews" edge to Review entities by IDs.
func (_u *CourseUpdate) RemoveReviewIDs(ids ...uuid.UUID) *CourseUpdate {
	_u.mutation.RemoveReviewIDs(ids...)
	return _u
}

// RemoveReviews removes "reviews" edges to Review entities.
func (_u *CourseUpdate) RemoveReviews(v ...*Review) *CourseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewIDs(ids...)
}

// ClearEnrollments clears all "enrollments" edges to the Enrollment entity.
func (_u *CourseUpdate) ClearEnrollments() *CourseUpdate {
	_u.mutation.ClearEnrollments()
	return _u
}

// RemoveEnrollmentIDs removes the "enrollments" edge to Enrollment entities by IDs.
func (_u *CourseUpdate) RemoveEnrollmentIDs(ids ...uuid.UUID) *CourseUpdate {
	_u.mutation.RemoveEnrollmentIDs(ids...)
	return _u
}

// RemoveEnrollments removes "enrollments" edges to Enrollment entities.
func (_u *CourseUpdate) RemoveEnrollments(v ...*Enrollment) *CourseUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEnrollmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := course.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CourseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InstructorID(); ok {
		_spec.SetField(course.FieldInstructorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(course.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtitle(); ok {
		_spec.SetField(course.FieldSubtitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(course.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(course.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(course.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(course.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThumbnailURL(); ok {
		_spec.SetField(course.FieldThumbnailURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(course.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(course.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DiscountPrice(); ok {
		_spec.SetField(course.FieldDiscountPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDiscountPrice(); ok {
		_spec.AddField(course.FieldDiscountPrice, field.TypeInt64, value)
	}
	if _u.mutation.DiscountPriceCleared() {
		_spec.ClearField(course.FieldDiscountPrice, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(course.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(course.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(course.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(course.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NumberOfRating(); ok {
		_spec.SetField(course.FieldNumberOfRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfRating(); ok {
		_spec.AddField(course.FieldNumberOfRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SectionCount(); ok {
		_spec.SetField(course.FieldSectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionCount(); ok {
		_spec.AddField(course.FieldSectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonCount(); ok {
		_spec.SetField(course.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonCount(); ok {
		_spec.AddField(course.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizCount(); ok {
		_spec.SetField(course.FieldQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizCount(); ok {
		_spec.AddField(course.FieldQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnrollmentCount(); ok {
		_spec.SetField(course.FieldEnrollmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEnrollmentCount(); ok {
		_spec.AddField(course.FieldEnrollmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(course.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(course.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(course.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(course.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(course.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(course.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(course.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.SectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.SectionsTable,
			Columns: []string{course.SectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(section.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSectionsIDs(); len(nodes) > 0 && !_u.mutation.SectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.SectionsTable,
			Columns: []string{course.SectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(section.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.SectionsTable,
			Columns: []string{course.SectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(section.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.ReviewsTable,
			Columns: []string{course.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewsIDs(); len(nodes) > 0 && !_u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.ReviewsTable,
			Columns: []string{course.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.ReviewsTable,
			Columns: []string{course.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EnrollmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.EnrollmentsTable,
			Columns: []string{course.EnrollmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEnrollmentsIDs(); len(nodes) > 0 && !_u.mutation.EnrollmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.EnrollmentsTable,
			Columns: []string{course.EnrollmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnrollmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.EnrollmentsTable,
			Columns: []string{course.EnrollmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseUpdateOne is the builder for updating a single Course entity.
type CourseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseMutation
}

// SetInstructorID sets the "instructor_id" field.
func (_u *CourseUpdateOne) SetInstructorID(v uuid.UUID) *CourseUpdateOne {
	_u.mutation.SetInstructorID(v)
	return _u
}

// SetNillableInstructorID sets the "instructor_id" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableInstructorID(v *uuid.UUID) *CourseUpdateOne {
	if v != nil {
		_u.SetInstructorID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseUpdateOne) SetTitle(v string) *CourseUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableTitle(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *CourseUpdateOne) SetSlug(v string) *CourseUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableSlug(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetSubtitle sets the "subtitle" field.
func (_u *CourseUpdateOne) SetSubtitle(v string) *CourseUpdateOne {
	_u.mutation.SetSubtitle(v)
	return _u
}

// SetNillableSubtitle sets the "subtitle" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableSubtitle(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetSubtitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CourseUpdateOne) SetDescription(v string) *CourseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableDescription(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CourseUpdateOne) SetCategory(v string) *CourseUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableCategory(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *CourseUpdateOne) SetLevel(v int) *CourseUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableLevel(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *CourseUpdateOne) AddLevel(v int) *CourseUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetLanguage sets the "language" field.
func (_u *CourseUpdateOne) SetLanguage(v string) *CourseUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableLanguage(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (_u *CourseUpdateOne) SetThumbnailURL(v string) *CourseUpdateOne {
	_u.mutation.SetThumbnailURL(v)
	return _u
}

// SetNillableThumbnailURL sets the "thumbnail_url" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableThumbnailURL(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetThumbnailURL(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *CourseUpdateOne) SetPrice(v int64) *CourseUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillablePrice(v *int64) *CourseUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *CourseUpdateOne) AddPrice(v int64) *CourseUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetDiscountPrice sets the "discount_price" field.
func (_u *CourseUpdateOne) SetDiscountPrice(v int64) *CourseUpdateOne {
	_u.mutation.ResetDiscountPrice()
	_u.mutation.SetDiscountPrice(v)
	return _u
}

// SetNillableDiscountPrice sets the "discount_price" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableDiscountPrice(v *int64) *CourseUpdateOne {
	if v != nil {
		_u.SetDiscountPrice(*v)
	}
	return _u
}

// AddDiscountPrice adds value to the "discount_price" field.
func (_u *CourseUpdateOne) AddDiscountPrice(v int64) *CourseUpdateOne {
	_u.mutation.AddDiscountPrice(v)
	return _u
}

// ClearDiscountPrice clears the value of the "discount_price" field.
func (_u *CourseUpdateOne) ClearDiscountPrice() *CourseUpdateOne {
	_u.mutation.ClearDiscountPrice()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CourseUpdateOne) SetStatus(v int) *CourseUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableStatus(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *CourseUpdateOne) AddStatus(v int) *CourseUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *CourseUpdateOne) SetRating(v float64) *CourseUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableRating(v *float64) *CourseUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *CourseUpdateOne) AddRating(v float64) *CourseUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetNumberOfRating sets the "number_of_rating" field.
func (_u *CourseUpdateOne) SetNumberOfRating(v int) *CourseUpdateOne {
	_u.mutation.ResetNumberOfRating()
	_u.mutation.SetNumberOfRating(v)
	return _u
}

// SetNillableNumberOfRating sets the "number_of_rating" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableNumberOfRating(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetNumberOfRating(*v)
	}
	return _u
}

// AddNumberOfRating adds value to the "number_of_rating" field.
func (_u *CourseUpdateOne) AddNumberOfRating(v int) *CourseUpdateOne {
	_u.mutation.AddNumberOfRating(v)
	return _u
}

// SetSectionCount sets the "section_count" field.
func (_u *CourseUpdateOne) SetSectionCount(v int) *CourseUpdateOne {
	_u.mutation.ResetSectionCount()
	_u.mutation.SetSectionCount(v)
	return _u
}

// SetNillableSectionCount sets the "section_count" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableSectionCount(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetSectionCount(*v)
	}
	return _u
}

// AddSectionCount adds value to the "section_count" field.
func (_u *CourseUpdateOne) AddSectionCount(v int) *CourseUpdateOne {
	_u.mutation.AddSectionCount(v)
	return _u
}

// SetLessonCount sets the "lesson_count" field.
func (_u *CourseUpdateOne) SetLessonCount(v int) *CourseUpdateOne {
	_u.mutation.ResetLessonCount()
	_u.mutation.SetLessonCount(v)
	return _u
}

// SetNillableLessonCount sets the "lesson_count" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableLessonCount(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetLessonCount(*v)
	}
	return _u
}

// AddLessonCount adds value to the "lesson_count" field.
func (_u *CourseUpdateOne) AddLessonCount(v int) *CourseUpdateOne {
	_u.mutation.AddLessonCount(v)
	return _u
}

// SetQuizCount sets the "quiz_count" field.
func (_u *CourseUpdateOne) SetQuizCount(v int) *CourseUpdateOne {
	_u.mutation.ResetQuizCount()
	_u.mutation.SetQuizCount(v)
	return _u
}

// SetNillableQuizCount sets the "quiz_count" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableQuizCount(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetQuizCount(*v)
	}
	return _u
}

// AddQuizCount adds value to the "quiz_count" field.
func (_u *CourseUpdateOne) AddQuizCount(v int) *CourseUpdateOne {
	_u.mutation.AddQuizCount(v)
	return _u
}

// SetEnrollmentCount sets the "enrollment_count" field.
func (_u *CourseUpdateOne) SetEnrollmentCount(v int) *CourseUpdateOne {
	_u.mutation.ResetEnrollmentCount()
	_u.mutation.SetEnrollmentCount(v)
	return _u
}

// SetNillableEnrollmentCount sets the "enrollment_count" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableEnrollmentCount(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetEnrollmentCount(*v)
	}
	return _u
}

// AddEnrollmentCount adds value to the "enrollment_count" field.
func (_u *CourseUpdateOne) AddEnrollmentCount(v int) *CourseUpdateOne {
	_u.mutation.AddEnrollmentCount(v)
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *CourseUpdateOne) SetIdempotencyKey(v string) *CourseUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableIdempotencyKey(v *string) *CourseUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *CourseUpdateOne) SetVersion(v int) *CourseUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableVersion(v *int) *CourseUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CourseUpdateOne) AddVersion(v int) *CourseUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CourseUpdateOne) SetUpdatedAt(v time.Time) *CourseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *CourseUpdateOne) SetPublishedAt(v time.Time) *CourseUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillablePublishedAt(v *time.Time) *CourseUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *CourseUpdateOne) ClearPublishedAt() *CourseUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *CourseUpdateOne) SetDeletedAt(v time.Time) *CourseUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *CourseUpdateOne) SetNillableDeletedAt(v *time.Time) *CourseUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *CourseUpdateOne) ClearDeletedAt() *CourseUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddSectionIDs adds the "sections" edge to the Section entity by IDs.
func (_u *CourseUpdateOne) AddSectionIDs(ids ...uuid.UUID) *CourseUpdateOne {
	_u.mutation.AddSectionIDs(ids...)
	return _u
}

// AddSections adds the "sections" edges to the Section entity.
func (_u *CourseUpdateOne) AddSections(v ...*Section) *CourseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSectionIDs(ids...)
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (_u *CourseUpdateOne) AddReviewIDs(ids ...uuid.UUID) *CourseUpdateOne {
	_u.mutation.AddReviewIDs(ids...)
	return _u
}

// AddReviews adds the "reviews" edges to the Review entity.
func (_u *CourseUpdateOne) AddReviews(v ...*Review) *CourseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewIDs(ids...)
}

// AddEnrollmentIDs adds the "enrollments" edge to the Enrollment entity by IDs.
func (_u *CourseUpdateOne) AddEnrollmentIDs(ids ...uuid.UUID) *CourseUpdateOne {
	_u.mutation.AddEnrollmentIDs(ids...)
	return _u
}

// AddEnrollments adds the "enrollments" edges to the Enrollment entity.
func (_u *CourseUpdateOne) AddEnrollments(v ...*Enrollment) *CourseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEnrollmentIDs(ids...)
}

// Mutation returns the CourseMutation object of the builder.
func (_u *CourseUpdateOne) Mutation() *CourseMutation {
	return _u.mutation
}

// ClearSections clears all "sections" edges to the Section entity.
func (_u *CourseUpdateOne) ClearSections() *CourseUpdateOne {
	_u.mutation.ClearSections()
	return _u
}

// RemoveSectionIDs removes the "sections" edge to Section entities by IDs.
func (_u *CourseUpdateOne) RemoveSectionIDs(ids ...uuid.UUID) *CourseUpdateOne {
	_u.mutation.RemoveSectionIDs(ids...)
	return _u
}

// RemoveSections removes "sections" edges to Section entities.
func (_u *CourseUpdateOne) RemoveSections(v ...*Section) *CourseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSectionIDs(ids...)
}

// ClearReviews clears all "reviews" edges to the Review entity.
func (_u *CourseUpdateOne) ClearReviews() *CourseUpdateOne {
	_u.mutation.ClearReviews()
	return _u
}

// RemoveReviewIDs removes the "reviews" edge to Review entities by IDs.
func (_u *CourseUpdateOne) RemoveReviewIDs(ids ...uuid.UUID) *CourseUpdateOne {
	_u.mutation.RemoveReviewIDs(ids...)
	return _u
}

// RemoveReviews removes "reviews" edges to Review entities.
func (_u *CourseUpdateOne) RemoveReviews(v ...*Review) *CourseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewIDs(ids...)
}

// ClearEnrollments clears all "enrollments" edges to the Enrollment entity.
func (_u *CourseUpdateOne) ClearEnrollments() *CourseUpdateOne {
	_u.mutation.ClearEnrollments()
	return _u
}

// RemoveEnrollmentIDs removes the "enrollments" edge to Enrollment entities by IDs.
func (_u *CourseUpdateOne) RemoveEnrollmentIDs(ids ...uuid.UUID) *CourseUpdateOne {
	_u.mutation.RemoveEnrollmentIDs(ids...)
	return _u
}

// RemoveEnrollments removes "enrollments" edges to Enrollment entities.
func (_u *CourseUpdateOne) RemoveEnrollments(v ...*Enrollment) *CourseUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEnrollmentIDs(ids...)
}

// Where appends a list predicates to the CourseUpdate builder.
func (_u *CourseUpdateOne) Where(ps ...predicate.Course) *CourseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseUpdateOne) Select(field string, fields ...string) *CourseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Course entity.
func (_u *CourseUpdateOne) Save(ctx context.Context) (*Course, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseUpdateOne) SaveX(ctx context.Context) *Course {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CourseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := course.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CourseUpdateOne) sqlSave(ctx context.Context) (_node *Course, err error) {
	_spec := sqlgraph.NewUpdateSpec(course.Table, course.Columns, sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Course.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, course.FieldID)
		for _, f := range fields {
			if !course.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != course.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InstructorID(); ok {
		_spec.SetField(course.FieldInstructorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(course.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtitle(); ok {
		_spec.SetField(course.FieldSubtitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(course.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(course.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(course.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(course.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThumbnailURL(); ok {
		_spec.SetField(course.FieldThumbnailURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(course.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(course.FieldPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DiscountPrice(); ok {
		_spec.SetField(course.FieldDiscountPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDiscountPrice(); ok {
		_spec.AddField(course.FieldDiscountPrice, field.TypeInt64, value)
	}
	if _u.mutation.DiscountPriceCleared() {
		_spec.ClearField(course.FieldDiscountPrice, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(course.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(course.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(course.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(course.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NumberOfRating(); ok {
		_spec.SetField(course.FieldNumberOfRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumberOfRating(); ok {
		_spec.AddField(course.FieldNumberOfRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SectionCount(); ok {
		_spec.SetField(course.FieldSectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSectionCount(); ok {
		_spec.AddField(course.FieldSectionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonCount(); ok {
		_spec.SetField(course.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonCount(); ok {
		_spec.AddField(course.FieldLessonCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizCount(); ok {
		_spec.SetField(course.FieldQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizCount(); ok {
		_spec.AddField(course.FieldQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EnrollmentCount(); ok {
		_spec.SetField(course.FieldEnrollmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEnrollmentCount(); ok {
		_spec.AddField(course.FieldEnrollmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(course.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(course.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(course.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(course.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(course.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(course.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(course.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.SectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.SectionsTable,
			Columns: []string{course.SectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(section.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSectionsIDs(); len(nodes) > 0 && !_u.mutation.SectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.SectionsTable,
			Columns: []string{course.SectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(section.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.SectionsTable,
			Columns: []string{course.SectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(section.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.ReviewsTable,
			Columns: []string{course.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewsIDs(); len(nodes) > 0 && !_u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.ReviewsTable,
			Columns: []string{course.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.ReviewsTable,
			Columns: []string{course.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EnrollmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.EnrollmentsTable,
			Columns: []string{course.EnrollmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEnrollmentsIDs(); len(nodes) > 0 && !_u.mutation.EnrollmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.EnrollmentsTable,
			Columns: []string{course.EnrollmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnrollmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   course.EnrollmentsTable,
			Columns: []string{course.EnrollmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Course{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{course.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
