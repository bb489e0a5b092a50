// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/course"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/enrollment"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/review"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/section"
)

// CourseCreate is the builder for creating a Course entity.
type CourseCreate struct {
	config
	mutation *CourseMutation
	hooks    []Hook
}

// SetInstructorID sets the "instructor_id" field.
func (_c *CourseCreate) SetInstructorID(v uuid.UUID) *CourseCreate {
	_c.mutation.SetInstructorID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CourseCreate) SetTitle(v string) *CourseCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *CourseCreate) SetSlug(v string) *CourseCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetSubtitle sets the "subtitle" field.
func (_c *CourseCreate) SetSubtitle(v string) *CourseCreate {
	_c.mutation.SetSubtitle(v)
	return _c
}

// SetNillableSubtitle sets the "subtitle" field if the given value is not nil.
func (_c *CourseCreate) SetNillableSubtitle(v *string) *CourseCreate {
	if v != nil {
		_c.SetSubtitle(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *CourseCreate) SetDescription(v string) *CourseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CourseCreate) SetNillableDescription(v *string) *CourseCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *CourseCreate) SetCategory(v string) *CourseCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *CourseCreate) SetNillableCategory(v *string) *CourseCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *CourseCreate) SetLevel(v int) *CourseCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *CourseCreate) SetNillableLevel(v *int) *CourseCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *CourseCreate) SetLanguage(v string) *CourseCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *CourseCreate) SetNillableLanguage(v *string) *CourseCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetThumbnailURL sets the "thumbnail_url" field.
func (_c *CourseCreate) SetThumbnailURL(v string) *CourseCreate {
	_c.mutation.SetThumbnailURL(v)
	return _c
}

// SetNillableThumbnailURL sets the "thumbnail_url" field if the given value is not nil.
func (_c *CourseCreate) SetNillableThumbnailURL(v *string) *CourseCreate {
	if v != nil {
		_c.SetThumbnailURL(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *CourseCreate) SetPrice(v int64) *CourseCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *CourseCreate) SetNillablePrice(v *int64) *CourseCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetDiscountPrice sets the "discount_price" field.
func (_c *CourseCreate) SetDiscountPrice(v int64) *CourseCreate {
	_c.mutation.SetDiscountPrice(v)
	return _c
}

// SetNillableDiscountPrice sets the "discount_price" field if the given value is not nil.
func (_c *CourseCreate) SetNillableDiscountPrice(v *int64) *CourseCreate {
	if v != nil {
		_c.SetDiscountPrice(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CourseCreate) SetStatus(v int) *CourseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CourseCreate) SetNillableStatus(v *int) *CourseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *CourseCreate) SetRating(v float64) *CourseCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *CourseCreate) SetNillableRating(v *float64) *CourseCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetNumberOfRating sets the "number_of_rating" field.
func (_c *CourseCreate) SetNumberOfRating(v int) *CourseCreate {
	_c.mutation.SetNumberOfRating(v)
	return _c
}

// SetNillableNumberOfRating sets the "number_of_rating" field if the given value is not nil.
func (_c *CourseCreate) SetNillableNumberOfRating(v *int) *CourseCreate {
	if v != nil {
		_c.SetNumberOfRating(*v)
	}
	return _c
}

// SetSectionCount sets the "section_count" field.
func (_c *CourseCreate) SetSectionCount(v int) *CourseCreate {
	_c.mutation.SetSectionCount(v)
	return _c
}

// SetNillableSectionCount sets the "section_count" field if the given value is not nil.
func (_c *CourseCreate) SetNillableSectionCount(v *int) *CourseCreate {
	if v != nil {
		_c.SetSectionCount(*v)
	}
	return _c
}

// SetLessonCount sets the "lesson_count" field.
func (_c *CourseCreate) SetLessonCount(v int) *CourseCreate {
	_c.mutation.SetLessonCount(v)
	return _c
}

// SetNillableLessonCount sets the "lesson_count" field if the given value is not nil.
func (_c *CourseCreate) SetNillableLessonCount(v *int) *CourseCreate {
	if v != nil {
		_c.SetLessonCount(*v)
	}
	return _c
}

// SetQuizCount sets the "quiz_count" field.
func (_c *CourseCreate) SetQuizCount(v int) *CourseCreate {
	_c.mutation.SetQuizCount(v)
	return _c
}

// SetNillableQuizCount sets the "quiz_count" field if the given value is not nil.
func (_c *CourseCreate) SetNillableQuizCount(v *int) *CourseCreate {
	if v != nil {
		_c.SetQuizCount(*v)
	}
	return _c
}

// SetEnrollmentCount sets the "enrollment_count" field.
func (_c *CourseCreate) SetEnrollmentCount(v int) *CourseCreate {
	_c.mutation.SetEnrollmentCount(v)
	return _c
}

// SetNillableEnrollmentCount sets the "enrollment_count" field if the given value is not nil.
func (_c *CourseCreate) SetNillableEnrollmentCount(v *int) *CourseCreate {
	if v != nil {
		_c.SetEnrollmentCount(*v)
	}
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *CourseCreate) SetIdempotencyKey(v string) *CourseCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *CourseCreate) SetVersion(v int) *CourseCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *CourseCreate) SetNillableVersion(v *int) *CourseCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CourseCreate) SetCreatedAt(v time.Time) *CourseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CourseCreate) SetNillableCreatedAt(v *time.Time) *CourseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CourseCreate) SetUpdatedAt(v time.Time) *CourseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CourseCreate) SetNillableUpdatedAt(v *time.Time) *CourseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *CourseCreate) SetPublishedAt(v time.Time) *CourseCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *CourseCreate) SetNillablePublishedAt(v *time.Time) *CourseCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *CourseCreate) SetDeletedAt(v time.Time) *CourseCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *CourseCreate) SetNillableDeletedAt(v *time.Time) *CourseCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CourseCreate) SetID(v uuid.UUID) *CourseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CourseCreate) SetNillableID(v *uuid.UUID) *CourseCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddSectionIDs adds the "sections" edge to the Section entity by IDs.
func (_c *CourseCreate) AddSectionIDs(ids ...uuid.UUID) *CourseCreate {
	_c.mutation.AddSectionIDs(ids...)
	return _c
}

// AddSections adds the "sections" edges to the Section entity.
func (_c *CourseCreate) AddSections(v ...*Section) *CourseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSectionIDs(ids...)
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (_c *CourseCreate) AddReviewIDs(ids ...uuid.UUID) *CourseCreate {
	_c.mutation.AddReviewIDs(ids...)
	return _c
}

// AddReviews adds the "reviews" edges to the Review entity.
func (_c *CourseCreate) AddReviews(v ...*Review) *CourseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReviewIDs(ids...)
}

// AddEnrollmentIDs adds the "enrollments" edge to the Enrollment entity by IDs.
func (_c *CourseCreate) AddEnrollmentIDs(ids ...uuid.UUID) *CourseCreate {
	_c.mutation.AddEnrollmentIDs(ids...)
	return _c
}

// AddEnrollments adds the "enrollments" edges to the Enrollment entity.
func (_c *CourseCreate) AddEnrollments(v ...*Enrollment) *CourseCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEnrollmentIDs(ids...)
}

// Mutation returns the CourseMutation object of the builder.
func (_c *CourseCreate) Mutation() *CourseMutation {
	return _c.mutation
}

// Save creates the Course in the database.
func (_c *CourseCreate) Save(ctx context.Context) (*Course, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseCreate) SaveX(ctx context.Context) *Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseCreate) defaults() {
	if _, ok := _c.mutation.Subtitle(); !ok {
		v := course.DefaultSubtitle
		_c.mutation.SetSubtitle(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := course.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := course.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := course.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := course.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.ThumbnailURL(); !ok {
		v := course.DefaultThumbnailURL
		_c.mutation.SetThumbnailURL(v)
	}
	if _, ok := _c.mutation.Price(); !ok {
		v := course.DefaultPrice
		_c.mutation.SetPrice(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := course.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Rating(); !ok {
		v := course.DefaultRating
		_c.mutation.SetRating(v)
	}
	if _, ok := _c.mutation.NumberOfRating(); !ok {
		v := course.DefaultNumberOfRating
		_c.mutation.SetNumberOfRating(v)
	}
	if _, ok := _c.mutation.SectionCount(); !ok {
		v := course.DefaultSectionCount
		_c.mutation.SetSectionCount(v)
	}
	if _, ok := _c.mutation.LessonCount(); !ok {
		v := course.DefaultLessonCount
		_c.mutation.SetLessonCount(v)
	}
	if _, ok := _c.mutation.QuizCount(); !ok {
		v := course.DefaultQuizCount
		_c.mutation.SetQuizCount(v)
	}
	if _, ok := _c.mutation.EnrollmentCount(); !ok {
		v := course.DefaultEnrollmentCount
		_c.mutation.SetEnrollmentCount(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := course.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := course.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := course.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := course.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseCreate) check() error {
	if _, ok := _c.mutation.InstructorID(); !ok {
		return &ValidationError{Name: "instructor_id", err: errors.New(`generated: missing required field "Course.instructor_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`generated: missing required field "Course.title"`)}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`generated: missing required field "Course.slug"`)}
	}
	if _, ok := _c.mutation.Subtitle(); !ok {
		return &ValidationError{Name: "subtitle", err: errors.New(`generated: missing required field "Course.subtitle"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`generated: missing required field "Course.description"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`generated: missing required field "Course.category"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`generated: missing required field "Course.level"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`generated: missing required field "Course.language"`)}
	}
	if _, ok := _c.mutation.ThumbnailURL(); !ok {
		return &ValidationError{Name: "thumbnail_url", err: errors.New(`generated: missing required field "Course.thumbnail_url"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`generated: missing required field "Course.price"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`generated: missing required field "Course.status"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`generated: missing required field "Course.rating"`)}
	}
	if _, ok := _c.mutation.NumberOfRating(); !ok {
		return &ValidationError{Name: "number_of_rating", err: errors.New(`generated: missing required field "Course.number_of_rating"`)}
	}
	if _, ok := _c.mutation.SectionCount(); !ok {
		return &ValidationError{Name: "section_count", err: errors.New(`generated: missing required field "Course.section_count"`)}
	}
	if _, ok := _c.mutation.LessonCount(); !ok {
		return &ValidationError{Name: "lesson_count", err: errors.New(`generated: missing required field "Course.lesson_count"`)}
	}
	if _, ok := _c.mutation.QuizCount(); !ok {
		return &ValidationError{Name: "quiz_count", err: errors.New(`generated: missing required field "Course.quiz_count"`)}
	}
	if _, ok := _c.mutation.EnrollmentCount(); !ok {
		return &ValidationError{Name: "enrollment_count", err: errors.New(`generated: missing required field "Course.enrollment_count"`)}
	}
	if _, ok := _c.mutation.IdempotencyKey(); !ok {
		return &ValidationError{Name: "idempotency_key", err: errors.New(`generated: missing required field "Course.idempotency_key"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`generated: missing required field "Course.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Course.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "Course.updated_at"`)}
	}
	return nil
}

func (_c *CourseCreate) sqlSave(ctx context.Context) (*Course, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CourseCreate) createSpec() (*Course, *sqlgraph.CreateSpec) {
	var (
		_node = &Course{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(course.Table, sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.InstructorID(); ok {
		_spec.SetField(course.FieldInstructorID, field.TypeUUID, value)
		_node.InstructorID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(course.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(course.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Subtitle(); ok {
		_spec.SetField(course.FieldSubtitle, field.TypeString, value)
		_node.Subtitle = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(course.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(course.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(course.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(course.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.ThumbnailURL(); ok {
		_spec.SetField(course.FieldThumbnailURL, field.TypeString, value)
		_node.ThumbnailURL = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(course.FieldPrice, field.TypeInt64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.DiscountPrice(); ok {
		_spec.SetField(course.FieldDiscountPrice, field.TypeInt64, value)
		_node.DiscountPrice = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(course.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(course.FieldRating, field.TypeFloat64, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.NumberOfRating(); ok {
		_spec.SetField(course.FieldNumberOfRating, field.TypeInt, value)
		_node.NumberOfRating = value
	}
	if value, ok := _c.mutation.SectionCount(); ok {
		_spec.SetField(course.FieldSectionCount, field.TypeInt, value)
		_node.SectionCount = value
	}
	if value, ok := _c.mutation.LessonCount(); ok {
		_spec.SetField(course.FieldLessonCount, field.TypeInt, value)
		_node.LessonCount = value
	}
	if value, ok := _c.mutation.QuizCount(); ok {
		_spec.SetField(course.FieldQuizCount, field.TypeInt, value)
		_node.QuizCount = value
	}
	if value, ok := _c.mutation.EnrollmentCount(); ok {
		_spec.SetField(course.FieldEnrollmentCount, field.TypeInt, value)
		_node.EnrollmentCount = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(course.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(course.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(course.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(course.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(course.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(course.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.SectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EnrollmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CourseCreateBulk is the builder for creating many Course entities in bulk.
type CourseCreateBulk struct {
	config
	err      error
	builders []*CourseCreate
}

// Save creates the Course entities in the database.
func (_c *CourseCreateBulk) Save(ctx context.Context) ([]*Course, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Course, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CourseCreateBulk) SaveX(ctx context.Context) []*Course {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
