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
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/lesson"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/predicate"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/section"
)

// LessonUpdate is the builder for updating Lesson entities.
type LessonUpdate struct {
	config
	hooks    []Hook
	mutation *LessonMutation
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdate) Where(ps ...predicate.Lesson) *LessonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSectionID sets the "section_id" field.
func (_u *LessonUpdate) SetSectionID(v uuid.UUID) *LessonUpdate {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableSectionID(v *uuid.UUID) *LessonUpdate {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *LessonUpdate) SetCourseID(v uuid.UUID) *LessonUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableCourseID(v *uuid.UUID) *LessonUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdate) SetTitle(v string) *LessonUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableTitle(v *string) *LessonUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LessonUpdate) SetDescription(v string) *LessonUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableDescription(v *string) *LessonUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *LessonUpdate) SetContentType(v int) *LessonUpdate {
	_u.mutation.ResetContentType()
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableContentType(v *int) *LessonUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// AddContentType adds value to the "content_type" field.
func (_u *LessonUpdate) AddContentType(v int) *LessonUpdate {
	_u.mutation.AddContentType(v)
	return _u
}

// SetContentURL sets the "content_url" field.
func (_u *LessonUpdate) SetContentURL(v string) *LessonUpdate {
	_u.mutation.SetContentURL(v)
	return _u
}

// SetNillableContentURL sets the "content_url" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableContentURL(v *string) *LessonUpdate {
	if v != nil {
		_u.SetContentURL(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *LessonUpdate) SetDurationSeconds(v int) *LessonUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableDurationSeconds(v *int) *LessonUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *LessonUpdate) AddDurationSeconds(v int) *LessonUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetOrder sets the "order" field.
func (_u *LessonUpdate) SetOrder(v int) *LessonUpdate {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableOrder(v *int) *LessonUpdate {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *LessonUpdate) AddOrder(v int) *LessonUpdate {
	_u.mutation.AddOrder(v)
	return _u
}

// SetIsPreviewable sets the "is_previewable" field.
func (_u *LessonUpdate) SetIsPreviewable(v bool) *LessonUpdate {
	_u.mutation.SetIsPreviewable(v)
	return _u
}

// SetNillableIsPreviewable sets the "is_previewable" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableIsPreviewable(v *bool) *LessonUpdate {
	if v != nil {
		_u.SetIsPreviewable(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *LessonUpdate) SetIdempotencyKey(v string) *LessonUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *LessonUpdate) SetNillableIdempotencyKey(v *string) *LessonUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonUpdate) SetUpdatedAt(v time.Time) *LessonUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSection sets the "section" edge to the Section entity.
func (_u *LessonUpdate) SetSection(v *Section) *LessonUpdate {
	return _u.SetSectionID(v.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdate) Mutation() *LessonMutation {
	return _u.mutation
}

// ClearSection clears the "section" edge to the Section entity.
func (_u *LessonUpdate) ClearSection() *LessonUpdate {
	_u.mutation.ClearSection()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lesson.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdate) check() error {
	if _u.mutation.SectionCleared() && len(_u.mutation.SectionIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Lesson.section"`)
	}
	return nil
}

func (_u *LessonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(lesson.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(lesson.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(lesson.FieldContentType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentType(); ok {
		_spec.AddField(lesson.FieldContentType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentURL(); ok {
		_spec.SetField(lesson.FieldContentURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(lesson.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(lesson.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(lesson.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(lesson.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsPreviewable(); ok {
		_spec.SetField(lesson.FieldIsPreviewable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(lesson.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SectionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.SectionTable,
			Columns: []string{lesson.SectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(section.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.SectionTable,
			Columns: []string{lesson.SectionColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonUpdateOne is the builder for updating a single Lesson entity.
type LessonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonMutation
}

// SetSectionID sets the "section_id" field.
func (_u *LessonUpdateOne) SetSectionID(v uuid.UUID) *LessonUpdateOne {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableSectionID(v *uuid.UUID) *LessonUpdateOne {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *LessonUpdateOne) SetCourseID(v uuid.UUID) *LessonUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableCourseID(v *uuid.UUID) *LessonUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonUpdateOne) SetTitle(v string) *LessonUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableTitle(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LessonUpdateOne) SetDescription(v string) *LessonUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableDescription(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *LessonUpdateOne) SetContentType(v int) *LessonUpdateOne {
	_u.mutation.ResetContentType()
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableContentType(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// AddContentType adds value to the "content_type" field.
func (_u *LessonUpdateOne) AddContentType(v int) *LessonUpdateOne {
	_u.mutation.AddContentType(v)
	return _u
}

// SetContentURL sets the "content_url" field.
func (_u *LessonUpdateOne) SetContentURL(v string) *LessonUpdateOne {
	_u.mutation.SetContentURL(v)
	return _u
}

// SetNillableContentURL sets the "content_url" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableContentURL(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetContentURL(*v)
	}
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *LessonUpdateOne) SetDurationSeconds(v int) *LessonUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableDurationSeconds(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *LessonUpdateOne) AddDurationSeconds(v int) *LessonUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// SetOrder sets the "order" field.
func (_u *LessonUpdateOne) SetOrder(v int) *LessonUpdateOne {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableOrder(v *int) *LessonUpdateOne {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *LessonUpdateOne) AddOrder(v int) *LessonUpdateOne {
	_u.mutation.AddOrder(v)
	return _u
}

// SetIsPreviewable sets the "is_previewable" field.
func (_u *LessonUpdateOne) SetIsPreviewable(v bool) *LessonUpdateOne {
	_u.mutation.SetIsPreviewable(v)
	return _u
}

// SetNillableIsPreviewable sets the "is_previewable" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableIsPreviewable(v *bool) *LessonUpdateOne {
	if v != nil {
		_u.SetIsPreviewable(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *LessonUpdateOne) SetIdempotencyKey(v string) *LessonUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *LessonUpdateOne) SetNillableIdempotencyKey(v *string) *LessonUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonUpdateOne) SetUpdatedAt(v time.Time) *LessonUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSection sets the "section" edge to the Section entity.
func (_u *LessonUpdateOne) SetSection(v *Section) *LessonUpdateOne {
	return _u.SetSectionID(v.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (_u *LessonUpdateOne) Mutation() *LessonMutation {
	return _u.mutation
}

// ClearSection clears the "section" edge to the Section entity.
func (_u *LessonUpdateOne) ClearSection() *LessonUpdateOne {
	_u.mutation.ClearSection()
	return _u
}

// Where appends a list predicates to the LessonUpdate builder.
func (_u *LessonUpdateOne) Where(ps ...predicate.Lesson) *LessonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonUpdateOne) Select(field string, fields ...string) *LessonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lesson entity.
func (_u *LessonUpdateOne) Save(ctx context.Context) (*Lesson, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonUpdateOne) SaveX(ctx context.Context) *Lesson {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lesson.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonUpdateOne) check() error {
	if _u.mutation.SectionCleared() && len(_u.mutation.SectionIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Lesson.section"`)
	}
	return nil
}

func (_u *LessonUpdateOne) sqlSave(ctx context.Context) (_node *Lesson, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lesson.Table, lesson.Columns, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Lesson.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lesson.FieldID)
		for _, f := range fields {
			if !lesson.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != lesson.FieldID {
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
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(lesson.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(lesson.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(lesson.FieldContentType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentType(); ok {
		_spec.AddField(lesson.FieldContentType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentURL(); ok {
		_spec.SetField(lesson.FieldContentURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(lesson.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(lesson.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(lesson.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(lesson.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsPreviewable(); ok {
		_spec.SetField(lesson.FieldIsPreviewable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(lesson.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SectionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.SectionTable,
			Columns: []string{lesson.SectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(section.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lesson.SectionTable,
			Columns: []string{lesson.SectionColumn},
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
	_node = &Lesson{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lesson.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
