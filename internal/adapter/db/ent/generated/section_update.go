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
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/lesson"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/predicate"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/quiz"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/section"
)

// SectionUpdate is the builder for updating Section entities.
type SectionUpdate struct {
	config
	hooks    []Hook
	mutation *SectionMutation
}

// Where appends a list predicates to the SectionUpdate builder.
func (_u *SectionUpdate) Where(ps ...predicate.Section) *SectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *SectionUpdate) SetCourseID(v uuid.UUID) *SectionUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *SectionUpdate) SetNillableCourseID(v *uuid.UUID) *SectionUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SectionUpdate) SetTitle(v string) *SectionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SectionUpdate) SetNillableTitle(v *string) *SectionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SectionUpdate) SetDescription(v string) *SectionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SectionUpdate) SetNillableDescription(v *string) *SectionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetOrder sets the "order" field.
func (_u *SectionUpdate) SetOrder(v int) *SectionUpdate {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *SectionUpdate) SetNillableOrder(v *int) *SectionUpdate {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *SectionUpdate) AddOrder(v int) *SectionUpdate {
	_u.mutation.AddOrder(v)
	return _u
}

// SetIsPublished sets the "is_published" field.
func (_u *SectionUpdate) SetIsPublished(v bool) *SectionUpdate {
	_u.mutation.SetIsPublished(v)
	return _u
}

// SetNillableIsPublished sets the "is_published" field if the given value is not nil.
func (_u *SectionUpdate) SetNillableIsPublished(v *bool) *SectionUpdate {
	if v != nil {
		_u.SetIsPublished(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *SectionUpdate) SetIdempotencyKey(v string) *SectionUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *SectionUpdate) SetNillableIdempotencyKey(v *string) *SectionUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SectionUpdate) SetUpdatedAt(v time.Time) *SectionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *SectionUpdate) SetCourse(v *Course) *SectionUpdate {
	return _u.SetCourseID(v.ID)
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_u *SectionUpdate) AddLessonIDs(ids ...uuid.UUID) *SectionUpdate {
	_u.mutation.AddLessonIDs(ids...)
	return _u
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_u *SectionUpdate) AddLessons(v ...*Lesson) *SectionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLessonIDs(ids...)
}

// SetQuizID sets the "quiz" edge to the Quiz entity by ID.
func (_u *SectionUpdate) SetQuizID(id uuid.UUID) *SectionUpdate {
	_u.mutation.SetQuizID(id)
	return _u
}

// SetNillableQuizID sets the "quiz" edge to the Quiz entity by ID if the given value is not nil.
func (_u *SectionUpdate) SetNillableQuizID(id *uuid.UUID) *SectionUpdate {
	if id != nil {
		_u = _u.SetQuizID(*id)
	}
	return _u
}

// SetQuiz sets the "quiz" edge to the Quiz entity.
func (_u *SectionUpdate) SetQuiz(v *Quiz) *SectionUpdate {
	return _u.SetQuizID(v.ID)
}

// Mutation returns the SectionMutation object of the builder.
func (_u *SectionUpdate) Mutation() *SectionMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *SectionUpdate) ClearCourse() *SectionUpdate {
	_u.mutation.ClearCourse()
	return _u
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (_u *SectionUpdate) ClearLessons() *SectionUpdate {
	_u.mutation.ClearLessons()
	return _u
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (_u *SectionUpdate) RemoveLessonIDs(ids ...uuid.UUID) *SectionUpdate {
	_u.mutation.RemoveLessonIDs(ids...)
	return _u
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (_u *SectionUpdate) RemoveLessons(v ...*Lesson) *SectionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLessonIDs(ids...)
}

// ClearQuiz clears the "quiz" edge to the Quiz entity.
func (_u *SectionUpdate) ClearQuiz() *SectionUpdate {
	_u.mutation.ClearQuiz()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SectionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SectionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := section.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SectionUpdate) check() error {
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Section.course"`)
	}
	return nil
}

func (_u *SectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(section.Table, section.Columns, sqlgraph.NewFieldSpec(section.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(section.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(section.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(section.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(section.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsPublished(); ok {
		_spec.SetField(section.FieldIsPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(section.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(section.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CourseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   section.CourseTable,
			Columns: []string{section.CourseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   section.CourseTable,
			Columns: []string{section.CourseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   section.LessonsTable,
			Columns: []string{section.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !_u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   section.LessonsTable,
			Columns: []string{section.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   section.LessonsTable,
			Columns: []string{section.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuizCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   section.QuizTable,
			Columns: []string{section.QuizColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   section.QuizTable,
			Columns: []string{section.QuizColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{section.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SectionUpdateOne is the builder for updating a single Section entity.
type SectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SectionMutation
}

// SetCourseID sets the "course_id" field.
func (_u *SectionUpdateOne) SetCourseID(v uuid.UUID) *SectionUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *SectionUpdateOne) SetNillableCourseID(v *uuid.UUID) *SectionUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SectionUpdateOne) SetTitle(v string) *SectionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SectionUpdateOne) SetNillableTitle(v *string) *SectionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SectionUpdateOne) SetDescription(v string) *SectionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SectionUpdateOne) SetNillableDescription(v *string) *SectionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetOrder sets the "order" field.
func (_u *SectionUpdateOne) SetOrder(v int) *SectionUpdateOne {
	_u.mutation.ResetOrder()
	_u.mutation.SetOrder(v)
	return _u
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_u *SectionUpdateOne) SetNillableOrder(v *int) *SectionUpdateOne {
	if v != nil {
		_u.SetOrder(*v)
	}
	return _u
}

// AddOrder adds value to the "order" field.
func (_u *SectionUpdateOne) AddOrder(v int) *SectionUpdateOne {
	_u.mutation.AddOrder(v)
	return _u
}

// SetIsPublished sets the "is_published" field.
func (_u *SectionUpdateOne) SetIsPublished(v bool) *SectionUpdateOne {
	_u.mutation.SetIsPublished(v)
	return _u
}

// SetNillableIsPublished sets the "is_published" field if the given value is not nil.
func (_u *SectionUpdateOne) SetNillableIsPublished(v *bool) *SectionUpdateOne {
	if v != nil {
		_u.SetIsPublished(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *SectionUpdateOne) SetIdempotencyKey(v string) *SectionUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *SectionUpdateOne) SetNillableIdempotencyKey(v *string) *SectionUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SectionUpdateOne) SetUpdatedAt(v time.Time) *SectionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *SectionUpdateOne) SetCourse(v *Course) *SectionUpdateOne {
	return _u.SetCourseID(v.ID)
}

// AddLessonIDs adds the "lessons" edge to the Lesson entity by IDs.
func (_u *SectionUpdateOne) AddLessonIDs(ids ...uuid.UUID) *SectionUpdateOne {
	_u.mutation.AddLessonIDs(ids...)
	return _u
}

// AddLessons adds the "lessons" edges to the Lesson entity.
func (_u *SectionUpdateOne) AddLessons(v ...*Lesson) *SectionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLessonIDs(ids...)
}

// SetQuizID sets the "quiz" edge to the Quiz entity by ID.
func (_u *SectionUpdateOne) SetQuizID(id uuid.UUID) *SectionUpdateOne {
	_u.mutation.SetQuizID(id)
	return _u
}

// SetNillableQuizID sets the "quiz" edge to the Quiz entity by ID if the given value is not nil.
func (_u *SectionUpdateOne) SetNillableQuizID(id *uuid.UUID) *SectionUpdateOne {
	if id != nil {
		_u = _u.SetQuizID(*id)
	}
	return _u
}

// SetQuiz sets the "quiz" edge to the Quiz entity.
func (_u *SectionUpdateOne) SetQuiz(v *Quiz) *SectionUpdateOne {
	return _u.SetQuizID(v.ID)
}

// Mutation returns the SectionMutation object of the builder.
func (_u *SectionUpdateOne) Mutation() *SectionMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *SectionUpdateOne) ClearCourse() *SectionUpdateOne {
	_u.mutation.ClearCourse()
	return _u
}

// ClearLessons clears all "lessons" edges to the Lesson entity.
func (_u *SectionUpdateOne) ClearLessons() *SectionUpdateOne {
	_u.mutation.ClearLessons()
	return _u
}

// RemoveLessonIDs removes the "lessons" edge to Lesson entities by IDs.
func (_u *SectionUpdateOne) RemoveLessonIDs(ids ...uuid.UUID) *SectionUpdateOne {
	_u.mutation.RemoveLessonIDs(ids...)
	return _u
}

// RemoveLessons removes "lessons" edges to Lesson entities.
func (_u *SectionUpdateOne) RemoveLessons(v ...*Lesson) *SectionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLessonIDs(ids...)
}

// ClearQuiz clears the "quiz" edge to the Quiz entity.
func (_u *SectionUpdateOne) ClearQuiz() *SectionUpdateOne {
	_u.mutation.ClearQuiz()
	return _u
}

// Where appends a list predicates to the SectionUpdate builder.
func (_u *SectionUpdateOne) Where(ps ...predicate.Section) *SectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SectionUpdateOne) Select(field string, fields ...string) *SectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Section entity.
func (_u *SectionUpdateOne) Save(ctx context.Context) (*Section, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SectionUpdateOne) SaveX(ctx context.Context) *Section {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SectionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := section.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SectionUpdateOne) check() error {
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Section.course"`)
	}
	return nil
}

func (_u *SectionUpdateOne) sqlSave(ctx context.Context) (_node *Section, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(section.Table, section.Columns, sqlgraph.NewFieldSpec(section.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Section.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, section.FieldID)
		for _, f := range fields {
			if !section.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != section.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(section.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(section.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Order(); ok {
		_spec.SetField(section.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrder(); ok {
		_spec.AddField(section.FieldOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsPublished(); ok {
		_spec.SetField(section.FieldIsPublished, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(section.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(section.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CourseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   section.CourseTable,
			Columns: []string{section.CourseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CourseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   section.CourseTable,
			Columns: []string{section.CourseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(course.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   section.LessonsTable,
			Columns: []string{section.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLessonsIDs(); len(nodes) > 0 && !_u.mutation.LessonsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   section.LessonsTable,
			Columns: []string{section.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   section.LessonsTable,
			Columns: []string{section.LessonsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuizCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   section.QuizTable,
			Columns: []string{section.QuizColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuizIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   section.QuizTable,
			Columns: []string{section.QuizColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Section{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{section.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
