// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/predicate"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/quiz"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/section"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

// QuizUpdate is the builder for updating Quiz entities.
type QuizUpdate struct {
	config
	hooks    []Hook
	mutation *QuizMutation
}

// Where appends a list predicates to the QuizUpdate builder.
func (_u *QuizUpdate) Where(ps ...predicate.Quiz) *QuizUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSectionID sets the "section_id" field.
func (_u *QuizUpdate) SetSectionID(v uuid.UUID) *QuizUpdate {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableSectionID(v *uuid.UUID) *QuizUpdate {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *QuizUpdate) SetCourseID(v uuid.UUID) *QuizUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableCourseID(v *uuid.UUID) *QuizUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuizUpdate) SetQuestions(v []core.Question) *QuizUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuizUpdate) AppendQuestions(v []core.Question) *QuizUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *QuizUpdate) ClearQuestions() *QuizUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// SetPassingScore sets the "passing_score" field.
func (_u *QuizUpdate) SetPassingScore(v float64) *QuizUpdate {
	_u.mutation.ResetPassingScore()
	_u.mutation.SetPassingScore(v)
	return _u
}

// SetNillablePassingScore sets the "passing_score" field if the given value is not nil.
func (_u *QuizUpdate) SetNillablePassingScore(v *float64) *QuizUpdate {
	if v != nil {
		_u.SetPassingScore(*v)
	}
	return _u
}

// AddPassingScore adds value to the "passing_score" field.
func (_u *QuizUpdate) AddPassingScore(v float64) *QuizUpdate {
	_u.mutation.AddPassingScore(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *QuizUpdate) SetMaxAttempts(v int) *QuizUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableMaxAttempts(v *int) *QuizUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *QuizUpdate) AddMaxAttempts(v int) *QuizUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetIsRequired sets the "is_required" field.
func (_u *QuizUpdate) SetIsRequired(v bool) *QuizUpdate {
	_u.mutation.SetIsRequired(v)
	return _u
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableIsRequired(v *bool) *QuizUpdate {
	if v != nil {
		_u.SetIsRequired(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *QuizUpdate) SetIdempotencyKey(v string) *QuizUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableIdempotencyKey(v *string) *QuizUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuizUpdate) SetUpdatedAt(v time.Time) *QuizUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSection sets the "section" edge to the Section entity.
func (_u *QuizUpdate) SetSection(v *Section) *QuizUpdate {
	return _u.SetSectionID(v.ID)
}

// Mutation returns the QuizMutation object of the builder.
func (_u *QuizUpdate) Mutation() *QuizMutation {
	return _u.mutation
}

// ClearSection clears the "section" edge to the Section entity.
func (_u *QuizUpdate) ClearSection() *QuizUpdate {
	_u.mutation.ClearSection()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuizUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quiz.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizUpdate) check() error {
	if _u.mutation.SectionCleared() && len(_u.mutation.SectionIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Quiz.section"`)
	}
	return nil
}

func (_u *QuizUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quiz.Table, quiz.Columns, sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(quiz.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(quiz.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quiz.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(quiz.FieldQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.PassingScore(); ok {
		_spec.SetField(quiz.FieldPassingScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPassingScore(); ok {
		_spec.AddField(quiz.FieldPassingScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(quiz.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(quiz.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsRequired(); ok {
		_spec.SetField(quiz.FieldIsRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(quiz.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quiz.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SectionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   quiz.SectionTable,
			Columns: []string{quiz.SectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(section.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   quiz.SectionTable,
			Columns: []string{quiz.SectionColumn},
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
			err = &NotFoundError{quiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizUpdateOne is the builder for updating a single Quiz entity.
type QuizUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizMutation
}

// SetSectionID sets the "section_id" field.
func (_u *QuizUpdateOne) SetSectionID(v uuid.UUID) *QuizUpdateOne {
	_u.mutation.SetSectionID(v)
	return _u
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableSectionID(v *uuid.UUID) *QuizUpdateOne {
	if v != nil {
		_u.SetSectionID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *QuizUpdateOne) SetCourseID(v uuid.UUID) *QuizUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableCourseID(v *uuid.UUID) *QuizUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuizUpdateOne) SetQuestions(v []core.Question) *QuizUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *QuizUpdateOne) AppendQuestions(v []core.Question) *QuizUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *QuizUpdateOne) ClearQuestions() *QuizUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// SetPassingScore sets the "passing_score" field.
func (_u *QuizUpdateOne) SetPassingScore(v float64) *QuizUpdateOne {
	_u.mutation.ResetPassingScore()
	_u.mutation.SetPassingScore(v)
	return _u
}

// SetNillablePassingScore sets the "passing_score" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillablePassingScore(v *float64) *QuizUpdateOne {
	if v != nil {
		_u.SetPassingScore(*v)
	}
	return _u
}

// AddPassingScore adds value to the "passing_score" field.
func (_u *QuizUpdateOne) AddPassingScore(v float64) *QuizUpdateOne {
	_u.mutation.AddPassingScore(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *QuizUpdateOne) SetMaxAttempts(v int) *QuizUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableMaxAttempts(v *int) *QuizUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *QuizUpdateOne) AddMaxAttempts(v int) *QuizUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetIsRequired sets the "is_required" field.
func (_u *QuizUpdateOne) SetIsRequired(v bool) *QuizUpdateOne {
	_u.mutation.SetIsRequired(v)
	return _u
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableIsRequired(v *bool) *QuizUpdateOne {
	if v != nil {
		_u.SetIsRequired(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *QuizUpdateOne) SetIdempotencyKey(v string) *QuizUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableIdempotencyKey(v *string) *QuizUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QuizUpdateOne) SetUpdatedAt(v time.Time) *QuizUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSection sets the "section" edge to the Section entity.
func (_u *QuizUpdateOne) SetSection(v *Section) *QuizUpdateOne {
	return _u.SetSectionID(v.ID)
}

// Mutation returns the QuizMutation object of the builder.
func (_u *QuizUpdateOne) Mutation() *QuizMutation {
	return _u.mutation
}

// ClearSection clears the "section" edge to the Section entity.
func (_u *QuizUpdateOne) ClearSection() *QuizUpdateOne {
	_u.mutation.ClearSection()
	return _u
}

// Where appends a list predicates to the QuizUpdate builder.
func (_u *QuizUpdateOne) Where(ps ...predicate.Quiz) *QuizUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizUpdateOne) Select(field string, fields ...string) *QuizUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Quiz entity.
func (_u *QuizUpdateOne) Save(ctx context.Context) (*Quiz, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizUpdateOne) SaveX(ctx context.Context) *Quiz {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QuizUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := quiz.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizUpdateOne) check() error {
	if _u.mutation.SectionCleared() && len(_u.mutation.SectionIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Quiz.section"`)
	}
	return nil
}

func (_u *QuizUpdateOne) sqlSave(ctx context.Context) (_node *Quiz, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quiz.Table, quiz.Columns, sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Quiz.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quiz.FieldID)
		for _, f := range fields {
			if !quiz.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != quiz.FieldID {
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
		_spec.SetField(quiz.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(quiz.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quiz.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(quiz.FieldQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.PassingScore(); ok {
		_spec.SetField(quiz.FieldPassingScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPassingScore(); ok {
		_spec.AddField(quiz.FieldPassingScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(quiz.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(quiz.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsRequired(); ok {
		_spec.SetField(quiz.FieldIsRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(quiz.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(quiz.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SectionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   quiz.SectionTable,
			Columns: []string{quiz.SectionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(section.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SectionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   quiz.SectionTable,
			Columns: []string{quiz.SectionColumn},
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
	_node = &Quiz{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
