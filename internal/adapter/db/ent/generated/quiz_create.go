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
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/quiz"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/section"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

// QuizCreate is the builder for creating a Quiz entity.
type QuizCreate struct {
	config
	mutation *QuizMutation
	hooks    []Hook
}

// SetSectionID sets the "section_id" field.
func (_c *QuizCreate) SetSectionID(v uuid.UUID) *QuizCreate {
	_c.mutation.SetSectionID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *QuizCreate) SetCourseID(v uuid.UUID) *QuizCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *QuizCreate) SetQuestions(v []core.Question) *QuizCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetPassingScore sets the "passing_score" field.
func (_c *QuizCreate) SetPassingScore(v float64) *QuizCreate {
	_c.mutation.SetPassingScore(v)
	return _c
}

// SetNillablePassingScore sets the "passing_score" field if the given value is not nil.
func (_c *QuizCreate) SetNillablePassingScore(v *float64) *QuizCreate {
	if v != nil {
		_c.SetPassingScore(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *QuizCreate) SetMaxAttempts(v int) *QuizCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *QuizCreate) SetNillableMaxAttempts(v *int) *QuizCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetIsRequired sets the "is_required" field.
func (_c *QuizCreate) SetIsRequired(v bool) *QuizCreate {
	_c.mutation.SetIsRequired(v)
	return _c
}

// SetNillableIsRequired sets the "is_required" field if the given value is not nil.
func (_c *QuizCreate) SetNillableIsRequired(v *bool) *QuizCreate {
	if v != nil {
		_c.SetIsRequired(*v)
	}
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *QuizCreate) SetIdempotencyKey(v string) *QuizCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuizCreate) SetCreatedAt(v time.Time) *QuizCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuizCreate) SetNillableCreatedAt(v *time.Time) *QuizCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QuizCreate) SetUpdatedAt(v time.Time) *QuizCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QuizCreate) SetNillableUpdatedAt(v *time.Time) *QuizCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuizCreate) SetID(v uuid.UUID) *QuizCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuizCreate) SetNillableID(v *uuid.UUID) *QuizCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSection sets the "section" edge to the Section entity.
func (_c *QuizCreate) SetSection(v *Section) *QuizCreate {
	return _c.SetSectionID(v.ID)
}

// Mutation returns the QuizMutation object of the builder.
func (_c *QuizCreate) Mutation() *QuizMutation {
	return _c.mutation
}

// Save creates the Quiz in the database.
func (_c *QuizCreate) Save(ctx context.Context) (*Quiz, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizCreate) SaveX(ctx context.Context) *Quiz {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizCreate) defaults() {
	if _, ok := _c.mutation.PassingScore(); !ok {
		v := quiz.DefaultPassingScore
		_c.mutation.SetPassingScore(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := quiz.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.IsRequired(); !ok {
		v := quiz.DefaultIsRequired
		_c.mutation.SetIsRequired(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quiz.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := quiz.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := quiz.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizCreate) check() error {
	if _, ok := _c.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`generated: missing required field "Quiz.section_id"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`generated: missing required field "Quiz.course_id"`)}
	}
	if _, ok := _c.mutation.PassingScore(); !ok {
		return &ValidationError{Name: "passing_score", err: errors.New(`generated: missing required field "Quiz.passing_score"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`generated: missing required field "Quiz.max_attempts"`)}
	}
	if _, ok := _c.mutation.IsRequired(); !ok {
		return &ValidationError{Name: "is_required", err: errors.New(`generated: missing required field "Quiz.is_required"`)}
	}
	if _, ok := _c.mutation.IdempotencyKey(); !ok {
		return &ValidationError{Name: "idempotency_key", err: errors.New(`generated: missing required field "Quiz.idempotency_key"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Quiz.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "Quiz.updated_at"`)}
	}
	if len(_c.mutation.SectionIDs()) == 0 {
		return &ValidationError{Name: "section", err: errors.New(`generated: missing required edge "Quiz.section"`)}
	}
	return nil
}

func (_c *QuizCreate) sqlSave(ctx context.Context) (*Quiz, error) {
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

func (_c *QuizCreate) createSpec() (*Quiz, *sqlgraph.CreateSpec) {
	var (
		_node = &Quiz{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quiz.Table, sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(quiz.FieldCourseID, field.TypeUUID, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(quiz.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.PassingScore(); ok {
		_spec.SetField(quiz.FieldPassingScore, field.TypeFloat64, value)
		_node.PassingScore = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(quiz.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.IsRequired(); ok {
		_spec.SetField(quiz.FieldIsRequired, field.TypeBool, value)
		_node.IsRequired = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(quiz.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quiz.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(quiz.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SectionIDs(); len(nodes) > 0 {
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
		_node.SectionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuizCreateBulk is the builder for creating many Quiz entities in bulk.
type QuizCreateBulk struct {
	config
	err      error
	builders []*QuizCreate
}

// Save creates the Quiz entities in the database.
func (_c *QuizCreateBulk) Save(ctx context.Context) ([]*Quiz, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Quiz, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizMutation)
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
func (_c *QuizCreateBulk) SaveX(ctx context.Context) []*Quiz {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
