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
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/lesson"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/section"
)

// LessonCreate is the builder for creating a Lesson entity.
type LessonCreate struct {
	config
	mutation *LessonMutation
	hooks    []Hook
}

// SetSectionID sets the "section_id" field.
func (_c *LessonCreate) SetSectionID(v uuid.UUID) *LessonCreate {
	_c.mutation.SetSectionID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *LessonCreate) SetCourseID(v uuid.UUID) *LessonCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LessonCreate) SetTitle(v string) *LessonCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *LessonCreate) SetDescription(v string) *LessonCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *LessonCreate) SetNillableDescription(v *string) *LessonCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *LessonCreate) SetContentType(v int) *LessonCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_c *LessonCreate) SetNillableContentType(v *int) *LessonCreate {
	if v != nil {
		_c.SetContentType(*v)
	}
	return _c
}

// SetContentURL sets the "content_url" field.
func (_c *LessonCreate) SetContentURL(v string) *LessonCreate {
	_c.mutation.SetContentURL(v)
	return _c
}

// SetNillableContentURL sets the "content_url" field if the given value is not nil.
func (_c *LessonCreate) SetNillableContentURL(v *string) *LessonCreate {
	if v != nil {
		_c.SetContentURL(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *LessonCreate) SetDurationSeconds(v int) *LessonCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *LessonCreate) SetNillableDurationSeconds(v *int) *LessonCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetOrder sets the "order" field.
func (_c *LessonCreate) SetOrder(v int) *LessonCreate {
	_c.mutation.SetOrder(v)
	return _c
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (_c *LessonCreate) SetNillableOrder(v *int) *LessonCreate {
	if v != nil {
		_c.SetOrder(*v)
	}
	return _c
}

// SetIsPreviewable sets the "is_previewable" field.
func (_c *LessonCreate) SetIsPreviewable(v bool) *LessonCreate {
	_c.mutation.SetIsPreviewable(v)
	return _c
}

// SetNillableIsPreviewable sets the "is_previewable" field if the given value is not nil.
func (_c *LessonCreate) SetNillableIsPreviewable(v *bool) *LessonCreate {
	if v != nil {
		_c.SetIsPreviewable(*v)
	}
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *LessonCreate) SetIdempotencyKey(v string) *LessonCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LessonCreate) SetCreatedAt(v time.Time) *LessonCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LessonCreate) SetNillableCreatedAt(v *time.Time) *LessonCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LessonCreate) SetUpdatedAt(v time.Time) *LessonCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LessonCreate) SetNillableUpdatedAt(v *time.Time) *LessonCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LessonCreate) SetID(v uuid.UUID) *LessonCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LessonCreate) SetNillableID(v *uuid.UUID) *LessonCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetSection sets the "section" edge to the Section entity.
func (_c *LessonCreate) SetSection(v *Section) *LessonCreate {
	return _c.SetSectionID(v.ID)
}

// Mutation returns the LessonMutation object of the builder.
func (_c *LessonCreate) Mutation() *LessonMutation {
	return _c.mutation
}

// Save creates the Lesson in the database.
func (_c *LessonCreate) Save(ctx context.Context) (*Lesson, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonCreate) SaveX(ctx context.Context) *Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := lesson.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		v := lesson.DefaultContentType
		_c.mutation.SetContentType(v)
	}
	if _, ok := _c.mutation.ContentURL(); !ok {
		v := lesson.DefaultContentURL
		_c.mutation.SetContentURL(v)
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		v := lesson.DefaultDurationSeconds
		_c.mutation.SetDurationSeconds(v)
	}
	if _, ok := _c.mutation.Order(); !ok {
		v := lesson.DefaultOrder
		_c.mutation.SetOrder(v)
	}
	if _, ok := _c.mutation.IsPreviewable(); !ok {
		v := lesson.DefaultIsPreviewable
		_c.mutation.SetIsPreviewable(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lesson.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lesson.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := lesson.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonCreate) check() error {
	if _, ok := _c.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`generated: missing required field "Lesson.section_id"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`generated: missing required field "Lesson.course_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`generated: missing required field "Lesson.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`generated: missing required field "Lesson.description"`)}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`generated: missing required field "Lesson.content_type"`)}
	}
	if _, ok := _c.mutation.ContentURL(); !ok {
		return &ValidationError{Name: "content_url", err: errors.New(`generated: missing required field "Lesson.content_url"`)}
	}
	if _, ok := _c.mutation.DurationSeconds(); !ok {
		return &ValidationError{Name: "duration_seconds", err: errors.New(`generated: missing required field "Lesson.duration_seconds"`)}
	}
	if _, ok := _c.mutation.Order(); !ok {
		return &ValidationError{Name: "order", err: errors.New(`generated: missing required field "Lesson.order"`)}
	}
	if _, ok := _c.mutation.IsPreviewable(); !ok {
		return &ValidationError{Name: "is_previewable", err: errors.New(`generated: missing required field "Lesson.is_previewable"`)}
	}
	if _, ok := _c.mutation.IdempotencyKey(); !ok {
		return &ValidationError{Name: "idempotency_key", err: errors.New(`generated: missing required field "Lesson.idempotency_key"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Lesson.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "Lesson.updated_at"`)}
	}
	if len(_c.mutation.SectionIDs()) == 0 {
		return &ValidationError{Name: "section", err: errors.New(`generated: missing required edge "Lesson.section"`)}
	}
	return nil
}

func (_c *LessonCreate) sqlSave(ctx context.Context) (*Lesson, error) {
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

func (_c *LessonCreate) createSpec() (*Lesson, *sqlgraph.CreateSpec) {
	var (
		_node = &Lesson{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lesson.Table, sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(lesson.FieldCourseID, field.TypeUUID, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lesson.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(lesson.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(lesson.FieldContentType, field.TypeInt, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.ContentURL(); ok {
		_spec.SetField(lesson.FieldContentURL, field.TypeString, value)
		_node.ContentURL = value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(lesson.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = value
	}
	if value, ok := _c.mutation.Order(); ok {
		_spec.SetField(lesson.FieldOrder, field.TypeInt, value)
		_node.Order = value
	}
	if value, ok := _c.mutation.IsPreviewable(); ok {
		_spec.SetField(lesson.FieldIsPreviewable, field.TypeBool, value)
		_node.IsPreviewable = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(lesson.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lesson.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lesson.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SectionIDs(); len(nodes) > 0 {
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
		_node.SectionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LessonCreateBulk is the builder for creating many Lesson entities in bulk.
type LessonCreateBulk struct {
	config
	err      error
	builders []*LessonCreate
}

// Save creates the Lesson entities in the database.
func (_c *LessonCreateBulk) Save(ctx context.Context) ([]*Lesson, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lesson, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonMutation)
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
func (_c *LessonCreateBulk) SaveX(ctx context.Context) []*Lesson {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
