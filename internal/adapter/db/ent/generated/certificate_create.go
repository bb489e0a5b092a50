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
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/certificate"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/enrollment"
)

// CertificateCreate is the builder for creating a Certificate entity.
type CertificateCreate struct {
	config
	mutation *CertificateMutation
	hooks    []Hook
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_c *CertificateCreate) SetEnrollmentID(v uuid.UUID) *CertificateCreate {
	_c.mutation.SetEnrollmentID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *CertificateCreate) SetUserID(v uuid.UUID) *CertificateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *CertificateCreate) SetCourseID(v uuid.UUID) *CertificateCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetCertificateNumber sets the "certificate_number" field.
func (_c *CertificateCreate) SetCertificateNumber(v string) *CertificateCreate {
	_c.mutation.SetCertificateNumber(v)
	return _c
}

// SetIssueDate sets the "issue_date" field.
func (_c *CertificateCreate) SetIssueDate(v time.Time) *CertificateCreate {
	_c.mutation.SetIssueDate(v)
	return _c
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableIssueDate(v *time.Time) *CertificateCreate {
	if v != nil {
		_c.SetIssueDate(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CertificateCreate) SetCompletedAt(v time.Time) *CertificateCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CertificateCreate) SetID(v uuid.UUID) *CertificateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableID(v *uuid.UUID) *CertificateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetEnrollment sets the "enrollment" edge to the Enrollment entity.
func (_c *CertificateCreate) SetEnrollment(v *Enrollment) *CertificateCreate {
	return _c.SetEnrollmentID(v.ID)
}

// Mutation returns the CertificateMutation object of the builder.
func (_c *CertificateCreate) Mutation() *CertificateMutation {
	return _c.mutation
}

// Save creates the Certificate in the database.
func (_c *CertificateCreate) Save(ctx context.Context) (*Certificate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CertificateCreate) SaveX(ctx context.Context) *Certificate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CertificateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CertificateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CertificateCreate) defaults() {
	if _, ok := _c.mutation.IssueDate(); !ok {
		v := certificate.DefaultIssueDate()
		_c.mutation.SetIssueDate(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := certificate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CertificateCreate) check() error {
	if _, ok := _c.mutation.EnrollmentID(); !ok {
		return &ValidationError{Name: "enrollment_id", err: errors.New(`generated: missing required field "Certificate.enrollment_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`generated: missing required field "Certificate.user_id"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`generated: missing required field "Certificate.course_id"`)}
	}
	if _, ok := _c.mutation.CertificateNumber(); !ok {
		return &ValidationError{Name: "certificate_number", err: errors.New(`generated: missing required field "Certificate.certificate_number"`)}
	}
	if _, ok := _c.mutation.IssueDate(); !ok {
		return &ValidationError{Name: "issue_date", err: errors.New(`generated: missing required field "Certificate.issue_date"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`generated: missing required field "Certificate.completed_at"`)}
	}
	if len(_c.mutation.EnrollmentIDs()) == 0 {
		return &ValidationError{Name: "enrollment", err: errors.New(`generated: missing required edge "Certificate.enrollment"`)}
	}
	return nil
}

func (_c *CertificateCreate) sqlSave(ctx context.Context) (*Certificate, error) {
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

func (_c *CertificateCreate) createSpec() (*Certificate, *sqlgraph.CreateSpec) {
	var (
		_node = &Certificate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(certificate.Table, sqlgraph.NewFieldSpec(certificate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(certificate.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(certificate.FieldCourseID, field.TypeUUID, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.CertificateNumber(); ok {
		_spec.SetField(certificate.FieldCertificateNumber, field.TypeString, value)
		_node.CertificateNumber = value
	}
	if value, ok := _c.mutation.IssueDate(); ok {
		_spec.SetField(certificate.FieldIssueDate, field.TypeTime, value)
		_node.IssueDate = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(certificate.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if nodes := _c.mutation.EnrollmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   certificate.EnrollmentTable,
			Columns: []string{certificate.EnrollmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EnrollmentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CertificateCreateBulk is the builder for creating many Certificate entities in bulk.
type CertificateCreateBulk struct {
	config
	err      error
	builders []*CertificateCreate
}

// Save creates the Certificate entities in the database.
func (_c *CertificateCreateBulk) Save(ctx context.Context) ([]*Certificate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Certificate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CertificateMutation)
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
func (_c *CertificateCreateBulk) SaveX(ctx context.Context) []*Certificate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CertificateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CertificateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
