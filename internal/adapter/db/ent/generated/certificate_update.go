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
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/certificate"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/enrollment"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/predicate"
)

// CertificateUpdate is the builder for updating Certificate entities.
type CertificateUpdate struct {
	config
	hooks    []Hook
	mutation *CertificateMutation
}

// Where appends a list predicates to the CertificateUpdate builder.
func (_u *CertificateUpdate) Where(ps ...predicate.Certificate) *CertificateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *CertificateUpdate) SetEnrollmentID(v uuid.UUID) *CertificateUpdate {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableEnrollmentID(v *uuid.UUID) *CertificateUpdate {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CertificateUpdate) SetUserID(v uuid.UUID) *CertificateUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableUserID(v *uuid.UUID) *CertificateUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *CertificateUpdate) SetCourseID(v uuid.UUID) *CertificateUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableCourseID(v *uuid.UUID) *CertificateUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetCertificateNumber sets the "certificate_number" field.
func (_u *CertificateUpdate) SetCertificateNumber(v string) *CertificateUpdate {
	_u.mutation.SetCertificateNumber(v)
	return _u
}

// SetNillableCertificateNumber sets the "certificate_number" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableCertificateNumber(v *string) *CertificateUpdate {
	if v != nil {
		_u.SetCertificateNumber(*v)
	}
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *CertificateUpdate) SetIssueDate(v time.Time) *CertificateUpdate {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableIssueDate(v *time.Time) *CertificateUpdate {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CertificateUpdate) SetCompletedAt(v time.Time) *CertificateUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CertificateUpdate) SetNillableCompletedAt(v *time.Time) *CertificateUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetEnrollment sets the "enrollment" edge to the Enrollment entity.
func (_u *CertificateUpdate) SetEnrollment(v *Enrollment) *CertificateUpdate {
	return _u.SetEnrollmentID(v.ID)
}

// Mutation returns the CertificateMutation object of the builder.
func (_u *CertificateUpdate) Mutation() *CertificateMutation {
	return _u.mutation
}

// ClearEnrollment clears the "enrollment" edge to the Enrollment entity.
func (_u *CertificateUpdate) ClearEnrollment() *CertificateUpdate {
	_u.mutation.ClearEnrollment()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CertificateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CertificateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CertificateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CertificateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CertificateUpdate) check() error {
	if _u.mutation.EnrollmentCleared() && len(_u.mutation.EnrollmentIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Certificate.enrollment"`)
	}
	return nil
}

func (_u *CertificateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(certificate.Table, certificate.Columns, sqlgraph.NewFieldSpec(certificate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(certificate.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(certificate.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CertificateNumber(); ok {
		_spec.SetField(certificate.FieldCertificateNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(certificate.FieldIssueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(certificate.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.EnrollmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnrollmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{certificate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CertificateUpdateOne is the builder for updating a single Certificate entity.
type CertificateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CertificateMutation
}

// SetEnrollmentID sets the "enrollment_id" field.
func (_u *CertificateUpdateOne) SetEnrollmentID(v uuid.UUID) *CertificateUpdateOne {
	_u.mutation.SetEnrollmentID(v)
	return _u
}

// SetNillableEnrollmentID sets the "enrollment_id" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableEnrollmentID(v *uuid.UUID) *CertificateUpdateOne {
	if v != nil {
		_u.SetEnrollmentID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CertificateUpdateOne) SetUserID(v uuid.UUID) *CertificateUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableUserID(v *uuid.UUID) *CertificateUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *CertificateUpdateOne) SetCourseID(v uuid.UUID) *CertificateUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableCourseID(v *uuid.UUID) *CertificateUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetCertificateNumber sets the "certificate_number" field.
func (_u *CertificateUpdateOne) SetCertificateNumber(v string) *CertificateUpdateOne {
	_u.mutation.SetCertificateNumber(v)
	return _u
}

// SetNillableCertificateNumber sets the "certificate_number" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableCertificateNumber(v *string) *CertificateUpdateOne {
	if v != nil {
		_u.SetCertificateNumber(*v)
	}
	return _u
}

// SetIssueDate sets the "issue_date" field.
func (_u *CertificateUpdateOne) SetIssueDate(v time.Time) *CertificateUpdateOne {
	_u.mutation.SetIssueDate(v)
	return _u
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableIssueDate(v *time.Time) *CertificateUpdateOne {
	if v != nil {
		_u.SetIssueDate(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CertificateUpdateOne) SetCompletedAt(v time.Time) *CertificateUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CertificateUpdateOne) SetNillableCompletedAt(v *time.Time) *CertificateUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetEnrollment sets the "enrollment" edge to the Enrollment entity.
func (_u *CertificateUpdateOne) SetEnrollment(v *Enrollment) *CertificateUpdateOne {
	return _u.SetEnrollmentID(v.ID)
}

// Mutation returns the CertificateMutation object of the builder.
func (_u *CertificateUpdateOne) Mutation() *CertificateMutation {
	return _u.mutation
}

// ClearEnrollment clears the "enrollment" edge to the Enrollment entity.
func (_u *CertificateUpdateOne) ClearEnrollment() *CertificateUpdateOne {
	_u.mutation.ClearEnrollment()
	return _u
}

// Where appends a list predicates to the CertificateUpdate builder.
func (_u *CertificateUpdateOne) Where(ps ...predicate.Certificate) *CertificateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CertificateUpdateOne) Select(field string, fields ...string) *CertificateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Certificate entity.
func (_u *CertificateUpdateOne) Save(ctx context.Context) (*Certificate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CertificateUpdateOne) SaveX(ctx context.Context) *Certificate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CertificateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CertificateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CertificateUpdateOne) check() error {
	if _u.mutation.EnrollmentCleared() && len(_u.mutation.EnrollmentIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Certificate.enrollment"`)
	}
	return nil
}

func (_u *CertificateUpdateOne) sqlSave(ctx context.Context) (_node *Certificate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(certificate.Table, certificate.Columns, sqlgraph.NewFieldSpec(certificate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Certificate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, certificate.FieldID)
		for _, f := range fields {
			if !certificate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != certificate.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(certificate.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(certificate.FieldCourseID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CertificateNumber(); ok {
		_spec.SetField(certificate.FieldCertificateNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssueDate(); ok {
		_spec.SetField(certificate.FieldIssueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(certificate.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.EnrollmentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EnrollmentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Certificate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{certificate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
