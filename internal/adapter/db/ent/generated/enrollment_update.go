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
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/certificate"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/course"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/enrollment"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/predicate"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

// EnrollmentUpdate is the builder for updating Enrollment entities.
type EnrollmentUpdate struct {
	config
	hooks    []Hook
	mutation *EnrollmentMutation
}

// Where appends a list predicates to the EnrollmentUpdate builder.
func (_u *EnrollmentUpdate) Where(ps ...predicate.Enrollment) *EnrollmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *EnrollmentUpdate) SetStudentID(v uuid.UUID) *EnrollmentUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableStudentID(v *uuid.UUID) *EnrollmentUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *EnrollmentUpdate) SetCourseID(v uuid.UUID) *EnrollmentUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableCourseID(v *uuid.UUID) *EnrollmentUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EnrollmentUpdate) SetStatus(v int) *EnrollmentUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableStatus(v *int) *EnrollmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *EnrollmentUpdate) AddStatus(v int) *EnrollmentUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetProgress sets the "progress" field.
func (_u *EnrollmentUpdate) SetProgress(v []core.ProgressEntry) *EnrollmentUpdate {
	_u.mutation.SetProgress(v)
	return _u
}

// AppendProgress appends value to the "progress" field.
func (_u *EnrollmentUpdate) AppendProgress(v []core.ProgressEntry) *EnrollmentUpdate {
	_u.mutation.AppendProgress(v)
	return _u
}

// ClearProgress clears the value of the "progress" field.
func (_u *EnrollmentUpdate) ClearProgress() *EnrollmentUpdate {
	_u.mutation.ClearProgress()
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *EnrollmentUpdate) SetProgressPercent(v float64) *EnrollmentUpdate {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableProgressPercent(v *float64) *EnrollmentUpdate {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *EnrollmentUpdate) AddProgressPercent(v float64) *EnrollmentUpdate {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *EnrollmentUpdate) SetIdempotencyKey(v string) *EnrollmentUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableIdempotencyKey(v *string) *EnrollmentUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *EnrollmentUpdate) SetVersion(v int) *EnrollmentUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableVersion(v *int) *EnrollmentUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *EnrollmentUpdate) AddVersion(v int) *EnrollmentUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnrollmentUpdate) SetUpdatedAt(v time.Time) *EnrollmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EnrollmentUpdate) SetCompletedAt(v time.Time) *EnrollmentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableCompletedAt(v *time.Time) *EnrollmentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EnrollmentUpdate) ClearCompletedAt() *EnrollmentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *EnrollmentUpdate) SetCourse(v *Course) *EnrollmentUpdate {
	return _u.SetCourseID(v.ID)
}

// SetCertificateID sets the "certificate" edge to the Certificate entity by ID.
func (_u *EnrollmentUpdate) SetCertificateID(id uuid.UUID) *EnrollmentUpdate {
	_u.mutation.SetCertificateID(id)
	return _u
}

// SetNillableCertificateID sets the "certificate" edge to the Certificate entity by ID if the given value is not nil.
func (_u *EnrollmentUpdate) SetNillableCertificateID(id *uuid.UUID) *EnrollmentUpdate {
	if id != nil {
		_u = _u.SetCertificateID(*id)
	}
	return _u
}

// SetCertificate sets the "certificate" edge to the Certificate entity.
func (_u *EnrollmentUpdate) SetCertificate(v *Certificate) *EnrollmentUpdate {
	return _u.SetCertificateID(v.ID)
}

// Mutation returns the EnrollmentMutation object of the builder.
func (_u *EnrollmentUpdate) Mutation() *EnrollmentMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *EnrollmentUpdate) ClearCourse() *EnrollmentUpdate {
	_u.mutation.ClearCourse()
	return _u
}

// ClearCertificate clears the "certificate" edge to the Certificate entity.
func (_u *EnrollmentUpdate) ClearCertificate() *EnrollmentUpdate {
	_u.mutation.ClearCertificate()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnrollmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrollmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnrollmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrollmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnrollmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := enrollment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrollmentUpdate) check() error {
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Enrollment.course"`)
	}
	return nil
}

func (_u *EnrollmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrollment.Table, enrollment.Columns, sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(enrollment.FieldStudentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(enrollment.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(enrollment.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(enrollment.FieldProgress, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProgress(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, enrollment.FieldProgress, value)
		})
	}
	if _u.mutation.ProgressCleared() {
		_spec.ClearField(enrollment.FieldProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(enrollment.FieldProgressPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(enrollment.FieldProgressPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(enrollment.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(enrollment.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(enrollment.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(enrollment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(enrollment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(enrollment.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.CourseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   enrollment.CourseTable,
			Columns: []string{enrollment.CourseColumn},
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
			Table:   enrollment.CourseTable,
			Columns: []string{enrollment.CourseColumn},
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
	if _u.mutation.CertificateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   enrollment.CertificateTable,
			Columns: []string{enrollment.CertificateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(certificate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CertificateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   enrollment.CertificateTable,
			Columns: []string{enrollment.CertificateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(certificate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrollment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnrollmentUpdateOne is the builder for updating a single Enrollment entity.
type EnrollmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnrollmentMutation
}

// SetStudentID sets the "student_id" field.
func (_u *EnrollmentUpdateOne) SetStudentID(v uuid.UUID) *EnrollmentUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableStudentID(v *uuid.UUID) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *EnrollmentUpdateOne) SetCourseID(v uuid.UUID) *EnrollmentUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableCourseID(v *uuid.UUID) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *EnrollmentUpdateOne) SetStatus(v int) *EnrollmentUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableStatus(v *int) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *EnrollmentUpdateOne) AddStatus(v int) *EnrollmentUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetProgress sets the "progress" field.
func (_u *EnrollmentUpdateOne) SetProgress(v []core.ProgressEntry) *EnrollmentUpdateOne {
	_u.mutation.SetProgress(v)
	return _u
}

// AppendProgress appends value to the "progress" field.
func (_u *EnrollmentUpdateOne) AppendProgress(v []core.ProgressEntry) *EnrollmentUpdateOne {
	_u.mutation.AppendProgress(v)
	return _u
}

// ClearProgress clears the value of the "progress" field.
func (_u *EnrollmentUpdateOne) ClearProgress() *EnrollmentUpdateOne {
	_u.mutation.ClearProgress()
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *EnrollmentUpdateOne) SetProgressPercent(v float64) *EnrollmentUpdateOne {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableProgressPercent(v *float64) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *EnrollmentUpdateOne) AddProgressPercent(v float64) *EnrollmentUpdateOne {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *EnrollmentUpdateOne) SetIdempotencyKey(v string) *EnrollmentUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableIdempotencyKey(v *string) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *EnrollmentUpdateOne) SetVersion(v int) *EnrollmentUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableVersion(v *int) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *EnrollmentUpdateOne) AddVersion(v int) *EnrollmentUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnrollmentUpdateOne) SetUpdatedAt(v time.Time) *EnrollmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EnrollmentUpdateOne) SetCompletedAt(v time.Time) *EnrollmentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableCompletedAt(v *time.Time) *EnrollmentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EnrollmentUpdateOne) ClearCompletedAt() *EnrollmentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCourse sets the "course" edge to the Course entity.
func (_u *EnrollmentUpdateOne) SetCourse(v *Course) *EnrollmentUpdateOne {
	return _u.SetCourseID(v.ID)
}

// SetCertificateID sets the "certificate" edge to the Certificate entity by ID.
func (_u *EnrollmentUpdateOne) SetCertificateID(id uuid.UUID) *EnrollmentUpdateOne {
	_u.mutation.SetCertificateID(id)
	return _u
}

// SetNillableCertificateID sets the "certificate" edge to the Certificate entity by ID if the given value is not nil.
func (_u *EnrollmentUpdateOne) SetNillableCertificateID(id *uuid.UUID) *EnrollmentUpdateOne {
	if id != nil {
		_u = _u.SetCertificateID(*id)
	}
	return _u
}

// SetCertificate sets the "certificate" edge to the Certificate entity.
func (_u *EnrollmentUpdateOne) SetCertificate(v *Certificate) *EnrollmentUpdateOne {
	return _u.SetCertificateID(v.ID)
}

// Mutation returns the EnrollmentMutation object of the builder.
func (_u *EnrollmentUpdateOne) Mutation() *EnrollmentMutation {
	return _u.mutation
}

// ClearCourse clears the "course" edge to the Course entity.
func (_u *EnrollmentUpdateOne) ClearCourse() *EnrollmentUpdateOne {
	_u.mutation.ClearCourse()
	return _u
}

// ClearCertificate clears the "certificate" edge to the Certificate entity.
func (_u *EnrollmentUpdateOne) ClearCertificate() *EnrollmentUpdateOne {
	_u.mutation.ClearCertificate()
	return _u
}

// Where appends a list predicates to the EnrollmentUpdate builder.
func (_u *EnrollmentUpdateOne) Where(ps ...predicate.Enrollment) *EnrollmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnrollmentUpdateOne) Select(field string, fields ...string) *EnrollmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Enrollment entity.
func (_u *EnrollmentUpdateOne) Save(ctx context.Context) (*Enrollment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrollmentUpdateOne) SaveX(ctx context.Context) *Enrollment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnrollmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrollmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnrollmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := enrollment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrollmentUpdateOne) check() error {
	if _u.mutation.CourseCleared() && len(_u.mutation.CourseIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Enrollment.course"`)
	}
	return nil
}

func (_u *EnrollmentUpdateOne) sqlSave(ctx context.Context) (_node *Enrollment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrollment.Table, enrollment.Columns, sqlgraph.NewFieldSpec(enrollment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Enrollment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enrollment.FieldID)
		for _, f := range fields {
			if !enrollment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != enrollment.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(enrollment.FieldStudentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(enrollment.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(enrollment.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(enrollment.FieldProgress, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProgress(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, enrollment.FieldProgress, value)
		})
	}
	if _u.mutation.ProgressCleared() {
		_spec.ClearField(enrollment.FieldProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(enrollment.FieldProgressPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(enrollment.FieldProgressPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(enrollment.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(enrollment.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(enrollment.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(enrollment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(enrollment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(enrollment.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.CourseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   enrollment.CourseTable,
			Columns: []string{enrollment.CourseColumn},
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
			Table:   enrollment.CourseTable,
			Columns: []string{enrollment.CourseColumn},
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
	if _u.mutation.CertificateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   enrollment.CertificateTable,
			Columns: []string{enrollment.CertificateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(certificate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CertificateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   enrollment.CertificateTable,
			Columns: []string{enrollment.CertificateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(certificate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Enrollment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrollment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
