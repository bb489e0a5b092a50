package db

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/samber/lo"

	entgenerated "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated"
	entenrollment "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/enrollment"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

// EnrollmentRepository persists enrollments using Ent.
type EnrollmentRepository struct {
	client *entgenerated.Client
}

// NewEnrollmentRepository constructs an Ent-backed enrollment repository.
func NewEnrollmentRepository(client *entgenerated.Client) *EnrollmentRepository {
	return &EnrollmentRepository{client: client}
}

var _ core.EnrollmentRepository = (*EnrollmentRepository)(nil)

// Create inserts a new enrollment record.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment core.Enrollment) (*core.Enrollment, error) {
	builder := r.client.Enrollment.Create().
		SetID(enrollment.ID).
		SetStudentID(enrollment.StudentID).
		SetCourseID(enrollment.CourseID).
		SetStatus(int(enrollment.Status)).
		SetProgress(enrollment.Progress).
		SetProgressPercent(enrollment.ProgressPercent).
		SetIdempotencyKey(enrollment.IdempotencyKey).
		SetVersion(enrollment.Version).
		SetCreatedAt(enrollment.CreatedAt).
		SetUpdatedAt(enrollment.UpdatedAt)

	if enrollment.CompletedAt != nil {
		builder.SetCompletedAt(*enrollment.CompletedAt)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if entgenerated.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: student %s already enrolled in course %s", core.ErrAlreadyExists, enrollment.StudentID, enrollment.CourseID)
		}
		return nil, err
	}
	return toDomainEnrollment(row), nil
}

// Get fetches an enrollment by id.
func (r *EnrollmentRepository) Get(ctx context.Context, id uuid.UUID) (*core.Enrollment, error) {
	row, err := r.client.Enrollment.Get(ctx, id)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainEnrollment(row), nil
}

// GetByStudentAndCourse fetches the student's enrollment in a course.
func (r *EnrollmentRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID uuid.UUID) (*core.Enrollment, error) {
	row, err := r.client.Enrollment.Query().
		Where(entenrollment.StudentIDEQ(studentID), entenrollment.CourseIDEQ(courseID)).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainEnrollment(row), nil
}

// GetByIdempotencyKey fetches the enrollment created under the supplied key.
func (r *EnrollmentRepository) GetByIdempotencyKey(ctx context.Context, key string) (*core.Enrollment, error) {
	row, err := r.client.Enrollment.Query().
		Where(entenrollment.IdempotencyKeyEQ(key)).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainEnrollment(row), nil
}

// ListByStudent returns the student's enrollments, newest first.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]core.Enrollment, error) {
	rows, err := r.client.Enrollment.Query().
		Where(entenrollment.StudentIDEQ(studentID)).
		Order(entenrollment.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(row *entgenerated.Enrollment, _ int) core.Enrollment {
		return *toDomainEnrollment(row)
	}), nil
}

// Update overwrites the enrollment conditionally on the version it was
// loaded with. A version mismatch surfaces as ErrConflict.
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment core.Enrollment) (*core.Enrollment, error) {
	builder := r.client.Enrollment.UpdateOneID(enrollment.ID).
		Where(entenrollment.VersionEQ(enrollment.Version)).
		SetStatus(int(enrollment.Status)).
		SetProgress(enrollment.Progress).
		SetProgressPercent(enrollment.ProgressPercent).
		SetVersion(enrollment.Version + 1).
		SetUpdatedAt(enrollment.UpdatedAt)

	if enrollment.CompletedAt != nil {
		builder.SetCompletedAt(*enrollment.CompletedAt)
	} else {
		builder.ClearCompletedAt()
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, fmt.Errorf("%w: enrollment %s version %d", core.ErrConflict, enrollment.ID, enrollment.Version)
		}
		return nil, err
	}
	return toDomainEnrollment(row), nil
}

func toDomainEnrollment(row *entgenerated.Enrollment) *core.Enrollment {
	if row == nil {
		return nil
	}

	enrollment := &core.Enrollment{
		ID:              row.ID,
		StudentID:       row.StudentID,
		CourseID:        row.CourseID,
		Status:          core.EnrollmentStatus(row.Status),
		Progress:        row.Progress,
		ProgressPercent: row.ProgressPercent,
		IdempotencyKey:  row.IdempotencyKey,
		Version:         row.Version,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}

	if row.CompletedAt != nil {
		t := *row.CompletedAt
		enrollment.CompletedAt = &t
	}

	return enrollment
}
