package db

import (
	"context"

	"github.com/google/uuid"

	entgenerated "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated"
	entcertificate "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/db/ent/generated/certificate"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

// CertificateRepository persists certificates using Ent.
type CertificateRepository struct {
	client *entgenerated.Client
}

// NewCertificateRepository constructs an Ent-backed certificate repository.
func NewCertificateRepository(client *entgenerated.Client) *CertificateRepository {
	return &CertificateRepository{client: client}
}

var _ core.CertificateRepository = (*CertificateRepository)(nil)

// Create inserts a new certificate record. The unique enrollment column
// keeps issuance single-shot under concurrent requests.
func (r *CertificateRepository) Create(ctx context.Context, certificate core.Certificate) (*core.Certificate, error) {
	row, err := r.client.Certificate.Create().
		SetID(certificate.ID).
		SetEnrollmentID(certificate.EnrollmentID).
		SetUserID(certificate.UserID).
		SetCourseID(certificate.CourseID).
		SetCertificateNumber(certificate.CertificateNumber).
		SetIssueDate(certificate.IssueDate).
		SetCompletedAt(certificate.CompletedAt).
		Save(ctx)
	if err != nil {
		if entgenerated.IsConstraintError(err) {
			return nil, core.ErrAlreadyExists
		}
		return nil, err
	}
	return toDomainCertificate(row), nil
}

// Get fetches a certificate by id.
func (r *CertificateRepository) Get(ctx context.Context, id uuid.UUID) (*core.Certificate, error) {
	row, err := r.client.Certificate.Get(ctx, id)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainCertificate(row), nil
}

// GetByEnrollment fetches the certificate issued for an enrollment.
func (r *CertificateRepository) GetByEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*core.Certificate, error) {
	row, err := r.client.Certificate.Query().
		Where(entcertificate.EnrollmentIDEQ(enrollmentID)).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainCertificate(row), nil
}

// GetByNumber fetches a certificate by its public number.
func (r *CertificateRepository) GetByNumber(ctx context.Context, certificateNumber string) (*core.Certificate, error) {
	row, err := r.client.Certificate.Query().
		Where(entcertificate.CertificateNumberEQ(certificateNumber)).
		Only(ctx)
	if err != nil {
		if entgenerated.IsNotFound(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return toDomainCertificate(row), nil
}

func toDomainCertificate(row *entgenerated.Certificate) *core.Certificate {
	if row == nil {
		return nil
	}
	return &core.Certificate{
		ID:                row.ID,
		EnrollmentID:      row.EnrollmentID,
		UserID:            row.UserID,
		CourseID:          row.CourseID,
		CertificateNumber: row.CertificateNumber,
		IssueDate:         row.IssueDate,
		CompletedAt:       row.CompletedAt,
	}
}
