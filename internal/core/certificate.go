package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Certificate is issued once per completed enrollment.
type Certificate struct {
	ID                uuid.UUID
	EnrollmentID      uuid.UUID
	UserID            uuid.UUID
	CourseID          uuid.UUID
	CertificateNumber string
	IssueDate         time.Time
	CompletedAt       time.Time
}

// CertificateRepository defines persistence operations for certificates.
type CertificateRepository interface {
	Create(ctx context.Context, certificate Certificate) (*Certificate, error)
	Get(ctx context.Context, id uuid.UUID) (*Certificate, error)
	GetByEnrollment(ctx context.Context, enrollmentID uuid.UUID) (*Certificate, error)
	GetByNumber(ctx context.Context, certificateNumber string) (*Certificate, error)
}
