package transport

import (
	"context"

	"connectrpc.com/connect"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
	coursev1 "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/pkg/api/course/v1"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/pkg/api/course/v1/coursev1connect"
)

// EnrollmentHandler implements the generated Connect service for enrollments
// and certificates.
type EnrollmentHandler struct {
	service core.EnrollmentService
}

// NewEnrollmentHandler constructs an Enrollment handler backed by the
// provided service.
func NewEnrollmentHandler(service core.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

var _ coursev1connect.EnrollmentServiceHandler = (*EnrollmentHandler)(nil)

func (h *EnrollmentHandler) Enroll(ctx context.Context, req *connect.Request[coursev1.EnrollRequest]) (*connect.Response[coursev1.EnrollResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	courseID, err := parseID("course_id", req.Msg.GetCourseId())
	if err != nil {
		return nil, err
	}

	enrollment, err := h.service.Enroll(ctx, core.EnrollParams{
		Actor:          actor,
		CourseID:       courseID,
		IdempotencyKey: req.Msg.GetIdempotencyKey(),
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.EnrollResponse{
		Enrollment: toProtoEnrollment(enrollment),
	}), nil
}

func (h *EnrollmentHandler) GetEnrollment(ctx context.Context, req *connect.Request[coursev1.GetEnrollmentRequest]) (*connect.Response[coursev1.GetEnrollmentResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	id, err := parseID("enrollment_id", req.Msg.GetEnrollmentId())
	if err != nil {
		return nil, err
	}

	enrollment, err := h.service.GetEnrollment(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.GetEnrollmentResponse{
		Enrollment: toProtoEnrollment(enrollment),
	}), nil
}

func (h *EnrollmentHandler) ListStudentEnrollments(ctx context.Context, req *connect.Request[coursev1.ListStudentEnrollmentsRequest]) (*connect.Response[coursev1.ListStudentEnrollmentsResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	enrollments, err := h.service.ListStudentEnrollments(ctx, actor)
	if err != nil {
		return nil, err
	}

	protoEnrollments := make([]*coursev1.Enrollment, 0, len(enrollments))
	for i := range enrollments {
		protoEnrollments = append(protoEnrollments, toProtoEnrollment(&enrollments[i]))
	}

	return connect.NewResponse(&coursev1.ListStudentEnrollmentsResponse{
		Enrollments: protoEnrollments,
	}), nil
}

func (h *EnrollmentHandler) CompleteLesson(ctx context.Context, req *connect.Request[coursev1.CompleteLessonRequest]) (*connect.Response[coursev1.CompleteLessonResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	enrollmentID, err := parseID("enrollment_id", req.Msg.GetEnrollmentId())
	if err != nil {
		return nil, err
	}

	lessonID, err := parseID("lesson_id", req.Msg.GetLessonId())
	if err != nil {
		return nil, err
	}

	enrollment, err := h.service.CompleteLesson(ctx, core.CompleteLessonParams{
		Actor:        actor,
		EnrollmentID: enrollmentID,
		LessonID:     lessonID,
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.CompleteLessonResponse{
		Enrollment: toProtoEnrollment(enrollment),
	}), nil
}

func (h *EnrollmentHandler) SubmitQuiz(ctx context.Context, req *connect.Request[coursev1.SubmitQuizRequest]) (*connect.Response[coursev1.SubmitQuizResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	enrollmentID, err := parseID("enrollment_id", req.Msg.GetEnrollmentId())
	if err != nil {
		return nil, err
	}

	quizID, err := parseID("quiz_id", req.Msg.GetQuizId())
	if err != nil {
		return nil, err
	}

	answers := make([]core.QuizAnswer, 0, len(req.Msg.GetAnswers()))
	for _, answer := range req.Msg.GetAnswers() {
		questionID, err := parseID("question_id", answer.GetQuestionId())
		if err != nil {
			return nil, err
		}
		answers = append(answers, core.QuizAnswer{
			QuestionID: questionID,
			Value:      answer.GetValue(),
		})
	}

	result, err := h.service.SubmitQuiz(ctx, core.SubmitQuizParams{
		Actor:        actor,
		EnrollmentID: enrollmentID,
		QuizID:       quizID,
		Answers:      answers,
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.SubmitQuizResponse{
		Score:      result.Score,
		Passed:     result.Passed,
		Attempts:   int32(result.Attempts),
		Enrollment: toProtoEnrollment(&result.Enrollment),
	}), nil
}

func (h *EnrollmentHandler) IssueCertificate(ctx context.Context, req *connect.Request[coursev1.IssueCertificateRequest]) (*connect.Response[coursev1.IssueCertificateResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	enrollmentID, err := parseID("enrollment_id", req.Msg.GetEnrollmentId())
	if err != nil {
		return nil, err
	}

	certificate, err := h.service.IssueCertificate(ctx, actor, enrollmentID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.IssueCertificateResponse{
		Certificate: toProtoCertificate(certificate),
	}), nil
}

func (h *EnrollmentHandler) GetCertificate(ctx context.Context, req *connect.Request[coursev1.GetCertificateRequest]) (*connect.Response[coursev1.GetCertificateResponse], error) {
	id, err := parseID("certificate_id", req.Msg.GetCertificateId())
	if err != nil {
		return nil, err
	}

	certificate, err := h.service.GetCertificate(ctx, id)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.GetCertificateResponse{
		Certificate: toProtoCertificate(certificate),
	}), nil
}

func toProtoEnrollment(enrollment *core.Enrollment) *coursev1.Enrollment {
	if enrollment == nil {
		return nil
	}

	progress := make([]*coursev1.ProgressEntry, 0, len(enrollment.Progress))
	for _, entry := range enrollment.Progress {
		progress = append(progress, toProtoProgressEntry(entry))
	}

	res := &coursev1.Enrollment{
		Id:              enrollment.ID.String(),
		StudentId:       enrollment.StudentID.String(),
		CourseId:        enrollment.CourseID.String(),
		Status:          toProtoEnrollmentStatus(enrollment.Status),
		Progress:        progress,
		ProgressPercent: enrollment.ProgressPercent,
	}

	if !enrollment.CreatedAt.IsZero() {
		res.CreatedAt = timestamppb.New(enrollment.CreatedAt)
	}
	if !enrollment.UpdatedAt.IsZero() {
		res.UpdatedAt = timestamppb.New(enrollment.UpdatedAt)
	}
	if enrollment.CompletedAt != nil {
		res.CompletedAt = timestamppb.New(*enrollment.CompletedAt)
	}

	return res
}

func toProtoProgressEntry(entry core.ProgressEntry) *coursev1.ProgressEntry {
	res := &coursev1.ProgressEntry{
		UnitId:    entry.UnitID.String(),
		UnitType:  toProtoProgressUnitType(entry.UnitType),
		Completed: entry.Completed,
		Score:     entry.Score,
		Passed:    entry.Passed,
		Attempts:  int32(entry.Attempts),
	}

	if entry.CompletedAt != nil {
		res.CompletedAt = timestamppb.New(*entry.CompletedAt)
	}

	return res
}

func toProtoEnrollmentStatus(status core.EnrollmentStatus) coursev1.EnrollmentStatus {
	switch status {
	case core.EnrollmentStatusActive:
		return coursev1.EnrollmentStatus_ENROLLMENT_STATUS_ACTIVE
	case core.EnrollmentStatusCompleted:
		return coursev1.EnrollmentStatus_ENROLLMENT_STATUS_COMPLETED
	case core.EnrollmentStatusCancelled:
		return coursev1.EnrollmentStatus_ENROLLMENT_STATUS_CANCELLED
	case core.EnrollmentStatusUnspecified:
		fallthrough
	default:
		return coursev1.EnrollmentStatus_ENROLLMENT_STATUS_UNSPECIFIED
	}
}

func toProtoProgressUnitType(unitType core.ProgressUnitType) coursev1.ProgressUnitType {
	switch unitType {
	case core.ProgressUnitTypeLesson:
		return coursev1.ProgressUnitType_PROGRESS_UNIT_TYPE_LESSON
	case core.ProgressUnitTypeQuiz:
		return coursev1.ProgressUnitType_PROGRESS_UNIT_TYPE_QUIZ
	case core.ProgressUnitTypeUnspecified:
		fallthrough
	default:
		return coursev1.ProgressUnitType_PROGRESS_UNIT_TYPE_UNSPECIFIED
	}
}

func toProtoCertificate(certificate *core.Certificate) *coursev1.Certificate {
	if certificate == nil {
		return nil
	}

	res := &coursev1.Certificate{
		Id:                certificate.ID.String(),
		EnrollmentId:      certificate.EnrollmentID.String(),
		UserId:            certificate.UserID.String(),
		CourseId:          certificate.CourseID.String(),
		CertificateNumber: certificate.CertificateNumber,
	}

	if !certificate.IssueDate.IsZero() {
		res.IssueDate = timestamppb.New(certificate.IssueDate)
	}
	if !certificate.CompletedAt.IsZero() {
		res.CompletedAt = timestamppb.New(certificate.CompletedAt)
	}

	return res
}
