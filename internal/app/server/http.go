package server

import (
	"net/http"

	protovalidate "buf.build/go/protovalidate"
	"connectrpc.com/connect"
	"connectrpc.com/otelconnect"
	"go.uber.org/zap"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/adapter/transport"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/pkg/api/course/v1/coursev1connect"
)

// NewHTTPHandler wires the Connect handlers into a ServeMux ready for serving.
func NewHTTPHandler(
	courseHandler *transport.CourseHandler,
	curriculumHandler *transport.CurriculumHandler,
	reviewHandler *transport.ReviewHandler,
	enrollmentHandler *transport.EnrollmentHandler,
	validator protovalidate.Validator,
	logger *zap.Logger,
) (http.Handler, error) {
	otelInterceptor, err := otelconnect.NewInterceptor()
	if err != nil {
		return nil, err
	}

	opts := connect.WithInterceptors(
		otelInterceptor,
		transport.NewLoggingInterceptor(logger),
		transport.NewValidationInterceptor(validator),
		transport.NewErrorInterceptor(),
	)

	mux := http.NewServeMux()
	mux.Handle(coursev1connect.NewCourseServiceHandler(courseHandler, opts))
	mux.Handle(coursev1connect.NewCurriculumServiceHandler(curriculumHandler, opts))
	mux.Handle(coursev1connect.NewReviewServiceHandler(reviewHandler, opts))
	mux.Handle(coursev1connect.NewEnrollmentServiceHandler(enrollmentHandler, opts))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux, nil
}
