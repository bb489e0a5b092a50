// Code generated by protoc-gen-connect-go. DO NOT EDIT.
//
// Source: edulearn/course/v1/enrollment.proto

package coursev1connect

import (
	connect "connectrpc.com/connect"
	context "context"
	errors "errors"
	v1 "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/pkg/api/course/v1"
	http "net/http"
	strings "strings"
)

// This is a compile-time assertion to ensure that this generated file and the connect package are
// compatible. If you get a compiler error that this constant is not defined, this code was
// generated with a version of connect newer than the one compiled into your binary. You can fix the
// problem by either regenerating this code with an older version of connect or updating the connect
// version compiled into your binary.
const _ = connect.IsAtLeastVersion1_13_0

const (
	// EnrollmentServiceName is the fully-qualified name of the EnrollmentService service.
	EnrollmentServiceName = "edulearn.course.v1.EnrollmentService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
//
// Note that these are different from the fully-qualified method names used by
// google.golang.org/protobuf/reflect/protoreflect. To convert from these constants to
// reflection-formatted method names, remove the leading slash and convert the remaining slash to a
// period.
const (
	// EnrollmentServiceEnrollProcedure is the fully-qualified name of the EnrollmentService's Enroll
	// RPC.
	EnrollmentServiceEnrollProcedure = "/edulearn.course.v1.EnrollmentService/Enroll"
	// EnrollmentServiceGetEnrollmentProcedure is the fully-qualified name of the EnrollmentService's
	// GetEnrollment RPC.
	EnrollmentServiceGetEnrollmentProcedure = "/edulearn.course.v1.EnrollmentService/GetEnrollment"
	// EnrollmentServiceListStudentEnrollmentsProcedure is the fully-qualified name of the
	// EnrollmentService's ListStudentEnrollments RPC.
	EnrollmentServiceListStudentEnrollmentsProcedure = "/edulearn.course.v1.EnrollmentService/ListStudentEnrollments"
	// EnrollmentServiceCompleteLessonProcedure is the fully-qualified name of the EnrollmentService's
	// CompleteLesson RPC.
	EnrollmentServiceCompleteLessonProcedure = "/edulearn.course.v1.EnrollmentService/CompleteLesson"
	// EnrollmentServiceSubmitQuizProcedure is the fully-qualified name of the EnrollmentService's
	// SubmitQuiz RPC.
	EnrollmentServiceSubmitQuizProcedure = "/edulearn.course.v1.EnrollmentService/SubmitQuiz"
	// EnrollmentServiceIssueCertificateProcedure is the fully-qualified name of the EnrollmentService's
	// IssueCertificate RPC.
	EnrollmentServiceIssueCertificateProcedure = "/edulearn.course.v1.EnrollmentService/IssueCertificate"
	// EnrollmentServiceGetCertificateProcedure is the fully-qualified name of the EnrollmentService's
	// GetCertificate RPC.
	EnrollmentServiceGetCertificateProcedure = "/edulearn.course.v1.EnrollmentService/GetCertificate"
)

// EnrollmentServiceClient is a client for the edulearn.course.v1.EnrollmentService service.
type EnrollmentServiceClient interface {
	Enroll(context.Context, *connect.Request[v1.EnrollRequest]) (*connect.Response[v1.EnrollResponse], error)
	GetEnrollment(context.Context, *connect.Request[v1.GetEnrollmentRequest]) (*connect.Response[v1.GetEnrollmentResponse], error)
	ListStudentEnrollments(context.Context, *connect.Request[v1.ListStudentEnrollmentsRequest]) (*connect.Response[v1.ListStudentEnrollmentsResponse], error)
	CompleteLesson(context.Context, *connect.Request[v1.CompleteLessonRequest]) (*connect.Response[v1.CompleteLessonResponse], error)
	SubmitQuiz(context.Context, *connect.Request[v1.SubmitQuizRequest]) (*connect.Response[v1.SubmitQuizResponse], error)
	IssueCertificate(context.Context, *connect.Request[v1.IssueCertificateRequest]) (*connect.Response[v1.IssueCertificateResponse], error)
	GetCertificate(context.Context, *connect.Request[v1.GetCertificateRequest]) (*connect.Response[v1.GetCertificateResponse], error)
}

// NewEnrollmentServiceClient constructs a client for the edulearn.course.v1.EnrollmentService
// service. By default, it uses the Connect protocol with the binary Protobuf Codec, asks for
// gzipped responses, and sends uncompressed requests. To use the gRPC or gRPC-Web protocols, supply
// the connect.WithGRPC() or connect.WithGRPCWeb() options.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewEnrollmentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) EnrollmentServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	enrollmentServiceMethods := v1.File_edulearn_course_v1_enrollment_proto.Services().ByName("EnrollmentService").Methods()
	return &enrollmentServiceClient{
		enroll: connect.NewClient[v1.EnrollRequest, v1.EnrollResponse](
			httpClient,
			baseURL+EnrollmentServiceEnrollProcedure,
			connect.WithSchema(enrollmentServiceMethods.ByName("Enroll")),
			connect.WithClientOptions(opts...),
		),
		getEnrollment: connect.NewClient[v1.GetEnrollmentRequest, v1.GetEnrollmentResponse](
			httpClient,
			baseURL+EnrollmentServiceGetEnrollmentProcedure,
			connect.WithSchema(enrollmentServiceMethods.ByName("GetEnrollment")),
			connect.WithClientOptions(opts...),
		),
		listStudentEnrollments: connect.NewClient[v1.ListStudentEnrollmentsRequest, v1.ListStudentEnrollmentsResponse](
			httpClient,
			baseURL+EnrollmentServiceListStudentEnrollmentsProcedure,
			connect.WithSchema(enrollmentServiceMethods.ByName("ListStudentEnrollments")),
			connect.WithClientOptions(opts...),
		),
		completeLesson: connect.NewClient[v1.CompleteLessonRequest, v1.CompleteLessonResponse](
			httpClient,
			baseURL+EnrollmentServiceCompleteLessonProcedure,
			connect.WithSchema(enrollmentServiceMethods.ByName("CompleteLesson")),
			connect.WithClientOptions(opts...),
		),
		submitQuiz: connect.NewClient[v1.SubmitQuizRequest, v1.SubmitQuizResponse](
			httpClient,
			baseURL+EnrollmentServiceSubmitQuizProcedure,
			connect.WithSchema(enrollmentServiceMethods.ByName("SubmitQuiz")),
			connect.WithClientOptions(opts...),
		),
		issueCertificate: connect.NewClient[v1.IssueCertificateRequest, v1.IssueCertificateResponse](
			httpClient,
			baseURL+EnrollmentServiceIssueCertificateProcedure,
			connect.WithSchema(enrollmentServiceMethods.ByName("IssueCertificate")),
			connect.WithClientOptions(opts...),
		),
		getCertificate: connect.NewClient[v1.GetCertificateRequest, v1.GetCertificateResponse](
			httpClient,
			baseURL+EnrollmentServiceGetCertificateProcedure,
			connect.WithSchema(enrollmentServiceMethods.ByName("GetCertificate")),
			connect.WithClientOptions(opts...),
		),
	}
}

// enrollmentServiceClient implements EnrollmentServiceClient.
type enrollmentServiceClient struct {
	enroll                 *connect.Client[v1.EnrollRequest, v1.EnrollResponse]
	getEnrollment          *connect.Client[v1.GetEnrollmentRequest, v1.GetEnrollmentResponse]
	listStudentEnrollments *connect.Client[v1.ListStudentEnrollmentsRequest, v1.ListStudentEnrollmentsResponse]
	completeLesson         *connect.Client[v1.CompleteLessonRequest, v1.CompleteLessonResponse]
	submitQuiz             *connect.Client[v1.SubmitQuizRequest, v1.SubmitQuizResponse]
	issueCertificate       *connect.Client[v1.IssueCertificateRequest, v1.IssueCertificateResponse]
	getCertificate         *connect.Client[v1.GetCertificateRequest, v1.GetCertificateResponse]
}

// Enroll calls edulearn.course.v1.EnrollmentService.Enroll.
func (c *enrollmentServiceClient) Enroll(ctx context.Context, req *connect.Request[v1.EnrollRequest]) (*connect.Response[v1.EnrollResponse], error) {
	return c.enroll.CallUnary(ctx, req)
}

// GetEnrollment calls edulearn.course.v1.EnrollmentService.GetEnrollment.
func (c *enrollmentServiceClient) GetEnrollment(ctx context.Context, req *connect.Request[v1.GetEnrollmentRequest]) (*connect.Response[v1.GetEnrollmentResponse], error) {
	return c.getEnrollment.CallUnary(ctx, req)
}

// ListStudentEnrollments calls edulearn.course.v1.EnrollmentService.ListStudentEnrollments.
func (c *enrollmentServiceClient) ListStudentEnrollments(ctx context.Context, req *connect.Request[v1.ListStudentEnrollmentsRequest]) (*connect.Response[v1.ListStudentEnrollmentsResponse], error) {
	return c.listStudentEnrollments.CallUnary(ctx, req)
}

// CompleteLesson calls edulearn.course.v1.EnrollmentService.CompleteLesson.
func (c *enrollmentServiceClient) CompleteLesson(ctx context.Context, req *connect.Request[v1.CompleteLessonRequest]) (*connect.Response[v1.CompleteLessonResponse], error) {
	return c.completeLesson.CallUnary(ctx, req)
}

// SubmitQuiz calls edulearn.course.v1.EnrollmentService.SubmitQuiz.
func (c *enrollmentServiceClient) SubmitQuiz(ctx context.Context, req *connect.Request[v1.SubmitQuizRequest]) (*connect.Response[v1.SubmitQuizResponse], error) {
	return c.submitQuiz.CallUnary(ctx, req)
}

// IssueCertificate calls edulearn.course.v1.EnrollmentService.IssueCertificate.
func (c *enrollmentServiceClient) IssueCertificate(ctx context.Context, req *connect.Request[v1.IssueCertificateRequest]) (*connect.Response[v1.IssueCertificateResponse], error) {
	return c.issueCertificate.CallUnary(ctx, req)
}

// GetCertificate calls edulearn.course.v1.EnrollmentService.GetCertificate.
func (c *enrollmentServiceClient) GetCertificate(ctx context.Context, req *connect.Request[v1.GetCertificateRequest]) (*connect.Response[v1.GetCertificateResponse], error) {
	return c.getCertificate.CallUnary(ctx, req)
}

// EnrollmentServiceHandler is an implementation of the edulearn.course.v1.EnrollmentService
// service.
type EnrollmentServiceHandler interface {
	Enroll(context.Context, *connect.Request[v1.EnrollRequest]) (*connect.Response[v1.EnrollResponse], error)
	GetEnrollment(context.Context, *connect.Request[v1.GetEnrollmentRequest]) (*connect.Response[v1.GetEnrollmentResponse], error)
	ListStudentEnrollments(context.Context, *connect.Request[v1.ListStudentEnrollmentsRequest]) (*connect.Response[v1.ListStudentEnrollmentsResponse], error)
	CompleteLesson(context.Context, *connect.Request[v1.CompleteLessonRequest]) (*connect.Response[v1.CompleteLessonResponse], error)
	SubmitQuiz(context.Context, *connect.Request[v1.SubmitQuizRequest]) (*connect.Response[v1.SubmitQuizResponse], error)
	IssueCertificate(context.Context, *connect.Request[v1.IssueCertificateRequest]) (*connect.Response[v1.IssueCertificateResponse], error)
	GetCertificate(context.Context, *connect.Request[v1.GetCertificateRequest]) (*connect.Response[v1.GetCertificateResponse], error)
}

// NewEnrollmentServiceHandler builds an HTTP handler from the service implementation. It returns
// the path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the binary Protobuf
// and JSON codecs. They also support gzip compression.
func NewEnrollmentServiceHandler(svc EnrollmentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	enrollmentServiceMethods := v1.File_edulearn_course_v1_enrollment_proto.Services().ByName("EnrollmentService").Methods()
	enrollmentServiceEnrollHandler := connect.NewUnaryHandler(
		EnrollmentServiceEnrollProcedure,
		svc.Enroll,
		connect.WithSchema(enrollmentServiceMethods.ByName("Enroll")),
		connect.WithHandlerOptions(opts...),
	)
	enrollmentServiceGetEnrollmentHandler := connect.NewUnaryHandler(
		EnrollmentServiceGetEnrollmentProcedure,
		svc.GetEnrollment,
		connect.WithSchema(enrollmentServiceMethods.ByName("GetEnrollment")),
		connect.WithHandlerOptions(opts...),
	)
	enrollmentServiceListStudentEnrollmentsHandler := connect.NewUnaryHandler(
		EnrollmentServiceListStudentEnrollmentsProcedure,
		svc.ListStudentEnrollments,
		connect.WithSchema(enrollmentServiceMethods.ByName("ListStudentEnrollments")),
		connect.WithHandlerOptions(opts...),
	)
	enrollmentServiceCompleteLessonHandler := connect.NewUnaryHandler(
		EnrollmentServiceCompleteLessonProcedure,
		svc.CompleteLesson,
		connect.WithSchema(enrollmentServiceMethods.ByName("CompleteLesson")),
		connect.WithHandlerOptions(opts...),
	)
	enrollmentServiceSubmitQuizHandler := connect.NewUnaryHandler(
		EnrollmentServiceSubmitQuizProcedure,
		svc.SubmitQuiz,
		connect.WithSchema(enrollmentServiceMethods.ByName("SubmitQuiz")),
		connect.WithHandlerOptions(opts...),
	)
	enrollmentServiceIssueCertificateHandler := connect.NewUnaryHandler(
		EnrollmentServiceIssueCertificateProcedure,
		svc.IssueCertificate,
		connect.WithSchema(enrollmentServiceMethods.ByName("IssueCertificate")),
		connect.WithHandlerOptions(opts...),
	)
	enrollmentServiceGetCertificateHandler := connect.NewUnaryHandler(
		EnrollmentServiceGetCertificateProcedure,
		svc.GetCertificate,
		connect.WithSchema(enrollmentServiceMethods.ByName("GetCertificate")),
		connect.WithHandlerOptions(opts...),
	)
	return "/edulearn.course.v1.EnrollmentService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case EnrollmentServiceEnrollProcedure:
			enrollmentServiceEnrollHandler.ServeHTTP(w, r)
		case EnrollmentServiceGetEnrollmentProcedure:
			enrollmentServiceGetEnrollmentHandler.ServeHTTP(w, r)
		case EnrollmentServiceListStudentEnrollmentsProcedure:
			enrollmentServiceListStudentEnrollmentsHandler.ServeHTTP(w, r)
		case EnrollmentServiceCompleteLessonProcedure:
			enrollmentServiceCompleteLessonHandler.ServeHTTP(w, r)
		case EnrollmentServiceSubmitQuizProcedure:
			enrollmentServiceSubmitQuizHandler.ServeHTTP(w, r)
		case EnrollmentServiceIssueCertificateProcedure:
			enrollmentServiceIssueCertificateHandler.ServeHTTP(w, r)
		case EnrollmentServiceGetCertificateProcedure:
			enrollmentServiceGetCertificateHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedEnrollmentServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedEnrollmentServiceHandler struct{}

func (UnimplementedEnrollmentServiceHandler) Enroll(context.Context, *connect.Request[v1.EnrollRequest]) (*connect.Response[v1.EnrollResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.EnrollmentService.Enroll is not implemented"))
}

func (UnimplementedEnrollmentServiceHandler) GetEnrollment(context.Context, *connect.Request[v1.GetEnrollmentRequest]) (*connect.Response[v1.GetEnrollmentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.EnrollmentService.GetEnrollment is not implemented"))
}

func (UnimplementedEnrollmentServiceHandler) ListStudentEnrollments(context.Context, *connect.Request[v1.ListStudentEnrollmentsRequest]) (*connect.Response[v1.ListStudentEnrollmentsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.EnrollmentService.ListStudentEnrollments is not implemented"))
}

func (UnimplementedEnrollmentServiceHandler) CompleteLesson(context.Context, *connect.Request[v1.CompleteLessonRequest]) (*connect.Response[v1.CompleteLessonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.EnrollmentService.CompleteLesson is not implemented"))
}

func (UnimplementedEnrollmentServiceHandler) SubmitQuiz(context.Context, *connect.Request[v1.SubmitQuizRequest]) (*connect.Response[v1.SubmitQuizResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.EnrollmentService.SubmitQuiz is not implemented"))
}

func (UnimplementedEnrollmentServiceHandler) IssueCertificate(context.Context, *connect.Request[v1.IssueCertificateRequest]) (*connect.Response[v1.IssueCertificateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.EnrollmentService.IssueCertificate is not implemented"))
}

func (UnimplementedEnrollmentServiceHandler) GetCertificate(context.Context, *connect.Request[v1.GetCertificateRequest]) (*connect.Response[v1.GetCertificateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.EnrollmentService.GetCertificate is not implemented"))
}
