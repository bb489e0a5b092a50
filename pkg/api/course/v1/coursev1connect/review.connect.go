// Code generated by protoc-gen-connect-go. DO NOT EDIT.
//
// Source: edulearn/course/v1/review.proto

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
	// ReviewServiceName is the fully-qualified name of the ReviewService service.
	ReviewServiceName = "edulearn.course.v1.ReviewService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
//
// Note that these are different from the fully-qualified method names used by
// google.golang.org/protobuf/reflect/protoreflect. To convert from these constants to
// reflection-formatted method names, remove the leading slash and convert the remaining slash to a
// period.
const (
	// ReviewServiceCreateReviewProcedure is the fully-qualified name of the ReviewService's
	// CreateReview RPC.
	ReviewServiceCreateReviewProcedure = "/edulearn.course.v1.ReviewService/CreateReview"
	// ReviewServiceUpdateReviewProcedure is the fully-qualified name of the ReviewService's
	// UpdateReview RPC.
	ReviewServiceUpdateReviewProcedure = "/edulearn.course.v1.ReviewService/UpdateReview"
	// ReviewServiceDeleteReviewProcedure is the fully-qualified name of the ReviewService's
	// DeleteReview RPC.
	ReviewServiceDeleteReviewProcedure = "/edulearn.course.v1.ReviewService/DeleteReview"
	// ReviewServiceListCourseReviewsProcedure is the fully-qualified name of the ReviewService's
	// ListCourseReviews RPC.
	ReviewServiceListCourseReviewsProcedure = "/edulearn.course.v1.ReviewService/ListCourseReviews"
)

// ReviewServiceClient is a client for the edulearn.course.v1.ReviewService service.
type ReviewServiceClient interface {
	CreateReview(context.Context, *connect.Request[v1.CreateReviewRequest]) (*connect.Response[v1.CreateReviewResponse], error)
	UpdateReview(context.Context, *connect.Request[v1.UpdateReviewRequest]) (*connect.Response[v1.UpdateReviewResponse], error)
	DeleteReview(context.Context, *connect.Request[v1.DeleteReviewRequest]) (*connect.Response[v1.DeleteReviewResponse], error)
	ListCourseReviews(context.Context, *connect.Request[v1.ListCourseReviewsRequest]) (*connect.Response[v1.ListCourseReviewsResponse], error)
}

// NewReviewServiceClient constructs a client for the edulearn.course.v1.ReviewService service. By
// default, it uses the Connect protocol with the binary Protobuf Codec, asks for gzipped responses,
// and sends uncompressed requests. To use the gRPC or gRPC-Web protocols, supply the
// connect.WithGRPC() or connect.WithGRPCWeb() options.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewReviewServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReviewServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	reviewServiceMethods := v1.File_edulearn_course_v1_review_proto.Services().ByName("ReviewService").Methods()
	return &reviewServiceClient{
		createReview: connect.NewClient[v1.CreateReviewRequest, v1.CreateReviewResponse](
			httpClient,
			baseURL+ReviewServiceCreateReviewProcedure,
			connect.WithSchema(reviewServiceMethods.ByName("CreateReview")),
			connect.WithClientOptions(opts...),
		),
		updateReview: connect.NewClient[v1.UpdateReviewRequest, v1.UpdateReviewResponse](
			httpClient,
			baseURL+ReviewServiceUpdateReviewProcedure,
			connect.WithSchema(reviewServiceMethods.ByName("UpdateReview")),
			connect.WithClientOptions(opts...),
		),
		deleteReview: connect.NewClient[v1.DeleteReviewRequest, v1.DeleteReviewResponse](
			httpClient,
			baseURL+ReviewServiceDeleteReviewProcedure,
			connect.WithSchema(reviewServiceMethods.ByName("DeleteReview")),
			connect.WithClientOptions(opts...),
		),
		listCourseReviews: connect.NewClient[v1.ListCourseReviewsRequest, v1.ListCourseReviewsResponse](
			httpClient,
			baseURL+ReviewServiceListCourseReviewsProcedure,
			connect.WithSchema(reviewServiceMethods.ByName("ListCourseReviews")),
			connect.WithClientOptions(opts...),
		),
	}
}

// reviewServiceClient implements ReviewServiceClient.
type reviewServiceClient struct {
	createReview      *connect.Client[v1.CreateReviewRequest, v1.CreateReviewResponse]
	updateReview      *connect.Client[v1.UpdateReviewRequest, v1.UpdateReviewResponse]
	deleteReview      *connect.Client[v1.DeleteReviewRequest, v1.DeleteReviewResponse]
	listCourseReviews *connect.Client[v1.ListCourseReviewsRequest, v1.ListCourseReviewsResponse]
}

// CreateReview calls edulearn.course.v1.ReviewService.CreateReview.
func (c *reviewServiceClient) CreateReview(ctx context.Context, req *connect.Request[v1.CreateReviewRequest]) (*connect.Response[v1.CreateReviewResponse], error) {
	return c.createReview.CallUnary(ctx, req)
}

// UpdateReview calls edulearn.course.v1.ReviewService.UpdateReview.
func (c *reviewServiceClient) UpdateReview(ctx context.Context, req *connect.Request[v1.UpdateReviewRequest]) (*connect.Response[v1.UpdateReviewResponse], error) {
	return c.updateReview.CallUnary(ctx, req)
}

// DeleteReview calls edulearn.course.v1.ReviewService.DeleteReview.
func (c *reviewServiceClient) DeleteReview(ctx context.Context, req *connect.Request[v1.DeleteReviewRequest]) (*connect.Response[v1.DeleteReviewResponse], error) {
	return c.deleteReview.CallUnary(ctx, req)
}

// ListCourseReviews calls edulearn.course.v1.ReviewService.ListCourseReviews.
func (c *reviewServiceClient) ListCourseReviews(ctx context.Context, req *connect.Request[v1.ListCourseReviewsRequest]) (*connect.Response[v1.ListCourseReviewsResponse], error) {
	return c.listCourseReviews.CallUnary(ctx, req)
}

// ReviewServiceHandler is an implementation of the edulearn.course.v1.ReviewService service.
type ReviewServiceHandler interface {
	CreateReview(context.Context, *connect.Request[v1.CreateReviewRequest]) (*connect.Response[v1.CreateReviewResponse], error)
	UpdateReview(context.Context, *connect.Request[v1.UpdateReviewRequest]) (*connect.Response[v1.UpdateReviewResponse], error)
	DeleteReview(context.Context, *connect.Request[v1.DeleteReviewRequest]) (*connect.Response[v1.DeleteReviewResponse], error)
	ListCourseReviews(context.Context, *connect.Request[v1.ListCourseReviewsRequest]) (*connect.Response[v1.ListCourseReviewsResponse], error)
}

// NewReviewServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the binary Protobuf
// and JSON codecs. They also support gzip compression.
func NewReviewServiceHandler(svc ReviewServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	reviewServiceMethods := v1.File_edulearn_course_v1_review_proto.Services().ByName("ReviewService").Methods()
	reviewServiceCreateReviewHandler := connect.NewUnaryHandler(
		ReviewServiceCreateReviewProcedure,
		svc.CreateReview,
		connect.WithSchema(reviewServiceMethods.ByName("CreateReview")),
		connect.WithHandlerOptions(opts...),
	)
	reviewServiceUpdateReviewHandler := connect.NewUnaryHandler(
		ReviewServiceUpdateReviewProcedure,
		svc.UpdateReview,
		connect.WithSchema(reviewServiceMethods.ByName("UpdateReview")),
		connect.WithHandlerOptions(opts...),
	)
	reviewServiceDeleteReviewHandler := connect.NewUnaryHandler(
		ReviewServiceDeleteReviewProcedure,
		svc.DeleteReview,
		connect.WithSchema(reviewServiceMethods.ByName("DeleteReview")),
		connect.WithHandlerOptions(opts...),
	)
	reviewServiceListCourseReviewsHandler := connect.NewUnaryHandler(
		ReviewServiceListCourseReviewsProcedure,
		svc.ListCourseReviews,
		connect.WithSchema(reviewServiceMethods.ByName("ListCourseReviews")),
		connect.WithHandlerOptions(opts...),
	)
	return "/edulearn.course.v1.ReviewService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ReviewServiceCreateReviewProcedure:
			reviewServiceCreateReviewHandler.ServeHTTP(w, r)
		case ReviewServiceUpdateReviewProcedure:
			reviewServiceUpdateReviewHandler.ServeHTTP(w, r)
		case ReviewServiceDeleteReviewProcedure:
			reviewServiceDeleteReviewHandler.ServeHTTP(w, r)
		case ReviewServiceListCourseReviewsProcedure:
			reviewServiceListCourseReviewsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedReviewServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedReviewServiceHandler struct{}

func (UnimplementedReviewServiceHandler) CreateReview(context.Context, *connect.Request[v1.CreateReviewRequest]) (*connect.Response[v1.CreateReviewResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.ReviewService.CreateReview is not implemented"))
}

func (UnimplementedReviewServiceHandler) UpdateReview(context.Context, *connect.Request[v1.UpdateReviewRequest]) (*connect.Response[v1.UpdateReviewResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.ReviewService.UpdateReview is not implemented"))
}

func (UnimplementedReviewServiceHandler) DeleteReview(context.Context, *connect.Request[v1.DeleteReviewRequest]) (*connect.Response[v1.DeleteReviewResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.ReviewService.DeleteReview is not implemented"))
}

func (UnimplementedReviewServiceHandler) ListCourseReviews(context.Context, *connect.Request[v1.ListCourseReviewsRequest]) (*connect.Response[v1.ListCourseReviewsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.ReviewService.ListCourseReviews is not implemented"))
}
