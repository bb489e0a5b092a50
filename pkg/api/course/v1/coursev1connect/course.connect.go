// Code generated by protoc-gen-connect-go. DO NOT EDIT.
//
// Source: edulearn/course/v1/course.proto

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
	// CourseServiceName is the fully-qualified name of the CourseService service.
	CourseServiceName = "edulearn.course.v1.CourseService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
//
// Note that these are different from the fully-qualified method names used by
// google.golang.org/protobuf/reflect/protoreflect. To convert from these constants to
// reflection-formatted method names, remove the leading slash and convert the remaining slash to a
// period.
const (
	// CourseServiceCreateCourseProcedure is the fully-qualified name of the CourseService's
	// CreateCourse RPC.
	CourseServiceCreateCourseProcedure = "/edulearn.course.v1.CourseService/CreateCourse"
	// CourseServiceGetCourseProcedure is the fully-qualified name of the CourseService's GetCourse RPC.
	CourseServiceGetCourseProcedure = "/edulearn.course.v1.CourseService/GetCourse"
	// CourseServiceListCoursesProcedure is the fully-qualified name of the CourseService's ListCourses
	// RPC.
	CourseServiceListCoursesProcedure = "/edulearn.course.v1.CourseService/ListCourses"
	// CourseServiceUpdateCourseProcedure is the fully-qualified name of the CourseService's
	// UpdateCourse RPC.
	CourseServiceUpdateCourseProcedure = "/edulearn.course.v1.CourseService/UpdateCourse"
	// CourseServicePublishCourseProcedure is the fully-qualified name of the CourseService's
	// PublishCourse RPC.
	CourseServicePublishCourseProcedure = "/edulearn.course.v1.CourseService/PublishCourse"
	// CourseServiceUnpublishCourseProcedure is the fully-qualified name of the CourseService's
	// UnpublishCourse RPC.
	CourseServiceUnpublishCourseProcedure = "/edulearn.course.v1.CourseService/UnpublishCourse"
	// CourseServiceDeleteCourseProcedure is the fully-qualified name of the CourseService's
	// DeleteCourse RPC.
	CourseServiceDeleteCourseProcedure = "/edulearn.course.v1.CourseService/DeleteCourse"
)

// CourseServiceClient is a client for the edulearn.course.v1.CourseService service.
type CourseServiceClient interface {
	CreateCourse(context.Context, *connect.Request[v1.CreateCourseRequest]) (*connect.Response[v1.CreateCourseResponse], error)
	GetCourse(context.Context, *connect.Request[v1.GetCourseRequest]) (*connect.Response[v1.GetCourseResponse], error)
	ListCourses(context.Context, *connect.Request[v1.ListCoursesRequest]) (*connect.Response[v1.ListCoursesResponse], error)
	UpdateCourse(context.Context, *connect.Request[v1.UpdateCourseRequest]) (*connect.Response[v1.UpdateCourseResponse], error)
	PublishCourse(context.Context, *connect.Request[v1.PublishCourseRequest]) (*connect.Response[v1.PublishCourseResponse], error)
	UnpublishCourse(context.Context, *connect.Request[v1.UnpublishCourseRequest]) (*connect.Response[v1.UnpublishCourseResponse], error)
	DeleteCourse(context.Context, *connect.Request[v1.DeleteCourseRequest]) (*connect.Response[v1.DeleteCourseResponse], error)
}

// NewCourseServiceClient constructs a client for the edulearn.course.v1.CourseService service. By
// default, it uses the Connect protocol with the binary Protobuf Codec, asks for gzipped responses,
// and sends uncompressed requests. To use the gRPC or gRPC-Web protocols, supply the
// connect.WithGRPC() or connect.WithGRPCWeb() options.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewCourseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CourseServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	courseServiceMethods := v1.File_edulearn_course_v1_course_proto.Services().ByName("CourseService").Methods()
	return &courseServiceClient{
		createCourse: connect.NewClient[v1.CreateCourseRequest, v1.CreateCourseResponse](
			httpClient,
			baseURL+CourseServiceCreateCourseProcedure,
			connect.WithSchema(courseServiceMethods.ByName("CreateCourse")),
			connect.WithClientOptions(opts...),
		),
		getCourse: connect.NewClient[v1.GetCourseRequest, v1.GetCourseResponse](
			httpClient,
			baseURL+CourseServiceGetCourseProcedure,
			connect.WithSchema(courseServiceMethods.ByName("GetCourse")),
			connect.WithClientOptions(opts...),
		),
		listCourses: connect.NewClient[v1.ListCoursesRequest, v1.ListCoursesResponse](
			httpClient,
			baseURL+CourseServiceListCoursesProcedure,
			connect.WithSchema(courseServiceMethods.ByName("ListCourses")),
			connect.WithClientOptions(opts...),
		),
		updateCourse: connect.NewClient[v1.UpdateCourseRequest, v1.UpdateCourseResponse](
			httpClient,
			baseURL+CourseServiceUpdateCourseProcedure,
			connect.WithSchema(courseServiceMethods.ByName("UpdateCourse")),
			connect.WithClientOptions(opts...),
		),
		publishCourse: connect.NewClient[v1.PublishCourseRequest, v1.PublishCourseResponse](
			httpClient,
			baseURL+CourseServicePublishCourseProcedure,
			connect.WithSchema(courseServiceMethods.ByName("PublishCourse")),
			connect.WithClientOptions(opts...),
		),
		unpublishCourse: connect.NewClient[v1.UnpublishCourseRequest, v1.UnpublishCourseResponse](
			httpClient,
			baseURL+CourseServiceUnpublishCourseProcedure,
			connect.WithSchema(courseServiceMethods.ByName("UnpublishCourse")),
			connect.WithClientOptions(opts...),
		),
		deleteCourse: connect.NewClient[v1.DeleteCourseRequest, v1.DeleteCourseResponse](
			httpClient,
			baseURL+CourseServiceDeleteCourseProcedure,
			connect.WithSchema(courseServiceMethods.ByName("DeleteCourse")),
			connect.WithClientOptions(opts...),
		),
	}
}

// courseServiceClient implements CourseServiceClient.
type courseServiceClient struct {
	createCourse    *connect.Client[v1.CreateCourseRequest, v1.CreateCourseResponse]
	getCourse       *connect.Client[v1.GetCourseRequest, v1.GetCourseResponse]
	listCourses     *connect.Client[v1.ListCoursesRequest, v1.ListCoursesResponse]
	updateCourse    *connect.Client[v1.UpdateCourseRequest, v1.UpdateCourseResponse]
	publishCourse   *connect.Client[v1.PublishCourseRequest, v1.PublishCourseResponse]
	unpublishCourse *connect.Client[v1.UnpublishCourseRequest, v1.UnpublishCourseResponse]
	deleteCourse    *connect.Client[v1.DeleteCourseRequest, v1.DeleteCourseResponse]
}

// CreateCourse calls edulearn.course.v1.CourseService.CreateCourse.
func (c *courseServiceClient) CreateCourse(ctx context.Context, req *connect.Request[v1.CreateCourseRequest]) (*connect.Response[v1.CreateCourseResponse], error) {
	return c.createCourse.CallUnary(ctx, req)
}

// GetCourse calls edulearn.course.v1.CourseService.GetCourse.
func (c *courseServiceClient) GetCourse(ctx context.Context, req *connect.Request[v1.GetCourseRequest]) (*connect.Response[v1.GetCourseResponse], error) {
	return c.getCourse.CallUnary(ctx, req)
}

// ListCourses calls edulearn.course.v1.CourseService.ListCourses.
func (c *courseServiceClient) ListCourses(ctx context.Context, req *connect.Request[v1.ListCoursesRequest]) (*connect.Response[v1.ListCoursesResponse], error) {
	return c.listCourses.CallUnary(ctx, req)
}

// UpdateCourse calls edulearn.course.v1.CourseService.UpdateCourse.
func (c *courseServiceClient) UpdateCourse(ctx context.Context, req *connect.Request[v1.UpdateCourseRequest]) (*connect.Response[v1.UpdateCourseResponse], error) {
	return c.updateCourse.CallUnary(ctx, req)
}

// PublishCourse calls edulearn.course.v1.CourseService.PublishCourse.
func (c *courseServiceClient) PublishCourse(ctx context.Context, req *connect.Request[v1.PublishCourseRequest]) (*connect.Response[v1.PublishCourseResponse], error) {
	return c.publishCourse.CallUnary(ctx, req)
}

// UnpublishCourse calls edulearn.course.v1.CourseService.UnpublishCourse.
func (c *courseServiceClient) UnpublishCourse(ctx context.Context, req *connect.Request[v1.UnpublishCourseRequest]) (*connect.Response[v1.UnpublishCourseResponse], error) {
	return c.unpublishCourse.CallUnary(ctx, req)
}

// DeleteCourse calls edulearn.course.v1.CourseService.DeleteCourse.
func (c *courseServiceClient) DeleteCourse(ctx context.Context, req *connect.Request[v1.DeleteCourseRequest]) (*connect.Response[v1.DeleteCourseResponse], error) {
	return c.deleteCourse.CallUnary(ctx, req)
}

// CourseServiceHandler is an implementation of the edulearn.course.v1.CourseService service.
type CourseServiceHandler interface {
	CreateCourse(context.Context, *connect.Request[v1.CreateCourseRequest]) (*connect.Response[v1.CreateCourseResponse], error)
	GetCourse(context.Context, *connect.Request[v1.GetCourseRequest]) (*connect.Response[v1.GetCourseResponse], error)
	ListCourses(context.Context, *connect.Request[v1.ListCoursesRequest]) (*connect.Response[v1.ListCoursesResponse], error)
	UpdateCourse(context.Context, *connect.Request[v1.UpdateCourseRequest]) (*connect.Response[v1.UpdateCourseResponse], error)
	PublishCourse(context.Context, *connect.Request[v1.PublishCourseRequest]) (*connect.Response[v1.PublishCourseResponse], error)
	UnpublishCourse(context.Context, *connect.Request[v1.UnpublishCourseRequest]) (*connect.Response[v1.UnpublishCourseResponse], error)
	DeleteCourse(context.Context, *connect.Request[v1.DeleteCourseRequest]) (*connect.Response[v1.DeleteCourseResponse], error)
}

// NewCourseServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the binary Protobuf
// and JSON codecs. They also support gzip compression.
func NewCourseServiceHandler(svc CourseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	courseServiceMethods := v1.File_edulearn_course_v1_course_proto.Services().ByName("CourseService").Methods()
	courseServiceCreateCourseHandler := connect.NewUnaryHandler(
		CourseServiceCreateCourseProcedure,
		svc.CreateCourse,
		connect.WithSchema(courseServiceMethods.ByName("CreateCourse")),
		connect.WithHandlerOptions(opts...),
	)
	courseServiceGetCourseHandler := connect.NewUnaryHandler(
		CourseServiceGetCourseProcedure,
		svc.GetCourse,
		connect.WithSchema(courseServiceMethods.ByName("GetCourse")),
		connect.WithHandlerOptions(opts...),
	)
	courseServiceListCoursesHandler := connect.NewUnaryHandler(
		CourseServiceListCoursesProcedure,
		svc.ListCourses,
		connect.WithSchema(courseServiceMethods.ByName("ListCourses")),
		connect.WithHandlerOptions(opts...),
	)
	courseServiceUpdateCourseHandler := connect.NewUnaryHandler(
		CourseServiceUpdateCourseProcedure,
		svc.UpdateCourse,
		connect.WithSchema(courseServiceMethods.ByName("UpdateCourse")),
		connect.WithHandlerOptions(opts...),
	)
	courseServicePublishCourseHandler := connect.NewUnaryHandler(
		CourseServicePublishCourseProcedure,
		svc.PublishCourse,
		connect.WithSchema(courseServiceMethods.ByName("PublishCourse")),
		connect.WithHandlerOptions(opts...),
	)
	courseServiceUnpublishCourseHandler := connect.NewUnaryHandler(
		CourseServiceUnpublishCourseProcedure,
		svc.UnpublishCourse,
		connect.WithSchema(courseServiceMethods.ByName("UnpublishCourse")),
		connect.WithHandlerOptions(opts...),
	)
	courseServiceDeleteCourseHandler := connect.NewUnaryHandler(
		CourseServiceDeleteCourseProcedure,
		svc.DeleteCourse,
		connect.WithSchema(courseServiceMethods.ByName("DeleteCourse")),
		connect.WithHandlerOptions(opts...),
	)
	return "/edulearn.course.v1.CourseService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CourseServiceCreateCourseProcedure:
			courseServiceCreateCourseHandler.ServeHTTP(w, r)
		case CourseServiceGetCourseProcedure:
			courseServiceGetCourseHandler.ServeHTTP(w, r)
		case CourseServiceListCoursesProcedure:
			courseServiceListCoursesHandler.ServeHTTP(w, r)
		case CourseServiceUpdateCourseProcedure:
			courseServiceUpdateCourseHandler.ServeHTTP(w, r)
		case CourseServicePublishCourseProcedure:
			courseServicePublishCourseHandler.ServeHTTP(w, r)
		case CourseServiceUnpublishCourseProcedure:
			courseServiceUnpublishCourseHandler.ServeHTTP(w, r)
		case CourseServiceDeleteCourseProcedure:
			courseServiceDeleteCourseHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedCourseServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCourseServiceHandler struct{}

func (UnimplementedCourseServiceHandler) CreateCourse(context.Context, *connect.Request[v1.CreateCourseRequest]) (*connect.Response[v1.CreateCourseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CourseService.CreateCourse is not implemented"))
}

func (UnimplementedCourseServiceHandler) GetCourse(context.Context, *connect.Request[v1.GetCourseRequest]) (*connect.Response[v1.GetCourseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CourseService.GetCourse is not implemented"))
}

func (UnimplementedCourseServiceHandler) ListCourses(context.Context, *connect.Request[v1.ListCoursesRequest]) (*connect.Response[v1.ListCoursesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CourseService.ListCourses is not implemented"))
}

func (UnimplementedCourseServiceHandler) UpdateCourse(context.Context, *connect.Request[v1.UpdateCourseRequest]) (*connect.Response[v1.UpdateCourseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CourseService.UpdateCourse is not implemented"))
}

func (UnimplementedCourseServiceHandler) PublishCourse(context.Context, *connect.Request[v1.PublishCourseRequest]) (*connect.Response[v1.PublishCourseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CourseService.PublishCourse is not implemented"))
}

func (UnimplementedCourseServiceHandler) UnpublishCourse(context.Context, *connect.Request[v1.UnpublishCourseRequest]) (*connect.Response[v1.UnpublishCourseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CourseService.UnpublishCourse is not implemented"))
}

func (UnimplementedCourseServiceHandler) DeleteCourse(context.Context, *connect.Request[v1.DeleteCourseRequest]) (*connect.Response[v1.DeleteCourseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CourseService.DeleteCourse is not implemented"))
}
