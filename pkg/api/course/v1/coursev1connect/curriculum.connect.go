// Code generated by protoc-gen-connect-go. DO NOT EDIT.
//
// Source: edulearn/course/v1/curriculum.proto

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
	// CurriculumServiceName is the fully-qualified name of the CurriculumService service.
	CurriculumServiceName = "edulearn.course.v1.CurriculumService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
//
// Note that these are different from the fully-qualified method names used by
// google.golang.org/protobuf/reflect/protoreflect. To convert from these constants to
// reflection-formatted method names, remove the leading slash and convert the remaining slash to a
// period.
const (
	// CurriculumServiceCreateSectionProcedure is the fully-qualified name of the CurriculumService's
	// CreateSection RPC.
	CurriculumServiceCreateSectionProcedure = "/edulearn.course.v1.CurriculumService/CreateSection"
	// CurriculumServiceUpdateSectionProcedure is the fully-qualified name of the CurriculumService's
	// UpdateSection RPC.
	CurriculumServiceUpdateSectionProcedure = "/edulearn.course.v1.CurriculumService/UpdateSection"
	// CurriculumServiceDeleteSectionProcedure is the fully-qualified name of the CurriculumService's
	// DeleteSection RPC.
	CurriculumServiceDeleteSectionProcedure = "/edulearn.course.v1.CurriculumService/DeleteSection"
	// CurriculumServiceListCourseSectionsProcedure is the fully-qualified name of the
	// CurriculumService's ListCourseSections RPC.
	CurriculumServiceListCourseSectionsProcedure = "/edulearn.course.v1.CurriculumService/ListCourseSections"
	// CurriculumServiceCreateLessonProcedure is the fully-qualified name of the CurriculumService's
	// CreateLesson RPC.
	CurriculumServiceCreateLessonProcedure = "/edulearn.course.v1.CurriculumService/CreateLesson"
	// CurriculumServiceUpdateLessonProcedure is the fully-qualified name of the CurriculumService's
	// UpdateLesson RPC.
	CurriculumServiceUpdateLessonProcedure = "/edulearn.course.v1.CurriculumService/UpdateLesson"
	// CurriculumServiceDeleteLessonProcedure is the fully-qualified name of the CurriculumService's
	// DeleteLesson RPC.
	CurriculumServiceDeleteLessonProcedure = "/edulearn.course.v1.CurriculumService/DeleteLesson"
	// CurriculumServiceListSectionLessonsProcedure is the fully-qualified name of the
	// CurriculumService's ListSectionLessons RPC.
	CurriculumServiceListSectionLessonsProcedure = "/edulearn.course.v1.CurriculumService/ListSectionLessons"
	// CurriculumServiceCreateQuizProcedure is the fully-qualified name of the CurriculumService's
	// CreateQuiz RPC.
	CurriculumServiceCreateQuizProcedure = "/edulearn.course.v1.CurriculumService/CreateQuiz"
	// CurriculumServiceUpdateQuizProcedure is the fully-qualified name of the CurriculumService's
	// UpdateQuiz RPC.
	CurriculumServiceUpdateQuizProcedure = "/edulearn.course.v1.CurriculumService/UpdateQuiz"
	// CurriculumServiceDeleteQuizProcedure is the fully-qualified name of the CurriculumService's
	// DeleteQuiz RPC.
	CurriculumServiceDeleteQuizProcedure = "/edulearn.course.v1.CurriculumService/DeleteQuiz"
	// CurriculumServiceGetSectionQuizProcedure is the fully-qualified name of the CurriculumService's
	// GetSectionQuiz RPC.
	CurriculumServiceGetSectionQuizProcedure = "/edulearn.course.v1.CurriculumService/GetSectionQuiz"
)

// CurriculumServiceClient is a client for the edulearn.course.v1.CurriculumService service.
type CurriculumServiceClient interface {
	CreateSection(context.Context, *connect.Request[v1.CreateSectionRequest]) (*connect.Response[v1.CreateSectionResponse], error)
	UpdateSection(context.Context, *connect.Request[v1.UpdateSectionRequest]) (*connect.Response[v1.UpdateSectionResponse], error)
	DeleteSection(context.Context, *connect.Request[v1.DeleteSectionRequest]) (*connect.Response[v1.DeleteSectionResponse], error)
	ListCourseSections(context.Context, *connect.Request[v1.ListCourseSectionsRequest]) (*connect.Response[v1.ListCourseSectionsResponse], error)
	CreateLesson(context.Context, *connect.Request[v1.CreateLessonRequest]) (*connect.Response[v1.CreateLessonResponse], error)
	UpdateLesson(context.Context, *connect.Request[v1.UpdateLessonRequest]) (*connect.Response[v1.UpdateLessonResponse], error)
	DeleteLesson(context.Context, *connect.Request[v1.DeleteLessonRequest]) (*connect.Response[v1.DeleteLessonResponse], error)
	ListSectionLessons(context.Context, *connect.Request[v1.ListSectionLessonsRequest]) (*connect.Response[v1.ListSectionLessonsResponse], error)
	CreateQuiz(context.Context, *connect.Request[v1.CreateQuizRequest]) (*connect.Response[v1.CreateQuizResponse], error)
	UpdateQuiz(context.Context, *connect.Request[v1.UpdateQuizRequest]) (*connect.Response[v1.UpdateQuizResponse], error)
	DeleteQuiz(context.Context, *connect.Request[v1.DeleteQuizRequest]) (*connect.Response[v1.DeleteQuizResponse], error)
	GetSectionQuiz(context.Context, *connect.Request[v1.GetSectionQuizRequest]) (*connect.Response[v1.GetSectionQuizResponse], error)
}

// NewCurriculumServiceClient constructs a client for the edulearn.course.v1.CurriculumService
// service. By default, it uses the Connect protocol with the binary Protobuf Codec, asks for
// gzipped responses, and sends uncompressed requests. To use the gRPC or gRPC-Web protocols, supply
// the connect.WithGRPC() or connect.WithGRPCWeb() options.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewCurriculumServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) CurriculumServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	curriculumServiceMethods := v1.File_edulearn_course_v1_curriculum_proto.Services().ByName("CurriculumService").Methods()
	return &curriculumServiceClient{
		createSection: connect.NewClient[v1.CreateSectionRequest, v1.CreateSectionResponse](
			httpClient,
			baseURL+CurriculumServiceCreateSectionProcedure,
			connect.WithSchema(curriculumServiceMethods.ByName("CreateSection")),
			connect.WithClientOptions(opts...),
		),
		updateSection: connect.NewClient[v1.UpdateSectionRequest, v1.UpdateSectionResponse](
			httpClient,
			baseURL+CurriculumServiceUpdateSectionProcedure,
			connect.WithSchema(curriculumServiceMethods.ByName("UpdateSection")),
			connect.WithClientOptions(opts...),
		),
		deleteSection: connect.NewClient[v1.DeleteSectionRequest, v1.DeleteSectionResponse](
			httpClient,
			baseURL+CurriculumServiceDeleteSectionProcedure,
			connect.WithSchema(curriculumServiceMethods.ByName("DeleteSection")),
			connect.WithClientOptions(opts...),
		),
		listCourseSections: connect.NewClient[v1.ListCourseSectionsRequest, v1.ListCourseSectionsResponse](
			httpClient,
			baseURL+CurriculumServiceListCourseSectionsProcedure,
			connect.WithSchema(curriculumServiceMethods.ByName("ListCourseSections")),
			connect.WithClientOptions(opts...),
		),
		createLesson: connect.NewClient[v1.CreateLessonRequest, v1.CreateLessonResponse](
			httpClient,
			baseURL+CurriculumServiceCreateLessonProcedure,
			connect.WithSchema(curriculumServiceMethods.ByName("CreateLesson")),
			connect.WithClientOptions(opts...),
		),
		updateLesson: connect.NewClient[v1.UpdateLessonRequest, v1.UpdateLessonResponse](
			httpClient,
			baseURL+CurriculumServiceUpdateLessonProcedure,
			connect.WithSchema(curriculumServiceMethods.ByName("UpdateLesson")),
			connect.WithClientOptions(opts...),
		),
		deleteLesson: connect.NewClient[v1.DeleteLessonRequest, v1.DeleteLessonResponse](
			httpClient,
			baseURL+CurriculumServiceDeleteLessonProcedure,
			connect.WithSchema(curriculumServiceMethods.ByName("DeleteLesson")),
			connect.WithClientOptions(opts...),
		),
		listSectionLessons: connect.NewClient[v1.ListSectionLessonsRequest, v1.ListSectionLessonsResponse](
			httpClient,
			baseURL+CurriculumServiceListSectionLessonsProcedure,
			connect.WithSchema(curriculumServiceMethods.ByName("ListSectionLessons")),
			connect.WithClientOptions(opts...),
		),
		createQuiz: connect.NewClient[v1.CreateQuizRequest, v1.CreateQuizResponse](
			httpClient,
			baseURL+CurriculumServiceCreateQuizProcedure,
			connect.WithSchema(curriculumServiceMethods.ByName("CreateQuiz")),
			connect.WithClientOptions(opts...),
		),
		updateQuiz: connect.NewClient[v1.UpdateQuizRequest, v1.UpdateQuizResponse](
			httpClient,
			baseURL+CurriculumServiceUpdateQuizProcedure,
			connect.WithSchema(curriculumServiceMethods.ByName("UpdateQuiz")),
			connect.WithClientOptions(opts...),
		),
		deleteQuiz: connect.NewClient[v1.DeleteQuizRequest, v1.DeleteQuizResponse](
			httpClient,
			baseURL+CurriculumServiceDeleteQuizProcedure,
			connect.WithSchema(curriculumServiceMethods.ByName("DeleteQuiz")),
			connect.WithClientOptions(opts...),
		),
		getSectionQuiz: connect.NewClient[v1.GetSectionQuizRequest, v1.GetSectionQuizResponse](
			httpClient,
			baseURL+CurriculumServiceGetSectionQuizProcedure,
			connect.WithSchema(curriculumServiceMethods.ByName("GetSectionQuiz")),
			connect.WithClientOptions(opts...),
		),
	}
}

// curriculumServiceClient implements CurriculumServiceClient.
type curriculumServiceClient struct {
	createSection      *connect.Client[v1.CreateSectionRequest, v1.CreateSectionResponse]
	updateSection      *connect.Client[v1.UpdateSectionRequest, v1.UpdateSectionResponse]
	deleteSection      *connect.Client[v1.DeleteSectionRequest, v1.DeleteSectionResponse]
	listCourseSections *connect.Client[v1.ListCourseSectionsRequest, v1.ListCourseSectionsResponse]
	createLesson       *connect.Client[v1.CreateLessonRequest, v1.CreateLessonResponse]
	updateLesson       *connect.Client[v1.UpdateLessonRequest, v1.UpdateLessonResponse]
	deleteLesson       *connect.Client[v1.DeleteLessonRequest, v1.DeleteLessonResponse]
	listSectionLessons *connect.Client[v1.ListSectionLessonsRequest, v1.ListSectionLessonsResponse]
	createQuiz         *connect.Client[v1.CreateQuizRequest, v1.CreateQuizResponse]
	updateQuiz         *connect.Client[v1.UpdateQuizRequest, v1.UpdateQuizResponse]
	deleteQuiz         *connect.Client[v1.DeleteQuizRequest, v1.DeleteQuizResponse]
	getSectionQuiz     *connect.Client[v1.GetSectionQuizRequest, v1.GetSectionQuizResponse]
}

// CreateSection calls edulearn.course.v1.CurriculumService.CreateSection.
func (c *curriculumServiceClient) CreateSection(ctx context.Context, req *connect.Request[v1.CreateSectionRequest]) (*connect.Response[v1.CreateSectionResponse], error) {
	return c.createSection.CallUnary(ctx, req)
}

// UpdateSection calls edulearn.course.v1.CurriculumService.UpdateSection.
func (c *curriculumServiceClient) UpdateSection(ctx context.Context, req *connect.Request[v1.UpdateSectionRequest]) (*connect.Response[v1.UpdateSectionResponse], error) {
	return c.updateSection.CallUnary(ctx, req)
}

// DeleteSection calls edulearn.course.v1.CurriculumService.DeleteSection.
func (c *curriculumServiceClient) DeleteSection(ctx context.Context, req *connect.Request[v1.DeleteSectionRequest]) (*connect.Response[v1.DeleteSectionResponse], error) {
	return c.deleteSection.CallUnary(ctx, req)
}

// ListCourseSections calls edulearn.course.v1.CurriculumService.ListCourseSections.
func (c *curriculumServiceClient) ListCourseSections(ctx context.Context, req *connect.Request[v1.ListCourseSectionsRequest]) (*connect.Response[v1.ListCourseSectionsResponse], error) {
	return c.listCourseSections.CallUnary(ctx, req)
}

// CreateLesson calls edulearn.course.v1.CurriculumService.CreateLesson.
func (c *curriculumServiceClient) CreateLesson(ctx context.Context, req *connect.Request[v1.CreateLessonRequest]) (*connect.Response[v1.CreateLessonResponse], error) {
	return c.createLesson.CallUnary(ctx, req)
}

// UpdateLesson calls edulearn.course.v1.CurriculumService.UpdateLesson.
func (c *curriculumServiceClient) UpdateLesson(ctx context.Context, req *connect.Request[v1.UpdateLessonRequest]) (*connect.Response[v1.UpdateLessonResponse], error) {
	return c.updateLesson.CallUnary(ctx, req)
}

// DeleteLesson calls edulearn.course.v1.CurriculumService.DeleteLesson.
func (c *curriculumServiceClient) DeleteLesson(ctx context.Context, req *connect.Request[v1.DeleteLessonRequest]) (*connect.Response[v1.DeleteLessonResponse], error) {
	return c.deleteLesson.CallUnary(ctx, req)
}

// ListSectionLessons calls edulearn.course.v1.CurriculumService.ListSectionLessons.
func (c *curriculumServiceClient) ListSectionLessons(ctx context.Context, req *connect.Request[v1.ListSectionLessonsRequest]) (*connect.Response[v1.ListSectionLessonsResponse], error) {
	return c.listSectionLessons.CallUnary(ctx, req)
}

// CreateQuiz calls edulearn.course.v1.CurriculumService.CreateQuiz.
func (c *curriculumServiceClient) CreateQuiz(ctx context.Context, req *connect.Request[v1.CreateQuizRequest]) (*connect.Response[v1.CreateQuizResponse], error) {
	return c.createQuiz.CallUnary(ctx, req)
}

// UpdateQuiz calls edulearn.course.v1.CurriculumService.UpdateQuiz.
func (c *curriculumServiceClient) UpdateQuiz(ctx context.Context, req *connect.Request[v1.UpdateQuizRequest]) (*connect.Response[v1.UpdateQuizResponse], error) {
	return c.updateQuiz.CallUnary(ctx, req)
}

// DeleteQuiz calls edulearn.course.v1.CurriculumService.DeleteQuiz.
func (c *curriculumServiceClient) DeleteQuiz(ctx context.Context, req *connect.Request[v1.DeleteQuizRequest]) (*connect.Response[v1.DeleteQuizResponse], error) {
	return c.deleteQuiz.CallUnary(ctx, req)
}

// GetSectionQuiz calls edulearn.course.v1.CurriculumService.GetSectionQuiz.
func (c *curriculumServiceClient) GetSectionQuiz(ctx context.Context, req *connect.Request[v1.GetSectionQuizRequest]) (*connect.Response[v1.GetSectionQuizResponse], error) {
	return c.getSectionQuiz.CallUnary(ctx, req)
}

// CurriculumServiceHandler is an implementation of the edulearn.course.v1.CurriculumService
// service.
type CurriculumServiceHandler interface {
	CreateSection(context.Context, *connect.Request[v1.CreateSectionRequest]) (*connect.Response[v1.CreateSectionResponse], error)
	UpdateSection(context.Context, *connect.Request[v1.UpdateSectionRequest]) (*connect.Response[v1.UpdateSectionResponse], error)
	DeleteSection(context.Context, *connect.Request[v1.DeleteSectionRequest]) (*connect.Response[v1.DeleteSectionResponse], error)
	ListCourseSections(context.Context, *connect.Request[v1.ListCourseSectionsRequest]) (*connect.Response[v1.ListCourseSectionsResponse], error)
	CreateLesson(context.Context, *connect.Request[v1.CreateLessonRequest]) (*connect.Response[v1.CreateLessonResponse], error)
	UpdateLesson(context.Context, *connect.Request[v1.UpdateLessonRequest]) (*connect.Response[v1.UpdateLessonResponse], error)
	DeleteLesson(context.Context, *connect.Request[v1.DeleteLessonRequest]) (*connect.Response[v1.DeleteLessonResponse], error)
	ListSectionLessons(context.Context, *connect.Request[v1.ListSectionLessonsRequest]) (*connect.Response[v1.ListSectionLessonsResponse], error)
	CreateQuiz(context.Context, *connect.Request[v1.CreateQuizRequest]) (*connect.Response[v1.CreateQuizResponse], error)
	UpdateQuiz(context.Context, *connect.Request[v1.UpdateQuizRequest]) (*connect.Response[v1.UpdateQuizResponse], error)
	DeleteQuiz(context.Context, *connect.Request[v1.DeleteQuizRequest]) (*connect.Response[v1.DeleteQuizResponse], error)
	GetSectionQuiz(context.Context, *connect.Request[v1.GetSectionQuizRequest]) (*connect.Response[v1.GetSectionQuizResponse], error)
}

// NewCurriculumServiceHandler builds an HTTP handler from the service implementation. It returns
// the path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the binary Protobuf
// and JSON codecs. They also support gzip compression.
func NewCurriculumServiceHandler(svc CurriculumServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	curriculumServiceMethods := v1.File_edulearn_course_v1_curriculum_proto.Services().ByName("CurriculumService").Methods()
	curriculumServiceCreateSectionHandler := connect.NewUnaryHandler(
		CurriculumServiceCreateSectionProcedure,
		svc.CreateSection,
		connect.WithSchema(curriculumServiceMethods.ByName("CreateSection")),
		connect.WithHandlerOptions(opts...),
	)
	curriculumServiceUpdateSectionHandler := connect.NewUnaryHandler(
		CurriculumServiceUpdateSectionProcedure,
		svc.UpdateSection,
		connect.WithSchema(curriculumServiceMethods.ByName("UpdateSection")),
		connect.WithHandlerOptions(opts...),
	)
	curriculumServiceDeleteSectionHandler := connect.NewUnaryHandler(
		CurriculumServiceDeleteSectionProcedure,
		svc.DeleteSection,
		connect.WithSchema(curriculumServiceMethods.ByName("DeleteSection")),
		connect.WithHandlerOptions(opts...),
	)
	curriculumServiceListCourseSectionsHandler := connect.NewUnaryHandler(
		CurriculumServiceListCourseSectionsProcedure,
		svc.ListCourseSections,
		connect.WithSchema(curriculumServiceMethods.ByName("ListCourseSections")),
		connect.WithHandlerOptions(opts...),
	)
	curriculumServiceCreateLessonHandler := connect.NewUnaryHandler(
		CurriculumServiceCreateLessonProcedure,
		svc.CreateLesson,
		connect.WithSchema(curriculumServiceMethods.ByName("CreateLesson")),
		connect.WithHandlerOptions(opts...),
	)
	curriculumServiceUpdateLessonHandler := connect.NewUnaryHandler(
		CurriculumServiceUpdateLessonProcedure,
		svc.UpdateLesson,
		connect.WithSchema(curriculumServiceMethods.ByName("UpdateLesson")),
		connect.WithHandlerOptions(opts...),
	)
	curriculumServiceDeleteLessonHandler := connect.NewUnaryHandler(
		CurriculumServiceDeleteLessonProcedure,
		svc.DeleteLesson,
		connect.WithSchema(curriculumServiceMethods.ByName("DeleteLesson")),
		connect.WithHandlerOptions(opts...),
	)
	curriculumServiceListSectionLessonsHandler := connect.NewUnaryHandler(
		CurriculumServiceListSectionLessonsProcedure,
		svc.ListSectionLessons,
		connect.WithSchema(curriculumServiceMethods.ByName("ListSectionLessons")),
		connect.WithHandlerOptions(opts...),
	)
	curriculumServiceCreateQuizHandler := connect.NewUnaryHandler(
		CurriculumServiceCreateQuizProcedure,
		svc.CreateQuiz,
		connect.WithSchema(curriculumServiceMethods.ByName("CreateQuiz")),
		connect.WithHandlerOptions(opts...),
	)
	curriculumServiceUpdateQuizHandler := connect.NewUnaryHandler(
		CurriculumServiceUpdateQuizProcedure,
		svc.UpdateQuiz,
		connect.WithSchema(curriculumServiceMethods.ByName("UpdateQuiz")),
		connect.WithHandlerOptions(opts...),
	)
	curriculumServiceDeleteQuizHandler := connect.NewUnaryHandler(
		CurriculumServiceDeleteQuizProcedure,
		svc.DeleteQuiz,
		connect.WithSchema(curriculumServiceMethods.ByName("DeleteQuiz")),
		connect.WithHandlerOptions(opts...),
	)
	curriculumServiceGetSectionQuizHandler := connect.NewUnaryHandler(
		CurriculumServiceGetSectionQuizProcedure,
		svc.GetSectionQuiz,
		connect.WithSchema(curriculumServiceMethods.ByName("GetSectionQuiz")),
		connect.WithHandlerOptions(opts...),
	)
	return "/edulearn.course.v1.CurriculumService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CurriculumServiceCreateSectionProcedure:
			curriculumServiceCreateSectionHandler.ServeHTTP(w, r)
		case CurriculumServiceUpdateSectionProcedure:
			curriculumServiceUpdateSectionHandler.ServeHTTP(w, r)
		case CurriculumServiceDeleteSectionProcedure:
			curriculumServiceDeleteSectionHandler.ServeHTTP(w, r)
		case CurriculumServiceListCourseSectionsProcedure:
			curriculumServiceListCourseSectionsHandler.ServeHTTP(w, r)
		case CurriculumServiceCreateLessonProcedure:
			curriculumServiceCreateLessonHandler.ServeHTTP(w, r)
		case CurriculumServiceUpdateLessonProcedure:
			curriculumServiceUpdateLessonHandler.ServeHTTP(w, r)
		case CurriculumServiceDeleteLessonProcedure:
			curriculumServiceDeleteLessonHandler.ServeHTTP(w, r)
		case CurriculumServiceListSectionLessonsProcedure:
			curriculumServiceListSectionLessonsHandler.ServeHTTP(w, r)
		case CurriculumServiceCreateQuizProcedure:
			curriculumServiceCreateQuizHandler.ServeHTTP(w, r)
		case CurriculumServiceUpdateQuizProcedure:
			curriculumServiceUpdateQuizHandler.ServeHTTP(w, r)
		case CurriculumServiceDeleteQuizProcedure:
			curriculumServiceDeleteQuizHandler.ServeHTTP(w, r)
		case CurriculumServiceGetSectionQuizProcedure:
			curriculumServiceGetSectionQuizHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedCurriculumServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCurriculumServiceHandler struct{}

func (UnimplementedCurriculumServiceHandler) CreateSection(context.Context, *connect.Request[v1.CreateSectionRequest]) (*connect.Response[v1.CreateSectionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CurriculumService.CreateSection is not implemented"))
}

func (UnimplementedCurriculumServiceHandler) UpdateSection(context.Context, *connect.Request[v1.UpdateSectionRequest]) (*connect.Response[v1.UpdateSectionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CurriculumService.UpdateSection is not implemented"))
}

func (UnimplementedCurriculumServiceHandler) DeleteSection(context.Context, *connect.Request[v1.DeleteSectionRequest]) (*connect.Response[v1.DeleteSectionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CurriculumService.DeleteSection is not implemented"))
}

func (UnimplementedCurriculumServiceHandler) ListCourseSections(context.Context, *connect.Request[v1.ListCourseSectionsRequest]) (*connect.Response[v1.ListCourseSectionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CurriculumService.ListCourseSections is not implemented"))
}

func (UnimplementedCurriculumServiceHandler) CreateLesson(context.Context, *connect.Request[v1.CreateLessonRequest]) (*connect.Response[v1.CreateLessonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CurriculumService.CreateLesson is not implemented"))
}

func (UnimplementedCurriculumServiceHandler) UpdateLesson(context.Context, *connect.Request[v1.UpdateLessonRequest]) (*connect.Response[v1.UpdateLessonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CurriculumService.UpdateLesson is not implemented"))
}

func (UnimplementedCurriculumServiceHandler) DeleteLesson(context.Context, *connect.Request[v1.DeleteLessonRequest]) (*connect.Response[v1.DeleteLessonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CurriculumService.DeleteLesson is not implemented"))
}

func (UnimplementedCurriculumServiceHandler) ListSectionLessons(context.Context, *connect.Request[v1.ListSectionLessonsRequest]) (*connect.Response[v1.ListSectionLessonsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CurriculumService.ListSectionLessons is not implemented"))
}

func (UnimplementedCurriculumServiceHandler) CreateQuiz(context.Context, *connect.Request[v1.CreateQuizRequest]) (*connect.Response[v1.CreateQuizResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CurriculumService.CreateQuiz is not implemented"))
}

func (UnimplementedCurriculumServiceHandler) UpdateQuiz(context.Context, *connect.Request[v1.UpdateQuizRequest]) (*connect.Response[v1.UpdateQuizResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CurriculumService.UpdateQuiz is not implemented"))
}

func (UnimplementedCurriculumServiceHandler) DeleteQuiz(context.Context, *connect.Request[v1.DeleteQuizRequest]) (*connect.Response[v1.DeleteQuizResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CurriculumService.DeleteQuiz is not implemented"))
}

func (UnimplementedCurriculumServiceHandler) GetSectionQuiz(context.Context, *connect.Request[v1.GetSectionQuizRequest]) (*connect.Response[v1.GetSectionQuizResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("edulearn.course.v1.CurriculumService.GetSectionQuiz is not implemented"))
}
