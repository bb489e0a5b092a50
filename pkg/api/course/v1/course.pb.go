// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: edulearn/course/v1/course.proto

package coursev1

import (
	_ "buf.build/gen/go/bufbuild/protovalidate/protocolbuffers/go/buf/validate"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	fieldmaskpb "google.golang.org/protobuf/types/known/fieldmaskpb"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type CourseStatus int32

const (
	CourseStatus_COURSE_STATUS_UNSPECIFIED CourseStatus = 0
	CourseStatus_COURSE_STATUS_DRAFT       CourseStatus = 1
	CourseStatus_COURSE_STATUS_PUBLISHED   CourseStatus = 2
	CourseStatus_COURSE_STATUS_UNPUBLISHED CourseStatus = 3
)

// Enum value maps for CourseStatus.
var (
	CourseStatus_name = map[int32]string{
		0: "COURSE_STATUS_UNSPECIFIED",
		1: "COURSE_STATUS_DRAFT",
		2: "COURSE_STATUS_PUBLISHED",
		3: "COURSE_STATUS_UNPUBLISHED",
	}
	CourseStatus_value = map[string]int32{
		"COURSE_STATUS_UNSPECIFIED": 0,
		"COURSE_STATUS_DRAFT":       1,
		"COURSE_STATUS_PUBLISHED":   2,
		"COURSE_STATUS_UNPUBLISHED": 3,
	}
)

func (x CourseStatus) Enum() *CourseStatus {
	p := new(CourseStatus)
	*p = x
	return p
}

func (x CourseStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (CourseStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_edulearn_course_v1_course_proto_enumTypes[0].Descriptor()
}

func (CourseStatus) Type() protoreflect.EnumType {
	return &file_edulearn_course_v1_course_proto_enumTypes[0]
}

func (x CourseStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use CourseStatus.Descriptor instead.
func (CourseStatus) EnumDescriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{0}
}

type CourseLevel int32

const (
	CourseLevel_COURSE_LEVEL_UNSPECIFIED  CourseLevel = 0
	CourseLevel_COURSE_LEVEL_BEGINNER     CourseLevel = 1
	CourseLevel_COURSE_LEVEL_INTERMEDIATE CourseLevel = 2
	CourseLevel_COURSE_LEVEL_ADVANCED     CourseLevel = 3
)

// Enum value maps for CourseLevel.
var (
	CourseLevel_name = map[int32]string{
		0: "COURSE_LEVEL_UNSPECIFIED",
		1: "COURSE_LEVEL_BEGINNER",
		2: "COURSE_LEVEL_INTERMEDIATE",
		3: "COURSE_LEVEL_ADVANCED",
	}
	CourseLevel_value = map[string]int32{
		"COURSE_LEVEL_UNSPECIFIED":  0,
		"COURSE_LEVEL_BEGINNER":     1,
		"COURSE_LEVEL_INTERMEDIATE": 2,
		"COURSE_LEVEL_ADVANCED":     3,
	}
)

func (x CourseLevel) Enum() *CourseLevel {
	p := new(CourseLevel)
	*p = x
	return p
}

func (x CourseLevel) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (CourseLevel) Descriptor() protoreflect.EnumDescriptor {
	return file_edulearn_course_v1_course_proto_enumTypes[1].Descriptor()
}

func (CourseLevel) Type() protoreflect.EnumType {
	return &file_edulearn_course_v1_course_proto_enumTypes[1]
}

func (x CourseLevel) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use CourseLevel.Descriptor instead.
func (CourseLevel) EnumDescriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{1}
}

type Course struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	InstructorId    string                 `protobuf:"bytes,2,opt,name=instructor_id,json=instructorId,proto3" json:"instructor_id,omitempty"`
	Title           string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Slug            string                 `protobuf:"bytes,4,opt,name=slug,proto3" json:"slug,omitempty"`
	Subtitle        string                 `protobuf:"bytes,5,opt,name=subtitle,proto3" json:"subtitle,omitempty"`
	Description     string                 `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	Category        string                 `protobuf:"bytes,7,opt,name=category,proto3" json:"category,omitempty"`
	Level           CourseLevel            `protobuf:"varint,8,opt,name=level,proto3,enum=edulearn.course.v1.CourseLevel" json:"level,omitempty"`
	Language        string                 `protobuf:"bytes,9,opt,name=language,proto3" json:"language,omitempty"`
	ThumbnailUrl    string                 `protobuf:"bytes,10,opt,name=thumbnail_url,json=thumbnailUrl,proto3" json:"thumbnail_url,omitempty"`
	Price           int64                  `protobuf:"varint,11,opt,name=price,proto3" json:"price,omitempty"`
	DiscountPrice   *int64                 `protobuf:"varint,12,opt,name=discount_price,json=discountPrice,proto3,oneof" json:"discount_price,omitempty"`
	Status          CourseStatus           `protobuf:"varint,13,opt,name=status,proto3,enum=edulearn.course.v1.CourseStatus" json:"status,omitempty"`
	Rating          float64                `protobuf:"fixed64,14,opt,name=rating,proto3" json:"rating,omitempty"`
	NumberOfRating  int32                  `protobuf:"varint,15,opt,name=number_of_rating,json=numberOfRating,proto3" json:"number_of_rating,omitempty"`
	SectionCount    int32                  `protobuf:"varint,16,opt,name=section_count,json=sectionCount,proto3" json:"section_count,omitempty"`
	LessonCount     int32                  `protobuf:"varint,17,opt,name=lesson_count,json=lessonCount,proto3" json:"lesson_count,omitempty"`
	QuizCount       int32                  `protobuf:"varint,18,opt,name=quiz_count,json=quizCount,proto3" json:"quiz_count,omitempty"`
	EnrollmentCount int32                  `protobuf:"varint,19,opt,name=enrollment_count,json=enrollmentCount,proto3" json:"enrollment_count,omitempty"`
	CreatedAt       *timestamppb.Timestamp `protobuf:"bytes,20,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       *timestamppb.Timestamp `protobuf:"bytes,21,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	PublishedAt     *timestamppb.Timestamp `protobuf:"bytes,22,opt,name=published_at,json=publishedAt,proto3" json:"published_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Course) Reset() {
	*x = Course{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Course) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Course) ProtoMessage() {}

func (x *Course) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Course.ProtoReflect.Descriptor instead.
func (*Course) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{0}
}

func (x *Course) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Course) GetInstructorId() string {
	if x != nil {
		return x.InstructorId
	}
	return ""
}

func (x *Course) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Course) GetSlug() string {
	if x != nil {
		return x.Slug
	}
	return ""
}

func (x *Course) GetSubtitle() string {
	if x != nil {
		return x.Subtitle
	}
	return ""
}

func (x *Course) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Course) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Course) GetLevel() CourseLevel {
	if x != nil {
		return x.Level
	}
	return CourseLevel_COURSE_LEVEL_UNSPECIFIED
}

func (x *Course) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *Course) GetThumbnailUrl() string {
	if x != nil {
		return x.ThumbnailUrl
	}
	return ""
}

func (x *Course) GetPrice() int64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *Course) GetDiscountPrice() int64 {
	if x != nil && x.DiscountPrice != nil {
		return *x.DiscountPrice
	}
	return 0
}

func (x *Course) GetStatus() CourseStatus {
	if x != nil {
		return x.Status
	}
	return CourseStatus_COURSE_STATUS_UNSPECIFIED
}

func (x *Course) GetRating() float64 {
	if x != nil {
		return x.Rating
	}
	return 0
}

func (x *Course) GetNumberOfRating() int32 {
	if x != nil {
		return x.NumberOfRating
	}
	return 0
}

func (x *Course) GetSectionCount() int32 {
	if x != nil {
		return x.SectionCount
	}
	return 0
}

func (x *Course) GetLessonCount() int32 {
	if x != nil {
		return x.LessonCount
	}
	return 0
}

func (x *Course) GetQuizCount() int32 {
	if x != nil {
		return x.QuizCount
	}
	return 0
}

func (x *Course) GetEnrollmentCount() int32 {
	if x != nil {
		return x.EnrollmentCount
	}
	return 0
}

func (x *Course) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Course) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

func (x *Course) GetPublishedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.PublishedAt
	}
	return nil
}

type CourseDraft struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Title         string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Subtitle      string                 `protobuf:"bytes,2,opt,name=subtitle,proto3" json:"subtitle,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Category      string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Level         CourseLevel            `protobuf:"varint,5,opt,name=level,proto3,enum=edulearn.course.v1.CourseLevel" json:"level,omitempty"`
	Language      string                 `protobuf:"bytes,6,opt,name=language,proto3" json:"language,omitempty"`
	ThumbnailUrl  string                 `protobuf:"bytes,7,opt,name=thumbnail_url,json=thumbnailUrl,proto3" json:"thumbnail_url,omitempty"`
	Price         int64                  `protobuf:"varint,8,opt,name=price,proto3" json:"price,omitempty"`
	DiscountPrice *int64                 `protobuf:"varint,9,opt,name=discount_price,json=discountPrice,proto3,oneof" json:"discount_price,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CourseDraft) Reset() {
	*x = CourseDraft{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CourseDraft) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CourseDraft) ProtoMessage() {}

func (x *CourseDraft) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CourseDraft.ProtoReflect.Descriptor instead.
func (*CourseDraft) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{1}
}

func (x *CourseDraft) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *CourseDraft) GetSubtitle() string {
	if x != nil {
		return x.Subtitle
	}
	return ""
}

func (x *CourseDraft) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CourseDraft) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CourseDraft) GetLevel() CourseLevel {
	if x != nil {
		return x.Level
	}
	return CourseLevel_COURSE_LEVEL_UNSPECIFIED
}

func (x *CourseDraft) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *CourseDraft) GetThumbnailUrl() string {
	if x != nil {
		return x.ThumbnailUrl
	}
	return ""
}

func (x *CourseDraft) GetPrice() int64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *CourseDraft) GetDiscountPrice() int64 {
	if x != nil && x.DiscountPrice != nil {
		return *x.DiscountPrice
	}
	return 0
}

type CreateCourseRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Course         *CourseDraft           `protobuf:"bytes,1,opt,name=course,proto3" json:"course,omitempty"`
	IdempotencyKey string                 `protobuf:"bytes,2,opt,name=idempotency_key,json=idempotencyKey,proto3" json:"idempotency_key,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateCourseRequest) Reset() {
	*x = CreateCourseRequest{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCourseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCourseRequest) ProtoMessage() {}

func (x *CreateCourseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCourseRequest.ProtoReflect.Descriptor instead.
func (*CreateCourseRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{2}
}

func (x *CreateCourseRequest) GetCourse() *CourseDraft {
	if x != nil {
		return x.Course
	}
	return nil
}

func (x *CreateCourseRequest) GetIdempotencyKey() string {
	if x != nil {
		return x.IdempotencyKey
	}
	return ""
}

type CreateCourseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Course        *Course                `protobuf:"bytes,1,opt,name=course,proto3" json:"course,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCourseResponse) Reset() {
	*x = CreateCourseResponse{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCourseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCourseResponse) ProtoMessage() {}

func (x *CreateCourseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCourseResponse.ProtoReflect.Descriptor instead.
func (*CreateCourseResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{3}
}

func (x *CreateCourseResponse) GetCourse() *Course {
	if x != nil {
		return x.Course
	}
	return nil
}

type GetCourseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCourseRequest) Reset() {
	*x = GetCourseRequest{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCourseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCourseRequest) ProtoMessage() {}

func (x *GetCourseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCourseRequest.ProtoReflect.Descriptor instead.
func (*GetCourseRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{4}
}

func (x *GetCourseRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

type GetCourseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Course        *Course                `protobuf:"bytes,1,opt,name=course,proto3" json:"course,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCourseResponse) Reset() {
	*x = GetCourseResponse{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCourseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCourseResponse) ProtoMessage() {}

func (x *GetCourseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCourseResponse.ProtoReflect.Descriptor instead.
func (*GetCourseResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{5}
}

func (x *GetCourseResponse) GetCourse() *Course {
	if x != nil {
		return x.Course
	}
	return nil
}

type ListCoursesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PageSize      int32                  `protobuf:"varint,1,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken     string                 `protobuf:"bytes,2,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	Statuses      []CourseStatus         `protobuf:"varint,3,rep,packed,name=statuses,proto3,enum=edulearn.course.v1.CourseStatus" json:"statuses,omitempty"`
	Category      string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Level         CourseLevel            `protobuf:"varint,5,opt,name=level,proto3,enum=edulearn.course.v1.CourseLevel" json:"level,omitempty"`
	InstructorId  string                 `protobuf:"bytes,6,opt,name=instructor_id,json=instructorId,proto3" json:"instructor_id,omitempty"`
	Query         string                 `protobuf:"bytes,7,opt,name=query,proto3" json:"query,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCoursesRequest) Reset() {
	*x = ListCoursesRequest{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCoursesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCoursesRequest) ProtoMessage() {}

func (x *ListCoursesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCoursesRequest.ProtoReflect.Descriptor instead.
func (*ListCoursesRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{6}
}

func (x *ListCoursesRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListCoursesRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

func (x *ListCoursesRequest) GetStatuses() []CourseStatus {
	if x != nil {
		return x.Statuses
	}
	return nil
}

func (x *ListCoursesRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ListCoursesRequest) GetLevel() CourseLevel {
	if x != nil {
		return x.Level
	}
	return CourseLevel_COURSE_LEVEL_UNSPECIFIED
}

func (x *ListCoursesRequest) GetInstructorId() string {
	if x != nil {
		return x.InstructorId
	}
	return ""
}

func (x *ListCoursesRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

type ListCoursesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Courses       []*Course              `protobuf:"bytes,1,rep,name=courses,proto3" json:"courses,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCoursesResponse) Reset() {
	*x = ListCoursesResponse{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCoursesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCoursesResponse) ProtoMessage() {}

func (x *ListCoursesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCoursesResponse.ProtoReflect.Descriptor instead.
func (*ListCoursesResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{7}
}

func (x *ListCoursesResponse) GetCourses() []*Course {
	if x != nil {
		return x.Courses
	}
	return nil
}

func (x *ListCoursesResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

type UpdateCourseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	Course        *CourseDraft           `protobuf:"bytes,2,opt,name=course,proto3" json:"course,omitempty"`
	UpdateMask    *fieldmaskpb.FieldMask `protobuf:"bytes,3,opt,name=update_mask,json=updateMask,proto3" json:"update_mask,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateCourseRequest) Reset() {
	*x = UpdateCourseRequest{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCourseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCourseRequest) ProtoMessage() {}

func (x *UpdateCourseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCourseRequest.ProtoReflect.Descriptor instead.
func (*UpdateCourseRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{8}
}

func (x *UpdateCourseRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *UpdateCourseRequest) GetCourse() *CourseDraft {
	if x != nil {
		return x.Course
	}
	return nil
}

func (x *UpdateCourseRequest) GetUpdateMask() *fieldmaskpb.FieldMask {
	if x != nil {
		return x.UpdateMask
	}
	return nil
}

type UpdateCourseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Course        *Course                `protobuf:"bytes,1,opt,name=course,proto3" json:"course,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateCourseResponse) Reset() {
	*x = UpdateCourseResponse{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCourseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCourseResponse) ProtoMessage() {}

func (x *UpdateCourseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCourseResponse.ProtoReflect.Descriptor instead.
func (*UpdateCourseResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateCourseResponse) GetCourse() *Course {
	if x != nil {
		return x.Course
	}
	return nil
}

type PublishCourseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PublishCourseRequest) Reset() {
	*x = PublishCourseRequest{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PublishCourseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PublishCourseRequest) ProtoMessage() {}

func (x *PublishCourseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PublishCourseRequest.ProtoReflect.Descriptor instead.
func (*PublishCourseRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{10}
}

func (x *PublishCourseRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

type PublishCourseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Course        *Course                `protobuf:"bytes,1,opt,name=course,proto3" json:"course,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PublishCourseResponse) Reset() {
	*x = PublishCourseResponse{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PublishCourseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PublishCourseResponse) ProtoMessage() {}

func (x *PublishCourseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PublishCourseResponse.ProtoReflect.Descriptor instead.
func (*PublishCourseResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{11}
}

func (x *PublishCourseResponse) GetCourse() *Course {
	if x != nil {
		return x.Course
	}
	return nil
}

type UnpublishCourseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnpublishCourseRequest) Reset() {
	*x = UnpublishCourseRequest{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnpublishCourseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnpublishCourseRequest) ProtoMessage() {}

func (x *UnpublishCourseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnpublishCourseRequest.ProtoReflect.Descriptor instead.
func (*UnpublishCourseRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{12}
}

func (x *UnpublishCourseRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

type UnpublishCourseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Course        *Course                `protobuf:"bytes,1,opt,name=course,proto3" json:"course,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnpublishCourseResponse) Reset() {
	*x = UnpublishCourseResponse{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnpublishCourseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnpublishCourseResponse) ProtoMessage() {}

func (x *UnpublishCourseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnpublishCourseResponse.ProtoReflect.Descriptor instead.
func (*UnpublishCourseResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{13}
}

func (x *UnpublishCourseResponse) GetCourse() *Course {
	if x != nil {
		return x.Course
	}
	return nil
}

type DeleteCourseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCourseRequest) Reset() {
	*x = DeleteCourseRequest{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCourseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCourseRequest) ProtoMessage() {}

func (x *DeleteCourseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCourseRequest.ProtoReflect.Descriptor instead.
func (*DeleteCourseRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{14}
}

func (x *DeleteCourseRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

type DeleteCourseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCourseResponse) Reset() {
	*x = DeleteCourseResponse{}
	mi := &file_edulearn_course_v1_course_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCourseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCourseResponse) ProtoMessage() {}

func (x *DeleteCourseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_course_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCourseResponse.ProtoReflect.Descriptor instead.
func (*DeleteCourseResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_course_proto_rawDescGZIP(), []int{15}
}

var File_edulearn_course_v1_course_proto protoreflect.FileDescriptor

const file_edulearn_course_v1_course_proto_rawDesc = "" +
	"\n" +
	"\x1fedulearn/course/v1/course.proto\x12\x12edulearn.course.v1\x1a\x1bbuf/validate/validate.proto\x1a google/protobuf/field_mask.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\xd1\x06\n" +
	"\x06Course\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rinstructor_id\x18\x02 \x01(\tR\finstructorId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x12\n" +
	"\x04slug\x18\x04 \x01(\tR\x04slug\x12\x1a\n" +
	"\bsubtitle\x18\x05 \x01(\tR\bsubtitle\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\x12\x1a\n" +
	"\bcategory\x18\a \x01(\tR\bcategory\x125\n" +
	"\x05level\x18\b \x01(\x0e2\x1f.edulearn.course.v1.CourseLevelR\x05level\x12\x1a\n" +
	"\blanguage\x18\t \x01(\tR\blanguage\x12#\n" +
	"\rthumbnail_url\x18\n" +
	" \x01(\tR\fthumbnailUrl\x12\x14\n" +
	"\x05price\x18\v \x01(\x03R\x05price\x12*\n" +
	"\x0ediscount_price\x18\f \x01(\x03H\x00R\rdiscountPrice\x88\x01\x01\x128\n" +
	"\x06status\x18\r \x01(\x0e2 .edulearn.course.v1.CourseStatusR\x06status\x12\x16\n" +
	"\x06rating\x18\x0e \x01(\x01R\x06rating\x12(\n" +
	"\x10number_of_rating\x18\x0f \x01(\x05R\x0enumberOfRating\x12#\n" +
	"\rsection_count\x18\x10 \x01(\x05R\fsectionCount\x12!\n" +
	"\flesson_count\x18\x11 \x01(\x05R\vlessonCount\x12\x1d\n" +
	"\n" +
	"quiz_count\x18\x12 \x01(\x05R\tquizCount\x12)\n" +
	"\x10enrollment_count\x18\x13 \x01(\x05R\x0fenrollmentCount\x129\n" +
	"\n" +
	"created_at\x18\x14 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\x15 \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x12=\n" +
	"\fpublished_at\x18\x16 \x01(\v2\x1a.google.protobuf.TimestampR\vpublishedAtB\x11\n" +
	"\x0f_discount_price\"\xdc\x02\n" +
	"\vCourseDraft\x12\x1d\n" +
	"\x05title\x18\x01 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x05title\x12\x1a\n" +
	"\bsubtitle\x18\x02 \x01(\tR\bsubtitle\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x125\n" +
	"\x05level\x18\x05 \x01(\x0e2\x1f.edulearn.course.v1.CourseLevelR\x05level\x12\x1a\n" +
	"\blanguage\x18\x06 \x01(\tR\blanguage\x12#\n" +
	"\rthumbnail_url\x18\a \x01(\tR\fthumbnailUrl\x12\x1d\n" +
	"\x05price\x18\b \x01(\x03B\a\xbaH\x04\"\x02(\x00R\x05price\x12*\n" +
	"\x0ediscount_price\x18\t \x01(\x03H\x00R\rdiscountPrice\x88\x01\x01B\x11\n" +
	"\x0f_discount_price\"\x88\x01\n" +
	"\x13CreateCourseRequest\x12?\n" +
	"\x06course\x18\x01 \x01(\v2\x1f.edulearn.course.v1.CourseDraftB\x06\xbaH\x03\xc8\x01\x01R\x06course\x120\n" +
	"\x0fidempotency_key\x18\x02 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x0eidempotencyKey\"J\n" +
	"\x14CreateCourseResponse\x122\n" +
	"\x06course\x18\x01 \x01(\v2\x1a.edulearn.course.v1.CourseR\x06course\"9\n" +
	"\x10GetCourseRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\"G\n" +
	"\x11GetCourseResponse\x122\n" +
	"\x06course\x18\x01 \x01(\v2\x1a.edulearn.course.v1.CourseR\x06course\"\xa5\x02\n" +
	"\x12ListCoursesRequest\x12$\n" +
	"\tpage_size\x18\x01 \x01(\x05B\a\xbaH\x04\x1a\x02(\x00R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x02 \x01(\tR\tpageToken\x12<\n" +
	"\bstatuses\x18\x03 \x03(\x0e2 .edulearn.course.v1.CourseStatusR\bstatuses\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x125\n" +
	"\x05level\x18\x05 \x01(\x0e2\x1f.edulearn.course.v1.CourseLevelR\x05level\x12#\n" +
	"\rinstructor_id\x18\x06 \x01(\tR\finstructorId\x12\x14\n" +
	"\x05query\x18\a \x01(\tR\x05query\"s\n" +
	"\x13ListCoursesResponse\x124\n" +
	"\acourses\x18\x01 \x03(\v2\x1a.edulearn.course.v1.CourseR\acourses\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken\"\xba\x01\n" +
	"\x13UpdateCourseRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\x12?\n" +
	"\x06course\x18\x02 \x01(\v2\x1f.edulearn.course.v1.CourseDraftB\x06\xbaH\x03\xc8\x01\x01R\x06course\x12;\n" +
	"\vupdate_mask\x18\x03 \x01(\v2\x1a.google.protobuf.FieldMaskR\n" +
	"updateMask\"J\n" +
	"\x14UpdateCourseResponse\x122\n" +
	"\x06course\x18\x01 \x01(\v2\x1a.edulearn.course.v1.CourseR\x06course\"=\n" +
	"\x14PublishCourseRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\"K\n" +
	"\x15PublishCourseResponse\x122\n" +
	"\x06course\x18\x01 \x01(\v2\x1a.edulearn.course.v1.CourseR\x06course\"?\n" +
	"\x16UnpublishCourseRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\"M\n" +
	"\x17UnpublishCourseResponse\x122\n" +
	"\x06course\x18\x01 \x01(\v2\x1a.edulearn.course.v1.CourseR\x06course\"<\n" +
	"\x13DeleteCourseRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\"\x16\n" +
	"\x14DeleteCourseResponse*\x82\x01\n" +
	"\fCourseStatus\x12\x1d\n" +
	"\x19COURSE_STATUS_UNSPECIFIED\x10\x00\x12\x17\n" +
	"\x13COURSE_STATUS_DRAFT\x10\x01\x12\x1b\n" +
	"\x17COURSE_STATUS_PUBLISHED\x10\x02\x12\x1d\n" +
	"\x19COURSE_STATUS_UNPUBLISHED\x10\x03*\x80\x01\n" +
	"\vCourseLevel\x12\x1c\n" +
	"\x18COURSE_LEVEL_UNSPECIFIED\x10\x00\x12\x19\n" +
	"\x15COURSE_LEVEL_BEGINNER\x10\x01\x12\x1d\n" +
	"\x19COURSE_LEVEL_INTERMEDIATE\x10\x02\x12\x19\n" +
	"\x15COURSE_LEVEL_ADVANCED\x10\x032\xc4\x05\n" +
	"\rCourseService\x12a\n" +
	"\fCreateCourse\x12'.edulearn.course.v1.CreateCourseRequest\x1a(.edulearn.course.v1.CreateCourseResponse\x12X\n" +
	"\tGetCourse\x12$.edulearn.course.v1.GetCourseRequest\x1a%.edulearn.course.v1.GetCourseResponse\x12^\n" +
	"\vListCourses\x12&.edulearn.course.v1.ListCoursesRequest\x1a'.edulearn.course.v1.ListCoursesResponse\x12a\n" +
	"\fUpdateCourse\x12'.edulearn.course.v1.UpdateCourseRequest\x1a(.edulearn.course.v1.UpdateCourseResponse\x12d\n" +
	"\rPublishCourse\x12(.edulearn.course.v1.PublishCourseRequest\x1a).edulearn.course.v1.PublishCourseResponse\x12j\n" +
	"\x0fUnpublishCourse\x12*.edulearn.course.v1.UnpublishCourseRequest\x1a+.edulearn.course.v1.UnpublishCourseResponse\x12a\n" +
	"\fDeleteCourse\x12'.edulearn.course.v1.DeleteCourseRequest\x1a(.edulearn.course.v1.DeleteCourseResponseBXZVgithub.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/pkg/api/course/v1;coursev1b\x06proto3"

var (
	file_edulearn_course_v1_course_proto_rawDescOnce sync.Once
	file_edulearn_course_v1_course_proto_rawDescData []byte
)

func file_edulearn_course_v1_course_proto_rawDescGZIP() []byte {
	file_edulearn_course_v1_course_proto_rawDescOnce.Do(func() {
		file_edulearn_course_v1_course_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_edulearn_course_v1_course_proto_rawDesc), len(file_edulearn_course_v1_course_proto_rawDesc)))
	})
	return file_edulearn_course_v1_course_proto_rawDescData
}

var file_edulearn_course_v1_course_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_edulearn_course_v1_course_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_edulearn_course_v1_course_proto_goTypes = []any{
	(CourseStatus)(0),               // 0: edulearn.course.v1.CourseStatus
	(CourseLevel)(0),                // 1: edulearn.course.v1.CourseLevel
	(*Course)(nil),                  // 2: edulearn.course.v1.Course
	(*CourseDraft)(nil),             // 3: edulearn.course.v1.CourseDraft
	(*CreateCourseRequest)(nil),     // 4: edulearn.course.v1.CreateCourseRequest
	(*CreateCourseResponse)(nil),    // 5: edulearn.course.v1.CreateCourseResponse
	(*GetCourseRequest)(nil),        // 6: edulearn.course.v1.GetCourseRequest
	(*GetCourseResponse)(nil),       // 7: edulearn.course.v1.GetCourseResponse
	(*ListCoursesRequest)(nil),      // 8: edulearn.course.v1.ListCoursesRequest
	(*ListCoursesResponse)(nil),     // 9: edulearn.course.v1.ListCoursesResponse
	(*UpdateCourseRequest)(nil),     // 10: edulearn.course.v1.UpdateCourseRequest
	(*UpdateCourseResponse)(nil),    // 11: edulearn.course.v1.UpdateCourseResponse
	(*PublishCourseRequest)(nil),    // 12: edulearn.course.v1.PublishCourseRequest
	(*PublishCourseResponse)(nil),   // 13: edulearn.course.v1.PublishCourseResponse
	(*UnpublishCourseRequest)(nil),  // 14: edulearn.course.v1.UnpublishCourseRequest
	(*UnpublishCourseResponse)(nil), // 15: edulearn.course.v1.UnpublishCourseResponse
	(*DeleteCourseRequest)(nil),     // 16: edulearn.course.v1.DeleteCourseRequest
	(*DeleteCourseResponse)(nil),    // 17: edulearn.course.v1.DeleteCourseResponse
	(*timestamppb.Timestamp)(nil),   // 18: google.protobuf.Timestamp
	(*fieldmaskpb.FieldMask)(nil),   // 19: google.protobuf.FieldMask
}
var file_edulearn_course_v1_course_proto_depIdxs = []int32{
	1,  // 0: edulearn.course.v1.Course.level:type_name -> edulearn.course.v1.CourseLevel
	0,  // 1: edulearn.course.v1.Course.status:type_name -> edulearn.course.v1.CourseStatus
	18, // 2: edulearn.course.v1.Course.created_at:type_name -> google.protobuf.Timestamp
	18, // 3: edulearn.course.v1.Course.updated_at:type_name -> google.protobuf.Timestamp
	18, // 4: edulearn.course.v1.Course.published_at:type_name -> google.protobuf.Timestamp
	1,  // 5: edulearn.course.v1.CourseDraft.level:type_name -> edulearn.course.v1.CourseLevel
	3,  // 6: edulearn.course.v1.CreateCourseRequest.course:type_name -> edulearn.course.v1.CourseDraft
	2,  // 7: edulearn.course.v1.CreateCourseResponse.course:type_name -> edulearn.course.v1.Course
	2,  // 8: edulearn.course.v1.GetCourseResponse.course:type_name -> edulearn.course.v1.Course
	0,  // 9: edulearn.course.v1.ListCoursesRequest.statuses:type_name -> edulearn.course.v1.CourseStatus
	1,  // 10: edulearn.course.v1.ListCoursesRequest.level:type_name -> edulearn.course.v1.CourseLevel
	2,  // 11: edulearn.course.v1.ListCoursesResponse.courses:type_name -> edulearn.course.v1.Course
	3,  // 12: edulearn.course.v1.UpdateCourseRequest.course:type_name -> edulearn.course.v1.CourseDraft
	19, // 13: edulearn.course.v1.UpdateCourseRequest.update_mask:type_name -> google.protobuf.FieldMask
	2,  // 14: edulearn.course.v1.UpdateCourseResponse.course:type_name -> edulearn.course.v1.Course
	2,  // 15: edulearn.course.v1.PublishCourseResponse.course:type_name -> edulearn.course.v1.Course
	2,  // 16: edulearn.course.v1.UnpublishCourseResponse.course:type_name -> edulearn.course.v1.Course
	4,  // 17: edulearn.course.v1.CourseService.CreateCourse:input_type -> edulearn.course.v1.CreateCourseRequest
	6,  // 18: edulearn.course.v1.CourseService.GetCourse:input_type -> edulearn.course.v1.GetCourseRequest
	8,  // 19: edulearn.course.v1.CourseService.ListCourses:input_type -> edulearn.course.v1.ListCoursesRequest
	10, // 20: edulearn.course.v1.CourseService.UpdateCourse:input_type -> edulearn.course.v1.UpdateCourseRequest
	12, // 21: edulearn.course.v1.CourseService.PublishCourse:input_type -> edulearn.course.v1.PublishCourseRequest
	14, // 22: edulearn.course.v1.CourseService.UnpublishCourse:input_type -> edulearn.course.v1.UnpublishCourseRequest
	16, // 23: edulearn.course.v1.CourseService.DeleteCourse:input_type -> edulearn.course.v1.DeleteCourseRequest
	5,  // 24: edulearn.course.v1.CourseService.CreateCourse:output_type -> edulearn.course.v1.CreateCourseResponse
	7,  // 25: edulearn.course.v1.CourseService.GetCourse:output_type -> edulearn.course.v1.GetCourseResponse
	9,  // 26: edulearn.course.v1.CourseService.ListCourses:output_type -> edulearn.course.v1.ListCoursesResponse
	11, // 27: edulearn.course.v1.CourseService.UpdateCourse:output_type -> edulearn.course.v1.UpdateCourseResponse
	13, // 28: edulearn.course.v1.CourseService.PublishCourse:output_type -> edulearn.course.v1.PublishCourseResponse
	15, // 29: edulearn.course.v1.CourseService.UnpublishCourse:output_type -> edulearn.course.v1.UnpublishCourseResponse
	17, // 30: edulearn.course.v1.CourseService.DeleteCourse:output_type -> edulearn.course.v1.DeleteCourseResponse
	24, // [24:31] is the sub-list for method output_type
	17, // [17:24] is the sub-list for method input_type
	17, // [17:17] is the sub-list for extension type_name
	17, // [17:17] is the sub-list for extension extendee
	0,  // [0:17] is the sub-list for field type_name
}

func init() { file_edulearn_course_v1_course_proto_init() }
func file_edulearn_course_v1_course_proto_init() {
	if File_edulearn_course_v1_course_proto != nil {
		return
	}
	file_edulearn_course_v1_course_proto_msgTypes[0].OneofWrappers = []any{}
	file_edulearn_course_v1_course_proto_msgTypes[1].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_edulearn_course_v1_course_proto_rawDesc), len(file_edulearn_course_v1_course_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_edulearn_course_v1_course_proto_goTypes,
		DependencyIndexes: file_edulearn_course_v1_course_proto_depIdxs,
		EnumInfos:         file_edulearn_course_v1_course_proto_enumTypes,
		MessageInfos:      file_edulearn_course_v1_course_proto_msgTypes,
	}.Build()
	File_edulearn_course_v1_course_proto = out.File
	file_edulearn_course_v1_course_proto_goTypes = nil
	file_edulearn_course_v1_course_proto_depIdxs = nil
}
