// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: edulearn/course/v1/review.proto

package coursev1

import (
	_ "buf.build/gen/go/bufbuild/protovalidate/protocolbuffers/go/buf/validate"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type ReviewUser struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	AvatarUrl     string                 `protobuf:"bytes,3,opt,name=avatar_url,json=avatarUrl,proto3" json:"avatar_url,omitempty"`
	Email         string                 `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReviewUser) Reset() {
	*x = ReviewUser{}
	mi := &file_edulearn_course_v1_review_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewUser) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewUser) ProtoMessage() {}

func (x *ReviewUser) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_review_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewUser.ProtoReflect.Descriptor instead.
func (*ReviewUser) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_review_proto_rawDescGZIP(), []int{0}
}

func (x *ReviewUser) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReviewUser) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ReviewUser) GetAvatarUrl() string {
	if x != nil {
		return x.AvatarUrl
	}
	return ""
}

func (x *ReviewUser) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type Review struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	User          *ReviewUser            `protobuf:"bytes,3,opt,name=user,proto3" json:"user,omitempty"`
	CourseId      string                 `protobuf:"bytes,4,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	EnrollmentId  string                 `protobuf:"bytes,5,opt,name=enrollment_id,json=enrollmentId,proto3" json:"enrollment_id,omitempty"`
	Rating        int32                  `protobuf:"varint,6,opt,name=rating,proto3" json:"rating,omitempty"`
	Comment       string                 `protobuf:"bytes,7,opt,name=comment,proto3" json:"comment,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Review) Reset() {
	*x = Review{}
	mi := &file_edulearn_course_v1_review_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Review) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Review) ProtoMessage() {}

func (x *Review) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_review_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Review.ProtoReflect.Descriptor instead.
func (*Review) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_review_proto_rawDescGZIP(), []int{1}
}

func (x *Review) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Review) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Review) GetUser() *ReviewUser {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *Review) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *Review) GetEnrollmentId() string {
	if x != nil {
		return x.EnrollmentId
	}
	return ""
}

func (x *Review) GetRating() int32 {
	if x != nil {
		return x.Rating
	}
	return 0
}

func (x *Review) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

func (x *Review) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Review) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreateReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	Rating        int32                  `protobuf:"varint,2,opt,name=rating,proto3" json:"rating,omitempty"`
	Comment       string                 `protobuf:"bytes,3,opt,name=comment,proto3" json:"comment,omitempty"`
	User          *ReviewUser            `protobuf:"bytes,4,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateReviewRequest) Reset() {
	*x = CreateReviewRequest{}
	mi := &file_edulearn_course_v1_review_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateReviewRequest) ProtoMessage() {}

func (x *CreateReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_review_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateReviewRequest.ProtoReflect.Descriptor instead.
func (*CreateReviewRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_review_proto_rawDescGZIP(), []int{2}
}

func (x *CreateReviewRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *CreateReviewRequest) GetRating() int32 {
	if x != nil {
		return x.Rating
	}
	return 0
}

func (x *CreateReviewRequest) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

func (x *CreateReviewRequest) GetUser() *ReviewUser {
	if x != nil {
		return x.User
	}
	return nil
}

type CreateReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Review        *Review                `protobuf:"bytes,1,opt,name=review,proto3" json:"review,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateReviewResponse) Reset() {
	*x = CreateReviewResponse{}
	mi := &file_edulearn_course_v1_review_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateReviewResponse) ProtoMessage() {}

func (x *CreateReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_review_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateReviewResponse.ProtoReflect.Descriptor instead.
func (*CreateReviewResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_review_proto_rawDescGZIP(), []int{3}
}

func (x *CreateReviewResponse) GetReview() *Review {
	if x != nil {
		return x.Review
	}
	return nil
}

type UpdateReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReviewId      string                 `protobuf:"bytes,1,opt,name=review_id,json=reviewId,proto3" json:"review_id,omitempty"`
	Rating        int32                  `protobuf:"varint,2,opt,name=rating,proto3" json:"rating,omitempty"`
	Comment       string                 `protobuf:"bytes,3,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateReviewRequest) Reset() {
	*x = UpdateReviewRequest{}
	mi := &file_edulearn_course_v1_review_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateReviewRequest) ProtoMessage() {}

func (x *UpdateReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_review_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateReviewRequest.ProtoReflect.Descriptor instead.
func (*UpdateReviewRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_review_proto_rawDescGZIP(), []int{4}
}

func (x *UpdateReviewRequest) GetReviewId() string {
	if x != nil {
		return x.ReviewId
	}
	return ""
}

func (x *UpdateReviewRequest) GetRating() int32 {
	if x != nil {
		return x.Rating
	}
	return 0
}

func (x *UpdateReviewRequest) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type UpdateReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Review        *Review                `protobuf:"bytes,1,opt,name=review,proto3" json:"review,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateReviewResponse) Reset() {
	*x = UpdateReviewResponse{}
	mi := &file_edulearn_course_v1_review_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateReviewResponse) ProtoMessage() {}

func (x *UpdateReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_review_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateReviewResponse.ProtoReflect.Descriptor instead.
func (*UpdateReviewResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_review_proto_rawDescGZIP(), []int{5}
}

func (x *UpdateReviewResponse) GetReview() *Review {
	if x != nil {
		return x.Review
	}
	return nil
}

type DeleteReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReviewId      string                 `protobuf:"bytes,1,opt,name=review_id,json=reviewId,proto3" json:"review_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteReviewRequest) Reset() {
	*x = DeleteReviewRequest{}
	mi := &file_edulearn_course_v1_review_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteReviewRequest) ProtoMessage() {}

func (x *DeleteReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_review_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteReviewRequest.ProtoReflect.Descriptor instead.
func (*DeleteReviewRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_review_proto_rawDescGZIP(), []int{6}
}

func (x *DeleteReviewRequest) GetReviewId() string {
	if x != nil {
		return x.ReviewId
	}
	return ""
}

type DeleteReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteReviewResponse) Reset() {
	*x = DeleteReviewResponse{}
	mi := &file_edulearn_course_v1_review_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteReviewResponse) ProtoMessage() {}

func (x *DeleteReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_review_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteReviewResponse.ProtoReflect.Descriptor instead.
func (*DeleteReviewResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_review_proto_rawDescGZIP(), []int{7}
}

type ListCourseReviewsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	PageToken     string                 `protobuf:"bytes,3,opt,name=page_token,json=pageToken,proto3" json:"page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCourseReviewsRequest) Reset() {
	*x = ListCourseReviewsRequest{}
	mi := &file_edulearn_course_v1_review_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCourseReviewsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCourseReviewsRequest) ProtoMessage() {}

func (x *ListCourseReviewsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_review_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCourseReviewsRequest.ProtoReflect.Descriptor instead.
func (*ListCourseReviewsRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_review_proto_rawDescGZIP(), []int{8}
}

func (x *ListCourseReviewsRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *ListCourseReviewsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListCourseReviewsRequest) GetPageToken() string {
	if x != nil {
		return x.PageToken
	}
	return ""
}

type ListCourseReviewsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reviews       []*Review              `protobuf:"bytes,1,rep,name=reviews,proto3" json:"reviews,omitempty"`
	NextPageToken string                 `protobuf:"bytes,2,opt,name=next_page_token,json=nextPageToken,proto3" json:"next_page_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCourseReviewsResponse) Reset() {
	*x = ListCourseReviewsResponse{}
	mi := &file_edulearn_course_v1_review_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCourseReviewsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCourseReviewsResponse) ProtoMessage() {}

func (x *ListCourseReviewsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_review_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCourseReviewsResponse.ProtoReflect.Descriptor instead.
func (*ListCourseReviewsResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_review_proto_rawDescGZIP(), []int{9}
}

func (x *ListCourseReviewsResponse) GetReviews() []*Review {
	if x != nil {
		return x.Reviews
	}
	return nil
}

func (x *ListCourseReviewsResponse) GetNextPageToken() string {
	if x != nil {
		return x.NextPageToken
	}
	return ""
}

var File_edulearn_course_v1_review_proto protoreflect.FileDescriptor

const file_edulearn_course_v1_review_proto_rawDesc = "" +
	"\n" +
	"\x1fedulearn/course/v1/review.proto\x12\x12edulearn.course.v1\x1a\x1bbuf/validate/validate.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"e\n" +
	"\n" +
	"ReviewUser\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"avatar_url\x18\x03 \x01(\tR\tavatarUrl\x12\x14\n" +
	"\x05email\x18\x04 \x01(\tR\x05email\"\xcf\x02\n" +
	"\x06Review\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x122\n" +
	"\x04user\x18\x03 \x01(\v2\x1e.edulearn.course.v1.ReviewUserR\x04user\x12\x1b\n" +
	"\tcourse_id\x18\x04 \x01(\tR\bcourseId\x12#\n" +
	"\renrollment_id\x18\x05 \x01(\tR\fenrollmentId\x12\x16\n" +
	"\x06rating\x18\x06 \x01(\x05R\x06rating\x12\x18\n" +
	"\acomment\x18\a \x01(\tR\acomment\x129\n" +
	"\n" +
	"created_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xad\x01\n" +
	"\x13CreateReviewRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\x12!\n" +
	"\x06rating\x18\x02 \x01(\x05B\t\xbaH\x06\x1a\x04\x18\x05(\x01R\x06rating\x12\x18\n" +
	"\acomment\x18\x03 \x01(\tR\acomment\x122\n" +
	"\x04user\x18\x04 \x01(\v2\x1e.edulearn.course.v1.ReviewUserR\x04user\"J\n" +
	"\x14CreateReviewResponse\x122\n" +
	"\x06review\x18\x01 \x01(\v2\x1a.edulearn.course.v1.ReviewR\x06review\"y\n" +
	"\x13UpdateReviewRequest\x12%\n" +
	"\treview_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\breviewId\x12!\n" +
	"\x06rating\x18\x02 \x01(\x05B\t\xbaH\x06\x1a\x04\x18\x05(\x01R\x06rating\x12\x18\n" +
	"\acomment\x18\x03 \x01(\tR\acomment\"J\n" +
	"\x14UpdateReviewResponse\x122\n" +
	"\x06review\x18\x01 \x01(\v2\x1a.edulearn.course.v1.ReviewR\x06review\"<\n" +
	"\x13DeleteReviewRequest\x12%\n" +
	"\treview_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\breviewId\"\x16\n" +
	"\x14DeleteReviewResponse\"\x86\x01\n" +
	"\x18ListCourseReviewsRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\x12$\n" +
	"\tpage_size\x18\x02 \x01(\x05B\a\xbaH\x04\x1a\x02(\x00R\bpageSize\x12\x1d\n" +
	"\n" +
	"page_token\x18\x03 \x01(\tR\tpageToken\"y\n" +
	"\x19ListCourseReviewsResponse\x124\n" +
	"\areviews\x18\x01 \x03(\v2\x1a.edulearn.course.v1.ReviewR\areviews\x12&\n" +
	"\x0fnext_page_token\x18\x02 \x01(\tR\rnextPageToken2\xaa\x03\n" +
	"\rReviewService\x12a\n" +
	"\fCreateReview\x12'.edulearn.course.v1.CreateReviewRequest\x1a(.edulearn.course.v1.CreateReviewResponse\x12a\n" +
	"\fUpdateReview\x12'.edulearn.course.v1.UpdateReviewRequest\x1a(.edulearn.course.v1.UpdateReviewResponse\x12a\n" +
	"\fDeleteReview\x12'.edulearn.course.v1.DeleteReviewRequest\x1a(.edulearn.course.v1.DeleteReviewResponse\x12p\n" +
	"\x11ListCourseReviews\x12,.edulearn.course.v1.ListCourseReviewsRequest\x1a-.edulearn.course.v1.ListCourseReviewsResponseBXZVgithub.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/pkg/api/course/v1;coursev1b\x06proto3"

var (
	file_edulearn_course_v1_review_proto_rawDescOnce sync.Once
	file_edulearn_course_v1_review_proto_rawDescData []byte
)

func file_edulearn_course_v1_review_proto_rawDescGZIP() []byte {
	file_edulearn_course_v1_review_proto_rawDescOnce.Do(func() {
		file_edulearn_course_v1_review_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_edulearn_course_v1_review_proto_rawDesc), len(file_edulearn_course_v1_review_proto_rawDesc)))
	})
	return file_edulearn_course_v1_review_proto_rawDescData
}

var file_edulearn_course_v1_review_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_edulearn_course_v1_review_proto_goTypes = []any{
	(*ReviewUser)(nil),                // 0: edulearn.course.v1.ReviewUser
	(*Review)(nil),                    // 1: edulearn.course.v1.Review
	(*CreateReviewRequest)(nil),       // 2: edulearn.course.v1.CreateReviewRequest
	(*CreateReviewResponse)(nil),      // 3: edulearn.course.v1.CreateReviewResponse
	(*UpdateReviewRequest)(nil),       // 4: edulearn.course.v1.UpdateReviewRequest
	(*UpdateReviewResponse)(nil),      // 5: edulearn.course.v1.UpdateReviewResponse
	(*DeleteReviewRequest)(nil),       // 6: edulearn.course.v1.DeleteReviewRequest
	(*DeleteReviewResponse)(nil),      // 7: edulearn.course.v1.DeleteReviewResponse
	(*ListCourseReviewsRequest)(nil),  // 8: edulearn.course.v1.ListCourseReviewsRequest
	(*ListCourseReviewsResponse)(nil), // 9: edulearn.course.v1.ListCourseReviewsResponse
	(*timestamppb.Timestamp)(nil),     // 10: google.protobuf.Timestamp
}
var file_edulearn_course_v1_review_proto_depIdxs = []int32{
	0,  // 0: edulearn.course.v1.Review.user:type_name -> edulearn.course.v1.ReviewUser
	10, // 1: edulearn.course.v1.Review.created_at:type_name -> google.protobuf.Timestamp
	10, // 2: edulearn.course.v1.Review.updated_at:type_name -> google.protobuf.Timestamp
	0,  // 3: edulearn.course.v1.CreateReviewRequest.user:type_name -> edulearn.course.v1.ReviewUser
	1,  // 4: edulearn.course.v1.CreateReviewResponse.review:type_name -> edulearn.course.v1.Review
	1,  // 5: edulearn.course.v1.UpdateReviewResponse.review:type_name -> edulearn.course.v1.Review
	1,  // 6: edulearn.course.v1.ListCourseReviewsResponse.reviews:type_name -> edulearn.course.v1.Review
	2,  // 7: edulearn.course.v1.ReviewService.CreateReview:input_type -> edulearn.course.v1.CreateReviewRequest
	4,  // 8: edulearn.course.v1.ReviewService.UpdateReview:input_type -> edulearn.course.v1.UpdateReviewRequest
	6,  // 9: edulearn.course.v1.ReviewService.DeleteReview:input_type -> edulearn.course.v1.DeleteReviewRequest
	8,  // 10: edulearn.course.v1.ReviewService.ListCourseReviews:input_type -> edulearn.course.v1.ListCourseReviewsRequest
	3,  // 11: edulearn.course.v1.ReviewService.CreateReview:output_type -> edulearn.course.v1.CreateReviewResponse
	5,  // 12: edulearn.course.v1.ReviewService.UpdateReview:output_type -> edulearn.course.v1.UpdateReviewResponse
	7,  // 13: edulearn.course.v1.ReviewService.DeleteReview:output_type -> edulearn.course.v1.DeleteReviewResponse
	9,  // 14: edulearn.course.v1.ReviewService.ListCourseReviews:output_type -> edulearn.course.v1.ListCourseReviewsResponse
	11, // [11:15] is the sub-list for method output_type
	7,  // [7:11] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_edulearn_course_v1_review_proto_init() }
func file_edulearn_course_v1_review_proto_init() {
	if File_edulearn_course_v1_review_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_edulearn_course_v1_review_proto_rawDesc), len(file_edulearn_course_v1_review_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_edulearn_course_v1_review_proto_goTypes,
		DependencyIndexes: file_edulearn_course_v1_review_proto_depIdxs,
		MessageInfos:      file_edulearn_course_v1_review_proto_msgTypes,
	}.Build()
	File_edulearn_course_v1_review_proto = out.File
	file_edulearn_course_v1_review_proto_goTypes = nil
	file_edulearn_course_v1_review_proto_depIdxs = nil
}
