// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: edulearn/course/v1/enrollment.proto

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

type EnrollmentStatus int32

const (
	EnrollmentStatus_ENROLLMENT_STATUS_UNSPECIFIED EnrollmentStatus = 0
	EnrollmentStatus_ENROLLMENT_STATUS_ACTIVE      EnrollmentStatus = 1
	EnrollmentStatus_ENROLLMENT_STATUS_COMPLETED   EnrollmentStatus = 2
	EnrollmentStatus_ENROLLMENT_STATUS_CANCELLED   EnrollmentStatus = 3
)

// Enum value maps for EnrollmentStatus.
var (
	EnrollmentStatus_name = map[int32]string{
		0: "ENROLLMENT_STATUS_UNSPECIFIED",
		1: "ENROLLMENT_STATUS_ACTIVE",
		2: "ENROLLMENT_STATUS_COMPLETED",
		3: "ENROLLMENT_STATUS_CANCELLED",
	}
	EnrollmentStatus_value = map[string]int32{
		"ENROLLMENT_STATUS_UNSPECIFIED": 0,
		"ENROLLMENT_STATUS_ACTIVE":      1,
		"ENROLLMENT_STATUS_COMPLETED":   2,
		"ENROLLMENT_STATUS_CANCELLED":   3,
	}
)

func (x EnrollmentStatus) Enum() *EnrollmentStatus {
	p := new(EnrollmentStatus)
	*p = x
	return p
}

func (x EnrollmentStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (EnrollmentStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_edulearn_course_v1_enrollment_proto_enumTypes[0].Descriptor()
}

func (EnrollmentStatus) Type() protoreflect.EnumType {
	return &file_edulearn_course_v1_enrollment_proto_enumTypes[0]
}

func (x EnrollmentStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use EnrollmentStatus.Descriptor instead.
func (EnrollmentStatus) EnumDescriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{0}
}

type ProgressUnitType int32

const (
	ProgressUnitType_PROGRESS_UNIT_TYPE_UNSPECIFIED ProgressUnitType = 0
	ProgressUnitType_PROGRESS_UNIT_TYPE_LESSON      ProgressUnitType = 1
	ProgressUnitType_PROGRESS_UNIT_TYPE_QUIZ        ProgressUnitType = 2
)

// Enum value maps for ProgressUnitType.
var (
	ProgressUnitType_name = map[int32]string{
		0: "PROGRESS_UNIT_TYPE_UNSPECIFIED",
		1: "PROGRESS_UNIT_TYPE_LESSON",
		2: "PROGRESS_UNIT_TYPE_QUIZ",
	}
	ProgressUnitType_value = map[string]int32{
		"PROGRESS_UNIT_TYPE_UNSPECIFIED": 0,
		"PROGRESS_UNIT_TYPE_LESSON":      1,
		"PROGRESS_UNIT_TYPE_QUIZ":        2,
	}
)

func (x ProgressUnitType) Enum() *ProgressUnitType {
	p := new(ProgressUnitType)
	*p = x
	return p
}

func (x ProgressUnitType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ProgressUnitType) Descriptor() protoreflect.EnumDescriptor {
	return file_edulearn_course_v1_enrollment_proto_enumTypes[1].Descriptor()
}

func (ProgressUnitType) Type() protoreflect.EnumType {
	return &file_edulearn_course_v1_enrollment_proto_enumTypes[1]
}

func (x ProgressUnitType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ProgressUnitType.Descriptor instead.
func (ProgressUnitType) EnumDescriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{1}
}

type ProgressEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UnitId        string                 `protobuf:"bytes,1,opt,name=unit_id,json=unitId,proto3" json:"unit_id,omitempty"`
	UnitType      ProgressUnitType       `protobuf:"varint,2,opt,name=unit_type,json=unitType,proto3,enum=edulearn.course.v1.ProgressUnitType" json:"unit_type,omitempty"`
	Completed     bool                   `protobuf:"varint,3,opt,name=completed,proto3" json:"completed,omitempty"`
	Score         float64                `protobuf:"fixed64,4,opt,name=score,proto3" json:"score,omitempty"`
	Passed        bool                   `protobuf:"varint,5,opt,name=passed,proto3" json:"passed,omitempty"`
	Attempts      int32                  `protobuf:"varint,6,opt,name=attempts,proto3" json:"attempts,omitempty"`
	CompletedAt   *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProgressEntry) Reset() {
	*x = ProgressEntry{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProgressEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProgressEntry) ProtoMessage() {}

func (x *ProgressEntry) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProgressEntry.ProtoReflect.Descriptor instead.
func (*ProgressEntry) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{0}
}

func (x *ProgressEntry) GetUnitId() string {
	if x != nil {
		return x.UnitId
	}
	return ""
}

func (x *ProgressEntry) GetUnitType() ProgressUnitType {
	if x != nil {
		return x.UnitType
	}
	return ProgressUnitType_PROGRESS_UNIT_TYPE_UNSPECIFIED
}

func (x *ProgressEntry) GetCompleted() bool {
	if x != nil {
		return x.Completed
	}
	return false
}

func (x *ProgressEntry) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *ProgressEntry) GetPassed() bool {
	if x != nil {
		return x.Passed
	}
	return false
}

func (x *ProgressEntry) GetAttempts() int32 {
	if x != nil {
		return x.Attempts
	}
	return 0
}

func (x *ProgressEntry) GetCompletedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CompletedAt
	}
	return nil
}

type Enrollment struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StudentId       string                 `protobuf:"bytes,2,opt,name=student_id,json=studentId,proto3" json:"student_id,omitempty"`
	CourseId        string                 `protobuf:"bytes,3,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	Status          EnrollmentStatus       `protobuf:"varint,4,opt,name=status,proto3,enum=edulearn.course.v1.EnrollmentStatus" json:"status,omitempty"`
	Progress        []*ProgressEntry       `protobuf:"bytes,5,rep,name=progress,proto3" json:"progress,omitempty"`
	ProgressPercent float64                `protobuf:"fixed64,6,opt,name=progress_percent,json=progressPercent,proto3" json:"progress_percent,omitempty"`
	CreatedAt       *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	CompletedAt     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Enrollment) Reset() {
	*x = Enrollment{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Enrollment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Enrollment) ProtoMessage() {}

func (x *Enrollment) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Enrollment.ProtoReflect.Descriptor instead.
func (*Enrollment) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{1}
}

func (x *Enrollment) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Enrollment) GetStudentId() string {
	if x != nil {
		return x.StudentId
	}
	return ""
}

func (x *Enrollment) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *Enrollment) GetStatus() EnrollmentStatus {
	if x != nil {
		return x.Status
	}
	return EnrollmentStatus_ENROLLMENT_STATUS_UNSPECIFIED
}

func (x *Enrollment) GetProgress() []*ProgressEntry {
	if x != nil {
		return x.Progress
	}
	return nil
}

func (x *Enrollment) GetProgressPercent() float64 {
	if x != nil {
		return x.ProgressPercent
	}
	return 0
}

func (x *Enrollment) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Enrollment) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

func (x *Enrollment) GetCompletedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CompletedAt
	}
	return nil
}

type Certificate struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	EnrollmentId      string                 `protobuf:"bytes,2,opt,name=enrollment_id,json=enrollmentId,proto3" json:"enrollment_id,omitempty"`
	UserId            string                 `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	CourseId          string                 `protobuf:"bytes,4,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	CertificateNumber string                 `protobuf:"bytes,5,opt,name=certificate_number,json=certificateNumber,proto3" json:"certificate_number,omitempty"`
	IssueDate         *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=issue_date,json=issueDate,proto3" json:"issue_date,omitempty"`
	CompletedAt       *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Certificate) Reset() {
	*x = Certificate{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Certificate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Certificate) ProtoMessage() {}

func (x *Certificate) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Certificate.ProtoReflect.Descriptor instead.
func (*Certificate) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{2}
}

func (x *Certificate) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Certificate) GetEnrollmentId() string {
	if x != nil {
		return x.EnrollmentId
	}
	return ""
}

func (x *Certificate) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Certificate) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *Certificate) GetCertificateNumber() string {
	if x != nil {
		return x.CertificateNumber
	}
	return ""
}

func (x *Certificate) GetIssueDate() *timestamppb.Timestamp {
	if x != nil {
		return x.IssueDate
	}
	return nil
}

func (x *Certificate) GetCompletedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CompletedAt
	}
	return nil
}

type QuizAnswer struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	QuestionId    string                 `protobuf:"bytes,1,opt,name=question_id,json=questionId,proto3" json:"question_id,omitempty"`
	Value         string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QuizAnswer) Reset() {
	*x = QuizAnswer{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QuizAnswer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QuizAnswer) ProtoMessage() {}

func (x *QuizAnswer) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QuizAnswer.ProtoReflect.Descriptor instead.
func (*QuizAnswer) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{3}
}

func (x *QuizAnswer) GetQuestionId() string {
	if x != nil {
		return x.QuestionId
	}
	return ""
}

func (x *QuizAnswer) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type EnrollRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	CourseId       string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	IdempotencyKey string                 `protobuf:"bytes,2,opt,name=idempotency_key,json=idempotencyKey,proto3" json:"idempotency_key,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *EnrollRequest) Reset() {
	*x = EnrollRequest{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnrollRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnrollRequest) ProtoMessage() {}

func (x *EnrollRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnrollRequest.ProtoReflect.Descriptor instead.
func (*EnrollRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{4}
}

func (x *EnrollRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *EnrollRequest) GetIdempotencyKey() string {
	if x != nil {
		return x.IdempotencyKey
	}
	return ""
}

type EnrollResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Enrollment    *Enrollment            `protobuf:"bytes,1,opt,name=enrollment,proto3" json:"enrollment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnrollResponse) Reset() {
	*x = EnrollResponse{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnrollResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnrollResponse) ProtoMessage() {}

func (x *EnrollResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnrollResponse.ProtoReflect.Descriptor instead.
func (*EnrollResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{5}
}

func (x *EnrollResponse) GetEnrollment() *Enrollment {
	if x != nil {
		return x.Enrollment
	}
	return nil
}

type GetEnrollmentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EnrollmentId  string                 `protobuf:"bytes,1,opt,name=enrollment_id,json=enrollmentId,proto3" json:"enrollment_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEnrollmentRequest) Reset() {
	*x = GetEnrollmentRequest{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEnrollmentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEnrollmentRequest) ProtoMessage() {}

func (x *GetEnrollmentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEnrollmentRequest.ProtoReflect.Descriptor instead.
func (*GetEnrollmentRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{6}
}

func (x *GetEnrollmentRequest) GetEnrollmentId() string {
	if x != nil {
		return x.EnrollmentId
	}
	return ""
}

type GetEnrollmentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Enrollment    *Enrollment            `protobuf:"bytes,1,opt,name=enrollment,proto3" json:"enrollment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEnrollmentResponse) Reset() {
	*x = GetEnrollmentResponse{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEnrollmentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEnrollmentResponse) ProtoMessage() {}

func (x *GetEnrollmentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEnrollmentResponse.ProtoReflect.Descriptor instead.
func (*GetEnrollmentResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{7}
}

func (x *GetEnrollmentResponse) GetEnrollment() *Enrollment {
	if x != nil {
		return x.Enrollment
	}
	return nil
}

type ListStudentEnrollmentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStudentEnrollmentsRequest) Reset() {
	*x = ListStudentEnrollmentsRequest{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStudentEnrollmentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStudentEnrollmentsRequest) ProtoMessage() {}

func (x *ListStudentEnrollmentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStudentEnrollmentsRequest.ProtoReflect.Descriptor instead.
func (*ListStudentEnrollmentsRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{8}
}

type ListStudentEnrollmentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Enrollments   []*Enrollment          `protobuf:"bytes,1,rep,name=enrollments,proto3" json:"enrollments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStudentEnrollmentsResponse) Reset() {
	*x = ListStudentEnrollmentsResponse{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStudentEnrollmentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStudentEnrollmentsResponse) ProtoMessage() {}

func (x *ListStudentEnrollmentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStudentEnrollmentsResponse.ProtoReflect.Descriptor instead.
func (*ListStudentEnrollmentsResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{9}
}

func (x *ListStudentEnrollmentsResponse) GetEnrollments() []*Enrollment {
	if x != nil {
		return x.Enrollments
	}
	return nil
}

type CompleteLessonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EnrollmentId  string                 `protobuf:"bytes,1,opt,name=enrollment_id,json=enrollmentId,proto3" json:"enrollment_id,omitempty"`
	LessonId      string                 `protobuf:"bytes,2,opt,name=lesson_id,json=lessonId,proto3" json:"lesson_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteLessonRequest) Reset() {
	*x = CompleteLessonRequest{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteLessonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteLessonRequest) ProtoMessage() {}

func (x *CompleteLessonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteLessonRequest.ProtoReflect.Descriptor instead.
func (*CompleteLessonRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{10}
}

func (x *CompleteLessonRequest) GetEnrollmentId() string {
	if x != nil {
		return x.EnrollmentId
	}
	return ""
}

func (x *CompleteLessonRequest) GetLessonId() string {
	if x != nil {
		return x.LessonId
	}
	return ""
}

type CompleteLessonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Enrollment    *Enrollment            `protobuf:"bytes,1,opt,name=enrollment,proto3" json:"enrollment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteLessonResponse) Reset() {
	*x = CompleteLessonResponse{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteLessonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteLessonResponse) ProtoMessage() {}

func (x *CompleteLessonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteLessonResponse.ProtoReflect.Descriptor instead.
func (*CompleteLessonResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{11}
}

func (x *CompleteLessonResponse) GetEnrollment() *Enrollment {
	if x != nil {
		return x.Enrollment
	}
	return nil
}

type SubmitQuizRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EnrollmentId  string                 `protobuf:"bytes,1,opt,name=enrollment_id,json=enrollmentId,proto3" json:"enrollment_id,omitempty"`
	QuizId        string                 `protobuf:"bytes,2,opt,name=quiz_id,json=quizId,proto3" json:"quiz_id,omitempty"`
	Answers       []*QuizAnswer          `protobuf:"bytes,3,rep,name=answers,proto3" json:"answers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitQuizRequest) Reset() {
	*x = SubmitQuizRequest{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitQuizRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitQuizRequest) ProtoMessage() {}

func (x *SubmitQuizRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitQuizRequest.ProtoReflect.Descriptor instead.
func (*SubmitQuizRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{12}
}

func (x *SubmitQuizRequest) GetEnrollmentId() string {
	if x != nil {
		return x.EnrollmentId
	}
	return ""
}

func (x *SubmitQuizRequest) GetQuizId() string {
	if x != nil {
		return x.QuizId
	}
	return ""
}

func (x *SubmitQuizRequest) GetAnswers() []*QuizAnswer {
	if x != nil {
		return x.Answers
	}
	return nil
}

type SubmitQuizResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Score         float64                `protobuf:"fixed64,1,opt,name=score,proto3" json:"score,omitempty"`
	Passed        bool                   `protobuf:"varint,2,opt,name=passed,proto3" json:"passed,omitempty"`
	Attempts      int32                  `protobuf:"varint,3,opt,name=attempts,proto3" json:"attempts,omitempty"`
	Enrollment    *Enrollment            `protobuf:"bytes,4,opt,name=enrollment,proto3" json:"enrollment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitQuizResponse) Reset() {
	*x = SubmitQuizResponse{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitQuizResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitQuizResponse) ProtoMessage() {}

func (x *SubmitQuizResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitQuizResponse.ProtoReflect.Descriptor instead.
func (*SubmitQuizResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{13}
}

func (x *SubmitQuizResponse) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *SubmitQuizResponse) GetPassed() bool {
	if x != nil {
		return x.Passed
	}
	return false
}

func (x *SubmitQuizResponse) GetAttempts() int32 {
	if x != nil {
		return x.Attempts
	}
	return 0
}

func (x *SubmitQuizResponse) GetEnrollment() *Enrollment {
	if x != nil {
		return x.Enrollment
	}
	return nil
}

type IssueCertificateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EnrollmentId  string                 `protobuf:"bytes,1,opt,name=enrollment_id,json=enrollmentId,proto3" json:"enrollment_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IssueCertificateRequest) Reset() {
	*x = IssueCertificateRequest{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IssueCertificateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IssueCertificateRequest) ProtoMessage() {}

func (x *IssueCertificateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IssueCertificateRequest.ProtoReflect.Descriptor instead.
func (*IssueCertificateRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{14}
}

func (x *IssueCertificateRequest) GetEnrollmentId() string {
	if x != nil {
		return x.EnrollmentId
	}
	return ""
}

type IssueCertificateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Certificate   *Certificate           `protobuf:"bytes,1,opt,name=certificate,proto3" json:"certificate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IssueCertificateResponse) Reset() {
	*x = IssueCertificateResponse{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IssueCertificateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IssueCertificateResponse) ProtoMessage() {}

func (x *IssueCertificateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IssueCertificateResponse.ProtoReflect.Descriptor instead.
func (*IssueCertificateResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{15}
}

func (x *IssueCertificateResponse) GetCertificate() *Certificate {
	if x != nil {
		return x.Certificate
	}
	return nil
}

type GetCertificateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CertificateId string                 `protobuf:"bytes,1,opt,name=certificate_id,json=certificateId,proto3" json:"certificate_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCertificateRequest) Reset() {
	*x = GetCertificateRequest{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCertificateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCertificateRequest) ProtoMessage() {}

func (x *GetCertificateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCertificateRequest.ProtoReflect.Descriptor instead.
func (*GetCertificateRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{16}
}

func (x *GetCertificateRequest) GetCertificateId() string {
	if x != nil {
		return x.CertificateId
	}
	return ""
}

type GetCertificateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Certificate   *Certificate           `protobuf:"bytes,1,opt,name=certificate,proto3" json:"certificate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCertificateResponse) Reset() {
	*x = GetCertificateResponse{}
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCertificateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCertificateResponse) ProtoMessage() {}

func (x *GetCertificateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_enrollment_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCertificateResponse.ProtoReflect.Descriptor instead.
func (*GetCertificateResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_enrollment_proto_rawDescGZIP(), []int{17}
}

func (x *GetCertificateResponse) GetCertificate() *Certificate {
	if x != nil {
		return x.Certificate
	}
	return nil
}

var File_edulearn_course_v1_enrollment_proto protoreflect.FileDescriptor

const file_edulearn_course_v1_enrollment_proto_rawDesc = "" +
	"\n" +
	"#edulearn/course/v1/enrollment.proto\x12\x12edulearn.course.v1\x1a\x1bbuf/validate/validate.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\x92\x02\n" +
	"\rProgressEntry\x12\x17\n" +
	"\aunit_id\x18\x01 \x01(\tR\x06unitId\x12A\n" +
	"\tunit_type\x18\x02 \x01(\x0e2$.edulearn.course.v1.ProgressUnitTypeR\bunitType\x12\x1c\n" +
	"\tcompleted\x18\x03 \x01(\bR\tcompleted\x12\x14\n" +
	"\x05score\x18\x04 \x01(\x01R\x05score\x12\x16\n" +
	"\x06passed\x18\x05 \x01(\bR\x06passed\x12\x1a\n" +
	"\battempts\x18\x06 \x01(\x05R\battempts\x12=\n" +
	"\fcompleted_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\vcompletedAt\"\xb5\x03\n" +
	"\n" +
	"Enrollment\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"student_id\x18\x02 \x01(\tR\tstudentId\x12\x1b\n" +
	"\tcourse_id\x18\x03 \x01(\tR\bcourseId\x12<\n" +
	"\x06status\x18\x04 \x01(\x0e2$.edulearn.course.v1.EnrollmentStatusR\x06status\x12=\n" +
	"\bprogress\x18\x05 \x03(\v2!.edulearn.course.v1.ProgressEntryR\bprogress\x12)\n" +
	"\x10progress_percent\x18\x06 \x01(\x01R\x0fprogressPercent\x129\n" +
	"\n" +
	"created_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x12=\n" +
	"\fcompleted_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\vcompletedAt\"\xa1\x02\n" +
	"\vCertificate\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\renrollment_id\x18\x02 \x01(\tR\fenrollmentId\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\tR\x06userId\x12\x1b\n" +
	"\tcourse_id\x18\x04 \x01(\tR\bcourseId\x12-\n" +
	"\x12certificate_number\x18\x05 \x01(\tR\x11certificateNumber\x129\n" +
	"\n" +
	"issue_date\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\tissueDate\x12=\n" +
	"\fcompleted_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\vcompletedAt\"M\n" +
	"\n" +
	"QuizAnswer\x12)\n" +
	"\vquestion_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\n" +
	"questionId\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\"h\n" +
	"\rEnrollRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\x120\n" +
	"\x0fidempotency_key\x18\x02 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x0eidempotencyKey\"P\n" +
	"\x0eEnrollResponse\x12>\n" +
	"\n" +
	"enrollment\x18\x01 \x01(\v2\x1e.edulearn.course.v1.EnrollmentR\n" +
	"enrollment\"E\n" +
	"\x14GetEnrollmentRequest\x12-\n" +
	"\renrollment_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\fenrollmentId\"W\n" +
	"\x15GetEnrollmentResponse\x12>\n" +
	"\n" +
	"enrollment\x18\x01 \x01(\v2\x1e.edulearn.course.v1.EnrollmentR\n" +
	"enrollment\"\x1f\n" +
	"\x1dListStudentEnrollmentsRequest\"b\n" +
	"\x1eListStudentEnrollmentsResponse\x12@\n" +
	"\venrollments\x18\x01 \x03(\v2\x1e.edulearn.course.v1.EnrollmentR\venrollments\"m\n" +
	"\x15CompleteLessonRequest\x12-\n" +
	"\renrollment_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\fenrollmentId\x12%\n" +
	"\tlesson_id\x18\x02 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\blessonId\"X\n" +
	"\x16CompleteLessonResponse\x12>\n" +
	"\n" +
	"enrollment\x18\x01 \x01(\v2\x1e.edulearn.course.v1.EnrollmentR\n" +
	"enrollment\"\x9f\x01\n" +
	"\x11SubmitQuizRequest\x12-\n" +
	"\renrollment_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\fenrollmentId\x12!\n" +
	"\aquiz_id\x18\x02 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\x06quizId\x128\n" +
	"\aanswers\x18\x03 \x03(\v2\x1e.edulearn.course.v1.QuizAnswerR\aanswers\"\x9e\x01\n" +
	"\x12SubmitQuizResponse\x12\x14\n" +
	"\x05score\x18\x01 \x01(\x01R\x05score\x12\x16\n" +
	"\x06passed\x18\x02 \x01(\bR\x06passed\x12\x1a\n" +
	"\battempts\x18\x03 \x01(\x05R\battempts\x12>\n" +
	"\n" +
	"enrollment\x18\x04 \x01(\v2\x1e.edulearn.course.v1.EnrollmentR\n" +
	"enrollment\"H\n" +
	"\x17IssueCertificateRequest\x12-\n" +
	"\renrollment_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\fenrollmentId\"]\n" +
	"\x18IssueCertificateResponse\x12A\n" +
	"\vcertificate\x18\x01 \x01(\v2\x1f.edulearn.course.v1.CertificateR\vcertificate\"H\n" +
	"\x15GetCertificateRequest\x12/\n" +
	"\x0ecertificate_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\rcertificateId\"[\n" +
	"\x16GetCertificateResponse\x12A\n" +
	"\vcertificate\x18\x01 \x01(\v2\x1f.edulearn.course.v1.CertificateR\vcertificate*\x95\x01\n" +
	"\x10EnrollmentStatus\x12!\n" +
	"\x1dENROLLMENT_STATUS_UNSPECIFIED\x10\x00\x12\x1c\n" +
	"\x18ENROLLMENT_STATUS_ACTIVE\x10\x01\x12\x1f\n" +
	"\x1bENROLLMENT_STATUS_COMPLETED\x10\x02\x12\x1f\n" +
	"\x1bENROLLMENT_STATUS_CANCELLED\x10\x03*r\n" +
	"\x10ProgressUnitType\x12\"\n" +
	"\x1ePROGRESS_UNIT_TYPE_UNSPECIFIED\x10\x00\x12\x1d\n" +
	"\x19PROGRESS_UNIT_TYPE_LESSON\x10\x01\x12\x1b\n" +
	"\x17PROGRESS_UNIT_TYPE_QUIZ\x10\x022\xe9\x05\n" +
	"\x11EnrollmentService\x12O\n" +
	"\x06Enroll\x12!.edulearn.course.v1.EnrollRequest\x1a\".edulearn.course.v1.EnrollResponse\x12d\n" +
	"\rGetEnrollment\x12(.edulearn.course.v1.GetEnrollmentRequest\x1a).edulearn.course.v1.GetEnrollmentResponse\x12\x7f\n" +
	"\x16ListStudentEnrollments\x121.edulearn.course.v1.ListStudentEnrollmentsRequest\x1a2.edulearn.course.v1.ListStudentEnrollmentsResponse\x12g\n" +
	"\x0eCompleteLesson\x12).edulearn.course.v1.CompleteLessonRequest\x1a*.edulearn.course.v1.CompleteLessonResponse\x12[\n" +
	"\n" +
	"SubmitQuiz\x12%.edulearn.course.v1.SubmitQuizRequest\x1a&.edulearn.course.v1.SubmitQuizResponse\x12m\n" +
	"\x10IssueCertificate\x12+.edulearn.course.v1.IssueCertificateRequest\x1a,.edulearn.course.v1.IssueCertificateResponse\x12g\n" +
	"\x0eGetCertificate\x12).edulearn.course.v1.GetCertificateRequest\x1a*.edulearn.course.v1.GetCertificateResponseBXZVgithub.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/pkg/api/course/v1;coursev1b\x06proto3"

var (
	file_edulearn_course_v1_enrollment_proto_rawDescOnce sync.Once
	file_edulearn_course_v1_enrollment_proto_rawDescData []byte
)

func file_edulearn_course_v1_enrollment_proto_rawDescGZIP() []byte {
	file_edulearn_course_v1_enrollment_proto_rawDescOnce.Do(func() {
		file_edulearn_course_v1_enrollment_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_edulearn_course_v1_enrollment_proto_rawDesc), len(file_edulearn_course_v1_enrollment_proto_rawDesc)))
	})
	return file_edulearn_course_v1_enrollment_proto_rawDescData
}

var file_edulearn_course_v1_enrollment_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_edulearn_course_v1_enrollment_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_edulearn_course_v1_enrollment_proto_goTypes = []any{
	(EnrollmentStatus)(0),                  // 0: edulearn.course.v1.EnrollmentStatus
	(ProgressUnitType)(0),                  // 1: edulearn.course.v1.ProgressUnitType
	(*ProgressEntry)(nil),                  // 2: edulearn.course.v1.ProgressEntry
	(*Enrollment)(nil),                     // 3: edulearn.course.v1.Enrollment
	(*Certificate)(nil),                    // 4: edulearn.course.v1.Certificate
	(*QuizAnswer)(nil),                     // 5: edulearn.course.v1.QuizAnswer
	(*EnrollRequest)(nil),                  // 6: edulearn.course.v1.EnrollRequest
	(*EnrollResponse)(nil),                 // 7: edulearn.course.v1.EnrollResponse
	(*GetEnrollmentRequest)(nil),           // 8: edulearn.course.v1.GetEnrollmentRequest
	(*GetEnrollmentResponse)(nil),          // 9: edulearn.course.v1.GetEnrollmentResponse
	(*ListStudentEnrollmentsRequest)(nil),  // 10: edulearn.course.v1.ListStudentEnrollmentsRequest
	(*ListStudentEnrollmentsResponse)(nil), // 11: edulearn.course.v1.ListStudentEnrollmentsResponse
	(*CompleteLessonRequest)(nil),          // 12: edulearn.course.v1.CompleteLessonRequest
	(*CompleteLessonResponse)(nil),         // 13: edulearn.course.v1.CompleteLessonResponse
	(*SubmitQuizRequest)(nil),              // 14: edulearn.course.v1.SubmitQuizRequest
	(*SubmitQuizResponse)(nil),             // 15: edulearn.course.v1.SubmitQuizResponse
	(*IssueCertificateRequest)(nil),        // 16: edulearn.course.v1.IssueCertificateRequest
	(*IssueCertificateResponse)(nil),       // 17: edulearn.course.v1.IssueCertificateResponse
	(*GetCertificateRequest)(nil),          // 18: edulearn.course.v1.GetCertificateRequest
	(*GetCertificateResponse)(nil),         // 19: edulearn.course.v1.GetCertificateResponse
	(*timestamppb.Timestamp)(nil),          // 20: google.protobuf.Timestamp
}
var file_edulearn_course_v1_enrollment_proto_depIdxs = []int32{
	1,  // 0: edulearn.course.v1.ProgressEntry.unit_type:type_name -> edulearn.course.v1.ProgressUnitType
	20, // 1: edulearn.course.v1.ProgressEntry.completed_at:type_name -> google.protobuf.Timestamp
	0,  // 2: edulearn.course.v1.Enrollment.status:type_name -> edulearn.course.v1.EnrollmentStatus
	2,  // 3: edulearn.course.v1.Enrollment.progress:type_name -> edulearn.course.v1.ProgressEntry
	20, // 4: edulearn.course.v1.Enrollment.created_at:type_name -> google.protobuf.Timestamp
	20, // 5: edulearn.course.v1.Enrollment.updated_at:type_name -> google.protobuf.Timestamp
	20, // 6: edulearn.course.v1.Enrollment.completed_at:type_name -> google.protobuf.Timestamp
	20, // 7: edulearn.course.v1.Certificate.issue_date:type_name -> google.protobuf.Timestamp
	20, // 8: edulearn.course.v1.Certificate.completed_at:type_name -> google.protobuf.Timestamp
	3,  // 9: edulearn.course.v1.EnrollResponse.enrollment:type_name -> edulearn.course.v1.Enrollment
	3,  // 10: edulearn.course.v1.GetEnrollmentResponse.enrollment:type_name -> edulearn.course.v1.Enrollment
	3,  // 11: edulearn.course.v1.ListStudentEnrollmentsResponse.enrollments:type_name -> edulearn.course.v1.Enrollment
	3,  // 12: edulearn.course.v1.CompleteLessonResponse.enrollment:type_name -> edulearn.course.v1.Enrollment
	5,  // 13: edulearn.course.v1.SubmitQuizRequest.answers:type_name -> edulearn.course.v1.QuizAnswer
	3,  // 14: edulearn.course.v1.SubmitQuizResponse.enrollment:type_name -> edulearn.course.v1.Enrollment
	4,  // 15: edulearn.course.v1.IssueCertificateResponse.certificate:type_name -> edulearn.course.v1.Certificate
	4,  // 16: edulearn.course.v1.GetCertificateResponse.certificate:type_name -> edulearn.course.v1.Certificate
	6,  // 17: edulearn.course.v1.EnrollmentService.Enroll:input_type -> edulearn.course.v1.EnrollRequest
	8,  // 18: edulearn.course.v1.EnrollmentService.GetEnrollment:input_type -> edulearn.course.v1.GetEnrollmentRequest
	10, // 19: edulearn.course.v1.EnrollmentService.ListStudentEnrollments:input_type -> edulearn.course.v1.ListStudentEnrollmentsRequest
	12, // 20: edulearn.course.v1.EnrollmentService.CompleteLesson:input_type -> edulearn.course.v1.CompleteLessonRequest
	14, // 21: edulearn.course.v1.EnrollmentService.SubmitQuiz:input_type -> edulearn.course.v1.SubmitQuizRequest
	16, // 22: edulearn.course.v1.EnrollmentService.IssueCertificate:input_type -> edulearn.course.v1.IssueCertificateRequest
	18, // 23: edulearn.course.v1.EnrollmentService.GetCertificate:input_type -> edulearn.course.v1.GetCertificateRequest
	7,  // 24: edulearn.course.v1.EnrollmentService.Enroll:output_type -> edulearn.course.v1.EnrollResponse
	9,  // 25: edulearn.course.v1.EnrollmentService.GetEnrollment:output_type -> edulearn.course.v1.GetEnrollmentResponse
	11, // 26: edulearn.course.v1.EnrollmentService.ListStudentEnrollments:output_type -> edulearn.course.v1.ListStudentEnrollmentsResponse
	13, // 27: edulearn.course.v1.EnrollmentService.CompleteLesson:output_type -> edulearn.course.v1.CompleteLessonResponse
	15, // 28: edulearn.course.v1.EnrollmentService.SubmitQuiz:output_type -> edulearn.course.v1.SubmitQuizResponse
	17, // 29: edulearn.course.v1.EnrollmentService.IssueCertificate:output_type -> edulearn.course.v1.IssueCertificateResponse
	19, // 30: edulearn.course.v1.EnrollmentService.GetCertificate:output_type -> edulearn.course.v1.GetCertificateResponse
	24, // [24:31] is the sub-list for method output_type
	17, // [17:24] is the sub-list for method input_type
	17, // [17:17] is the sub-list for extension type_name
	17, // [17:17] is the sub-list for extension extendee
	0,  // [0:17] is the sub-list for field type_name
}

func init() { file_edulearn_course_v1_enrollment_proto_init() }
func file_edulearn_course_v1_enrollment_proto_init() {
	if File_edulearn_course_v1_enrollment_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_edulearn_course_v1_enrollment_proto_rawDesc), len(file_edulearn_course_v1_enrollment_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_edulearn_course_v1_enrollment_proto_goTypes,
		DependencyIndexes: file_edulearn_course_v1_enrollment_proto_depIdxs,
		EnumInfos:         file_edulearn_course_v1_enrollment_proto_enumTypes,
		MessageInfos:      file_edulearn_course_v1_enrollment_proto_msgTypes,
	}.Build()
	File_edulearn_course_v1_enrollment_proto = out.File
	file_edulearn_course_v1_enrollment_proto_goTypes = nil
	file_edulearn_course_v1_enrollment_proto_depIdxs = nil
}
