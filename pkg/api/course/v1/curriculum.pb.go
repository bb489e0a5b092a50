// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: edulearn/course/v1/curriculum.proto

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

type LessonContentType int32

const (
	LessonContentType_LESSON_CONTENT_TYPE_UNSPECIFIED LessonContentType = 0
	LessonContentType_LESSON_CONTENT_TYPE_VIDEO       LessonContentType = 1
	LessonContentType_LESSON_CONTENT_TYPE_ARTICLE     LessonContentType = 2
	LessonContentType_LESSON_CONTENT_TYPE_FILE        LessonContentType = 3
)

// Enum value maps for LessonContentType.
var (
	LessonContentType_name = map[int32]string{
		0: "LESSON_CONTENT_TYPE_UNSPECIFIED",
		1: "LESSON_CONTENT_TYPE_VIDEO",
		2: "LESSON_CONTENT_TYPE_ARTICLE",
		3: "LESSON_CONTENT_TYPE_FILE",
	}
	LessonContentType_value = map[string]int32{
		"LESSON_CONTENT_TYPE_UNSPECIFIED": 0,
		"LESSON_CONTENT_TYPE_VIDEO":       1,
		"LESSON_CONTENT_TYPE_ARTICLE":     2,
		"LESSON_CONTENT_TYPE_FILE":        3,
	}
)

func (x LessonContentType) Enum() *LessonContentType {
	p := new(LessonContentType)
	*p = x
	return p
}

func (x LessonContentType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (LessonContentType) Descriptor() protoreflect.EnumDescriptor {
	return file_edulearn_course_v1_curriculum_proto_enumTypes[0].Descriptor()
}

func (LessonContentType) Type() protoreflect.EnumType {
	return &file_edulearn_course_v1_curriculum_proto_enumTypes[0]
}

func (x LessonContentType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use LessonContentType.Descriptor instead.
func (LessonContentType) EnumDescriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{0}
}

type QuestionType int32

const (
	QuestionType_QUESTION_TYPE_UNSPECIFIED     QuestionType = 0
	QuestionType_QUESTION_TYPE_SINGLE_CHOICE   QuestionType = 1
	QuestionType_QUESTION_TYPE_MULTIPLE_CHOICE QuestionType = 2
	QuestionType_QUESTION_TYPE_TRUE_FALSE      QuestionType = 3
	QuestionType_QUESTION_TYPE_SHORT_ANSWER    QuestionType = 4
)

// Enum value maps for QuestionType.
var (
	QuestionType_name = map[int32]string{
		0: "QUESTION_TYPE_UNSPECIFIED",
		1: "QUESTION_TYPE_SINGLE_CHOICE",
		2: "QUESTION_TYPE_MULTIPLE_CHOICE",
		3: "QUESTION_TYPE_TRUE_FALSE",
		4: "QUESTION_TYPE_SHORT_ANSWER",
	}
	QuestionType_value = map[string]int32{
		"QUESTION_TYPE_UNSPECIFIED":     0,
		"QUESTION_TYPE_SINGLE_CHOICE":   1,
		"QUESTION_TYPE_MULTIPLE_CHOICE": 2,
		"QUESTION_TYPE_TRUE_FALSE":      3,
		"QUESTION_TYPE_SHORT_ANSWER":    4,
	}
)

func (x QuestionType) Enum() *QuestionType {
	p := new(QuestionType)
	*p = x
	return p
}

func (x QuestionType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (QuestionType) Descriptor() protoreflect.EnumDescriptor {
	return file_edulearn_course_v1_curriculum_proto_enumTypes[1].Descriptor()
}

func (QuestionType) Type() protoreflect.EnumType {
	return &file_edulearn_course_v1_curriculum_proto_enumTypes[1]
}

func (x QuestionType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use QuestionType.Descriptor instead.
func (QuestionType) EnumDescriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{1}
}

type Section struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CourseId      string                 `protobuf:"bytes,2,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	Order         int32                  `protobuf:"varint,5,opt,name=order,proto3" json:"order,omitempty"`
	IsPublished   bool                   `protobuf:"varint,6,opt,name=is_published,json=isPublished,proto3" json:"is_published,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Section) Reset() {
	*x = Section{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Section) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Section) ProtoMessage() {}

func (x *Section) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Section.ProtoReflect.Descriptor instead.
func (*Section) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{0}
}

func (x *Section) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Section) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *Section) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Section) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Section) GetOrder() int32 {
	if x != nil {
		return x.Order
	}
	return 0
}

func (x *Section) GetIsPublished() bool {
	if x != nil {
		return x.IsPublished
	}
	return false
}

func (x *Section) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Section) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type SectionDraft struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Title         string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Order         int32                  `protobuf:"varint,3,opt,name=order,proto3" json:"order,omitempty"`
	IsPublished   bool                   `protobuf:"varint,4,opt,name=is_published,json=isPublished,proto3" json:"is_published,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SectionDraft) Reset() {
	*x = SectionDraft{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SectionDraft) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SectionDraft) ProtoMessage() {}

func (x *SectionDraft) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SectionDraft.ProtoReflect.Descriptor instead.
func (*SectionDraft) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{1}
}

func (x *SectionDraft) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *SectionDraft) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *SectionDraft) GetOrder() int32 {
	if x != nil {
		return x.Order
	}
	return 0
}

func (x *SectionDraft) GetIsPublished() bool {
	if x != nil {
		return x.IsPublished
	}
	return false
}

type Lesson struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SectionId       string                 `protobuf:"bytes,2,opt,name=section_id,json=sectionId,proto3" json:"section_id,omitempty"`
	CourseId        string                 `protobuf:"bytes,3,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	Title           string                 `protobuf:"bytes,4,opt,name=title,proto3" json:"title,omitempty"`
	Description     string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	ContentType     LessonContentType      `protobuf:"varint,6,opt,name=content_type,json=contentType,proto3,enum=edulearn.course.v1.LessonContentType" json:"content_type,omitempty"`
	ContentUrl      string                 `protobuf:"bytes,7,opt,name=content_url,json=contentUrl,proto3" json:"content_url,omitempty"`
	DurationSeconds int32                  `protobuf:"varint,8,opt,name=duration_seconds,json=durationSeconds,proto3" json:"duration_seconds,omitempty"`
	Order           int32                  `protobuf:"varint,9,opt,name=order,proto3" json:"order,omitempty"`
	IsPreviewable   bool                   `protobuf:"varint,10,opt,name=is_previewable,json=isPreviewable,proto3" json:"is_previewable,omitempty"`
	CreatedAt       *timestamppb.Timestamp `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       *timestamppb.Timestamp `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Lesson) Reset() {
	*x = Lesson{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Lesson) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Lesson) ProtoMessage() {}

func (x *Lesson) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Lesson.ProtoReflect.Descriptor instead.
func (*Lesson) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{2}
}

func (x *Lesson) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Lesson) GetSectionId() string {
	if x != nil {
		return x.SectionId
	}
	return ""
}

func (x *Lesson) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *Lesson) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Lesson) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Lesson) GetContentType() LessonContentType {
	if x != nil {
		return x.ContentType
	}
	return LessonContentType_LESSON_CONTENT_TYPE_UNSPECIFIED
}

func (x *Lesson) GetContentUrl() string {
	if x != nil {
		return x.ContentUrl
	}
	return ""
}

func (x *Lesson) GetDurationSeconds() int32 {
	if x != nil {
		return x.DurationSeconds
	}
	return 0
}

func (x *Lesson) GetOrder() int32 {
	if x != nil {
		return x.Order
	}
	return 0
}

func (x *Lesson) GetIsPreviewable() bool {
	if x != nil {
		return x.IsPreviewable
	}
	return false
}

func (x *Lesson) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Lesson) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type LessonDraft struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Title           string                 `protobuf:"bytes,1,opt,name=title,proto3" json:"title,omitempty"`
	Description     string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	ContentType     LessonContentType      `protobuf:"varint,3,opt,name=content_type,json=contentType,proto3,enum=edulearn.course.v1.LessonContentType" json:"content_type,omitempty"`
	ContentUrl      string                 `protobuf:"bytes,4,opt,name=content_url,json=contentUrl,proto3" json:"content_url,omitempty"`
	DurationSeconds int32                  `protobuf:"varint,5,opt,name=duration_seconds,json=durationSeconds,proto3" json:"duration_seconds,omitempty"`
	Order           int32                  `protobuf:"varint,6,opt,name=order,proto3" json:"order,omitempty"`
	IsPreviewable   bool                   `protobuf:"varint,7,opt,name=is_previewable,json=isPreviewable,proto3" json:"is_previewable,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *LessonDraft) Reset() {
	*x = LessonDraft{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LessonDraft) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LessonDraft) ProtoMessage() {}

func (x *LessonDraft) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LessonDraft.ProtoReflect.Descriptor instead.
func (*LessonDraft) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{3}
}

func (x *LessonDraft) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *LessonDraft) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *LessonDraft) GetContentType() LessonContentType {
	if x != nil {
		return x.ContentType
	}
	return LessonContentType_LESSON_CONTENT_TYPE_UNSPECIFIED
}

func (x *LessonDraft) GetContentUrl() string {
	if x != nil {
		return x.ContentUrl
	}
	return ""
}

func (x *LessonDraft) GetDurationSeconds() int32 {
	if x != nil {
		return x.DurationSeconds
	}
	return 0
}

func (x *LessonDraft) GetOrder() int32 {
	if x != nil {
		return x.Order
	}
	return 0
}

func (x *LessonDraft) GetIsPreviewable() bool {
	if x != nil {
		return x.IsPreviewable
	}
	return false
}

type Question struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Type             QuestionType           `protobuf:"varint,2,opt,name=type,proto3,enum=edulearn.course.v1.QuestionType" json:"type,omitempty"`
	Prompt           string                 `protobuf:"bytes,3,opt,name=prompt,proto3" json:"prompt,omitempty"`
	Options          []string               `protobuf:"bytes,4,rep,name=options,proto3" json:"options,omitempty"`
	CorrectAnswer    string                 `protobuf:"bytes,5,opt,name=correct_answer,json=correctAnswer,proto3" json:"correct_answer,omitempty"`
	Point            int32                  `protobuf:"varint,6,opt,name=point,proto3" json:"point,omitempty"`
	Required         bool                   `protobuf:"varint,7,opt,name=required,proto3" json:"required,omitempty"`
	TimeLimitSeconds int32                  `protobuf:"varint,8,opt,name=time_limit_seconds,json=timeLimitSeconds,proto3" json:"time_limit_seconds,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Question) Reset() {
	*x = Question{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Question) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Question) ProtoMessage() {}

func (x *Question) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Question.ProtoReflect.Descriptor instead.
func (*Question) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{4}
}

func (x *Question) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Question) GetType() QuestionType {
	if x != nil {
		return x.Type
	}
	return QuestionType_QUESTION_TYPE_UNSPECIFIED
}

func (x *Question) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

func (x *Question) GetOptions() []string {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *Question) GetCorrectAnswer() string {
	if x != nil {
		return x.CorrectAnswer
	}
	return ""
}

func (x *Question) GetPoint() int32 {
	if x != nil {
		return x.Point
	}
	return 0
}

func (x *Question) GetRequired() bool {
	if x != nil {
		return x.Required
	}
	return false
}

func (x *Question) GetTimeLimitSeconds() int32 {
	if x != nil {
		return x.TimeLimitSeconds
	}
	return 0
}

type Quiz struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SectionId     string                 `protobuf:"bytes,2,opt,name=section_id,json=sectionId,proto3" json:"section_id,omitempty"`
	CourseId      string                 `protobuf:"bytes,3,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	Questions     []*Question            `protobuf:"bytes,4,rep,name=questions,proto3" json:"questions,omitempty"`
	PassingScore  float64                `protobuf:"fixed64,5,opt,name=passing_score,json=passingScore,proto3" json:"passing_score,omitempty"`
	MaxAttempts   int32                  `protobuf:"varint,6,opt,name=max_attempts,json=maxAttempts,proto3" json:"max_attempts,omitempty"`
	IsRequired    bool                   `protobuf:"varint,7,opt,name=is_required,json=isRequired,proto3" json:"is_required,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Quiz) Reset() {
	*x = Quiz{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Quiz) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Quiz) ProtoMessage() {}

func (x *Quiz) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Quiz.ProtoReflect.Descriptor instead.
func (*Quiz) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{5}
}

func (x *Quiz) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Quiz) GetSectionId() string {
	if x != nil {
		return x.SectionId
	}
	return ""
}

func (x *Quiz) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *Quiz) GetQuestions() []*Question {
	if x != nil {
		return x.Questions
	}
	return nil
}

func (x *Quiz) GetPassingScore() float64 {
	if x != nil {
		return x.PassingScore
	}
	return 0
}

func (x *Quiz) GetMaxAttempts() int32 {
	if x != nil {
		return x.MaxAttempts
	}
	return 0
}

func (x *Quiz) GetIsRequired() bool {
	if x != nil {
		return x.IsRequired
	}
	return false
}

func (x *Quiz) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Quiz) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type QuizDraft struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Questions     []*Question            `protobuf:"bytes,1,rep,name=questions,proto3" json:"questions,omitempty"`
	PassingScore  float64                `protobuf:"fixed64,2,opt,name=passing_score,json=passingScore,proto3" json:"passing_score,omitempty"`
	MaxAttempts   int32                  `protobuf:"varint,3,opt,name=max_attempts,json=maxAttempts,proto3" json:"max_attempts,omitempty"`
	IsRequired    bool                   `protobuf:"varint,4,opt,name=is_required,json=isRequired,proto3" json:"is_required,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QuizDraft) Reset() {
	*x = QuizDraft{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QuizDraft) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QuizDraft) ProtoMessage() {}

func (x *QuizDraft) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QuizDraft.ProtoReflect.Descriptor instead.
func (*QuizDraft) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{6}
}

func (x *QuizDraft) GetQuestions() []*Question {
	if x != nil {
		return x.Questions
	}
	return nil
}

func (x *QuizDraft) GetPassingScore() float64 {
	if x != nil {
		return x.PassingScore
	}
	return 0
}

func (x *QuizDraft) GetMaxAttempts() int32 {
	if x != nil {
		return x.MaxAttempts
	}
	return 0
}

func (x *QuizDraft) GetIsRequired() bool {
	if x != nil {
		return x.IsRequired
	}
	return false
}

type CreateSectionRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	CourseId       string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	Section        *SectionDraft          `protobuf:"bytes,2,opt,name=section,proto3" json:"section,omitempty"`
	IdempotencyKey string                 `protobuf:"bytes,3,opt,name=idempotency_key,json=idempotencyKey,proto3" json:"idempotency_key,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateSectionRequest) Reset() {
	*x = CreateSectionRequest{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSectionRequest) ProtoMessage() {}

func (x *CreateSectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSectionRequest.ProtoReflect.Descriptor instead.
func (*CreateSectionRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{7}
}

func (x *CreateSectionRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *CreateSectionRequest) GetSection() *SectionDraft {
	if x != nil {
		return x.Section
	}
	return nil
}

func (x *CreateSectionRequest) GetIdempotencyKey() string {
	if x != nil {
		return x.IdempotencyKey
	}
	return ""
}

type CreateSectionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Section       *Section               `protobuf:"bytes,1,opt,name=section,proto3" json:"section,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSectionResponse) Reset() {
	*x = CreateSectionResponse{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSectionResponse) ProtoMessage() {}

func (x *CreateSectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSectionResponse.ProtoReflect.Descriptor instead.
func (*CreateSectionResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{8}
}

func (x *CreateSectionResponse) GetSection() *Section {
	if x != nil {
		return x.Section
	}
	return nil
}

type UpdateSectionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SectionId     string                 `protobuf:"bytes,1,opt,name=section_id,json=sectionId,proto3" json:"section_id,omitempty"`
	Section       *SectionDraft          `protobuf:"bytes,2,opt,name=section,proto3" json:"section,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateSectionRequest) Reset() {
	*x = UpdateSectionRequest{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateSectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateSectionRequest) ProtoMessage() {}

func (x *UpdateSectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateSectionRequest.ProtoReflect.Descriptor instead.
func (*UpdateSectionRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{9}
}

func (x *UpdateSectionRequest) GetSectionId() string {
	if x != nil {
		return x.SectionId
	}
	return ""
}

func (x *UpdateSectionRequest) GetSection() *SectionDraft {
	if x != nil {
		return x.Section
	}
	return nil
}

type UpdateSectionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Section       *Section               `protobuf:"bytes,1,opt,name=section,proto3" json:"section,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateSectionResponse) Reset() {
	*x = UpdateSectionResponse{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateSectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateSectionResponse) ProtoMessage() {}

func (x *UpdateSectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateSectionResponse.ProtoReflect.Descriptor instead.
func (*UpdateSectionResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{10}
}

func (x *UpdateSectionResponse) GetSection() *Section {
	if x != nil {
		return x.Section
	}
	return nil
}

type DeleteSectionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SectionId     string                 `protobuf:"bytes,1,opt,name=section_id,json=sectionId,proto3" json:"section_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteSectionRequest) Reset() {
	*x = DeleteSectionRequest{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteSectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteSectionRequest) ProtoMessage() {}

func (x *DeleteSectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteSectionRequest.ProtoReflect.Descriptor instead.
func (*DeleteSectionRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{11}
}

func (x *DeleteSectionRequest) GetSectionId() string {
	if x != nil {
		return x.SectionId
	}
	return ""
}

type DeleteSectionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteSectionResponse) Reset() {
	*x = DeleteSectionResponse{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteSectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteSectionResponse) ProtoMessage() {}

func (x *DeleteSectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteSectionResponse.ProtoReflect.Descriptor instead.
func (*DeleteSectionResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{12}
}

type ListCourseSectionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CourseId      string                 `protobuf:"bytes,1,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCourseSectionsRequest) Reset() {
	*x = ListCourseSectionsRequest{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCourseSectionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCourseSectionsRequest) ProtoMessage() {}

func (x *ListCourseSectionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCourseSectionsRequest.ProtoReflect.Descriptor instead.
func (*ListCourseSectionsRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{13}
}

func (x *ListCourseSectionsRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

type ListCourseSectionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Sections      []*Section             `protobuf:"bytes,1,rep,name=sections,proto3" json:"sections,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCourseSectionsResponse) Reset() {
	*x = ListCourseSectionsResponse{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCourseSectionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCourseSectionsResponse) ProtoMessage() {}

func (x *ListCourseSectionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCourseSectionsResponse.ProtoReflect.Descriptor instead.
func (*ListCourseSectionsResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{14}
}

func (x *ListCourseSectionsResponse) GetSections() []*Section {
	if x != nil {
		return x.Sections
	}
	return nil
}

type CreateLessonRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	SectionId      string                 `protobuf:"bytes,1,opt,name=section_id,json=sectionId,proto3" json:"section_id,omitempty"`
	Lesson         *LessonDraft           `protobuf:"bytes,2,opt,name=lesson,proto3" json:"lesson,omitempty"`
	IdempotencyKey string                 `protobuf:"bytes,3,opt,name=idempotency_key,json=idempotencyKey,proto3" json:"idempotency_key,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateLessonRequest) Reset() {
	*x = CreateLessonRequest{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateLessonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateLessonRequest) ProtoMessage() {}

func (x *CreateLessonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateLessonRequest.ProtoReflect.Descriptor instead.
func (*CreateLessonRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{15}
}

func (x *CreateLessonRequest) GetSectionId() string {
	if x != nil {
		return x.SectionId
	}
	return ""
}

func (x *CreateLessonRequest) GetLesson() *LessonDraft {
	if x != nil {
		return x.Lesson
	}
	return nil
}

func (x *CreateLessonRequest) GetIdempotencyKey() string {
	if x != nil {
		return x.IdempotencyKey
	}
	return ""
}

type CreateLessonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lesson        *Lesson                `protobuf:"bytes,1,opt,name=lesson,proto3" json:"lesson,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateLessonResponse) Reset() {
	*x = CreateLessonResponse{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateLessonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateLessonResponse) ProtoMessage() {}

func (x *CreateLessonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateLessonResponse.ProtoReflect.Descriptor instead.
func (*CreateLessonResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{16}
}

func (x *CreateLessonResponse) GetLesson() *Lesson {
	if x != nil {
		return x.Lesson
	}
	return nil
}

type UpdateLessonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LessonId      string                 `protobuf:"bytes,1,opt,name=lesson_id,json=lessonId,proto3" json:"lesson_id,omitempty"`
	Lesson        *LessonDraft           `protobuf:"bytes,2,opt,name=lesson,proto3" json:"lesson,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateLessonRequest) Reset() {
	*x = UpdateLessonRequest{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateLessonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateLessonRequest) ProtoMessage() {}

func (x *UpdateLessonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateLessonRequest.ProtoReflect.Descriptor instead.
func (*UpdateLessonRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{17}
}

func (x *UpdateLessonRequest) GetLessonId() string {
	if x != nil {
		return x.LessonId
	}
	return ""
}

func (x *UpdateLessonRequest) GetLesson() *LessonDraft {
	if x != nil {
		return x.Lesson
	}
	return nil
}

type UpdateLessonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lesson        *Lesson                `protobuf:"bytes,1,opt,name=lesson,proto3" json:"lesson,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateLessonResponse) Reset() {
	*x = UpdateLessonResponse{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateLessonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateLessonResponse) ProtoMessage() {}

func (x *UpdateLessonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateLessonResponse.ProtoReflect.Descriptor instead.
func (*UpdateLessonResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{18}
}

func (x *UpdateLessonResponse) GetLesson() *Lesson {
	if x != nil {
		return x.Lesson
	}
	return nil
}

type DeleteLessonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	LessonId      string                 `protobuf:"bytes,1,opt,name=lesson_id,json=lessonId,proto3" json:"lesson_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteLessonRequest) Reset() {
	*x = DeleteLessonRequest{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteLessonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteLessonRequest) ProtoMessage() {}

func (x *DeleteLessonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteLessonRequest.ProtoReflect.Descriptor instead.
func (*DeleteLessonRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{19}
}

func (x *DeleteLessonRequest) GetLessonId() string {
	if x != nil {
		return x.LessonId
	}
	return ""
}

type DeleteLessonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteLessonResponse) Reset() {
	*x = DeleteLessonResponse{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteLessonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteLessonResponse) ProtoMessage() {}

func (x *DeleteLessonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteLessonResponse.ProtoReflect.Descriptor instead.
func (*DeleteLessonResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{20}
}

type ListSectionLessonsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SectionId     string                 `protobuf:"bytes,1,opt,name=section_id,json=sectionId,proto3" json:"section_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSectionLessonsRequest) Reset() {
	*x = ListSectionLessonsRequest{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSectionLessonsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSectionLessonsRequest) ProtoMessage() {}

func (x *ListSectionLessonsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSectionLessonsRequest.ProtoReflect.Descriptor instead.
func (*ListSectionLessonsRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{21}
}

func (x *ListSectionLessonsRequest) GetSectionId() string {
	if x != nil {
		return x.SectionId
	}
	return ""
}

type ListSectionLessonsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lessons       []*Lesson              `protobuf:"bytes,1,rep,name=lessons,proto3" json:"lessons,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSectionLessonsResponse) Reset() {
	*x = ListSectionLessonsResponse{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSectionLessonsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSectionLessonsResponse) ProtoMessage() {}

func (x *ListSectionLessonsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSectionLessonsResponse.ProtoReflect.Descriptor instead.
func (*ListSectionLessonsResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{22}
}

func (x *ListSectionLessonsResponse) GetLessons() []*Lesson {
	if x != nil {
		return x.Lessons
	}
	return nil
}

type CreateQuizRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	SectionId      string                 `protobuf:"bytes,1,opt,name=section_id,json=sectionId,proto3" json:"section_id,omitempty"`
	Quiz           *QuizDraft             `protobuf:"bytes,2,opt,name=quiz,proto3" json:"quiz,omitempty"`
	IdempotencyKey string                 `protobuf:"bytes,3,opt,name=idempotency_key,json=idempotencyKey,proto3" json:"idempotency_key,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateQuizRequest) Reset() {
	*x = CreateQuizRequest{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateQuizRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateQuizRequest) ProtoMessage() {}

func (x *CreateQuizRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateQuizRequest.ProtoReflect.Descriptor instead.
func (*CreateQuizRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{23}
}

func (x *CreateQuizRequest) GetSectionId() string {
	if x != nil {
		return x.SectionId
	}
	return ""
}

func (x *CreateQuizRequest) GetQuiz() *QuizDraft {
	if x != nil {
		return x.Quiz
	}
	return nil
}

func (x *CreateQuizRequest) GetIdempotencyKey() string {
	if x != nil {
		return x.IdempotencyKey
	}
	return ""
}

type CreateQuizResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Quiz          *Quiz                  `protobuf:"bytes,1,opt,name=quiz,proto3" json:"quiz,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateQuizResponse) Reset() {
	*x = CreateQuizResponse{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateQuizResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateQuizResponse) ProtoMessage() {}

func (x *CreateQuizResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateQuizResponse.ProtoReflect.Descriptor instead.
func (*CreateQuizResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{24}
}

func (x *CreateQuizResponse) GetQuiz() *Quiz {
	if x != nil {
		return x.Quiz
	}
	return nil
}

type UpdateQuizRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	QuizId        string                 `protobuf:"bytes,1,opt,name=quiz_id,json=quizId,proto3" json:"quiz_id,omitempty"`
	Quiz          *QuizDraft             `protobuf:"bytes,2,opt,name=quiz,proto3" json:"quiz,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateQuizRequest) Reset() {
	*x = UpdateQuizRequest{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateQuizRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateQuizRequest) ProtoMessage() {}

func (x *UpdateQuizRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateQuizRequest.ProtoReflect.Descriptor instead.
func (*UpdateQuizRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{25}
}

func (x *UpdateQuizRequest) GetQuizId() string {
	if x != nil {
		return x.QuizId
	}
	return ""
}

func (x *UpdateQuizRequest) GetQuiz() *QuizDraft {
	if x != nil {
		return x.Quiz
	}
	return nil
}

type UpdateQuizResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Quiz          *Quiz                  `protobuf:"bytes,1,opt,name=quiz,proto3" json:"quiz,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateQuizResponse) Reset() {
	*x = UpdateQuizResponse{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateQuizResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateQuizResponse) ProtoMessage() {}

func (x *UpdateQuizResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateQuizResponse.ProtoReflect.Descriptor instead.
func (*UpdateQuizResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{26}
}

func (x *UpdateQuizResponse) GetQuiz() *Quiz {
	if x != nil {
		return x.Quiz
	}
	return nil
}

type DeleteQuizRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	QuizId        string                 `protobuf:"bytes,1,opt,name=quiz_id,json=quizId,proto3" json:"quiz_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteQuizRequest) Reset() {
	*x = DeleteQuizRequest{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteQuizRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteQuizRequest) ProtoMessage() {}

func (x *DeleteQuizRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteQuizRequest.ProtoReflect.Descriptor instead.
func (*DeleteQuizRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{27}
}

func (x *DeleteQuizRequest) GetQuizId() string {
	if x != nil {
		return x.QuizId
	}
	return ""
}

type DeleteQuizResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteQuizResponse) Reset() {
	*x = DeleteQuizResponse{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteQuizResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteQuizResponse) ProtoMessage() {}

func (x *DeleteQuizResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteQuizResponse.ProtoReflect.Descriptor instead.
func (*DeleteQuizResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{28}
}

type GetSectionQuizRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SectionId     string                 `protobuf:"bytes,1,opt,name=section_id,json=sectionId,proto3" json:"section_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSectionQuizRequest) Reset() {
	*x = GetSectionQuizRequest{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSectionQuizRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSectionQuizRequest) ProtoMessage() {}

func (x *GetSectionQuizRequest) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSectionQuizRequest.ProtoReflect.Descriptor instead.
func (*GetSectionQuizRequest) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{29}
}

func (x *GetSectionQuizRequest) GetSectionId() string {
	if x != nil {
		return x.SectionId
	}
	return ""
}

type GetSectionQuizResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Quiz          *Quiz                  `protobuf:"bytes,1,opt,name=quiz,proto3" json:"quiz,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSectionQuizResponse) Reset() {
	*x = GetSectionQuizResponse{}
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSectionQuizResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSectionQuizResponse) ProtoMessage() {}

func (x *GetSectionQuizResponse) ProtoReflect() protoreflect.Message {
	mi := &file_edulearn_course_v1_curriculum_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSectionQuizResponse.ProtoReflect.Descriptor instead.
func (*GetSectionQuizResponse) Descriptor() ([]byte, []int) {
	return file_edulearn_course_v1_curriculum_proto_rawDescGZIP(), []int{30}
}

func (x *GetSectionQuizResponse) GetQuiz() *Quiz {
	if x != nil {
		return x.Quiz
	}
	return nil
}

var File_edulearn_course_v1_curriculum_proto protoreflect.FileDescriptor

const file_edulearn_course_v1_curriculum_proto_rawDesc = "" +
	"\n" +
	"#edulearn/course/v1/curriculum.proto\x12\x12edulearn.course.v1\x1a\x1bbuf/validate/validate.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\x9d\x02\n" +
	"\aSection\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tcourse_id\x18\x02 \x01(\tR\bcourseId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x14\n" +
	"\x05order\x18\x05 \x01(\x05R\x05order\x12!\n" +
	"\fis_published\x18\x06 \x01(\bR\visPublished\x129\n" +
	"\n" +
	"created_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\x91\x01\n" +
	"\fSectionDraft\x12\x1d\n" +
	"\x05title\x18\x01 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x05title\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x1d\n" +
	"\x05order\x18\x03 \x01(\x05B\a\xbaH\x04\x1a\x02(\x00R\x05order\x12!\n" +
	"\fis_published\x18\x04 \x01(\bR\visPublished\"\xd5\x03\n" +
	"\x06Lesson\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"section_id\x18\x02 \x01(\tR\tsectionId\x12\x1b\n" +
	"\tcourse_id\x18\x03 \x01(\tR\bcourseId\x12\x14\n" +
	"\x05title\x18\x04 \x01(\tR\x05title\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x12H\n" +
	"\fcontent_type\x18\x06 \x01(\x0e2%.edulearn.course.v1.LessonContentTypeR\vcontentType\x12\x1f\n" +
	"\vcontent_url\x18\a \x01(\tR\n" +
	"contentUrl\x12)\n" +
	"\x10duration_seconds\x18\b \x01(\x05R\x0fdurationSeconds\x12\x14\n" +
	"\x05order\x18\t \x01(\x05R\x05order\x12%\n" +
	"\x0eis_previewable\x18\n" +
	" \x01(\bR\risPreviewable\x129\n" +
	"\n" +
	"created_at\x18\v \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\f \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xb3\x02\n" +
	"\vLessonDraft\x12\x1d\n" +
	"\x05title\x18\x01 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x05title\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12H\n" +
	"\fcontent_type\x18\x03 \x01(\x0e2%.edulearn.course.v1.LessonContentTypeR\vcontentType\x12\x1f\n" +
	"\vcontent_url\x18\x04 \x01(\tR\n" +
	"contentUrl\x122\n" +
	"\x10duration_seconds\x18\x05 \x01(\x05B\a\xbaH\x04\x1a\x02(\x00R\x0fdurationSeconds\x12\x1d\n" +
	"\x05order\x18\x06 \x01(\x05B\a\xbaH\x04\x1a\x02(\x00R\x05order\x12%\n" +
	"\x0eis_previewable\x18\a \x01(\bR\risPreviewable\"\x9b\x02\n" +
	"\bQuestion\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x124\n" +
	"\x04type\x18\x02 \x01(\x0e2 .edulearn.course.v1.QuestionTypeR\x04type\x12\x1f\n" +
	"\x06prompt\x18\x03 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x06prompt\x12\x18\n" +
	"\aoptions\x18\x04 \x03(\tR\aoptions\x12%\n" +
	"\x0ecorrect_answer\x18\x05 \x01(\tR\rcorrectAnswer\x12\x1d\n" +
	"\x05point\x18\x06 \x01(\x05B\a\xbaH\x04\x1a\x02 \x00R\x05point\x12\x1a\n" +
	"\brequired\x18\a \x01(\bR\brequired\x12,\n" +
	"\x12time_limit_seconds\x18\b \x01(\x05R\x10timeLimitSeconds\"\xed\x02\n" +
	"\x04Quiz\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"section_id\x18\x02 \x01(\tR\tsectionId\x12\x1b\n" +
	"\tcourse_id\x18\x03 \x01(\tR\bcourseId\x12:\n" +
	"\tquestions\x18\x04 \x03(\v2\x1c.edulearn.course.v1.QuestionR\tquestions\x12#\n" +
	"\rpassing_score\x18\x05 \x01(\x01R\fpassingScore\x12!\n" +
	"\fmax_attempts\x18\x06 \x01(\x05R\vmaxAttempts\x12\x1f\n" +
	"\vis_required\x18\a \x01(\bR\n" +
	"isRequired\x129\n" +
	"\n" +
	"created_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xdc\x01\n" +
	"\tQuizDraft\x12D\n" +
	"\tquestions\x18\x01 \x03(\v2\x1c.edulearn.course.v1.QuestionB\b\xbaH\x05\x92\x01\x02\b\x01R\tquestions\x12<\n" +
	"\rpassing_score\x18\x02 \x01(\x01B\x17\xbaH\x14\x12\x12\x19\x00\x00\x00\x00\x00\x00Y@)\x00\x00\x00\x00\x00\x00\x00\x00R\fpassingScore\x12*\n" +
	"\fmax_attempts\x18\x03 \x01(\x05B\a\xbaH\x04\x1a\x02(\x00R\vmaxAttempts\x12\x1f\n" +
	"\vis_required\x18\x04 \x01(\bR\n" +
	"isRequired\"\xb3\x01\n" +
	"\x14CreateSectionRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\x12B\n" +
	"\asection\x18\x02 \x01(\v2 .edulearn.course.v1.SectionDraftB\x06\xbaH\x03\xc8\x01\x01R\asection\x120\n" +
	"\x0fidempotency_key\x18\x03 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x0eidempotencyKey\"N\n" +
	"\x15CreateSectionResponse\x125\n" +
	"\asection\x18\x01 \x01(\v2\x1b.edulearn.course.v1.SectionR\asection\"\x83\x01\n" +
	"\x14UpdateSectionRequest\x12'\n" +
	"\n" +
	"section_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\tsectionId\x12B\n" +
	"\asection\x18\x02 \x01(\v2 .edulearn.course.v1.SectionDraftB\x06\xbaH\x03\xc8\x01\x01R\asection\"N\n" +
	"\x15UpdateSectionResponse\x125\n" +
	"\asection\x18\x01 \x01(\v2\x1b.edulearn.course.v1.SectionR\asection\"?\n" +
	"\x14DeleteSectionRequest\x12'\n" +
	"\n" +
	"section_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\tsectionId\"\x17\n" +
	"\x15DeleteSectionResponse\"B\n" +
	"\x19ListCourseSectionsRequest\x12%\n" +
	"\tcourse_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\bcourseId\"U\n" +
	"\x1aListCourseSectionsResponse\x127\n" +
	"\bsections\x18\x01 \x03(\v2\x1b.edulearn.course.v1.SectionR\bsections\"\xb1\x01\n" +
	"\x13CreateLessonRequest\x12'\n" +
	"\n" +
	"section_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\tsectionId\x12?\n" +
	"\x06lesson\x18\x02 \x01(\v2\x1f.edulearn.course.v1.LessonDraftB\x06\xbaH\x03\xc8\x01\x01R\x06lesson\x120\n" +
	"\x0fidempotency_key\x18\x03 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x0eidempotencyKey\"J\n" +
	"\x14CreateLessonResponse\x122\n" +
	"\x06lesson\x18\x01 \x01(\v2\x1a.edulearn.course.v1.LessonR\x06lesson\"}\n" +
	"\x13UpdateLessonRequest\x12%\n" +
	"\tlesson_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\blessonId\x12?\n" +
	"\x06lesson\x18\x02 \x01(\v2\x1f.edulearn.course.v1.LessonDraftB\x06\xbaH\x03\xc8\x01\x01R\x06lesson\"J\n" +
	"\x14UpdateLessonResponse\x122\n" +
	"\x06lesson\x18\x01 \x01(\v2\x1a.edulearn.course.v1.LessonR\x06lesson\"<\n" +
	"\x13DeleteLessonRequest\x12%\n" +
	"\tlesson_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\blessonId\"\x16\n" +
	"\x14DeleteLessonResponse\"D\n" +
	"\x19ListSectionLessonsRequest\x12'\n" +
	"\n" +
	"section_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\tsectionId\"R\n" +
	"\x1aListSectionLessonsResponse\x124\n" +
	"\alessons\x18\x01 \x03(\v2\x1a.edulearn.course.v1.LessonR\alessons\"\xa9\x01\n" +
	"\x11CreateQuizRequest\x12'\n" +
	"\n" +
	"section_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\tsectionId\x129\n" +
	"\x04quiz\x18\x02 \x01(\v2\x1d.edulearn.course.v1.QuizDraftB\x06\xbaH\x03\xc8\x01\x01R\x04quiz\x120\n" +
	"\x0fidempotency_key\x18\x03 \x01(\tB\a\xbaH\x04r\x02\x10\x01R\x0eidempotencyKey\"B\n" +
	"\x12CreateQuizResponse\x12,\n" +
	"\x04quiz\x18\x01 \x01(\v2\x18.edulearn.course.v1.QuizR\x04quiz\"q\n" +
	"\x11UpdateQuizRequest\x12!\n" +
	"\aquiz_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\x06quizId\x129\n" +
	"\x04quiz\x18\x02 \x01(\v2\x1d.edulearn.course.v1.QuizDraftB\x06\xbaH\x03\xc8\x01\x01R\x04quiz\"B\n" +
	"\x12UpdateQuizResponse\x12,\n" +
	"\x04quiz\x18\x01 \x01(\v2\x18.edulearn.course.v1.QuizR\x04quiz\"6\n" +
	"\x11DeleteQuizRequest\x12!\n" +
	"\aquiz_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\x06quizId\"\x14\n" +
	"\x12DeleteQuizResponse\"@\n" +
	"\x15GetSectionQuizRequest\x12'\n" +
	"\n" +
	"section_id\x18\x01 \x01(\tB\b\xbaH\x05r\x03\xb0\x01\x01R\tsectionId\"F\n" +
	"\x16GetSectionQuizResponse\x12,\n" +
	"\x04quiz\x18\x01 \x01(\v2\x18.edulearn.course.v1.QuizR\x04quiz*\x96\x01\n" +
	"\x11LessonContentType\x12#\n" +
	"\x1fLESSON_CONTENT_TYPE_UNSPECIFIED\x10\x00\x12\x1d\n" +
	"\x19LESSON_CONTENT_TYPE_VIDEO\x10\x01\x12\x1f\n" +
	"\x1bLESSON_CONTENT_TYPE_ARTICLE\x10\x02\x12\x1c\n" +
	"\x18LESSON_CONTENT_TYPE_FILE\x10\x03*\xaf\x01\n" +
	"\fQuestionType\x12\x1d\n" +
	"\x19QUESTION_TYPE_UNSPECIFIED\x10\x00\x12\x1f\n" +
	"\x1bQUESTION_TYPE_SINGLE_CHOICE\x10\x01\x12!\n" +
	"\x1dQUESTION_TYPE_MULTIPLE_CHOICE\x10\x02\x12\x1c\n" +
	"\x18QUESTION_TYPE_TRUE_FALSE\x10\x03\x12\x1e\n" +
	"\x1aQUESTION_TYPE_SHORT_ANSWER\x10\x042\xd8\t\n" +
	"\x11CurriculumService\x12d\n" +
	"\rCreateSection\x12(.edulearn.course.v1.CreateSectionRequest\x1a).edulearn.course.v1.CreateSectionResponse\x12d\n" +
	"\rUpdateSection\x12(.edulearn.course.v1.UpdateSectionRequest\x1a).edulearn.course.v1.UpdateSectionResponse\x12d\n" +
	"\rDeleteSection\x12(.edulearn.course.v1.DeleteSectionRequest\x1a).edulearn.course.v1.DeleteSectionResponse\x12s\n" +
	"\x12ListCourseSections\x12-.edulearn.course.v1.ListCourseSectionsRequest\x1a..edulearn.course.v1.ListCourseSectionsResponse\x12a\n" +
	"\fCreateLesson\x12'.edulearn.course.v1.CreateLessonRequest\x1a(.edulearn.course.v1.CreateLessonResponse\x12a\n" +
	"\fUpdateLesson\x12'.edulearn.course.v1.UpdateLessonRequest\x1a(.edulearn.course.v1.UpdateLessonResponse\x12a\n" +
	"\fDeleteLesson\x12'.edulearn.course.v1.DeleteLessonRequest\x1a(.edulearn.course.v1.DeleteLessonResponse\x12s\n" +
	"\x12ListSectionLessons\x12-.edulearn.course.v1.ListSectionLessonsRequest\x1a..edulearn.course.v1.ListSectionLessonsResponse\x12[\n" +
	"\n" +
	"CreateQuiz\x12%.edulearn.course.v1.CreateQuizRequest\x1a&.edulearn.course.v1.CreateQuizResponse\x12[\n" +
	"\n" +
	"UpdateQuiz\x12%.edulearn.course.v1.UpdateQuizRequest\x1a&.edulearn.course.v1.UpdateQuizResponse\x12[\n" +
	"\n" +
	"DeleteQuiz\x12%.edulearn.course.v1.DeleteQuizRequest\x1a&.edulearn.course.v1.DeleteQuizResponse\x12g\n" +
	"\x0eGetSectionQuiz\x12).edulearn.course.v1.GetSectionQuizRequest\x1a*.edulearn.course.v1.GetSectionQuizResponseBXZVgithub.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/pkg/api/course/v1;coursev1b\x06proto3"

var (
	file_edulearn_course_v1_curriculum_proto_rawDescOnce sync.Once
	file_edulearn_course_v1_curriculum_proto_rawDescData []byte
)

func file_edulearn_course_v1_curriculum_proto_rawDescGZIP() []byte {
	file_edulearn_course_v1_curriculum_proto_rawDescOnce.Do(func() {
		file_edulearn_course_v1_curriculum_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_edulearn_course_v1_curriculum_proto_rawDesc), len(file_edulearn_course_v1_curriculum_proto_rawDesc)))
	})
	return file_edulearn_course_v1_curriculum_proto_rawDescData
}

var file_edulearn_course_v1_curriculum_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_edulearn_course_v1_curriculum_proto_msgTypes = make([]protoimpl.MessageInfo, 31)
var file_edulearn_course_v1_curriculum_proto_goTypes = []any{
	(LessonContentType)(0),             // 0: edulearn.course.v1.LessonContentType
	(QuestionType)(0),                  // 1: edulearn.course.v1.QuestionType
	(*Section)(nil),                    // 2: edulearn.course.v1.Section
	(*SectionDraft)(nil),               // 3: edulearn.course.v1.SectionDraft
	(*Lesson)(nil),                     // 4: edulearn.course.v1.Lesson
	(*LessonDraft)(nil),                // 5: edulearn.course.v1.LessonDraft
	(*Question)(nil),                   // 6: edulearn.course.v1.Question
	(*Quiz)(nil),                       // 7: edulearn.course.v1.Quiz
	(*QuizDraft)(nil),                  // 8: edulearn.course.v1.QuizDraft
	(*CreateSectionRequest)(nil),       // 9: edulearn.course.v1.CreateSectionRequest
	(*CreateSectionResponse)(nil),      // 10: edulearn.course.v1.CreateSectionResponse
	(*UpdateSectionRequest)(nil),       // 11: edulearn.course.v1.UpdateSectionRequest
	(*UpdateSectionResponse)(nil),      // 12: edulearn.course.v1.UpdateSectionResponse
	(*DeleteSectionRequest)(nil),       // 13: edulearn.course.v1.DeleteSectionRequest
	(*DeleteSectionResponse)(nil),      // 14: edulearn.course.v1.DeleteSectionResponse
	(*ListCourseSectionsRequest)(nil),  // 15: edulearn.course.v1.ListCourseSectionsRequest
	(*ListCourseSectionsResponse)(nil), // 16: edulearn.course.v1.ListCourseSectionsResponse
	(*CreateLessonRequest)(nil),        // 17: edulearn.course.v1.CreateLessonRequest
	(*CreateLessonResponse)(nil),       // 18: edulearn.course.v1.CreateLessonResponse
	(*UpdateLessonRequest)(nil),        // 19: edulearn.course.v1.UpdateLessonRequest
	(*UpdateLessonResponse)(nil),       // 20: edulearn.course.v1.UpdateLessonResponse
	(*DeleteLessonRequest)(nil),        // 21: edulearn.course.v1.DeleteLessonRequest
	(*DeleteLessonResponse)(nil),       // 22: edulearn.course.v1.DeleteLessonResponse
	(*ListSectionLessonsRequest)(nil),  // 23: edulearn.course.v1.ListSectionLessonsRequest
	(*ListSectionLessonsResponse)(nil), // 24: edulearn.course.v1.ListSectionLessonsResponse
	(*CreateQuizRequest)(nil),          // 25: edulearn.course.v1.CreateQuizRequest
	(*CreateQuizResponse)(nil),         // 26: edulearn.course.v1.CreateQuizResponse
	(*UpdateQuizRequest)(nil),          // 27: edulearn.course.v1.UpdateQuizRequest
	(*UpdateQuizResponse)(nil),         // 28: edulearn.course.v1.UpdateQuizResponse
	(*DeleteQuizRequest)(nil),          // 29: edulearn.course.v1.DeleteQuizRequest
	(*DeleteQuizResponse)(nil),         // 30: edulearn.course.v1.DeleteQuizResponse
	(*GetSectionQuizRequest)(nil),      // 31: edulearn.course.v1.GetSectionQuizRequest
	(*GetSectionQuizResponse)(nil),     // 32: edulearn.course.v1.GetSectionQuizResponse
	(*timestamppb.Timestamp)(nil),      // 33: google.protobuf.Timestamp
}
var file_edulearn_course_v1_curriculum_proto_depIdxs = []int32{
	33, // 0: edulearn.course.v1.Section.created_at:type_name -> google.protobuf.Timestamp
	33, // 1: edulearn.course.v1.Section.updated_at:type_name -> google.protobuf.Timestamp
	0,  // 2: edulearn.course.v1.Lesson.content_type:type_name -> edulearn.course.v1.LessonContentType
	33, // 3: edulearn.course.v1.Lesson.created_at:type_name -> google.protobuf.Timestamp
	33, // 4: edulearn.course.v1.Lesson.updated_at:type_name -> google.protobuf.Timestamp
	0,  // 5: edulearn.course.v1.LessonDraft.content_type:type_name -> edulearn.course.v1.LessonContentType
	1,  // 6: edulearn.course.v1.Question.type:type_name -> edulearn.course.v1.QuestionType
	6,  // 7: edulearn.course.v1.Quiz.questions:type_name -> edulearn.course.v1.Question
	33, // 8: edulearn.course.v1.Quiz.created_at:type_name -> google.protobuf.Timestamp
	33, // 9: edulearn.course.v1.Quiz.updated_at:type_name -> google.protobuf.Timestamp
	6,  // 10: edulearn.course.v1.QuizDraft.questions:type_name -> edulearn.course.v1.Question
	3,  // 11: edulearn.course.v1.CreateSectionRequest.section:type_name -> edulearn.course.v1.SectionDraft
	2,  // 12: edulearn.course.v1.CreateSectionResponse.section:type_name -> edulearn.course.v1.Section
	3,  // 13: edulearn.course.v1.UpdateSectionRequest.section:type_name -> edulearn.course.v1.SectionDraft
	2,  // 14: edulearn.course.v1.UpdateSectionResponse.section:type_name -> edulearn.course.v1.Section
	2,  // 15: edulearn.course.v1.ListCourseSectionsResponse.sections:type_name -> edulearn.course.v1.Section
	5,  // 16: edulearn.course.v1.CreateLessonRequest.lesson:type_name -> edulearn.course.v1.LessonDraft
	4,  // 17: edulearn.course.v1.CreateLessonResponse.lesson:type_name -> edulearn.course.v1.Lesson
	5,  // 18: edulearn.course.v1.UpdateLessonRequest.lesson:type_name -> edulearn.course.v1.LessonDraft
	4,  // 19: edulearn.course.v1.UpdateLessonResponse.lesson:type_name -> edulearn.course.v1.Lesson
	4,  // 20: edulearn.course.v1.ListSectionLessonsResponse.lessons:type_name -> edulearn.course.v1.Lesson
	8,  // 21: edulearn.course.v1.CreateQuizRequest.quiz:type_name -> edulearn.course.v1.QuizDraft
	7,  // 22: edulearn.course.v1.CreateQuizResponse.quiz:type_name -> edulearn.course.v1.Quiz
	8,  // 23: edulearn.course.v1.UpdateQuizRequest.quiz:type_name -> edulearn.course.v1.QuizDraft
	7,  // 24: edulearn.course.v1.UpdateQuizResponse.quiz:type_name -> edulearn.course.v1.Quiz
	7,  // 25: edulearn.course.v1.GetSectionQuizResponse.quiz:type_name -> edulearn.course.v1.Quiz
	9,  // 26: edulearn.course.v1.CurriculumService.CreateSection:input_type -> edulearn.course.v1.CreateSectionRequest
	11, // 27: edulearn.course.v1.CurriculumService.UpdateSection:input_type -> edulearn.course.v1.UpdateSectionRequest
	13, // 28: edulearn.course.v1.CurriculumService.DeleteSection:input_type -> edulearn.course.v1.DeleteSectionRequest
	15, // 29: edulearn.course.v1.CurriculumService.ListCourseSections:input_type -> edulearn.course.v1.ListCourseSectionsRequest
	17, // 30: edulearn.course.v1.CurriculumService.CreateLesson:input_type -> edulearn.course.v1.CreateLessonRequest
	19, // 31: edulearn.course.v1.CurriculumService.UpdateLesson:input_type -> edulearn.course.v1.UpdateLessonRequest
	21, // 32: edulearn.course.v1.CurriculumService.DeleteLesson:input_type -> edulearn.course.v1.DeleteLessonRequest
	23, // 33: edulearn.course.v1.CurriculumService.ListSectionLessons:input_type -> edulearn.course.v1.ListSectionLessonsRequest
	25, // 34: edulearn.course.v1.CurriculumService.CreateQuiz:input_type -> edulearn.course.v1.CreateQuizRequest
	27, // 35: edulearn.course.v1.CurriculumService.UpdateQuiz:input_type -> edulearn.course.v1.UpdateQuizRequest
	29, // 36: edulearn.course.v1.CurriculumService.DeleteQuiz:input_type -> edulearn.course.v1.DeleteQuizRequest
	31, // 37: edulearn.course.v1.CurriculumService.GetSectionQuiz:input_type -> edulearn.course.v1.GetSectionQuizRequest
	10, // 38: edulearn.course.v1.CurriculumService.CreateSection:output_type -> edulearn.course.v1.CreateSectionResponse
	12, // 39: edulearn.course.v1.CurriculumService.UpdateSection:output_type -> edulearn.course.v1.UpdateSectionResponse
	14, // 40: edulearn.course.v1.CurriculumService.DeleteSection:output_type -> edulearn.course.v1.DeleteSectionResponse
	16, // 41: edulearn.course.v1.CurriculumService.ListCourseSections:output_type -> edulearn.course.v1.ListCourseSectionsResponse
	18, // 42: edulearn.course.v1.CurriculumService.CreateLesson:output_type -> edulearn.course.v1.CreateLessonResponse
	20, // 43: edulearn.course.v1.CurriculumService.UpdateLesson:output_type -> edulearn.course.v1.UpdateLessonResponse
	22, // 44: edulearn.course.v1.CurriculumService.DeleteLesson:output_type -> edulearn.course.v1.DeleteLessonResponse
	24, // 45: edulearn.course.v1.CurriculumService.ListSectionLessons:output_type -> edulearn.course.v1.ListSectionLessonsResponse
	26, // 46: edulearn.course.v1.CurriculumService.CreateQuiz:output_type -> edulearn.course.v1.CreateQuizResponse
	28, // 47: edulearn.course.v1.CurriculumService.UpdateQuiz:output_type -> edulearn.course.v1.UpdateQuizResponse
	30, // 48: edulearn.course.v1.CurriculumService.DeleteQuiz:output_type -> edulearn.course.v1.DeleteQuizResponse
	32, // 49: edulearn.course.v1.CurriculumService.GetSectionQuiz:output_type -> edulearn.course.v1.GetSectionQuizResponse
	38, // [38:50] is the sub-list for method output_type
	26, // [26:38] is the sub-list for method input_type
	26, // [26:26] is the sub-list for extension type_name
	26, // [26:26] is the sub-list for extension extendee
	0,  // [0:26] is the sub-list for field type_name
}

func init() { file_edulearn_course_v1_curriculum_proto_init() }
func file_edulearn_course_v1_curriculum_proto_init() {
	if File_edulearn_course_v1_curriculum_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_edulearn_course_v1_curriculum_proto_rawDesc), len(file_edulearn_course_v1_curriculum_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   31,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_edulearn_course_v1_curriculum_proto_goTypes,
		DependencyIndexes: file_edulearn_course_v1_curriculum_proto_depIdxs,
		EnumInfos:         file_edulearn_course_v1_curriculum_proto_enumTypes,
		MessageInfos:      file_edulearn_course_v1_curriculum_proto_msgTypes,
	}.Build()
	File_edulearn_course_v1_curriculum_proto = out.File
	file_edulearn_course_v1_curriculum_proto_goTypes = nil
	file_edulearn_course_v1_curriculum_proto_depIdxs = nil
}
