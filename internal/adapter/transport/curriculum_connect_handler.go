package transport

import (
	"context"
	"fmt"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
	coursev1 "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/pkg/api/course/v1"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/pkg/api/course/v1/coursev1connect"
)

// CurriculumHandler implements the generated Connect service for sections,
// lessons, and quizzes.
type CurriculumHandler struct {
	service core.CurriculumService
}

// NewCurriculumHandler constructs a Curriculum handler backed by the
// provided service.
func NewCurriculumHandler(service core.CurriculumService) *CurriculumHandler {
	return &CurriculumHandler{service: service}
}

var _ coursev1connect.CurriculumServiceHandler = (*CurriculumHandler)(nil)

func (h *CurriculumHandler) CreateSection(ctx context.Context, req *connect.Request[coursev1.CreateSectionRequest]) (*connect.Response[coursev1.CreateSectionResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	courseID, err := parseID("course_id", req.Msg.GetCourseId())
	if err != nil {
		return nil, err
	}

	section, err := h.service.CreateSection(ctx, core.CreateSectionParams{
		Actor:          actor,
		CourseID:       courseID,
		IdempotencyKey: req.Msg.GetIdempotencyKey(),
		Draft:          fromProtoSectionDraft(req.Msg.GetSection()),
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.CreateSectionResponse{
		Section: toProtoSection(section),
	}), nil
}

func (h *CurriculumHandler) UpdateSection(ctx context.Context, req *connect.Request[coursev1.UpdateSectionRequest]) (*connect.Response[coursev1.UpdateSectionResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	id, err := parseID("section_id", req.Msg.GetSectionId())
	if err != nil {
		return nil, err
	}

	section, err := h.service.UpdateSection(ctx, core.UpdateSectionParams{
		Actor: actor,
		ID:    id,
		Draft: fromProtoSectionDraft(req.Msg.GetSection()),
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.UpdateSectionResponse{
		Section: toProtoSection(section),
	}), nil
}

func (h *CurriculumHandler) DeleteSection(ctx context.Context, req *connect.Request[coursev1.DeleteSectionRequest]) (*connect.Response[coursev1.DeleteSectionResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	id, err := parseID("section_id", req.Msg.GetSectionId())
	if err != nil {
		return nil, err
	}

	if err := h.service.DeleteSection(ctx, actor, id); err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.DeleteSectionResponse{}), nil
}

func (h *CurriculumHandler) ListCourseSections(ctx context.Context, req *connect.Request[coursev1.ListCourseSectionsRequest]) (*connect.Response[coursev1.ListCourseSectionsResponse], error) {
	courseID, err := parseID("course_id", req.Msg.GetCourseId())
	if err != nil {
		return nil, err
	}

	sections, err := h.service.ListCourseSections(ctx, courseID)
	if err != nil {
		return nil, err
	}

	protoSections := make([]*coursev1.Section, 0, len(sections))
	for i := range sections {
		protoSections = append(protoSections, toProtoSection(&sections[i]))
	}

	return connect.NewResponse(&coursev1.ListCourseSectionsResponse{
		Sections: protoSections,
	}), nil
}

func (h *CurriculumHandler) CreateLesson(ctx context.Context, req *connect.Request[coursev1.CreateLessonRequest]) (*connect.Response[coursev1.CreateLessonResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	sectionID, err := parseID("section_id", req.Msg.GetSectionId())
	if err != nil {
		return nil, err
	}

	draft, err := fromProtoLessonDraft(req.Msg.GetLesson())
	if err != nil {
		return nil, err
	}

	lesson, err := h.service.CreateLesson(ctx, core.CreateLessonParams{
		Actor:          actor,
		SectionID:      sectionID,
		IdempotencyKey: req.Msg.GetIdempotencyKey(),
		Draft:          draft,
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.CreateLessonResponse{
		Lesson: toProtoLesson(lesson),
	}), nil
}

func (h *CurriculumHandler) UpdateLesson(ctx context.Context, req *connect.Request[coursev1.UpdateLessonRequest]) (*connect.Response[coursev1.UpdateLessonResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	id, err := parseID("lesson_id", req.Msg.GetLessonId())
	if err != nil {
		return nil, err
	}

	draft, err := fromProtoLessonDraft(req.Msg.GetLesson())
	if err != nil {
		return nil, err
	}

	lesson, err := h.service.UpdateLesson(ctx, core.UpdateLessonParams{
		Actor: actor,
		ID:    id,
		Draft: draft,
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.UpdateLessonResponse{
		Lesson: toProtoLesson(lesson),
	}), nil
}

func (h *CurriculumHandler) DeleteLesson(ctx context.Context, req *connect.Request[coursev1.DeleteLessonRequest]) (*connect.Response[coursev1.DeleteLessonResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	id, err := parseID("lesson_id", req.Msg.GetLessonId())
	if err != nil {
		return nil, err
	}

	if err := h.service.DeleteLesson(ctx, actor, id); err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.DeleteLessonResponse{}), nil
}

func (h *CurriculumHandler) ListSectionLessons(ctx context.Context, req *connect.Request[coursev1.ListSectionLessonsRequest]) (*connect.Response[coursev1.ListSectionLessonsResponse], error) {
	sectionID, err := parseID("section_id", req.Msg.GetSectionId())
	if err != nil {
		return nil, err
	}

	lessons, err := h.service.ListSectionLessons(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	protoLessons := make([]*coursev1.Lesson, 0, len(lessons))
	for i := range lessons {
		protoLessons = append(protoLessons, toProtoLesson(&lessons[i]))
	}

	return connect.NewResponse(&coursev1.ListSectionLessonsResponse{
		Lessons: protoLessons,
	}), nil
}

func (h *CurriculumHandler) CreateQuiz(ctx context.Context, req *connect.Request[coursev1.CreateQuizRequest]) (*connect.Response[coursev1.CreateQuizResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	sectionID, err := parseID("section_id", req.Msg.GetSectionId())
	if err != nil {
		return nil, err
	}

	draft, err := fromProtoQuizDraft(req.Msg.GetQuiz())
	if err != nil {
		return nil, err
	}

	quiz, err := h.service.CreateQuiz(ctx, core.CreateQuizParams{
		Actor:          actor,
		SectionID:      sectionID,
		IdempotencyKey: req.Msg.GetIdempotencyKey(),
		Draft:          draft,
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.CreateQuizResponse{
		Quiz: toProtoQuiz(quiz),
	}), nil
}

func (h *CurriculumHandler) UpdateQuiz(ctx context.Context, req *connect.Request[coursev1.UpdateQuizRequest]) (*connect.Response[coursev1.UpdateQuizResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	id, err := parseID("quiz_id", req.Msg.GetQuizId())
	if err != nil {
		return nil, err
	}

	draft, err := fromProtoQuizDraft(req.Msg.GetQuiz())
	if err != nil {
		return nil, err
	}

	quiz, err := h.service.UpdateQuiz(ctx, core.UpdateQuizParams{
		Actor: actor,
		ID:    id,
		Draft: draft,
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.UpdateQuizResponse{
		Quiz: toProtoQuiz(quiz),
	}), nil
}

func (h *CurriculumHandler) DeleteQuiz(ctx context.Context, req *connect.Request[coursev1.DeleteQuizRequest]) (*connect.Response[coursev1.DeleteQuizResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	id, err := parseID("quiz_id", req.Msg.GetQuizId())
	if err != nil {
		return nil, err
	}

	if err := h.service.DeleteQuiz(ctx, actor, id); err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.DeleteQuizResponse{}), nil
}

func (h *CurriculumHandler) GetSectionQuiz(ctx context.Context, req *connect.Request[coursev1.GetSectionQuizRequest]) (*connect.Response[coursev1.GetSectionQuizResponse], error) {
	sectionID, err := parseID("section_id", req.Msg.GetSectionId())
	if err != nil {
		return nil, err
	}

	quiz, err := h.service.GetSectionQuiz(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.GetSectionQuizResponse{
		Quiz: toProtoQuiz(quiz),
	}), nil
}

func fromProtoSectionDraft(draft *coursev1.SectionDraft) core.SectionDraft {
	return core.SectionDraft{
		Title:       draft.GetTitle(),
		Description: draft.GetDescription(),
		Order:       int(draft.GetOrder()),
		IsPublished: draft.GetIsPublished(),
	}
}

func toProtoSection(section *core.Section) *coursev1.Section {
	if section == nil {
		return nil
	}

	res := &coursev1.Section{
		Id:          section.ID.String(),
		CourseId:    section.CourseID.String(),
		Title:       section.Title,
		Description: section.Description,
		Order:       int32(section.Order),
		IsPublished: section.IsPublished,
	}

	if !section.CreatedAt.IsZero() {
		res.CreatedAt = timestamppb.New(section.CreatedAt)
	}
	if !section.UpdatedAt.IsZero() {
		res.UpdatedAt = timestamppb.New(section.UpdatedAt)
	}

	return res
}

func fromProtoLessonDraft(draft *coursev1.LessonDraft) (core.LessonDraft, error) {
	contentType, err := fromProtoLessonContentType(draft.GetContentType())
	if err != nil {
		return core.LessonDraft{}, err
	}

	return core.LessonDraft{
		Title:           draft.GetTitle(),
		Description:     draft.GetDescription(),
		ContentType:     contentType,
		ContentURL:      draft.GetContentUrl(),
		DurationSeconds: int(draft.GetDurationSeconds()),
		Order:           int(draft.GetOrder()),
		IsPreviewable:   draft.GetIsPreviewable(),
	}, nil
}

func toProtoLesson(lesson *core.Lesson) *coursev1.Lesson {
	if lesson == nil {
		return nil
	}

	res := &coursev1.Lesson{
		Id:              lesson.ID.String(),
		SectionId:       lesson.SectionID.String(),
		CourseId:        lesson.CourseID.String(),
		Title:           lesson.Title,
		Description:     lesson.Description,
		ContentType:     toProtoLessonContentType(lesson.ContentType),
		ContentUrl:      lesson.ContentURL,
		DurationSeconds: int32(lesson.DurationSeconds),
		Order:           int32(lesson.Order),
		IsPreviewable:   lesson.IsPreviewable,
	}

	if !lesson.CreatedAt.IsZero() {
		res.CreatedAt = timestamppb.New(lesson.CreatedAt)
	}
	if !lesson.UpdatedAt.IsZero() {
		res.UpdatedAt = timestamppb.New(lesson.UpdatedAt)
	}

	return res
}

func fromProtoLessonContentType(contentType coursev1.LessonContentType) (core.LessonContentType, error) {
	switch contentType {
	case coursev1.LessonContentType_LESSON_CONTENT_TYPE_UNSPECIFIED:
		return core.LessonContentTypeUnspecified, nil
	case coursev1.LessonContentType_LESSON_CONTENT_TYPE_VIDEO:
		return core.LessonContentTypeVideo, nil
	case coursev1.LessonContentType_LESSON_CONTENT_TYPE_ARTICLE:
		return core.LessonContentTypeArticle, nil
	case coursev1.LessonContentType_LESSON_CONTENT_TYPE_FILE:
		return core.LessonContentTypeFile, nil
	default:
		return core.LessonContentTypeUnspecified, fmt.Errorf("%w: invalid lesson content type %d", core.ErrValidation, contentType)
	}
}

func toProtoLessonContentType(contentType core.LessonContentType) coursev1.LessonContentType {
	switch contentType {
	case core.LessonContentTypeVideo:
		return coursev1.LessonContentType_LESSON_CONTENT_TYPE_VIDEO
	case core.LessonContentTypeArticle:
		return coursev1.LessonContentType_LESSON_CONTENT_TYPE_ARTICLE
	case core.LessonContentTypeFile:
		return coursev1.LessonContentType_LESSON_CONTENT_TYPE_FILE
	case core.LessonContentTypeUnspecified:
		fallthrough
	default:
		return coursev1.LessonContentType_LESSON_CONTENT_TYPE_UNSPECIFIED
	}
}

func fromProtoQuizDraft(draft *coursev1.QuizDraft) (core.QuizDraft, error) {
	questions := make([]core.Question, 0, len(draft.GetQuestions()))
	for _, question := range draft.GetQuestions() {
		converted, err := fromProtoQuestion(question)
		if err != nil {
			return core.QuizDraft{}, err
		}
		questions = append(questions, converted)
	}

	return core.QuizDraft{
		Questions:    questions,
		PassingScore: draft.GetPassingScore(),
		MaxAttempts:  int(draft.GetMaxAttempts()),
		IsRequired:   draft.GetIsRequired(),
	}, nil
}

func toProtoQuiz(quiz *core.Quiz) *coursev1.Quiz {
	if quiz == nil {
		return nil
	}

	questions := make([]*coursev1.Question, 0, len(quiz.Questions))
	for _, question := range quiz.Questions {
		questions = append(questions, toProtoQuestion(question))
	}

	res := &coursev1.Quiz{
		Id:           quiz.ID.String(),
		SectionId:    quiz.SectionID.String(),
		CourseId:     quiz.CourseID.String(),
		Questions:    questions,
		PassingScore: quiz.PassingScore,
		MaxAttempts:  int32(quiz.MaxAttempts),
		IsRequired:   quiz.IsRequired,
	}

	if !quiz.CreatedAt.IsZero() {
		res.CreatedAt = timestamppb.New(quiz.CreatedAt)
	}
	if !quiz.UpdatedAt.IsZero() {
		res.UpdatedAt = timestamppb.New(quiz.UpdatedAt)
	}

	return res
}

func fromProtoQuestion(question *coursev1.Question) (core.Question, error) {
	questionType, err := fromProtoQuestionType(question.GetType())
	if err != nil {
		return core.Question{}, err
	}

	var id uuid.UUID
	if question.GetId() != "" {
		id, err = parseID("question id", question.GetId())
		if err != nil {
			return core.Question{}, err
		}
	}

	return core.Question{
		ID:               id,
		Type:             questionType,
		Prompt:           question.GetPrompt(),
		Options:          question.GetOptions(),
		CorrectAnswer:    question.GetCorrectAnswer(),
		Point:            int(question.GetPoint()),
		Required:         question.GetRequired(),
		TimeLimitSeconds: int(question.GetTimeLimitSeconds()),
	}, nil
}

func toProtoQuestion(question core.Question) *coursev1.Question {
	return &coursev1.Question{
		Id:               question.ID.String(),
		Type:             toProtoQuestionType(question.Type),
		Prompt:           question.Prompt,
		Options:          question.Options,
		CorrectAnswer:    question.CorrectAnswer,
		Point:            int32(question.Point),
		Required:         question.Required,
		TimeLimitSeconds: int32(question.TimeLimitSeconds),
	}
}

func fromProtoQuestionType(questionType coursev1.QuestionType) (core.QuestionType, error) {
	switch questionType {
	case coursev1.QuestionType_QUESTION_TYPE_UNSPECIFIED:
		return core.QuestionTypeUnspecified, nil
	case coursev1.QuestionType_QUESTION_TYPE_SINGLE_CHOICE:
		return core.QuestionTypeSingleChoice, nil
	case coursev1.QuestionType_QUESTION_TYPE_MULTIPLE_CHOICE:
		return core.QuestionTypeMultipleChoice, nil
	case coursev1.QuestionType_QUESTION_TYPE_TRUE_FALSE:
		return core.QuestionTypeTrueFalse, nil
	case coursev1.QuestionType_QUESTION_TYPE_SHORT_ANSWER:
		return core.QuestionTypeShortAnswer, nil
	default:
		return core.QuestionTypeUnspecified, fmt.Errorf("%w: invalid question type %d", core.ErrValidation, questionType)
	}
}

func toProtoQuestionType(questionType core.QuestionType) coursev1.QuestionType {
	switch questionType {
	case core.QuestionTypeSingleChoice:
		return coursev1.QuestionType_QUESTION_TYPE_SINGLE_CHOICE
	case core.QuestionTypeMultipleChoice:
		return coursev1.QuestionType_QUESTION_TYPE_MULTIPLE_CHOICE
	case core.QuestionTypeTrueFalse:
		return coursev1.QuestionType_QUESTION_TYPE_TRUE_FALSE
	case core.QuestionTypeShortAnswer:
		return coursev1.QuestionType_QUESTION_TYPE_SHORT_ANSWER
	case core.QuestionTypeUnspecified:
		fallthrough
	default:
		return coursev1.QuestionType_QUESTION_TYPE_UNSPECIFIED
	}
}
