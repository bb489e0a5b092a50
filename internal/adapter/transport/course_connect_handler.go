package transport

import (
	"context"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	fieldmaskpb "google.golang.org/protobuf/types/known/fieldmaskpb"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
	coursev1 "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/pkg/api/course/v1"
	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/pkg/api/course/v1/coursev1connect"
)

// CourseHandler implements the generated Connect service for course
// lifecycle operations.
type CourseHandler struct {
	service core.CourseService
}

// NewCourseHandler constructs a Course handler backed by the provided service.
func NewCourseHandler(service core.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

var _ coursev1connect.CourseServiceHandler = (*CourseHandler)(nil)

// CreateCourse creates a draft course owned by the calling instructor.
func (h *CourseHandler) CreateCourse(ctx context.Context, req *connect.Request[coursev1.CreateCourseRequest]) (*connect.Response[coursev1.CreateCourseResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	draft, err := fromProtoCourseDraft(req.Msg.GetCourse())
	if err != nil {
		return nil, err
	}

	created, err := h.service.CreateCourse(ctx, core.CreateCourseParams{
		Actor:          actor,
		IdempotencyKey: req.Msg.GetIdempotencyKey(),
		Draft:          draft,
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.CreateCourseResponse{
		Course: toProtoCourse(created),
	}), nil
}

// GetCourse returns details for a single course.
func (h *CourseHandler) GetCourse(ctx context.Context, req *connect.Request[coursev1.GetCourseRequest]) (*connect.Response[coursev1.GetCourseResponse], error) {
	id, err := parseID("course_id", req.Msg.GetCourseId())
	if err != nil {
		return nil, err
	}

	course, err := h.service.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.GetCourseResponse{
		Course: toProtoCourse(course),
	}), nil
}

// ListCourses returns a filtered, paginated collection of courses.
func (h *CourseHandler) ListCourses(ctx context.Context, req *connect.Request[coursev1.ListCoursesRequest]) (*connect.Response[coursev1.ListCoursesResponse], error) {
	statuses, err := fromProtoCourseStatuses(req.Msg.GetStatuses())
	if err != nil {
		return nil, err
	}

	level, err := fromProtoCourseLevel(req.Msg.GetLevel())
	if err != nil {
		return nil, err
	}

	var instructorID uuid.UUID
	if req.Msg.GetInstructorId() != "" {
		instructorID, err = parseID("instructor_id", req.Msg.GetInstructorId())
		if err != nil {
			return nil, err
		}
	}

	courses, nextToken, err := h.service.ListCourses(ctx, core.CourseListFilter{
		PageSize:     int(req.Msg.GetPageSize()),
		PageToken:    req.Msg.GetPageToken(),
		Statuses:     statuses,
		Category:     req.Msg.GetCategory(),
		Level:        level,
		InstructorID: instructorID,
		Query:        req.Msg.GetQuery(),
	})
	if err != nil {
		return nil, err
	}

	protoCourses := make([]*coursev1.Course, 0, len(courses))
	for i := range courses {
		protoCourses = append(protoCourses, toProtoCourse(&courses[i]))
	}

	return connect.NewResponse(&coursev1.ListCoursesResponse{
		Courses:       protoCourses,
		NextPageToken: nextToken,
	}), nil
}

// UpdateCourse applies partial updates to a course.
func (h *CourseHandler) UpdateCourse(ctx context.Context, req *connect.Request[coursev1.UpdateCourseRequest]) (*connect.Response[coursev1.UpdateCourseResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	id, err := parseID("course_id", req.Msg.GetCourseId())
	if err != nil {
		return nil, err
	}

	existing, err := h.service.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	draft := core.CourseDraft{
		Title:         existing.Title,
		Subtitle:      existing.Subtitle,
		Description:   existing.Description,
		Category:      existing.Category,
		Level:         existing.Level,
		Language:      existing.Language,
		ThumbnailURL:  existing.ThumbnailURL,
		Price:         existing.Price,
		DiscountPrice: existing.DiscountPrice,
	}

	mask := req.Msg.GetUpdateMask()
	if isFieldMaskEmpty(mask) {
		mask = &fieldmaskpb.FieldMask{
			Paths: []string{"title", "subtitle", "description", "category", "level", "language", "thumbnail_url", "price", "discount_price"},
		}
	}

	if err := applyCourseFieldMask(&draft, req.Msg.GetCourse(), mask); err != nil {
		return nil, err
	}

	updated, err := h.service.UpdateCourse(ctx, core.UpdateCourseParams{
		Actor: actor,
		ID:    id,
		Draft: draft,
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.UpdateCourseResponse{
		Course: toProtoCourse(updated),
	}), nil
}

// PublishCourse makes a course visible in the catalog.
func (h *CourseHandler) PublishCourse(ctx context.Context, req *connect.Request[coursev1.PublishCourseRequest]) (*connect.Response[coursev1.PublishCourseResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	id, err := parseID("course_id", req.Msg.GetCourseId())
	if err != nil {
		return nil, err
	}

	course, err := h.service.PublishCourse(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.PublishCourseResponse{
		Course: toProtoCourse(course),
	}), nil
}

// UnpublishCourse hides a published course from the catalog.
func (h *CourseHandler) UnpublishCourse(ctx context.Context, req *connect.Request[coursev1.UnpublishCourseRequest]) (*connect.Response[coursev1.UnpublishCourseResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	id, err := parseID("course_id", req.Msg.GetCourseId())
	if err != nil {
		return nil, err
	}

	course, err := h.service.UnpublishCourse(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.UnpublishCourseResponse{
		Course: toProtoCourse(course),
	}), nil
}

// DeleteCourse performs a soft delete of a course.
func (h *CourseHandler) DeleteCourse(ctx context.Context, req *connect.Request[coursev1.DeleteCourseRequest]) (*connect.Response[coursev1.DeleteCourseResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	id, err := parseID("course_id", req.Msg.GetCourseId())
	if err != nil {
		return nil, err
	}

	if err := h.service.DeleteCourse(ctx, actor, id); err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.DeleteCourseResponse{}), nil
}

func fromProtoCourseDraft(draft *coursev1.CourseDraft) (core.CourseDraft, error) {
	if draft == nil {
		return core.CourseDraft{}, fmt.Errorf("%w: course draft required", core.ErrValidation)
	}

	level, err := fromProtoCourseLevel(draft.GetLevel())
	if err != nil {
		return core.CourseDraft{}, err
	}

	result := core.CourseDraft{
		Title:        draft.GetTitle(),
		Subtitle:     draft.GetSubtitle(),
		Description:  draft.GetDescription(),
		Category:     draft.GetCategory(),
		Level:        level,
		Language:     draft.GetLanguage(),
		ThumbnailURL: draft.GetThumbnailUrl(),
		Price:        draft.GetPrice(),
	}

	if draft.DiscountPrice != nil {
		price := draft.GetDiscountPrice()
		result.DiscountPrice = &price
	}

	return result, nil
}

func applyCourseFieldMask(target *core.CourseDraft, patch *coursev1.CourseDraft, mask *fieldmaskpb.FieldMask) error {
	if patch == nil {
		return fmt.Errorf("%w: course draft required", core.ErrValidation)
	}

	for _, path := range mask.Paths {
		switch strings.ToLower(path) {
		case "title":
			target.Title = patch.GetTitle()
		case "subtitle":
			target.Subtitle = patch.GetSubtitle()
		case "description":
			target.Description = patch.GetDescription()
		case "category":
			target.Category = patch.GetCategory()
		case "level":
			level, err := fromProtoCourseLevel(patch.GetLevel())
			if err != nil {
				return err
			}
			target.Level = level
		case "language":
			target.Language = patch.GetLanguage()
		case "thumbnail_url":
			target.ThumbnailURL = patch.GetThumbnailUrl()
		case "price":
			target.Price = patch.GetPrice()
		case "discount_price":
			if patch.DiscountPrice == nil {
				target.DiscountPrice = nil
			} else {
				price := patch.GetDiscountPrice()
				target.DiscountPrice = &price
			}
		default:
			return fmt.Errorf("%w: unsupported update path %q", core.ErrValidation, path)
		}
	}
	return nil
}

func toProtoCourse(course *core.Course) *coursev1.Course {
	if course == nil {
		return nil
	}

	res := &coursev1.Course{
		Id:              course.ID.String(),
		InstructorId:    course.InstructorID.String(),
		Title:           course.Title,
		Slug:            course.Slug,
		Subtitle:        course.Subtitle,
		Description:     course.Description,
		Category:        course.Category,
		Level:           toProtoCourseLevel(course.Level),
		Language:        course.Language,
		ThumbnailUrl:    course.ThumbnailURL,
		Price:           course.Price,
		Status:          toProtoCourseStatus(course.Status),
		Rating:          course.Rating,
		NumberOfRating:  int32(course.NumberOfRating),
		SectionCount:    int32(course.SectionCount),
		LessonCount:     int32(course.LessonCount),
		QuizCount:       int32(course.QuizCount),
		EnrollmentCount: int32(course.EnrollmentCount),
	}

	res.DiscountPrice = course.DiscountPrice

	if !course.CreatedAt.IsZero() {
		res.CreatedAt = timestamppb.New(course.CreatedAt)
	}
	if !course.UpdatedAt.IsZero() {
		res.UpdatedAt = timestamppb.New(course.UpdatedAt)
	}
	if course.PublishedAt != nil {
		res.PublishedAt = timestamppb.New(*course.PublishedAt)
	}

	return res
}

func fromProtoCourseStatus(status coursev1.CourseStatus) (core.CourseStatus, error) {
	switch status {
	case coursev1.CourseStatus_COURSE_STATUS_UNSPECIFIED:
		return core.CourseStatusUnspecified, nil
	case coursev1.CourseStatus_COURSE_STATUS_DRAFT:
		return core.CourseStatusDraft, nil
	case coursev1.CourseStatus_COURSE_STATUS_PUBLISHED:
		return core.CourseStatusPublished, nil
	case coursev1.CourseStatus_COURSE_STATUS_UNPUBLISHED:
		return core.CourseStatusUnpublished, nil
	default:
		return core.CourseStatusUnspecified, fmt.Errorf("%w: invalid course status %d", core.ErrValidation, status)
	}
}

func toProtoCourseStatus(status core.CourseStatus) coursev1.CourseStatus {
	switch status {
	case core.CourseStatusDraft:
		return coursev1.CourseStatus_COURSE_STATUS_DRAFT
	case core.CourseStatusPublished:
		return coursev1.CourseStatus_COURSE_STATUS_PUBLISHED
	case core.CourseStatusUnpublished:
		return coursev1.CourseStatus_COURSE_STATUS_UNPUBLISHED
	case core.CourseStatusUnspecified:
		fallthrough
	default:
		return coursev1.CourseStatus_COURSE_STATUS_UNSPECIFIED
	}
}

func fromProtoCourseLevel(level coursev1.CourseLevel) (core.CourseLevel, error) {
	switch level {
	case coursev1.CourseLevel_COURSE_LEVEL_UNSPECIFIED:
		return core.CourseLevelUnspecified, nil
	case coursev1.CourseLevel_COURSE_LEVEL_BEGINNER:
		return core.CourseLevelBeginner, nil
	case coursev1.CourseLevel_COURSE_LEVEL_INTERMEDIATE:
		return core.CourseLevelIntermediate, nil
	case coursev1.CourseLevel_COURSE_LEVEL_ADVANCED:
		return core.CourseLevelAdvanced, nil
	default:
		return core.CourseLevelUnspecified, fmt.Errorf("%w: invalid course level %d", core.ErrValidation, level)
	}
}

func toProtoCourseLevel(level core.CourseLevel) coursev1.CourseLevel {
	switch level {
	case core.CourseLevelBeginner:
		return coursev1.CourseLevel_COURSE_LEVEL_BEGINNER
	case core.CourseLevelIntermediate:
		return coursev1.CourseLevel_COURSE_LEVEL_INTERMEDIATE
	case core.CourseLevelAdvanced:
		return coursev1.CourseLevel_COURSE_LEVEL_ADVANCED
	case core.CourseLevelUnspecified:
		fallthrough
	default:
		return coursev1.CourseLevel_COURSE_LEVEL_UNSPECIFIED
	}
}

func fromProtoCourseStatuses(statuses []coursev1.CourseStatus) ([]core.CourseStatus, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	result := make([]core.CourseStatus, 0, len(statuses))
	for _, s := range statuses {
		status, err := fromProtoCourseStatus(s)
		if err != nil {
			return nil, err
		}
		result = append(result, status)
	}
	return result, nil
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s %q", core.ErrValidation, field, value)
	}
	return id, nil
}

func isFieldMaskEmpty(mask *fieldmaskpb.FieldMask) bool {
	return mask == nil || len(mask.Paths) == 0
}
