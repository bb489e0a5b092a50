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

// ReviewHandler implements the generated Connect service for course reviews.
type ReviewHandler struct {
	service core.ReviewService
}

// NewReviewHandler constructs a Review handler backed by the provided service.
func NewReviewHandler(service core.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

var _ coursev1connect.ReviewServiceHandler = (*ReviewHandler)(nil)

func (h *ReviewHandler) CreateReview(ctx context.Context, req *connect.Request[coursev1.CreateReviewRequest]) (*connect.Response[coursev1.CreateReviewResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	courseID, err := parseID("course_id", req.Msg.GetCourseId())
	if err != nil {
		return nil, err
	}

	user, err := fromProtoReviewUser(req.Msg.GetUser(), actor)
	if err != nil {
		return nil, err
	}

	review, err := h.service.CreateReview(ctx, core.CreateReviewParams{
		Actor:    actor,
		User:     user,
		CourseID: courseID,
		Rating:   int(req.Msg.GetRating()),
		Comment:  req.Msg.GetComment(),
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.CreateReviewResponse{
		Review: toProtoReview(review),
	}), nil
}

func (h *ReviewHandler) UpdateReview(ctx context.Context, req *connect.Request[coursev1.UpdateReviewRequest]) (*connect.Response[coursev1.UpdateReviewResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	id, err := parseID("review_id", req.Msg.GetReviewId())
	if err != nil {
		return nil, err
	}

	review, err := h.service.UpdateReview(ctx, core.UpdateReviewParams{
		Actor:   actor,
		ID:      id,
		Rating:  int(req.Msg.GetRating()),
		Comment: req.Msg.GetComment(),
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.UpdateReviewResponse{
		Review: toProtoReview(review),
	}), nil
}

func (h *ReviewHandler) DeleteReview(ctx context.Context, req *connect.Request[coursev1.DeleteReviewRequest]) (*connect.Response[coursev1.DeleteReviewResponse], error) {
	actor, err := actorFromHeader(req.Header())
	if err != nil {
		return nil, err
	}

	id, err := parseID("review_id", req.Msg.GetReviewId())
	if err != nil {
		return nil, err
	}

	if err := h.service.DeleteReview(ctx, actor, id); err != nil {
		return nil, err
	}

	return connect.NewResponse(&coursev1.DeleteReviewResponse{}), nil
}

func (h *ReviewHandler) ListCourseReviews(ctx context.Context, req *connect.Request[coursev1.ListCourseReviewsRequest]) (*connect.Response[coursev1.ListCourseReviewsResponse], error) {
	courseID, err := parseID("course_id", req.Msg.GetCourseId())
	if err != nil {
		return nil, err
	}

	reviews, nextToken, err := h.service.ListCourseReviews(ctx, core.ReviewListFilter{
		CourseID:  courseID,
		PageSize:  int(req.Msg.GetPageSize()),
		PageToken: req.Msg.GetPageToken(),
	})
	if err != nil {
		return nil, err
	}

	protoReviews := make([]*coursev1.Review, 0, len(reviews))
	for i := range reviews {
		protoReviews = append(protoReviews, toProtoReview(&reviews[i]))
	}

	return connect.NewResponse(&coursev1.ListCourseReviewsResponse{
		Reviews:       protoReviews,
		NextPageToken: nextToken,
	}), nil
}

// fromProtoReviewUser builds the denormalized user snapshot for a review.
// The snapshot identity always comes from the authenticated actor, never
// from the request body.
func fromProtoReviewUser(user *coursev1.ReviewUser, actor core.Actor) (core.ReviewUser, error) {
	if user == nil {
		return core.ReviewUser{}, fmt.Errorf("%w: review user snapshot required", core.ErrValidation)
	}

	return core.ReviewUser{
		ID:        actor.UserID,
		Name:      user.GetName(),
		AvatarURL: user.GetAvatarUrl(),
		Email:     user.GetEmail(),
	}, nil
}

func toProtoReview(review *core.Review) *coursev1.Review {
	if review == nil {
		return nil
	}

	res := &coursev1.Review{
		Id:           review.ID.String(),
		UserId:       review.UserID.String(),
		User:         toProtoReviewUser(review.User),
		CourseId:     review.CourseID.String(),
		EnrollmentId: review.EnrollmentID.String(),
		Rating:       int32(review.Rating),
		Comment:      review.Comment,
	}

	if !review.CreatedAt.IsZero() {
		res.CreatedAt = timestamppb.New(review.CreatedAt)
	}
	if !review.UpdatedAt.IsZero() {
		res.UpdatedAt = timestamppb.New(review.UpdatedAt)
	}

	return res
}

func toProtoReviewUser(user core.ReviewUser) *coursev1.ReviewUser {
	if user.ID == uuid.Nil && user.Name == "" {
		return nil
	}

	return &coursev1.ReviewUser{
		Id:        user.ID.String(),
		Name:      user.Name,
		AvatarUrl: user.AvatarURL,
		Email:     user.Email,
	}
}
