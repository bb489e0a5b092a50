package transport

import (
	"context"
	"errors"
	"testing"

	protovalidate "buf.build/go/protovalidate"
	"connectrpc.com/connect"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
	coursev1 "github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/pkg/api/course/v1"
)

func TestValidationInterceptor_AllowsValidRequest(t *testing.T) {
	validator, err := protovalidate.New()
	if err != nil {
		t.Fatalf("protovalidate.New() error = %v", err)
	}

	interceptor := NewValidationInterceptor(validator)
	nextCalled := false

	unary := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		nextCalled = true
		return connect.NewResponse(&coursev1.GetCourseResponse{}), nil
	})

	req := connect.NewRequest(&coursev1.GetCourseRequest{
		CourseId: "4f9f2f0e-2b9f-4a52-a2c9-0d4f2c3a1b5e",
	})

	if _, err := unary(context.Background(), req); err != nil {
		t.Fatalf("unary() error = %v", err)
	}
	if !nextCalled {
		t.Fatal("expected next to be called")
	}
}

func TestValidationInterceptor_InvalidRequestReturnsValidationError(t *testing.T) {
	validator, err := protovalidate.New()
	if err != nil {
		t.Fatalf("protovalidate.New() error = %v", err)
	}

	interceptor := NewValidationInterceptor(validator)
	nextCalled := false

	unary := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		nextCalled = true
		return connect.NewResponse(&coursev1.GetCourseResponse{}), nil
	})

	req := connect.NewRequest(&coursev1.GetCourseRequest{
		CourseId: "not-a-uuid",
	})

	if _, err := unary(context.Background(), req); err == nil {
		t.Fatal("expected validation error for invalid request")
	} else if !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected error to wrap core.ErrValidation, got %v", err)
	}
	if nextCalled {
		t.Fatal("expected interceptor to block invalid request before calling next")
	}
}

func TestValidationInterceptor_AllowsWhenValidatorNil(t *testing.T) {
	interceptor := NewValidationInterceptor(nil)
	nextCalled := false

	unary := interceptor.WrapUnary(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		nextCalled = true
		return connect.NewResponse(&coursev1.GetCourseResponse{}), nil
	})

	req := connect.NewRequest(&coursev1.GetCourseRequest{})

	if _, err := unary(context.Background(), req); err != nil {
		t.Fatalf("unary() error = %v", err)
	}
	if !nextCalled {
		t.Fatal("expected next to be called when validator is nil")
	}
}
