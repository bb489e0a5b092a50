package transport

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"connectrpc.com/connect"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code connect.Code
	}{
		{"validation", fmt.Errorf("%w: bad input", core.ErrValidation), connect.CodeInvalidArgument},
		{"page token", fmt.Errorf("%w: garbage", core.ErrInvalidPageToken), connect.CodeInvalidArgument},
		{"not found", fmt.Errorf("%w: course", core.ErrNotFound), connect.CodeNotFound},
		{"unauthorized", fmt.Errorf("%w: not owner", core.ErrUnauthorized), connect.CodePermissionDenied},
		{"already reviewed", core.ErrAlreadyReviewed, connect.CodeAlreadyExists},
		{"already exists", fmt.Errorf("%w: slug taken", core.ErrAlreadyExists), connect.CodeAlreadyExists},
		{"conflict", core.ErrConflict, connect.CodeAborted},
		{"unknown", errors.New("boom"), connect.CodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := mapError(tc.err)
			if got := connect.CodeOf(mapped); got != tc.code {
				t.Fatalf("expected code %v, got %v", tc.code, got)
			}
		})
	}
}

func TestMapError_PassesThroughConnectErrors(t *testing.T) {
	original := connect.NewError(connect.CodeUnavailable, errors.New("down"))
	if mapped := mapError(original); mapped != original {
		t.Fatalf("expected connect error to pass through, got %v", mapped)
	}
}

func TestActorFromHeader(t *testing.T) {
	header := http.Header{}
	header.Set("X-User-Id", "4f9f2f0e-2b9f-4a52-a2c9-0d4f2c3a1b5e")
	header.Set("X-User-Role", "Admin")

	actor, err := actorFromHeader(header)
	if err != nil {
		t.Fatalf("actorFromHeader() error = %v", err)
	}
	if actor.UserID.String() != "4f9f2f0e-2b9f-4a52-a2c9-0d4f2c3a1b5e" {
		t.Fatalf("unexpected user id %s", actor.UserID)
	}
	if !actor.IsAdmin {
		t.Fatal("expected admin role to be recognized case-insensitively")
	}
}

func TestActorFromHeader_MissingUser(t *testing.T) {
	if _, err := actorFromHeader(http.Header{}); !errors.Is(err, core.ErrUnauthorized) {
		t.Fatalf("expected core.ErrUnauthorized, got %v", err)
	}
}

func TestActorFromHeader_MalformedUser(t *testing.T) {
	header := http.Header{}
	header.Set("X-User-Id", "not-a-uuid")

	if _, err := actorFromHeader(header); !errors.Is(err, core.ErrUnauthorized) {
		t.Fatalf("expected core.ErrUnauthorized, got %v", err)
	}
}
