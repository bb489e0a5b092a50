package transport

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

const (
	userIDHeader   = "X-User-Id"
	userRoleHeader = "X-User-Role"
)

// actorFromHeader reads the caller identity set by the API gateway. The
// gateway authenticates the token; these headers are trusted as-is.
func actorFromHeader(header http.Header) (core.Actor, error) {
	raw := strings.TrimSpace(header.Get(userIDHeader))
	if raw == "" {
		return core.Actor{}, fmt.Errorf("%w: missing %s header", core.ErrUnauthorized, userIDHeader)
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return core.Actor{}, fmt.Errorf("%w: invalid %s header %q", core.ErrUnauthorized, userIDHeader, raw)
	}

	return core.Actor{
		UserID:  userID,
		IsAdmin: strings.EqualFold(strings.TrimSpace(header.Get(userRoleHeader)), "admin"),
	}, nil
}
