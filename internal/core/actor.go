package core

import "github.com/google/uuid"

// Actor identifies the authenticated caller of a command. Identities are
// verified upstream; the domain trusts them as-is.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// CanManage reports whether the actor may mutate resources owned by the
// given instructor.
func (a Actor) CanManage(instructorID uuid.UUID) bool {
	return a.IsAdmin || (a.UserID != uuid.Nil && a.UserID == instructorID)
}
