package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

// Enrollment holds the schema definition for the Enrollment entity.
type Enrollment struct {
	ent.Schema
}

// Fields of the Enrollment.
func (Enrollment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.UUID("student_id", uuid.UUID{}),
		field.UUID("course_id", uuid.UUID{}),
		field.Int("status").
			Default(0),
		field.JSON("progress", []core.ProgressEntry{}).
			Optional(),
		field.Float("progress_percent").
			Default(0),
		field.String("idempotency_key").
			Unique(),
		field.Int("version").
			Default(1),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Enrollment.
func (Enrollment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("course", Course.Type).
			Ref("enrollments").
			Field("course_id").
			Unique().
			Required(),
		edge.To("certificate", Certificate.Type).
			Unique(),
	}
}

// Indexes of the Enrollment.
func (Enrollment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "course_id").
			Unique(),
		index.Fields("student_id"),
	}
}
