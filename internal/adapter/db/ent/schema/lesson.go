package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Lesson holds the schema definition for the Lesson entity.
type Lesson struct {
	ent.Schema
}

// Fields of the Lesson.
func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.UUID("section_id", uuid.UUID{}),
		field.UUID("course_id", uuid.UUID{}),
		field.String("title"),
		field.Text("description").
			Default(""),
		field.Int("content_type").
			Default(0),
		field.String("content_url").
			Default(""),
		field.Int("duration_seconds").
			Default(0),
		field.Int("order").
			Default(0),
		field.Bool("is_previewable").
			Default(false),
		field.String("idempotency_key").
			Unique(),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Lesson.
func (Lesson) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("section", Section.Type).
			Ref("lessons").
			Field("section_id").
			Unique().
			Required(),
	}
}

// Indexes of the Lesson.
func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("section_id"),
		index.Fields("section_id", "order"),
		index.Fields("course_id"),
	}
}
