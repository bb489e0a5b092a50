package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Section holds the schema definition for the Section entity.
type Section struct {
	ent.Schema
}

// Fields of the Section.
func (Section) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.UUID("course_id", uuid.UUID{}),
		field.String("title"),
		field.Text("description").
			Default(""),
		field.Int("order").
			Default(0),
		field.Bool("is_published").
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

// Edges of the Section.
func (Section) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("course", Course.Type).
			Ref("sections").
			Field("course_id").
			Unique().
			Required(),
		edge.To("lessons", Lesson.Type),
		edge.To("quiz", Quiz.Type).
			Unique(),
	}
}

// Indexes of the Section.
func (Section) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("course_id", "order"),
	}
}
