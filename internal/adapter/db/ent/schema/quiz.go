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

// Quiz holds the schema definition for the Quiz entity.
type Quiz struct {
	ent.Schema
}

// Fields of the Quiz.
func (Quiz) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.UUID("section_id", uuid.UUID{}).
			Unique(),
		field.UUID("course_id", uuid.UUID{}),
		field.JSON("questions", []core.Question{}).
			Optional(),
		field.Float("passing_score").
			Default(0),
		field.Int("max_attempts").
			Default(0),
		field.Bool("is_required").
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

// Edges of the Quiz.
func (Quiz) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("section", Section.Type).
			Ref("quiz").
			Field("section_id").
			Unique().
			Required(),
	}
}

// Indexes of the Quiz.
func (Quiz) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
	}
}
