package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Course holds the schema definition for the Course entity.
type Course struct {
	ent.Schema
}

// Fields of the Course.
func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.UUID("instructor_id", uuid.UUID{}),
		field.String("title"),
		field.String("slug").
			Unique(),
		field.String("subtitle").
			Default(""),
		field.Text("description").
			Default(""),
		field.String("category").
			Default(""),
		field.Int("level").
			Default(0),
		field.String("language").
			Default(""),
		field.String("thumbnail_url").
			Default(""),
		field.Int64("price").
			Default(0),
		field.Int64("discount_price").
			Optional().
			Nillable(),
		field.Int("status").
			Default(0),
		field.Float("rating").
			Default(0),
		field.Int("number_of_rating").
			Default(0),
		field.Int("section_count").
			Default(0),
		field.Int("lesson_count").
			Default(0),
		field.Int("quiz_count").
			Default(0),
		field.Int("enrollment_count").
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
		field.Time("published_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Course.
func (Course) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sections", Section.Type),
		edge.To("reviews", Review.Type),
		edge.To("enrollments", Enrollment.Type),
	}
}

// Indexes of the Course.
func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instructor_id"),
		index.Fields("status"),
		index.Fields("category"),
	}
}
