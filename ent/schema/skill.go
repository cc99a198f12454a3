package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Skill holds the current level of one taxonomy entry.
// Rows are created once at store initialization and updated in place
// by committed sessions; the (category, name) pair is the logical key.
type Skill struct {
	ent.Schema
}

func (Skill) Fields() []ent.Field {
	return []ent.Field{
		field.String("category").
			NotEmpty().
			Immutable().
			Comment("Taxonomy category identifier"),
		field.String("name").
			NotEmpty().
			Immutable().
			Comment("Skill identifier within the category"),
		field.Int("level").
			Default(1).
			Min(1).
			Max(100).
			Comment("Current self-assessed level"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last time the level changed"),
	}
}

func (Skill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category", "name").Unique(),
	}
}
