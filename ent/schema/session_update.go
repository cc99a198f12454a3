package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionUpdate is one per-skill change inside a committed session.
// Immutable child of Session; gain = new_level - old_level.
type SessionUpdate struct {
	ent.Schema
}

func (SessionUpdate) Fields() []ent.Field {
	return []ent.Field{
		field.String("category").
			NotEmpty().
			Immutable(),
		field.String("skill_name").
			NotEmpty().
			Immutable(),
		field.Int("old_level").
			Immutable(),
		field.Int("new_level").
			Immutable(),
		field.Int("gain").
			Immutable(),
	}
}

func (SessionUpdate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("updates").
			Unique().
			Required().
			Immutable(),
	}
}

func (SessionUpdate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category", "skill_name"),
	}
}
