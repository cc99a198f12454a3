package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Session records one committed batch of level changes.
// Sessions are append-only: no row is mutated or deleted after commit.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("uid").
			Unique().
			Immutable().
			DefaultFunc(uuid.NewString).
			Comment("Public session identifier"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("When the session was committed"),
		field.Enum("kind").
			Values("update", "assessment").
			Immutable().
			Comment("update = constrained session, assessment = baseline set"),
		field.Int("total_gain").
			Default(0).
			Immutable().
			Comment("Sum of per-skill gains, may be zero"),
		field.String("note").
			Optional().
			Immutable().
			Comment("Free-text note supplied at commit"),
	}
}

func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("updates", SessionUpdate.Type),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("kind"),
	}
}
