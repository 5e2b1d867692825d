package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Encounter is the clinical documentation of a patient visit.
type Encounter struct {
	ent.Schema
}

func (Encounter) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Encounter) Fields() []ent.Field {
	return []ent.Field{
		field.String("encounter_id").
			MaxLen(20).
			Unique().
			Immutable().
			Comment("Business identifier, ENC + YYYYMMDD + 4-digit daily sequence"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("provider_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("appointment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Back-reference to the appointment this visit came from"),

		field.Enum("encounter_type").
			Values("consultation", "follow-up", "emergency", "routine"),

		field.Time("encounter_date"),

		field.Text("chief_complaint").
			Optional().
			Nillable(),

		field.Text("history_of_present_illness").
			Optional().
			Nillable(),

		field.Text("physical_examination").
			Optional().
			Nillable(),

		field.Text("assessment").
			Optional().
			Nillable(),

		field.Text("plan").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("active", "completed", "cancelled").
			Default("active"),

		field.Int("duration").
			Optional().
			Nillable().
			Comment("Minutes"),
	}
}

func (Encounter) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("encounters").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("provider", User.Type).
			Ref("encounters").
			Unique().
			Required().
			Field("provider_id"),
	}
}

func (Encounter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "encounter_date"),
		index.Fields("provider_id", "encounter_date"),
		index.Fields("status"),
	}
}
