package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked visit between a patient and a provider.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.String("appointment_id").
			MaxLen(20).
			Unique().
			Immutable().
			Comment("Business identifier, APT + YYYYMMDD + 3-digit daily sequence"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("provider_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Time("appointment_date"),

		field.String("appointment_time").
			MaxLen(5).
			Comment("Wall-clock HH:MM"),

		field.Int("duration").
			Default(30).
			Positive().
			Comment("Minutes"),

		field.Enum("appointment_type").
			Values("consultation", "follow-up", "emergency", "routine", "checkup"),

		field.Text("reason").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("scheduled", "confirmed", "checked-in", "completed", "cancelled", "no-show").
			Default("scheduled"),

		field.UUID("encounter_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Set when the visit has been documented as an encounter"),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("appointments").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("provider", User.Type).
			Ref("appointments").
			Unique().
			Required().
			Field("provider_id"),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "appointment_date"),
		index.Fields("provider_id", "appointment_date"),
		index.Fields("status"),
	}
}
