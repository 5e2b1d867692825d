package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Patient is a demographic record. The human-facing patient_id rides
// alongside the UUID primary key.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("patient_id").
			MaxLen(20).
			Unique().
			Immutable().
			Comment("Business identifier, P + 9 digits"),

		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.Time("date_of_birth"),

		field.Enum("gender").
			Values("male", "female", "other"),

		field.String("phone").
			MaxLen(20),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.Text("address").
			Optional().
			Nillable(),

		field.String("emergency_contact").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("emergency_phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.Enum("blood_type").
			NamedValues(
				"APositive", "A+",
				"ANegative", "A-",
				"BPositive", "B+",
				"BNegative", "B-",
				"ABPositive", "AB+",
				"ABNegative", "AB-",
				"OPositive", "O+",
				"ONegative", "O-",
			).
			Optional().
			Nillable(),

		field.Text("allergies").
			Optional().
			Nillable(),

		field.Text("medical_history").
			Optional().
			Nillable(),

		field.Bool("is_active").
			Default(true),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("appointments", Appointment.Type),
		edge.To("encounters", Encounter.Type),
		edge.To("medications", PatientMedication.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("last_name", "first_name"),
		index.Fields("is_active"),
	}
}
