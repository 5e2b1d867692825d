package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PatientMedication links a formulary entry to a patient as an active
// prescription with its dosing instructions.
type PatientMedication struct {
	ent.Schema
}

func (PatientMedication) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (PatientMedication) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("medication_id", uuid.UUID{}).
			Comment("FK → medication_masters.id"),

		field.UUID("provider_id", uuid.UUID{}).
			Comment("FK → users.id (prescriber)"),

		field.String("dosage").
			MaxLen(100),

		field.String("frequency").
			MaxLen(100).
			Comment("e.g. twice daily, every 8 hours"),

		field.String("route").
			Optional().
			Nillable().
			MaxLen(50).
			Comment("e.g. oral, IV, topical"),

		field.Time("start_date"),

		field.Time("end_date").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("active", "completed", "discontinued", "paused").
			Default("active"),

		field.Text("reason").
			Optional().
			Nillable(),

		field.Text("instructions").
			Optional().
			Nillable(),

		field.UUID("encounter_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Encounter this prescription was written in"),

		field.Text("adverse_reactions").
			Optional().
			Nillable(),
	}
}

func (PatientMedication) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("medications").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("medication", MedicationMaster.Type).
			Ref("patient_medications").
			Unique().
			Required().
			Field("medication_id"),
		edge.From("provider", User.Type).
			Ref("prescriptions").
			Unique().
			Required().
			Field("provider_id"),
	}
}

func (PatientMedication) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "status"),
		index.Fields("medication_id"),
		index.Fields("provider_id"),
	}
}
