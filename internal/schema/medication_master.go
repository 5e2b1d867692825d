package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MedicationMaster is a formulary entry: one orderable medication.
type MedicationMaster struct {
	ent.Schema
}

func (MedicationMaster) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (MedicationMaster) Fields() []ent.Field {
	return []ent.Field{
		field.String("generic_name").
			MaxLen(255),

		field.String("brand_name").
			Optional().
			Nillable().
			MaxLen(255),

		field.Enum("dosage_form").
			Values("tablet", "capsule", "syrup", "injection", "inhaler", "cream", "drops", "patch"),

		field.String("strength").
			MaxLen(100).
			Comment("e.g. 500mg, 10mg/ml"),

		field.String("manufacturer").
			Optional().
			Nillable().
			MaxLen(255),

		field.Enum("classification").
			Values("antibiotic", "analgesic", "antihypertensive", "antidiabetic", "antihistamine", "other").
			Default("other"),

		field.Text("description").
			Optional().
			Nillable(),

		field.Bool("is_active").
			Default(true),
	}
}

func (MedicationMaster) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("patient_medications", PatientMedication.Type),
	}
}

func (MedicationMaster) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("generic_name"),
		index.Fields("classification"),
		index.Fields("is_active"),
	}
}
