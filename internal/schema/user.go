package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// User is a staff account: administrators, doctors and nurses.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			MaxLen(255).
			Unique(),

		field.String("password_hash").
			Sensitive().
			Comment("argon2id PHC string"),

		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.Enum("role").
			Values("admin", "super_admin", "doctor", "nurse").
			Default("doctor"),

		field.String("department").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("license_number").
			Optional().
			Nillable().
			MaxLen(50),

		field.Bool("is_active").
			Default(true),

		field.UUID("created_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id (the admin who provisioned this account)"),

		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("appointments", Appointment.Type),
		edge.To("encounters", Encounter.Type),
		edge.To("prescriptions", PatientMedication.Type),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
		index.Fields("is_active"),
	}
}
