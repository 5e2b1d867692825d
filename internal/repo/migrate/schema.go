// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "appointment_id", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "appointment_date", Type: field.TypeTime},
		{Name: "appointment_time", Type: field.TypeString, Size: 5},
		{Name: "duration", Type: field.TypeInt, Default: 30},
		{Name: "appointment_type", Type: field.TypeEnum, Enums: []string{"consultation", "follow-up", "emergency", "routine", "checkup"}},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "confirmed", "checked-in", "completed", "cancelled", "no-show"}, Default: "scheduled"},
		{Name: "encounter_id", Type: field.TypeUUID, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "provider_id", Type: field.TypeUUID},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_patients_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[12]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "appointments_users_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_patient_id_appointment_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[12], AppointmentsColumns[4]},
			},
			{
				Name:    "appointment_provider_id_appointment_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[13], AppointmentsColumns[4]},
			},
			{
				Name:    "appointment_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[10]},
			},
		},
	}
	// EncountersColumns holds the columns for the "encounters" table.
	EncountersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "encounter_id", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "appointment_id", Type: field.TypeUUID, Nullable: true},
		{Name: "encounter_type", Type: field.TypeEnum, Enums: []string{"consultation", "follow-up", "emergency", "routine"}},
		{Name: "encounter_date", Type: field.TypeTime},
		{Name: "chief_complaint", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "history_of_present_illness", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "physical_examination", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "assessment", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "plan", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "cancelled"}, Default: "active"},
		{Name: "duration", Type: field.TypeInt, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "provider_id", Type: field.TypeUUID},
	}
	// EncountersTable holds the schema information for the "encounters" table.
	EncountersTable = &schema.Table{
		Name:       "encounters",
		Columns:    EncountersColumns,
		PrimaryKey: []*schema.Column{EncountersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "encounters_patients_encounters",
				Columns:    []*schema.Column{EncountersColumns[15]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "encounters_users_encounters",
				Columns:    []*schema.Column{EncountersColumns[16]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "encounter_patient_id_encounter_date",
				Unique:  false,
				Columns: []*schema.Column{EncountersColumns[15], EncountersColumns[6]},
			},
			{
				Name:    "encounter_provider_id_encounter_date",
				Unique:  false,
				Columns: []*schema.Column{EncountersColumns[16], EncountersColumns[6]},
			},
			{
				Name:    "encounter_status",
				Unique:  false,
				Columns: []*schema.Column{EncountersColumns[13]},
			},
		},
	}
	// MedicationMastersColumns holds the columns for the "medication_masters" table.
	MedicationMastersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "generic_name", Type: field.TypeString, Size: 255},
		{Name: "brand_name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "dosage_form", Type: field.TypeEnum, Enums: []string{"tablet", "capsule", "syrup", "injection", "inhaler", "cream", "drops", "patch"}},
		{Name: "strength", Type: field.TypeString, Size: 100},
		{Name: "manufacturer", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "classification", Type: field.TypeEnum, Enums: []string{"antibiotic", "analgesic", "antihypertensive", "antidiabetic", "antihistamine", "other"}, Default: "other"},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// MedicationMastersTable holds the schema information for the "medication_masters" table.
	MedicationMastersTable = &schema.Table{
		Name:       "medication_masters",
		Columns:    MedicationMastersColumns,
		PrimaryKey: []*schema.Column{MedicationMastersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "medicationmaster_generic_name",
				Unique:  false,
				Columns: []*schema.Column{MedicationMastersColumns[3]},
			},
			{
				Name:    "medicationmaster_classification",
				Unique:  false,
				Columns: []*schema.Column{MedicationMastersColumns[8]},
			},
			{
				Name:    "medicationmaster_is_active",
				Unique:  false,
				Columns: []*schema.Column{MedicationMastersColumns[10]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "date_of_birth", Type: field.TypeTime},
		{Name: "gender", Type: field.TypeEnum, Enums: []string{"male", "female", "other"}},
		{Name: "phone", Type: field.TypeString, Size: 20},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "emergency_contact", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "emergency_phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "blood_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}},
		{Name: "allergies", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "medical_history", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_last_name_first_name",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[5], PatientsColumns[4]},
			},
			{
				Name:    "patient_is_active",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[16]},
			},
		},
	}
	// PatientMedicationsColumns holds the columns for the "patient_medications" table.
	PatientMedicationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "dosage", Type: field.TypeString, Size: 100},
		{Name: "frequency", Type: field.TypeString, Size: 100},
		{Name: "route", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "discontinued", "paused"}, Default: "active"},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "instructions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "encounter_id", Type: field.TypeUUID, Nullable: true},
		{Name: "adverse_reactions", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "medication_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "provider_id", Type: field.TypeUUID},
	}
	// PatientMedicationsTable holds the schema information for the "patient_medications" table.
	PatientMedicationsTable = &schema.Table{
		Name:       "patient_medications",
		Columns:    PatientMedicationsColumns,
		PrimaryKey: []*schema.Column{PatientMedicationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patient_medications_medication_masters_patient_medications",
				Columns:    []*schema.Column{PatientMedicationsColumns[13]},
				RefColumns: []*schema.Column{MedicationMastersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "patient_medications_patients_medications",
				Columns:    []*schema.Column{PatientMedicationsColumns[14]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "patient_medications_users_prescriptions",
				Columns:    []*schema.Column{PatientMedicationsColumns[15]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patientmedication_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{PatientMedicationsColumns[14], PatientMedicationsColumns[8]},
			},
			{
				Name:    "patientmedication_medication_id",
				Unique:  false,
				Columns: []*schema.Column{PatientMedicationsColumns[13]},
			},
			{
				Name:    "patientmedication_provider_id",
				Unique:  false,
				Columns: []*schema.Column{PatientMedicationsColumns[15]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "super_admin", "doctor", "nurse"}, Default: "doctor"},
		{Name: "department", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "license_number", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_by", Type: field.TypeUUID, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
			{
				Name:    "user_is_active",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		EncountersTable,
		MedicationMastersTable,
		PatientsTable,
		PatientMedicationsTable,
		UsersTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = PatientsTable
	AppointmentsTable.ForeignKeys[1].RefTable = UsersTable
	EncountersTable.ForeignKeys[0].RefTable = PatientsTable
	EncountersTable.ForeignKeys[1].RefTable = UsersTable
	PatientMedicationsTable.ForeignKeys[0].RefTable = MedicationMastersTable
	PatientMedicationsTable.ForeignKeys[1].RefTable = PatientsTable
	PatientMedicationsTable.ForeignKeys[2].RefTable = UsersTable
}
