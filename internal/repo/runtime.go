// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/caretide/caretide_backend/internal/repo/appointment"
	"github.com/caretide/caretide_backend/internal/repo/encounter"
	"github.com/caretide/caretide_backend/internal/repo/medicationmaster"
	"github.com/caretide/caretide_backend/internal/repo/patient"
	"github.com/caretide/caretide_backend/internal/repo/patientmedication"
	"github.com/caretide/caretide_backend/internal/repo/user"
	"github.com/caretide/caretide_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescAppointmentID is the schema descriptor for appointment_id field.
	appointmentDescAppointmentID := appointmentFields[0].Descriptor()
	// appointment.AppointmentIDValidator is a validator for the "appointment_id" field. It is called by the builders before save.
	appointment.AppointmentIDValidator = appointmentDescAppointmentID.Validators[0].(func(string) error)
	// appointmentDescAppointmentTime is the schema descriptor for appointment_time field.
	appointmentDescAppointmentTime := appointmentFields[4].Descriptor()
	// appointment.AppointmentTimeValidator is a validator for the "appointment_time" field. It is called by the builders before save.
	appointment.AppointmentTimeValidator = appointmentDescAppointmentTime.Validators[0].(func(string) error)
	// appointmentDescDuration is the schema descriptor for duration field.
	appointmentDescDuration := appointmentFields[5].Descriptor()
	// appointment.DefaultDuration holds the default value on creation for the duration field.
	appointment.DefaultDuration = appointmentDescDuration.Default.(int)
	// appointment.DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	appointment.DurationValidator = appointmentDescDuration.Validators[0].(func(int) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	encounterMixin := schema.Encounter{}.Mixin()
	encounterMixinFields0 := encounterMixin[0].Fields()
	_ = encounterMixinFields0
	encounterMixinFields1 := encounterMixin[1].Fields()
	_ = encounterMixinFields1
	encounterFields := schema.Encounter{}.Fields()
	_ = encounterFields
	// encounterDescCreatedAt is the schema descriptor for created_at field.
	encounterDescCreatedAt := encounterMixinFields1[0].Descriptor()
	// encounter.DefaultCreatedAt holds the default value on creation for the created_at field.
	encounter.DefaultCreatedAt = encounterDescCreatedAt.Default.(func() time.Time)
	// encounterDescUpdatedAt is the schema descriptor for updated_at field.
	encounterDescUpdatedAt := encounterMixinFields1[1].Descriptor()
	// encounter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	encounter.DefaultUpdatedAt = encounterDescUpdatedAt.Default.(func() time.Time)
	// encounter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	encounter.UpdateDefaultUpdatedAt = encounterDescUpdatedAt.UpdateDefault.(func() time.Time)
	// encounterDescEncounterID is the schema descriptor for encounter_id field.
	encounterDescEncounterID := encounterFields[0].Descriptor()
	// encounter.EncounterIDValidator is a validator for the "encounter_id" field. It is called by the builders before save.
	encounter.EncounterIDValidator = encounterDescEncounterID.Validators[0].(func(string) error)
	// encounterDescID is the schema descriptor for id field.
	encounterDescID := encounterMixinFields0[0].Descriptor()
	// encounter.DefaultID holds the default value on creation for the id field.
	encounter.DefaultID = encounterDescID.Default.(func() uuid.UUID)
	medicationmasterMixin := schema.MedicationMaster{}.Mixin()
	medicationmasterMixinFields0 := medicationmasterMixin[0].Fields()
	_ = medicationmasterMixinFields0
	medicationmasterMixinFields1 := medicationmasterMixin[1].Fields()
	_ = medicationmasterMixinFields1
	medicationmasterFields := schema.MedicationMaster{}.Fields()
	_ = medicationmasterFields
	// medicationmasterDescCreatedAt is the schema descriptor for created_at field.
	medicationmasterDescCreatedAt := medicationmasterMixinFields1[0].Descriptor()
	// medicationmaster.DefaultCreatedAt holds the default value on creation for the created_at field.
	medicationmaster.DefaultCreatedAt = medicationmasterDescCreatedAt.Default.(func() time.Time)
	// medicationmasterDescUpdatedAt is the schema descriptor for updated_at field.
	medicationmasterDescUpdatedAt := medicationmasterMixinFields1[1].Descriptor()
	// medicationmaster.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	medicationmaster.DefaultUpdatedAt = medicationmasterDescUpdatedAt.Default.(func() time.Time)
	// medicationmaster.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	medicationmaster.UpdateDefaultUpdatedAt = medicationmasterDescUpdatedAt.UpdateDefault.(func() time.Time)
	// medicationmasterDescGenericName is the schema descriptor for generic_name field.
	medicationmasterDescGenericName := medicationmasterFields[0].Descriptor()
	// medicationmaster.GenericNameValidator is a validator for the "generic_name" field. It is called by the builders before save.
	medicationmaster.GenericNameValidator = medicationmasterDescGenericName.Validators[0].(func(string) error)
	// medicationmasterDescBrandName is the schema descriptor for brand_name field.
	medicationmasterDescBrandName := medicationmasterFields[1].Descriptor()
	// medicationmaster.BrandNameValidator is a validator for the "brand_name" field. It is called by the builders before save.
	medicationmaster.BrandNameValidator = medicationmasterDescBrandName.Validators[0].(func(string) error)
	// medicationmasterDescStrength is the schema descriptor for strength field.
	medicationmasterDescStrength := medicationmasterFields[3].Descriptor()
	// medicationmaster.StrengthValidator is a validator for the "strength" field. It is called by the builders before save.
	medicationmaster.StrengthValidator = medicationmasterDescStrength.Validators[0].(func(string) error)
	// medicationmasterDescManufacturer is the schema descriptor for manufacturer field.
	medicationmasterDescManufacturer := medicationmasterFields[4].Descriptor()
	// medicationmaster.ManufacturerValidator is a validator for the "manufacturer" field. It is called by the builders before save.
	medicationmaster.ManufacturerValidator = medicationmasterDescManufacturer.Validators[0].(func(string) error)
	// medicationmasterDescIsActive is the schema descriptor for is_active field.
	medicationmasterDescIsActive := medicationmasterFields[7].Descriptor()
	// medicationmaster.DefaultIsActive holds the default value on creation for the is_active field.
	medicationmaster.DefaultIsActive = medicationmasterDescIsActive.Default.(bool)
	// medicationmasterDescID is the schema descriptor for id field.
	medicationmasterDescID := medicationmasterMixinFields0[0].Descriptor()
	// medicationmaster.DefaultID holds the default value on creation for the id field.
	medicationmaster.DefaultID = medicationmasterDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescPatientID is the schema descriptor for patient_id field.
	patientDescPatientID := patientFields[0].Descriptor()
	// patient.PatientIDValidator is a validator for the "patient_id" field. It is called by the builders before save.
	patient.PatientIDValidator = patientDescPatientID.Validators[0].(func(string) error)
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[1].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = patientDescFirstName.Validators[0].(func(string) error)
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[2].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = patientDescLastName.Validators[0].(func(string) error)
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[5].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescEmail is the schema descriptor for email field.
	patientDescEmail := patientFields[6].Descriptor()
	// patient.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	patient.EmailValidator = patientDescEmail.Validators[0].(func(string) error)
	// patientDescEmergencyContact is the schema descriptor for emergency_contact field.
	patientDescEmergencyContact := patientFields[8].Descriptor()
	// patient.EmergencyContactValidator is a validator for the "emergency_contact" field. It is called by the builders before save.
	patient.EmergencyContactValidator = patientDescEmergencyContact.Validators[0].(func(string) error)
	// patientDescEmergencyPhone is the schema descriptor for emergency_phone field.
	patientDescEmergencyPhone := patientFields[9].Descriptor()
	// patient.EmergencyPhoneValidator is a validator for the "emergency_phone" field. It is called by the builders before save.
	patient.EmergencyPhoneValidator = patientDescEmergencyPhone.Validators[0].(func(string) error)
	// patientDescIsActive is the schema descriptor for is_active field.
	patientDescIsActive := patientFields[13].Descriptor()
	// patient.DefaultIsActive holds the default value on creation for the is_active field.
	patient.DefaultIsActive = patientDescIsActive.Default.(bool)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	patientmedicationMixin := schema.PatientMedication{}.Mixin()
	patientmedicationMixinFields0 := patientmedicationMixin[0].Fields()
	_ = patientmedicationMixinFields0
	patientmedicationMixinFields1 := patientmedicationMixin[1].Fields()
	_ = patientmedicationMixinFields1
	patientmedicationFields := schema.PatientMedication{}.Fields()
	_ = patientmedicationFields
	// patientmedicationDescCreatedAt is the schema descriptor for created_at field.
	patientmedicationDescCreatedAt := patientmedicationMixinFields1[0].Descriptor()
	// patientmedication.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientmedication.DefaultCreatedAt = patientmedicationDescCreatedAt.Default.(func() time.Time)
	// patientmedicationDescUpdatedAt is the schema descriptor for updated_at field.
	patientmedicationDescUpdatedAt := patientmedicationMixinFields1[1].Descriptor()
	// patientmedication.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patientmedication.DefaultUpdatedAt = patientmedicationDescUpdatedAt.Default.(func() time.Time)
	// patientmedication.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patientmedication.UpdateDefaultUpdatedAt = patientmedicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientmedicationDescDosage is the schema descriptor for dosage field.
	patientmedicationDescDosage := patientmedicationFields[3].Descriptor()
	// patientmedication.DosageValidator is a validator for the "dosage" field. It is called by the builders before save.
	patientmedication.DosageValidator = patientmedicationDescDosage.Validators[0].(func(string) error)
	// patientmedicationDescFrequency is the schema descriptor for frequency field.
	patientmedicationDescFrequency := patientmedicationFields[4].Descriptor()
	// patientmedication.FrequencyValidator is a validator for the "frequency" field. It is called by the builders before save.
	patientmedication.FrequencyValidator = patientmedicationDescFrequency.Validators[0].(func(string) error)
	// patientmedicationDescRoute is the schema descriptor for route field.
	patientmedicationDescRoute := patientmedicationFields[5].Descriptor()
	// patientmedication.RouteValidator is a validator for the "route" field. It is called by the builders before save.
	patientmedication.RouteValidator = patientmedicationDescRoute.Validators[0].(func(string) error)
	// patientmedicationDescID is the schema descriptor for id field.
	patientmedicationDescID := patientmedicationMixinFields0[0].Descriptor()
	// patientmedication.DefaultID holds the default value on creation for the id field.
	patientmedication.DefaultID = patientmedicationDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[2].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[3].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescDepartment is the schema descriptor for department field.
	userDescDepartment := userFields[5].Descriptor()
	// user.DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	user.DepartmentValidator = userDescDepartment.Validators[0].(func(string) error)
	// userDescLicenseNumber is the schema descriptor for license_number field.
	userDescLicenseNumber := userFields[6].Descriptor()
	// user.LicenseNumberValidator is a validator for the "license_number" field. It is called by the builders before save.
	user.LicenseNumberValidator = userDescLicenseNumber.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[7].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
