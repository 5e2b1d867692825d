// Package lifecycle declares what "delete" means for each entity.
//
// Clinical data is rarely removed outright: most entities deactivate or
// cancel instead, and only a purge run against old soft-deleted rows does
// physical deletes. The table here is the single place that decides which
// behavior each entity gets, so services and the purge command cannot
// drift apart.
package lifecycle

// Entity names the record types the delete policy table covers.
type Entity string

const (
	EntityUser              Entity = "user"
	EntityPatient           Entity = "patient"
	EntityAppointment       Entity = "appointment"
	EntityEncounter         Entity = "encounter"
	EntityMedicationMaster  Entity = "medication_master"
	EntityPatientMedication Entity = "patient_medication"
)

// Policy is the delete behavior an entity's Remove operation applies.
type Policy string

const (
	// SoftDeactivate flips is_active to false and keeps the row.
	SoftDeactivate Policy = "soft_deactivate"

	// SoftCancel sets status to cancelled and keeps the row.
	SoftCancel Policy = "soft_cancel"

	// HardDelete removes the row permanently.
	HardDelete Policy = "hard_delete"

	// None means the entity has no delete operation at all. Prescriptions
	// are discontinued, which is a status transition, not a delete.
	None Policy = "none"
)

var policies = map[Entity]Policy{
	EntityUser:              SoftDeactivate,
	EntityPatient:           SoftDeactivate,
	EntityAppointment:       HardDelete,
	EntityEncounter:         SoftCancel,
	EntityMedicationMaster:  SoftDeactivate,
	EntityPatientMedication: None,
}

// PolicyFor returns the delete policy for an entity. Unknown entities get
// None so a typo can never escalate into a hard delete.
func PolicyFor(e Entity) Policy {
	p, ok := policies[e]
	if !ok {
		return None
	}
	return p
}

// Entities returns every entity the table covers.
func Entities() []Entity {
	return []Entity{
		EntityUser,
		EntityPatient,
		EntityAppointment,
		EntityEncounter,
		EntityMedicationMaster,
		EntityPatientMedication,
	}
}

// Purgeable reports whether entries of this entity accumulate soft-deleted
// rows that a retention purge should eventually remove.
func Purgeable(e Entity) bool {
	switch PolicyFor(e) {
	case SoftDeactivate, SoftCancel:
		return true
	default:
		return false
	}
}
