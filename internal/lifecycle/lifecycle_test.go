package lifecycle

import "testing"

func TestPolicyFor(t *testing.T) {
	tests := []struct {
		entity Entity
		want   Policy
	}{
		{EntityUser, SoftDeactivate},
		{EntityPatient, SoftDeactivate},
		{EntityAppointment, HardDelete},
		{EntityEncounter, SoftCancel},
		{EntityMedicationMaster, SoftDeactivate},
		{EntityPatientMedication, None},
		{Entity("bogus"), None},
	}

	for _, tt := range tests {
		t.Run(string(tt.entity), func(t *testing.T) {
			if got := PolicyFor(tt.entity); got != tt.want {
				t.Errorf("PolicyFor(%q) = %q, want %q", tt.entity, got, tt.want)
			}
		})
	}
}

func TestEntitiesCoverage(t *testing.T) {
	// Every declared entity must have an explicit policy.
	for _, e := range Entities() {
		if _, ok := policies[e]; !ok {
			t.Errorf("entity %q has no policy entry", e)
		}
	}
	if len(Entities()) != len(policies) {
		t.Errorf("Entities() lists %d entities, policy table has %d", len(Entities()), len(policies))
	}
}

func TestPurgeable(t *testing.T) {
	tests := []struct {
		entity Entity
		want   bool
	}{
		{EntityUser, true},
		{EntityPatient, true},
		{EntityEncounter, true},
		{EntityMedicationMaster, true},
		{EntityAppointment, false},
		{EntityPatientMedication, false},
	}

	for _, tt := range tests {
		if got := Purgeable(tt.entity); got != tt.want {
			t.Errorf("Purgeable(%q) = %v, want %v", tt.entity, got, tt.want)
		}
	}
}
