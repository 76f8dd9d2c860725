package scheduling

import "github.com/maternity/records/internal/validation"

var appointmentTypes = []string{"prenatal", "delivery", "postnatal"}

var appointmentStatuses = []string{"pending", "confirmed", "cancelled", "completed"}

func createRules(admissionExists validation.ExistsFunc) []validation.Rule {
	return []validation.Rule{
		{Field: "patient_id", Nullable: true, Type: validation.Integer, Exists: admissionExists},
		{Field: "patient_name", Nullable: true, Type: validation.String, Max: 255},
		{Field: "email", Nullable: true, Type: validation.Email, Max: 255},
		{Field: "phone", Nullable: true, Type: validation.String, Max: 20},
		{Field: "address", Nullable: true, Type: validation.String, Max: 255},
		{Field: "appointment_type", Required: true, In: appointmentTypes},
		{Field: "scheduled_at", Required: true, Type: validation.DateTime, AfterOrEqualNow: true},
		{Field: "status", Nullable: true, In: appointmentStatuses},
	}
}

func updateRules(admissionExists validation.ExistsFunc) []validation.Rule {
	return []validation.Rule{
		{Field: "patient_id", Nullable: true, Type: validation.Integer, Exists: admissionExists},
		{Field: "patient_name", Nullable: true, Type: validation.String, Max: 255},
		{Field: "email", Nullable: true, Type: validation.Email, Max: 255},
		{Field: "phone", Nullable: true, Type: validation.String, Max: 20},
		{Field: "address", Nullable: true, Type: validation.String, Max: 255},
		{Field: "appointment_type", Sometimes: true, In: appointmentTypes},
		{Field: "scheduled_at", Sometimes: true, Type: validation.DateTime, AfterOrEqualNow: true},
		{Field: "status", Sometimes: true, In: appointmentStatuses},
	}
}
