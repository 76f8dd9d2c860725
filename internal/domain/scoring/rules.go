package scoring

import "github.com/maternity/records/internal/validation"

// chartRules applies to create and update alike: partial updates must
// resend patient_admission_id, the stored contract has always demanded it.
func chartRules(admissionExists validation.ExistsFunc) []validation.Rule {
	return []validation.Rule{
		{Field: "patient_admission_id", Required: true, Exists: admissionExists},
		{Field: "dateScored", Nullable: true, Type: validation.Date},

		{Field: "heartRate", Nullable: true, Type: validation.Integer},
		{Field: "respiratory", Nullable: true, Type: validation.Integer},
		{Field: "muscleTone", Nullable: true, Type: validation.Integer},
		{Field: "reflexes", Nullable: true, Type: validation.Integer},
		{Field: "color", Nullable: true, Type: validation.Integer},

		{Field: "heartRate5", Nullable: true, Type: validation.Integer},
		{Field: "respiratory5", Nullable: true, Type: validation.Integer},
		{Field: "muscleTone5", Nullable: true, Type: validation.Integer},
		{Field: "reflexes5", Nullable: true, Type: validation.Integer},
		{Field: "color5", Nullable: true, Type: validation.Integer},

		{Field: "heartRate10", Nullable: true, Type: validation.Integer},
		{Field: "respiratory10", Nullable: true, Type: validation.Integer},
		{Field: "muscleTone10", Nullable: true, Type: validation.Integer},
		{Field: "reflexes10", Nullable: true, Type: validation.Integer},
		{Field: "color10", Nullable: true, Type: validation.Integer},

		{Field: "otherHeartRate", Nullable: true, Type: validation.Integer},
		{Field: "otherRespiratory", Nullable: true, Type: validation.Integer},
		{Field: "otherMuscleTone", Nullable: true, Type: validation.Integer},
		{Field: "otherReflexes", Nullable: true, Type: validation.Integer},
		{Field: "otherColor", Nullable: true, Type: validation.Integer},
	}
}
