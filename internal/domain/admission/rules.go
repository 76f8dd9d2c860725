package admission

import "github.com/maternity/records/internal/validation"

var medicareTypes = []string{
	"gsis-member", "gsis-dependent", "sss-member", "sss-dependent",
	"owwa", "non-medicare", "indigent",
}

var dispositions = []string{
	"discharged", "transferred", "dama", "absconded",
	"recovered", "improved", "unimproved", "died",
}

var autopsyStatuses = []string{"48-hours", "more-than-48", "autopsy", "no-autopsy"}

func createRules(medRecNoTaken validation.ExistsFunc) []validation.Rule {
	return []validation.Rule{
		{Field: "type", Required: true, Type: validation.String},
		{Field: "medRecNo", Nullable: true, Type: validation.String, Unique: medRecNoTaken},
		{Field: "lastName", Required: true, Type: validation.String, Max: 255},
		{Field: "firstName", Required: true, Type: validation.String, Max: 255},
		{Field: "middleName", Nullable: true, Type: validation.String, Max: 255},
		{Field: "permanentAddress", Required: true, Type: validation.String},
		{Field: "telephoneNumber", Nullable: true, Type: validation.String, Max: 20},
		{Field: "sex", Required: true, In: []string{"male", "female"}},
		{Field: "civilStatus", Required: true, In: []string{"single", "married", "widowed", "divorced"}},
		{Field: "birthDate", Required: true, Type: validation.Date},
		{Field: "age", Required: true, Type: validation.String},
		{Field: "birthPlace", Required: true, Type: validation.String},
		{Field: "nationality", Required: true, Type: validation.String},
		{Field: "religion", Required: true, Type: validation.String},
		{Field: "occupation", Required: true, Type: validation.String},
		{Field: "employer", Nullable: true, Type: validation.String},
		{Field: "employerAddress", Nullable: true, Type: validation.String},
		{Field: "employerTelNo", Nullable: true, Type: validation.String},
		{Field: "fatherName", Nullable: true, Type: validation.String},
		{Field: "fatherAddress", Nullable: true, Type: validation.String},
		{Field: "fatherTelNo", Nullable: true, Type: validation.String},
		{Field: "motherName", Nullable: true, Type: validation.String},
		{Field: "motherAddress", Nullable: true, Type: validation.String},
		{Field: "motherTelNo", Nullable: true, Type: validation.String},
		{Field: "admissionDate", Required: true, Type: validation.Date},
		{Field: "admissionTime", Required: true, Type: validation.String},
		{Field: "dischargeDate", Nullable: true, Type: validation.Date},
		{Field: "dischargeTime", Nullable: true, Type: validation.String},
		{Field: "totalDays", Nullable: true, Type: validation.String},
		{Field: "attendingPhysician", Required: true, Type: validation.String},
		{Field: "admissionType", Required: true, In: []string{"new", "old", "former"}},
		{Field: "referredBy", Nullable: true, Type: validation.String},
		{Field: "socialServiceClass", Required: true, Type: validation.String},
		{Field: "hospitalizationPlan", Nullable: true, Type: validation.String},
		{Field: "healthInsurance", Nullable: true, Type: validation.String},
		{Field: "medicareType", Nullable: true, In: medicareTypes},
		{Field: "allergies", Nullable: true, Type: validation.String},
		{Field: "admissionDiagnosis", Required: true, Type: validation.String},
		{Field: "principalDiagnosis", Required: true, Type: validation.String},
		{Field: "otherDiagnosis", Nullable: true, Type: validation.String},
		{Field: "principalProcedures", Nullable: true, Type: validation.String},
		{Field: "otherProcedures", Nullable: true, Type: validation.String},
		{Field: "accidentDetails", Nullable: true, Type: validation.String},
		{Field: "placeOfOccurrence", Nullable: true, Type: validation.String},
		{Field: "disposition", Required: true, In: dispositions},
		{Field: "autopsyStatus", Required: true, In: autopsyStatuses},
	}
}

// updateRules relaxes every required field to sometimes-required; nullable
// fields keep their create semantics. The medRecNo uniqueness probe does
// not exclude the row being updated, matching the stored contract.
func updateRules(medRecNoTaken validation.ExistsFunc) []validation.Rule {
	rules := createRules(medRecNoTaken)
	for i := range rules {
		if rules[i].Required {
			rules[i].Sometimes = true
		}
	}
	// medRecNo flips from nullable to sometimes-required on update.
	for i := range rules {
		if rules[i].Field == "medRecNo" {
			rules[i].Nullable = false
			rules[i].Required = true
			rules[i].Sometimes = true
		}
	}
	return rules
}
