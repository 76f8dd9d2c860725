package obstetrics

import "github.com/maternity/records/internal/validation"

var pregnancyLabels = []string{"G1", "G2", "G3", "G4", "G5", "G6"}

var educationalAttainments = []string{"Elementary", "High School", "College Graduate"}

// The sheet's admission reference is validated as a string; the intake
// forms send it that way and the stored contract keeps it.
func sheetCreateRules() []validation.Rule {
	return append([]validation.Rule{
		{Field: "patient_admission_id", Required: true, Type: validation.String},
	}, sheetCommonRules(previousPregnancyRules(false))...)
}

func sheetUpdateRules() []validation.Rule {
	return append([]validation.Rule{
		{Field: "patient_admission_id", Sometimes: true, Type: validation.String},
	}, sheetCommonRules(previousPregnancyRules(true))...)
}

func previousPregnancyRules(update bool) []validation.Rule {
	label := validation.Rule{Field: "label", Required: true, Type: validation.String, In: pregnancyLabels}
	if update {
		label = validation.Rule{Field: "label", Sometimes: true, Type: validation.String, In: pregnancyLabels}
	}
	return []validation.Rule{
		label,
		{Field: "year", Nullable: true, Type: validation.Integer},
		{Field: "aog", Nullable: true, Type: validation.String},
		{Field: "manner", Nullable: true, Type: validation.String},
		{Field: "place", Nullable: true, Type: validation.String},
		{Field: "gender", Nullable: true, Type: validation.String},
		{Field: "weight", Nullable: true, Type: validation.Numeric},
		{Field: "complications", Nullable: true, Type: validation.String},
		{Field: "status", Nullable: true, Type: validation.String},
	}
}

func sheetCommonRules(entryRules []validation.Rule) []validation.Rule {
	return []validation.Rule{
		{Field: "reason_for_admission", Nullable: true, Type: validation.String},
		{Field: "admitting_impression", Nullable: true, Type: validation.String},
		{Field: "final_diagnosis", Nullable: true, Type: validation.String},
		{Field: "pertinent_medical_history", Nullable: true, Type: validation.String},
		{Field: "educational_attainment", Nullable: true, In: educationalAttainments},
		{Field: "previous_pregnancies", Nullable: true, Type: validation.Array, Max: 6, Each: entryRules},

		{Field: "lmp", Nullable: true, Type: validation.Date},
		{Field: "edc", Nullable: true, Type: validation.Date},
		{Field: "aog", Nullable: true, Type: validation.Integer},
		{Field: "weeks_pmp", Nullable: true, Type: validation.Integer},
		{Field: "morning_sickness", Nullable: true, Type: validation.Boolean},
		{Field: "quickening", Nullable: true, Type: validation.Date},
		{Field: "abnormal_signs", Nullable: true, Type: validation.String},
		{Field: "primary_antenatal_condition", Nullable: true, Type: validation.String},
		{Field: "antenatal_visits_first", Nullable: true, Type: validation.Integer},
		{Field: "antenatal_visits_last", Nullable: true, Type: validation.Integer},
		{Field: "contraceptive_methods", Nullable: true, Type: validation.String},
		{Field: "additional_children_wanted", Nullable: true, Type: validation.Integer},
		{Field: "history_of_present_illness", Nullable: true, Type: validation.String},

		{Field: "general_condition", Nullable: true, Type: validation.String},
		{Field: "bp", Nullable: true, Type: validation.String},
		{Field: "hr", Nullable: true, Type: validation.Integer},
		{Field: "rr", Nullable: true, Type: validation.Integer},
		{Field: "temp", Nullable: true, Type: validation.Numeric},
		{Field: "weight", Nullable: true, Type: validation.Numeric},
		{Field: "height", Nullable: true, Type: validation.Numeric},
		{Field: "fundic_height", Nullable: true, Type: validation.Numeric},
		{Field: "presentation", Nullable: true, Type: validation.String},
		{Field: "engaged", Nullable: true, Type: validation.Boolean},
		{Field: "floating", Nullable: true, Type: validation.Boolean},
		{Field: "efw", Nullable: true, Type: validation.Numeric},
		{Field: "fht", Nullable: true, Type: validation.String},
		{Field: "extremities", Nullable: true, Type: validation.String},
		{Field: "edema", Nullable: true, Type: validation.String},
		{Field: "albuminuria", Nullable: true, Type: validation.Boolean},
		{Field: "glucosuria", Nullable: true, Type: validation.Boolean},
		{Field: "hemoglobin", Nullable: true, Type: validation.String},
	}
}

func recordCreateRules(sheetExists validation.ExistsFunc) []validation.Rule {
	return []validation.Rule{
		{Field: "obstetric_sheet_id", Required: true, Exists: sheetExists},
		{Field: "pregnancy_order", Required: true, Type: validation.String},
		{Field: "aog", Nullable: true, Type: validation.String},
		{Field: "manner_of_delivery", Nullable: true, Type: validation.String},
		{Field: "place_of_delivery", Nullable: true, Type: validation.String},
		{Field: "gender", Nullable: true, In: []string{"Male", "Female"}},
		{Field: "weight", Nullable: true, Type: validation.String},
		{Field: "complications", Nullable: true, Type: validation.String},
		{Field: "status", Nullable: true, Type: validation.String},
	}
}

func recordUpdateRules(sheetExists validation.ExistsFunc) []validation.Rule {
	rules := recordCreateRules(sheetExists)
	for i := range rules {
		if rules[i].Required {
			rules[i].Sometimes = true
		}
	}
	return rules
}
