// Package obstetrics covers the obstetric admission sheet and the
// per-pregnancy history rows hanging off it. The sheet embeds a compact
// previous-pregnancies summary as JSONB; pregnancy_records is the
// normalized long form, cascade-deleted with its sheet.
package obstetrics

import "time"

// PreviousPregnancy is one entry of the sheet's embedded summary. Labels
// run G1 through G6.
type PreviousPregnancy struct {
	Label         string   `json:"label"`
	Year          *int     `json:"year,omitempty"`
	AOG           *string  `json:"aog,omitempty"`
	Manner        *string  `json:"manner,omitempty"`
	Place         *string  `json:"place,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Complications *string  `json:"complications,omitempty"`
	Status        *string  `json:"status,omitempty"`
}

// ObstetricSheet maps to the obstetric_sheets table.
type ObstetricSheet struct {
	ID                 int64 `db:"id" json:"id"`
	PatientAdmissionID int64 `db:"patient_admission_id" json:"patient_admission_id"`

	ReasonForAdmission      *string `db:"reason_for_admission" json:"reason_for_admission"`
	AdmittingImpression     *string `db:"admitting_impression" json:"admitting_impression"`
	FinalDiagnosis          *string `db:"final_diagnosis" json:"final_diagnosis"`
	PertinentMedicalHistory *string `db:"pertinent_medical_history" json:"pertinent_medical_history"`
	EducationalAttainment   *string `db:"educational_attainment" json:"educational_attainment"`

	PreviousPregnancies []PreviousPregnancy `db:"previous_pregnancies" json:"previous_pregnancies"`

	// Present pregnancy
	LMP                       *time.Time `db:"lmp" json:"lmp"`
	EDC                       *time.Time `db:"edc" json:"edc"`
	AOG                       *int       `db:"aog" json:"aog"`
	WeeksPMP                  *int       `db:"weeks_pmp" json:"weeks_pmp"`
	MorningSickness           *bool      `db:"morning_sickness" json:"morning_sickness"`
	Quickening                *time.Time `db:"quickening" json:"quickening"`
	AbnormalSigns             *string    `db:"abnormal_signs" json:"abnormal_signs"`
	PrimaryAntenatalCondition *string    `db:"primary_antenatal_condition" json:"primary_antenatal_condition"`
	AntenatalVisitsFirst      *int       `db:"antenatal_visits_first" json:"antenatal_visits_first"`
	AntenatalVisitsLast       *int       `db:"antenatal_visits_last" json:"antenatal_visits_last"`
	ContraceptiveMethods      *string    `db:"contraceptive_methods" json:"contraceptive_methods"`
	AdditionalChildrenWanted  *int       `db:"additional_children_wanted" json:"additional_children_wanted"`

	HistoryOfPresentIllness *string `db:"history_of_present_illness" json:"history_of_present_illness"`

	// Physical findings
	GeneralCondition *string  `db:"general_condition" json:"general_condition"`
	BP               *string  `db:"bp" json:"bp"`
	HR               *int     `db:"hr" json:"hr"`
	RR               *int     `db:"rr" json:"rr"`
	Temp             *float64 `db:"temp" json:"temp"`
	Weight           *float64 `db:"weight" json:"weight"`
	Height           *float64 `db:"height" json:"height"`
	FundicHeight     *float64 `db:"fundic_height" json:"fundic_height"`
	Presentation     *string  `db:"presentation" json:"presentation"`
	Engaged          bool     `db:"engaged" json:"engaged"`
	Floating         bool     `db:"floating" json:"floating"`
	EFW              *float64 `db:"efw" json:"efw"`
	FHT              *string  `db:"fht" json:"fht"`
	Extremities      *string  `db:"extremities" json:"extremities"`
	Edema            *string  `db:"edema" json:"edema"`
	Albuminuria      *bool    `db:"albuminuria" json:"albuminuria"`
	Glucosuria       *bool    `db:"glucosuria" json:"glucosuria"`
	Hemoglobin       *string  `db:"hemoglobin" json:"hemoglobin"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// PregnancyRecord maps to the pregnancy_records table.
type PregnancyRecord struct {
	ID               int64     `db:"id" json:"id"`
	ObstetricSheetID int64     `db:"obstetric_sheet_id" json:"obstetric_sheet_id"`
	PregnancyOrder   string    `db:"pregnancy_order" json:"pregnancy_order"`
	AOG              *string   `db:"aog" json:"aog"`
	MannerOfDelivery *string   `db:"manner_of_delivery" json:"manner_of_delivery"`
	PlaceOfDelivery  *string   `db:"place_of_delivery" json:"place_of_delivery"`
	Gender           *string   `db:"gender" json:"gender"`
	Weight           *string   `db:"weight" json:"weight"`
	Complications    *string   `db:"complications" json:"complications"`
	Status           *string   `db:"status" json:"status"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}
