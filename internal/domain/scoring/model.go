package scoring

import "time"

// ScoringChart is an APGAR assessment taken at one, five and ten minutes
// after birth, with an extra column for out-of-schedule readings. The
// wire keys are camelCase with the interval suffixed, matching the forms.
type ScoringChart struct {
	ID                 int64      `db:"id"                   json:"id"`
	PatientAdmissionID int64      `db:"patient_admission_id" json:"patient_admission_id"`
	DateScored         *time.Time `db:"date_scored"          json:"dateScored"`

	HeartRate   *int `db:"heart_rate"  json:"heartRate"`
	Respiratory *int `db:"respiratory" json:"respiratory"`
	MuscleTone  *int `db:"muscle_tone" json:"muscleTone"`
	Reflexes    *int `db:"reflexes"    json:"reflexes"`
	Color       *int `db:"color"       json:"color"`

	HeartRate5   *int `db:"heart_rate_5"  json:"heartRate5"`
	Respiratory5 *int `db:"respiratory_5" json:"respiratory5"`
	MuscleTone5  *int `db:"muscle_tone_5" json:"muscleTone5"`
	Reflexes5    *int `db:"reflexes_5"    json:"reflexes5"`
	Color5       *int `db:"color_5"       json:"color5"`

	HeartRate10   *int `db:"heart_rate_10"  json:"heartRate10"`
	Respiratory10 *int `db:"respiratory_10" json:"respiratory10"`
	MuscleTone10  *int `db:"muscle_tone_10" json:"muscleTone10"`
	Reflexes10    *int `db:"reflexes_10"    json:"reflexes10"`
	Color10       *int `db:"color_10"       json:"color10"`

	OtherHeartRate   *int `db:"other_heart_rate"   json:"otherHeartRate"`
	OtherRespiratory *int `db:"other_respiratory"  json:"otherRespiratory"`
	OtherMuscleTone  *int `db:"other_muscle_tone"  json:"otherMuscleTone"`
	OtherReflexes    *int `db:"other_reflexes"     json:"otherReflexes"`
	OtherColor       *int `db:"other_color"        json:"otherColor"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
