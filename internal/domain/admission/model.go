// Package admission holds the maternity-ward patient admission record,
// the root entity the other resources reference. Admissions are
// soft-deleted: the flag hides a row from listings while id lookups and
// foreign-key probes keep resolving it.
package admission

import "time"

// PatientAdmission maps to the patient_admissions table. JSON keys are
// the camelCase names the admission forms were digitized with; they are
// the external contract.
type PatientAdmission struct {
	ID   int64  `db:"id" json:"id"`
	Type string `db:"type" json:"type"`

	// Patient information
	MedRecNo         *string   `db:"med_rec_no" json:"medRecNo"`
	LastName         string    `db:"last_name" json:"lastName"`
	FirstName        string    `db:"first_name" json:"firstName"`
	MiddleName       *string   `db:"middle_name" json:"middleName"`
	PermanentAddress string    `db:"permanent_address" json:"permanentAddress"`
	TelephoneNumber  *string   `db:"telephone_number" json:"telephoneNumber"`
	Sex              string    `db:"sex" json:"sex"`
	CivilStatus      string    `db:"civil_status" json:"civilStatus"`
	BirthDate        time.Time `db:"birth_date" json:"birthDate"`
	Age              string    `db:"age" json:"age"`
	BirthPlace       string    `db:"birth_place" json:"birthPlace"`
	Nationality      string    `db:"nationality" json:"nationality"`
	Religion         string    `db:"religion" json:"religion"`
	Occupation       string    `db:"occupation" json:"occupation"`

	// Employment
	Employer        *string `db:"employer" json:"employer"`
	EmployerAddress *string `db:"employer_address" json:"employerAddress"`
	EmployerTelNo   *string `db:"employer_tel_no" json:"employerTelNo"`

	// Parents
	FatherName    *string `db:"father_name" json:"fatherName"`
	FatherAddress *string `db:"father_address" json:"fatherAddress"`
	FatherTelNo   *string `db:"father_tel_no" json:"fatherTelNo"`
	MotherName    *string `db:"mother_name" json:"motherName"`
	MotherAddress *string `db:"mother_address" json:"motherAddress"`
	MotherTelNo   *string `db:"mother_tel_no" json:"motherTelNo"`

	// Admission details
	AdmissionDate      time.Time  `db:"admission_date" json:"admissionDate"`
	AdmissionTime      string     `db:"admission_time" json:"admissionTime"`
	DischargeDate      *time.Time `db:"discharge_date" json:"dischargeDate"`
	DischargeTime      *string    `db:"discharge_time" json:"dischargeTime"`
	TotalDays          *string    `db:"total_days" json:"totalDays"`
	AttendingPhysician string     `db:"attending_physician" json:"attendingPhysician"`
	AdmissionType      string     `db:"admission_type" json:"admissionType"`
	ReferredBy         *string    `db:"referred_by" json:"referredBy"`

	// Insurance and classification
	SocialServiceClass  string  `db:"social_service_class" json:"socialServiceClass"`
	HospitalizationPlan *string `db:"hospitalization_plan" json:"hospitalizationPlan"`
	HealthInsurance     *string `db:"health_insurance" json:"healthInsurance"`
	MedicareType        *string `db:"medicare_type" json:"medicareType"`
	Allergies           *string `db:"allergies" json:"allergies"`

	// Diagnosis and procedures
	AdmissionDiagnosis  string  `db:"admission_diagnosis" json:"admissionDiagnosis"`
	PrincipalDiagnosis  string  `db:"principal_diagnosis" json:"principalDiagnosis"`
	OtherDiagnosis      *string `db:"other_diagnosis" json:"otherDiagnosis"`
	PrincipalProcedures *string `db:"principal_procedures" json:"principalProcedures"`
	OtherProcedures     *string `db:"other_procedures" json:"otherProcedures"`
	AccidentDetails     *string `db:"accident_details" json:"accidentDetails"`
	PlaceOfOccurrence   *string `db:"place_of_occurrence" json:"placeOfOccurrence"`

	Disposition   string `db:"disposition" json:"disposition"`
	AutopsyStatus string `db:"autopsy_status" json:"autopsyStatus"`

	SoftDelete bool      `db:"soft_delete" json:"softDelete"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// FullName is "firstName middleName lastName". When middleName is empty
// the join keeps both separators, so the result carries a double space;
// appointment contact snapshots depend on this exact shape.
func (a *PatientAdmission) FullName() string {
	middle := ""
	if a.MiddleName != nil {
		middle = *a.MiddleName
	}
	return a.FirstName + " " + middle + " " + a.LastName
}
