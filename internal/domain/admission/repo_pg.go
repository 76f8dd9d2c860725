package admission

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const admCols = `id, type, med_rec_no, last_name, first_name, middle_name,
	permanent_address, telephone_number, sex, civil_status, birth_date, age,
	birth_place, nationality, religion, occupation,
	employer, employer_address, employer_tel_no,
	father_name, father_address, father_tel_no,
	mother_name, mother_address, mother_tel_no,
	admission_date, admission_time, discharge_date, discharge_time, total_days,
	attending_physician, admission_type, referred_by,
	social_service_class, hospitalization_plan, health_insurance, medicare_type, allergies,
	admission_diagnosis, principal_diagnosis, other_diagnosis,
	principal_procedures, other_procedures, accident_details, place_of_occurrence,
	disposition, autopsy_status, soft_delete, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, adm *PatientAdmission) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO patient_admissions (
			type, med_rec_no, last_name, first_name, middle_name,
			permanent_address, telephone_number, sex, civil_status, birth_date, age,
			birth_place, nationality, religion, occupation,
			employer, employer_address, employer_tel_no,
			father_name, father_address, father_tel_no,
			mother_name, mother_address, mother_tel_no,
			admission_date, admission_time, discharge_date, discharge_time, total_days,
			attending_physician, admission_type, referred_by,
			social_service_class, hospitalization_plan, health_insurance, medicare_type, allergies,
			admission_diagnosis, principal_diagnosis, other_diagnosis,
			principal_procedures, other_procedures, accident_details, place_of_occurrence,
			disposition, autopsy_status, soft_delete
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,
			$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
			$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,
			$31,$32,$33,$34,$35,$36,$37,$38,$39,$40,
			$41,$42,$43,$44,$45,$46,$47
		) RETURNING id, created_at, updated_at`,
		adm.Type, adm.MedRecNo, adm.LastName, adm.FirstName, adm.MiddleName,
		adm.PermanentAddress, adm.TelephoneNumber, adm.Sex, adm.CivilStatus, adm.BirthDate, adm.Age,
		adm.BirthPlace, adm.Nationality, adm.Religion, adm.Occupation,
		adm.Employer, adm.EmployerAddress, adm.EmployerTelNo,
		adm.FatherName, adm.FatherAddress, adm.FatherTelNo,
		adm.MotherName, adm.MotherAddress, adm.MotherTelNo,
		adm.AdmissionDate, adm.AdmissionTime, adm.DischargeDate, adm.DischargeTime, adm.TotalDays,
		adm.AttendingPhysician, adm.AdmissionType, adm.ReferredBy,
		adm.SocialServiceClass, adm.HospitalizationPlan, adm.HealthInsurance, adm.MedicareType, adm.Allergies,
		adm.AdmissionDiagnosis, adm.PrincipalDiagnosis, adm.OtherDiagnosis,
		adm.PrincipalProcedures, adm.OtherProcedures, adm.AccidentDetails, adm.PlaceOfOccurrence,
		adm.Disposition, adm.AutopsyStatus, adm.SoftDelete,
	).Scan(&adm.ID, &adm.CreatedAt, &adm.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*PatientAdmission, error) {
	return scanAdmission(r.pool.QueryRow(ctx, `SELECT `+admCols+` FROM patient_admissions WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, adm *PatientAdmission) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE patient_admissions SET
			type=$2, med_rec_no=$3, last_name=$4, first_name=$5, middle_name=$6,
			permanent_address=$7, telephone_number=$8, sex=$9, civil_status=$10, birth_date=$11, age=$12,
			birth_place=$13, nationality=$14, religion=$15, occupation=$16,
			employer=$17, employer_address=$18, employer_tel_no=$19,
			father_name=$20, father_address=$21, father_tel_no=$22,
			mother_name=$23, mother_address=$24, mother_tel_no=$25,
			admission_date=$26, admission_time=$27, discharge_date=$28, discharge_time=$29, total_days=$30,
			attending_physician=$31, admission_type=$32, referred_by=$33,
			social_service_class=$34, hospitalization_plan=$35, health_insurance=$36, medicare_type=$37, allergies=$38,
			admission_diagnosis=$39, principal_diagnosis=$40, other_diagnosis=$41,
			principal_procedures=$42, other_procedures=$43, accident_details=$44, place_of_occurrence=$45,
			disposition=$46, autopsy_status=$47, soft_delete=$48, updated_at=NOW()
		WHERE id = $1`,
		adm.ID,
		adm.Type, adm.MedRecNo, adm.LastName, adm.FirstName, adm.MiddleName,
		adm.PermanentAddress, adm.TelephoneNumber, adm.Sex, adm.CivilStatus, adm.BirthDate, adm.Age,
		adm.BirthPlace, adm.Nationality, adm.Religion, adm.Occupation,
		adm.Employer, adm.EmployerAddress, adm.EmployerTelNo,
		adm.FatherName, adm.FatherAddress, adm.FatherTelNo,
		adm.MotherName, adm.MotherAddress, adm.MotherTelNo,
		adm.AdmissionDate, adm.AdmissionTime, adm.DischargeDate, adm.DischargeTime, adm.TotalDays,
		adm.AttendingPhysician, adm.AdmissionType, adm.ReferredBy,
		adm.SocialServiceClass, adm.HospitalizationPlan, adm.HealthInsurance, adm.MedicareType, adm.Allergies,
		adm.AdmissionDiagnosis, adm.PrincipalDiagnosis, adm.OtherDiagnosis,
		adm.PrincipalProcedures, adm.OtherProcedures, adm.AccidentDetails, adm.PlaceOfOccurrence,
		adm.Disposition, adm.AutopsyStatus, adm.SoftDelete,
	)
	return err
}

func (r *repoPG) List(ctx context.Context) ([]*PatientAdmission, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+admCols+` FROM patient_admissions WHERE soft_delete = false ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var adms []*PatientAdmission
	for rows.Next() {
		adm, err := scanAdmission(rows)
		if err != nil {
			return nil, err
		}
		adms = append(adms, adm)
	}
	return adms, rows.Err()
}

func (r *repoPG) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM patient_admissions WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *repoPG) MedRecNoTaken(ctx context.Context, medRecNo string, excludeDeleted bool) (bool, error) {
	q := `SELECT EXISTS (SELECT 1 FROM patient_admissions WHERE med_rec_no = $1)`
	if excludeDeleted {
		q = `SELECT EXISTS (SELECT 1 FROM patient_admissions WHERE med_rec_no = $1 AND soft_delete = false)`
	}
	var taken bool
	err := r.pool.QueryRow(ctx, q, medRecNo).Scan(&taken)
	return taken, err
}

func scanAdmission(row pgx.Row) (*PatientAdmission, error) {
	var a PatientAdmission
	err := row.Scan(
		&a.ID, &a.Type, &a.MedRecNo, &a.LastName, &a.FirstName, &a.MiddleName,
		&a.PermanentAddress, &a.TelephoneNumber, &a.Sex, &a.CivilStatus, &a.BirthDate, &a.Age,
		&a.BirthPlace, &a.Nationality, &a.Religion, &a.Occupation,
		&a.Employer, &a.EmployerAddress, &a.EmployerTelNo,
		&a.FatherName, &a.FatherAddress, &a.FatherTelNo,
		&a.MotherName, &a.MotherAddress, &a.MotherTelNo,
		&a.AdmissionDate, &a.AdmissionTime, &a.DischargeDate, &a.DischargeTime, &a.TotalDays,
		&a.AttendingPhysician, &a.AdmissionType, &a.ReferredBy,
		&a.SocialServiceClass, &a.HospitalizationPlan, &a.HealthInsurance, &a.MedicareType, &a.Allergies,
		&a.AdmissionDiagnosis, &a.PrincipalDiagnosis, &a.OtherDiagnosis,
		&a.PrincipalProcedures, &a.OtherProcedures, &a.AccidentDetails, &a.PlaceOfOccurrence,
		&a.Disposition, &a.AutopsyStatus, &a.SoftDelete, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
