package obstetrics

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

const sheetCols = `id, patient_admission_id,
	reason_for_admission, admitting_impression, final_diagnosis,
	pertinent_medical_history, educational_attainment, previous_pregnancies,
	lmp, edc, aog, weeks_pmp, morning_sickness, quickening, abnormal_signs,
	primary_antenatal_condition, antenatal_visits_first, antenatal_visits_last,
	contraceptive_methods, additional_children_wanted, history_of_present_illness,
	general_condition, bp, hr, rr, temp, weight, height, fundic_height,
	presentation, engaged, floating, efw, fht, extremities, edema,
	albuminuria, glucosuria, hemoglobin, created_at, updated_at`

func (r *repoPG) CreateSheet(ctx context.Context, s *ObstetricSheet) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO obstetric_sheets (
			patient_admission_id,
			reason_for_admission, admitting_impression, final_diagnosis,
			pertinent_medical_history, educational_attainment, previous_pregnancies,
			lmp, edc, aog, weeks_pmp, morning_sickness, quickening, abnormal_signs,
			primary_antenatal_condition, antenatal_visits_first, antenatal_visits_last,
			contraceptive_methods, additional_children_wanted, history_of_present_illness,
			general_condition, bp, hr, rr, temp, weight, height, fundic_height,
			presentation, engaged, floating, efw, fht, extremities, edema,
			albuminuria, glucosuria, hemoglobin
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,
			$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
			$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,
			$31,$32,$33,$34,$35,$36,$37,$38
		) RETURNING id, created_at, updated_at`,
		s.PatientAdmissionID,
		s.ReasonForAdmission, s.AdmittingImpression, s.FinalDiagnosis,
		s.PertinentMedicalHistory, s.EducationalAttainment, s.PreviousPregnancies,
		s.LMP, s.EDC, s.AOG, s.WeeksPMP, s.MorningSickness, s.Quickening, s.AbnormalSigns,
		s.PrimaryAntenatalCondition, s.AntenatalVisitsFirst, s.AntenatalVisitsLast,
		s.ContraceptiveMethods, s.AdditionalChildrenWanted, s.HistoryOfPresentIllness,
		s.GeneralCondition, s.BP, s.HR, s.RR, s.Temp, s.Weight, s.Height, s.FundicHeight,
		s.Presentation, s.Engaged, s.Floating, s.EFW, s.FHT, s.Extremities, s.Edema,
		s.Albuminuria, s.Glucosuria, s.Hemoglobin,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *repoPG) GetSheetByID(ctx context.Context, id int64) (*ObstetricSheet, error) {
	return scanSheet(r.pool.QueryRow(ctx, `SELECT `+sheetCols+` FROM obstetric_sheets WHERE id = $1`, id))
}

func (r *repoPG) UpdateSheet(ctx context.Context, s *ObstetricSheet) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE obstetric_sheets SET
			patient_admission_id=$2,
			reason_for_admission=$3, admitting_impression=$4, final_diagnosis=$5,
			pertinent_medical_history=$6, educational_attainment=$7, previous_pregnancies=$8,
			lmp=$9, edc=$10, aog=$11, weeks_pmp=$12, morning_sickness=$13, quickening=$14,
			abnormal_signs=$15, primary_antenatal_condition=$16,
			antenatal_visits_first=$17, antenatal_visits_last=$18,
			contraceptive_methods=$19, additional_children_wanted=$20,
			history_of_present_illness=$21,
			general_condition=$22, bp=$23, hr=$24, rr=$25, temp=$26, weight=$27,
			height=$28, fundic_height=$29, presentation=$30, engaged=$31, floating=$32,
			efw=$33, fht=$34, extremities=$35, edema=$36,
			albuminuria=$37, glucosuria=$38, hemoglobin=$39, updated_at=NOW()
		WHERE id = $1`,
		s.ID, s.PatientAdmissionID,
		s.ReasonForAdmission, s.AdmittingImpression, s.FinalDiagnosis,
		s.PertinentMedicalHistory, s.EducationalAttainment, s.PreviousPregnancies,
		s.LMP, s.EDC, s.AOG, s.WeeksPMP, s.MorningSickness, s.Quickening,
		s.AbnormalSigns, s.PrimaryAntenatalCondition,
		s.AntenatalVisitsFirst, s.AntenatalVisitsLast,
		s.ContraceptiveMethods, s.AdditionalChildrenWanted,
		s.HistoryOfPresentIllness,
		s.GeneralCondition, s.BP, s.HR, s.RR, s.Temp, s.Weight,
		s.Height, s.FundicHeight, s.Presentation, s.Engaged, s.Floating,
		s.EFW, s.FHT, s.Extremities, s.Edema,
		s.Albuminuria, s.Glucosuria, s.Hemoglobin,
	)
	return err
}

func (r *repoPG) DeleteSheet(ctx context.Context, id int64) error {
	// pregnancy_records rows cascade with the sheet.
	_, err := r.pool.Exec(ctx, `DELETE FROM obstetric_sheets WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListSheets(ctx context.Context) ([]*ObstetricSheet, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+sheetCols+` FROM obstetric_sheets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheets []*ObstetricSheet
	for rows.Next() {
		sheet, err := scanSheet(rows)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}
	return sheets, rows.Err()
}

func (r *repoPG) SheetExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM obstetric_sheets WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

const recordCols = `id, obstetric_sheet_id, pregnancy_order, aog, manner_of_delivery,
	place_of_delivery, gender, weight, complications, status, created_at, updated_at`

func (r *repoPG) CreateRecord(ctx context.Context, rec *PregnancyRecord) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO pregnancy_records (
			obstetric_sheet_id, pregnancy_order, aog, manner_of_delivery,
			place_of_delivery, gender, weight, complications, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at, updated_at`,
		rec.ObstetricSheetID, rec.PregnancyOrder, rec.AOG, rec.MannerOfDelivery,
		rec.PlaceOfDelivery, rec.Gender, rec.Weight, rec.Complications, rec.Status,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *repoPG) GetRecordByID(ctx context.Context, id int64) (*PregnancyRecord, error) {
	return scanRecord(r.pool.QueryRow(ctx, `SELECT `+recordCols+` FROM pregnancy_records WHERE id = $1`, id))
}

func (r *repoPG) UpdateRecord(ctx context.Context, rec *PregnancyRecord) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE pregnancy_records SET
			obstetric_sheet_id=$2, pregnancy_order=$3, aog=$4, manner_of_delivery=$5,
			place_of_delivery=$6, gender=$7, weight=$8, complications=$9, status=$10,
			updated_at=NOW()
		WHERE id = $1`,
		rec.ID,
		rec.ObstetricSheetID, rec.PregnancyOrder, rec.AOG, rec.MannerOfDelivery,
		rec.PlaceOfDelivery, rec.Gender, rec.Weight, rec.Complications, rec.Status,
	)
	return err
}

func (r *repoPG) DeleteRecord(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM pregnancy_records WHERE id = $1`, id)
	return err
}

func (r *repoPG) ListRecords(ctx context.Context) ([]*PregnancyRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+recordCols+` FROM pregnancy_records ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*PregnancyRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func scanSheet(row pgx.Row) (*ObstetricSheet, error) {
	var s ObstetricSheet
	err := row.Scan(
		&s.ID, &s.PatientAdmissionID,
		&s.ReasonForAdmission, &s.AdmittingImpression, &s.FinalDiagnosis,
		&s.PertinentMedicalHistory, &s.EducationalAttainment, &s.PreviousPregnancies,
		&s.LMP, &s.EDC, &s.AOG, &s.WeeksPMP, &s.MorningSickness, &s.Quickening, &s.AbnormalSigns,
		&s.PrimaryAntenatalCondition, &s.AntenatalVisitsFirst, &s.AntenatalVisitsLast,
		&s.ContraceptiveMethods, &s.AdditionalChildrenWanted, &s.HistoryOfPresentIllness,
		&s.GeneralCondition, &s.BP, &s.HR, &s.RR, &s.Temp, &s.Weight, &s.Height, &s.FundicHeight,
		&s.Presentation, &s.Engaged, &s.Floating, &s.EFW, &s.FHT, &s.Extremities, &s.Edema,
		&s.Albuminuria, &s.Glucosuria, &s.Hemoglobin, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanRecord(row pgx.Row) (*PregnancyRecord, error) {
	var rec PregnancyRecord
	err := row.Scan(
		&rec.ID, &rec.ObstetricSheetID, &rec.PregnancyOrder, &rec.AOG, &rec.MannerOfDelivery,
		&rec.PlaceOfDelivery, &rec.Gender, &rec.Weight, &rec.Complications, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
