package obstetrics

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/maternity/records/internal/validation"
)

var ErrNotFound = errors.New("not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) sheetExists(ctx context.Context, value interface{}) (bool, error) {
	id, ok := numericID(value)
	if !ok {
		return false, nil
	}
	return s.repo.SheetExists(ctx, id)
}

// -- Sheets --

func (s *Service) ListSheets(ctx context.Context) ([]*ObstetricSheet, error) {
	return s.repo.ListSheets(ctx)
}

func (s *Service) GetSheet(ctx context.Context, id int64) (*ObstetricSheet, error) {
	sheet, err := s.repo.GetSheetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return sheet, err
}

func (s *Service) CreateSheet(ctx context.Context, fields map[string]interface{}) (*ObstetricSheet, validation.Errors, error) {
	errs, err := validation.Validate(ctx, fields, sheetCreateRules())
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	sheet := &ObstetricSheet{}
	applySheetFields(sheet, fields)
	if err := s.repo.CreateSheet(ctx, sheet); err != nil {
		return nil, nil, err
	}
	return sheet, nil, nil
}

func (s *Service) UpdateSheet(ctx context.Context, id int64, fields map[string]interface{}) (*ObstetricSheet, validation.Errors, error) {
	sheet, err := s.GetSheet(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	errs, err := validation.Validate(ctx, fields, sheetUpdateRules())
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	applySheetFields(sheet, fields)
	if err := s.repo.UpdateSheet(ctx, sheet); err != nil {
		return nil, nil, err
	}
	return sheet, nil, nil
}

func (s *Service) DeleteSheet(ctx context.Context, id int64) error {
	if _, err := s.GetSheet(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteSheet(ctx, id)
}

// -- Pregnancy records --

func (s *Service) ListRecords(ctx context.Context) ([]*PregnancyRecord, error) {
	return s.repo.ListRecords(ctx)
}

func (s *Service) GetRecord(ctx context.Context, id int64) (*PregnancyRecord, error) {
	rec, err := s.repo.GetRecordByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rec, err
}

func (s *Service) CreateRecord(ctx context.Context, fields map[string]interface{}) (*PregnancyRecord, validation.Errors, error) {
	errs, err := validation.Validate(ctx, fields, recordCreateRules(s.sheetExists))
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	rec := &PregnancyRecord{}
	applyRecordFields(rec, fields)
	if err := s.repo.CreateRecord(ctx, rec); err != nil {
		return nil, nil, err
	}
	return rec, nil, nil
}

func (s *Service) UpdateRecord(ctx context.Context, id int64, fields map[string]interface{}) (*PregnancyRecord, validation.Errors, error) {
	rec, err := s.GetRecord(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	errs, err := validation.Validate(ctx, fields, recordUpdateRules(s.sheetExists))
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	applyRecordFields(rec, fields)
	if err := s.repo.UpdateRecord(ctx, rec); err != nil {
		return nil, nil, err
	}
	return rec, nil, nil
}

func (s *Service) DeleteRecord(ctx context.Context, id int64) error {
	if _, err := s.GetRecord(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteRecord(ctx, id)
}

// numericID accepts the id however the client sent it, number or string.
func numericID(v interface{}) (int64, bool) {
	switch x := v.(type) {
	case float64:
		return int64(x), true
	case string:
		id, err := strconv.ParseInt(x, 10, 64)
		return id, err == nil
	}
	return 0, false
}

func applySheetFields(s *ObstetricSheet, fields map[string]interface{}) {
	if v, present := fields["patient_admission_id"]; present {
		if id, ok := numericID(v); ok {
			s.PatientAdmissionID = id
		}
	}

	validation.SetOptString(fields, "reason_for_admission", &s.ReasonForAdmission)
	validation.SetOptString(fields, "admitting_impression", &s.AdmittingImpression)
	validation.SetOptString(fields, "final_diagnosis", &s.FinalDiagnosis)
	validation.SetOptString(fields, "pertinent_medical_history", &s.PertinentMedicalHistory)
	validation.SetOptString(fields, "educational_attainment", &s.EducationalAttainment)

	applyPreviousPregnancies(s, fields)

	validation.SetOptDate(fields, "lmp", &s.LMP)
	validation.SetOptDate(fields, "edc", &s.EDC)
	validation.SetOptInt(fields, "aog", &s.AOG)
	validation.SetOptInt(fields, "weeks_pmp", &s.WeeksPMP)
	validation.SetOptBool(fields, "morning_sickness", &s.MorningSickness)
	validation.SetOptDate(fields, "quickening", &s.Quickening)
	validation.SetOptString(fields, "abnormal_signs", &s.AbnormalSigns)
	validation.SetOptString(fields, "primary_antenatal_condition", &s.PrimaryAntenatalCondition)
	validation.SetOptInt(fields, "antenatal_visits_first", &s.AntenatalVisitsFirst)
	validation.SetOptInt(fields, "antenatal_visits_last", &s.AntenatalVisitsLast)
	validation.SetOptString(fields, "contraceptive_methods", &s.ContraceptiveMethods)
	validation.SetOptInt(fields, "additional_children_wanted", &s.AdditionalChildrenWanted)
	validation.SetOptString(fields, "history_of_present_illness", &s.HistoryOfPresentIllness)

	validation.SetOptString(fields, "general_condition", &s.GeneralCondition)
	validation.SetOptString(fields, "bp", &s.BP)
	validation.SetOptInt(fields, "hr", &s.HR)
	validation.SetOptInt(fields, "rr", &s.RR)
	validation.SetOptFloat(fields, "temp", &s.Temp)
	validation.SetOptFloat(fields, "weight", &s.Weight)
	validation.SetOptFloat(fields, "height", &s.Height)
	validation.SetOptFloat(fields, "fundic_height", &s.FundicHeight)
	validation.SetOptString(fields, "presentation", &s.Presentation)
	validation.SetBool(fields, "engaged", &s.Engaged)
	validation.SetBool(fields, "floating", &s.Floating)
	validation.SetOptFloat(fields, "efw", &s.EFW)
	validation.SetOptString(fields, "fht", &s.FHT)
	validation.SetOptString(fields, "extremities", &s.Extremities)
	validation.SetOptString(fields, "edema", &s.Edema)
	validation.SetOptBool(fields, "albuminuria", &s.Albuminuria)
	validation.SetOptBool(fields, "glucosuria", &s.Glucosuria)
	validation.SetOptString(fields, "hemoglobin", &s.Hemoglobin)
}

func applyPreviousPregnancies(s *ObstetricSheet, fields map[string]interface{}) {
	v, present := fields["previous_pregnancies"]
	if !present {
		return
	}
	if v == nil {
		s.PreviousPregnancies = nil
		return
	}
	arr, ok := v.([]interface{})
	if !ok {
		return
	}

	out := make([]PreviousPregnancy, 0, len(arr))
	for _, entry := range arr {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		var p PreviousPregnancy
		validation.SetString(obj, "label", &p.Label)
		validation.SetOptInt(obj, "year", &p.Year)
		validation.SetOptString(obj, "aog", &p.AOG)
		validation.SetOptString(obj, "manner", &p.Manner)
		validation.SetOptString(obj, "place", &p.Place)
		validation.SetOptString(obj, "gender", &p.Gender)
		validation.SetOptFloat(obj, "weight", &p.Weight)
		validation.SetOptString(obj, "complications", &p.Complications)
		validation.SetOptString(obj, "status", &p.Status)
		out = append(out, p)
	}
	s.PreviousPregnancies = out
}

func applyRecordFields(rec *PregnancyRecord, fields map[string]interface{}) {
	if v, present := fields["obstetric_sheet_id"]; present {
		if id, ok := numericID(v); ok {
			rec.ObstetricSheetID = id
		}
	}
	validation.SetString(fields, "pregnancy_order", &rec.PregnancyOrder)
	validation.SetOptString(fields, "aog", &rec.AOG)
	validation.SetOptString(fields, "manner_of_delivery", &rec.MannerOfDelivery)
	validation.SetOptString(fields, "place_of_delivery", &rec.PlaceOfDelivery)
	validation.SetOptString(fields, "gender", &rec.Gender)
	validation.SetOptString(fields, "weight", &rec.Weight)
	validation.SetOptString(fields, "complications", &rec.Complications)
	validation.SetOptString(fields, "status", &rec.Status)
}
