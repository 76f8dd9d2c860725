package scoring

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/maternity/records/internal/validation"
)

var ErrNotFound = errors.New("scoring chart not found")

// AdmissionDirectory is the foreign-key probe against patient admissions.
// The probe resolves soft-deleted admissions too.
type AdmissionDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo       Repository
	admissions AdmissionDirectory
}

func NewService(repo Repository, admissions AdmissionDirectory) *Service {
	return &Service{repo: repo, admissions: admissions}
}

// Clients send the admission reference as a number or a digit string.
func (s *Service) admissionExists(ctx context.Context, value interface{}) (bool, error) {
	switch v := value.(type) {
	case float64:
		return s.admissions.Exists(ctx, int64(v))
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return false, nil
		}
		return s.admissions.Exists(ctx, id)
	}
	return false, nil
}

func (s *Service) List(ctx context.Context) ([]*ScoringChart, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*ScoringChart, error) {
	chart, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return chart, err
}

func (s *Service) Create(ctx context.Context, fields map[string]interface{}) (*ScoringChart, validation.Errors, error) {
	errs, err := validation.Validate(ctx, fields, chartRules(s.admissionExists))
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	chart := &ScoringChart{}
	applyFields(chart, fields)
	if err := s.repo.Create(ctx, chart); err != nil {
		return nil, nil, err
	}
	return chart, nil, nil
}

func (s *Service) Update(ctx context.Context, id int64, fields map[string]interface{}) (*ScoringChart, validation.Errors, error) {
	chart, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	errs, err := validation.Validate(ctx, fields, chartRules(s.admissionExists))
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	applyFields(chart, fields)
	if err := s.repo.Update(ctx, chart); err != nil {
		return nil, nil, err
	}
	return chart, nil, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func applyFields(c *ScoringChart, fields map[string]interface{}) {
	if v, present := fields["patient_admission_id"]; present {
		switch x := v.(type) {
		case float64:
			c.PatientAdmissionID = int64(x)
		case string:
			if id, err := strconv.ParseInt(x, 10, 64); err == nil {
				c.PatientAdmissionID = id
			}
		}
	}
	validation.SetOptDate(fields, "dateScored", &c.DateScored)

	validation.SetOptInt(fields, "heartRate", &c.HeartRate)
	validation.SetOptInt(fields, "respiratory", &c.Respiratory)
	validation.SetOptInt(fields, "muscleTone", &c.MuscleTone)
	validation.SetOptInt(fields, "reflexes", &c.Reflexes)
	validation.SetOptInt(fields, "color", &c.Color)

	validation.SetOptInt(fields, "heartRate5", &c.HeartRate5)
	validation.SetOptInt(fields, "respiratory5", &c.Respiratory5)
	validation.SetOptInt(fields, "muscleTone5", &c.MuscleTone5)
	validation.SetOptInt(fields, "reflexes5", &c.Reflexes5)
	validation.SetOptInt(fields, "color5", &c.Color5)

	validation.SetOptInt(fields, "heartRate10", &c.HeartRate10)
	validation.SetOptInt(fields, "respiratory10", &c.Respiratory10)
	validation.SetOptInt(fields, "muscleTone10", &c.MuscleTone10)
	validation.SetOptInt(fields, "reflexes10", &c.Reflexes10)
	validation.SetOptInt(fields, "color10", &c.Color10)

	validation.SetOptInt(fields, "otherHeartRate", &c.OtherHeartRate)
	validation.SetOptInt(fields, "otherRespiratory", &c.OtherRespiratory)
	validation.SetOptInt(fields, "otherMuscleTone", &c.OtherMuscleTone)
	validation.SetOptInt(fields, "otherReflexes", &c.OtherReflexes)
	validation.SetOptInt(fields, "otherColor", &c.OtherColor)
}
