package admission

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/maternity/records/internal/validation"
)

// ErrNotFound is returned when an admission id does not resolve at all,
// deleted or otherwise.
var ErrNotFound = errors.New("patient admission not found")

type Service struct {
	repo                  Repository
	uniqueExcludesDeleted bool
}

func NewService(repo Repository, uniqueExcludesDeleted bool) *Service {
	return &Service{repo: repo, uniqueExcludesDeleted: uniqueExcludesDeleted}
}

func (s *Service) medRecNoTaken(ctx context.Context, value interface{}) (bool, error) {
	medRecNo, ok := value.(string)
	if !ok {
		return false, nil
	}
	return s.repo.MedRecNoTaken(ctx, medRecNo, s.uniqueExcludesDeleted)
}

func (s *Service) List(ctx context.Context) ([]*PatientAdmission, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*PatientAdmission, error) {
	adm, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return adm, err
}

// Create validates the raw request fields and stores a new admission.
// A non-empty Errors map means the request was rejected wholesale.
func (s *Service) Create(ctx context.Context, fields map[string]interface{}) (*PatientAdmission, validation.Errors, error) {
	errs, err := validation.Validate(ctx, fields, createRules(s.medRecNoTaken))
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	adm := &PatientAdmission{}
	applyFields(adm, fields)
	if err := s.repo.Create(ctx, adm); err != nil {
		return nil, nil, err
	}
	return adm, nil, nil
}

// Update merges the supplied fields onto the stored row. Soft-deleted
// rows resolve and update like live ones.
func (s *Service) Update(ctx context.Context, id int64, fields map[string]interface{}) (*PatientAdmission, validation.Errors, error) {
	adm, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	errs, err := validation.Validate(ctx, fields, updateRules(s.medRecNoTaken))
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	applyFields(adm, fields)
	if err := s.repo.Update(ctx, adm); err != nil {
		return nil, nil, err
	}
	return adm, nil, nil
}

// SoftDelete flags the row instead of removing it. Flagging an
// already-deleted row succeeds.
func (s *Service) SoftDelete(ctx context.Context, id int64) error {
	adm, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	adm.SoftDelete = true
	return s.repo.Update(ctx, adm)
}

// Exists is the foreign-key probe other resources validate against.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

func applyFields(a *PatientAdmission, fields map[string]interface{}) {
	validation.SetString(fields, "type", &a.Type)
	validation.SetOptString(fields, "medRecNo", &a.MedRecNo)
	validation.SetString(fields, "lastName", &a.LastName)
	validation.SetString(fields, "firstName", &a.FirstName)
	validation.SetOptString(fields, "middleName", &a.MiddleName)
	validation.SetString(fields, "permanentAddress", &a.PermanentAddress)
	validation.SetOptString(fields, "telephoneNumber", &a.TelephoneNumber)
	validation.SetString(fields, "sex", &a.Sex)
	validation.SetString(fields, "civilStatus", &a.CivilStatus)
	validation.SetDate(fields, "birthDate", &a.BirthDate)
	validation.SetString(fields, "age", &a.Age)
	validation.SetString(fields, "birthPlace", &a.BirthPlace)
	validation.SetString(fields, "nationality", &a.Nationality)
	validation.SetString(fields, "religion", &a.Religion)
	validation.SetString(fields, "occupation", &a.Occupation)
	validation.SetOptString(fields, "employer", &a.Employer)
	validation.SetOptString(fields, "employerAddress", &a.EmployerAddress)
	validation.SetOptString(fields, "employerTelNo", &a.EmployerTelNo)
	validation.SetOptString(fields, "fatherName", &a.FatherName)
	validation.SetOptString(fields, "fatherAddress", &a.FatherAddress)
	validation.SetOptString(fields, "fatherTelNo", &a.FatherTelNo)
	validation.SetOptString(fields, "motherName", &a.MotherName)
	validation.SetOptString(fields, "motherAddress", &a.MotherAddress)
	validation.SetOptString(fields, "motherTelNo", &a.MotherTelNo)
	validation.SetDate(fields, "admissionDate", &a.AdmissionDate)
	validation.SetString(fields, "admissionTime", &a.AdmissionTime)
	validation.SetOptDate(fields, "dischargeDate", &a.DischargeDate)
	validation.SetOptString(fields, "dischargeTime", &a.DischargeTime)
	validation.SetOptString(fields, "totalDays", &a.TotalDays)
	validation.SetString(fields, "attendingPhysician", &a.AttendingPhysician)
	validation.SetString(fields, "admissionType", &a.AdmissionType)
	validation.SetOptString(fields, "referredBy", &a.ReferredBy)
	validation.SetString(fields, "socialServiceClass", &a.SocialServiceClass)
	validation.SetOptString(fields, "hospitalizationPlan", &a.HospitalizationPlan)
	validation.SetOptString(fields, "healthInsurance", &a.HealthInsurance)
	validation.SetOptString(fields, "medicareType", &a.MedicareType)
	validation.SetOptString(fields, "allergies", &a.Allergies)
	validation.SetString(fields, "admissionDiagnosis", &a.AdmissionDiagnosis)
	validation.SetString(fields, "principalDiagnosis", &a.PrincipalDiagnosis)
	validation.SetOptString(fields, "otherDiagnosis", &a.OtherDiagnosis)
	validation.SetOptString(fields, "principalProcedures", &a.PrincipalProcedures)
	validation.SetOptString(fields, "otherProcedures", &a.OtherProcedures)
	validation.SetOptString(fields, "accidentDetails", &a.AccidentDetails)
	validation.SetOptString(fields, "placeOfOccurrence", &a.PlaceOfOccurrence)
	validation.SetString(fields, "disposition", &a.Disposition)
	validation.SetString(fields, "autopsyStatus", &a.AutopsyStatus)
}
