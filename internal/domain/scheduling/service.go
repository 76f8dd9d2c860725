package scheduling

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/maternity/records/internal/domain/admission"
	"github.com/maternity/records/internal/validation"
)

var ErrNotFound = errors.New("appointment not found")

// AdmissionDirectory is the slice of the admission service appointments
// need: the contact-snapshot lookup and the foreign-key probe. Both
// resolve soft-deleted admissions.
type AdmissionDirectory interface {
	Get(ctx context.Context, id int64) (*admission.PatientAdmission, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type Service struct {
	repo       Repository
	admissions AdmissionDirectory
}

func NewService(repo Repository, admissions AdmissionDirectory) *Service {
	return &Service{repo: repo, admissions: admissions}
}

func (s *Service) admissionExists(ctx context.Context, value interface{}) (bool, error) {
	f, ok := value.(float64)
	if !ok {
		return false, nil
	}
	return s.admissions.Exists(ctx, int64(f))
}

func (s *Service) List(ctx context.Context) ([]*Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return appt, err
}

// Create validates and stores a new appointment. When the client links a
// patient but leaves patient_name blank, the contact fields are
// snapshotted from the admission before the write.
func (s *Service) Create(ctx context.Context, fields map[string]interface{}) (*Appointment, validation.Errors, error) {
	errs, err := validation.Validate(ctx, fields, createRules(s.admissionExists))
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	appt := &Appointment{Status: "pending"}
	applyFields(appt, fields)

	if appt.PatientID != nil && (appt.PatientName == nil || *appt.PatientName == "") {
		s.snapshotContact(ctx, appt)
	}

	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, nil, err
	}
	return appt, nil, nil
}

// Update merges the supplied fields. Re-linking the appointment (a
// patient_id newly set or changed) re-snapshots name, phone and address
// from the new admission, overriding whatever the client sent for those
// three. Resending the current patient_id is not a re-link.
func (s *Service) Update(ctx context.Context, id int64, fields map[string]interface{}) (*Appointment, validation.Errors, error) {
	appt, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	errs, err := validation.Validate(ctx, fields, updateRules(s.admissionExists))
	if err != nil {
		return nil, nil, err
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	prevID := appt.PatientID
	applyFields(appt, fields)

	if appt.PatientID != nil && (prevID == nil || *prevID != *appt.PatientID) {
		s.snapshotContact(ctx, appt)
	}

	if err := s.repo.Update(ctx, appt); err != nil {
		return nil, nil, err
	}
	return appt, nil, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// snapshotContact copies name, phone and address from the linked
// admission. A lookup miss leaves the appointment untouched.
func (s *Service) snapshotContact(ctx context.Context, appt *Appointment) {
	adm, err := s.admissions.Get(ctx, *appt.PatientID)
	if err != nil || adm == nil {
		return
	}
	name := adm.FullName()
	appt.PatientName = &name
	appt.Phone = adm.TelephoneNumber
	address := adm.PermanentAddress
	appt.Address = &address
}

func applyFields(a *Appointment, fields map[string]interface{}) {
	validation.SetOptInt64(fields, "patient_id", &a.PatientID)
	validation.SetOptString(fields, "patient_name", &a.PatientName)
	validation.SetOptString(fields, "email", &a.Email)
	validation.SetOptString(fields, "phone", &a.Phone)
	validation.SetOptString(fields, "address", &a.Address)
	validation.SetOptString(fields, "appointment_type", &a.AppointmentType)
	validation.SetOptDateTime(fields, "scheduled_at", &a.ScheduledAt)
	validation.SetString(fields, "status", &a.Status)
}
