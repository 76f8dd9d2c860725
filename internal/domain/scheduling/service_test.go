package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/maternity/records/internal/domain/admission"
)

// -- Mocks --

type mockRepo struct {
	appointments map[int64]*Appointment
	nextID       int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{appointments: make(map[int64]*Appointment)}
}

func (m *mockRepo) Create(_ context.Context, appt *Appointment) error {
	m.nextID++
	appt.ID = m.nextID
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = time.Now()
	m.appointments[appt.ID] = appt
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Appointment, error) {
	appt, ok := m.appointments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *appt
	return &copied, nil
}

func (m *mockRepo) Update(_ context.Context, appt *Appointment) error {
	m.appointments[appt.ID] = appt
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	delete(m.appointments, id)
	return nil
}

func (m *mockRepo) List(_ context.Context) ([]*Appointment, error) {
	var result []*Appointment
	for _, appt := range m.appointments {
		result = append(result, appt)
	}
	return result, nil
}

type mockAdmissions struct {
	admissions map[int64]*admission.PatientAdmission
	// existsAll makes the foreign-key probe pass regardless, so tests can
	// exercise a snapshot lookup miss behind a passing validation.
	existsAll bool
}

func (m *mockAdmissions) Get(_ context.Context, id int64) (*admission.PatientAdmission, error) {
	adm, ok := m.admissions[id]
	if !ok {
		return nil, admission.ErrNotFound
	}
	return adm, nil
}

func (m *mockAdmissions) Exists(_ context.Context, id int64) (bool, error) {
	if m.existsAll {
		return true, nil
	}
	_, ok := m.admissions[id]
	return ok, nil
}

// -- Tests --

func futureDate() string {
	return time.Now().Add(48 * time.Hour).Format("2006-01-02T15:04:05")
}

func testAdmission(id int64, first, middle, last string) *admission.PatientAdmission {
	phone := "555-123-4567"
	adm := &admission.PatientAdmission{
		ID:               id,
		FirstName:        first,
		LastName:         last,
		PermanentAddress: "123 Main St, Cityville",
		TelephoneNumber:  &phone,
	}
	if middle != "" {
		adm.MiddleName = &middle
	}
	return adm
}

func newTestService(adms *mockAdmissions) (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo, adms), repo
}

func TestCreateAppointment_SnapshotsContact(t *testing.T) {
	adms := &mockAdmissions{admissions: map[int64]*admission.PatientAdmission{
		1: testAdmission(1, "John", "Quincy", "Doe"),
	}}
	svc, _ := newTestService(adms)

	appt, errs, err := svc.Create(context.Background(), map[string]interface{}{
		"patient_id":       float64(1),
		"appointment_type": "prenatal",
		"scheduled_at":     futureDate(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) > 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if appt.PatientName == nil || *appt.PatientName != "John Quincy Doe" {
		t.Errorf("expected snapshotted name, got %v", appt.PatientName)
	}
	if appt.Phone == nil || *appt.Phone != "555-123-4567" {
		t.Errorf("expected snapshotted phone, got %v", appt.Phone)
	}
	if appt.Address == nil || *appt.Address != "123 Main St, Cityville" {
		t.Errorf("expected snapshotted address, got %v", appt.Address)
	}
	if appt.Status != "pending" {
		t.Errorf("expected default status pending, got %s", appt.Status)
	}
}

func TestCreateAppointment_NoMiddleNameDoubleSpace(t *testing.T) {
	adms := &mockAdmissions{admissions: map[int64]*admission.PatientAdmission{
		1: testAdmission(1, "John", "", "Doe"),
	}}
	svc, _ := newTestService(adms)

	appt, _, err := svc.Create(context.Background(), map[string]interface{}{
		"patient_id":       float64(1),
		"appointment_type": "prenatal",
		"scheduled_at":     futureDate(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.PatientName == nil || *appt.PatientName != "John  Doe" {
		t.Errorf("expected 'John  Doe' with double space, got %v", appt.PatientName)
	}
}

func TestCreateAppointment_ClientNameWins(t *testing.T) {
	adms := &mockAdmissions{admissions: map[int64]*admission.PatientAdmission{
		1: testAdmission(1, "John", "Quincy", "Doe"),
	}}
	svc, _ := newTestService(adms)

	appt, _, err := svc.Create(context.Background(), map[string]interface{}{
		"patient_id":       float64(1),
		"patient_name":     "Walk-in Jane",
		"appointment_type": "prenatal",
		"scheduled_at":     futureDate(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appt.PatientName == nil || *appt.PatientName != "Walk-in Jane" {
		t.Errorf("expected client name to stand, got %v", appt.PatientName)
	}
	if appt.Phone != nil {
		t.Errorf("phone should not be snapshotted when name was supplied, got %v", appt.Phone)
	}
}

func TestCreateAppointment_SnapshotMissIsSilent(t *testing.T) {
	adms := &mockAdmissions{admissions: map[int64]*admission.PatientAdmission{}, existsAll: true}
	svc, _ := newTestService(adms)

	appt, errs, err := svc.Create(context.Background(), map[string]interface{}{
		"patient_id":       float64(7),
		"appointment_type": "delivery",
		"scheduled_at":     futureDate(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) > 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if appt.PatientName != nil {
		t.Errorf("expected name to stay empty on lookup miss, got %v", appt.PatientName)
	}
}

func TestCreateAppointment_UnknownPatientRejected(t *testing.T) {
	adms := &mockAdmissions{admissions: map[int64]*admission.PatientAdmission{}}
	svc, _ := newTestService(adms)

	_, errs, err := svc.Create(context.Background(), map[string]interface{}{
		"patient_id":       float64(99),
		"appointment_type": "prenatal",
		"scheduled_at":     futureDate(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs["patient_id"]) == 0 {
		t.Error("expected patient_id existence error")
	}
}

func TestCreateAppointment_PastScheduleRejected(t *testing.T) {
	adms := &mockAdmissions{admissions: map[int64]*admission.PatientAdmission{}}
	svc, _ := newTestService(adms)

	_, errs, err := svc.Create(context.Background(), map[string]interface{}{
		"appointment_type": "postnatal",
		"scheduled_at":     "2020-01-01T10:00:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs["scheduled_at"]) == 0 {
		t.Error("expected scheduled_at past-date error")
	}
}

func TestUpdateAppointment_RelinkOverwritesContact(t *testing.T) {
	adms := &mockAdmissions{admissions: map[int64]*admission.PatientAdmission{
		1: testAdmission(1, "John", "Quincy", "Doe"),
		2: testAdmission(2, "Maria", "Clara", "Santos"),
	}}
	svc, _ := newTestService(adms)

	appt, _, _ := svc.Create(context.Background(), map[string]interface{}{
		"patient_id":       float64(1),
		"appointment_type": "prenatal",
		"scheduled_at":     futureDate(),
	})

	// Changing patient_id re-snapshots, overriding the client's name.
	updated, errs, err := svc.Update(context.Background(), appt.ID, map[string]interface{}{
		"patient_id":   float64(2),
		"patient_name": "Should Be Ignored",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) > 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if updated.PatientName == nil || *updated.PatientName != "Maria Clara Santos" {
		t.Errorf("expected re-snapshotted name, got %v", updated.PatientName)
	}
}

func TestUpdateAppointment_SamePatientIDKeepsClientName(t *testing.T) {
	adms := &mockAdmissions{admissions: map[int64]*admission.PatientAdmission{
		1: testAdmission(1, "John", "Quincy", "Doe"),
	}}
	svc, _ := newTestService(adms)

	appt, _, _ := svc.Create(context.Background(), map[string]interface{}{
		"patient_id":       float64(1),
		"appointment_type": "prenatal",
		"scheduled_at":     futureDate(),
	})

	// Resending the current patient_id is not a re-link; the client's
	// rename must survive.
	updated, errs, err := svc.Update(context.Background(), appt.ID, map[string]interface{}{
		"patient_id":   float64(1),
		"patient_name": "Client Supplied",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs) > 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if updated.PatientName == nil || *updated.PatientName != "Client Supplied" {
		t.Errorf("expected client name to stand, got %v", updated.PatientName)
	}
}

func TestUpdateAppointment_NewlySetPatientIDSnapshots(t *testing.T) {
	adms := &mockAdmissions{admissions: map[int64]*admission.PatientAdmission{
		1: testAdmission(1, "John", "Quincy", "Doe"),
	}}
	svc, _ := newTestService(adms)

	appt, _, _ := svc.Create(context.Background(), map[string]interface{}{
		"patient_name":     "Walk-in Jane",
		"appointment_type": "prenatal",
		"scheduled_at":     futureDate(),
	})

	updated, _, err := svc.Update(context.Background(), appt.ID, map[string]interface{}{
		"patient_id": float64(1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.PatientName == nil || *updated.PatientName != "John Quincy Doe" {
		t.Errorf("expected snapshotted name on first link, got %v", updated.PatientName)
	}
}

func TestUpdateAppointment_NoRelinkKeepsContact(t *testing.T) {
	adms := &mockAdmissions{admissions: map[int64]*admission.PatientAdmission{
		1: testAdmission(1, "John", "Quincy", "Doe"),
	}}
	svc, _ := newTestService(adms)

	appt, _, _ := svc.Create(context.Background(), map[string]interface{}{
		"patient_id":       float64(1),
		"appointment_type": "prenatal",
		"scheduled_at":     futureDate(),
	})

	updated, _, err := svc.Update(context.Background(), appt.ID, map[string]interface{}{
		"patient_name": "Renamed By Client",
		"status":       "confirmed",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.PatientName == nil || *updated.PatientName != "Renamed By Client" {
		t.Errorf("expected client rename to stand, got %v", updated.PatientName)
	}
	if updated.Status != "confirmed" {
		t.Errorf("expected confirmed, got %s", updated.Status)
	}
}

func TestUpdateAppointment_SnapshotNeverTouchesSchedule(t *testing.T) {
	adms := &mockAdmissions{admissions: map[int64]*admission.PatientAdmission{
		1: testAdmission(1, "John", "Quincy", "Doe"),
		2: testAdmission(2, "Maria", "Clara", "Santos"),
	}}
	svc, _ := newTestService(adms)

	appt, _, _ := svc.Create(context.Background(), map[string]interface{}{
		"patient_id":       float64(1),
		"email":            "john@example.com",
		"appointment_type": "prenatal",
		"scheduled_at":     futureDate(),
	})
	beforeType := *appt.AppointmentType
	beforeAt := *appt.ScheduledAt

	updated, _, err := svc.Update(context.Background(), appt.ID, map[string]interface{}{
		"patient_id": float64(2),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *updated.AppointmentType != beforeType {
		t.Error("appointment_type must not change on re-snapshot")
	}
	if !updated.ScheduledAt.Equal(beforeAt) {
		t.Error("scheduled_at must not change on re-snapshot")
	}
	if updated.Email == nil || *updated.Email != "john@example.com" {
		t.Error("email must not change on re-snapshot")
	}
}

func TestDeleteAppointment(t *testing.T) {
	adms := &mockAdmissions{admissions: map[int64]*admission.PatientAdmission{}}
	svc, repo := newTestService(adms)

	appt, _, _ := svc.Create(context.Background(), map[string]interface{}{
		"appointment_type": "prenatal",
		"scheduled_at":     futureDate(),
	})

	if err := svc.Delete(context.Background(), appt.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.appointments[appt.ID]; ok {
		t.Error("expected physical delete")
	}

	if err := svc.Delete(context.Background(), appt.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
