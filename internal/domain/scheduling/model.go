// Package scheduling manages appointments. An appointment may link to a
// patient admission, in which case its contact fields are snapshotted
// from the admission at write time rather than joined at read time.
package scheduling

import "time"

// Appointment maps to the appointments table. This resource predates the
// camelCase admission forms, so its JSON keys are snake_case.
type Appointment struct {
	ID              int64      `db:"id" json:"id"`
	PatientID       *int64     `db:"patient_id" json:"patient_id"`
	PatientName     *string    `db:"patient_name" json:"patient_name"`
	Email           *string    `db:"email" json:"email"`
	Phone           *string    `db:"phone" json:"phone"`
	Address         *string    `db:"address" json:"address"`
	AppointmentType *string    `db:"appointment_type" json:"appointment_type"`
	ScheduledAt     *time.Time `db:"scheduled_at" json:"scheduled_at"`
	Status          string     `db:"status" json:"status"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}
