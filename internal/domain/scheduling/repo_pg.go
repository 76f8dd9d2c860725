package scheduling

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

const apptCols = `id, patient_id, patient_name, email, phone, address,
	appointment_type, scheduled_at, status, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, appt *Appointment) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO appointments (
			patient_id, patient_name, email, phone, address,
			appointment_type, scheduled_at, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at, updated_at`,
		appt.PatientID, appt.PatientName, appt.Email, appt.Phone, appt.Address,
		appt.AppointmentType, appt.ScheduledAt, appt.Status,
	).Scan(&appt.ID, &appt.CreatedAt, &appt.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx, `SELECT `+apptCols+` FROM appointments WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, appt *Appointment) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE appointments SET
			patient_id=$2, patient_name=$3, email=$4, phone=$5, address=$6,
			appointment_type=$7, scheduled_at=$8, status=$9, updated_at=NOW()
		WHERE id = $1`,
		appt.ID,
		appt.PatientID, appt.PatientName, appt.Email, appt.Phone, appt.Address,
		appt.AppointmentType, appt.ScheduledAt, appt.Status,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+apptCols+` FROM appointments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []*Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}
	return appts, rows.Err()
}

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(
		&a.ID, &a.PatientID, &a.PatientName, &a.Email, &a.Phone, &a.Address,
		&a.AppointmentType, &a.ScheduledAt, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
