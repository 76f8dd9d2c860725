package scheduling

import "context"

type Repository interface {
	Create(ctx context.Context, appt *Appointment) error
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	Update(ctx context.Context, appt *Appointment) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Appointment, error)
}
