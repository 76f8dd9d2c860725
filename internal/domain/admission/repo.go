package admission

import "context"

type Repository interface {
	Create(ctx context.Context, adm *PatientAdmission) error
	// GetByID resolves soft-deleted rows too.
	GetByID(ctx context.Context, id int64) (*PatientAdmission, error)
	Update(ctx context.Context, adm *PatientAdmission) error
	// List returns rows with soft_delete = false only.
	List(ctx context.Context) ([]*PatientAdmission, error)
	// ExistsByID is the foreign-key probe used by the other resources;
	// soft-deleted rows count as existing.
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// MedRecNoTaken reports whether another row already holds the given
	// record number. excludeDeleted skips soft-deleted rows.
	MedRecNoTaken(ctx context.Context, medRecNo string, excludeDeleted bool) (bool, error)
}
