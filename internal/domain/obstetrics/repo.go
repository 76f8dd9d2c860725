package obstetrics

import "context"

type Repository interface {
	// Sheets
	CreateSheet(ctx context.Context, sheet *ObstetricSheet) error
	GetSheetByID(ctx context.Context, id int64) (*ObstetricSheet, error)
	UpdateSheet(ctx context.Context, sheet *ObstetricSheet) error
	DeleteSheet(ctx context.Context, id int64) error
	ListSheets(ctx context.Context) ([]*ObstetricSheet, error)
	SheetExists(ctx context.Context, id int64) (bool, error)

	// Pregnancy records
	CreateRecord(ctx context.Context, rec *PregnancyRecord) error
	GetRecordByID(ctx context.Context, id int64) (*PregnancyRecord, error)
	UpdateRecord(ctx context.Context, rec *PregnancyRecord) error
	DeleteRecord(ctx context.Context, id int64) error
	ListRecords(ctx context.Context) ([]*PregnancyRecord, error)
}
