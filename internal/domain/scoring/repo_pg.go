package scoring

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

const chartCols = `id, patient_admission_id, date_scored,
	heart_rate, respiratory, muscle_tone, reflexes, color,
	heart_rate_5, respiratory_5, muscle_tone_5, reflexes_5, color_5,
	heart_rate_10, respiratory_10, muscle_tone_10, reflexes_10, color_10,
	other_heart_rate, other_respiratory, other_muscle_tone, other_reflexes, other_color,
	created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, chart *ScoringChart) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO scoring_charts (
			patient_admission_id, date_scored,
			heart_rate, respiratory, muscle_tone, reflexes, color,
			heart_rate_5, respiratory_5, muscle_tone_5, reflexes_5, color_5,
			heart_rate_10, respiratory_10, muscle_tone_10, reflexes_10, color_10,
			other_heart_rate, other_respiratory, other_muscle_tone, other_reflexes, other_color
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,
			$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22
		) RETURNING id, created_at, updated_at`,
		chart.PatientAdmissionID, chart.DateScored,
		chart.HeartRate, chart.Respiratory, chart.MuscleTone, chart.Reflexes, chart.Color,
		chart.HeartRate5, chart.Respiratory5, chart.MuscleTone5, chart.Reflexes5, chart.Color5,
		chart.HeartRate10, chart.Respiratory10, chart.MuscleTone10, chart.Reflexes10, chart.Color10,
		chart.OtherHeartRate, chart.OtherRespiratory, chart.OtherMuscleTone, chart.OtherReflexes, chart.OtherColor,
	).Scan(&chart.ID, &chart.CreatedAt, &chart.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*ScoringChart, error) {
	return scanChart(r.pool.QueryRow(ctx, `SELECT `+chartCols+` FROM scoring_charts WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, chart *ScoringChart) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE scoring_charts SET
			patient_admission_id=$2, date_scored=$3,
			heart_rate=$4, respiratory=$5, muscle_tone=$6, reflexes=$7, color=$8,
			heart_rate_5=$9, respiratory_5=$10, muscle_tone_5=$11, reflexes_5=$12, color_5=$13,
			heart_rate_10=$14, respiratory_10=$15, muscle_tone_10=$16, reflexes_10=$17, color_10=$18,
			other_heart_rate=$19, other_respiratory=$20, other_muscle_tone=$21,
			other_reflexes=$22, other_color=$23, updated_at=NOW()
		WHERE id = $1`,
		chart.ID,
		chart.PatientAdmissionID, chart.DateScored,
		chart.HeartRate, chart.Respiratory, chart.MuscleTone, chart.Reflexes, chart.Color,
		chart.HeartRate5, chart.Respiratory5, chart.MuscleTone5, chart.Reflexes5, chart.Color5,
		chart.HeartRate10, chart.Respiratory10, chart.MuscleTone10, chart.Reflexes10, chart.Color10,
		chart.OtherHeartRate, chart.OtherRespiratory, chart.OtherMuscleTone, chart.OtherReflexes, chart.OtherColor,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM scoring_charts WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context) ([]*ScoringChart, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+chartCols+` FROM scoring_charts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var charts []*ScoringChart
	for rows.Next() {
		chart, err := scanChart(rows)
		if err != nil {
			return nil, err
		}
		charts = append(charts, chart)
	}
	return charts, rows.Err()
}

func scanChart(row pgx.Row) (*ScoringChart, error) {
	var c ScoringChart
	err := row.Scan(
		&c.ID, &c.PatientAdmissionID, &c.DateScored,
		&c.HeartRate, &c.Respiratory, &c.MuscleTone, &c.Reflexes, &c.Color,
		&c.HeartRate5, &c.Respiratory5, &c.MuscleTone5, &c.Reflexes5, &c.Color5,
		&c.HeartRate10, &c.Respiratory10, &c.MuscleTone10, &c.Reflexes10, &c.Color10,
		&c.OtherHeartRate, &c.OtherRespiratory, &c.OtherMuscleTone, &c.OtherReflexes, &c.OtherColor,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
