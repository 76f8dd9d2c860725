package scoring

import "context"

type Repository interface {
	Create(ctx context.Context, chart *ScoringChart) error
	GetByID(ctx context.Context, id int64) (*ScoringChart, error)
	Update(ctx context.Context, chart *ScoringChart) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*ScoringChart, error)
}
