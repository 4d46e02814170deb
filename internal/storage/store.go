// Package storage persists ensemble summaries so that experiments can be
// compared across runs.
package storage

import (
	"context"
	"time"

	"github.com/rxtech-lab/argo-montecarlo/internal/types"
)

// StoredRun is one persisted summary row.
type StoredRun struct {
	ID           int64
	ExperimentID string
	types.SummaryRecord
	EngineVersion string
	CreatedAt     time.Time
}

// StrategyAggregate averages every stored run of one strategy.
type StrategyAggregate struct {
	Strategy    string
	Runs        int
	AvgReturn   float64
	AvgDrawdown float64
	AvgSharpe   float64
	WorstSharpe float64
	BestSharpe  float64
}

// ResultStore records ensemble summaries.
type ResultStore interface {
	// Initialize creates the schema if needed and checks the stored schema version.
	Initialize(ctx context.Context) error
	// Insert stores one summary and returns its id. Ids increase with every insert.
	Insert(ctx context.Context, experimentID string, record types.SummaryRecord) (int64, error)
	// LastRuns returns up to limit rows, newest first.
	LastRuns(ctx context.Context, limit int) ([]StoredRun, error)
	// AggregateByStrategy returns one row per strategy ordered by average Sharpe, best first.
	AggregateByStrategy(ctx context.Context) ([]StrategyAggregate, error)
	// Close releases the underlying database.
	Close() error
}
